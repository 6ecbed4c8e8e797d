package notifier

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pfrederiksen/gw-dailies/internal/activity"
)

// DiscordNotifier posts bulletins as embeds to a fixed channel
type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
}

// NewDiscordNotifier creates a notifier posting to channelID over session
func NewDiscordNotifier(session *discordgo.Session, channelID string) *DiscordNotifier {
	return &DiscordNotifier{
		session:   session,
		channelID: channelID,
	}
}

// Publish sends the message as an embed titled with the daily date
func (n *DiscordNotifier) Publish(date time.Time, message string) error {
	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, buildEmbed(date, message)); err != nil {
		return fmt.Errorf("sending embed: %w", err)
	}
	return nil
}

// buildEmbed assembles the message embed: the title carries the daily
// date, the description is the rendered bulletin.
func buildEmbed(date time.Time, message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Dailies for %s", date.Format(activity.DateLayout)),
		Description: message,
	}
}
