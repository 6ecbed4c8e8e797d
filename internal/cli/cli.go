package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pfrederiksen/gw-dailies/internal/bot"
	"github.com/pfrederiksen/gw-dailies/internal/logger"
	"github.com/pfrederiksen/gw-dailies/internal/notifier"
	"github.com/pfrederiksen/gw-dailies/internal/render"
	"github.com/pfrederiksen/gw-dailies/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

const (
	// EnvToken and EnvChannelID name the environment variables holding the
	// Discord credentials. --channel-id overrides EnvChannelID.
	EnvToken     = "DISCORD_BOT_TOKEN"
	EnvChannelID = "DISCORD_CHANNEL_ID"

	atTimeLayout = "2006-01-02T15:04:05"
)

var (
	flagLoop      bool
	flagNow       bool
	flagChannelID string
	flagFormat    string
	flagAtTime    string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gw-dailies-bot",
		Short: "Post the current Guild Wars daily and weekly activities",
		Long: `A bot that scrapes the Guild Wars wiki for the current daily and weekly
activities and posts them to a Discord channel shortly after the 16:00 UTC
reset. Textual output formats print the bulletin to stdout instead.`,
		RunE:          runBot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Define flags
	cmd.Flags().BoolVar(&flagLoop, "loop", false, "Keep running and post once per day (default: post once and exit)")
	cmd.Flags().BoolVar(&flagNow, "now", false, "Post immediately instead of waiting for 16:00 UTC")
	cmd.Flags().StringVar(&flagChannelID, "channel-id", "", "Discord channel ID (or env: DISCORD_CHANNEL_ID)")
	cmd.Flags().StringVar(&flagFormat, "output-format", "discord", "Output format: discord, txt, md or html")
	cmd.Flags().StringVar(&flagAtTime, "at-time", "", "Simulate a specific time (format: YYYY-MM-DDTHH:MM:SS, e.g. 2025-11-25T17:00:00)")

	return cmd
}

// runBot validates the configuration and runs the selected mode. All
// configuration errors are reported here, before anything touches the
// network.
func runBot(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(flagFormat)
	if err != nil {
		return err
	}

	var atTime time.Time
	if flagAtTime != "" {
		atTime, err = time.ParseInLocation(atTimeLayout, flagAtTime, time.UTC)
		if err != nil {
			return fmt.Errorf("invalid time format: %s (use YYYY-MM-DDTHH:MM:SS)", flagAtTime)
		}
	}

	if format != render.FormatDiscord {
		return runTextual(format, atTime)
	}

	if flagAtTime != "" {
		return fmt.Errorf("--at-time is not supported with discord output format, use --output-format txt, md or html")
	}

	token := os.Getenv(EnvToken)
	if token == "" {
		return fmt.Errorf("%s environment variable not set", EnvToken)
	}

	channelID := flagChannelID
	if channelID == "" {
		channelID = os.Getenv(EnvChannelID)
	}
	if channelID == "" {
		return fmt.Errorf("channel ID is required (use --channel-id or %s env var)", EnvChannelID)
	}
	if _, err := strconv.ParseUint(channelID, 10, 64); err != nil {
		return fmt.Errorf("invalid channel ID: %s (must be a number)", channelID)
	}

	return runDiscord(token, channelID, format)
}

// runTextual prints bulletins to stdout. With a simulated time it runs a
// single cycle for that instant and returns; otherwise the bot drives the
// normal schedule on this goroutine.
func runTextual(format render.Format, atTime time.Time) error {
	b := bot.New(scraper.New(), notifier.NewWriterNotifier(os.Stdout), format, flagLoop, flagNow)

	if !atTime.IsZero() {
		logger.Info("simulating time", logger.Fields{"time": atTime.Format("2006-01-02 15:04:05 UTC")})
		if flagLoop {
			logger.Info("--at-time is set, running a single cycle instead of looping", nil)
		}
		b.RunAt(atTime)
		return nil
	}

	b.Run()
	return nil
}

// runDiscord opens a gateway session and lets the ready handler start the
// posting loop. In loop mode this blocks until the process is killed.
func runDiscord(token, channelID string, format render.Format) error {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("creating discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsNone

	b := bot.New(scraper.New(), notifier.NewDiscordNotifier(session, channelID), format, flagLoop, flagNow)

	// Ready fires again on reconnect; the bot's start guard keeps a second
	// loop from spawning.
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logger.Info("connected to discord", logger.Fields{"user": r.User.Username})
		b.Start()
	})

	if err := session.Open(); err != nil {
		return fmt.Errorf("opening discord session: %w", err)
	}

	<-b.Done()
	return session.Close()
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
