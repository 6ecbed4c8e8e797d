package render

import (
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/gw-dailies/internal/activity"
)

func sampleRecords() (*activity.Daily, *activity.Weekly) {
	d := &activity.Daily{
		ZaishenMission:   "[Augury Rock](https://wiki.guildwars.com/wiki/Augury_Rock_(Zaishen_quest%29)",
		ZaishenBounty:    "[Royen Beastkeeper](https://wiki.guildwars.com/wiki/Royen_Beastkeeper)",
		ZaishenCombat:    "[Fort Aspenwood](https://wiki.guildwars.com/wiki/Fort_Aspenwood)",
		ZaishenVanquish:  "[Jaya Bluffs](https://wiki.guildwars.com/wiki/Jaya_Bluffs)",
		Wanted:           "[Insatiable Vakar](https://wiki.guildwars.com/wiki/Insatiable_Vakar)",
		VanguardQuest:    "[Bandit Raid](https://wiki.guildwars.com/wiki/Bandit_Raid)",
		NicholasSandford: "[Enchanted Lodestones](https://wiki.guildwars.com/wiki/Enchanted_Lodestone) (5x)",
	}
	w := &activity.Weekly{
		PvEBonus:          "Northern Support",
		PvPBonus:          "Guild Battle Bonus",
		NicholasTraveller: "[Red Iris Flowers](https://wiki.guildwars.com/wiki/Red_Iris_Flower) (3x)",
	}
	return d, w
}

var renderDate = time.Date(2025, time.November, 22, 16, 0, 5, 0, time.UTC)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"discord", FormatDiscord, false},
		{"txt", FormatTxt, false},
		{"md", FormatMd, false},
		{"html", FormatHTML, false},
		{"HTML", FormatHTML, false},
		{" txt ", FormatTxt, false},
		{"json", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseFormat(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderTxt(t *testing.T) {
	d, w := sampleRecords()

	got := Render(d, w, renderDate, FormatTxt)

	want := `Dailies for 22 November 2025

Nicholas Sandford.....: Enchanted Lodestones (5x)
Vanguard Quest........: Bandit Raid
Wanted................: Insatiable Vakar

Zaishen Mission.......: Augury Rock
Zaishen Bounty........: Royen Beastkeeper
Zaishen Combat........: Fort Aspenwood
Zaishen Vanquish......: Jaya Bluffs

Weekly bonuses:
Nicholas the Traveller: Red Iris Flowers (3x)
PvE Bonus.............: Northern Support
PvP Bonus.............: Guild Battle Bonus`

	if got != want {
		t.Errorf("Render(txt) = %q, want %q", got, want)
	}
}

func TestRenderDiscord(t *testing.T) {
	d, w := sampleRecords()

	got := Render(d, w, renderDate, FormatDiscord)

	// The embed title carries the date; the body must not.
	if strings.Contains(got, "Dailies for") {
		t.Error("discord body should not contain the date header")
	}
	if !strings.HasPrefix(got, "`Nicholas Sandford.....`: ") {
		t.Errorf("discord body starts with %q", got[:40])
	}
	if !strings.Contains(got, "**Weekly bonuses:**") {
		t.Error("discord body missing weekly section header")
	}
	// Links stay in portable form for Discord to render.
	if !strings.Contains(got, "[Augury Rock](https://wiki.guildwars.com/wiki/Augury_Rock_(Zaishen_quest%29)") {
		t.Error("discord body should keep portable links")
	}
}

func TestRenderMd(t *testing.T) {
	d, w := sampleRecords()

	got := Render(d, w, renderDate, FormatMd)

	for _, want := range []string{
		"# Dailies for 22 November 2025",
		"## Zaishen Quests",
		"## Weekly bonuses",
		"- **Nicholas Sandford**: [Enchanted Lodestones](https://wiki.guildwars.com/wiki/Enchanted_Lodestone) (5x)",
		"- **PvP Bonus**: Guild Battle Bonus",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render(md) missing %q", want)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	d, w := sampleRecords()

	got := Render(d, w, renderDate, FormatHTML)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Dailies for 22 November 2025</title>",
		"<h1>Dailies for 22 November 2025</h1>",
		`<a href="https://wiki.guildwars.com/wiki/Jaya_Bluffs">Jaya Bluffs</a>`,
		`<span class="label">Nicholas the Traveller:</span> <a href="https://wiki.guildwars.com/wiki/Red_Iris_Flower">Red Iris Flowers</a> (3x)`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render(html) missing %q", want)
		}
	}
	// Portable syntax must be fully converted.
	if strings.Contains(got, "](") {
		t.Error("Render(html) left portable link syntax behind")
	}
}

// Every format lists the same fields in the same order.
func TestRenderFieldOrder(t *testing.T) {
	d, w := sampleRecords()

	order := []string{
		"Nicholas Sandford",
		"Vanguard Quest",
		"Wanted",
		"Zaishen Mission",
		"Zaishen Bounty",
		"Zaishen Combat",
		"Zaishen Vanquish",
		"Nicholas the Traveller",
		"PvE Bonus",
		"PvP Bonus",
	}

	for _, format := range []Format{FormatDiscord, FormatTxt, FormatMd, FormatHTML} {
		t.Run(string(format), func(t *testing.T) {
			out := Render(d, w, renderDate, format)
			pos := -1
			for _, label := range order {
				idx := strings.Index(out, label)
				if idx < 0 {
					t.Fatalf("output missing label %q", label)
				}
				if idx < pos {
					t.Errorf("label %q out of order", label)
				}
				pos = idx
			}
		})
	}
}
