package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/gw-dailies/internal/activity"
	"github.com/pfrederiksen/gw-dailies/internal/wikitext"
)

// Format selects one of the supported output renderings.
type Format string

const (
	FormatDiscord Format = "discord"
	FormatTxt     Format = "txt"
	FormatMd      Format = "md"
	FormatHTML    Format = "html"
)

// ParseFormat maps a format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatDiscord:
		return FormatDiscord, nil
	case FormatTxt:
		return FormatTxt, nil
	case FormatMd:
		return FormatMd, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// Render produces the cycle output in the requested format. The header
// date is always the resolved daily date, regardless of the Sandford and
// weekly rows the records were read from.
func Render(d *activity.Daily, w *activity.Weekly, date time.Time, format Format) string {
	dateStr := date.Format(activity.DateLayout)

	switch format {
	case FormatTxt:
		return renderTxt(d, w, dateStr)
	case FormatMd:
		return renderMd(d, w, dateStr)
	case FormatHTML:
		return renderHTML(d, w, dateStr)
	default:
		return renderDiscord(d, w)
	}
}

const txtTemplate = `Dailies for %s

Nicholas Sandford.....: %s
Vanguard Quest........: %s
Wanted................: %s

Zaishen Mission.......: %s
Zaishen Bounty........: %s
Zaishen Combat........: %s
Zaishen Vanquish......: %s

Weekly bonuses:
Nicholas the Traveller: %s
PvE Bonus.............: %s
PvP Bonus.............: %s`

func renderTxt(d *activity.Daily, w *activity.Weekly, dateStr string) string {
	return fmt.Sprintf(txtTemplate,
		dateStr,
		wikitext.StripLinks(d.NicholasSandford),
		wikitext.StripLinks(d.VanguardQuest),
		wikitext.StripLinks(d.Wanted),
		wikitext.StripLinks(d.ZaishenMission),
		wikitext.StripLinks(d.ZaishenBounty),
		wikitext.StripLinks(d.ZaishenCombat),
		wikitext.StripLinks(d.ZaishenVanquish),
		wikitext.StripLinks(w.NicholasTraveller),
		wikitext.StripLinks(w.PvEBonus),
		wikitext.StripLinks(w.PvPBonus))
}

const mdTemplate = `# Dailies for %s

- **Nicholas Sandford**: %s
- **Vanguard Quest**: %s
- **Wanted**: %s

## Zaishen Quests

- **Zaishen Mission**: %s
- **Zaishen Bounty**: %s
- **Zaishen Combat**: %s
- **Zaishen Vanquish**: %s

## Weekly bonuses

- **Nicholas the Traveller**: %s
- **PvE Bonus**: %s
- **PvP Bonus**: %s`

func renderMd(d *activity.Daily, w *activity.Weekly, dateStr string) string {
	return fmt.Sprintf(mdTemplate,
		dateStr,
		d.NicholasSandford,
		d.VanguardQuest,
		d.Wanted,
		d.ZaishenMission,
		d.ZaishenBounty,
		d.ZaishenCombat,
		d.ZaishenVanquish,
		w.NicholasTraveller,
		w.PvEBonus,
		w.PvPBonus)
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Dailies for %s</title>
<style>
body { font-family: Arial, sans-serif; max-width: 800px; margin: 20px auto; padding: 20px; }
h1 { color: #2c3e50; }
h2 { color: #34495e; margin-top: 30px; }
.activity { margin: 10px 0; padding: 8px; background: #ecf0f1; border-radius: 4px; }
.label { font-weight: bold; display: inline-block; width: 200px; }
a { color: #3498db; text-decoration: none; }
a:hover { text-decoration: underline; }
</style>
</head>
<body>
<h1>Dailies for %s</h1>
<div class="activity"><span class="label">Nicholas Sandford:</span> %s</div>
<div class="activity"><span class="label">Vanguard Quest:</span> %s</div>
<div class="activity"><span class="label">Wanted:</span> %s</div>
<h2>Zaishen Quests</h2>
<div class="activity"><span class="label">Zaishen Mission:</span> %s</div>
<div class="activity"><span class="label">Zaishen Bounty:</span> %s</div>
<div class="activity"><span class="label">Zaishen Combat:</span> %s</div>
<div class="activity"><span class="label">Zaishen Vanquish:</span> %s</div>
<h2>Weekly bonuses</h2>
<div class="activity"><span class="label">Nicholas the Traveller:</span> %s</div>
<div class="activity"><span class="label">PvE Bonus:</span> %s</div>
<div class="activity"><span class="label">PvP Bonus:</span> %s</div>
</body>
</html>`

func renderHTML(d *activity.Daily, w *activity.Weekly, dateStr string) string {
	return fmt.Sprintf(htmlTemplate,
		dateStr, dateStr,
		wikitext.HTMLLinks(d.NicholasSandford),
		wikitext.HTMLLinks(d.VanguardQuest),
		wikitext.HTMLLinks(d.Wanted),
		wikitext.HTMLLinks(d.ZaishenMission),
		wikitext.HTMLLinks(d.ZaishenBounty),
		wikitext.HTMLLinks(d.ZaishenCombat),
		wikitext.HTMLLinks(d.ZaishenVanquish),
		wikitext.HTMLLinks(w.NicholasTraveller),
		wikitext.HTMLLinks(w.PvEBonus),
		wikitext.HTMLLinks(w.PvPBonus))
}

// The embed title carries the date, so the discord body has no header.
const discordTemplate = "`Nicholas Sandford.....`: %s\n" +
	"`Vanguard Quest........`: %s\n" +
	"`Wanted................`: %s\n" +
	"\n" +
	"`Zaishen Mission.......`: %s\n" +
	"`Zaishen Bounty........`: %s\n" +
	"`Zaishen Combat........`: %s\n" +
	"`Zaishen Vanquish......`: %s\n" +
	"\n" +
	"**Weekly bonuses:**\n" +
	"`Nicholas the Traveller`: %s\n" +
	"`PvE Bonus.............`: %s\n" +
	"`PvP Bonus.............`: %s"

func renderDiscord(d *activity.Daily, w *activity.Weekly) string {
	return fmt.Sprintf(discordTemplate,
		d.NicholasSandford,
		d.VanguardQuest,
		d.Wanted,
		d.ZaishenMission,
		d.ZaishenBounty,
		d.ZaishenCombat,
		d.ZaishenVanquish,
		w.NicholasTraveller,
		w.PvEBonus,
		w.PvPBonus)
}
