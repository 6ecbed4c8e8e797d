package activity

// DateLayout is the date form used by the wiki tables' first column and
// therefore the row join key: day without leading zero, full month name,
// four-digit year ("22 November 2025").
const DateLayout = "2 January 2006"

// Daily holds the activities for one daily rollover. Fields carry
// normalized cell text, possibly with embedded [text](url) links.
type Daily struct {
	ZaishenMission   string
	ZaishenBounty    string
	ZaishenCombat    string
	ZaishenVanquish  string
	Wanted           string
	VanguardQuest    string
	NicholasSandford string
}

// Weekly holds the bonuses and collector location for one weekly rollover.
type Weekly struct {
	PvEBonus          string
	PvPBonus          string
	NicholasTraveller string
}
