package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pfrederiksen/gw-dailies/internal/activity"
	"github.com/pfrederiksen/gw-dailies/internal/wikitext"
)

const (
	DailyURL  = "https://wiki.guildwars.com/wiki/Daily_activities"
	WeeklyURL = "https://wiki.guildwars.com/wiki/Weekly_activities"
	UserAgent = "Mozilla/5.0 (compatible; GuildWarsBot/1.0)"
	Timeout   = 30 * time.Second
)

// tableSelector locates the primary data table on both wiki pages.
const tableSelector = "div.mw-parser-output table tbody"

// Column positions are fixed by the wiki's table layout; a layout change
// upstream is an interface break, not something to tolerate here.
const (
	dailyMinCells  = 8
	weeklyMinCells = 5
)

// Scraper fetches and parses the wiki activity pages.
type Scraper struct {
	client    *http.Client
	dailyURL  string
	weeklyURL string
}

// New creates a new Scraper instance
func New() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		dailyURL:  DailyURL,
		weeklyURL: WeeklyURL,
	}
}

// FetchDaily retrieves the daily activities page and extracts the
// activities for the given daily and Sandford dates. The fetch blocks
// until the page is obtained; a missing table or row is returned as an
// error.
func (s *Scraper) FetchDaily(dailyDate, sandfordDate time.Time) (*activity.Daily, error) {
	body := s.fetchWithRetry(s.dailyURL, "daily activities")
	dailyKey := dailyDate.Format(activity.DateLayout)
	sandfordKey := sandfordDate.Format(activity.DateLayout)
	return parseDaily(strings.NewReader(body), dailyKey, sandfordKey)
}

// FetchWeekly retrieves the weekly activities page and extracts the
// bonuses for the given weekly date.
func (s *Scraper) FetchWeekly(weeklyDate time.Time) (*activity.Weekly, error) {
	body := s.fetchWithRetry(s.weeklyURL, "weekly activities")
	return parseWeekly(strings.NewReader(body), weeklyDate.Format(activity.DateLayout))
}

// parseDaily extracts a Daily record from page HTML. Two passes over the
// same table: the Zaishen and Wanted columns come from the row matching
// dailyKey, the Nicholas Sandford column from the row matching
// sandfordKey. The rows differ whenever now sits between the 07:00 and
// 16:00:05 rollovers, so one pass cannot serve both.
func parseDaily(r io.Reader, dailyKey, sandfordKey string) (*activity.Daily, error) {
	tbody, err := findTable(r)
	if err != nil {
		return nil, err
	}

	row := findRow(tbody, dailyKey, dailyMinCells)
	if row == nil {
		return nil, fmt.Errorf("no daily data found for %s", dailyKey)
	}

	cells := row.Children()
	d := &activity.Daily{
		ZaishenMission:  wikitext.ConvertLink(cellHTML(cells, 1)),
		ZaishenBounty:   wikitext.ConvertLink(cellHTML(cells, 2)),
		ZaishenCombat:   wikitext.ConvertLink(cellHTML(cells, 3)),
		ZaishenVanquish: wikitext.ConvertLink(cellHTML(cells, 4)),
		Wanted:          wikitext.ConvertLink(cellHTML(cells, 5)),
		VanguardQuest:   wikitext.ConvertLink(cellHTML(cells, 6)),
	}

	row = findRow(tbody, sandfordKey, dailyMinCells)
	if row == nil {
		return nil, fmt.Errorf("no Nicholas Sandford data found for %s", sandfordKey)
	}
	d.NicholasSandford = wikitext.ConvertLink(cellHTML(row.Children(), 7))

	return d, nil
}

// parseWeekly extracts a Weekly record from page HTML. The bonus columns
// are link-stripped; the collector column keeps its link.
func parseWeekly(r io.Reader, weeklyKey string) (*activity.Weekly, error) {
	tbody, err := findTable(r)
	if err != nil {
		return nil, err
	}

	row := findRow(tbody, weeklyKey, weeklyMinCells)
	if row == nil {
		return nil, fmt.Errorf("no weekly data found for %s", weeklyKey)
	}

	cells := row.Children()
	return &activity.Weekly{
		PvEBonus:          wikitext.StripLink(cellHTML(cells, 1)),
		PvPBonus:          wikitext.StripLink(cellHTML(cells, 2)),
		NicholasTraveller: wikitext.ConvertLink(cellHTML(cells, 3)),
	}, nil
}

// findTable parses the document and returns the first activity table
// body.
func findTable(r io.Reader) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	tbody := doc.Find(tableSelector).First()
	if tbody.Length() == 0 {
		return nil, errors.New("could not find table tbody")
	}
	return tbody, nil
}

// findRow returns the first row whose leading cell's trimmed text equals
// key, or nil. Rows with fewer than minCells element children (headers,
// separators, malformed rows) are skipped.
func findRow(tbody *goquery.Selection, key string, minCells int) *goquery.Selection {
	var row *goquery.Selection
	tbody.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		cells := tr.Children()
		if cells.Length() < minCells {
			return true
		}
		if strings.TrimSpace(cells.First().Text()) != key {
			return true
		}
		row = tr
		return false
	})
	return row
}

// cellHTML returns the trimmed inner HTML of the i-th cell.
func cellHTML(cells *goquery.Selection, i int) string {
	h, err := cells.Eq(i).Html()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(h)
}
