package activity

import "time"

// Schedule describes when a wiki table's current row changes: a cutoff
// time of day in UTC and a cadence. Anchored schedules additionally carry
// a reference instant marking a known period start; their boundaries are
// the anchor plus whole cadence steps, and the cutoff time is the
// anchor's own time of day.
type Schedule struct {
	Hour    int
	Minute  int
	Second  int
	Cadence time.Duration
	Anchor  time.Time
}

var (
	// DailySchedule covers the Zaishen and Wanted columns. The wiki rolls
	// them at 16:00 UTC; the key flips five seconds later so a fetch at
	// the trigger instant never races the wiki's own update.
	DailySchedule = Schedule{Hour: 16, Second: 5, Cadence: 24 * time.Hour}

	// SandfordSchedule covers the Nicholas Sandford column, which rolls
	// at 07:00 UTC independently of the other daily columns.
	SandfordSchedule = Schedule{Hour: 7, Cadence: 24 * time.Hour}

	// WeeklySchedule covers the weekly bonuses and Nicholas the
	// Traveller, rolling every Monday at 15:00 UTC.
	WeeklySchedule = Schedule{
		Hour:    15,
		Cadence: 7 * 24 * time.Hour,
		Anchor:  time.Date(2025, time.February, 10, 15, 0, 0, 0, time.UTC),
	}
)

// cutoff returns the schedule's cutoff instant on now's calendar day.
func (s Schedule) cutoff(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), s.Hour, s.Minute, s.Second, 0, time.UTC)
}

// Current resolves the instant whose calendar date identifies the period
// containing now.
//
// Daily schedules: before today's cutoff the current period is still
// yesterday's, so now is shifted one calendar day back; at or after the
// cutoff it is today's. Anchored schedules: step forward from the anchor
// in whole cadence increments and return the last boundary not past now.
// An instant exactly on a boundary belongs to the new period. Instants
// before the anchor resolve to the anchor itself.
func (s Schedule) Current(now time.Time) time.Time {
	now = now.UTC()
	if !s.Anchor.IsZero() {
		cur := s.Anchor
		for !cur.Add(s.Cadence).After(now) {
			cur = cur.Add(s.Cadence)
		}
		return cur
	}
	if now.Before(s.cutoff(now)) {
		return now.AddDate(0, 0, -1)
	}
	return now
}

// Key resolves the row key for now: the current period's calendar date in
// DateLayout form. time.Time always formats English month names, so the
// key matches the wiki's rendering regardless of host locale.
func (s Schedule) Key(now time.Time) string {
	return s.Current(now).Format(DateLayout)
}

// Next returns the first trigger instant after now: the next cutoff for
// daily schedules, the next period boundary for anchored ones.
func (s Schedule) Next(now time.Time) time.Time {
	now = now.UTC()
	if !s.Anchor.IsZero() {
		return s.Current(now).Add(s.Cadence)
	}
	target := s.cutoff(now)
	if !now.Before(target) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}
