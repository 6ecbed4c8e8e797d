package bot

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/pfrederiksen/gw-dailies/internal/activity"
	"github.com/pfrederiksen/gw-dailies/internal/logger"
	"github.com/pfrederiksen/gw-dailies/internal/notifier"
	"github.com/pfrederiksen/gw-dailies/internal/render"
)

// Source provides the two page fetches a cycle needs. *scraper.Scraper
// implements it.
type Source interface {
	FetchDaily(dailyDate, sandfordDate time.Time) (*activity.Daily, error)
	FetchWeekly(weeklyDate time.Time) (*activity.Weekly, error)
}

// Bot runs posting cycles against a Source and delivers through a
// Notifier.
type Bot struct {
	source   Source
	notifier notifier.Notifier
	format   render.Format
	loopMode bool
	postNow  bool
	started  atomic.Bool
	done     chan struct{}
}

// New creates a Bot. loopMode keeps the bot running across days; postNow
// skips the initial wait so the first cycle runs immediately.
func New(source Source, n notifier.Notifier, format render.Format, loopMode, postNow bool) *Bot {
	return &Bot{
		source:   source,
		notifier: n,
		format:   format,
		loopMode: loopMode,
		postNow:  postNow,
		done:     make(chan struct{}),
	}
}

// Start launches the posting loop on its own goroutine. Duplicate calls
// (a reconnecting session re-fires its ready handler) log and return
// without spawning a second loop.
func (b *Bot) Start() {
	if b.started.Swap(true) {
		logger.Info("reconnected, timer already running", nil)
		return
	}
	go b.loop()
}

// Run is Start on the calling goroutine, for the textual modes. The same
// guard applies.
func (b *Bot) Run() {
	if b.started.Swap(true) {
		logger.Info("timer already running", nil)
		return
	}
	b.loop()
}

// Done is closed when a single-shot run has completed its cycle. Discord
// mode blocks on it after opening the session.
func (b *Bot) Done() <-chan struct{} {
	return b.done
}

func (b *Bot) loop() {
	for {
		if !b.postNow {
			b.waitForTrigger()
		}

		if err := b.RunCycle(time.Now().UTC()); err != nil {
			logger.Error("cycle failed", nil, err)
		}

		if !b.loopMode {
			logger.Info("single run completed", nil)
			close(b.done)
			return
		}

		// With postNow the top wait is skipped every iteration, so the
		// inter-cycle wait happens here instead.
		if b.postNow {
			b.waitForTrigger()
		}
	}
}

// waitForTrigger sleeps until the next daily trigger instant, computed
// from a freshly sampled clock so the wait absorbs any drift from the
// cycle that just ran.
func (b *Bot) waitForTrigger() {
	now := time.Now().UTC()
	target := activity.DailySchedule.Next(now)
	delay := target.Sub(now)
	if delay < 0 {
		delay = 0
	}
	logger.Info("sleeping until next post", logger.Fields{
		"until":    target.Format(time.RFC3339),
		"duration": delay.Truncate(time.Second).String(),
	})
	time.Sleep(delay)
}

// RunCycle performs one full cycle at the given instant: resolve the
// three schedule dates, fetch both pages, render, and publish. The
// returned error is structural (missing table or row) or a delivery
// failure; the fetches themselves never fail.
func (b *Bot) RunCycle(now time.Time) error {
	dailyDate := activity.DailySchedule.Current(now)
	sandfordDate := activity.SandfordSchedule.Current(now)
	weeklyDate := activity.WeeklySchedule.Current(now)

	logger.Info("running cycle", logger.Fields{
		"daily":    dailyDate.Format(activity.DateLayout),
		"sandford": sandfordDate.Format(activity.DateLayout),
		"weekly":   weeklyDate.Format(activity.DateLayout),
	})

	daily, err := b.source.FetchDaily(dailyDate, sandfordDate)
	if err != nil {
		return fmt.Errorf("extracting daily activities: %w", err)
	}

	weekly, err := b.source.FetchWeekly(weeklyDate)
	if err != nil {
		return fmt.Errorf("extracting weekly activities: %w", err)
	}

	message := render.Render(daily, weekly, dailyDate, b.format)
	if err := b.notifier.Publish(dailyDate, message); err != nil {
		return fmt.Errorf("publishing bulletin: %w", err)
	}
	return nil
}

// RunAt performs one cycle at a simulated instant. A failure is logged
// rather than returned so the process still exits cleanly.
func (b *Bot) RunAt(now time.Time) {
	if err := b.RunCycle(now); err != nil {
		logger.Error("cycle failed", nil, err)
	}
}
