package scraper

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pfrederiksen/gw-dailies/internal/logger"
)

const (
	initialBackoff = time.Second
	maxBackoff     = 5 * time.Minute
)

// newFetchBackOff returns the retry policy for page fetches: delays
// double from one second up to a five minute cap, with no jitter and no
// attempt or elapsed-time limit.
func newFetchBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialBackoff
	b.Multiplier = 2
	b.MaxInterval = maxBackoff
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// fetchWithRetry GETs url until a response body is obtained, sleeping
// between attempts per newFetchBackOff. It never returns an error: every
// failure is logged with the upcoming delay and retried. The backoff
// resets only at the start of a call, not across calls.
func (s *Scraper) fetchWithRetry(url, label string) string {
	var body string
	operation := func() error {
		b, err := s.fetchOnce(url)
		if err != nil {
			return err
		}
		body = b
		return nil
	}
	notify := func(err error, delay time.Duration) {
		logger.Warn("fetch failed, retrying", logger.Fields{
			"label":    label,
			"url":      url,
			"error":    err.Error(),
			"retry_in": delay.String(),
		})
	}

	// The policy never expires, so this only ever returns nil.
	_ = backoff.RetryNotify(operation, newFetchBackOff(), notify)
	return body
}

// fetchOnce performs a single GET against url and returns the body text.
// A transport error, non-2xx status, or unreadable body is a retryable
// failure.
func (s *Scraper) fetchOnce(url string) (string, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(body), nil
}
