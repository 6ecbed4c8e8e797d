package notifier

import "time"

// Notifier defines the interface for delivering one bulletin per cycle
type Notifier interface {
	// Publish delivers the rendered message for the given daily date.
	Publish(date time.Time, message string) error
}
