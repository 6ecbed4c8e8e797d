package notifier

import (
	"fmt"
	"io"
	"time"
)

// WriterNotifier prints bulletins to a stream, serving the textual
// output modes
type WriterNotifier struct {
	w io.Writer
}

// NewWriterNotifier creates a notifier printing to w
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Publish writes the message followed by a newline. The date is part of
// the rendered message in the textual formats, so it is unused here.
func (n *WriterNotifier) Publish(_ time.Time, message string) error {
	if _, err := fmt.Fprintln(n.w, message); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	return nil
}
