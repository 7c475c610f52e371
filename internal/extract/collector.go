package extract

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Collector accumulates step failures during one extract run so that every
// step still runs. It is created per run and flushed once at the end.
type Collector struct {
	errs []string
}

// Add records err under the name of the step that produced it. A nil err is
// ignored.
func (c *Collector) Add(step string, err error) {
	if err == nil {
		return
	}
	c.errs = append(c.errs, step+": "+err.Error())
}

// Len returns the number of recorded errors.
func (c *Collector) Len() int {
	return len(c.errs)
}

// Errors returns a copy of the recorded messages in the order they were added.
func (c *Collector) Errors() []string {
	out := make([]string, len(c.errs))
	copy(out, c.errs)
	return out
}

// WriteTo writes one error-log block: a "-----" separator, the run time, then
// each error numbered from 1.
func (c *Collector) WriteTo(w io.Writer, now time.Time) error {
	if _, err := fmt.Fprintf(w, "-----\n%s\n", formatTime(now)); err != nil {
		return err
	}
	for i, msg := range c.errs {
		if _, err := fmt.Fprintf(w, "Error %d:\n%s\n", i+1, msg); err != nil {
			return err
		}
	}
	return nil
}

// Flush appends the error-log block to the file at path. Nothing is written
// when no errors were recorded.
func (c *Collector) Flush(path string, now time.Time) error {
	if c.Len() == 0 {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening error log: %w", err)
	}
	if err := c.WriteTo(f, now); err != nil {
		f.Close()
		return fmt.Errorf("writing error log: %w", err)
	}
	return f.Close()
}

// formatTime renders timestamps for the backup and error logs.
func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05.000000")
}
