package format

import (
	"fmt"
	"io"
)

// PlainFormatter writes entries as numbered lines, matching the rows of
// the interactive list so pipelines see what the screen shows.
type PlainFormatter struct{}

// NewPlainFormatter creates a new plain text formatter.
func NewPlainFormatter() *PlainFormatter {
	return &PlainFormatter{}
}

// Format writes one "<position>: <entry>" line per entry.
func (f *PlainFormatter) Format(w io.Writer, todos []string) error {
	for i, entry := range todos {
		if _, err := fmt.Fprintf(w, "%d: %s\n", i+1, entry); err != nil {
			return err
		}
	}
	return nil
}
