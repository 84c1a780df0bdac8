// Package todo holds the in-memory todo list and its selection state.
package todo

import (
	"fmt"
	"time"
)

// TimestampLayout renders the creation label appended to every entry:
// month name, zero-padded day, then a zero-padded 12-hour clock.
const TimestampLayout = "January 02 03:04 PM"

// List is an ordered collection of todo entries with a single selected
// index. Insertion order is display order is persisted order. Entries are
// opaque strings once created; they are never edited, only removed.
type List struct {
	entries  []string
	selected int
}

// NewList creates a list over the given entries with the selection on the
// first entry.
func NewList(entries []string) *List {
	return &List{entries: entries}
}

// Entries returns the entries in order.
func (l *List) Entries() []string {
	return l.entries
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Selected returns the selected index. It is only meaningful while the
// list is non-empty.
func (l *List) Selected() int {
	return l.selected
}

// SelectedEntry returns the selected entry, or false when the list is
// empty or the index is out of range. Callers must use this instead of
// indexing Entries directly.
func (l *List) SelectedEntry() (string, bool) {
	if l.selected < 0 || l.selected >= len(l.entries) {
		return "", false
	}
	return l.entries[l.selected], true
}

// Advance moves the selection down one entry, wrapping from the last
// entry back to the first. No-op on an empty list.
func (l *List) Advance() {
	if len(l.entries) == 0 {
		return
	}
	l.selected = (l.selected + 1) % len(l.entries)
}

// Retreat moves the selection up one entry, wrapping from the first entry
// to the last. No-op on an empty list.
func (l *List) Retreat() {
	if len(l.entries) == 0 {
		return
	}
	if l.selected > 0 {
		l.selected--
	} else {
		l.selected = len(l.entries) - 1
	}
}

// Stamp builds the stored form of an entry: the text followed by a
// bracketed creation label.
func Stamp(text string, at time.Time) string {
	return fmt.Sprintf("%s [%s]", text, at.Format(TimestampLayout))
}

// Add appends a new entry built from text and the creation time, and
// returns the stored entry.
func (l *List) Add(text string, now time.Time) string {
	entry := Stamp(text, now)
	l.entries = append(l.entries, entry)
	return entry
}

// RemoveSelected removes the selected entry. An out-of-range selection is
// clamped to the last entry instead of removing anything. After a removal
// the selection keeps its index, which now refers to the entry that
// shifted into the removed slot; removing the last entry moves the
// selection to the new last entry.
func (l *List) RemoveSelected() {
	if len(l.entries) == 0 {
		return
	}
	if l.selected >= len(l.entries) {
		l.selected = len(l.entries) - 1
		return
	}
	l.entries = append(l.entries[:l.selected], l.entries[l.selected+1:]...)
	if l.selected >= len(l.entries) {
		l.selected = max(len(l.entries)-1, 0)
	}
}
