package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStamp(t *testing.T) {
	tests := []struct {
		name string
		text string
		at   time.Time
		want string
	}{
		{
			name: "afternoon",
			text: "buy milk",
			at:   time.Date(2024, time.March, 7, 15, 4, 0, 0, time.UTC),
			want: "buy milk [March 07 03:04 PM]",
		},
		{
			name: "morning zero padding",
			text: "water plants",
			at:   time.Date(2024, time.July, 1, 9, 5, 0, 0, time.UTC),
			want: "water plants [July 01 09:05 AM]",
		},
		{
			name: "midnight",
			text: "sleep",
			at:   time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
			want: "sleep [December 31 12:00 AM]",
		},
		{
			name: "noon",
			text: "lunch",
			at:   time.Date(2024, time.June, 15, 12, 30, 0, 0, time.UTC),
			want: "lunch [June 15 12:30 PM]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Stamp(tt.text, tt.at))
		})
	}
}

func TestList_Add(t *testing.T) {
	l := NewList(nil)
	at := time.Date(2024, time.March, 7, 15, 4, 0, 0, time.UTC)

	entry := l.Add("buy milk", at)

	require.Equal(t, 1, l.Len())
	assert.Equal(t, "buy milk [March 07 03:04 PM]", entry)
	assert.Equal(t, []string{entry}, l.Entries())

	l.Add("call dentist", at)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 0, l.Selected(), "adding must not move the selection")
}

func TestList_Advance_WrapsExactlyOnce(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		entries := make([]string, n)
		for i := range entries {
			entries[i] = string(rune('a' + i))
		}

		for start := 0; start < n; start++ {
			l := NewList(append([]string(nil), entries...))
			l.selected = start

			for step := 1; step <= n; step++ {
				l.Advance()
				assert.Equal(t, (start+step)%n, l.Selected(),
					"n=%d start=%d step=%d", n, start, step)
			}
			assert.Equal(t, start, l.Selected(), "n advances must return to the start")
		}
	}
}

func TestList_Retreat(t *testing.T) {
	l := NewList([]string{"a", "b", "c"})

	l.Retreat()
	assert.Equal(t, 2, l.Selected(), "retreat from the first entry wraps to the last")

	l.Retreat()
	assert.Equal(t, 1, l.Selected())

	l.Retreat()
	assert.Equal(t, 0, l.Selected())
}

func TestList_Navigation_EmptyList(t *testing.T) {
	l := NewList(nil)

	l.Advance()
	l.Retreat()
	l.RemoveSelected()

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Selected())
}

func TestList_RemoveSelected(t *testing.T) {
	tests := []struct {
		name         string
		entries      []string
		selected     int
		wantEntries  []string
		wantSelected int
	}{
		{
			name:         "middle entry keeps index",
			entries:      []string{"a", "b", "c"},
			selected:     1,
			wantEntries:  []string{"a", "c"},
			wantSelected: 1,
		},
		{
			name:         "last entry moves selection back",
			entries:      []string{"a", "b", "c"},
			selected:     2,
			wantEntries:  []string{"a", "b"},
			wantSelected: 1,
		},
		{
			name:         "first entry keeps index",
			entries:      []string{"a", "b", "c"},
			selected:     0,
			wantEntries:  []string{"b", "c"},
			wantSelected: 0,
		},
		{
			name:         "only entry empties the list",
			entries:      []string{"a"},
			selected:     0,
			wantEntries:  []string{},
			wantSelected: 0,
		},
		{
			name:         "out of range clamps without removing",
			entries:      []string{"a", "b"},
			selected:     5,
			wantEntries:  []string{"a", "b"},
			wantSelected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &List{entries: append([]string(nil), tt.entries...), selected: tt.selected}

			l.RemoveSelected()

			assert.Equal(t, tt.wantEntries, l.Entries())
			assert.Equal(t, tt.wantSelected, l.Selected())
			if l.Len() > 0 {
				assert.Less(t, l.Selected(), l.Len())
			}
		})
	}
}

func TestList_SelectedEntry(t *testing.T) {
	l := NewList(nil)
	_, ok := l.SelectedEntry()
	assert.False(t, ok, "empty list has no selected entry")

	l = NewList([]string{"a", "b"})
	entry, ok := l.SelectedEntry()
	require.True(t, ok)
	assert.Equal(t, "a", entry)

	l.Advance()
	entry, ok = l.SelectedEntry()
	require.True(t, ok)
	assert.Equal(t, "b", entry)
}
