package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"todotui/internal/todo"
)

// Layout constants. One help row and a three-row input box sit above the
// list, which takes the remaining height.
const (
	screenMargin = 2
	helpHeight   = 1
	inputHeight  = 3
)

// renderScreen composes the full frame at the given terminal size.
func renderScreen(helpRow, inputView string, list *todo.List, width, height int) string {
	innerW := max(width-2*screenMargin, 10)
	listH := max(height-2*screenMargin-helpHeight-inputHeight, 3)

	column := lipgloss.JoinVertical(lipgloss.Left,
		ansi.Truncate(helpRow, innerW, ""),
		renderInputBox(inputView, innerW),
		renderTodoBox(list, innerW, listH),
	)
	return screenStyle.Render(column)
}

// inputFieldWidth is the usable width of the text field inside the input
// box at the given terminal width, leaving a cell for the cursor.
func inputFieldWidth(termWidth int) int {
	return max(termWidth-2*screenMargin-3, 1)
}

func renderInputBox(inputView string, width int) string {
	return boxWithTitle(inputTitle, inputView, width, inputHeight)
}

// renderTodoBox renders the bordered list, scrolled so the selected row
// stays visible.
func renderTodoBox(list *todo.List, width, height int) string {
	innerW := width - 2
	innerH := height - 2

	entries := list.Entries()
	offset := listOffset(list.Selected(), len(entries), innerH)

	var rows []string
	for i := offset; i < len(entries) && i-offset < innerH; i++ {
		row := fmt.Sprintf("%d: %s", i+1, entries[i])
		if i == list.Selected() {
			row = ansi.Truncate(selectionMarker+row, innerW, "…")
			rows = append(rows, selectedStyle.Width(innerW).Render(row))
		} else {
			row = ansi.Truncate("  "+row, innerW, "…")
			rows = append(rows, entryStyle.Render(row))
		}
	}
	return boxWithTitle(listTitle, strings.Join(rows, "\n"), width, height)
}

// listOffset returns the first visible row for a window of visible rows
// over count entries.
func listOffset(selected, count, visible int) int {
	if visible <= 0 || count <= visible || selected < visible {
		return 0
	}
	return min(selected-visible+1, count-visible)
}

// renderDetailBox renders the centered overlay for the selected entry and
// returns it with its top-left position.
func renderDetailBox(entry string, termWidth, termHeight int) (popup string, x, y int) {
	w := max(termWidth*60/100, 8)
	h := max(termHeight*20/100, 3)

	body := lipgloss.NewStyle().Width(w - 2).Render(entry)
	return boxWithTitle(detailTitle, body, w, h), (termWidth - w) / 2, (termHeight - h) / 2
}

// boxWithTitle draws a bordered box of exactly width x height cells with
// the title embedded in the top border. Content lines are clipped and
// padded to fit.
func boxWithTitle(title, content string, width, height int) string {
	if width < 2 || height < 2 {
		return ""
	}
	innerW := width - 2
	innerH := height - 2

	title = ansi.Truncate(title, innerW, "")
	var b strings.Builder
	b.WriteString("┌" + title + strings.Repeat("─", innerW-ansi.StringWidth(title)) + "┐")

	lines := strings.Split(content, "\n")
	for i := 0; i < innerH; i++ {
		var line string
		if i < len(lines) {
			line = ansi.Truncate(lines[i], innerW, "")
		}
		if pad := innerW - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		b.WriteString("\n│" + line + "│")
	}

	b.WriteString("\n└" + strings.Repeat("─", innerW) + "┘")
	return b.String()
}
