package tui

import "github.com/charmbracelet/lipgloss"

// Box titles.
const (
	inputTitle  = "Add a TODO"
	listTitle   = "Todo(s)"
	detailTitle = "More info"
)

// selectionMarker prefixes the selected list row.
const selectionMarker = "> "

var (
	// Outer margin around the whole frame.
	screenStyle = lipgloss.NewStyle().Margin(screenMargin)

	// Help row, key names in green.
	helpKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	helpDescStyle = lipgloss.NewStyle().Bold(true)

	// List rows. The selection inverts onto a dark gray bar.
	entryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
)
