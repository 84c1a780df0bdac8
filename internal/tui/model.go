// Package tui implements the interactive todo screen.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todotui/internal/store"
	"todotui/internal/todo"
)

// Model is the bubbletea model for the single-screen todo UI.
type Model struct {
	path string

	input      textinput.Model
	list       *todo.List
	showDetail bool

	keys KeyMap
	help help.Model

	width  int
	height int
	ready  bool

	// Set on the quit path, read by Run after the program returns.
	saveErr error
}

// New creates a model over the given entries, persisted at path on exit.
func New(path string, entries []string) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Focus()

	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle

	return Model{
		path:  path,
		input: ti,
		list:  todo.NewList(entries),
		keys:  DefaultKeyMap(),
		help:  h,
	}
}

// Init starts the input cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.Width = inputFieldWidth(msg.Width)
		m.help.Width = max(msg.Width-2*screenMargin, 0)
		return m, nil

	case tea.MouseMsg:
		// Mouse capture is on, but mouse events do nothing.
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey dispatches a single key event.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveErr = store.Save(m.path, m.list.Entries())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Commit):
		return m.commit(), nil

	case key.Matches(msg, m.keys.Up):
		m.list.Retreat()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.list.Advance()
		return m, nil

	case key.Matches(msg, m.keys.Remove):
		m.list.RemoveSelected()
		return m, nil
	}

	// Only appends and backspace reach the buffer, so the cursor stays
	// pinned after the last character.
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

// commit files the buffer as a new entry, or toggles the detail overlay
// when the buffer is empty.
func (m Model) commit() Model {
	text := m.input.Value()
	if text == "" {
		m.showDetail = !m.showDetail
		return m
	}
	m.list.Add(text, time.Now())
	m.input.Reset()
	return m
}

// View renders the screen.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	frame := renderScreen(m.help.View(m.keys), m.input.View(), m.list, m.width, m.height)
	if m.showDetail {
		if entry, ok := m.list.SelectedEntry(); ok {
			popup, x, y := renderDetailBox(entry, m.width, m.height)
			frame = Overlay(frame, popup, x, y)
		}
	}
	return frame
}

// RunOptions configures an interactive session.
type RunOptions struct {
	Path    string
	Entries []string
}

// Run starts the interactive session and blocks until it exits. The
// terminal is put into raw mode on the alternate screen with mouse
// capture; bubbletea restores it on every exit path, including panics,
// before Run returns.
func Run(opts RunOptions) error {
	m := New(opts.Path, opts.Entries)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.saveErr
	}
	return nil
}
