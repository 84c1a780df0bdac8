package main

import (
	"github.com/spf13/cobra"

	"todotui/internal/store"
	"todotui/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive todo screen",
	Long: `Launch the interactive terminal user interface.

The screen has a text input on top and the todo list below it. The list
is loaded when the TUI starts and written back when it exits.

Key bindings:
  type        Edit the input buffer
  enter       Add the buffer as a todo, or toggle the detail
              popup when the buffer is empty
  ↑/↓         Move the selection (wraps around)
  tab         Remove the selected todo
  esc, ctrl+c Save and exit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	entries, err := store.LoadOrInit(todoPath)
	if err != nil {
		return err
	}

	return tui.Run(tui.RunOptions{
		Path:    todoPath,
		Entries: entries,
	})
}
