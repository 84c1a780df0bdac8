package main

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"todotui/internal/format"
	"todotui/internal/store"
)

var listOpts struct {
	format string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the todo list",
	Long: `Print the saved todo list without entering the TUI.

Examples:
  # Numbered plain text
  todotui list

  # Machine-readable output
  todotui list --format json`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml)")
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := store.Load(todoPath)
	if err != nil {
		var readErr *store.ReadError
		if !errors.As(err, &readErr) {
			return err
		}
		// No file yet reads as an empty list.
		logger.Debug("no todo file", "path", todoPath)
		entries = nil
	}

	formatter := format.New(format.Type(strings.ToLower(listOpts.format)))
	return formatter.Format(os.Stdout, entries)
}
