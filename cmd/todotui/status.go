package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"todotui/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the todo file status",
	Long: `Show where todos are stored and what the file currently holds.

Reports the file path, size, age and entry count. A file that exists but
cannot be parsed is reported, not treated as a failure.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	return writeStatus(os.Stdout, todoPath)
}

// writeStatus reports the todo file's path, presence, size, age and entry
// count to w. Every report case returns nil; a corrupt file is part of
// the report, not a failure.
func writeStatus(w io.Writer, path string) error {
	fmt.Fprintf(w, "File: %s\n", path)

	info, err := os.Stat(path)
	if err != nil {
		fmt.Fprintln(w, "Exists: no")
		fmt.Fprintln(w, "Entries: 0")
		return nil
	}

	fmt.Fprintln(w, "Exists: yes")
	fmt.Fprintf(w, "Size: %s\n", humanize.Bytes(uint64(info.Size())))
	fmt.Fprintf(w, "Modified: %s\n", humanize.Time(info.ModTime()))

	entries, err := store.Load(path)
	if err != nil {
		fmt.Fprintf(w, "Entries: unreadable (%v)\n", err)
		return nil
	}
	fmt.Fprintf(w, "Entries: %d\n", len(entries))

	return nil
}
