package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"todotui/internal/store"
	"todotui/internal/todo"
)

var addCmd = &cobra.Command{
	Use:   "add [text]...",
	Short: "Add todos without entering the TUI",
	Long: `Add todos to the list and save it.

Each todo is stamped with the current time, the same as an entry added
interactively. With no arguments, one todo per line is read from stdin.

Examples:
  todotui add buy milk
  printf 'one\ntwo\n' | todotui add`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	texts, err := collectTexts(args, os.Stdin)
	if err != nil {
		return err
	}

	stored, err := addTexts(todoPath, texts, time.Now())
	if err != nil {
		return err
	}

	for _, entry := range stored {
		fmt.Println(entry)
	}
	logger.Debug("saved todo file", "path", todoPath, "added", len(stored))
	return nil
}

// addTexts stamps each text with now, appends it to the list persisted at
// path, and saves. With no texts the list is saved unchanged. The stored
// entries are returned in the order added.
func addTexts(path string, texts []string, now time.Time) ([]string, error) {
	entries, err := store.LoadOrInit(path)
	if err != nil {
		return nil, err
	}

	list := todo.NewList(entries)
	stored := make([]string, 0, len(texts))
	for _, text := range texts {
		stored = append(stored, list.Add(text, now))
	}

	if err := store.Save(path, list.Entries()); err != nil {
		return nil, err
	}
	return stored, nil
}

// collectTexts returns the todo texts to add: the arguments joined into a
// single text, or one text per non-empty stdin line when there are none.
func collectTexts(args []string, in io.Reader) ([]string, error) {
	if len(args) > 0 {
		text := strings.TrimSpace(strings.Join(args, " "))
		if text == "" {
			return nil, nil
		}
		return []string{text}, nil
	}

	var texts []string
	scanner := bufio.NewScanner(in)
	const maxSize = 10 * 1024 * 1024 // 10MB max
	scanner.Buffer(make([]byte, 64*1024), maxSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return texts, nil
}
