// Package store persists the todo list as a JSON array of strings.
package store

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// FileName is the name of the todo file inside the user's configuration
// directory.
const FileName = "todos.json"

//go:embed todos.schema.json
var schemaSource string

// todosSchema checks that a decoded document is a flat array of strings.
// encoding/json alone accepts a top-level null into a string slice, so
// the schema is what turns a malformed file into a hard error.
var todosSchema = jsonschema.MustCompileString("todos.schema.json", schemaSource)

// DefaultPath returns the fixed per-user path of the todo file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(dir, FileName), nil
}

// ReadError reports that the todo file could not be read. Callers
// normally recover from it by starting with an empty list.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ParseError reports that the todo file exists and was read, but its
// content is not a JSON array of strings.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports that the todo file could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Load reads the todo file and returns its entries in order. It returns
// a *ReadError when the file cannot be read and a *ParseError when the
// content is not a JSON array of strings. An empty array loads as an
// empty, non-nil slice.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if err := todosSchema.Validate(doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	// The schema guarantees an array of strings.
	raw := doc.([]interface{})
	todos := make([]string, len(raw))
	for i, v := range raw {
		todos[i] = v.(string)
	}
	return todos, nil
}

// LoadOrInit loads the todo file like Load, but recovers from an
// unreadable file by writing an empty array to path and returning an
// empty list, so later runs find a valid file. A file that exists but
// does not parse is not recovered from.
func LoadOrInit(path string) ([]string, error) {
	entries, err := Load(path)
	if err == nil {
		return entries, nil
	}

	var readErr *ReadError
	if !errors.As(err, &readErr) {
		return nil, err
	}

	slog.Debug("todo file not readable, starting empty", "path", path, "error", err)
	if err := Save(path, nil); err != nil {
		return nil, fmt.Errorf("initialize todo file: %w", err)
	}
	return []string{}, nil
}

// Save serializes todos as an indented JSON array and replaces the file,
// creating the parent directory if needed. The write goes through a temp
// file and a rename so the file is never left half-written. A nil slice
// is written as the empty array.
func Save(path string, todos []string) error {
	if todos == nil {
		todos = []string{}
	}

	data, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
