// Package format renders todo lists for non-interactive output.
package format

import "io"

// Formatter writes a todo list to a writer.
type Formatter interface {
	// Format writes the entries, in order, to w.
	Format(w io.Writer, todos []string) error
}

// Type identifies an output format.
type Type string

const (
	TypePlain Type = "plain"
	TypeJSON  Type = "json"
	TypeYAML  Type = "yaml"
)

// New creates a formatter for the given format type.
func New(t Type) Formatter {
	switch t {
	case TypeJSON:
		return NewJSONFormatter()
	case TypeYAML:
		return NewYAMLFormatter()
	case TypePlain:
		fallthrough
	default:
		return NewPlainFormatter()
	}
}
