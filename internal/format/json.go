package format

import (
	"encoding/json"
	"io"
)

// JSONFormatter writes entries as an indented JSON array, the same shape
// the todo file itself uses.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// Format writes the entries as a JSON array.
func (f *JSONFormatter) Format(w io.Writer, todos []string) error {
	if todos == nil {
		todos = []string{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(todos)
}
