package format

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter writes entries as a YAML sequence.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes the entries as a YAML sequence.
func (f *YAMLFormatter) Format(w io.Writer, todos []string) error {
	if todos == nil {
		todos = []string{}
	}
	data, err := yaml.Marshal(todos)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
