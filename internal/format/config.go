package format

import (
	"fmt"
	"io"
	"strings"
)

// Answer is one parsed reply of the demo command.
type Answer struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
	// Defaulted is set when Value is the type's zero value substituted for invalid input.
	Defaulted bool `json:"defaulted,omitzero" yaml:"defaulted,omitempty"`
}

// Config holds configuration values needed by formatters.
type Config struct {
	// Template is the text/template source used by the template format.
	Template string
}

// FormatFunc writes answers to out.
type FormatFunc func(out io.Writer, answers []Answer, config Config) error

// Mode names an output format.
type Mode string

const (
	ModeText     Mode = "text"
	ModeJSON     Mode = "json"
	ModeYAML     Mode = "yaml"
	ModeTable    Mode = "table"
	ModeTemplate Mode = "template"
)

var formatters = map[Mode]FormatFunc{
	ModeText:     formatText,
	ModeJSON:     formatJSON,
	ModeYAML:     formatYAML,
	ModeTable:    formatTable,
	ModeTemplate: formatTemplate,
}

// Modes returns all supported modes in a stable order.
func Modes() []Mode {
	return []Mode{ModeText, ModeJSON, ModeYAML, ModeTable, ModeTemplate}
}

// Lookup returns the formatter for mode (case-insensitive).
func Lookup(mode string) (FormatFunc, error) {
	if f, ok := formatters[Mode(strings.ToLower(mode))]; ok {
		return f, nil
	}
	var names []string
	for _, m := range Modes() {
		names = append(names, string(m))
	}
	return nil, fmt.Errorf("invalid format: %s (valid: %s)", mode, strings.Join(names, ", "))
}
