package format

// Formatters build their whole output before writing so that a failing
// formatter leaves out untouched.

import (
	"encoding"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/template"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/go-sprout/sprout"
	"github.com/go-sprout/sprout/group/hermetic"
	"github.com/goccy/go-yaml"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"
)

// writeBuffered writes to a temporary buffer first, and only writes to out if no error occurs.
func writeBuffered(out io.Writer, buildFunc func(out io.Writer) error) error {
	var buf strings.Builder
	if err := buildFunc(&buf); err != nil {
		return err
	}

	if buf.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(out, buf.String())
	return err
}

// Display converts a parsed value into something every format can encode:
// text-marshalable and Stringer values become strings and non-finite floats
// are spelled out.
func Display(v any) any {
	switch x := v.(type) {
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return strconv.FormatFloat(x, 'g', -1, 64)
		}
		return x
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return strconv.FormatFloat(float64(x), 'g', -1, 32)
		}
		return x
	case encoding.TextMarshaler:
		b, err := x.MarshalText()
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	case fmt.Stringer:
		return x.String()
	default:
		return v
	}
}

// text renders a displayed value for the text and table formats.
func text(v any) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprint(v)
}

func displayed(answers []Answer) []Answer {
	return lo.Map(answers, func(a Answer, _ int) Answer {
		a.Value = Display(a.Value)
		return a
	})
}

// formatText writes a single line like "x = 42, y = 3.14, s = foo".
func formatText(out io.Writer, answers []Answer, _ Config) error {
	parts := lo.Map(displayed(answers), func(a Answer, _ int) string {
		return a.Name + " = " + text(a.Value)
	})
	_, err := fmt.Fprintln(out, strings.Join(parts, ", "))
	return err
}

func formatJSON(out io.Writer, answers []Answer, _ Config) error {
	return writeBuffered(out, func(out io.Writer) error {
		if err := json.MarshalWrite(out, displayed(answers), jsontext.WithIndent("  ")); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		_, err := io.WriteString(out, "\n")
		return err
	})
}

func formatYAML(out io.Writer, answers []Answer, _ Config) error {
	return writeBuffered(out, func(out io.Writer) error {
		b, err := yaml.Marshal(displayed(answers))
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = out.Write(b)
		return err
	})
}

func formatTable(out io.Writer, answers []Answer, _ Config) error {
	return writeBuffered(out, func(out io.Writer) error {
		table := tablewriter.NewTable(out,
			tablewriter.WithRenderer(
				renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
			tablewriter.WithHeaderAlignment(tw.AlignLeft),
			tablewriter.WithTrimSpace(tw.Off),
			tablewriter.WithHeaderAutoFormat(tw.Off),
		).Configure(func(config *tablewriter.Config) {
			config.Row.ColumnAligns = []tw.Align{tw.AlignLeft, tw.AlignLeft, tw.AlignLeft}
			config.Row.Formatting.AutoWrap = tw.WrapNone
		})

		table.Header([]string{"NAME", "TYPE", "VALUE"})
		for _, a := range displayed(answers) {
			if err := table.Append([]string{a.Name, a.Type, text(a.Value)}); err != nil {
				return fmt.Errorf("failed to append row: %w", err)
			}
		}
		return table.Render()
	})
}

var errNoTemplate = errors.New("template format requires --template")

func formatTemplate(out io.Writer, answers []Answer, config Config) error {
	if config.Template == "" {
		return errNoTemplate
	}

	tmpl, err := template.New("answers").Funcs(sproutFuncMap()).Parse(config.Template)
	if err != nil {
		return fmt.Errorf("invalid template: %w", err)
	}

	return writeBuffered(out, func(out io.Writer) error {
		return tmpl.Execute(out, displayed(answers))
	})
}

func sproutFuncMap() template.FuncMap {
	handler := sprout.New()
	lo.Must0(handler.AddGroups(hermetic.RegistryGroup()))
	return handler.Build()
}
