package main

import (
	"fmt"
	"io"
	"maps"
	"net/netip"
	"slices"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/apstndb/tinyinput"
	"github.com/apstndb/tinyinput/internal/format"
	"github.com/apstndb/tinyinput/parser"
)

// question is one --ask entry: NAME:TYPE[?][*]:PROMPT.
type question struct {
	Name     string
	Type     string
	Prompt   string
	Optional bool // zero value when no valid answer arrives
	Nullable bool // NULL is an answer
	Secret   bool
}

// defaultQuestions are asked when no --ask option is given.
var defaultQuestions = []string{
	"x:int:Enter integer: ",
	"y:float64?:Enter float: ",
	"s:string:Enter string: ",
}

func parseQuestion(spec string) (question, error) {
	parts := strings.SplitN(spec, ":", 3)
	if len(parts) < 2 {
		return question{}, fmt.Errorf("invalid question %q: want NAME:TYPE[?][*]:PROMPT", spec)
	}

	q := question{Name: strings.TrimSpace(parts[0])}
	if q.Name == "" {
		return question{}, fmt.Errorf("invalid question %q: empty name", spec)
	}

	typ := strings.TrimSpace(parts[1])
	for {
		if t, ok := strings.CutSuffix(typ, "?"); ok {
			typ, q.Optional = t, true
			continue
		}
		if t, ok := strings.CutSuffix(typ, "*"); ok {
			typ, q.Nullable = t, true
			continue
		}
		break
	}
	q.Type = strings.ToLower(typ)
	if _, ok := askers[q.Type]; !ok {
		return question{}, fmt.Errorf("invalid question %q: unknown type %q", spec, typ)
	}

	if len(parts) == 3 {
		q.Prompt = parts[2]
	} else {
		q.Prompt = q.Name + ": "
	}
	return q, nil
}

// asker reads one value of a fixed type and returns it boxed. A NULL answer
// to a nullable question is returned as nil.
type asker struct {
	description string
	ask         func(c *tinyinput.Console, q question) (any, error)
}

func box[T any](v T, err error) (any, error) {
	return v, err
}

// scanAs resolves the parser from T, the way library callers usually do.
func scanAs[T any](description string) asker {
	return scanWith(description, parser.MustFor[T]())
}

func scanWith[T any](description string, p parser.Parser[T]) asker {
	return asker{
		description: description,
		ask: func(c *tinyinput.Console, q question) (any, error) {
			if !q.Nullable {
				return box(scan(c, q, p))
			}
			v, err := scan[*T](c, q, parser.NewOptionalParser(p))
			if v == nil {
				return nil, err
			}
			return *v, err
		},
	}
}

func scan[T any](c *tinyinput.Console, q question, p parser.Parser[T]) (T, error) {
	if q.Secret {
		return tinyinput.ScanSecretWith(c, q.Prompt, p)
	}
	return tinyinput.ScanWith(c, q.Prompt, p)
}

var askers = map[string]asker{
	"int":      scanAs[int]("signed integer"),
	"int8":     scanAs[int8]("8-bit signed integer"),
	"int16":    scanAs[int16]("16-bit signed integer"),
	"int32":    scanAs[int32]("32-bit signed integer"),
	"int64":    scanAs[int64]("64-bit signed integer"),
	"uint":     scanAs[uint]("unsigned integer"),
	"uint8":    scanAs[uint8]("8-bit unsigned integer"),
	"uint16":   scanAs[uint16]("16-bit unsigned integer"),
	"uint32":   scanAs[uint32]("32-bit unsigned integer"),
	"uint64":   scanAs[uint64]("64-bit unsigned integer"),
	"float":    scanAs[float64]("floating-point number (float64)"),
	"float32":  scanAs[float32]("32-bit floating-point number"),
	"float64":  scanAs[float64]("64-bit floating-point number"),
	"bool":     scanAs[bool]("true/false, 1/0, t/f"),
	"string":   scanAs[string]("any text, including empty"),
	"duration": scanAs[time.Duration]("duration such as 1h30m"),
	"time":     scanWith("RFC 3339 timestamp", parser.NewTextParser[time.Time]()),
	"ip":       scanWith("IPv4 or IPv6 address", parser.NewTextParser[netip.Addr]()),
	"rune": scanWith("exactly one character", parser.WithTransform(parser.NewRuneParser(),
		func(r rune) (string, error) { return string(r), nil })),
}

// writeTypeList prints the --ask types with aligned descriptions.
func writeTypeList(w io.Writer) error {
	names := slices.Sorted(maps.Keys(askers))
	width := 0
	for _, n := range names {
		width = max(width, runewidth.StringWidth(n))
	}
	for _, n := range names {
		if _, err := fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(n, width), askers[n].description); err != nil {
			return err
		}
	}
	return nil
}

// session applies the demo's input policy: parse errors are reported and
// retried up to retries times, after which optional questions fall back to
// the zero value. After an I/O error optional questions fall back at once and
// required ones end the run.
type session struct {
	console *tinyinput.Console
	errOut  io.Writer
	retries int
	logger  *zap.Logger
}

var errorColor = color.New(color.FgRed)

func (s *session) ask(q question) (format.Answer, error) {
	a := askers[q.Type]
	for attempt := 0; ; attempt++ {
		v, err := a.ask(s.console, q)
		switch {
		case err == nil:
			return format.Answer{Name: q.Name, Type: q.Type, Value: v}, nil
		case tinyinput.IsParse(err):
			errorColor.Fprintf(s.errOut, "invalid %s value for %s\n", q.Type, q.Name)
			s.logger.Debug("invalid answer", zap.String("question", q.Name), zap.Int("attempt", attempt))
			if attempt < s.retries {
				continue
			}
			if q.Optional {
				// v is already the zero value of the question's type.
				return format.Answer{Name: q.Name, Type: q.Type, Value: v, Defaulted: true}, nil
			}
			return format.Answer{}, withExitCode(exitCodeInput, fmt.Errorf("no valid %s value for %s", q.Type, q.Name))
		case q.Optional:
			s.logger.Debug("read failed, using zero value", zap.String("question", q.Name), zap.Error(err))
			return format.Answer{Name: q.Name, Type: q.Type, Value: v, Defaulted: true}, nil
		default:
			return format.Answer{}, withExitCode(exitCodeInput, fmt.Errorf("failed to read %s: %w", q.Name, err))
		}
	}
}

func (s *session) askAll(questions []question) ([]format.Answer, error) {
	answers := make([]format.Answer, 0, len(questions))
	for _, q := range questions {
		a, err := s.ask(q)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}
