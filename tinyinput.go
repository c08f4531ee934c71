// Package tinyinput reads a line from standard input and parses it into a
// caller-chosen type, returning an error instead of terminating the program.
//
//	count, err := tinyinput.Read[int]("Enter count: ")
//	ratio, _ := tinyinput.Read[float64]("Enter ratio: ") // zero value on error
//	name, err := tinyinput.Read[string]("Enter name: ")
//
// Every call prints its prompt (if any), consumes exactly one line, trims
// surrounding whitespace and converts the rest. A call returns either a value
// or a *ReadError of kind KindIO (the line could not be read) or KindParse
// (the line could not be converted). Retrying, defaulting and reporting are
// left to the caller.
//
// Calls block until a line arrives or the stream ends; there is no timeout or
// cancellation.
package tinyinput

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/apstndb/tinyinput/parser"
)

// Read prompts on standard output and parses one line of standard input as T.
//
// T may be any type parser.For resolves: strings, booleans, numbers,
// time.Duration, types whose pointer implements encoding.TextUnmarshaler, and
// named types over those kinds. For any other T the line is still consumed and
// a KindParse error is returned.
func Read[T any](prompt string) (T, error) {
	return Scan[T](nil, prompt)
}

// ReadWith is like Read but converts the line with p, including p's validation.
func ReadWith[T any](prompt string, p parser.Parser[T]) (T, error) {
	return ScanWith(nil, prompt, p)
}

// Scan is Read on the streams of c.
func Scan[T any](c *Console, prompt string) (T, error) {
	return ScanWith(c, prompt, resolve[T](c))
}

// ScanWith is ReadWith on the streams of c.
func ScanWith[T any](c *Console, prompt string, p parser.Parser[T]) (T, error) {
	line, err := c.ReadLine(prompt)
	if err != nil {
		var zero T
		return zero, err
	}
	return convert(c, line, p)
}

func resolve[T any](c *Console) parser.Parser[T] {
	if p, ok := parser.For[T](); ok {
		return p
	}
	c.logger().Debug("no string conversion for type", zap.Stringer("type", reflect.TypeFor[T]()))
	return parser.Func(func(string) (T, error) {
		var zero T
		return zero, errUnsupportedType
	})
}

// convert drops the parser's error: callers only learn that conversion failed.
func convert[T any](c *Console, line string, p parser.Parser[T]) (T, error) {
	v, err := p.ParseAndValidate(line)
	if err != nil {
		c.logger().Debug("parse failed", zap.Error(err))
		var zero T
		return zero, parseError()
	}
	return v, nil
}
