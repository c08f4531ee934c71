package parser

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/exp/constraints"
)

// BoolParser parses boolean values.
// It uses strconv.ParseBool which accepts:
// "1", "t", "T", "true", "TRUE", "True",
// "0", "f", "F", "false", "FALSE", "False".
type BoolParser struct {
	BaseParser[bool]
}

// NewBoolParser creates a new boolean parser.
func NewBoolParser() *BoolParser {
	return &BoolParser{
		BaseParser: BaseParser[bool]{
			ParseFunc: func(value string) (bool, error) {
				return strconv.ParseBool(strings.TrimSpace(value))
			},
		},
	}
}

// IntParser parses base-10 signed integers with optional range validation.
// Values that do not fit in T are rejected.
type IntParser[T constraints.Signed] struct {
	BaseParser[T]
	min *T
	max *T
}

// NewIntParser creates a new integer parser for T.
func NewIntParser[T constraints.Signed]() *IntParser[T] {
	bitSize := reflect.TypeFor[T]().Bits()
	return &IntParser[T]{
		BaseParser: BaseParser[T]{
			ParseFunc: func(value string) (T, error) {
				v, err := strconv.ParseInt(strings.TrimSpace(value), 10, bitSize)
				if err != nil {
					return 0, err
				}
				return T(v), nil
			},
		},
	}
}

// WithRange adds range validation to the integer parser.
func (p *IntParser[T]) WithRange(min, max T) *IntParser[T] {
	p.min = &min
	p.max = &max
	p.ValidateFunc = CreateRangeValidator(p.min, p.max)
	return p
}

// WithMin adds minimum value validation.
func (p *IntParser[T]) WithMin(min T) *IntParser[T] {
	p.min = &min
	p.ValidateFunc = CreateRangeValidator(p.min, p.max)
	return p
}

// WithMax adds maximum value validation.
func (p *IntParser[T]) WithMax(max T) *IntParser[T] {
	p.max = &max
	p.ValidateFunc = CreateRangeValidator(p.min, p.max)
	return p
}

// UintParser parses base-10 unsigned integers with optional range validation.
type UintParser[T constraints.Unsigned] struct {
	BaseParser[T]
	min *T
	max *T
}

// NewUintParser creates a new unsigned integer parser for T.
func NewUintParser[T constraints.Unsigned]() *UintParser[T] {
	bitSize := reflect.TypeFor[T]().Bits()
	return &UintParser[T]{
		BaseParser: BaseParser[T]{
			ParseFunc: func(value string) (T, error) {
				v, err := strconv.ParseUint(strings.TrimSpace(value), 10, bitSize)
				if err != nil {
					return 0, err
				}
				return T(v), nil
			},
		},
	}
}

// WithRange adds range validation to the unsigned integer parser.
func (p *UintParser[T]) WithRange(min, max T) *UintParser[T] {
	p.min = &min
	p.max = &max
	p.ValidateFunc = CreateRangeValidator(p.min, p.max)
	return p
}

// FloatParser parses floating-point values.
type FloatParser[T constraints.Float] struct {
	BaseParser[T]
	min *T
	max *T
}

// NewFloatParser creates a new floating-point parser for T.
// It accepts everything strconv.ParseFloat accepts, including "NaN" and "Inf".
func NewFloatParser[T constraints.Float]() *FloatParser[T] {
	bitSize := reflect.TypeFor[T]().Bits()
	return &FloatParser[T]{
		BaseParser: BaseParser[T]{
			ParseFunc: func(value string) (T, error) {
				v, err := strconv.ParseFloat(strings.TrimSpace(value), bitSize)
				if err != nil {
					return 0, err
				}
				return T(v), nil
			},
		},
	}
}

// WithRange adds range validation to the floating-point parser.
func (p *FloatParser[T]) WithRange(min, max T) *FloatParser[T] {
	p.min = &min
	p.max = &max
	p.ValidateFunc = CreateRangeValidator(p.min, p.max)
	return p
}

// NewComplexParser creates a parser for complex numbers such as "1+2i".
func NewComplexParser[T constraints.Complex]() *BaseParser[T] {
	bitSize := reflect.TypeFor[T]().Bits()
	return Func(func(value string) (T, error) {
		v, err := strconv.ParseComplex(strings.TrimSpace(value), bitSize)
		if err != nil {
			return 0, err
		}
		return T(v), nil
	})
}

// DurationParser parses duration values with optional range validation.
type DurationParser struct {
	BaseParser[time.Duration]
	min *time.Duration
	max *time.Duration
}

// NewDurationParser creates a new duration parser.
func NewDurationParser() *DurationParser {
	return &DurationParser{
		BaseParser: BaseParser[time.Duration]{
			ParseFunc: func(value string) (time.Duration, error) {
				return time.ParseDuration(strings.TrimSpace(value))
			},
		},
	}
}

// WithRange adds range validation to the duration parser.
func (p *DurationParser) WithRange(min, max time.Duration) *DurationParser {
	p.min = &min
	p.max = &max
	p.ValidateFunc = CreateDurationRangeValidator(p.min, p.max)
	return p
}

// WithMin adds minimum duration validation.
func (p *DurationParser) WithMin(min time.Duration) *DurationParser {
	p.min = &min
	p.ValidateFunc = CreateDurationRangeValidator(p.min, p.max)
	return p
}

// WithMax adds maximum duration validation.
func (p *DurationParser) WithMax(max time.Duration) *DurationParser {
	p.max = &max
	p.ValidateFunc = CreateDurationRangeValidator(p.min, p.max)
	return p
}

// NewTimeParser creates a parser for time values in the given layout.
func NewTimeParser(layout string) *BaseParser[time.Time] {
	return Func(func(value string) (time.Time, error) {
		return time.Parse(layout, strings.TrimSpace(value))
	})
}

// StringParser parses string values with optional validation.
type StringParser struct {
	BaseParser[string]
	minLen *int
	maxLen *int
}

// NewStringParser creates a new string parser.
// It returns the value as-is without any processing; the empty string is valid.
func NewStringParser() *StringParser {
	return &StringParser{
		BaseParser: BaseParser[string]{
			ParseFunc: func(value string) (string, error) {
				return value, nil
			},
		},
	}
}

// NewQuotedStringParser creates a string parser that removes one pair of
// surrounding single or double quotes.
func NewQuotedStringParser() *StringParser {
	return &StringParser{
		BaseParser: BaseParser[string]{
			ParseFunc: func(value string) (string, error) {
				trimmed := strings.TrimSpace(value)
				if len(trimmed) >= 2 {
					if (trimmed[0] == '"' && trimmed[len(trimmed)-1] == '"') ||
						(trimmed[0] == '\'' && trimmed[len(trimmed)-1] == '\'') {
						return trimmed[1 : len(trimmed)-1], nil
					}
				}
				return trimmed, nil
			},
		},
	}
}

// WithLengthRange adds length validation. Length is counted in runes.
func (p *StringParser) WithLengthRange(min, max int) *StringParser {
	p.minLen = &min
	p.maxLen = &max
	p.ValidateFunc = p.validateString
	return p
}

func (p *StringParser) validateString(value string) error {
	n := utf8.RuneCountInString(value)
	if p.minLen != nil && n < *p.minLen {
		return fmt.Errorf("string length %d is less than minimum %d", n, *p.minLen)
	}
	if p.maxLen != nil && n > *p.maxLen {
		return fmt.Errorf("string length %d is greater than maximum %d", n, *p.maxLen)
	}
	return nil
}

// NewRuneParser creates a parser accepting exactly one character.
func NewRuneParser() *BaseParser[rune] {
	return Func(func(value string) (rune, error) {
		r, size := utf8.DecodeRuneInString(value)
		if size == 0 || size != len(value) || r == utf8.RuneError {
			return 0, fmt.Errorf("expected exactly one character, got %q", value)
		}
		return r, nil
	})
}

// TextUnmarshalerPtr is satisfied by *T when T decodes itself from text.
type TextUnmarshalerPtr[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// NewTextParser creates a parser backed by T's UnmarshalText method,
// e.g. NewTextParser[netip.Addr]().
func NewTextParser[T any, PT TextUnmarshalerPtr[T]]() *BaseParser[T] {
	return Func(func(value string) (T, error) {
		var v T
		if err := PT(&v).UnmarshalText([]byte(value)); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	})
}
