package parser

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// EnumParser maps a fixed set of words to values, ignoring case unless
// CaseSensitive is called.
type EnumParser[T comparable] struct {
	BaseParser[T]
	exact       map[string]T
	values      map[string]T
	caseMatters bool
}

// NewEnumParser accepts the keys of values.
func NewEnumParser[T comparable](values map[string]T) *EnumParser[T] {
	folded := make(map[string]T, len(values))
	for word, v := range values {
		folded[strings.ToUpper(word)] = v
	}

	parser := &EnumParser[T]{
		exact:  values,
		values: folded,
	}

	parser.BaseParser = BaseParser[T]{
		ParseFunc: parser.parseEnum,
	}

	return parser
}

// CaseSensitive makes the enum parser case-sensitive.
func (p *EnumParser[T]) CaseSensitive() *EnumParser[T] {
	if !p.caseMatters {
		p.values = p.exact
		p.caseMatters = true
	}
	return p
}

func (p *EnumParser[T]) parseEnum(value string) (T, error) {
	word := strings.TrimSpace(value)
	if !p.caseMatters {
		word = strings.ToUpper(word)
	}
	if v, ok := p.values[word]; ok {
		return v, nil
	}

	var zero T
	return zero, fmt.Errorf("unknown answer %q, want one of: %s",
		value, strings.Join(slices.Sorted(maps.Keys(p.values)), ", "))
}

// EnumStringParser returns the matched word itself.
type EnumStringParser = EnumParser[string]

// NewEnumStringParser accepts exactly the given words.
func NewEnumStringParser(values ...string) *EnumStringParser {
	valueMap := make(map[string]string, len(values))
	for _, v := range values {
		valueMap[v] = v
	}
	return NewEnumParser(valueMap)
}
