package parser

import "strings"

// OptionalParser accepts NULL (in any case) as an answer and returns nil for it.
// Any other line goes to the base parser.
type OptionalParser[T any] struct {
	base Parser[T]
}

// NewOptionalParser creates a parser that can handle NULL values.
func NewOptionalParser[T any](base Parser[T]) *OptionalParser[T] {
	return &OptionalParser[T]{base: base}
}

// Parse parses the value, returning nil for NULL.
func (p *OptionalParser[T]) Parse(value string) (*T, error) {
	if strings.EqualFold(strings.TrimSpace(value), "NULL") {
		return nil, nil
	}

	v, err := p.base.Parse(value)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Validate validates a non-nil value using the base parser's validation.
func (p *OptionalParser[T]) Validate(value *T) error {
	if value == nil {
		return nil
	}
	return p.base.Validate(*value)
}

// ParseAndValidate combines parsing and validation.
func (p *OptionalParser[T]) ParseAndValidate(value string) (*T, error) {
	parsed, err := p.Parse(value)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}
