package parser

// TransformParser converts the result of an inner parser, e.g. a rune into
// the string holding it.
type TransformParser[T, U any] struct {
	BaseParser[U]
	inner     Parser[T]
	transform func(T) (U, error)
}

// NewTransformParser feeds the inner parser's result to transform.
// Validators set on the returned parser see the transformed value.
func NewTransformParser[T, U any](inner Parser[T], transform func(T) (U, error)) *TransformParser[T, U] {
	p := &TransformParser[T, U]{inner: inner, transform: transform}
	p.BaseParser = BaseParser[U]{
		ParseFunc: func(s string) (U, error) {
			v, err := inner.Parse(s)
			if err != nil {
				var zero U
				return zero, err
			}
			return transform(v)
		},
	}
	return p
}

// ParseAndValidate runs the inner parser's validation, transforms, then runs
// its own.
func (p *TransformParser[T, U]) ParseAndValidate(s string) (U, error) {
	var zero U
	v, err := p.inner.ParseAndValidate(s)
	if err != nil {
		return zero, err
	}
	out, err := p.transform(v)
	if err != nil {
		return zero, err
	}
	if err := p.Validate(out); err != nil {
		return zero, err
	}
	return out, nil
}

// WithTransform is NewTransformParser returning the Parser interface.
func WithTransform[T, U any](parser Parser[T], transform func(T) (U, error)) Parser[U] {
	return NewTransformParser(parser, transform)
}
