package parser

// TransformParser converts the result of an inner parser from T to U.
// NewInt32Parser uses it to narrow the range-checked int64 result.
type TransformParser[T, U any] struct {
	BaseParser[U]
	inner   Parser[T]
	convert func(T) (U, error)
}

// NewTransformParser wraps inner with convert.
func NewTransformParser[T, U any](inner Parser[T], convert func(T) (U, error)) *TransformParser[T, U] {
	p := &TransformParser[T, U]{inner: inner, convert: convert}
	p.ParseFunc = p.parse
	return p
}

func (p *TransformParser[T, U]) parse(token string) (U, error) {
	v, err := p.inner.Parse(token)
	if err != nil {
		var zero U
		return zero, err
	}
	return p.convert(v)
}

// ParseAndValidate validates on both sides of the conversion: the inner
// parser's validators see the T value, then validators set on p see the U value.
func (p *TransformParser[T, U]) ParseAndValidate(token string) (U, error) {
	var zero U

	v, err := p.inner.ParseAndValidate(token)
	if err != nil {
		return zero, err
	}
	out, err := p.convert(v)
	if err != nil {
		return zero, err
	}
	if err := p.Validate(out); err != nil {
		return zero, err
	}
	return out, nil
}

// WithTransform is NewTransformParser returning the Parser interface.
func WithTransform[T, U any](inner Parser[T], convert func(T) (U, error)) Parser[U] {
	return NewTransformParser(inner, convert)
}
