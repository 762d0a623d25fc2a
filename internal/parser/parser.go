package parser

import (
	"errors"
)

// Parser turns one command-line token into a value of type T.
//
// Parse only converts. Validate checks constraints on an already converted
// value. ParseAndValidate is what option dispatch calls.
type Parser[T any] interface {
	Parse(token string) (T, error)
	Validate(value T) error
	ParseAndValidate(token string) (T, error)
}

var errNoParseFunc = errors.New("parser has no parse function")

// BaseParser implements Parser with two optional functions.
// Concrete parsers embed it and fill ParseFunc in their constructor.
type BaseParser[T any] struct {
	ParseFunc    func(string) (T, error)
	ValidateFunc func(T) error
}

func (p *BaseParser[T]) Parse(token string) (T, error) {
	if p.ParseFunc == nil {
		var zero T
		return zero, errNoParseFunc
	}
	return p.ParseFunc(token)
}

func (p *BaseParser[T]) Validate(value T) error {
	if p.ValidateFunc != nil {
		return p.ValidateFunc(value)
	}
	return nil
}

func (p *BaseParser[T]) ParseAndValidate(token string) (T, error) {
	v, err := p.Parse(token)
	if err == nil {
		err = p.Validate(v)
	}
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// Func adapts a plain conversion function into a Parser.
func Func[T any](fn func(string) (T, error)) Parser[T] {
	return &BaseParser[T]{ParseFunc: fn}
}

// Validator checks a converted value.
type Validator[T any] func(value T) error

// ChainValidators returns a validator that runs vs in order and stops at the
// first error.
func ChainValidators[T any](vs ...Validator[T]) Validator[T] {
	return func(value T) error {
		for _, v := range vs {
			if err := v(value); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithValidation returns p with extra validators appended after p's own.
func WithValidation[T any](p Parser[T], vs ...Validator[T]) Parser[T] {
	extra := ChainValidators(vs...)
	return &BaseParser[T]{
		ParseFunc: p.Parse,
		ValidateFunc: func(value T) error {
			if err := p.Validate(value); err != nil {
				return err
			}
			return extra(value)
		},
	}
}

// Into parses and validates token and stores the result in dest.
// dest is left untouched on failure.
func Into[T any](p Parser[T], token string, dest *T) error {
	v, err := p.ParseAndValidate(token)
	if err != nil {
		return err
	}
	*dest = v
	return nil
}
