package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// EnumParser maps a fixed set of spellings to values of T.
// Matching ignores ASCII case unless CaseSensitive is called; the token is
// not trimmed.
type EnumParser[T comparable] struct {
	BaseParser[T]
	exact  map[string]T
	folded map[string]T
	strict bool
}

// NewEnumParser creates an enum parser accepting the keys of values.
func NewEnumParser[T comparable](values map[string]T) *EnumParser[T] {
	p := &EnumParser[T]{
		exact:  values,
		folded: lo.MapKeys(values, func(_ T, k string) string { return strings.ToUpper(k) }),
	}
	p.ParseFunc = p.lookup
	return p
}

// CaseSensitive disables case folding.
func (p *EnumParser[T]) CaseSensitive() *EnumParser[T] {
	p.strict = true
	return p
}

// Values returns the accepted spellings in sorted order.
func (p *EnumParser[T]) Values() []string {
	keys := lo.Keys(p.table())
	slices.Sort(keys)
	return keys
}

func (p *EnumParser[T]) table() map[string]T {
	return lo.Ternary(p.strict, p.exact, p.folded)
}

func (p *EnumParser[T]) lookup(token string) (T, error) {
	key := lo.Ternary(p.strict, token, strings.ToUpper(token))
	if v, ok := p.table()[key]; ok {
		return v, nil
	}

	var zero T
	return zero, fmt.Errorf("invalid value %q, must be one of: %s", token, strings.Join(p.Values(), ", "))
}

// NewEnumStringParser creates an enum parser whose values are the spellings themselves.
func NewEnumStringParser(values ...string) *EnumParser[string] {
	return NewEnumParser(lo.SliceToMap(values, func(v string) (string, string) {
		return v, v
	}))
}
