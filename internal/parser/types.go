package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// MaxIntegerMagnitude is the largest magnitude accepted by the integer parsers
// returned from NewInt32Parser and NewLongParser. The range is symmetric, so
// math.MinInt32 itself is rejected.
const MaxIntegerMagnitude = math.MaxInt32

// IntParser parses strict decimal integers with optional range validation.
// The accepted grammar is [+-]?[0-9]+ with no surrounding whitespace.
type IntParser struct {
	BaseParser[int64]
	min *int64
	max *int64
}

// NewIntParser creates a new integer parser accepting any int64.
func NewIntParser() *IntParser {
	return &IntParser{
		BaseParser: BaseParser[int64]{
			ParseFunc: parseDecimal,
		},
	}
}

// NewLongParser creates the wide integer parser. The destination is int64 but
// the value range is fixed to [-(2^31-1), 2^31-1] so that results do not
// depend on the platform.
func NewLongParser() *IntParser {
	return &IntParser{
		BaseParser: BaseParser[int64]{
			ParseFunc: func(value string) (int64, error) {
				n, err := parseDecimal(value)
				if err != nil {
					return 0, err
				}
				if n > MaxIntegerMagnitude || n < -MaxIntegerMagnitude {
					return 0, &NotIntegerError{
						Input:  value,
						Reason: fmt.Sprintf("out of range [%d, %d]", -MaxIntegerMagnitude, MaxIntegerMagnitude),
					}
				}
				return n, nil
			},
		},
	}
}

// NewInt32Parser creates the narrow integer parser.
func NewInt32Parser() Parser[int32] {
	return WithTransform(Parser[int64](NewLongParser()), func(n int64) (int32, error) {
		return int32(n), nil
	})
}

// WithRange adds range validation to the integer parser.
func (p *IntParser) WithRange(min, max int64) *IntParser {
	p.min = &min
	p.max = &max
	p.ValidateFunc = CreateRangeValidator(p.min, p.max)
	return p
}

// WithMin adds minimum value validation.
func (p *IntParser) WithMin(min int64) *IntParser {
	p.min = &min
	p.ValidateFunc = CreateRangeValidator(p.min, p.max)
	return p
}

// WithMax adds maximum value validation.
func (p *IntParser) WithMax(max int64) *IntParser {
	p.max = &max
	p.ValidateFunc = CreateRangeValidator(p.min, p.max)
	return p
}

func parseDecimal(value string) (int64, error) {
	digits := value
	if len(digits) > 0 && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, &NotIntegerError{Input: value, Reason: "no digits"}
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, &NotIntegerError{Input: value, Reason: "invalid syntax"}
		}
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, &NotIntegerError{Input: value, Reason: "out of range"}
	}
	return n, nil
}

// FloatParser parses finite decimal numbers with optional range validation.
// Hexadecimal notation, Inf, NaN and surrounding whitespace are rejected.
type FloatParser struct {
	BaseParser[float64]
	min *float64
	max *float64
}

// NewFloatParser creates a new float parser.
func NewFloatParser() *FloatParser {
	return &FloatParser{
		BaseParser: BaseParser[float64]{
			ParseFunc: parseFloat,
		},
	}
}

// WithRange adds range validation to the float parser.
func (p *FloatParser) WithRange(min, max float64) *FloatParser {
	p.min = &min
	p.max = &max
	p.ValidateFunc = CreateRangeValidator(p.min, p.max)
	return p
}

// WithMin adds minimum value validation.
func (p *FloatParser) WithMin(min float64) *FloatParser {
	p.min = &min
	p.ValidateFunc = CreateRangeValidator(p.min, p.max)
	return p
}

// WithMax adds maximum value validation.
func (p *FloatParser) WithMax(max float64) *FloatParser {
	p.max = &max
	p.ValidateFunc = CreateRangeValidator(p.min, p.max)
	return p
}

func parseFloat(value string) (float64, error) {
	if value == "" {
		return 0, &NotNumberError{Input: value, Reason: "empty"}
	}
	for i := 0; i < len(value); i++ {
		switch c := value[i]; {
		case c >= '0' && c <= '9', c == '.', c == 'e', c == 'E', c == '+', c == '-':
		default:
			return 0, &NotNumberError{Input: value, Reason: "invalid syntax"}
		}
	}

	f, err := strconv.ParseFloat(value, 64)
	if errors.Is(err, strconv.ErrRange) || math.IsInf(f, 0) {
		return 0, &NotNumberError{Input: value, Reason: "out of range"}
	}
	if err != nil {
		return 0, &NotNumberError{Input: value, Reason: "invalid syntax"}
	}
	return f, nil
}

// StringParser parses string values with optional validation.
type StringParser struct {
	BaseParser[string]
	minLen *int
	maxLen *int
}

// NewStringParser creates a new string parser.
// It returns the value as-is without any processing.
func NewStringParser() *StringParser {
	return &StringParser{
		BaseParser: BaseParser[string]{
			ParseFunc: func(value string) (string, error) {
				return value, nil
			},
		},
	}
}

// NonEmpty rejects the empty string.
func (p *StringParser) NonEmpty() *StringParser {
	return p.WithLengthRange(1, math.MaxInt)
}

// WithLengthRange adds length validation.
func (p *StringParser) WithLengthRange(min, max int) *StringParser {
	p.minLen = &min
	p.maxLen = &max
	p.ValidateFunc = p.validateString
	return p
}

func (p *StringParser) validateString(value string) error {
	if p.minLen != nil && len(value) < *p.minLen {
		if *p.minLen == 1 {
			return errors.New("value must not be empty")
		}
		return fmt.Errorf("string length %d is less than minimum %d", len(value), *p.minLen)
	}
	if p.maxLen != nil && len(value) > *p.maxLen {
		return fmt.Errorf("string length %d is greater than maximum %d", len(value), *p.maxLen)
	}
	return nil
}
