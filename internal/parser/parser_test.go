package parser_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/apstndb/simargs/internal/parser"
)

func TestIntParser(t *testing.T) {
	t.Run("basic parsing", func(t *testing.T) {
		p := parser.NewIntParser()

		tests := []struct {
			name    string
			input   string
			want    int64
			wantErr bool
		}{
			{"positive", "42", 42, false},
			{"explicit plus", "+42", 42, false},
			{"negative", "-42", -42, false},
			{"zero", "0", 0, false},
			{"leading zeros", "007", 7, false},
			{"beyond int32", "4294967296", 4294967296, false},
			{"beyond int64", "9223372036854775808", 0, true},
			{"leading space", " 42", 0, true},
			{"trailing space", "42 ", 0, true},
			{"hex", "0x2A", 0, true},
			{"decimal point", "42.0", 0, true},
			{"underscore", "1_000", 0, true},
			{"sign only plus", "+", 0, true},
			{"sign only minus", "-", 0, true},
			{"double sign", "--1", 0, true},
			{"invalid", "abc", 0, true},
			{"empty", "", 0, true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := p.ParseAndValidate(tt.input)
				if (err != nil) != tt.wantErr {
					t.Errorf("ParseAndValidate() error = %v, wantErr %v", err, tt.wantErr)
					return
				}
				if got != tt.want {
					t.Errorf("ParseAndValidate() = %v, want %v", got, tt.want)
				}
			})
		}
	})

	t.Run("with range validation", func(t *testing.T) {
		p := parser.NewIntParser().WithRange(1, 100)

		tests := []struct {
			name    string
			input   string
			want    int64
			wantErr bool
		}{
			{"in range", "50", 50, false},
			{"min value", "1", 1, false},
			{"max value", "100", 100, false},
			{"below min", "0", 0, true},
			{"above max", "101", 0, true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := p.ParseAndValidate(tt.input)
				if (err != nil) != tt.wantErr {
					t.Errorf("ParseAndValidate() error = %v, wantErr %v", err, tt.wantErr)
					return
				}
				if !tt.wantErr && got != tt.want {
					t.Errorf("ParseAndValidate() = %v, want %v", got, tt.want)
				}
			})
		}
	})

	t.Run("syntax errors are NotIntegerError", func(t *testing.T) {
		_, err := parser.NewIntParser().ParseAndValidate("12a")
		var nie *parser.NotIntegerError
		if !errors.As(err, &nie) {
			t.Fatalf("expected *NotIntegerError, got %T: %v", err, err)
		}
		if nie.Input != "12a" {
			t.Errorf("Input = %q, want %q", nie.Input, "12a")
		}
	})
}

func TestInt32Parser(t *testing.T) {
	p := parser.NewInt32Parser()

	tests := []struct {
		name    string
		input   string
		want    int32
		wantErr bool
	}{
		{"thousand", "1000", 1000, false},
		{"max", "2147483647", 2147483647, false},
		{"negated max", "-2147483647", -2147483647, false},
		{"max plus one", "2147483648", 0, true},
		{"min int32", "-2147483648", 0, true},
		{"far out of range", "99999999999999999999", 0, true},
		{"leading space", " 42", 0, true},
		{"trailing space", "42 ", 0, true},
		{"hex", "0x2A", 0, true},
		{"float", "42.0", 0, true},
		{"empty", "", 0, true},
		{"plus", "+", 0, true},
		{"minus", "-", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseAndValidate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseAndValidate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				var nie *parser.NotIntegerError
				if !errors.As(err, &nie) {
					t.Errorf("expected *NotIntegerError, got %T", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseAndValidate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLongParser(t *testing.T) {
	p := parser.NewLongParser()

	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"seed", "98798150", 98798150, false},
		{"max", "2147483647", 2147483647, false},
		{"negated max", "-2147483647", -2147483647, false},
		{"max plus one", "2147483648", 0, true},
		{"min int32", "-2147483648", 0, true},
		{"fits int64 but not range", "4294967296", 0, true},
		{"whitespace", "\t1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseAndValidate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseAndValidate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseAndValidate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFloatParser(t *testing.T) {
	p := parser.NewFloatParser()

	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"integer", "2", 2, false},
		{"decimal", "1.25", 1.25, false},
		{"negative", "-0.5", -0.5, false},
		{"exponent", "1e3", 1000, false},
		{"leading dot", ".5", 0.5, false},
		{"overflow", "1e999", 0, true},
		{"inf", "Inf", 0, true},
		{"nan", "NaN", 0, true},
		{"hex float", "0x1p-2", 0, true},
		{"whitespace", " 1.0", 0, true},
		{"dot only", ".", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseAndValidate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseAndValidate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseAndValidate() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("with min", func(t *testing.T) {
		p := parser.NewFloatParser().WithMin(0.5)
		if _, err := p.ParseAndValidate("0.25"); err == nil {
			t.Error("expected error for value below minimum")
		}
		if _, err := p.ParseAndValidate("0.5"); err != nil {
			t.Errorf("unexpected error at minimum: %v", err)
		}
	})
}

func TestEnumParser(t *testing.T) {
	type Color int
	const (
		Red Color = iota
		Green
		Blue
	)

	p := parser.NewEnumParser(map[string]Color{
		"RED":   Red,
		"GREEN": Green,
		"BLUE":  Blue,
	})

	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"exact match", "RED", Red, false},
		{"lowercase", "red", Red, false},
		{"mixed case", "GrEeN", Green, false},
		{"with quotes", "'BLUE'", 0, true},
		{"with spaces", " BLUE", 0, true},
		{"invalid", "YELLOW", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseAndValidate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseAndValidate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseAndValidate() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("error lists sorted values", func(t *testing.T) {
		_, err := p.ParseAndValidate("YELLOW")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "BLUE, GREEN, RED") {
			t.Errorf("error = %v, want sorted value list", err)
		}
	})

	t.Run("case sensitive", func(t *testing.T) {
		p := parser.NewEnumStringParser("PNG", "BMP").CaseSensitive()
		if _, err := p.ParseAndValidate("png"); err == nil {
			t.Error("expected error for lowercase value")
		}
		if got, err := p.ParseAndValidate("BMP"); err != nil || got != "BMP" {
			t.Errorf("ParseAndValidate(BMP) = %q, %v", got, err)
		}
	})
}

func TestStringParser(t *testing.T) {
	t.Run("simple parser", func(t *testing.T) {
		p := parser.NewStringParser()

		tests := []struct {
			name  string
			input string
			want  string
		}{
			{"simple string", "hello", "hello"},
			{"with spaces", "  hello world  ", "  hello world  "},
			{"keeps quotes", "'quoted'", "'quoted'"},
			{"empty", "", ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got, err := p.ParseAndValidate(tt.input)
				if err != nil {
					t.Errorf("ParseAndValidate() unexpected error = %v", err)
					return
				}
				if got != tt.want {
					t.Errorf("ParseAndValidate() = %q, want %q", got, tt.want)
				}
			})
		}
	})

	t.Run("non empty", func(t *testing.T) {
		p := parser.NewStringParser().NonEmpty()
		if _, err := p.ParseAndValidate(""); err == nil {
			t.Error("expected error for empty string")
		}
		if got, err := p.ParseAndValidate("out/run1"); err != nil || got != "out/run1" {
			t.Errorf("ParseAndValidate() = %q, %v", got, err)
		}
	})
}

func TestChainValidators(t *testing.T) {
	isPositive := func(v int64) error {
		if v <= 0 {
			return fmt.Errorf("value must be positive")
		}
		return nil
	}

	isEven := func(v int64) error {
		if v%2 != 0 {
			return fmt.Errorf("value must be even")
		}
		return nil
	}

	p := parser.WithValidation(
		parser.Parser[int64](parser.NewIntParser()),
		isPositive,
		isEven,
	)

	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
		errMsg  string
	}{
		{"valid even positive", "42", 42, false, ""},
		{"zero", "0", 0, true, "positive"},
		{"negative", "-2", 0, true, "positive"},
		{"odd positive", "3", 0, true, "even"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.ParseAndValidate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseAndValidate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && tt.errMsg != "" {
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error message = %v, should contain %v", err, tt.errMsg)
				}
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAndValidate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransformValidation(t *testing.T) {
	p := parser.WithValidation(parser.NewInt32Parser(), parser.Positive[int32])

	if _, err := p.ParseAndValidate("0"); err == nil {
		t.Error("expected error for zero")
	}
	if got, err := p.ParseAndValidate("8"); err != nil || got != 8 {
		t.Errorf("ParseAndValidate(8) = %v, %v", got, err)
	}
}

func TestInto(t *testing.T) {
	dest := int64(7)
	if err := parser.Into[int64](parser.NewIntParser(), "x", &dest); err == nil {
		t.Fatal("expected error")
	}
	if dest != 7 {
		t.Errorf("dest = %d, want unchanged 7", dest)
	}
	if err := parser.Into[int64](parser.NewIntParser(), "9", &dest); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest != 9 {
		t.Errorf("dest = %d, want 9", dest)
	}
}
