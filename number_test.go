package num2text

import (
	"errors"
	"math"
	"math/big"
	"testing"
)

func TestParseNumber(t *testing.T) {
	big24, ok := new(big.Int).SetString("123456789012345678901234", 10)
	if !ok {
		t.Fatal("SetString failed")
	}

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "int", input: 42, want: "42"},
		{name: "negative int8", input: int8(-5), want: "-5"},
		{name: "uint64 max", input: uint64(math.MaxUint64), want: "18446744073709551615"},
		{name: "float shortest round trip", input: 1.1, want: "1.1"},
		{name: "float32", input: float32(2.5), want: "2.5"},
		{name: "negative float", input: -0.5, want: "-0.5"},
		{name: "big int", input: big24, want: "123456789012345678901234"},
		{name: "string", input: "1234", want: "1234"},
		{name: "string with fraction", input: "12.50", want: "12.50"},
		{name: "string with whitespace", input: "  -7 ", want: "-7"},
		{name: "explicit plus", input: "+7", want: "7"},
		{name: "leading zeros trimmed", input: "007", want: "7"},
		{name: "bare fraction", input: ".5", want: "0.5"},
		{name: "negative zero folds", input: "-0.00", want: "0.00"},
		{name: "number passthrough", input: Number{intDigits: "3"}, want: "3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			n, err := ParseNumber(tc.input)
			if err != nil {
				t.Fatalf("ParseNumber(%v): %v", tc.input, err)
			}
			if got := n.String(); got != tc.want {
				t.Fatalf("ParseNumber(%v) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseNumberInvalid(t *testing.T) {
	inputs := []any{"", "   ", "abc", "1.2.3", "--1", "1e5", "12,5", true, []int{1}, (*big.Int)(nil)}

	for _, input := range inputs {
		if _, err := ParseNumber(input); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseNumber(%v) error = %v, want ErrInvalidInput", input, err)
		}
	}
}

func TestParseNumberNonFinite(t *testing.T) {
	inputs := []any{math.NaN(), math.Inf(1), math.Inf(-1), float32(float64(math.Inf(1)))}

	for _, input := range inputs {
		_, err := ParseNumber(input)
		if !errors.Is(err, ErrNonFiniteInput) {
			t.Errorf("ParseNumber(%v) error = %v, want ErrNonFiniteInput", input, err)
		}
		if errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseNumber(%v) error must stay distinct from ErrInvalidInput", input)
		}
	}
}

func TestNumberSign(t *testing.T) {
	tests := []struct {
		input    string
		negative bool
		zero     bool
	}{
		{input: "-1", negative: true},
		{input: "0", zero: true},
		{input: "-0", zero: true},
		{input: "-0.5", negative: true},
		{input: "0.00", zero: true},
	}

	for _, tc := range tests {
		n, err := ParseNumber(tc.input)
		if err != nil {
			t.Fatalf("ParseNumber(%q): %v", tc.input, err)
		}
		if n.IsNegative() != tc.negative || n.IsZero() != tc.zero {
			t.Errorf("%q: negative=%v zero=%v, want %v %v", tc.input, n.IsNegative(), n.IsZero(), tc.negative, tc.zero)
		}
	}
}

func TestRoundFraction(t *testing.T) {
	tests := []struct {
		input  string
		digits int
		want   string
	}{
		{input: "1.234", digits: 2, want: "1.23"},
		{input: "1.235", digits: 2, want: "1.24"},
		{input: "0.999", digits: 2, want: "1.00"},
		{input: "9.999", digits: 2, want: "10.00"},
		{input: "1.2", digits: 2, want: "1.2"},
		{input: "-0.004", digits: 2, want: "0.00"},
		{input: "-1.005", digits: 2, want: "-1.01"},
	}

	for _, tc := range tests {
		n, err := ParseNumber(tc.input)
		if err != nil {
			t.Fatalf("ParseNumber(%q): %v", tc.input, err)
		}
		if got := n.roundFraction(tc.digits).String(); got != tc.want {
			t.Errorf("roundFraction(%q, %d) = %q, want %q", tc.input, tc.digits, got, tc.want)
		}
	}
}

func TestFractionUnits(t *testing.T) {
	tests := []struct {
		input  string
		digits int
		want   string
	}{
		{input: "1.5", digits: 2, want: "50"},
		{input: "1.05", digits: 2, want: "05"},
		{input: "1.509", digits: 2, want: "50"},
		{input: "1", digits: 2, want: "00"},
	}

	for _, tc := range tests {
		n, err := ParseNumber(tc.input)
		if err != nil {
			t.Fatalf("ParseNumber(%q): %v", tc.input, err)
		}
		if got := n.fractionUnits(tc.digits); got != tc.want {
			t.Errorf("fractionUnits(%q, %d) = %q, want %q", tc.input, tc.digits, got, tc.want)
		}
	}
}
