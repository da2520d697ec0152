package num2text

import (
	"errors"
	"strings"
	"testing"
)

func TestConvertCardinalEnglish(t *testing.T) {
	tests := []struct {
		name  string
		input any
		opts  []Option
		want  string
	}{
		{name: "zero", input: 0, want: "zero"},
		{name: "units", input: 7, want: "seven"},
		{name: "teens", input: 13, want: "thirteen"},
		{name: "hyphenated tens", input: 42, want: "forty-two"},
		{name: "hundreds", input: 123, want: "one hundred twenty-three"},
		{name: "hundreds with and", input: 123, opts: []Option{WithConjunction()}, want: "one hundred and twenty-three"},
		{name: "thousand gap", input: 1001, want: "one thousand one"},
		{name: "round million", input: 1000000, want: "one million"},
		{name: "full ladder", input: 1234567, want: "one million two hundred thirty-four thousand five hundred sixty-seven"},
		{name: "and only in final group", input: 1102, opts: []Option{WithConjunction()}, want: "one thousand one hundred and two"},
		{name: "negative", input: -7, want: "minus seven"},
		{name: "top rung", input: "1" + strings.Repeat("0", 21), want: "one sextillion"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := English.Convert(tc.input, tc.opts...)
			if err != nil {
				t.Fatalf("Convert(%v): %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("Convert(%v) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestConvertCardinalRussian(t *testing.T) {
	tests := []struct {
		input any
		opts  []Option
		want  string
	}{
		// Thousands agree with the feminine scale word.
		{input: 1000, want: "одна тысяча"},
		{input: 2000, want: "две тысячи"},
		{input: 5000, want: "пять тысяч"},
		{input: 21000, want: "двадцать одна тысяча"},
		{input: 1000000, want: "один миллион"},
		{input: 5000000, want: "пять миллионов"},
		{input: 21, opts: []Option{WithGender("feminine")}, want: "двадцать одна"},
		{input: -3, want: "минус три"},
	}

	for _, tc := range tests {
		got, err := Russian.Convert(tc.input, tc.opts...)
		if err != nil {
			t.Fatalf("Convert(%v): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("Convert(%v) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestConvertPaddingVietnamese(t *testing.T) {
	tests := []struct {
		input any
		want  string
	}{
		{input: 1001, want: "một nghìn không trăm lẻ một"},
		{input: 1010, want: "một nghìn không trăm mười"},
		{input: 1100, want: "một nghìn một trăm"},
		{input: 101, want: "một trăm lẻ một"},
		// A skipped zero group before a full group takes only the link word.
		{input: 1000300, want: "một triệu lẻ ba trăm"},
		{input: 2000001, want: "hai triệu không trăm lẻ một"},
		{input: -5, want: "âm năm"},
	}

	for _, tc := range tests {
		got, err := Vietnamese.Convert(tc.input)
		if err != nil {
			t.Fatalf("Convert(%v): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("Convert(%v) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestConvertDecimal(t *testing.T) {
	tests := []struct {
		locale *RuleSet
		input  any
		opts   []Option
		want   string
	}{
		{locale: English, input: "3.14", want: "three point one four"},
		{locale: English, input: "3.14", opts: []Option{WithSeparator(SeparatorComma)}, want: "three comma one four"},
		{locale: English, input: "-0.5", want: "minus zero point five"},
		{locale: English, input: 1.1, want: "one point one"},
		{locale: Russian, input: "2.5", want: "два запятая пять"},
		{locale: Vietnamese, input: "1.5", want: "một phẩy năm"},
	}

	for _, tc := range tests {
		got, err := tc.locale.Convert(tc.input, tc.opts...)
		if err != nil {
			t.Fatalf("Convert(%v): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("%s Convert(%v) = %q, want %q", tc.locale.Tag, tc.input, got, tc.want)
		}
	}
}

func TestConvertDecimalFractionAsGroup(t *testing.T) {
	rs := English.clone()
	rs.FractionAsGroup = true

	tests := []struct {
		input string
		want  string
	}{
		{input: "1.25", want: "one point twenty-five"},
		{input: "1.05", want: "one point zero five"},
		{input: "1.005", want: "one point zero zero five"},
	}

	for _, tc := range tests {
		got, err := rs.Convert(tc.input)
		if err != nil {
			t.Fatalf("Convert(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("Convert(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestConvertYear(t *testing.T) {
	tests := []struct {
		locale *RuleSet
		input  any
		opts   []Option
		want   string
	}{
		{locale: English, input: 1984, want: "one thousand nine hundred eighty-four"},
		{locale: English, input: -44, want: "forty-four BC"},
		{locale: English, input: 2025, opts: []Option{WithEra()}, want: "two thousand twenty-five AD"},
		{locale: Russian, input: -100, want: "сто до н. э."},
		{locale: Vietnamese, input: -40, want: "bốn mươi trước Công nguyên"},
	}

	for _, tc := range tests {
		opts := append([]Option{WithFormat(FormatYear)}, tc.opts...)
		got, err := tc.locale.Convert(tc.input, opts...)
		if err != nil {
			t.Fatalf("Convert(%v): %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("%s year %v = %q, want %q", tc.locale.Tag, tc.input, got, tc.want)
		}
	}
}

// Years never carry the sign word; negative cardinals always do.
func TestConvertSignPlacement(t *testing.T) {
	cardinal, err := English.Convert(-44)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.HasPrefix(cardinal, "minus ") {
		t.Errorf("cardinal %q does not start with the sign word", cardinal)
	}

	year, err := English.Convert(-44, WithFormat(FormatYear))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if strings.Contains(year, "minus") {
		t.Errorf("year %q must not carry the sign word", year)
	}
}

func TestConvertYearFractional(t *testing.T) {
	if _, err := English.Convert("19.5", WithFormat(FormatYear)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("fractional year err = %v, want ErrInvalidInput", err)
	}
}

func TestConvertMagnitudeExceeded(t *testing.T) {
	if _, err := English.Convert(strings.Repeat("9", 25)); !errors.Is(err, ErrMagnitudeExceeded) {
		t.Fatalf("25-digit input err = %v, want ErrMagnitudeExceeded", err)
	}
}

func TestConvertCurrencyEnglish(t *testing.T) {
	tests := []struct {
		name  string
		input any
		opts  []Option
		want  string
	}{
		{name: "singular", input: 1, want: "one dollar"},
		{name: "plural", input: 5, want: "five dollars"},
		{name: "zero main voiced", input: "0.50", want: "zero dollars and fifty cents"},
		{name: "main and sub", input: "2.05", want: "two dollars and five cents"},
		{name: "zero sub dropped", input: "3.00", want: "three dollars"},
		{name: "euro", input: 2, opts: []Option{WithCurrency("EUR")}, want: "two euros"},
		{name: "pence", input: "0.02", opts: []Option{WithCurrency("GBP")}, want: "zero pounds and two pence"},
		{name: "no subunit currency", input: "5.75", opts: []Option{WithCurrency("JPY")}, want: "five yen"},
		{name: "rounding carries", input: "0.999", opts: []Option{WithRounding()}, want: "one dollar"},
		{name: "rounding half up", input: "1.005", opts: []Option{WithRounding()}, want: "one dollar and one cent"},
		{name: "truncation without rounding", input: "1.009", want: "one dollar"},
		{name: "negative amount", input: "-1.50", want: "minus one dollar and fifty cents"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := append([]Option{WithFormat(FormatCurrency)}, tc.opts...)
			got, err := English.Convert(tc.input, opts...)
			if err != nil {
				t.Fatalf("Convert(%v): %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("Convert(%v) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestConvertCurrencyAgreement(t *testing.T) {
	tests := []struct {
		locale *RuleSet
		input  any
		want   string
	}{
		// The unit name declines with the count.
		{locale: Russian, input: 1, want: "один рубль"},
		{locale: Russian, input: 2, want: "два рубля"},
		{locale: Russian, input: 5, want: "пять рублей"},
		{locale: Russian, input: 11, want: "одиннадцать рублей"},
		{locale: Russian, input: 21, want: "двадцать один рубль"},
		{locale: Russian, input: "1.50", want: "один рубль пятьдесят копеек"},
		{locale: Russian, input: "2.01", want: "два рубля одна копейка"},
		{locale: Ukrainian, input: 1, want: "одна гривня"},
		{locale: Ukrainian, input: 2, want: "дві гривні"},
		{locale: Ukrainian, input: 5, want: "п'ять гривень"},
		{locale: Vietnamese, input: 5000, want: "năm nghìn đồng"},
	}

	for _, tc := range tests {
		got, err := tc.locale.Convert(tc.input, WithFormat(FormatCurrency))
		if err != nil {
			t.Fatalf("%s Convert(%v): %v", tc.locale.Tag, tc.input, err)
		}
		if got != tc.want {
			t.Errorf("%s Convert(%v) = %q, want %q", tc.locale.Tag, tc.input, got, tc.want)
		}
	}
}

func TestConvertCurrencyZeroPolicies(t *testing.T) {
	suppress := CurrencyInfo{
		Code:             "USD",
		Main:             UnitForms{Singular: "dollar", Plural: "dollars"},
		Sub:              UnitForms{Singular: "cent", Plural: "cents"},
		SubDigits:        2,
		Separator:        "and",
		SuppressZeroMain: true,
	}
	got, err := English.Convert("0.50", WithCurrencyInfo(suppress))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "fifty cents" {
		t.Errorf("suppressed zero main = %q, want %q", got, "fifty cents")
	}

	// A zero total still voices the main phrase.
	got, err = English.Convert("0.00", WithCurrencyInfo(suppress))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "zero dollars" {
		t.Errorf("zero total = %q, want %q", got, "zero dollars")
	}

	always := suppress
	always.SuppressZeroMain = false
	always.AlwaysShowSub = true
	got, err = English.Convert(1, WithCurrencyInfo(always))
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "one dollar and zero cents" {
		t.Errorf("always-show sub = %q, want %q", got, "one dollar and zero cents")
	}
}

func TestConvertCurrencyErrors(t *testing.T) {
	if _, err := Vietnamese.Convert(1, WithCurrency("GBP")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("undefined currency err = %v, want ErrInvalidInput", err)
	}

	bad := CurrencyInfo{Code: "NOPE", Main: UnitForms{Singular: "thing"}}
	if _, err := English.Convert(1, WithCurrencyInfo(bad)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("invalid inline currency err = %v, want ErrInvalidInput", err)
	}
}
