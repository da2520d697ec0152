package num2text

import (
	"fmt"

	"golang.org/x/text/currency"
)

// CurrencyInfo names one currency's units in one locale: the main unit and
// subunit word forms plus the policies that shape a money phrase.
type CurrencyInfo struct {
	// Code is the ISO 4217 code, validated against the currency tables.
	Code string
	// Main holds the main unit forms, dollar/dollars or рубль/рубля/рублей.
	Main UnitForms
	// Sub holds the subunit forms. Leave it empty for currencies spoken
	// without a subunit.
	Sub UnitForms
	// SubDigits is the subunit precision. Zero means derive it from the
	// ISO cash rounding tables, which also report zero for currencies
	// like VND and JPY that have no circulating subunit.
	SubDigits int
	// Separator is the word joining the main and subunit phrases, "and"
	// in English amounts. Empty joins them with a plain space.
	Separator string
	// AlwaysShowSub voices a zero subunit amount instead of dropping it,
	// "one dollar zero cents".
	AlwaysShowSub bool
	// SuppressZeroMain drops a zero main amount when a subunit amount is
	// present, "fifty cents" instead of "zero dollars fifty cents".
	SuppressZeroMain bool
}

func (c CurrencyInfo) validate() error {
	if _, err := currency.ParseISO(c.Code); err != nil {
		return fmt.Errorf("invalid ISO 4217 code %q: %w", c.Code, err)
	}
	if c.Main.empty() {
		return fmt.Errorf("no main unit forms")
	}
	if c.SubDigits < 0 || c.SubDigits > 9 {
		return fmt.Errorf("subunit precision %d out of range", c.SubDigits)
	}
	if c.SubDigits > 0 && c.Sub.empty() {
		return fmt.Errorf("subunit precision %d without subunit forms", c.SubDigits)
	}
	return nil
}

// subunitDigits resolves the effective subunit precision, consulting the ISO
// cash rounding data when the entry does not pin one.
func (c CurrencyInfo) subunitDigits() int {
	if c.SubDigits > 0 {
		return c.SubDigits
	}
	if c.Sub.empty() {
		return 0
	}
	unit, err := currency.ParseISO(c.Code)
	if err != nil {
		return 0
	}
	scale, _ := currency.Cash.Rounding(unit)
	return scale
}

// hasSubunit reports whether the currency voices fractional amounts at all.
func (c CurrencyInfo) hasSubunit() bool {
	return !c.Sub.empty() && c.subunitDigits() > 0
}
