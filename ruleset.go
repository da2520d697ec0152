package num2text

import (
	"fmt"
	"strings"
)

// SeparatorStyle names the decimal separator a caller wants voiced, so the
// same locale can read 3.14 as "three point one four" or with its comma word.
type SeparatorStyle string

const (
	SeparatorPoint SeparatorStyle = "point"
	SeparatorComma SeparatorStyle = "comma"
)

// UnitForms holds up to four agreement forms of a counted word plus the
// grammatical category its own count words must agree with, such as the
// feminine Russian thousand. Missing forms fall back toward Plural and then
// Singular so sparse tables stay usable.
type UnitForms struct {
	Singular string
	Plural   string
	Few      string
	Genitive string
	Gender   string
}

// pick returns the word for a form, applying the sparse-table fallback.
func (u UnitForms) pick(f Form) string {
	var w string
	switch f {
	case Singular:
		w = u.Singular
	case Few:
		w = u.Few
	case Genitive:
		w = u.Genitive
	case Plural:
		w = u.Plural
	}
	if w == "" {
		w = u.Plural
	}
	if w == "" {
		w = u.Singular
	}
	return w
}

// empty reports whether no form is declared at all.
func (u UnitForms) empty() bool {
	return u.Singular == "" && u.Plural == "" && u.Few == "" && u.Genitive == ""
}

// RuleSet is the complete word inventory and policy bundle for one locale.
// The conversion pipeline only ever reads it, so a registered RuleSet may be
// shared by any number of concurrent conversions. Treat it as immutable once
// it has been handed to Register.
type RuleSet struct {
	// Tag is the BCP 47 identifier, "en" or "vi" or "en-GB".
	Tag string
	// Name is the locale's display name in its own language.
	Name string

	// Ones holds the words for 0..9; Ones[0] doubles as the zero word.
	Ones [10]string
	// OnesFor holds gender or case variants of Ones keyed by category,
	// such as the Russian feminine одна and две. Empty slots fall back to
	// Ones.
	OnesFor map[string][10]string
	// OnesAfterTens holds variant unit words used directly after a tens
	// word, such as the Vietnamese mốt and lăm. Empty slots fall back to
	// Ones.
	OnesAfterTens [10]string
	// Teens holds the words for 10+i at index i, 11..19 at 1..9. Empty
	// slots compose Tens[1] with the unit word instead.
	Teens [10]string
	// Tens holds the words for i*10 at index i.
	Tens [10]string
	// Hundred is the multiplier word composed after a unit word, as in
	// "one hundred" or "một trăm".
	Hundred string
	// Hundreds holds irregular whole-hundred words at index i, such as
	// the Russian двести. A non-empty slot wins over composition.
	Hundreds [10]string
	// TensUnitJoiner glues a tens word to its unit word, "-" in English
	// twenty-three. Empty means a plain space.
	TensUnitJoiner string

	// Scale is the ladder of group multiplier names indexed by Group
	// scale, so Scale[1] names 10^3 and Scale[7] names 10^21. Index 0 is
	// unused. Numbers needing a rung past the end fail with
	// ErrMagnitudeExceeded.
	Scale []UnitForms

	// Plural is the agreement rule applied to scale words and currency
	// unit names.
	Plural PluralRule

	// Negative is the sign word prefixed to negative values outside year
	// format.
	Negative string
	// AndWord links hundreds to the tens-and-units rest of the final
	// group when the caller asks for conjunctions, as in British English
	// "one hundred and one".
	AndWord string

	// PadZeroHundred enables the cross-group padding some locales need
	// when a group below one hundred follows a higher group, as in the
	// Vietnamese "một nghìn không trăm lẻ một". ZeroHundred is the
	// zero-hundred filler and LowLink the linking particle.
	PadZeroHundred bool
	ZeroHundred    string
	LowLink        string

	// EraBC and EraAD are the era words year format attaches to negative
	// and, on request, positive years. EraPrefix puts them before the
	// numeral instead of after.
	EraBC     string
	EraAD     string
	EraPrefix bool

	// Separators maps separator styles to their spoken words. The default
	// style is what the locale itself would say.
	Separators       map[SeparatorStyle]string
	DefaultSeparator SeparatorStyle
	// FractionAsGroup voices the fractional part as one cardinal number,
	// with a zero word per leading zero digit, instead of digit by digit.
	FractionAsGroup bool

	// Currencies lists the currency vocabularies the locale ships, keyed
	// by ISO 4217 code. DefaultCurrency is used when the caller names
	// none.
	Currencies      map[string]CurrencyInfo
	DefaultCurrency string
}

// Validate reports the first structural problem that would make conversions
// misbehave: missing digit words, an unusable scale ladder, inverted plural
// windows, padding without filler words, or a broken currency entry.
func (rs *RuleSet) Validate() error {
	if strings.TrimSpace(rs.Tag) == "" {
		return fmt.Errorf("num2text: rule set has no locale tag")
	}
	for i, w := range rs.Ones {
		if w == "" {
			return fmt.Errorf("num2text: rule set %s: ones[%d] is empty", rs.Tag, i)
		}
	}
	for i := 1; i < 10; i++ {
		if rs.Tens[i] == "" {
			return fmt.Errorf("num2text: rule set %s: tens[%d] is empty", rs.Tag, i)
		}
	}
	if rs.Hundred == "" {
		for i := 1; i < 10; i++ {
			if rs.Hundreds[i] == "" {
				return fmt.Errorf("num2text: rule set %s: no hundred word and hundreds[%d] is empty", rs.Tag, i)
			}
		}
	}
	for i := 1; i < len(rs.Scale); i++ {
		if rs.Scale[i].empty() {
			return fmt.Errorf("num2text: rule set %s: scale[%d] has no forms", rs.Tag, i)
		}
	}
	if rs.Plural.TeenLow > rs.Plural.TeenHigh || rs.Plural.FewLow > rs.Plural.FewHigh {
		return fmt.Errorf("num2text: rule set %s: inverted plural window", rs.Tag)
	}
	if rs.PadZeroHundred && rs.ZeroHundred == "" {
		return fmt.Errorf("num2text: rule set %s: padding enabled without a zero-hundred word", rs.Tag)
	}
	if rs.DefaultSeparator != "" {
		if _, ok := rs.Separators[rs.DefaultSeparator]; !ok {
			return fmt.Errorf("num2text: rule set %s: default separator %q has no word", rs.Tag, rs.DefaultSeparator)
		}
	}
	for code, info := range rs.Currencies {
		if err := info.validate(); err != nil {
			return fmt.Errorf("num2text: rule set %s: currency %s: %w", rs.Tag, code, err)
		}
	}
	if rs.DefaultCurrency != "" {
		if _, ok := rs.Currencies[rs.DefaultCurrency]; !ok {
			return fmt.Errorf("num2text: rule set %s: default currency %s is not defined", rs.Tag, rs.DefaultCurrency)
		}
	}
	return nil
}

// zeroWord is the word for a value of zero.
func (rs *RuleSet) zeroWord() string { return rs.Ones[0] }

// onesWord resolves a unit digit through the gender variant table.
func (rs *RuleSet) onesWord(d int, gender string) string {
	if gender != "" {
		if variants, ok := rs.OnesFor[gender]; ok && variants[d] != "" {
			return variants[d]
		}
	}
	return rs.Ones[d]
}

// separatorWord resolves a separator style, falling back to the locale
// default when the requested style has no word.
func (rs *RuleSet) separatorWord(style SeparatorStyle) string {
	if style != "" {
		if w, ok := rs.Separators[style]; ok && w != "" {
			return w
		}
	}
	if w, ok := rs.Separators[rs.DefaultSeparator]; ok {
		return w
	}
	return ""
}

// clone deep-copies the rule set so registered data stays insulated from
// later mutation by the caller.
func (rs *RuleSet) clone() *RuleSet {
	out := *rs
	if rs.OnesFor != nil {
		out.OnesFor = make(map[string][10]string, len(rs.OnesFor))
		for k, v := range rs.OnesFor {
			out.OnesFor[k] = v
		}
	}
	if rs.Scale != nil {
		out.Scale = append([]UnitForms(nil), rs.Scale...)
	}
	if rs.Separators != nil {
		out.Separators = make(map[SeparatorStyle]string, len(rs.Separators))
		for k, v := range rs.Separators {
			out.Separators[k] = v
		}
	}
	if rs.Currencies != nil {
		out.Currencies = make(map[string]CurrencyInfo, len(rs.Currencies))
		for k, v := range rs.Currencies {
			out.Currencies[k] = v
		}
	}
	return &out
}
