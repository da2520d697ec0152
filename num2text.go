// Package num2text converts numbers into the words a person would say for
// them, in the vocabulary and grammar of a locale.
//
// Values of any native numeric type, *big.Int or decimal numeral strings are
// normalized into an exact decimal form, sliced into three-digit groups
// against the locale's scale ladder, and voiced through one of four output
// strategies: cardinal, decimal, year or currency.
//
// Rule sets for English, Russian, Ukrainian and Vietnamese are built in and
// registered under their BCP 47 tags. More can be registered at runtime or
// loaded from YAML and JSON files.
package num2text

import "fmt"

// Convert voices a value with this rule set.
//
// A rule set is read-only during conversion, so Convert is safe to call from
// any number of goroutines at once.
func (rs *RuleSet) Convert(value any, opts ...Option) (string, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return "", err
	}
	return convert(rs, value, o)
}

// ConvertIn voices a value in the given locale, resolving it through the
// registry with parent fallback, so "en-AU" finds "en".
func ConvertIn(locale string, value any, opts ...Option) (string, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return "", err
	}
	rs, err := Lookup(locale)
	if err != nil {
		if o.fallback != nil {
			return *o.fallback, nil
		}
		return "", err
	}
	return convert(rs, value, o)
}

func convert(rs *RuleSet, value any, o *convOptions) (string, error) {
	out, err := convertNumber(rs, value, o)
	if err != nil && o.fallback != nil {
		return *o.fallback, nil
	}
	return out, err
}

func convertNumber(rs *RuleSet, value any, o *convOptions) (string, error) {
	if rs == nil {
		return "", fmt.Errorf("%w: nil rule set", ErrUnsupportedLocale)
	}
	num, err := ParseNumber(value)
	if err != nil {
		return "", err
	}
	return assemble(rs, num, o)
}

// Converter pins a current locale and a set of default options, for callers
// that convert many values the same way. Unlike the stateless entry points
// it is not safe for concurrent use; give each goroutine its own.
type Converter struct {
	rs       *RuleSet
	defaults []Option
}

// NewConverter builds a Converter for a registered locale. The defaults are
// applied to every conversion, before any per-call options.
func NewConverter(locale string, defaults ...Option) (*Converter, error) {
	rs, err := Lookup(locale)
	if err != nil {
		return nil, err
	}
	return &Converter{rs: rs, defaults: defaults}, nil
}

// Locale returns the tag of the current rule set.
func (c *Converter) Locale() string { return c.rs.Tag }

// SetLocale switches the converter to another registered locale.
func (c *Converter) SetLocale(locale string) error {
	rs, err := Lookup(locale)
	if err != nil {
		return err
	}
	c.rs = rs
	return nil
}

// Convert voices a value in the current locale.
func (c *Converter) Convert(value any, opts ...Option) (string, error) {
	merged := make([]Option, 0, len(c.defaults)+len(opts))
	merged = append(merged, c.defaults...)
	merged = append(merged, opts...)
	return c.rs.Convert(value, merged...)
}
