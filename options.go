package num2text

import "fmt"

// Format selects the output strategy for a conversion.
type Format int

const (
	// FormatCardinal voices plain numbers, switching to a decimal reading
	// when the value carries fraction digits.
	FormatCardinal Format = iota
	// FormatYear voices calendar years: no sign word, era words instead.
	FormatYear
	// FormatCurrency voices amounts of money.
	FormatCurrency
)

// convOptions carries the per-call knobs. The zero value means cardinal
// output with the locale's own defaults.
type convOptions struct {
	format       Format
	separator    SeparatorStyle
	gender       string
	currencyCode string
	currencyInfo *CurrencyInfo
	conjunction  bool
	round        bool
	era          bool
	fallback     *string
}

// Option adjusts one conversion.
type Option func(*convOptions) error

func buildOptions(opts []Option) (*convOptions, error) {
	o := &convOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithFormat selects the output strategy.
func WithFormat(f Format) Option {
	return func(o *convOptions) error {
		if f < FormatCardinal || f > FormatCurrency {
			return fmt.Errorf("%w: unknown format %d", ErrInvalidInput, f)
		}
		o.format = f
		return nil
	}
}

// WithSeparator picks which decimal separator word to voice. Locales fall
// back to their own default style for words they do not declare.
func WithSeparator(style SeparatorStyle) Option {
	return func(o *convOptions) error {
		o.separator = style
		return nil
	}
}

// WithGender requests agreement variants of the unit digits, such as the
// Russian feminine одна. Categories the locale does not declare are ignored.
func WithGender(category string) Option {
	return func(o *convOptions) error {
		o.gender = category
		return nil
	}
}

// WithConjunction turns on the locale's internal and-linking, "one hundred
// and one". Locales without an and-word ignore it.
func WithConjunction() Option {
	return func(o *convOptions) error {
		o.conjunction = true
		return nil
	}
}

// WithCurrency selects currency output using the locale's vocabulary for the
// given ISO 4217 code.
func WithCurrency(code string) Option {
	return func(o *convOptions) error {
		if code == "" {
			return fmt.Errorf("%w: empty currency code", ErrInvalidInput)
		}
		o.format = FormatCurrency
		o.currencyCode = code
		return nil
	}
}

// WithCurrencyInfo selects currency output with an inline vocabulary,
// overriding anything the locale ships. Useful for one-off units.
func WithCurrencyInfo(info CurrencyInfo) Option {
	return func(o *convOptions) error {
		o.format = FormatCurrency
		o.currencyInfo = &info
		return nil
	}
}

// WithRounding rounds the fraction half-up to the currency's subunit
// precision before voicing, carrying into the main amount when it overflows.
func WithRounding() Option {
	return func(o *convOptions) error {
		o.round = true
		return nil
	}
}

// WithEra attaches the locale's era word to positive years too. Negative
// years always carry theirs.
func WithEra() Option {
	return func(o *convOptions) error {
		o.era = true
		return nil
	}
}

// WithFallback returns the given string instead of an error when a
// conversion fails for any reason.
func WithFallback(s string) Option {
	return func(o *convOptions) error {
		o.fallback = &s
		return nil
	}
}
