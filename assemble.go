package num2text

import (
	"fmt"
	"strings"
)

// assemble routes a canonical number to the requested output strategy.
func assemble(rs *RuleSet, num Number, o *convOptions) (string, error) {
	switch o.format {
	case FormatYear:
		return assembleYear(rs, num, o)
	case FormatCurrency:
		return assembleCurrency(rs, num, o)
	default:
		if num.FractionDigits() != "" {
			return assembleDecimal(rs, num, o)
		}
		return assembleCardinal(rs, num, o)
	}
}

// cardinalTokens voices an unsigned canonical integer: groups walked from
// the most significant down, each followed by its scale word in the form the
// plural rule selects, with the locale's cross-group padding laid in where a
// low group follows a higher one.
//
// Gender applies to the units group; higher groups agree with their own
// scale word instead. The and-word is only ever placed in the last voiced
// group.
func cardinalTokens(rs *RuleSet, digits string, gender string, withAnd bool) ([]string, error) {
	groups, err := splitGroups(digits)
	if err != nil {
		return nil, err
	}
	if len(groups) == 1 && groups[0].Value == 0 {
		return []string{rs.zeroWord()}, nil
	}

	lastVoiced := 0
	for i, g := range groups {
		if g.Value != 0 {
			lastVoiced = i
		}
	}

	tokens := make([]string, 0, len(groups)*4)
	prevScale := -1
	for i, g := range groups {
		if g.Value == 0 {
			continue
		}
		if g.Scale > 0 && g.Scale >= len(rs.Scale) {
			return nil, fmt.Errorf("%w: locale %s has no scale word for rung %d", ErrMagnitudeExceeded, rs.Tag, g.Scale)
		}

		padded := false
		if prevScale >= 0 && rs.PadZeroHundred {
			if g.Value < 100 {
				tokens = append(tokens, rs.ZeroHundred)
				padded = true
			} else if prevScale-g.Scale > 1 && rs.LowLink != "" {
				tokens = append(tokens, rs.LowLink)
			}
		}

		groupGender := gender
		if g.Scale > 0 {
			groupGender = rs.Scale[g.Scale].Gender
		}
		and := withAnd && i == lastVoiced
		tokens = append(tokens, renderGroup(rs, g.Value, groupGender, and, padded)...)

		if g.Scale > 0 {
			form := rs.Plural.FormFor(uint64(g.Value))
			tokens = append(tokens, rs.Scale[g.Scale].pick(form))
		}
		prevScale = g.Scale
	}
	return tokens, nil
}

func assembleCardinal(rs *RuleSet, num Number, o *convOptions) (string, error) {
	tokens, err := cardinalTokens(rs, num.IntegerDigits(), o.gender, o.conjunction)
	if err != nil {
		return "", err
	}
	if num.IsNegative() && rs.Negative != "" {
		tokens = append([]string{rs.Negative}, tokens...)
	}
	return strings.Join(tokens, " "), nil
}

// assembleDecimal voices the integer part as a cardinal, the separator word
// for the requested style, then the fraction either digit by digit or, for
// locales that prefer it, as one cardinal with a zero word per leading zero.
func assembleDecimal(rs *RuleSet, num Number, o *convOptions) (string, error) {
	tokens, err := cardinalTokens(rs, num.IntegerDigits(), o.gender, o.conjunction)
	if err != nil {
		return "", err
	}
	if sep := rs.separatorWord(o.separator); sep != "" {
		tokens = append(tokens, sep)
	}

	frac := num.FractionDigits()
	if rs.FractionAsGroup {
		i := 0
		for i < len(frac)-1 && frac[i] == '0' {
			tokens = append(tokens, rs.zeroWord())
			i++
		}
		rest, err := cardinalTokens(rs, trimLeadingZeros(frac), o.gender, false)
		if err != nil {
			return "", err
		}
		tokens = append(tokens, rest...)
	} else {
		for i := 0; i < len(frac); i++ {
			tokens = append(tokens, rs.Ones[frac[i]-'0'])
		}
	}

	if num.IsNegative() && rs.Negative != "" {
		tokens = append([]string{rs.Negative}, tokens...)
	}
	return strings.Join(tokens, " "), nil
}

// assembleYear voices a year: the cardinal of the absolute value with the
// locale's era word attached for negative years, or for positive ones when
// the caller asked for it. Years never carry the sign word.
func assembleYear(rs *RuleSet, num Number, o *convOptions) (string, error) {
	if num.FractionDigits() != "" && !allZeros(num.FractionDigits()) {
		return "", fmt.Errorf("%w: fractional year %s", ErrInvalidInput, num.String())
	}
	tokens, err := cardinalTokens(rs, num.IntegerDigits(), o.gender, o.conjunction)
	if err != nil {
		return "", err
	}

	era := ""
	switch {
	case num.IsNegative():
		era = rs.EraBC
	case o.era:
		era = rs.EraAD
	}
	if era != "" {
		if rs.EraPrefix {
			tokens = append([]string{era}, tokens...)
		} else {
			tokens = append(tokens, era)
		}
	}
	return strings.Join(tokens, " "), nil
}

// assembleCurrency voices an amount of money: the main unit count with its
// agreed unit name, then the subunit read from the fraction at the
// currency's precision. Rounding is half-up and may carry into the main
// amount.
func assembleCurrency(rs *RuleSet, num Number, o *convOptions) (string, error) {
	info, err := resolveCurrency(rs, o)
	if err != nil {
		return "", err
	}

	digits := info.subunitDigits()
	amount := num
	if o.round && digits > 0 {
		amount = num.roundFraction(digits)
	}

	mainDigits := amount.IntegerDigits()
	subCount := ""
	if digits > 0 {
		subCount = amount.fractionUnits(digits)
	}
	mainZero := allZeros(mainDigits)
	subZero := allZeros(subCount)

	var tokens []string
	mainVoiced := false
	if !(info.SuppressZeroMain && mainZero && !subZero) {
		main, err := cardinalTokens(rs, mainDigits, info.Main.Gender, o.conjunction)
		if err != nil {
			return "", err
		}
		tokens = append(tokens, main...)
		if w := info.Main.pick(rs.Plural.formForDigits(mainDigits)); w != "" {
			tokens = append(tokens, w)
		}
		mainVoiced = true
	}

	if info.hasSubunit() && (!subZero || info.AlwaysShowSub) {
		if mainVoiced && info.Separator != "" {
			tokens = append(tokens, info.Separator)
		}
		count := trimLeadingZeros(subCount)
		sub, err := cardinalTokens(rs, count, info.Sub.Gender, false)
		if err != nil {
			return "", err
		}
		tokens = append(tokens, sub...)
		if w := info.Sub.pick(rs.Plural.formForDigits(count)); w != "" {
			tokens = append(tokens, w)
		}
	}

	if amount.IsNegative() && rs.Negative != "" {
		tokens = append([]string{rs.Negative}, tokens...)
	}
	return strings.Join(tokens, " "), nil
}

// resolveCurrency picks the vocabulary for the request: an inline override,
// a requested code, or the locale default, in that order.
func resolveCurrency(rs *RuleSet, o *convOptions) (CurrencyInfo, error) {
	if o.currencyInfo != nil {
		info := *o.currencyInfo
		if err := info.validate(); err != nil {
			return CurrencyInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return info, nil
	}
	code := o.currencyCode
	if code == "" {
		code = rs.DefaultCurrency
	}
	if code == "" {
		return CurrencyInfo{}, fmt.Errorf("%w: no currency requested and locale %s declares no default", ErrInvalidInput, rs.Tag)
	}
	info, ok := rs.Currencies[strings.ToUpper(code)]
	if !ok {
		return CurrencyInfo{}, fmt.Errorf("%w: currency %s is not defined for locale %s", ErrInvalidInput, code, rs.Tag)
	}
	return info, nil
}
