package num2text

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Number is the canonical form every conversion operates on: a sign plus the
// exact decimal digits of the integer and fractional parts, held as text so
// that values wider than any native integer survive unchanged.
type Number struct {
	negative   bool
	intDigits  string
	fracDigits string
}

// ParseNumber normalizes a raw value into a Number. It accepts all native
// signed and unsigned integer widths, float32/float64, *big.Int, decimal
// numeral strings such as "-12.50", and Number itself (returned as is).
//
// Floats are expanded to the shortest decimal representation that round-trips
// to the same value. NaN and infinities are rejected with ErrNonFiniteInput;
// every other malformed value is rejected with ErrInvalidInput.
func ParseNumber(value any) (Number, error) {
	switch v := value.(type) {
	case Number:
		return v, nil
	case int:
		return parseDecimal(strconv.FormatInt(int64(v), 10))
	case int8:
		return parseDecimal(strconv.FormatInt(int64(v), 10))
	case int16:
		return parseDecimal(strconv.FormatInt(int64(v), 10))
	case int32:
		return parseDecimal(strconv.FormatInt(int64(v), 10))
	case int64:
		return parseDecimal(strconv.FormatInt(v, 10))
	case uint:
		return parseDecimal(strconv.FormatUint(uint64(v), 10))
	case uint8:
		return parseDecimal(strconv.FormatUint(uint64(v), 10))
	case uint16:
		return parseDecimal(strconv.FormatUint(uint64(v), 10))
	case uint32:
		return parseDecimal(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return parseDecimal(strconv.FormatUint(v, 10))
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return Number{}, fmt.Errorf("%w: %v", ErrNonFiniteInput, v)
		}
		return parseDecimal(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Number{}, fmt.Errorf("%w: %v", ErrNonFiniteInput, v)
		}
		return parseDecimal(strconv.FormatFloat(v, 'f', -1, 64))
	case *big.Int:
		if v == nil {
			return Number{}, fmt.Errorf("%w: nil *big.Int", ErrInvalidInput)
		}
		return parseDecimal(v.String())
	case string:
		return parseDecimal(v)
	default:
		return Number{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, value)
	}
}

// parseDecimal turns an optionally signed decimal numeral into canonical
// form: no leading zeros on the integer part, fraction digits kept verbatim,
// and negative zero folded into plain zero.
func parseDecimal(s string) (Number, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Number{}, fmt.Errorf("%w: empty numeral", ErrInvalidInput)
	}

	var n Number
	body := raw
	switch body[0] {
	case '-':
		n.negative = true
		body = body[1:]
	case '+':
		body = body[1:]
	}

	intPart := body
	if dot := strings.IndexByte(body, '.'); dot >= 0 {
		intPart = body[:dot]
		n.fracDigits = body[dot+1:]
	}
	if intPart == "" && n.fracDigits == "" {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidInput, raw)
	}
	if !digitsOnly(intPart) || !digitsOnly(n.fracDigits) {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidInput, raw)
	}

	n.intDigits = trimLeadingZeros(intPart)
	if n.negative && n.intDigits == "0" && allZeros(n.fracDigits) {
		n.negative = false
	}
	return n, nil
}

// IsNegative reports whether the value is strictly below zero.
func (n Number) IsNegative() bool { return n.negative }

// IsZero reports whether the value equals zero regardless of how many
// fraction digits it carries.
func (n Number) IsZero() bool {
	return (n.intDigits == "" || allZeros(n.intDigits)) && allZeros(n.fracDigits)
}

// IntegerDigits returns the digits before the decimal point, at least "0".
func (n Number) IntegerDigits() string {
	if n.intDigits == "" {
		return "0"
	}
	return n.intDigits
}

// FractionDigits returns the digits after the decimal point verbatim,
// trailing zeros included. It is empty for whole numbers.
func (n Number) FractionDigits() string { return n.fracDigits }

// String renders the numeral back in plain decimal notation.
func (n Number) String() string {
	var b strings.Builder
	if n.negative {
		b.WriteByte('-')
	}
	b.WriteString(n.IntegerDigits())
	if n.fracDigits != "" {
		b.WriteByte('.')
		b.WriteString(n.fracDigits)
	}
	return b.String()
}

// roundFraction rounds the fractional part half-up (away from zero) to the
// given number of digits, carrying into the integer part when the fraction
// overflows, as in 0.999 rounded to two digits becoming 1.00.
func (n Number) roundFraction(digits int) Number {
	if len(n.fracDigits) <= digits {
		return n
	}
	kept := n.fracDigits[:digits]
	roundUp := n.fracDigits[digits] >= '5'
	out := n
	out.fracDigits = kept
	if roundUp {
		carried := incrementDigits(kept)
		if len(carried) > digits {
			out.intDigits = incrementDigits(n.IntegerDigits())
			carried = carried[1:]
		}
		out.fracDigits = carried
	}
	if out.negative && allZeros(out.intDigits) && allZeros(out.fracDigits) {
		out.negative = false
	}
	return out
}

// fractionUnits reads the fraction as a count of 10^-digits subunits,
// padding with zeros or truncating as needed. "5" at two digits is "50".
func (n Number) fractionUnits(digits int) string {
	frac := n.fracDigits
	if len(frac) >= digits {
		return frac[:digits]
	}
	return frac + strings.Repeat("0", digits-len(frac))
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

func trimLeadingZeros(s string) string {
	if s == "" {
		return "0"
	}
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

// incrementDigits adds one to a digit string, growing it on overflow, so
// "099" becomes "100" and "999" becomes "1000".
func incrementDigits(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}
