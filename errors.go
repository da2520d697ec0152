package num2text

import "errors"

// ErrInvalidInput indicates that a value is not one of the accepted numeric
// types or is not a syntactically valid decimal numeral.
var ErrInvalidInput = errors.New("num2text: invalid input")

// ErrNonFiniteInput indicates a NaN or infinite floating-point value. Callers
// that want to render such values specially can test for it with errors.Is.
var ErrNonFiniteInput = errors.New("num2text: non-finite input")

// ErrMagnitudeExceeded indicates that the integer part of a number has more
// digits than the scale-word ladder covers.
var ErrMagnitudeExceeded = errors.New("num2text: magnitude exceeded")

// ErrUnsupportedLocale indicates that no rule set is registered for the
// requested locale or any of its parents.
var ErrUnsupportedLocale = errors.New("num2text: unsupported locale")
