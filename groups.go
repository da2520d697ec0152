package num2text

import "fmt"

// maxIntegerDigits caps the integer part at eight three-digit groups, which
// is what a scale ladder topping out at 10^21 can voice.
const maxIntegerDigits = 24

// Group is one three-digit slice of an integer part. Value is the slice read
// as a number in 0..999 and Scale its rung on the ladder: 0 for units, 1 for
// thousands, 2 for millions and so on.
type Group struct {
	Value int
	Scale int
}

// splitGroups slices canonical integer digits into groups ordered from the
// most significant down. Zero groups are kept so the assembler can decide
// whether padding words stand in for them. A lone zero yields one group.
func splitGroups(digits string) ([]Group, error) {
	if len(digits) > maxIntegerDigits {
		return nil, fmt.Errorf("%w: %d integer digits, at most %d supported", ErrMagnitudeExceeded, len(digits), maxIntegerDigits)
	}
	count := (len(digits) + 2) / 3
	groups := make([]Group, 0, count)

	width := len(digits) % 3
	if width == 0 {
		width = 3
	}
	scale := count - 1
	pos := 0
	for pos < len(digits) {
		end := pos + width
		value := 0
		for i := pos; i < end; i++ {
			value = value*10 + int(digits[i]-'0')
		}
		groups = append(groups, Group{Value: value, Scale: scale})
		scale--
		pos = end
		width = 3
	}
	return groups, nil
}
