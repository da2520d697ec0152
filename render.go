package num2text

// renderGroup returns the words for one 0..999 group. A zero group yields no
// tokens; the assembler decides whether padding stands in for it. padded
// means a zero-hundred filler was already voiced for this group, so the
// low-link particle applies as if a hundreds word were present. withAnd
// injects the locale's and-word between the hundreds and the rest.
func renderGroup(rs *RuleSet, value int, gender string, withAnd, padded bool) []string {
	h := value / 100
	rem := value % 100
	t := rem / 10
	o := rem % 10

	tokens := make([]string, 0, 4)
	if h > 0 {
		if rs.Hundreds[h] != "" {
			tokens = append(tokens, rs.Hundreds[h])
		} else {
			tokens = append(tokens, rs.Ones[h], rs.Hundred)
		}
	}
	if rem > 0 && (h > 0 || padded) {
		if withAnd && rs.AndWord != "" {
			tokens = append(tokens, rs.AndWord)
		} else if rs.LowLink != "" && t == 0 {
			tokens = append(tokens, rs.LowLink)
		}
	}

	switch {
	case rem == 0:
	case t == 0:
		tokens = append(tokens, rs.onesWord(o, gender))
	case t == 1 && o > 0 && rs.Teens[o] != "":
		tokens = append(tokens, rs.Teens[o])
	default:
		tokens = append(tokens, tensTokens(rs, t, o, gender)...)
	}
	return tokens
}

// tensTokens voices a tens digit with its optional unit, honoring the
// after-tens variant table and the joiner, so English yields the single
// token "twenty-three" while Vietnamese yields "hai mươi" followed by "mốt".
func tensTokens(rs *RuleSet, t, o int, gender string) []string {
	if o == 0 {
		return []string{rs.Tens[t]}
	}
	unit := rs.OnesAfterTens[o]
	if unit == "" {
		unit = rs.onesWord(o, gender)
	}
	if rs.TensUnitJoiner != "" {
		return []string{rs.Tens[t] + rs.TensUnitJoiner + unit}
	}
	return []string{rs.Tens[t], unit}
}
