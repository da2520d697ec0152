package num2text

// Form identifies one of the agreement slots a locale may declare for words
// that change shape with the count they describe: scale words and currency
// unit names.
type Form string

const (
	// Singular is the form used with one of something.
	Singular Form = "singular"
	// Plural is the standard plural and the catch-all every locale has.
	Plural Form = "plural"
	// Few is the small-count plural Slavic locales use for 2..4.
	Few Form = "few"
	// Genitive is the plural-genitive Slavic locales use for teens, zero
	// and counts of five and up.
	Genitive Form = "genitive"
)

// PluralRule maps a non-negative count onto a Form. The zero value is the
// two-form rule of English-type locales: exactly one selects Singular and
// everything else Plural.
type PluralRule struct {
	// ModuloOne extends Singular to every count ending in 1 outside the
	// teen window, the Slavic agreement for 21, 101 and so on. When false
	// only the exact count 1 is singular.
	ModuloOne bool

	// TeenLow and TeenHigh bracket the count-mod-100 window forced to
	// Genitive before any other test, usually 11..14. Both zero disables
	// the window.
	TeenLow  int
	TeenHigh int

	// FewLow and FewHigh bracket the last-digit range mapped to Few,
	// usually 2..4. Both zero disables the range.
	FewLow  int
	FewHigh int

	// HasFew and HasGenitive declare which extra forms the locale's word
	// tables actually carry. Selections for undeclared forms collapse
	// onto Plural so sparse locales never dead-end.
	HasFew      bool
	HasGenitive bool
}

// FormFor returns the agreement form for count. It is a pure function of the
// count's last two digits plus an exact-one test, so it behaves identically
// for counts held as uint64 and counts held as digit strings.
func (r PluralRule) FormFor(count uint64) Form {
	return r.classify(int(count%100), count == 1)
}

// formForDigits is FormFor over a canonical digit string, used where counts
// can exceed any native integer.
func (r PluralRule) formForDigits(digits string) Form {
	tail := digits
	if len(tail) > 2 {
		tail = tail[len(tail)-2:]
	}
	last2 := 0
	for i := 0; i < len(tail); i++ {
		last2 = last2*10 + int(tail[i]-'0')
	}
	return r.classify(last2, trimLeadingZeros(digits) == "1")
}

func (r PluralRule) classify(last2 int, exactlyOne bool) Form {
	if r.TeenHigh > 0 && last2 >= r.TeenLow && last2 <= r.TeenHigh {
		return r.collapse(Genitive)
	}
	last := last2 % 10
	if exactlyOne || (r.ModuloOne && last == 1) {
		return Singular
	}
	if r.FewHigh > 0 && last >= r.FewLow && last <= r.FewHigh {
		return r.collapse(Few)
	}
	return r.collapse(Genitive)
}

// collapse folds forms the locale does not declare onto Plural.
func (r PluralRule) collapse(f Form) Form {
	switch f {
	case Few:
		if !r.HasFew {
			return Plural
		}
	case Genitive:
		if !r.HasGenitive {
			return Plural
		}
	}
	return f
}
