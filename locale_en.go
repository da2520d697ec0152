package num2text

// English uses the short scale. The and-word is only voiced when the
// caller asks for conjunctions, which gives the British reading.
var English = &RuleSet{
	Tag:  "en",
	Name: "English",

	Ones:           [10]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"},
	Teens:          [10]string{"", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen", "seventeen", "eighteen", "nineteen"},
	Tens:           [10]string{"", "ten", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"},
	Hundred:        "hundred",
	TensUnitJoiner: "-",

	Scale: []UnitForms{
		{},
		{Singular: "thousand"},
		{Singular: "million"},
		{Singular: "billion"},
		{Singular: "trillion"},
		{Singular: "quadrillion"},
		{Singular: "quintillion"},
		{Singular: "sextillion"},
	},

	Negative: "minus",
	AndWord:  "and",

	EraBC: "BC",
	EraAD: "AD",

	Separators: map[SeparatorStyle]string{
		SeparatorPoint: "point",
		SeparatorComma: "comma",
	},
	DefaultSeparator: SeparatorPoint,

	Currencies: map[string]CurrencyInfo{
		"USD": {
			Code:      "USD",
			Main:      UnitForms{Singular: "dollar", Plural: "dollars"},
			Sub:       UnitForms{Singular: "cent", Plural: "cents"},
			SubDigits: 2,
			Separator: "and",
		},
		"EUR": {
			Code:      "EUR",
			Main:      UnitForms{Singular: "euro", Plural: "euros"},
			Sub:       UnitForms{Singular: "cent", Plural: "cents"},
			SubDigits: 2,
			Separator: "and",
		},
		"GBP": {
			Code:      "GBP",
			Main:      UnitForms{Singular: "pound", Plural: "pounds"},
			Sub:       UnitForms{Singular: "penny", Plural: "pence"},
			SubDigits: 2,
			Separator: "and",
		},
		// Spoken without a subunit.
		"JPY": {
			Code: "JPY",
			Main: UnitForms{Singular: "yen", Plural: "yen"},
		},
	},
	DefaultCurrency: "USD",
}
