package num2text

// Ukrainian mirrors the Russian shape with its own words. The hryvnia is
// feminine, so whole amounts count with одна and дві.
var Ukrainian = &RuleSet{
	Tag:  "uk",
	Name: "українська",

	Ones: [10]string{"нуль", "один", "два", "три", "чотири", "п'ять", "шість", "сім", "вісім", "дев'ять"},
	OnesFor: map[string][10]string{
		"feminine": {1: "одна", 2: "дві"},
		"neuter":   {1: "одне"},
	},
	Teens:    [10]string{"", "одинадцять", "дванадцять", "тринадцять", "чотирнадцять", "п'ятнадцять", "шістнадцять", "сімнадцять", "вісімнадцять", "дев'ятнадцять"},
	Tens:     [10]string{"", "десять", "двадцять", "тридцять", "сорок", "п'ятдесят", "шістдесят", "сімдесят", "вісімдесят", "дев'яносто"},
	Hundreds: [10]string{"", "сто", "двісті", "триста", "чотириста", "п'ятсот", "шістсот", "сімсот", "вісімсот", "дев'ятсот"},

	Scale: []UnitForms{
		{},
		{Singular: "тисяча", Few: "тисячі", Genitive: "тисяч", Gender: "feminine"},
		{Singular: "мільйон", Few: "мільйони", Genitive: "мільйонів"},
		{Singular: "мільярд", Few: "мільярди", Genitive: "мільярдів"},
		{Singular: "трильйон", Few: "трильйони", Genitive: "трильйонів"},
		{Singular: "квадрильйон", Few: "квадрильйони", Genitive: "квадрильйонів"},
		{Singular: "квінтильйон", Few: "квінтильйони", Genitive: "квінтильйонів"},
		{Singular: "секстильйон", Few: "секстильйони", Genitive: "секстильйонів"},
	},

	Plural: PluralRule{
		ModuloOne:   true,
		TeenLow:     11,
		TeenHigh:    14,
		FewLow:      2,
		FewHigh:     4,
		HasFew:      true,
		HasGenitive: true,
	},

	Negative: "мінус",

	EraBC: "до н. е.",
	EraAD: "н. е.",

	Separators: map[SeparatorStyle]string{
		SeparatorComma: "кома",
		SeparatorPoint: "крапка",
	},
	DefaultSeparator: SeparatorComma,

	Currencies: map[string]CurrencyInfo{
		"UAH": {
			Code:      "UAH",
			Main:      UnitForms{Singular: "гривня", Few: "гривні", Genitive: "гривень", Gender: "feminine"},
			Sub:       UnitForms{Singular: "копійка", Few: "копійки", Genitive: "копійок", Gender: "feminine"},
			SubDigits: 2,
		},
		"USD": {
			Code:      "USD",
			Main:      UnitForms{Singular: "долар", Few: "долари", Genitive: "доларів"},
			Sub:       UnitForms{Singular: "цент", Few: "центи", Genitive: "центів"},
			SubDigits: 2,
		},
	},
	DefaultCurrency: "UAH",
}
