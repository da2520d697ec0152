package num2text

// Russian declares all four agreement forms. Scale words carry their
// own gender: thousands count with the feminine одна and две, millions and
// up with the masculine digits.
var Russian = &RuleSet{
	Tag:  "ru",
	Name: "русский",

	Ones: [10]string{"ноль", "один", "два", "три", "четыре", "пять", "шесть", "семь", "восемь", "девять"},
	OnesFor: map[string][10]string{
		"feminine": {1: "одна", 2: "две"},
		"neuter":   {1: "одно"},
	},
	Teens:    [10]string{"", "одиннадцать", "двенадцать", "тринадцать", "четырнадцать", "пятнадцать", "шестнадцать", "семнадцать", "восемнадцать", "девятнадцать"},
	Tens:     [10]string{"", "десять", "двадцать", "тридцать", "сорок", "пятьдесят", "шестьдесят", "семьдесят", "восемьдесят", "девяносто"},
	Hundreds: [10]string{"", "сто", "двести", "триста", "четыреста", "пятьсот", "шестьсот", "семьсот", "восемьсот", "девятьсот"},

	Scale: []UnitForms{
		{},
		{Singular: "тысяча", Few: "тысячи", Genitive: "тысяч", Gender: "feminine"},
		{Singular: "миллион", Few: "миллиона", Genitive: "миллионов"},
		{Singular: "миллиард", Few: "миллиарда", Genitive: "миллиардов"},
		{Singular: "триллион", Few: "триллиона", Genitive: "триллионов"},
		{Singular: "квадриллион", Few: "квадриллиона", Genitive: "квадриллионов"},
		{Singular: "квинтиллион", Few: "квинтиллиона", Genitive: "квинтиллионов"},
		{Singular: "секстиллион", Few: "секстиллиона", Genitive: "секстиллионов"},
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

	Negative: "минус",

	EraBC: "до н. э.",
	EraAD: "н. э.",

	Separators: map[SeparatorStyle]string{
		SeparatorComma: "запятая",
		SeparatorPoint: "точка",
	},
	DefaultSeparator: SeparatorComma,

	Currencies: map[string]CurrencyInfo{
		"RUB": {
			Code:      "RUB",
			Main:      UnitForms{Singular: "рубль", Few: "рубля", Genitive: "рублей"},
			Sub:       UnitForms{Singular: "копейка", Few: "копейки", Genitive: "копеек", Gender: "feminine"},
			SubDigits: 2,
		},
		"USD": {
			Code:      "USD",
			Main:      UnitForms{Singular: "доллар", Few: "доллара", Genitive: "долларов"},
			Sub:       UnitForms{Singular: "цент", Few: "цента", Genitive: "центов"},
			SubDigits: 2,
		},
		"EUR": {
			Code:      "EUR",
			Main:      UnitForms{Singular: "евро", Few: "евро", Genitive: "евро"},
			Sub:       UnitForms{Singular: "цент", Few: "цента", Genitive: "центов"},
			SubDigits: 2,
		},
	},
	DefaultCurrency: "RUB",
}
