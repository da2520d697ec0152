package num2text

// Vietnamese needs the zero-hundred padding: a group below one hundred
// after a higher group reads with "không trăm lẻ" in front, as in một nghìn
// không trăm lẻ một for 1001. Unit digits change after a tens word, mốt for
// one and lăm for five.
var Vietnamese = &RuleSet{
	Tag:  "vi",
	Name: "Tiếng Việt",

	Ones:          [10]string{"không", "một", "hai", "ba", "bốn", "năm", "sáu", "bảy", "tám", "chín"},
	OnesAfterTens: [10]string{1: "mốt", 5: "lăm"},
	Teens:         [10]string{"", "mười một", "mười hai", "mười ba", "mười bốn", "mười lăm", "mười sáu", "mười bảy", "mười tám", "mười chín"},
	Tens:          [10]string{"", "mười", "hai mươi", "ba mươi", "bốn mươi", "năm mươi", "sáu mươi", "bảy mươi", "tám mươi", "chín mươi"},
	Hundred:       "trăm",

	Scale: []UnitForms{
		{},
		{Singular: "nghìn"},
		{Singular: "triệu"},
		{Singular: "tỷ"},
		{Singular: "nghìn tỷ"},
		{Singular: "triệu tỷ"},
		{Singular: "tỷ tỷ"},
		{Singular: "nghìn tỷ tỷ"},
	},

	Negative: "âm",

	PadZeroHundred: true,
	ZeroHundred:    "không trăm",
	LowLink:        "lẻ",

	EraBC: "trước Công nguyên",
	EraAD: "sau Công nguyên",

	Separators: map[SeparatorStyle]string{
		SeparatorComma: "phẩy",
		SeparatorPoint: "chấm",
	},
	DefaultSeparator: SeparatorComma,

	Currencies: map[string]CurrencyInfo{
		// The đồng has no spoken subunit.
		"VND": {
			Code: "VND",
			Main: UnitForms{Singular: "đồng"},
		},
		"USD": {
			Code:      "USD",
			Main:      UnitForms{Singular: "đô la Mỹ"},
			Sub:       UnitForms{Singular: "xu"},
			SubDigits: 2,
		},
	},
	DefaultCurrency: "VND",
}
