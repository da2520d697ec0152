package num2text

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileRuleSet mirrors the on-disk shape of a rule set. Word tables are
// variable length in files and validated into their fixed-size arrays, and
// agreement forms use the CLDR category names one/other/few/many.
type fileRuleSet struct {
	Locale string `json:"locale" yaml:"locale"`
	Name   string `json:"name" yaml:"name"`

	Ones          []string            `json:"ones" yaml:"ones"`
	OnesFor       map[string][]string `json:"ones_for" yaml:"ones_for"`
	OnesAfterTens []string            `json:"ones_after_tens" yaml:"ones_after_tens"`
	Teens         []string            `json:"teens" yaml:"teens"`
	Tens          []string            `json:"tens" yaml:"tens"`

	Hundred        string      `json:"hundred" yaml:"hundred"`
	Hundreds       []string    `json:"hundreds" yaml:"hundreds"`
	TensUnitJoiner string      `json:"tens_unit_joiner" yaml:"tens_unit_joiner"`
	Scale          []fileForms `json:"scale" yaml:"scale"`

	Plural   filePlural `json:"plural" yaml:"plural"`
	Negative string     `json:"negative" yaml:"negative"`
	And      string     `json:"and" yaml:"and"`

	Padding *filePadding `json:"padding" yaml:"padding"`
	Era     *fileEra     `json:"era" yaml:"era"`

	Separators       map[string]string `json:"separators" yaml:"separators"`
	DefaultSeparator string            `json:"default_separator" yaml:"default_separator"`
	FractionAsGroup  bool              `json:"fraction_as_group" yaml:"fraction_as_group"`

	Currencies      map[string]fileCurrency `json:"currencies" yaml:"currencies"`
	DefaultCurrency string                  `json:"default_currency" yaml:"default_currency"`
}

// fileForms is one set of agreement forms keyed the CLDR way.
type fileForms struct {
	One    string `json:"one" yaml:"one"`
	Other  string `json:"other" yaml:"other"`
	Few    string `json:"few" yaml:"few"`
	Many   string `json:"many" yaml:"many"`
	Gender string `json:"gender" yaml:"gender"`
}

type filePlural struct {
	ModuloOne bool     `json:"modulo_one" yaml:"modulo_one"`
	TeenRange []int    `json:"teen_range" yaml:"teen_range"`
	FewRange  []int    `json:"few_range" yaml:"few_range"`
	Forms     []string `json:"forms" yaml:"forms"`
}

type filePadding struct {
	ZeroHundred string `json:"zero_hundred" yaml:"zero_hundred"`
	LowLink     string `json:"low_link" yaml:"low_link"`
}

type fileEra struct {
	BC     string `json:"bc" yaml:"bc"`
	AD     string `json:"ad" yaml:"ad"`
	Prefix bool   `json:"prefix" yaml:"prefix"`
}

type fileCurrency struct {
	Main             fileForms `json:"main" yaml:"main"`
	Sub              fileForms `json:"sub" yaml:"sub"`
	SubDigits        int       `json:"sub_digits" yaml:"sub_digits"`
	Separator        string    `json:"separator" yaml:"separator"`
	AlwaysShowSub    bool      `json:"always_show_sub" yaml:"always_show_sub"`
	SuppressZeroMain bool      `json:"suppress_zero_main" yaml:"suppress_zero_main"`
}

// LoadRuleSetFile reads and validates a rule set from a YAML or JSON file,
// dispatching on the extension.
func LoadRuleSetFile(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("num2text: read %s: %w", path, err)
	}

	var raw fileRuleSet
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("num2text: parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("num2text: parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("num2text: unsupported rule set file extension %q", ext)
	}
	return buildRuleSet(&raw)
}

// ParseRuleSet builds and validates a rule set from YAML bytes.
func ParseRuleSet(data []byte) (*RuleSet, error) {
	var raw fileRuleSet
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("num2text: parse rule set: %w", err)
	}
	return buildRuleSet(&raw)
}

// RegisterFile loads a rule set file and registers it, returning the rule
// set so callers can see the tag it landed under.
func RegisterFile(path string) (*RuleSet, error) {
	rs, err := LoadRuleSetFile(path)
	if err != nil {
		return nil, err
	}
	if err := Register(rs); err != nil {
		return nil, err
	}
	return rs, nil
}

func buildRuleSet(raw *fileRuleSet) (*RuleSet, error) {
	rs := &RuleSet{
		Tag:              raw.Locale,
		Name:             raw.Name,
		Hundred:          raw.Hundred,
		TensUnitJoiner:   raw.TensUnitJoiner,
		Negative:         raw.Negative,
		AndWord:          raw.And,
		DefaultSeparator: SeparatorStyle(raw.DefaultSeparator),
		FractionAsGroup:  raw.FractionAsGroup,
		DefaultCurrency:  strings.ToUpper(raw.DefaultCurrency),
	}

	if err := fillTable(&rs.Ones, raw.Ones, "ones"); err != nil {
		return nil, err
	}
	if err := fillTable(&rs.OnesAfterTens, raw.OnesAfterTens, "ones_after_tens"); err != nil {
		return nil, err
	}
	if err := fillTable(&rs.Teens, raw.Teens, "teens"); err != nil {
		return nil, err
	}
	if err := fillTable(&rs.Tens, raw.Tens, "tens"); err != nil {
		return nil, err
	}
	if err := fillTable(&rs.Hundreds, raw.Hundreds, "hundreds"); err != nil {
		return nil, err
	}
	if len(raw.OnesFor) > 0 {
		rs.OnesFor = make(map[string][10]string, len(raw.OnesFor))
		for category, words := range raw.OnesFor {
			var table [10]string
			if err := fillTable(&table, words, "ones_for."+category); err != nil {
				return nil, err
			}
			rs.OnesFor[category] = table
		}
	}

	rs.Scale = make([]UnitForms, len(raw.Scale)+1)
	for i, entry := range raw.Scale {
		rs.Scale[i+1] = entry.unitForms()
	}

	rule, err := raw.Plural.rule()
	if err != nil {
		return nil, err
	}
	rs.Plural = rule

	if raw.Padding != nil {
		rs.PadZeroHundred = true
		rs.ZeroHundred = raw.Padding.ZeroHundred
		rs.LowLink = raw.Padding.LowLink
	}
	if raw.Era != nil {
		rs.EraBC = raw.Era.BC
		rs.EraAD = raw.Era.AD
		rs.EraPrefix = raw.Era.Prefix
	}
	if len(raw.Separators) > 0 {
		rs.Separators = make(map[SeparatorStyle]string, len(raw.Separators))
		for style, word := range raw.Separators {
			rs.Separators[SeparatorStyle(style)] = word
		}
	}
	if len(raw.Currencies) > 0 {
		rs.Currencies = make(map[string]CurrencyInfo, len(raw.Currencies))
		for code, entry := range raw.Currencies {
			code = strings.ToUpper(strings.TrimSpace(code))
			rs.Currencies[code] = CurrencyInfo{
				Code:             code,
				Main:             entry.Main.unitForms(),
				Sub:              entry.Sub.unitForms(),
				SubDigits:        entry.SubDigits,
				Separator:        entry.Separator,
				AlwaysShowSub:    entry.AlwaysShowSub,
				SuppressZeroMain: entry.SuppressZeroMain,
			}
		}
	}

	if err := rs.Validate(); err != nil {
		return nil, err
	}
	return rs, nil
}

func fillTable(dst *[10]string, src []string, what string) error {
	if len(src) > len(dst) {
		return fmt.Errorf("num2text: %s has %d entries, at most %d allowed", what, len(src), len(dst))
	}
	copy(dst[:], src)
	return nil
}

func (f fileForms) unitForms() UnitForms {
	return UnitForms{
		Singular: f.One,
		Plural:   f.Other,
		Few:      f.Few,
		Genitive: f.Many,
		Gender:   f.Gender,
	}
}

func (p filePlural) rule() (PluralRule, error) {
	rule := PluralRule{ModuloOne: p.ModuloOne}

	low, high, err := parseRange(p.TeenRange, "teen_range")
	if err != nil {
		return PluralRule{}, err
	}
	rule.TeenLow, rule.TeenHigh = low, high

	low, high, err = parseRange(p.FewRange, "few_range")
	if err != nil {
		return PluralRule{}, err
	}
	rule.FewLow, rule.FewHigh = low, high

	for _, name := range p.Forms {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "few":
			rule.HasFew = true
		case "many", "genitive":
			rule.HasGenitive = true
		case "one", "singular", "other", "plural":
			// always available
		default:
			return PluralRule{}, fmt.Errorf("num2text: unknown plural form %q", name)
		}
	}
	return rule, nil
}

func parseRange(r []int, what string) (int, int, error) {
	switch len(r) {
	case 0:
		return 0, 0, nil
	case 2:
		return r[0], r[1], nil
	default:
		return 0, 0, fmt.Errorf("num2text: %s must be [low, high], got %d entries", what, len(r))
	}
}
