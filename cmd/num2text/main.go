// Command num2text prints the spoken-word form of the numbers given on the
// command line, in the vocabulary of a chosen locale.
//
//	num2text -locale ru -currency RUB -round 1234.56
//	num2text -locale vi 1001
//	num2text -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	num2text "github.com/rahmat412/num2text-sub008"
)

type cliConfig struct {
	locale    string
	format    string
	currency  string
	separator string
	gender    string
	and       bool
	round     bool
	era       bool
	echo      bool
	list      bool
	ruleFiles ruleFileFlag
	values    []string
}

type ruleFileFlag struct {
	paths []string
}

func (f *ruleFileFlag) String() string {
	return strings.Join(f.paths, ",")
}

func (f *ruleFileFlag) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return errors.New("empty rule set path")
	}
	f.paths = append(f.paths, value)
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "num2text: %v\n", err)
	os.Exit(1)
}

func parseFlags() (cliConfig, error) {
	var cfg cliConfig

	flag.StringVar(&cfg.locale, "locale", "en", "locale tag to voice numbers in")
	flag.StringVar(&cfg.format, "format", "cardinal", "output format: cardinal, year or currency")
	flag.StringVar(&cfg.currency, "currency", "", "ISO 4217 code; implies -format currency")
	flag.StringVar(&cfg.separator, "separator", "", "decimal separator style: point or comma")
	flag.StringVar(&cfg.gender, "gender", "", "grammatical category for unit words, such as feminine")
	flag.BoolVar(&cfg.and, "and", false, "voice the locale's and-word inside the final group")
	flag.BoolVar(&cfg.round, "round", false, "round currency amounts to the subunit precision")
	flag.BoolVar(&cfg.era, "era", false, "attach the era word to positive years too")
	flag.BoolVar(&cfg.echo, "echo", false, "print the locale-formatted numeral before the words")
	flag.BoolVar(&cfg.list, "list", false, "list registered locales and exit")
	flag.Var(&cfg.ruleFiles, "rules", "rule set file (YAML or JSON) to register before converting. Repeat flag to add more.")

	flag.Parse()
	cfg.values = flag.Args()

	if !cfg.list && len(cfg.values) == 0 {
		return cliConfig{}, errors.New("no numbers given (or use -list)")
	}
	return cfg, nil
}

func run(cfg cliConfig) error {
	for _, path := range cfg.ruleFiles.paths {
		if _, err := num2text.RegisterFile(path); err != nil {
			return err
		}
	}

	if cfg.list {
		for _, tag := range num2text.Locales() {
			rs, err := num2text.Lookup(tag)
			if err != nil {
				return err
			}
			fmt.Printf("%s\t%s\n", tag, rs.Name)
		}
		return nil
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	printer := echoPrinter(cfg.locale)
	for _, value := range cfg.values {
		words, err := num2text.ConvertIn(cfg.locale, value, opts...)
		if err != nil {
			return fmt.Errorf("convert %q: %w", value, err)
		}
		if cfg.echo {
			fmt.Printf("%s\t%s\n", echoNumeral(printer, value), words)
			continue
		}
		fmt.Println(words)
	}
	return nil
}

func buildOptions(cfg cliConfig) ([]num2text.Option, error) {
	var opts []num2text.Option

	switch cfg.format {
	case "", "cardinal":
	case "year":
		opts = append(opts, num2text.WithFormat(num2text.FormatYear))
	case "currency":
		opts = append(opts, num2text.WithFormat(num2text.FormatCurrency))
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.format)
	}

	if cfg.currency != "" {
		opts = append(opts, num2text.WithCurrency(cfg.currency))
	}
	if cfg.separator != "" {
		opts = append(opts, num2text.WithSeparator(num2text.SeparatorStyle(cfg.separator)))
	}
	if cfg.gender != "" {
		opts = append(opts, num2text.WithGender(cfg.gender))
	}
	if cfg.and {
		opts = append(opts, num2text.WithConjunction())
	}
	if cfg.round {
		opts = append(opts, num2text.WithRounding())
	}
	if cfg.era {
		opts = append(opts, num2text.WithEra())
	}
	return opts, nil
}

// echoPrinter builds a message printer for the locale, falling back to the
// undetermined tag for strings the language library cannot parse.
func echoPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return message.NewPrinter(tag)
}

// echoNumeral renders the input with the locale's digit grouping and
// decimal mark. Inputs the float parser rejects are echoed verbatim.
func echoNumeral(printer *message.Printer, value string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return value
	}
	digits := strings.TrimLeft(strings.TrimSpace(value), "+-")
	if idx := strings.IndexByte(digits, '.'); idx >= 0 {
		scale := len(digits) - idx - 1
		return printer.Sprintf("%v", number.Decimal(f, number.Scale(scale)))
	}
	return printer.Sprintf("%v", number.Decimal(f))
}
