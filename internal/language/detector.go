// Package language guesses the language of a short free-text input such as
// a city name.
package language

import (
	"unicode"

	"github.com/abadojack/whatlanggo"
)

// Rule inspects text and reports a two-letter language code, or false when it
// cannot decide.
type Rule func(text string) (string, bool)

// Two-letter codes for the languages the statistical stage may report.
var isoCodes = map[whatlanggo.Lang]string{
	whatlanggo.Eng: "en",
	whatlanggo.Cmn: "zh",
	whatlanggo.Jpn: "ja",
	whatlanggo.Kor: "ko",
	whatlanggo.Fra: "fr",
	whatlanggo.Deu: "de",
	whatlanggo.Spa: "es",
	whatlanggo.Ita: "it",
	whatlanggo.Por: "pt",
	whatlanggo.Rus: "ru",
	whatlanggo.Nld: "nl",
	whatlanggo.Pol: "pl",
	whatlanggo.Tur: "tr",
	whatlanggo.Ukr: "uk",
	whatlanggo.Arb: "ar",
	whatlanggo.Hin: "hi",
	whatlanggo.Tha: "th",
	whatlanggo.Vie: "vi",
}

type Detector struct {
	defaultLang string
	rules       []Rule
}

// NewDetector returns a detector that tries rules in order and falls back to
// defaultLang. Without rules it uses DefaultRules.
func NewDetector(defaultLang string, rules ...Rule) *Detector {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Detector{
		defaultLang: defaultLang,
		rules:       rules,
	}
}

// DefaultRules is the statistical guesser followed by the Unicode script checks.
func DefaultRules() []Rule {
	return []Rule{
		Statistical,
		ScriptRule("zh", unicode.Han),
		ScriptRule("ja", unicode.Hiragana, unicode.Katakana),
		ScriptRule("ko", unicode.Hangul),
	}
}

func (d *Detector) Detect(text string) string {
	for _, rule := range d.rules {
		if lang, ok := rule(text); ok {
			return lang
		}
	}
	return d.defaultLang
}

func (d *Detector) DefaultLanguage() string {
	return d.defaultLang
}

// Statistical runs the trigram classifier. Short or ambiguous input is
// reported as undetermined.
func Statistical(text string) (string, bool) {
	info := whatlanggo.Detect(text)
	if info.Lang < 0 || !info.IsReliable() {
		return "", false
	}
	code, ok := isoCodes[info.Lang]
	return code, ok
}

// ScriptRule matches when any rune of the text belongs to one of the tables.
func ScriptRule(lang string, tables ...*unicode.RangeTable) Rule {
	return func(text string) (string, bool) {
		for _, r := range text {
			if unicode.IsOneOf(tables, r) {
				return lang, true
			}
		}
		return "", false
	}
}
