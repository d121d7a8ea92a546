// Package reply turns a weather snapshot into a sentence in the caller's language.
package reply

import (
	"strconv"
	"strings"
)

const fallbackLanguage = "en"

var templates = map[string]string{
	"en": "The current temperature in {city}, {country} is {temp}°C with {desc}.",
	"zh": "{city}, {country} 当前温度是 {temp}°C，天气{desc}。",
	"ja": "{city}（{country}）の現在の気温は{temp}°C、天気は{desc}です。",
	"ko": "{city}, {country}의 현재 기온은 {temp}°C이며, 날씨는 {desc}입니다.",
}

// Composer is stateless apart from the language it falls back to.
type Composer struct {
	defaultLang string
}

func NewComposer(defaultLang string) *Composer {
	if _, ok := templates[defaultLang]; !ok {
		defaultLang = fallbackLanguage
	}
	return &Composer{defaultLang: defaultLang}
}

// Describe returns the condition text for code in lang, then in the default
// language, then UnknownCondition.
func (c *Composer) Describe(code int, lang string) string {
	if desc, ok := conditions[lang][code]; ok {
		return desc
	}
	if desc, ok := conditions[c.defaultLang][code]; ok {
		return desc
	}
	return UnknownCondition
}

// Compose fills the template for lang, or the default language's when lang
// has none.
func (c *Composer) Compose(lang, city, country string, temperature float64, code int) string {
	tmpl, ok := templates[lang]
	if !ok {
		tmpl = templates[c.defaultLang]
	}

	r := strings.NewReplacer(
		"{city}", city,
		"{country}", country,
		"{temp}", strconv.FormatFloat(temperature, 'f', -1, 64),
		"{desc}", c.Describe(code, lang),
	)
	return r.Replace(tmpl)
}
