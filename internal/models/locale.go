package models

// Locale selects which bilingual field is displayed and searched.
// The product ships Hebrew-first; anything unrecognized falls back to it.
type Locale string

const (
	LocaleHebrew  Locale = "hebrew"
	LocaleEnglish Locale = "english"
)

// ParseLocale maps a request value onto a supported locale.
func ParseLocale(s string) Locale {
	if Locale(s) == LocaleEnglish || s == "en" {
		return LocaleEnglish
	}
	return LocaleHebrew
}
