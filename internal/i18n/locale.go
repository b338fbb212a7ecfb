// Package i18n holds the locale state and the bilingual rendering primitives.
// The site supports exactly two display languages: zh (default) and en.
package i18n

import "errors"

// Locale is one of the two supported display languages.
type Locale string

const (
	LangZh Locale = "zh"
	LangEn Locale = "en"
)

// DefaultLocale is the language a fresh session starts in.
const DefaultLocale = LangZh

// ErrNotInitialized is returned when a consumer asks for the locale store
// outside the scope where the middleware installed it. Failing fast here
// surfaces wiring mistakes instead of silently rendering the wrong language.
var ErrNotInitialized = errors.New("i18n: locale store not initialized")

// ParseLocale normalizes an untrusted language tag. Anything that is not "en"
// collapses to the default.
func ParseLocale(s string) Locale {
	if s == string(LangEn) {
		return LangEn
	}
	return DefaultLocale
}

// Store is the single-writer language state for one session. Set is the only
// mutation entry point; everything else reads.
type Store struct {
	current Locale
	// docLang mirrors the document-level lang attribute the client keeps in
	// sync for accessibility/SEO tooling.
	docLang string
}

// NewStore creates a store pinned to the given locale.
func NewStore(lang Locale) *Store {
	return &Store{current: lang, docLang: string(lang)}
}

// Current returns the active locale.
func (s *Store) Current() Locale {
	return s.current
}

// Set switches the active locale. Calling it with the already-active locale is
// a no-op, so repeated toggles are idempotent per target language.
func (s *Store) Set(lang Locale) {
	if lang == s.current {
		return
	}
	s.current = lang
	s.docLang = string(lang)
}

// DocumentLang is the value the <html lang> attribute should carry.
func (s *Store) DocumentLang() string {
	return s.docLang
}

// T selects between the two translations of a bilingual value. It is a pure
// function of (current locale, zh, en): it never fetches and never fails —
// an empty string is a valid fallback the caller opted into.
func (s *Store) T(zh, en string) string {
	return Translate(s.current, zh, en)
}

// Translate is the locale selection rule shared by Store.T and the template
// helpers.
func Translate(lang Locale, zh, en string) string {
	if lang == LangEn {
		return en
	}
	return zh
}
