package i18n

// Placeholder pair rendered when a translation is missing from the backend.
// The store is edited by non-technical staff, so a hole in either language
// must degrade to this instead of breaking the page.
const (
	PlaceholderZh = "内容暂缺"
	PlaceholderEn = "Content unavailable"
)

// Pair is a bilingual field: two independent optional strings describing the
// same logical content. Missing translations are resolved once, at the
// data-access boundary, via NewPair — render sites never see raw holes.
type Pair struct {
	Zh string `json:"zh"`
	En string `json:"en"`
}

// NewPair builds a pair from raw backend values without any fallback applied.
func NewPair(zh, en string) Pair {
	return Pair{Zh: zh, En: en}
}

// In selects the text for a locale, falling back to the placeholder when the
// selected side is absent.
func (p Pair) In(lang Locale) string {
	v := Translate(lang, p.Zh, p.En)
	if v != "" {
		return v
	}
	return Translate(lang, PlaceholderZh, PlaceholderEn)
}

// InOrEmpty selects the text for a locale with an empty-string fallback, for
// attribute positions (alt, content=) where a visible placeholder is wrong.
func (p Pair) InOrEmpty(lang Locale) string {
	return Translate(lang, p.Zh, p.En)
}

// IsEmpty reports whether neither side has content.
func (p Pair) IsEmpty() bool {
	return p.Zh == "" && p.En == ""
}
