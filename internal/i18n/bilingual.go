package i18n

import (
	"html/template"
	"strings"
)

// The bilingual render primitive: both locale variants are mounted in the
// markup at all times, each tagged with data-lang, and exactly one is visually
// active. The client toggles the "hidden" class without any network round trip,
// so switching language costs no refetch and no layout remount. The tradeoff
// (both locales always in the payload) is deliberate.

// LangClass returns the visibility class for one locale variant under the
// currently active locale.
func LangClass(active, variant Locale) string {
	if active == variant {
		return "lang-active"
	}
	return "lang-hidden"
}

// Span renders a bilingual pair as two tagged <span> elements with exactly one
// visible. Pair fallbacks apply, so a missing translation shows the
// placeholder rather than an empty node.
func Span(active Locale, p Pair) template.HTML {
	var b strings.Builder
	writeVariant(&b, "span", active, LangZh, p.In(LangZh))
	writeVariant(&b, "span", active, LangEn, p.In(LangEn))
	return template.HTML(b.String())
}

// Block is Span with div wrappers, for paragraph-level content.
func Block(active Locale, p Pair) template.HTML {
	var b strings.Builder
	writeVariant(&b, "div", active, LangZh, p.In(LangZh))
	writeVariant(&b, "div", active, LangEn, p.In(LangEn))
	return template.HTML(b.String())
}

// RawBlock renders trusted editor HTML (news article bodies) for both locales
// without escaping the content. Callers own the trust decision.
func RawBlock(active Locale, p Pair) template.HTML {
	var b strings.Builder
	for _, variant := range []Locale{LangZh, LangEn} {
		b.WriteString(`<div data-lang="`)
		b.WriteString(string(variant))
		b.WriteString(`" class="`)
		b.WriteString(LangClass(active, variant))
		b.WriteString(`">`)
		b.WriteString(p.In(variant))
		b.WriteString(`</div>`)
	}
	return template.HTML(b.String())
}

// List renders a bilingual string list as two tagged <ul> variants, exactly
// one visible. Blank entries are dropped; a locale whose list ends up empty
// renders the placeholder instead of an empty element, so both variants are
// always mounted.
func List(active Locale, zh, en []string) template.HTML {
	var b strings.Builder
	writeListVariant(&b, active, LangZh, zh)
	writeListVariant(&b, active, LangEn, en)
	return template.HTML(b.String())
}

// Paragraphs renders bilingual paragraph lists as two tagged <div> variants,
// one <p> per entry, with the same placeholder rule as List.
func Paragraphs(active Locale, zh, en []string) template.HTML {
	var b strings.Builder
	writeParagraphVariant(&b, active, LangZh, zh)
	writeParagraphVariant(&b, active, LangEn, en)
	return template.HTML(b.String())
}

func writeListVariant(b *strings.Builder, active, variant Locale, items []string) {
	kept := dropBlank(items)
	if len(kept) == 0 {
		writeVariant(b, "p", active, variant, Translate(variant, PlaceholderZh, PlaceholderEn))
		return
	}

	openVariant(b, "ul", active, variant)
	for _, item := range kept {
		b.WriteString("<li>")
		template.HTMLEscape(b, []byte(item))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
}

func writeParagraphVariant(b *strings.Builder, active, variant Locale, items []string) {
	kept := dropBlank(items)
	if len(kept) == 0 {
		writeVariant(b, "p", active, variant, Translate(variant, PlaceholderZh, PlaceholderEn))
		return
	}

	openVariant(b, "div", active, variant)
	for _, item := range kept {
		b.WriteString("<p>")
		template.HTMLEscape(b, []byte(item))
		b.WriteString("</p>")
	}
	b.WriteString("</div>")
}

func dropBlank(items []string) []string {
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			kept = append(kept, item)
		}
	}
	return kept
}

func openVariant(b *strings.Builder, tag string, active, variant Locale) {
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(` data-lang="`)
	b.WriteString(string(variant))
	b.WriteString(`" class="`)
	b.WriteString(LangClass(active, variant))
	b.WriteString(`">`)
}

func writeVariant(b *strings.Builder, tag string, active, variant Locale, text string) {
	b.WriteString("<")
	b.WriteString(tag)
	b.WriteString(` data-lang="`)
	b.WriteString(string(variant))
	b.WriteString(`" class="`)
	b.WriteString(LangClass(active, variant))
	b.WriteString(`">`)
	template.HTMLEscape(b, []byte(text))
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteString(">")
}
