package app

import (
	"errors"
	"html/template"
	"log"
	"time"

	"github.com/Karen2677/RisingHKT/internal/i18n"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cast"
)

// InitTemplates initializes the HTML templates with custom functions.
// The bilingual helpers render BOTH locale variants tagged with data-lang so
// the client can toggle language without a round trip.
func InitTemplates() (*template.Template, error) {
	t := template.New("").Funcs(templateFuncs())

	// 1. Load Layouts
	if _, err := t.ParseGlob("views/layouts/*.html"); err != nil {
		log.Println("Warning: Layouts error:", err)
	}

	// 2. Load Components
	if _, err := t.ParseGlob("views/components/*.html"); err != nil {
		log.Println("Warning: Components error:", err)
	}

	return t, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, errors.New("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, errors.New("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},

		// bilingual renders a zh/en string pair as tagged inline spans.
		"bilingual": func(active i18n.Locale, zh, en string) template.HTML {
			return i18n.Span(active, i18n.NewPair(zh, en))
		},
		// pairSpan / pairBlock render a resolved Pair from the data layer.
		"pairSpan": func(active i18n.Locale, p i18n.Pair) template.HTML {
			return i18n.Span(active, p)
		},
		"pairBlock": func(active i18n.Locale, p i18n.Pair) template.HTML {
			return i18n.Block(active, p)
		},
		// pairHTML renders trusted editor HTML (article bodies) unescaped.
		"pairHTML": func(active i18n.Locale, p i18n.Pair) template.HTML {
			return i18n.RawBlock(active, p)
		},
		// bilingualList / bilingualParas render list-valued bilingual fields
		// with both locale variants mounted.
		"bilingualList": func(active i18n.Locale, zh, en []string) template.HTML {
			return i18n.List(active, zh, en)
		},
		"bilingualParas": func(active i18n.Locale, zh, en []string) template.HTML {
			return i18n.Paragraphs(active, zh, en)
		},
		// tr picks one translation for attribute positions (alt, content).
		"tr": func(active i18n.Locale, zh, en string) string {
			return i18n.Translate(active, zh, en)
		},
		"pairIn": func(active i18n.Locale, p i18n.Pair) string {
			return p.InOrEmpty(active)
		},
		"langClass": func(active i18n.Locale, variant string) string {
			return i18n.LangClass(active, i18n.ParseLocale(variant))
		},

		"formatCount": func(val interface{}) string {
			return humanize.Comma(cast.ToInt64(val))
		},
		// bilingualDate renders a backend date with both localized formats
		// mounted, so the date restyles with the language toggle.
		"bilingualDate": func(active i18n.Locale, val string) template.HTML {
			if val == "" {
				return ""
			}
			zh, en := val, val
			if t, err := parseBackendDate(val); err == nil {
				zh = t.Format("2006年01月02日")
				en = t.Format("Jan 2, 2006")
			}
			return i18n.Span(active, i18n.NewPair(zh, en))
		},
		"truncate": func(length int, s string) string {
			runes := []rune(s)
			if len(runes) <= length {
				return s
			}
			return string(runes[:length]) + "..."
		},
		"substr": func(start, length int, s string) string {
			if start < 0 {
				start = 0
			}
			if start >= len(s) {
				return ""
			}
			end := start + length
			if end > len(s) {
				end = len(s)
			}
			return s[start:end]
		},
	}
}

// parseBackendDate accepts the formats PocketBase emits for date fields.
func parseBackendDate(val string) (time.Time, error) {
	for _, layout := range []string{
		"2006-01-02 15:04:05.000Z",
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, val); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format: " + val)
}
