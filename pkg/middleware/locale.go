package middleware

import (
	"github.com/Karen2677/RisingHKT/internal/i18n"

	"github.com/pocketbase/pocketbase/core"
)

// localeContextKey is where the per-request locale store lives.
const localeContextKey = "i18nStore"

// LangCookie is the client-persisted locale choice. The document-level lang
// attribute mirrors it; nothing else is persisted client-side.
const LangCookie = "lang"

// Locale installs a locale store into every request, derived from the lang
// cookie with the configured default for first-time visitors.
func Locale(defaultLang i18n.Locale) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		lang := defaultLang
		if cookie, err := e.Request.Cookie(LangCookie); err == nil && cookie.Value != "" {
			lang = i18n.ParseLocale(cookie.Value)
		}
		e.Set(localeContextKey, i18n.NewStore(lang))
		return e.Next()
	}
}

// LocaleStore retrieves the request's locale store. Consumers running outside
// the middleware's scope get ErrNotInitialized — a configuration error that
// must fail fast rather than silently default.
func LocaleStore(e *core.RequestEvent) (*i18n.Store, error) {
	store, ok := e.Get(localeContextKey).(*i18n.Store)
	if !ok || store == nil {
		return nil, i18n.ErrNotInitialized
	}
	return store, nil
}
