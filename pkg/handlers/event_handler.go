package handlers

import (
	"net/http"

	"github.com/Karen2677/RisingHKT/internal/i18n"
	"github.com/Karen2677/RisingHKT/pkg/middleware"

	pbCore "github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

// The /api endpoints below back the client-side beacons. They are all
// best-effort: the browser fires and forgets, and a failure on this side is
// logged locally, never surfaced to the visitor.

// LogEvent records an arbitrary interaction event key.
// POST /api/events
func (h *SiteHandler) LogEvent(e *pbCore.RequestEvent) error {
	eventKey := e.Request.FormValue("event_key")
	if eventKey == "" {
		return e.JSON(400, map[string]string{"error": "event_key required"})
	}

	loc, err := middleware.LocaleStore(e)
	if err != nil {
		return e.String(500, err.Error())
	}

	h.Events.Log(eventKey, h.eventMeta(e, loc.Current()))
	return e.NoContent(204)
}

// LogProductView records a product card interaction. The event key is
// assembled here so its format lives next to the other helpers.
// POST /api/products/{id}/view
func (h *SiteHandler) LogProductView(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")

	loc, err := middleware.LocaleStore(e)
	if err != nil {
		return e.String(500, err.Error())
	}

	h.Events.ProductView(id, h.eventMeta(e, loc.Current()))
	return e.NoContent(204)
}

// LogNewsView increments the view counter for articles that open off-site
// (external_link), where no detail page render happens.
// POST /api/news/{id}/view
func (h *SiteHandler) LogNewsView(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")

	loc, err := middleware.LocaleStore(e)
	if err != nil {
		return e.String(500, err.Error())
	}

	// The log call and the increment race freely; neither failing may stop
	// the other from being attempted.
	h.Events.NewsView(id, h.eventMeta(e, loc.Current()))
	if err := h.NewsRepo.IncrementViewCount(id); err != nil {
		h.Log.Warn("view count increment failed", zap.String("article_id", id), zap.Error(err))
	}
	return e.NoContent(204)
}

// LogNewsShare increments the share counter and logs the share event.
// POST /api/news/{id}/share
func (h *SiteHandler) LogNewsShare(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")

	loc, err := middleware.LocaleStore(e)
	if err != nil {
		return e.String(500, err.Error())
	}

	h.Events.ShareNews(id, h.eventMeta(e, loc.Current()))
	if err := h.NewsRepo.IncrementShareCount(id); err != nil {
		h.Log.Warn("share count increment failed", zap.String("article_id", id), zap.Error(err))
	}
	return e.NoContent(204)
}

// SwitchLang persists the visitor's locale choice and logs the toggle. The
// visible switch already happened client-side (both locales are mounted); the
// cookie only makes the next server render start in the right language.
// POST /api/lang
func (h *SiteHandler) SwitchLang(e *pbCore.RequestEvent) error {
	loc, err := middleware.LocaleStore(e)
	if err != nil {
		return e.String(500, err.Error())
	}

	// The client updates the lang cookie before firing this beacon, so the
	// middleware-derived locale may already be the new one. The old locale
	// comes from the posted form value.
	from := loc.Current()
	if v := e.Request.FormValue("from"); v != "" {
		from = i18n.ParseLocale(v)
	}
	to := i18n.ParseLocale(e.Request.FormValue("to"))
	loc.Set(to)

	http.SetCookie(e.Response, &http.Cookie{
		Name:     middleware.LangCookie,
		Value:    string(to),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	})

	if from != to {
		h.Events.LanguageSwitch(from, to, h.eventMeta(e, to))
	}
	return e.NoContent(204)
}
