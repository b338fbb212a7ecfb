package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/Karen2677/RisingHKT/internal/core"
	"github.com/Karen2677/RisingHKT/internal/i18n"
	"github.com/Karen2677/RisingHKT/internal/service/eventlog"
	"github.com/Karen2677/RisingHKT/pkg/middleware"

	pbCore "github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

type captureEventRepo struct {
	mu     sync.Mutex
	events []core.EventLog
}

func (r *captureEventRepo) Insert(ev core.EventLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *captureEventRepo) keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.EventKey)
	}
	return out
}

// newBeaconEvent builds a request event the way the router delivers it: form
// body, lang cookie, locale middleware already run.
func newBeaconEvent(t *testing.T, target string, form url.Values, langCookie string) (*pbCore.RequestEvent, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if langCookie != "" {
		req.AddCookie(&http.Cookie{Name: middleware.LangCookie, Value: langCookie})
	}

	rec := httptest.NewRecorder()
	e := &pbCore.RequestEvent{}
	e.Request = req
	e.Response = rec

	if err := middleware.Locale(i18n.DefaultLocale)(e); err != nil {
		t.Fatalf("locale middleware: %v", err)
	}
	return e, rec
}

func newEventHandler(repo *captureEventRepo) *SiteHandler {
	return &SiteHandler{
		Events: eventlog.New(repo, nil, zap.NewNop()),
		Log:    zap.NewNop(),
	}
}

// The client flips the lang cookie before firing the beacon, so the cookie
// already carries the new locale when the switch request arrives. The posted
// form values must decide the event key.
func TestSwitchLangLogsToggle(t *testing.T) {
	repo := &captureEventRepo{}
	h := newEventHandler(repo)

	e, rec := newBeaconEvent(t, "/api/lang", url.Values{"from": {"zh"}, "to": {"en"}}, "en")

	if err := h.SwitchLang(e); err != nil {
		t.Fatalf("SwitchLang: %v", err)
	}
	h.Events.Flush()

	if rec.Code != 204 {
		t.Errorf("status = %d", rec.Code)
	}

	keys := repo.keys()
	if len(keys) != 1 || keys[0] != "language_switch_zh_to_en" {
		t.Errorf("events = %v, want [language_switch_zh_to_en]", keys)
	}

	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, middleware.LangCookie+"=en") {
		t.Errorf("lang cookie not persisted: %q", cookie)
	}
}

func TestSwitchLangSameLocaleNoEvent(t *testing.T) {
	repo := &captureEventRepo{}
	h := newEventHandler(repo)

	e, rec := newBeaconEvent(t, "/api/lang", url.Values{"from": {"en"}, "to": {"en"}}, "en")

	if err := h.SwitchLang(e); err != nil {
		t.Fatalf("SwitchLang: %v", err)
	}
	h.Events.Flush()

	if rec.Code != 204 {
		t.Errorf("status = %d", rec.Code)
	}
	if keys := repo.keys(); len(keys) != 0 {
		t.Errorf("no-op toggle logged %v", keys)
	}
}

func TestSwitchLangWithoutPostedFrom(t *testing.T) {
	repo := &captureEventRepo{}
	h := newEventHandler(repo)

	// Old client without the from field; the cookie still holds the previous
	// locale, so the cookie-derived fallback applies.
	e, _ := newBeaconEvent(t, "/api/lang", url.Values{"to": {"en"}}, "zh")

	if err := h.SwitchLang(e); err != nil {
		t.Fatalf("SwitchLang: %v", err)
	}
	h.Events.Flush()

	keys := repo.keys()
	if len(keys) != 1 || keys[0] != "language_switch_zh_to_en" {
		t.Errorf("events = %v, want [language_switch_zh_to_en]", keys)
	}
}

func TestLogProductView(t *testing.T) {
	repo := &captureEventRepo{}
	h := newEventHandler(repo)

	e, rec := newBeaconEvent(t, "/api/products/prod1/view", nil, "zh")
	e.Request.SetPathValue("id", "prod1")

	if err := h.LogProductView(e); err != nil {
		t.Fatalf("LogProductView: %v", err)
	}
	h.Events.Flush()

	if rec.Code != 204 {
		t.Errorf("status = %d", rec.Code)
	}
	keys := repo.keys()
	if len(keys) != 1 || keys[0] != "product_view_prod1" {
		t.Errorf("events = %v, want [product_view_prod1]", keys)
	}
}

func TestLogEventRequiresKey(t *testing.T) {
	repo := &captureEventRepo{}
	h := newEventHandler(repo)

	e, rec := newBeaconEvent(t, "/api/events", url.Values{}, "zh")

	if err := h.LogEvent(e); err != nil {
		t.Fatalf("LogEvent: %v", err)
	}
	if rec.Code != 400 {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
