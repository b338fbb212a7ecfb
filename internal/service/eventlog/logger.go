// Package eventlog is the best-effort telemetry writer. Every call is
// fire-and-forget: a logging failure is warned about locally and swallowed,
// and can never interrupt the user action that triggered it. No retry, no
// batching, no ordering between concurrently fired events.
package eventlog

import (
	"sync"

	"github.com/Karen2677/RisingHKT/internal/core"
	"github.com/Karen2677/RisingHKT/internal/i18n"

	"go.uber.org/zap"
)

// Enricher resolves the optional IP/country metadata attached to events.
// Implementations must be best-effort and return "" on failure.
type Enricher interface {
	PublicIP() string
	Country(ip, lang string) string
}

// NopEnricher logs events without IP/country enrichment. It is the default
// when no lookup endpoints are reachable or configured.
type NopEnricher struct{}

func (NopEnricher) PublicIP() string               { return "" }
func (NopEnricher) Country(ip, lang string) string { return "" }

// Meta carries per-event request context supplied by the caller.
type Meta struct {
	IP        string
	Referer   string
	UserAgent string
	Lang      i18n.Locale
}

// Logger writes structured events into site_event_logs.
type Logger struct {
	repo core.EventLogRepository
	geo  Enricher
	log  *zap.Logger

	wg sync.WaitGroup
}

// New creates a logger. A nil enricher disables enrichment.
func New(repo core.EventLogRepository, geo Enricher, log *zap.Logger) *Logger {
	if geo == nil {
		geo = NopEnricher{}
	}
	return &Logger{repo: repo, geo: geo, log: log}
}

// Log records one event asynchronously and returns immediately.
func (l *Logger) Log(eventKey string, meta Meta) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		l.logNow(eventKey, meta)
	}()
}

// logNow performs the enrichment and insert synchronously. All failure paths
// end here.
func (l *Logger) logNow(eventKey string, meta Meta) {
	ip := meta.IP
	if ip == "" {
		// Behind a local proxy the request address is useless; fall back to
		// the public IP endpoint (cached for the session).
		ip = l.geo.PublicIP()
	}
	country := l.geo.Country(ip, string(meta.Lang))

	err := l.repo.Insert(core.EventLog{
		EventKey:  eventKey,
		IPAddress: ip,
		Country:   country,
		Referer:   meta.Referer,
		UserAgent: meta.UserAgent,
		Lang:      string(meta.Lang),
	})
	if err != nil {
		l.log.Warn("failed to log event",
			zap.String("event_key", eventKey),
			zap.Error(err),
		)
	}
}

// Flush waits for in-flight events, for graceful shutdown and tests.
func (l *Logger) Flush() {
	l.wg.Wait()
}

// PageView records a page visit, e.g. page_view_/news.
func (l *Logger) PageView(pagePath string, meta Meta) {
	l.Log("page_view_"+pagePath, meta)
}

// ProductView records a product detail view.
func (l *Logger) ProductView(productID string, meta Meta) {
	l.Log("product_view_"+productID, meta)
}

// NewsView records an article read.
func (l *Logger) NewsView(articleID string, meta Meta) {
	l.Log("news_view_"+articleID, meta)
}

// ShareNews records an article share.
func (l *Logger) ShareNews(articleID string, meta Meta) {
	l.Log("share_news_"+articleID, meta)
}

// LanguageSwitch records a locale toggle, e.g. language_switch_zh_to_en.
func (l *Logger) LanguageSwitch(from, to i18n.Locale, meta Meta) {
	l.Log("language_switch_"+string(from)+"_to_"+string(to), meta)
}
