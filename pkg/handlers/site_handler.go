package handlers

import (
	"html/template"
	"net"
	"net/http"
	"strings"

	"github.com/Karen2677/RisingHKT/internal/core"
	"github.com/Karen2677/RisingHKT/internal/i18n"
	"github.com/Karen2677/RisingHKT/internal/service/eventlog"
	"github.com/Karen2677/RisingHKT/internal/store"
	"github.com/Karen2677/RisingHKT/pkg/broker"
	"github.com/Karen2677/RisingHKT/pkg/middleware"

	pbCore "github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

// SiteHandler assembles the public pages: it merges the per-request locale
// store with the table snapshots and hands the finished view-model to the
// templates. Errors from the data layer stop here — pages render a localized
// inline message, never a raw backend error.
type SiteHandler struct {
	Templates *template.Template
	Broker    *broker.TableBroker

	ProductStore  *store.ListStore[core.Product]
	CategoryStore *store.ListStore[core.ProductCategory]
	SectionStore  *store.ListStore[core.AboutSection]
	ContactStore  *store.ListStore[core.ContactInfo]
	MetaStore     *store.ListStore[core.MetaTag]
	NewsStore     *store.ListStore[core.NewsArticle]

	NewsRepo core.NewsRepository
	Events   *eventlog.Logger
	Log      *zap.Logger
}

// pageData builds the fields every page shares: locale, document lang and the
// page's SEO record (nil on a lookup miss — templates fall back to defaults).
func (h *SiteHandler) pageData(e *pbCore.RequestEvent, pageKey string) (map[string]interface{}, *i18n.Store, error) {
	loc, err := middleware.LocaleStore(e)
	if err != nil {
		return nil, nil, err
	}

	metaSnap := h.MetaStore.Get()
	meta, _ := core.MetaByPageKey(metaSnap.Data, pageKey)

	data := map[string]interface{}{
		"Lang":    loc.Current(),
		"DocLang": loc.DocumentLang(),
		"PageKey": pageKey,
		"Meta":    meta,
	}
	return data, loc, nil
}

// eventMeta captures the request context attached to telemetry events.
func (h *SiteHandler) eventMeta(e *pbCore.RequestEvent, lang i18n.Locale) eventlog.Meta {
	return eventlog.Meta{
		IP:        clientIP(e.Request),
		Referer:   e.Request.Referer(),
		UserAgent: e.Request.UserAgent(),
		Lang:      lang,
	}
}

// clientIP extracts a routable client address from the request. Loopback and
// private addresses come back empty so the event logger falls through to the
// public IP lookup.
func clientIP(r *http.Request) string {
	addr := r.Header.Get("X-Forwarded-For")
	if addr != "" {
		// First hop is the client.
		addr = strings.TrimSpace(strings.Split(addr, ",")[0])
	} else {
		addr = r.RemoteAddr
		if host, _, err := net.SplitHostPort(addr); err == nil {
			addr = host
		}
	}

	ip := net.ParseIP(addr)
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() {
		return ""
	}
	return ip.String()
}
