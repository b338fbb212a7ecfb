package handlers

import (
	"errors"

	"github.com/Karen2677/RisingHKT/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

// News renders the article listing: featured articles partitioned into their
// own higher-weight section, the rest below, both in snapshot order.
// GET /news
func (h *SiteHandler) News(e *pbCore.RequestEvent) error {
	data, loc, err := h.pageData(e, "news")
	if err != nil {
		return e.String(500, err.Error())
	}

	news := h.NewsStore.Get()

	selected := e.Request.URL.Query().Get("category")
	filtered := core.FilterArticlesByCategory(news.Data, selected)
	featured, rest := core.PartitionFeatured(filtered)

	data["Featured"] = featured
	data["Articles"] = rest
	data["Categories"] = core.ArticleCategories(news.Data)
	data["Selected"] = selected
	data["Loading"] = news.Loading
	data["Error"] = news.Err

	h.Events.PageView("/news", h.eventMeta(e, loc.Current()))

	return RenderPage(h.Templates, e, "layouts/base.html", "public/news.html", data)
}

// NewsDetail renders one article, resolving the path segment first as a slug
// and then as a raw id so old id-based links keep working. A miss on both
// renders the not-found state and issues no view-count increment.
// GET /news/{slug}
func (h *SiteHandler) NewsDetail(e *pbCore.RequestEvent) error {
	slugOrID := e.Request.PathValue("slug")

	data, loc, err := h.pageData(e, "news")
	if err != nil {
		return e.String(500, err.Error())
	}

	article, err := core.ResolveArticle(h.NewsRepo, slugOrID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			data["NotFound"] = true
			e.Response.WriteHeader(404)
			return RenderPage(h.Templates, e, "layouts/base.html", "public/news_detail.html", data)
		}
		data["Error"] = err.Error()
		return RenderPage(h.Templates, e, "layouts/base.html", "public/news_detail.html", data)
	}

	// Advisory counter: failure is logged and swallowed, never blocks the view.
	if err := h.NewsRepo.IncrementViewCount(article.ID); err != nil {
		h.Log.Warn("view count increment failed", zap.String("article_id", article.ID), zap.Error(err))
	}
	h.Events.NewsView(article.ID, h.eventMeta(e, loc.Current()))

	data["Article"] = article
	return RenderPage(h.Templates, e, "layouts/base.html", "public/news_detail.html", data)
}
