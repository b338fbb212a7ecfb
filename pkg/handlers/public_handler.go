package handlers

import (
	"github.com/pocketbase/pocketbase/core"
)

// Index renders the homepage: hero, featured products and a latest-news
// teaser.
// GET /
func (h *SiteHandler) Index(e *core.RequestEvent) error {
	data, loc, err := h.pageData(e, "home")
	if err != nil {
		return e.String(500, err.Error())
	}

	products := h.ProductStore.Get()
	news := h.NewsStore.Get()
	contacts := h.ContactStore.Get()

	// Homepage teasers: the first rows of the already-ordered snapshots.
	topProducts := products.Data
	if len(topProducts) > 3 {
		topProducts = topProducts[:3]
	}
	latestNews := news.Data
	if len(latestNews) > 3 {
		latestNews = latestNews[:3]
	}

	data["Products"] = topProducts
	data["LatestNews"] = latestNews
	data["Contacts"] = contacts.Data
	data["Error"] = products.Err

	h.Events.PageView("/", h.eventMeta(e, loc.Current()))

	return RenderPage(h.Templates, e, "layouts/base.html", "public/index.html", data)
}

// About renders the about sections. Sections keyed "why_choose_us" get the
// bulleted variant, everything else paragraphs.
// GET /about
func (h *SiteHandler) About(e *core.RequestEvent) error {
	data, loc, err := h.pageData(e, "about")
	if err != nil {
		return e.String(500, err.Error())
	}

	sections := h.SectionStore.Get()
	data["Sections"] = sections.Data
	data["Loading"] = sections.Loading
	data["Error"] = sections.Err

	h.Events.PageView("/about", h.eventMeta(e, loc.Current()))

	return RenderPage(h.Templates, e, "layouts/base.html", "public/about.html", data)
}

// Contact renders the contact channels with type-derived links.
// GET /contact
func (h *SiteHandler) Contact(e *core.RequestEvent) error {
	data, loc, err := h.pageData(e, "contact")
	if err != nil {
		return e.String(500, err.Error())
	}

	contacts := h.ContactStore.Get()
	data["Contacts"] = contacts.Data
	data["Loading"] = contacts.Loading
	data["Error"] = contacts.Err

	h.Events.PageView("/contact", h.eventMeta(e, loc.Current()))

	return RenderPage(h.Templates, e, "layouts/base.html", "public/contact.html", data)
}
