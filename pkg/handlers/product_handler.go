package handlers

import (
	"github.com/Karen2677/RisingHKT/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

// Products renders the product listing with the category filter bar. The
// filter is a client-side predicate over the already-fetched snapshot; an
// absent ?category= is the "all" sentinel and shows everything, including
// products without a category.
// GET /products
func (h *SiteHandler) Products(e *pbCore.RequestEvent) error {
	data, loc, err := h.pageData(e, "products")
	if err != nil {
		return e.String(500, err.Error())
	}

	products := h.ProductStore.Get()
	categories := h.CategoryStore.Get()

	selected := e.Request.URL.Query().Get("category")
	filtered := core.FilterProductsByCategory(products.Data, selected)

	data["Products"] = filtered
	data["Categories"] = categories.Data
	data["Selected"] = selected
	data["Loading"] = products.Loading
	data["Error"] = products.Err

	h.Events.PageView("/products", h.eventMeta(e, loc.Current()))

	return RenderPage(h.Templates, e, "layouts/base.html", "public/products.html", data)
}
