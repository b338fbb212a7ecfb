package core

import "sort"

// Ordering is a data-access contract, not a UI concern: every list handed to
// the page assemblers is already filtered to is_active and sorted. The
// repositories ask the backend for sorted rows and then re-sort here, so the
// contract holds even if a row slips through with an edited sort key.

// SortProducts orders by display_order ascending.
func SortProducts(items []Product) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DisplayOrder < items[j].DisplayOrder
	})
}

// SortCategories orders by display_order ascending.
func SortCategories(items []ProductCategory) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DisplayOrder < items[j].DisplayOrder
	})
}

// SortSections orders by display_order ascending.
func SortSections(items []AboutSection) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DisplayOrder < items[j].DisplayOrder
	})
}

// SortContacts orders by display_order ascending.
func SortContacts(items []ContactInfo) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DisplayOrder < items[j].DisplayOrder
	})
}

// SortArticles orders by publish_date descending (newest first). Dates are
// ISO-8601 strings, so lexicographic comparison matches chronological order.
func SortArticles(items []NewsArticle) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishDate > items[j].PublishDate
	})
}

// FilterProductsByCategory applies the client-side category predicate over the
// already-fetched snapshot. An empty categoryID is the "all" sentinel and
// returns the full snapshot, including products with no category.
func FilterProductsByCategory(items []Product, categoryID string) []Product {
	if categoryID == "" {
		return items
	}
	out := make([]Product, 0, len(items))
	for _, p := range items {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// FilterArticlesByCategory filters articles by category name; empty is "all".
func FilterArticlesByCategory(items []NewsArticle, category string) []NewsArticle {
	if category == "" {
		return items
	}
	out := make([]NewsArticle, 0, len(items))
	for _, a := range items {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// ArticleCategories returns the distinct non-empty categories in snapshot
// order, for the filter bar.
func ArticleCategories(items []NewsArticle) []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range items {
		if a.Category == "" || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		out = append(out, a.Category)
	}
	return out
}

// PartitionFeatured splits articles into the featured section and the rest,
// both keeping the base snapshot order.
func PartitionFeatured(items []NewsArticle) (featured, rest []NewsArticle) {
	for _, a := range items {
		if a.IsFeatured {
			featured = append(featured, a)
		} else {
			rest = append(rest, a)
		}
	}
	return featured, rest
}
