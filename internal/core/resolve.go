package core

import "errors"

// ResolveArticle looks an article up by slug and, on a miss, retries the same
// value as a raw record id. Both phases must stay: old links were id-based,
// new links are slug-based, and both remain valid. A transport failure aborts
// the fallback; only a clean miss falls through.
func ResolveArticle(repo NewsRepository, slugOrID string) (*NewsArticle, error) {
	article, err := repo.FindBySlug(slugOrID)
	if err == nil {
		return article, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return repo.FindByID(slugOrID)
}

// MetaByPageKey finds the SEO record for a page within the meta snapshot. The
// boolean distinguishes a lookup miss (render defaults) from data being
// present.
func MetaByPageKey(items []MetaTag, pageKey string) (*MetaTag, bool) {
	for i := range items {
		if items[i].PageKey == pageKey {
			return &items[i], true
		}
	}
	return nil, false
}
