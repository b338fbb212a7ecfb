package core

import "errors"

// ErrNotFound marks a single-entity lookup miss. It is a soft state distinct
// from a transport/query failure: pages render "not found" messaging for it,
// never the error banner.
var ErrNotFound = errors.New("record not found")

// ProductRepository reads the active, ordered product snapshot.
type ProductRepository interface {
	FindActive() ([]Product, error)
}

// CategoryRepository reads the active, ordered category snapshot.
type CategoryRepository interface {
	FindActive() ([]ProductCategory, error)
}

// AboutRepository reads the active, ordered about sections.
type AboutRepository interface {
	FindActive() ([]AboutSection, error)
}

// ContactRepository reads the active, ordered contact channels.
type ContactRepository interface {
	FindActive() ([]ContactInfo, error)
}

// MetaRepository reads SEO metadata.
type MetaRepository interface {
	FindActive() ([]MetaTag, error)
	// FindByPageKey returns ErrNotFound on a miss.
	FindByPageKey(pageKey string) (*MetaTag, error)
}

// NewsRepository reads articles and owns the only client-originated writes in
// the system: the advisory view/share counters.
type NewsRepository interface {
	FindActive() ([]NewsArticle, error)
	// FindBySlug returns ErrNotFound on a miss.
	FindBySlug(slug string) (*NewsArticle, error)
	// FindByID returns ErrNotFound on a miss. Used as the second phase of
	// slug resolution so old id-based links stay valid.
	FindByID(id string) (*NewsArticle, error)

	// Atomic, best-effort counter increments. Never authoritative client-side.
	IncrementViewCount(id string) error
	IncrementShareCount(id string) error
}

// EventLogRepository appends telemetry rows. Write-only from this layer.
type EventLogRepository interface {
	Insert(ev EventLog) error
}
