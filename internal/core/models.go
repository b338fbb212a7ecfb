package core

import "github.com/Karen2677/RisingHKT/internal/i18n"

// Product represents a distributed medical device shown on the Products page.
type Product struct {
	ID          string `json:"id"`
	Title       i18n.Pair
	Description i18n.Pair
	Details     i18n.Pair
	Disclaimer  i18n.Pair
	ImageURL    string `json:"image_url"`

	// List-valued bilingual fields. The backend is editable by non-technical
	// staff, so each list may arrive empty or malformed; repositories must
	// coerce them to plain string slices and never fail the row.
	FeaturesZh     []string `json:"features_zh"`
	FeaturesEn     []string `json:"features_en"`
	ApplicationsZh []string `json:"applications_zh"`
	ApplicationsEn []string `json:"applications_en"`

	DisplayOrder int    `json:"display_order"`
	CategoryID   string `json:"category_id"`
	IsActive     bool   `json:"is_active"`
	Created      string `json:"created"`
	Updated      string `json:"updated"`
}

// Features returns the feature list for the given locale.
func (p Product) Features(lang i18n.Locale) []string {
	if lang == i18n.LangEn {
		return cleanList(p.FeaturesEn)
	}
	return cleanList(p.FeaturesZh)
}

// Applications returns the application list for the given locale.
func (p Product) Applications(lang i18n.Locale) []string {
	if lang == i18n.LangEn {
		return cleanList(p.ApplicationsEn)
	}
	return cleanList(p.ApplicationsZh)
}

// cleanList drops blank entries so a malformed list renders the
// "content unavailable" placeholder instead of empty bullets.
func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it != "" {
			out = append(out, it)
		}
	}
	return out
}

// ProductCategory groups products for the category filter bar.
type ProductCategory struct {
	ID           string `json:"id"`
	Name         i18n.Pair
	DisplayOrder int  `json:"display_order"`
	IsActive     bool `json:"is_active"`
}

// AboutSection is one block on the About page. SectionKey discriminates the
// rendering variant ("why_choose_us" renders bullets, everything else
// paragraphs).
type AboutSection struct {
	ID         string `json:"id"`
	SectionKey string `json:"section_key"`
	Title      i18n.Pair
	ContentZh  []string `json:"content_zh"`
	ContentEn  []string `json:"content_en"`

	DisplayOrder int  `json:"display_order"`
	IsActive     bool `json:"is_active"`
}

// Content returns the ordered paragraph/bullet list for the given locale.
func (s AboutSection) Content(lang i18n.Locale) []string {
	if lang == i18n.LangEn {
		return s.ContentEn
	}
	return s.ContentZh
}

// Contact info types. Type drives both the icon and the constructed link.
const (
	ContactEmail   = "email"
	ContactPhone   = "phone"
	ContactWebsite = "website"
)

// ContactInfo is a single reachable channel on the Contact page.
type ContactInfo struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Value string `json:"value"`
	Label i18n.Pair

	DisplayOrder int  `json:"display_order"`
	IsActive     bool `json:"is_active"`
}

// Link builds the anchor href from the contact type.
// Value receiver so templates can call it on ranged elements.
func (c ContactInfo) Link() string {
	switch c.Type {
	case ContactEmail:
		return "mailto:" + c.Value
	case ContactPhone:
		return "tel:" + c.Value
	case ContactWebsite:
		return "https://" + c.Value
	}
	return ""
}

// MetaTag is per-page SEO metadata keyed by page_key.
type MetaTag struct {
	ID            string `json:"id"`
	PageKey       string `json:"page_key"`
	Title         i18n.Pair
	Description   i18n.Pair
	KeywordsZh    []string `json:"keywords_zh"`
	KeywordsEn    []string `json:"keywords_en"`
	OgTitle       i18n.Pair
	OgDescription i18n.Pair
	OgImage       string `json:"og_image"`
	CanonicalURL  string `json:"canonical_url"`
	IsActive      bool   `json:"is_active"`
}

// Keywords returns the keyword list for the given locale.
func (m MetaTag) Keywords(lang i18n.Locale) []string {
	if lang == i18n.LangEn {
		return m.KeywordsEn
	}
	return m.KeywordsZh
}

// NewsArticle is an industry news item. Content is editor-supplied HTML and is
// rendered unescaped. Articles with an ExternalLink navigate off-site instead
// of to the in-app detail page.
type NewsArticle struct {
	ID           string `json:"id"`
	Slug         string `json:"slug"`
	Title        i18n.Pair
	Content      i18n.Pair
	ExternalLink string   `json:"external_link"`
	Category     string   `json:"category"`
	Tags         []string `json:"tags"`
	CoverImage   string   `json:"cover_image"`
	IsActive     bool     `json:"is_active"`
	IsFeatured   bool     `json:"is_featured"`
	PublishDate  string   `json:"publish_date"`
	ViewCount    int      `json:"view_count"`
	ShareCount   int      `json:"share_count"`
}

// Permalink is the in-app detail path, preferring the slug and falling back to
// the raw id so old links stay valid.
func (a NewsArticle) Permalink() string {
	if a.Slug != "" {
		return "/news/" + a.Slug
	}
	return "/news/" + a.ID
}

// ReadMoreTarget resolves where "read more" should navigate.
func (a NewsArticle) ReadMoreTarget() string {
	if a.ExternalLink != "" {
		return a.ExternalLink
	}
	return a.Permalink()
}

// EventLog is one best-effort telemetry row in site_event_logs.
type EventLog struct {
	EventKey  string `json:"event_key"`
	IPAddress string `json:"ip_address"`
	Country   string `json:"country"`
	Referer   string `json:"referer"`
	UserAgent string `json:"user_agent"`
	Lang      string `json:"lang"`
}
