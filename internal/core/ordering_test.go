package core

import (
	"reflect"
	"testing"
)

func TestSortProducts(t *testing.T) {
	items := []Product{
		{ID: "c", DisplayOrder: 3},
		{ID: "a", DisplayOrder: 1},
		{ID: "b", DisplayOrder: 2},
	}
	SortProducts(items)

	got := []string{items[0].ID, items[1].ID, items[2].ID}
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestSortProductsStable(t *testing.T) {
	items := []Product{
		{ID: "first", DisplayOrder: 1},
		{ID: "second", DisplayOrder: 1},
	}
	SortProducts(items)
	if items[0].ID != "first" {
		t.Errorf("equal keys reordered: %v", items)
	}
}

func TestSortArticlesNewestFirst(t *testing.T) {
	items := []NewsArticle{
		{ID: "old", PublishDate: "2025-01-10"},
		{ID: "new", PublishDate: "2026-03-02"},
		{ID: "mid", PublishDate: "2025-11-30"},
	}
	SortArticles(items)

	got := []string{items[0].ID, items[1].ID, items[2].ID}
	want := []string{"new", "mid", "old"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestFilterProductsByCategory(t *testing.T) {
	items := []Product{
		{ID: "p1", CategoryID: "cat1"},
		{ID: "p2", CategoryID: "cat2"},
		{ID: "p3", CategoryID: ""},
	}

	t.Run("empty selects all", func(t *testing.T) {
		got := FilterProductsByCategory(items, "")
		if len(got) != 3 {
			t.Errorf("len = %d, want 3", len(got))
		}
	})

	t.Run("matching category", func(t *testing.T) {
		got := FilterProductsByCategory(items, "cat1")
		if len(got) != 1 || got[0].ID != "p1" {
			t.Errorf("got %v", got)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		got := FilterProductsByCategory(items, "nope")
		if len(got) != 0 {
			t.Errorf("got %v, want empty", got)
		}
	})
}

func TestFilterArticlesByCategory(t *testing.T) {
	items := []NewsArticle{
		{ID: "a", Category: "industry"},
		{ID: "b", Category: "company"},
	}
	got := FilterArticlesByCategory(items, "industry")
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("got %v", got)
	}
	if got := FilterArticlesByCategory(items, ""); len(got) != 2 {
		t.Errorf("empty category should pass everything, got %d", len(got))
	}
}

func TestArticleCategories(t *testing.T) {
	items := []NewsArticle{
		{Category: "industry"},
		{Category: ""},
		{Category: "company"},
		{Category: "industry"},
	}
	got := ArticleCategories(items)
	want := []string{"industry", "company"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("categories = %v, want %v", got, want)
	}
}

func TestPartitionFeatured(t *testing.T) {
	items := []NewsArticle{
		{ID: "a", IsFeatured: true},
		{ID: "b"},
		{ID: "c", IsFeatured: true},
		{ID: "d"},
	}
	featured, rest := PartitionFeatured(items)

	if len(featured) != 2 || featured[0].ID != "a" || featured[1].ID != "c" {
		t.Errorf("featured = %v", featured)
	}
	if len(rest) != 2 || rest[0].ID != "b" || rest[1].ID != "d" {
		t.Errorf("rest = %v", rest)
	}
}

func TestProductFeatureLists(t *testing.T) {
	p := Product{
		FeaturesZh:     []string{"特点一", "", "特点二"},
		FeaturesEn:     nil,
		ApplicationsEn: []string{"clinics"},
	}

	zh := p.Features("zh")
	if len(zh) != 2 {
		t.Errorf("blank entries should be dropped, got %v", zh)
	}
	if got := p.Features("en"); len(got) != 0 {
		t.Errorf("missing en features should be empty, got %v", got)
	}
	if got := p.Applications("en"); len(got) != 1 || got[0] != "clinics" {
		t.Errorf("applications en = %v", got)
	}
}

func TestAboutSectionContent(t *testing.T) {
	s := AboutSection{
		ContentZh: []string{"第一段"},
		ContentEn: []string{"First paragraph"},
	}
	if got := s.Content("zh"); len(got) != 1 || got[0] != "第一段" {
		t.Errorf("zh content = %v", got)
	}
	if got := s.Content("en"); len(got) != 1 || got[0] != "First paragraph" {
		t.Errorf("en content = %v", got)
	}
}

func TestContactLink(t *testing.T) {
	tests := []struct {
		typ, value, want string
	}{
		{ContactEmail, "info@example.com", "mailto:info@example.com"},
		{ContactPhone, "+86-10-1234567", "tel:+86-10-1234567"},
		{ContactWebsite, "example.com", "https://example.com"},
		{"fax", "123", ""},
	}
	for _, tt := range tests {
		c := ContactInfo{Type: tt.typ, Value: tt.value}
		if got := c.Link(); got != tt.want {
			t.Errorf("Link(%s) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestArticleNavigation(t *testing.T) {
	withSlug := NewsArticle{ID: "rec1", Slug: "intro-to-tms"}
	if got := withSlug.Permalink(); got != "/news/intro-to-tms" {
		t.Errorf("permalink = %q", got)
	}

	noSlug := NewsArticle{ID: "rec2"}
	if got := noSlug.Permalink(); got != "/news/rec2" {
		t.Errorf("id fallback permalink = %q", got)
	}

	external := NewsArticle{ID: "rec3", Slug: "s", ExternalLink: "https://elsewhere.example/post"}
	if got := external.ReadMoreTarget(); got != "https://elsewhere.example/post" {
		t.Errorf("external target = %q", got)
	}
	if got := withSlug.ReadMoreTarget(); got != "/news/intro-to-tms" {
		t.Errorf("internal target = %q", got)
	}
}
