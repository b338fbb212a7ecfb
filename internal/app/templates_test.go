package app

import (
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/Karen2677/RisingHKT/internal/core"
	"github.com/Karen2677/RisingHKT/internal/i18n"
)

// loadViews builds the template set the way the container does, rooted at the
// repository's views directory.
func loadViews(t *testing.T) *template.Template {
	t.Helper()

	tmpl := template.New("").Funcs(templateFuncs())
	for _, glob := range []string{"../../views/layouts/*.html", "../../views/components/*.html"} {
		if _, err := tmpl.ParseGlob(glob); err != nil {
			t.Fatalf("parse %s: %v", glob, err)
		}
	}
	return tmpl
}

// renderPage mirrors handlers.RenderPage: clone the shared set, parse one page
// file and execute its content block.
func renderPage(t *testing.T, page string, data map[string]interface{}) string {
	t.Helper()

	tmpl, err := loadViews(t).Clone()
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	if _, err := tmpl.ParseFiles("../../views/pages/public/" + page); err != nil {
		t.Fatalf("parse page %s: %v", page, err)
	}

	var buf strings.Builder
	if err := tmpl.ExecuteTemplate(&buf, "content", data); err != nil {
		t.Fatalf("render %s: %v", page, err)
	}
	return buf.String()
}

func sampleProduct() core.Product {
	return core.Product{
		ID:             "prod1",
		Title:          i18n.NewPair("经颅磁刺激仪", "Transcranial Magnetic Stimulator"),
		Description:    i18n.NewPair("无创磁刺激设备", "A non-invasive stimulation device"),
		Details:        i18n.NewPair("详细参数文本", "Detail text"),
		FeaturesZh:     []string{"无创治疗"},
		FeaturesEn:     []string{"Biocompatible"},
		ApplicationsZh: []string{"神经康复"},
		ApplicationsEn: []string{"Rehabilitation"},
	}
}

func sampleArticle() core.NewsArticle {
	return core.NewsArticle{
		ID:          "art1",
		Slug:        "intro-to-tms",
		Title:       i18n.NewPair("技术简介", "An Introduction"),
		Content:     i18n.NewPair("<p>正文</p>", "<p>Body</p>"),
		Category:    "技术前沿",
		PublishDate: "2026-03-02 08:15:00.000Z",
		ViewCount:   1200,
	}
}

// The component templates must render ranged struct values directly, and every
// bilingual field must come out with both locale variants mounted.
func TestProductCardRendersValue(t *testing.T) {
	tmpl := loadViews(t)

	var buf strings.Builder
	err := tmpl.ExecuteTemplate(&buf, "product_card", map[string]interface{}{
		"Lang":    i18n.LangZh,
		"Product": sampleProduct(),
	})
	if err != nil {
		t.Fatalf("render product_card: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"经颅磁刺激仪",
		"Transcranial Magnetic Stimulator",
		"<li>无创治疗</li>",
		"<li>Biocompatible</li>",
		"<li>Rehabilitation</li>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("product card missing %q", want)
		}
	}
}

func TestProductCardEmptyListPlaceholder(t *testing.T) {
	tmpl := loadViews(t)

	p := sampleProduct()
	p.FeaturesEn = nil

	var buf strings.Builder
	err := tmpl.ExecuteTemplate(&buf, "product_card", map[string]interface{}{
		"Lang":    i18n.LangEn,
		"Product": p,
	})
	if err != nil {
		t.Fatalf("render product_card: %v", err)
	}
	if !strings.Contains(buf.String(), i18n.PlaceholderEn) {
		t.Error("missing en feature list should render the placeholder")
	}
}

func TestNewsCardRendersValue(t *testing.T) {
	tmpl := loadViews(t)

	var buf strings.Builder
	err := tmpl.ExecuteTemplate(&buf, "news_card", map[string]interface{}{
		"Lang":    i18n.LangZh,
		"Article": sampleArticle(),
	})
	if err != nil {
		t.Fatalf("render news_card: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		`href="/news/intro-to-tms"`,
		"1,200",
		"2026年03月02日",
		"Mar 2, 2026",
		">阅读<",
		">views<",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("news card missing %q", want)
		}
	}
}

func TestNewsCardExternalLink(t *testing.T) {
	tmpl := loadViews(t)

	a := sampleArticle()
	a.ExternalLink = "https://elsewhere.example/post"

	var buf strings.Builder
	err := tmpl.ExecuteTemplate(&buf, "news_card", map[string]interface{}{
		"Lang":    i18n.LangEn,
		"Article": a,
	})
	if err != nil {
		t.Fatalf("render news_card: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `href="https://elsewhere.example/post"`) {
		t.Error("external link target missing")
	}
	if !strings.Contains(out, `data-view-beacon="/api/news/art1/view"`) {
		t.Error("external article should carry a view beacon")
	}
}

func TestIndexPageFullLayout(t *testing.T) {
	tmpl, err := loadViews(t).Clone()
	if err != nil {
		t.Fatalf("clone: %v", err)
	}
	if _, err := tmpl.ParseFiles("../../views/pages/public/index.html"); err != nil {
		t.Fatalf("parse index: %v", err)
	}

	var buf strings.Builder
	err = tmpl.ExecuteTemplate(&buf, "layouts/base.html", map[string]interface{}{
		"Lang":       i18n.LangZh,
		"DocLang":    "zh",
		"PageKey":    "home",
		"Meta":       (*core.MetaTag)(nil),
		"Products":   []core.Product{sampleProduct()},
		"LatestNews": []core.NewsArticle{sampleArticle()},
		"Contacts":   []core.ContactInfo{},
		"Error":      "",
	})
	if err != nil {
		t.Fatalf("render index layout: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `<html lang="zh">`) {
		t.Error("document lang attribute missing")
	}
	if !strings.Contains(out, "经颅磁刺激仪") || !strings.Contains(out, "An Introduction") {
		t.Error("teaser sections not rendered")
	}
}

func TestProductsPage(t *testing.T) {
	out := renderPage(t, "products.html", map[string]interface{}{
		"Lang":     i18n.LangZh,
		"Products": []core.Product{sampleProduct()},
		"Categories": []core.ProductCategory{
			{ID: "cat1", Name: i18n.NewPair("神经调控", "Neuromodulation")},
		},
		"Selected": "cat1",
		"Loading":  false,
		"Error":    "",
	})

	if !strings.Contains(out, "Neuromodulation") {
		t.Error("category filter missing")
	}
	if !strings.Contains(out, `data-product-id="prod1"`) {
		t.Error("product card missing")
	}
}

func TestNewsPage(t *testing.T) {
	featured := sampleArticle()
	featured.IsFeatured = true

	out := renderPage(t, "news.html", map[string]interface{}{
		"Lang":       i18n.LangZh,
		"Featured":   []core.NewsArticle{featured},
		"Articles":   []core.NewsArticle{},
		"Categories": []string{"技术前沿"},
		"Selected":   "",
		"Loading":    false,
		"Error":      "",
	})

	if !strings.Contains(out, "精选文章") {
		t.Error("featured section missing")
	}
}

func TestNewsDetailPage(t *testing.T) {
	a := sampleArticle()
	out := renderPage(t, "news_detail.html", map[string]interface{}{
		"Lang":    i18n.LangZh,
		"Article": &a,
	})

	if !strings.Contains(out, "<p>正文</p>") || !strings.Contains(out, "<p>Body</p>") {
		t.Error("editor HTML variants not mounted unescaped")
	}
	if !strings.Contains(out, `data-share-beacon="/api/news/art1/share"`) {
		t.Error("share beacon missing")
	}
}

func TestNewsDetailNotFound(t *testing.T) {
	out := renderPage(t, "news_detail.html", map[string]interface{}{
		"Lang":     i18n.LangZh,
		"NotFound": true,
	})
	if !strings.Contains(out, "未找到该文章") {
		t.Error("not-found state missing")
	}
}

func TestAboutPageVariants(t *testing.T) {
	out := renderPage(t, "about.html", map[string]interface{}{
		"Lang": i18n.LangZh,
		"Sections": []core.AboutSection{
			{
				SectionKey: "company_profile",
				Title:      i18n.NewPair("公司简介", "Company Profile"),
				ContentZh:  []string{"简介段落"},
				ContentEn:  []string{"Profile paragraph"},
			},
			{
				SectionKey: "why_choose_us",
				Title:      i18n.NewPair("为什么选择我们", "Why Choose Us"),
				ContentZh:  []string{"原厂授权"},
				ContentEn:  []string{"Authorized channels"},
			},
		},
		"Loading": false,
		"Error":   "",
	})

	// Paragraph variant and bullet variant, both locales mounted.
	for _, want := range []string{
		"<p>简介段落</p>",
		"<p>Profile paragraph</p>",
		"<li>原厂授权</li>",
		"<li>Authorized channels</li>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("about page missing %q", want)
		}
	}
}

func TestContactPage(t *testing.T) {
	out := renderPage(t, "contact.html", map[string]interface{}{
		"Lang": i18n.LangZh,
		"Contacts": []core.ContactInfo{
			{Type: core.ContactEmail, Value: "info@risinghkt.com", Label: i18n.NewPair("邮箱", "Email")},
			{Type: core.ContactWebsite, Value: "www.risinghkt.com", Label: i18n.NewPair("官网", "Website")},
		},
		"Loading": false,
		"Error":   "",
	})

	if !strings.Contains(out, `href="mailto:info@risinghkt.com"`) {
		t.Error("email link missing")
	}
	if !strings.Contains(out, `href="https://www.risinghkt.com"`) {
		t.Error("website link missing")
	}
}

func TestParseBackendDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"pocketbase datetime", "2026-03-02 08:15:00.000Z", "2026-03-02"},
		{"rfc3339", "2026-03-02T08:15:00Z", "2026-03-02"},
		{"plain datetime", "2026-03-02 08:15:00", "2026-03-02"},
		{"date only", "2026-03-02", "2026-03-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseBackendDate(tt.in)
			if err != nil {
				t.Fatalf("parseBackendDate(%q): %v", tt.in, err)
			}
			if got.Format(time.DateOnly) != tt.want {
				t.Errorf("parsed %q, want %q", got.Format(time.DateOnly), tt.want)
			}
		})
	}

	if _, err := parseBackendDate("03/02/2026"); err == nil {
		t.Error("unknown format should error")
	}
}
