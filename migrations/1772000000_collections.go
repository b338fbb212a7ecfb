package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// Base schema: the six content tables surfaced read-only to the site plus the
// write-only telemetry table. Every bilingual field is two independent
// optional columns (*_zh / *_en); holes are resolved to placeholders at the
// data-access boundary, never rejected here.
func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("products"); err == nil {
			return nil // schema already present
		}

		minZero := float64(0)

		// ---- product_categories ----
		categories := core.NewBaseCollection("product_categories")
		categories.Fields.Add(&core.TextField{Name: "name_zh", Max: 255})
		categories.Fields.Add(&core.TextField{Name: "name_en", Max: 255})
		categories.Fields.Add(&core.NumberField{Name: "display_order", Min: &minZero})
		categories.Fields.Add(&core.BoolField{Name: "is_active"})
		if err := app.Save(categories); err != nil {
			return err
		}

		// ---- products ----
		products := core.NewBaseCollection("products")
		products.Fields.Add(&core.TextField{Name: "title_zh", Max: 255})
		products.Fields.Add(&core.TextField{Name: "title_en", Max: 255})
		products.Fields.Add(&core.TextField{Name: "description_zh", Max: 2000})
		products.Fields.Add(&core.TextField{Name: "description_en", Max: 2000})
		products.Fields.Add(&core.TextField{Name: "details_zh", Max: 10000})
		products.Fields.Add(&core.TextField{Name: "details_en", Max: 10000})
		products.Fields.Add(&core.TextField{Name: "disclaimer_zh", Max: 2000})
		products.Fields.Add(&core.TextField{Name: "disclaimer_en", Max: 2000})
		products.Fields.Add(&core.URLField{Name: "image_url"})
		products.Fields.Add(&core.JSONField{Name: "features_zh", MaxSize: 100000})
		products.Fields.Add(&core.JSONField{Name: "features_en", MaxSize: 100000})
		products.Fields.Add(&core.JSONField{Name: "applications_zh", MaxSize: 100000})
		products.Fields.Add(&core.JSONField{Name: "applications_en", MaxSize: 100000})
		products.Fields.Add(&core.NumberField{Name: "display_order", Min: &minZero})
		products.Fields.Add(&core.RelationField{
			Name:          "category_id",
			CollectionId:  categories.Id,
			MaxSelect:     1,
			CascadeDelete: false,
		})
		products.Fields.Add(&core.BoolField{Name: "is_active"})
		if err := app.Save(products); err != nil {
			return err
		}

		// ---- about_sections ----
		about := core.NewBaseCollection("about_sections")
		about.Fields.Add(&core.TextField{Name: "section_key", Required: true, Max: 100})
		about.Fields.Add(&core.TextField{Name: "title_zh", Max: 255})
		about.Fields.Add(&core.TextField{Name: "title_en", Max: 255})
		about.Fields.Add(&core.JSONField{Name: "content_zh", MaxSize: 200000})
		about.Fields.Add(&core.JSONField{Name: "content_en", MaxSize: 200000})
		about.Fields.Add(&core.NumberField{Name: "display_order", Min: &minZero})
		about.Fields.Add(&core.BoolField{Name: "is_active"})
		if err := app.Save(about); err != nil {
			return err
		}

		// ---- contact_info ----
		contact := core.NewBaseCollection("contact_info")
		contact.Fields.Add(&core.SelectField{
			Name:      "type",
			Required:  true,
			MaxSelect: 1,
			Values:    []string{"email", "phone", "website"},
		})
		contact.Fields.Add(&core.TextField{Name: "value", Required: true, Max: 255})
		contact.Fields.Add(&core.TextField{Name: "label_zh", Max: 255})
		contact.Fields.Add(&core.TextField{Name: "label_en", Max: 255})
		contact.Fields.Add(&core.NumberField{Name: "display_order", Min: &minZero})
		contact.Fields.Add(&core.BoolField{Name: "is_active"})
		if err := app.Save(contact); err != nil {
			return err
		}

		// ---- meta_tags ----
		meta := core.NewBaseCollection("meta_tags")
		meta.Fields.Add(&core.TextField{Name: "page_key", Required: true, Max: 100})
		meta.Fields.Add(&core.TextField{Name: "title_zh", Max: 255})
		meta.Fields.Add(&core.TextField{Name: "title_en", Max: 255})
		meta.Fields.Add(&core.TextField{Name: "description_zh", Max: 500})
		meta.Fields.Add(&core.TextField{Name: "description_en", Max: 500})
		meta.Fields.Add(&core.JSONField{Name: "keywords_zh", MaxSize: 10000})
		meta.Fields.Add(&core.JSONField{Name: "keywords_en", MaxSize: 10000})
		meta.Fields.Add(&core.TextField{Name: "og_title_zh", Max: 255})
		meta.Fields.Add(&core.TextField{Name: "og_title_en", Max: 255})
		meta.Fields.Add(&core.TextField{Name: "og_description_zh", Max: 500})
		meta.Fields.Add(&core.TextField{Name: "og_description_en", Max: 500})
		meta.Fields.Add(&core.URLField{Name: "og_image"})
		meta.Fields.Add(&core.URLField{Name: "canonical_url"})
		meta.Fields.Add(&core.BoolField{Name: "is_active"})
		meta.Indexes = []string{
			"CREATE UNIQUE INDEX idx_meta_tags_page_key ON meta_tags (page_key)",
		}
		if err := app.Save(meta); err != nil {
			return err
		}

		// ---- industry_news ----
		news := core.NewBaseCollection("industry_news")
		news.Fields.Add(&core.TextField{Name: "slug", Max: 255})
		news.Fields.Add(&core.TextField{Name: "title_zh", Max: 255})
		news.Fields.Add(&core.TextField{Name: "title_en", Max: 255})
		news.Fields.Add(&core.EditorField{Name: "content_zh"})
		news.Fields.Add(&core.EditorField{Name: "content_en"})
		news.Fields.Add(&core.URLField{Name: "external_link"})
		news.Fields.Add(&core.TextField{Name: "category", Max: 100})
		news.Fields.Add(&core.JSONField{Name: "tags", MaxSize: 10000})
		news.Fields.Add(&core.URLField{Name: "cover_image"})
		news.Fields.Add(&core.BoolField{Name: "is_active"})
		news.Fields.Add(&core.BoolField{Name: "is_featured"})
		news.Fields.Add(&core.DateField{Name: "publish_date"})
		news.Fields.Add(&core.NumberField{Name: "view_count", Min: &minZero})
		news.Fields.Add(&core.NumberField{Name: "share_count", Min: &minZero})
		news.Indexes = []string{
			"CREATE UNIQUE INDEX idx_industry_news_slug ON industry_news (slug) WHERE slug != ''",
		}
		if err := app.Save(news); err != nil {
			return err
		}

		// ---- site_event_logs ----
		logs := core.NewBaseCollection("site_event_logs")
		logs.Fields.Add(&core.TextField{Name: "event_key", Required: true, Max: 255})
		logs.Fields.Add(&core.TextField{Name: "ip_address", Max: 64})
		logs.Fields.Add(&core.TextField{Name: "country", Max: 128})
		logs.Fields.Add(&core.TextField{Name: "referer", Max: 1000})
		logs.Fields.Add(&core.TextField{Name: "user_agent", Max: 1000})
		logs.Fields.Add(&core.TextField{Name: "lang", Max: 8})
		return app.Save(logs)

	}, func(app core.App) error {
		// Rollback: drop everything this migration created.
		names := []string{
			"site_event_logs",
			"industry_news",
			"meta_tags",
			"contact_info",
			"about_sections",
			"products",
			"product_categories",
		}
		for _, name := range names {
			if collection, err := app.FindCollectionByNameOrId(name); err == nil {
				if err := app.Delete(collection); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
