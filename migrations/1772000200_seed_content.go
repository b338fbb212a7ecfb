package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// Seed the minimum content a fresh install needs to render every page:
// per-page SEO records, the default contact channels and the two about
// sections. Products and news are left to the editors (see cmd/seed for
// sample data).
func init() {
	m.Register(func(app core.App) error {
		metaCollection, err := app.FindCollectionByNameOrId("meta_tags")
		if err != nil {
			return err
		}

		existing, _ := app.FindRecordsByFilter("meta_tags", "page_key = 'home'", "", 1, 0, nil)
		if len(existing) > 0 {
			return nil // already seeded
		}

		metaSeeds := []map[string]any{
			{
				"page_key":       "home",
				"title_zh":       "瑞星医疗 - 专业医疗设备供应商",
				"title_en":       "RisingHKT - Professional Medical Device Distributor",
				"description_zh": "专注于先进医疗设备的引进与分销",
				"description_en": "Specializing in the distribution of advanced medical devices",
			},
			{
				"page_key":       "products",
				"title_zh":       "产品中心 - 瑞星医疗",
				"title_en":       "Products - RisingHKT",
				"description_zh": "浏览我们代理的医疗设备产品线",
				"description_en": "Browse our distributed medical device product lines",
			},
			{
				"page_key":       "news",
				"title_zh":       "行业动态 - 瑞星医疗",
				"title_en":       "Industry News - RisingHKT",
				"description_zh": "最新医疗器械行业资讯",
				"description_en": "The latest medical device industry news",
			},
			{
				"page_key":       "about",
				"title_zh":       "关于我们 - 瑞星医疗",
				"title_en":       "About Us - RisingHKT",
				"description_zh": "了解我们的团队与使命",
				"description_en": "Learn about our team and mission",
			},
			{
				"page_key":       "contact",
				"title_zh":       "联系我们 - 瑞星医疗",
				"title_en":       "Contact Us - RisingHKT",
				"description_zh": "欢迎垂询合作",
				"description_en": "Get in touch with us",
			},
		}

		for _, seed := range metaSeeds {
			record := core.NewRecord(metaCollection)
			for k, v := range seed {
				record.Set(k, v)
			}
			record.Set("is_active", true)
			if err := app.Save(record); err != nil {
				return err
			}
		}

		contactCollection, err := app.FindCollectionByNameOrId("contact_info")
		if err != nil {
			return err
		}

		contactSeeds := []map[string]any{
			{"type": "email", "value": "info@risinghkt.com", "label_zh": "邮箱", "label_en": "Email", "display_order": 1},
			{"type": "phone", "value": "+86-10-0000-0000", "label_zh": "电话", "label_en": "Phone", "display_order": 2},
			{"type": "website", "value": "www.risinghkt.com", "label_zh": "官网", "label_en": "Website", "display_order": 3},
		}

		for _, seed := range contactSeeds {
			record := core.NewRecord(contactCollection)
			for k, v := range seed {
				record.Set(k, v)
			}
			record.Set("is_active", true)
			if err := app.Save(record); err != nil {
				return err
			}
		}

		aboutCollection, err := app.FindCollectionByNameOrId("about_sections")
		if err != nil {
			return err
		}

		aboutSeeds := []map[string]any{
			{
				"section_key":   "company_profile",
				"title_zh":      "公司简介",
				"title_en":      "Company Profile",
				"content_zh":    []string{"我们是一家专注于先进医疗设备引进与分销的公司。"},
				"content_en":    []string{"We are a distributor focused on bringing advanced medical devices to market."},
				"display_order": 1,
			},
			{
				"section_key":   "why_choose_us",
				"title_zh":      "为什么选择我们",
				"title_en":      "Why Choose Us",
				"content_zh":    []string{"原厂授权渠道", "专业技术支持", "完善的售后服务"},
				"content_en":    []string{"Authorized distribution channels", "Professional technical support", "Comprehensive after-sales service"},
				"display_order": 2,
			},
		}

		for _, seed := range aboutSeeds {
			record := core.NewRecord(aboutCollection)
			for k, v := range seed {
				record.Set(k, v)
			}
			record.Set("is_active", true)
			if err := app.Save(record); err != nil {
				return err
			}
		}

		return nil
	}, nil)
}
