package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
	"github.com/pocketbase/pocketbase/tools/types"
)

// Content tables are publicly readable; site_event_logs stays locked down —
// only the server writes it and nothing reads it back out.
func init() {
	m.Register(func(app core.App) error {
		collections := []string{
			"products",
			"product_categories",
			"about_sections",
			"contact_info",
			"meta_tags",
			"industry_news",
		}

		for _, name := range collections {
			collection, err := app.FindCollectionByNameOrId(name)
			if err != nil {
				return err
			}

			// Empty string means public access
			collection.ListRule = types.Pointer("")
			collection.ViewRule = types.Pointer("")

			if err := app.Save(collection); err != nil {
				return err
			}
		}

		return nil
	}, nil)
}
