// Sample-content seeder for local development: one category, one product and
// one news article so the listing pages have something to show.
package main

import (
	"fmt"
	"log"
	"time"

	_ "github.com/Karen2677/RisingHKT/migrations"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

func main() {
	app := pocketbase.New()

	app.OnServe().BindFunc(func(e *core.ServeEvent) error {
		existing, _ := app.FindRecordsByFilter("products", "title_en = 'Transcranial Magnetic Stimulator'", "", 1, 0, nil)
		if len(existing) > 0 {
			fmt.Printf("Sample product already exists: %s\n", existing[0].Id)
			return e.Next()
		}

		categories, err := app.FindCollectionByNameOrId("product_categories")
		if err != nil {
			return err
		}
		category := core.NewRecord(categories)
		category.Set("name_zh", "神经调控设备")
		category.Set("name_en", "Neuromodulation Devices")
		category.Set("display_order", 1)
		category.Set("is_active", true)
		if err := app.Save(category); err != nil {
			return err
		}

		products, err := app.FindCollectionByNameOrId("products")
		if err != nil {
			return err
		}
		product := core.NewRecord(products)
		product.Set("title_zh", "经颅磁刺激仪")
		product.Set("title_en", "Transcranial Magnetic Stimulator")
		product.Set("description_zh", "用于神经与精神疾病治疗的无创磁刺激设备。")
		product.Set("description_en", "A non-invasive magnetic stimulation device for neurological and psychiatric treatment.")
		product.Set("features_zh", []string{"无创治疗", "精准定位"})
		product.Set("features_en", []string{"Non-invasive treatment", "Precise targeting"})
		product.Set("applications_zh", []string{"抑郁症", "神经康复"})
		product.Set("applications_en", []string{"Depression", "Neurological rehabilitation"})
		product.Set("display_order", 1)
		product.Set("category_id", category.Id)
		product.Set("is_active", true)
		if err := app.Save(product); err != nil {
			return err
		}

		news, err := app.FindCollectionByNameOrId("industry_news")
		if err != nil {
			return err
		}
		article := core.NewRecord(news)
		article.Set("slug", "intro-to-tms")
		article.Set("title_zh", "经颅磁刺激技术简介")
		article.Set("title_en", "An Introduction to TMS Technology")
		article.Set("content_zh", "<p>经颅磁刺激（TMS）是一种无创的神经调控技术。</p>")
		article.Set("content_en", "<p>Transcranial magnetic stimulation (TMS) is a non-invasive neuromodulation technique.</p>")
		article.Set("category", "技术前沿")
		article.Set("tags", []string{"TMS", "neuromodulation"})
		article.Set("is_active", true)
		article.Set("is_featured", true)
		article.Set("publish_date", time.Now().UTC().Format("2006-01-02 15:04:05.000Z"))
		if err := app.Save(article); err != nil {
			return err
		}

		fmt.Printf("Created sample product %s and article %s\n", product.Id, article.Id)
		return e.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
