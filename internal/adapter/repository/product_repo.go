package repository

import (
	"github.com/Karen2677/RisingHKT/internal/core"
	"github.com/Karen2677/RisingHKT/internal/i18n"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBProductRepo struct {
	app pbCore.App
}

func NewProductRepo(app pbCore.App) core.ProductRepository {
	return &PBProductRepo{app: app}
}

// Mapping helper: Record -> Domain Model
func (r *PBProductRepo) toDomain(record *pbCore.Record) core.Product {
	return core.Product{
		ID:             record.Id,
		Title:          i18n.NewPair(record.GetString("title_zh"), record.GetString("title_en")),
		Description:    i18n.NewPair(record.GetString("description_zh"), record.GetString("description_en")),
		Details:        i18n.NewPair(record.GetString("details_zh"), record.GetString("details_en")),
		Disclaimer:     i18n.NewPair(record.GetString("disclaimer_zh"), record.GetString("disclaimer_en")),
		ImageURL:       record.GetString("image_url"),
		FeaturesZh:     record.GetStringSlice("features_zh"),
		FeaturesEn:     record.GetStringSlice("features_en"),
		ApplicationsZh: record.GetStringSlice("applications_zh"),
		ApplicationsEn: record.GetStringSlice("applications_en"),
		DisplayOrder:   record.GetInt("display_order"),
		CategoryID:     record.GetString("category_id"),
		IsActive:       record.GetBool("is_active"),
		Created:        record.GetString("created"),
		Updated:        record.GetString("updated"),
	}
}

// FindActive returns active products ordered by display_order.
func (r *PBProductRepo) FindActive() ([]core.Product, error) {
	records, err := r.app.FindRecordsByFilter("products", "is_active = true", "display_order", 0, 0, nil)
	if err != nil {
		return nil, err
	}

	products := make([]core.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, r.toDomain(rec))
	}
	core.SortProducts(products)
	return products, nil
}
