package repository

import (
	"github.com/Karen2677/RisingHKT/internal/core"
	"github.com/Karen2677/RisingHKT/internal/i18n"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBCategoryRepo struct {
	app pbCore.App
}

func NewCategoryRepo(app pbCore.App) core.CategoryRepository {
	return &PBCategoryRepo{app: app}
}

func (r *PBCategoryRepo) toDomain(record *pbCore.Record) core.ProductCategory {
	return core.ProductCategory{
		ID:           record.Id,
		Name:         i18n.NewPair(record.GetString("name_zh"), record.GetString("name_en")),
		DisplayOrder: record.GetInt("display_order"),
		IsActive:     record.GetBool("is_active"),
	}
}

// FindActive returns active categories ordered by display_order.
func (r *PBCategoryRepo) FindActive() ([]core.ProductCategory, error) {
	records, err := r.app.FindRecordsByFilter("product_categories", "is_active = true", "display_order", 0, 0, nil)
	if err != nil {
		return nil, err
	}

	categories := make([]core.ProductCategory, 0, len(records))
	for _, rec := range records {
		categories = append(categories, r.toDomain(rec))
	}
	core.SortCategories(categories)
	return categories, nil
}
