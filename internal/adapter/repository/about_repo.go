package repository

import (
	"github.com/Karen2677/RisingHKT/internal/core"
	"github.com/Karen2677/RisingHKT/internal/i18n"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBAboutRepo struct {
	app pbCore.App
}

func NewAboutRepo(app pbCore.App) core.AboutRepository {
	return &PBAboutRepo{app: app}
}

func (r *PBAboutRepo) toDomain(record *pbCore.Record) core.AboutSection {
	return core.AboutSection{
		ID:           record.Id,
		SectionKey:   record.GetString("section_key"),
		Title:        i18n.NewPair(record.GetString("title_zh"), record.GetString("title_en")),
		ContentZh:    record.GetStringSlice("content_zh"),
		ContentEn:    record.GetStringSlice("content_en"),
		DisplayOrder: record.GetInt("display_order"),
		IsActive:     record.GetBool("is_active"),
	}
}

// FindActive returns active about sections ordered by display_order.
func (r *PBAboutRepo) FindActive() ([]core.AboutSection, error) {
	records, err := r.app.FindRecordsByFilter("about_sections", "is_active = true", "display_order", 0, 0, nil)
	if err != nil {
		return nil, err
	}

	sections := make([]core.AboutSection, 0, len(records))
	for _, rec := range records {
		sections = append(sections, r.toDomain(rec))
	}
	core.SortSections(sections)
	return sections, nil
}
