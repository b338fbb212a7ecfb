package repository

import (
	"github.com/Karen2677/RisingHKT/internal/core"
	"github.com/Karen2677/RisingHKT/internal/i18n"

	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBMetaRepo struct {
	app pbCore.App
}

func NewMetaRepo(app pbCore.App) core.MetaRepository {
	return &PBMetaRepo{app: app}
}

func (r *PBMetaRepo) toDomain(record *pbCore.Record) core.MetaTag {
	return core.MetaTag{
		ID:            record.Id,
		PageKey:       record.GetString("page_key"),
		Title:         i18n.NewPair(record.GetString("title_zh"), record.GetString("title_en")),
		Description:   i18n.NewPair(record.GetString("description_zh"), record.GetString("description_en")),
		KeywordsZh:    record.GetStringSlice("keywords_zh"),
		KeywordsEn:    record.GetStringSlice("keywords_en"),
		OgTitle:       i18n.NewPair(record.GetString("og_title_zh"), record.GetString("og_title_en")),
		OgDescription: i18n.NewPair(record.GetString("og_description_zh"), record.GetString("og_description_en")),
		OgImage:       record.GetString("og_image"),
		CanonicalURL:  record.GetString("canonical_url"),
		IsActive:      record.GetBool("is_active"),
	}
}

// FindActive returns all active meta tag records.
func (r *PBMetaRepo) FindActive() ([]core.MetaTag, error) {
	records, err := r.app.FindRecordsByFilter("meta_tags", "is_active = true", "page_key", 0, 0, nil)
	if err != nil {
		return nil, err
	}

	tags := make([]core.MetaTag, 0, len(records))
	for _, rec := range records {
		tags = append(tags, r.toDomain(rec))
	}
	return tags, nil
}

// FindByPageKey returns the meta record for one page. A miss is ErrNotFound,
// never a transport failure.
func (r *PBMetaRepo) FindByPageKey(pageKey string) (*core.MetaTag, error) {
	records, err := r.app.FindRecordsByFilter(
		"meta_tags",
		"page_key = {:key} && is_active = true",
		"", 1, 0,
		dbx.Params{"key": pageKey},
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, core.ErrNotFound
	}
	tag := r.toDomain(records[0])
	return &tag, nil
}
