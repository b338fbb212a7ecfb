package repository

import (
	"github.com/Karen2677/RisingHKT/internal/core"
	"github.com/Karen2677/RisingHKT/internal/i18n"

	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBNewsRepo struct {
	app pbCore.App
}

func NewNewsRepo(app pbCore.App) core.NewsRepository {
	return &PBNewsRepo{app: app}
}

func (r *PBNewsRepo) toDomain(record *pbCore.Record) core.NewsArticle {
	return core.NewsArticle{
		ID:           record.Id,
		Slug:         record.GetString("slug"),
		Title:        i18n.NewPair(record.GetString("title_zh"), record.GetString("title_en")),
		Content:      i18n.NewPair(record.GetString("content_zh"), record.GetString("content_en")),
		ExternalLink: record.GetString("external_link"),
		Category:     record.GetString("category"),
		Tags:         record.GetStringSlice("tags"),
		CoverImage:   record.GetString("cover_image"),
		IsActive:     record.GetBool("is_active"),
		IsFeatured:   record.GetBool("is_featured"),
		PublishDate:  record.GetString("publish_date"),
		ViewCount:    record.GetInt("view_count"),
		ShareCount:   record.GetInt("share_count"),
	}
}

// FindActive returns active articles, newest publish_date first.
func (r *PBNewsRepo) FindActive() ([]core.NewsArticle, error) {
	records, err := r.app.FindRecordsByFilter("industry_news", "is_active = true", "-publish_date", 0, 0, nil)
	if err != nil {
		return nil, err
	}

	articles := make([]core.NewsArticle, 0, len(records))
	for _, rec := range records {
		articles = append(articles, r.toDomain(rec))
	}
	core.SortArticles(articles)
	return articles, nil
}

// FindBySlug returns one active article by its slug, ErrNotFound on a miss.
func (r *PBNewsRepo) FindBySlug(slug string) (*core.NewsArticle, error) {
	if slug == "" {
		return nil, core.ErrNotFound
	}
	records, err := r.app.FindRecordsByFilter(
		"industry_news",
		"slug = {:slug} && is_active = true",
		"", 1, 0,
		dbx.Params{"slug": slug},
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, core.ErrNotFound
	}
	article := r.toDomain(records[0])
	return &article, nil
}

// FindByID returns one active article by raw record id, ErrNotFound on a miss.
func (r *PBNewsRepo) FindByID(id string) (*core.NewsArticle, error) {
	records, err := r.app.FindRecordsByFilter(
		"industry_news",
		"id = {:id} && is_active = true",
		"", 1, 0,
		dbx.Params{"id": id},
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, core.ErrNotFound
	}
	article := r.toDomain(records[0])
	return &article, nil
}

// IncrementViewCount bumps view_count atomically in the backend. Counters are
// advisory telemetry; callers treat failures as best-effort.
func (r *PBNewsRepo) IncrementViewCount(id string) error {
	return r.increment("view_count", id)
}

// IncrementShareCount bumps share_count atomically in the backend.
func (r *PBNewsRepo) IncrementShareCount(id string) error {
	return r.increment("share_count", id)
}

func (r *PBNewsRepo) increment(column, id string) error {
	// Single UPDATE so concurrent increments never lose writes.
	_, err := r.app.DB().
		NewQuery("UPDATE industry_news SET "+column+" = "+column+" + 1 WHERE id = {:id}").
		Bind(dbx.Params{"id": id}).
		Execute()
	return err
}
