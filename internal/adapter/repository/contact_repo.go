package repository

import (
	"github.com/Karen2677/RisingHKT/internal/core"
	"github.com/Karen2677/RisingHKT/internal/i18n"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBContactRepo struct {
	app pbCore.App
}

func NewContactRepo(app pbCore.App) core.ContactRepository {
	return &PBContactRepo{app: app}
}

func (r *PBContactRepo) toDomain(record *pbCore.Record) core.ContactInfo {
	return core.ContactInfo{
		ID:           record.Id,
		Type:         record.GetString("type"),
		Value:        record.GetString("value"),
		Label:        i18n.NewPair(record.GetString("label_zh"), record.GetString("label_en")),
		DisplayOrder: record.GetInt("display_order"),
		IsActive:     record.GetBool("is_active"),
	}
}

// FindActive returns active contact channels ordered by display_order.
func (r *PBContactRepo) FindActive() ([]core.ContactInfo, error) {
	records, err := r.app.FindRecordsByFilter("contact_info", "is_active = true", "display_order", 0, 0, nil)
	if err != nil {
		return nil, err
	}

	contacts := make([]core.ContactInfo, 0, len(records))
	for _, rec := range records {
		contacts = append(contacts, r.toDomain(rec))
	}
	core.SortContacts(contacts)
	return contacts, nil
}
