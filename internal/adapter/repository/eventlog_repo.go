package repository

import (
	"github.com/Karen2677/RisingHKT/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBEventLogRepo struct {
	app pbCore.App
}

func NewEventLogRepo(app pbCore.App) core.EventLogRepository {
	return &PBEventLogRepo{app: app}
}

// Insert appends one telemetry row. site_event_logs is write-only from this
// layer; nothing ever reads it back into the site.
func (r *PBEventLogRepo) Insert(ev core.EventLog) error {
	collection, err := r.app.FindCollectionByNameOrId("site_event_logs")
	if err != nil {
		return err
	}

	record := pbCore.NewRecord(collection)
	record.Set("event_key", ev.EventKey)
	record.Set("ip_address", ev.IPAddress)
	record.Set("country", ev.Country)
	record.Set("referer", ev.Referer)
	record.Set("user_agent", ev.UserAgent)
	record.Set("lang", ev.Lang)

	return r.app.Save(record)
}
