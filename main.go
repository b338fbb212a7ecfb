package main

import (
	"log"
	"time"

	internalApp "github.com/Karen2677/RisingHKT/internal/app"
	"github.com/Karen2677/RisingHKT/pkg/app"
	"github.com/Karen2677/RisingHKT/pkg/broker"

	_ "github.com/Karen2677/RisingHKT/migrations"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/plugins/migratecmd"
)

// contentTables are the backend tables whose mutations are pushed to snapshot
// stores and the browser stream. site_event_logs is deliberately absent: it is
// write-only telemetry and nothing re-reads it.
var contentTables = []string{
	"products",
	"product_categories",
	"about_sections",
	"contact_info",
	"meta_tags",
	"industry_news",
}

func main() {
	pb := pocketbase.New()

	// 1. Migrations
	migratecmd.MustRegister(pb, pb.RootCmd, migratecmd.Config{
		Automigrate: true,
	})

	// 2. Dependency Container
	c, err := internalApp.NewContainer(pb)
	if err != nil {
		log.Fatal("Error initializing container:", err)
	}

	// 3. Bridge record hooks into the change broker. Any insert/update/delete
	// on a content table triggers a full snapshot refetch downstream.
	for _, table := range contentTables {
		table := table
		pb.OnRecordAfterCreateSuccess(table).BindFunc(func(e *core.RecordEvent) error {
			c.Broker.Publish(broker.Change{Table: table, Action: "create", RecordID: e.Record.Id, Timestamp: time.Now().Unix()})
			return e.Next()
		})
		pb.OnRecordAfterUpdateSuccess(table).BindFunc(func(e *core.RecordEvent) error {
			c.Broker.Publish(broker.Change{Table: table, Action: "update", RecordID: e.Record.Id, Timestamp: time.Now().Unix()})
			return e.Next()
		})
		pb.OnRecordAfterDeleteSuccess(table).BindFunc(func(e *core.RecordEvent) error {
			c.Broker.Publish(broker.Change{Table: table, Action: "delete", RecordID: e.Record.Id, Timestamp: time.Now().Unix()})
			return e.Next()
		})
	}

	// 4. Routes
	app.RegisterRoutes(pb, c)

	// 5. Snapshot watchers live for the process lifetime
	pb.OnServe().BindFunc(func(se *core.ServeEvent) error {
		c.StartWatchers()
		return se.Next()
	})
	pb.OnTerminate().BindFunc(func(te *core.TerminateEvent) error {
		c.Shutdown()
		return te.Next()
	})

	if err := pb.Start(); err != nil {
		log.Fatal(err)
	}
}
