package app

import (
	"os"

	internalApp "github.com/Karen2677/RisingHKT/internal/app"
	"github.com/Karen2677/RisingHKT/internal/i18n"
	"github.com/Karen2677/RisingHKT/pkg/handlers"
	"github.com/Karen2677/RisingHKT/pkg/middleware"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// RegisterRoutes configures all application routes.
func RegisterRoutes(pb *pocketbase.PocketBase, c *internalApp.Container) {
	pb.OnServe().BindFunc(func(se *core.ServeEvent) error {

		// ---------------------------------------------------------
		// 1. STATIC FILES
		// ---------------------------------------------------------
		se.Router.GET("/assets/{path...}", apis.Static(os.DirFS("./assets"), false))

		// ---------------------------------------------------------
		// 2. GLOBAL MIDDLEWARE
		// ---------------------------------------------------------
		se.Router.BindFunc(middleware.Locale(i18n.ParseLocale(c.Cfg.DefaultLang)))

		// ---------------------------------------------------------
		// 3. HANDLERS
		// ---------------------------------------------------------
		site := &handlers.SiteHandler{
			Templates:     c.Templates,
			Broker:        c.Broker,
			ProductStore:  c.Products,
			CategoryStore: c.Categories,
			SectionStore:  c.Sections,
			ContactStore:  c.Contacts,
			MetaStore:     c.Meta,
			NewsStore:     c.News,
			NewsRepo:      c.NewsRepo,
			Events:        c.Events,
			Log:           c.Log,
		}

		// ---------------------------------------------------------
		// 4. PUBLIC PAGES
		// ---------------------------------------------------------
		se.Router.GET("/", site.Index)
		se.Router.GET("/products", site.Products)
		se.Router.GET("/news", site.News)
		se.Router.GET("/news/{slug}", site.NewsDetail)
		se.Router.GET("/about", site.About)
		se.Router.GET("/contact", site.Contact)

		// ---------------------------------------------------------
		// 5. CLIENT API (beacons + live updates)
		// ---------------------------------------------------------
		se.Router.POST("/api/events", site.LogEvent)
		se.Router.POST("/api/products/{id}/view", site.LogProductView)
		se.Router.POST("/api/news/{id}/view", site.LogNewsView)
		se.Router.POST("/api/news/{id}/share", site.LogNewsShare)
		se.Router.POST("/api/lang", site.SwitchLang)
		se.Router.GET("/api/changes/stream", site.ChangeStream)

		return se.Next()
	})
}
