// Package app provides the dependency injection container for the site.
// This consolidates all service initialization in one place.
package app

import (
	"fmt"
	"html/template"

	"github.com/Karen2677/RisingHKT/internal/adapter/repository"
	"github.com/Karen2677/RisingHKT/internal/config"
	domain "github.com/Karen2677/RisingHKT/internal/core"
	"github.com/Karen2677/RisingHKT/internal/logger"
	"github.com/Karen2677/RisingHKT/internal/service/eventlog"
	"github.com/Karen2677/RisingHKT/internal/store"
	"github.com/Karen2677/RisingHKT/pkg/broker"
	"github.com/Karen2677/RisingHKT/pkg/geoip"

	"github.com/pocketbase/pocketbase"
	"go.uber.org/zap"
)

// Container holds all application dependencies.
type Container struct {
	PB  *pocketbase.PocketBase
	Cfg *config.Config
	Log *zap.Logger

	Templates *template.Template
	Broker    *broker.TableBroker

	// Repositories (Data Access Layer)
	ProductRepo  domain.ProductRepository
	CategoryRepo domain.CategoryRepository
	AboutRepo    domain.AboutRepository
	ContactRepo  domain.ContactRepository
	MetaRepo     domain.MetaRepository
	NewsRepo     domain.NewsRepository
	EventRepo    domain.EventLogRepository

	// Live table snapshots feeding the page assemblers
	Products   *store.ListStore[domain.Product]
	Categories *store.ListStore[domain.ProductCategory]
	Sections   *store.ListStore[domain.AboutSection]
	Contacts   *store.ListStore[domain.ContactInfo]
	Meta       *store.ListStore[domain.MetaTag]
	News       *store.ListStore[domain.NewsArticle]

	// Telemetry
	Geo    *geoip.Client
	Events *eventlog.Logger

	stopWatchers []func()
}

// NewContainer creates and wires all dependencies.
func NewContainer(pb *pocketbase.PocketBase) (*Container, error) {
	c := &Container{PB: pb}

	// 1. Config + Logger
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Cfg = cfg

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	c.Log = log

	// 2. Change Broker
	c.Broker = broker.NewTableBroker()

	// 3. Templates
	templates, err := InitTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to init templates: %w", err)
	}
	c.Templates = templates

	// 4. Repositories (Adapters)
	c.ProductRepo = repository.NewProductRepo(pb)
	c.CategoryRepo = repository.NewCategoryRepo(pb)
	c.AboutRepo = repository.NewAboutRepo(pb)
	c.ContactRepo = repository.NewContactRepo(pb)
	c.MetaRepo = repository.NewMetaRepo(pb)
	c.NewsRepo = repository.NewNewsRepo(pb)
	c.EventRepo = repository.NewEventLogRepo(pb)

	// 5. Snapshot stores, one per content table
	c.Products = store.NewListStore("products", c.ProductRepo.FindActive, log)
	c.Categories = store.NewListStore("product_categories", c.CategoryRepo.FindActive, log)
	c.Sections = store.NewListStore("about_sections", c.AboutRepo.FindActive, log)
	c.Contacts = store.NewListStore("contact_info", c.ContactRepo.FindActive, log)
	c.Meta = store.NewListStore("meta_tags", c.MetaRepo.FindActive, log)
	c.News = store.NewListStore("industry_news", c.NewsRepo.FindActive, log)

	// 6. Telemetry (enrichment lookups are optional)
	c.Geo = geoip.New(cfg.IPLookupURL, cfg.CountryLookupURL, cfg.LookupTimeout, log)
	c.Events = eventlog.New(c.EventRepo, c.Geo, log)

	return c, nil
}

// StartWatchers subscribes every snapshot store to its table's change feed.
// Call after the backend is serving so the initial reads can succeed.
func (c *Container) StartWatchers() {
	c.stopWatchers = []func(){
		c.Products.Watch(c.Broker),
		c.Categories.Watch(c.Broker),
		c.Sections.Watch(c.Broker),
		c.Contacts.Watch(c.Broker),
		c.Meta.Watch(c.Broker),
		c.News.Watch(c.Broker),
	}
}

// Shutdown releases subscriptions and drains in-flight telemetry.
func (c *Container) Shutdown() {
	for _, stop := range c.stopWatchers {
		stop()
	}
	c.Events.Flush()
	_ = c.Log.Sync()
}
