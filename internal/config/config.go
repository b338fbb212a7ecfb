// Package config loads environment-driven settings.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything tunable from the environment. PocketBase owns its
// own flags (bind address, data dir); this covers the site layer only.
type Config struct {
	// DefaultLang is the locale a first-time visitor gets.
	DefaultLang string `env:"SITE_DEFAULT_LANG" envDefault:"zh"`

	// Enrichment endpoints for the event logger. Both are optional lookups;
	// when unreachable, events are logged without the derived fields.
	IPLookupURL      string        `env:"SITE_IP_LOOKUP_URL" envDefault:"https://api.ipify.org?format=json"`
	CountryLookupURL string        `env:"SITE_COUNTRY_LOOKUP_URL" envDefault:"https://ipapi.co"`
	LookupTimeout    time.Duration `env:"SITE_LOOKUP_TIMEOUT" envDefault:"3s"`

	LogLevel  string `env:"SITE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"SITE_LOG_FORMAT" envDefault:"json"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
