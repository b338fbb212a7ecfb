// Package geoip resolves best-effort enrichment for telemetry events: the
// visitor's public IP and a coarse country name. Both lookups are optional —
// every failure degrades to an empty value and is only warned about locally.
package geoip

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ipifyResponse is the public IP endpoint payload: { "ip": "..." }.
type ipifyResponse struct {
	IP string `json:"ip"`
}

// Client caches lookups for the process lifetime: at most one public-IP call
// and at most one country call per address ever go out. Write-once,
// read-many, no invalidation.
type Client struct {
	http       *resty.Client
	ipURL      string
	countryURL string
	log        *zap.Logger

	mu        sync.Mutex
	publicIP  string
	ipOnce    bool
	countries map[string]string
}

// New creates a lookup client. The timeout is applied to both endpoints so a
// slow lookup can never delay event logging indefinitely.
func New(ipURL, countryURL string, timeout time.Duration, log *zap.Logger) *Client {
	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:       httpClient,
		ipURL:      ipURL,
		countryURL: countryURL,
		log:        log,
		countries:  make(map[string]string),
	}
}

// PublicIP returns the caller's public address as seen by the IP lookup
// endpoint, or "" when the lookup fails. The first result, including a
// failure, is cached for the session.
func (c *Client) PublicIP() string {
	c.mu.Lock()
	if c.ipOnce {
		ip := c.publicIP
		c.mu.Unlock()
		return ip
	}
	c.mu.Unlock()

	var payload ipifyResponse
	_, err := c.http.R().
		SetResult(&payload).
		Get(c.ipURL)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.ipOnce = true
	if err != nil {
		c.log.Warn("public ip lookup failed", zap.Error(err))
		return ""
	}
	c.publicIP = payload.IP
	return c.publicIP
}

// Country resolves a coarse country name for an IP, localized by the lang
// query parameter. Results (including failed empty ones) are cached per
// address+language.
func (c *Client) Country(ip, lang string) string {
	if ip == "" {
		return ""
	}
	key := ip + "|" + lang

	c.mu.Lock()
	if country, ok := c.countries[key]; ok {
		c.mu.Unlock()
		return country
	}
	c.mu.Unlock()

	// Plain-text country name endpoint, e.g. {base}/{ip}/country_name/?lang=zh
	resp, err := c.http.R().
		SetQueryParam("lang", lang).
		Get(fmt.Sprintf("%s/%s/country_name/", c.countryURL, ip))

	country := ""
	if err != nil {
		c.log.Warn("country lookup failed", zap.String("ip", ip), zap.Error(err))
	} else if resp.IsSuccess() {
		country = string(resp.Body())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.countries[key] = country
	return country
}
