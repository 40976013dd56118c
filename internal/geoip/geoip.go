// Package geoip resolves the player's approximate location from their IP
// address. The coordinates and timezone feed the night dimming feature.
package geoip

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"
)

// Location stores geographic data and timezone for the caller's IP.
type Location struct {
	Country   string    `json:"country"`
	City      string    `json:"city"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	Timezone  string    `json:"timezone"`
	IP        string    `json:"query"`
	TimeStamp time.Time `json:"-"`
}

// Client queries a geoip API and caches the result.
type Client struct {
	url         string
	httpTimeout time.Duration
	cacheTTL    time.Duration

	mu        sync.Mutex
	cache     *Location
	cacheTime time.Time
}

// Default client with default settings.
var Default = &Client{
	url:         "http://ip-api.com/json/",
	httpTimeout: 5 * time.Second,
	cacheTTL:    1 * time.Hour,
}

// SetCacheTTL sets the cache lifetime of the default client.
func SetCacheTTL(d time.Duration) {
	Default.cacheTTL = d
}

// Lookup returns the caller's location using the default client.
func Lookup() (*Location, error) {
	return Default.Lookup()
}

// Lookup returns the cached location while it is fresh, otherwise queries
// the API.
func (c *Client) Lookup() (*Location, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cache != nil && time.Since(c.cacheTime) <= c.cacheTTL {
		return c.cache, nil
	}

	client := http.Client{Timeout: c.httpTimeout}
	resp, err := client.Get(c.url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("geoip: non-200 response from API")
	}

	loc := &Location{}
	if err := json.NewDecoder(resp.Body).Decode(loc); err != nil {
		return nil, err
	}
	if loc.Timezone == "" {
		return nil, errors.New("geoip: timezone not provided")
	}
	if _, err := time.LoadLocation(loc.Timezone); err != nil {
		return nil, err
	}
	loc.TimeStamp = time.Now()

	c.cache = loc
	c.cacheTime = time.Now()
	return loc, nil
}
