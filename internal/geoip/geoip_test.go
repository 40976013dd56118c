package geoip

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLookup(t *testing.T) {
	body := `{"country":"The Netherlands","city":"Amsterdam","lat":52.3728,"lon":4.88805,"timezone":"Europe/Amsterdam","query":"193.0.11.51"}`
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := &Client{url: srv.URL, httpTimeout: time.Second, cacheTTL: time.Hour}

	loc, err := c.Lookup()
	if err != nil {
		t.Fatalf("Lookup() error: %v", err)
	}
	if loc.Timezone != "Europe/Amsterdam" {
		t.Errorf("Timezone = %q; want Europe/Amsterdam", loc.Timezone)
	}
	if loc.Lat != 52.3728 || loc.Lon != 4.88805 {
		t.Errorf("coordinates = (%f, %f)", loc.Lat, loc.Lon)
	}

	// Second lookup inside the TTL must come from cache.
	if _, err := c.Lookup(); err != nil {
		t.Fatalf("cached Lookup() error: %v", err)
	}
	if calls != 1 {
		t.Errorf("API called %d times; want 1 (cache hit)", calls)
	}
}

func TestLookupErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, ""},
		{"missing timezone", http.StatusOK, `{"lat":1,"lon":2}`},
		{"invalid timezone", http.StatusOK, `{"timezone":"Not/AZone"}`},
		{"bad json", http.StatusOK, `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := &Client{url: srv.URL, httpTimeout: time.Second, cacheTTL: time.Hour}
			if _, err := c.Lookup(); err == nil {
				t.Error("Lookup() = nil error; want error")
			}
		})
	}
}
