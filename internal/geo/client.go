// Package geo resolves an approximate location for a client IP via the free
// ipapi.co service. Lookups are best effort; any failure yields "Unknown".
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// UnknownLocation is returned whenever the lookup cannot produce a result.
const UnknownLocation = "Unknown"

// Client queries an ipapi.co-compatible endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a geolocation client. baseURL is the service root,
// e.g. "https://ipapi.co".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

type lookupResponse struct {
	City        string `json:"city"`
	Region      string `json:"region"`
	CountryName string `json:"country_name"`
}

// Lookup returns a "City, Region, Country" string for the IP, or
// UnknownLocation on any failure.
func (c *Client) Lookup(ctx context.Context, ip string) string {
	if strings.TrimSpace(ip) == "" {
		return UnknownLocation
	}
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return UnknownLocation
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return UnknownLocation
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return UnknownLocation
	}

	var parsed lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return UnknownLocation
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{parsed.City, parsed.Region, parsed.CountryName} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return UnknownLocation
	}
	return strings.Join(parts, ", ")
}
