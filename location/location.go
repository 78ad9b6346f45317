// Package location resolves user input into coordinates the dial can
// use: a literal "lat,lng" pair or a free-text place name geocoded
// through the Open-Meteo geocoding API. Resolution failures fall back to
// a default place and are never fatal
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Place is a resolved location
type Place struct {
	Lat, Lng       float64
	Name           string
	UTCOffsetHours float64
}

// Default is used whenever resolution fails
var Default = Place{Lat: 40.71, Lng: -74.0, Name: "New York", UTCOffsetHours: -5}

// Parse attempts to read a literal "lat,lng" pair. The UTC offset is
// estimated from longitude (15° per hour), which tracks solar time
// rather than the political time zone
func Parse(s string) (Place, bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Place{}, false
	}
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return Place{}, false
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return Place{}, false
	}
	return Place{
		Lat:            lat,
		Lng:            lng,
		Name:           fmt.Sprintf("%.2f,%.2f", lat, lng),
		UTCOffsetHours: math.Round(lng / 15),
	}, true
}

// DefaultEndpoint is the Open-Meteo geocoding search URL
const DefaultEndpoint = "https://geocoding-api.open-meteo.com/v1/search"

// Resolver geocodes free-text queries
type Resolver struct {
	Endpoint string
	Client   *http.Client
}

// NewResolver builds a resolver against the public Open-Meteo endpoint
func NewResolver() *Resolver {
	return &Resolver{
		Endpoint: DefaultEndpoint,
		Client:   &http.Client{Timeout: 10 * time.Second},
	}
}

type geocodeResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Timezone  string  `json:"timezone"`
		Country   string  `json:"country"`
	} `json:"results"`
}

// Geocode resolves a place name. The UTC offset comes from the result's
// IANA timezone when it loads, longitude otherwise
func (r *Resolver) Geocode(ctx context.Context, query string) (Place, error) {
	params := url.Values{}
	params.Add("name", query)
	params.Add("count", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return Place{}, fmt.Errorf("build geocode request: %w", err)
	}

	resp, err := r.Client.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("geocode %q: %w", query, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("geocode %q: unexpected status %s", query, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Place{}, fmt.Errorf("read geocode response: %w", err)
	}

	var decoded geocodeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return Place{}, fmt.Errorf("parse geocode response: %w", err)
	}
	if len(decoded.Results) == 0 {
		return Place{}, fmt.Errorf("geocode %q: no results", query)
	}

	res := decoded.Results[0]
	return Place{
		Lat:            res.Latitude,
		Lng:            res.Longitude,
		Name:           res.Name,
		UTCOffsetHours: offsetForTimezone(res.Timezone, res.Longitude),
	}, nil
}

// Resolve handles both input forms, falling back to Default on failure
func (r *Resolver) Resolve(ctx context.Context, query string) (Place, error) {
	if query == "" {
		return Default, nil
	}
	if p, ok := Parse(query); ok {
		return p, nil
	}
	p, err := r.Geocode(ctx, query)
	if err != nil {
		return Default, err
	}
	return p, nil
}

func offsetForTimezone(tz string, lng float64) float64 {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			_, offset := time.Now().In(loc).Zone()
			return float64(offset) / 3600
		}
	}
	return math.Round(lng / 15)
}
