// Package places wraps the Google Places nearby-search REST endpoint.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultBaseURL  = "https://maps.googleapis.com/maps/api/place"
	defaultLanguage = "ja"
)

// ErrNoCredential is returned when the client was built without an API key.
// Callers treat this as a total provider outage, not a transient failure.
var ErrNoCredential = errors.New("places: no API key configured")

// statusZeroResults is a successful response with an empty result set.
const statusZeroResults = "ZERO_RESULTS"

// NewClient instantiates a Places API client. An empty API key is allowed so
// the service can boot in degraded mode; searches will fail with
// ErrNoCredential until a key is provided.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	language := cfg.Language
	if language == "" {
		language = defaultLanguage
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		language:   language,
		httpClient: httpClient,
	}
}

// Configured reports whether the client holds an API key.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// NearbySearch queries places of one type around a coordinate. The radius is
// advisory on the provider side; callers must re-filter by computed distance.
func (c *Client) NearbySearch(ctx context.Context, lat, lng float64, placeType string, radiusMeters int) ([]Place, error) {
	if c == nil {
		return nil, fmt.Errorf("places: client is nil")
	}
	if c.apiKey == "" {
		return nil, ErrNoCredential
	}

	u, err := c.buildSearchURL(lat, lng, placeType, radiusMeters)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("places: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("places: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload nearbySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("places: decode response: %w", err)
	}

	if payload.Status == statusZeroResults {
		return nil, nil
	}
	if payload.Status != "OK" {
		return nil, fmt.Errorf("places: non-success status %q: %s", payload.Status, payload.ErrorMessage)
	}

	out := make([]Place, 0, len(payload.Results))
	for _, raw := range payload.Results {
		out = append(out, mapPlace(raw))
	}

	return out, nil
}

func (c *Client) buildSearchURL(lat, lng float64, placeType string, radiusMeters int) (string, error) {
	if placeType == "" {
		return "", fmt.Errorf("places: place type is required")
	}
	if radiusMeters <= 0 {
		return "", fmt.Errorf("places: radius must be positive, got %d", radiusMeters)
	}

	u, err := url.Parse(c.baseURL + "/nearbysearch/json")
	if err != nil {
		return "", fmt.Errorf("places: parse base url: %w", err)
	}

	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("location", fmt.Sprintf("%.6f,%.6f", lat, lng))
	values.Set("radius", strconv.Itoa(radiusMeters))
	values.Set("type", placeType)
	values.Set("language", c.language)

	u.RawQuery = values.Encode()
	return u.String(), nil
}

func mapPlace(raw rawPlace) Place {
	p := Place{
		Name:             raw.Name,
		PlaceID:          raw.PlaceID,
		Rating:           raw.Rating,
		UserRatingsTotal: raw.UserRatingsTotal,
		PriceLevel:       raw.PriceLevel,
		Types:            raw.Types,
		Vicinity:         raw.Vicinity,
	}
	if raw.Geometry != nil {
		p.Location = &Location{
			Lat: raw.Geometry.Location.Lat,
			Lng: raw.Geometry.Location.Lng,
		}
	}
	return p
}
