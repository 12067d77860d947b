// Package geocode resolves street addresses to coordinates via the Google
// Geocoding API.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode"

// ErrNotFound is returned when no provider result matches the address.
var ErrNotFound = errors.New("geocode: address not found")

// Config defines Geocoding API client settings
type Config struct {
	APIKey     string
	BaseURL    string
	Language   string
	HTTPClient *http.Client
}

// Client queries the Google Geocoding API
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

// Result is a resolved address position.
type Result struct {
	FormattedAddress string
	Lat              float64
	Lng              float64
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// NewClient instantiates a Geocoding API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("geocode: api key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	language := cfg.Language
	if language == "" {
		language = "ja"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		language:   language,
		httpClient: httpClient,
	}, nil
}

// Resolve geocodes an address. Returns ErrNotFound when the provider has no
// match for it.
func (c *Client) Resolve(ctx context.Context, address string) (Result, error) {
	if c == nil {
		return Result{}, fmt.Errorf("geocode: client is nil")
	}
	if address == "" {
		return Result{}, fmt.Errorf("geocode: address is required")
	}

	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("address", address)
	values.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/json?"+values.Encode(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Result{}, fmt.Errorf("geocode: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Result{}, fmt.Errorf("geocode: decode response: %w", err)
	}

	switch payload.Status {
	case "OK":
	case "ZERO_RESULTS":
		return Result{}, ErrNotFound
	default:
		return Result{}, fmt.Errorf("geocode: non-success status %q", payload.Status)
	}

	if len(payload.Results) == 0 {
		return Result{}, ErrNotFound
	}

	top := payload.Results[0]
	return Result{
		FormattedAddress: top.FormattedAddress,
		Lat:              top.Geometry.Location.Lat,
		Lng:              top.Geometry.Location.Lng,
	}, nil
}
