package places

import "net/http"

// Config defines Google Places API client settings
type Config struct {
	APIKey     string
	BaseURL    string
	Language   string
	HTTPClient *http.Client
}

// Client queries the Google Places nearby-search API
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

type nearbySearchResponse struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message"`
	Results      []rawPlace   `json:"results"`
}

type rawPlace struct {
	Name             string   `json:"name"`
	PlaceID          string   `json:"place_id"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	PriceLevel       int      `json:"price_level"`
	Types            []string `json:"types"`
	Vicinity         string   `json:"vicinity"`
	Geometry         *struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
}

// Place is a normalized nearby-search result. Location is nil when the
// provider omitted geometry for the record.
type Place struct {
	Name             string
	PlaceID          string
	Rating           float64
	UserRatingsTotal int
	PriceLevel       int
	Types            []string
	Vicinity         string
	Location         *Location
}

// Location is the provider-reported position of a place.
type Location struct {
	Lat float64
	Lng float64
}
