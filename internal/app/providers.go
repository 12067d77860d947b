package app

import (
	"github.com/mizutama/livability/internal/config"
	"github.com/mizutama/livability/internal/domain/livability"
	"github.com/mizutama/livability/internal/httpapi"
	"github.com/mizutama/livability/pkg/geocode"
	"github.com/mizutama/livability/pkg/logging"
	"github.com/mizutama/livability/pkg/places"
)

// providePlacesClient builds the Google Places client from config
func providePlacesClient(cfg config.Config) *places.Client {
	return places.NewClient(places.Config{
		APIKey:   cfg.GoogleMaps.APIKey,
		Language: cfg.GoogleMaps.Language,
	})
}

// provideGeocodeClient builds the Google Geocoding client from config
func provideGeocodeClient(cfg config.Config) (*geocode.Client, error) {
	return geocode.NewClient(geocode.Config{
		APIKey:   cfg.GoogleMaps.APIKey,
		Language: cfg.GoogleMaps.Language,
	})
}

// provideService assembles the analysis service with the configured throttle
func provideService(
	cfg config.Config,
	provider livability.PlacesProvider,
	risk livability.RiskProvider,
	log *logging.Logger,
) (livability.Service, error) {
	return livability.NewService(
		livability.WithPlacesProvider(provider),
		livability.WithRiskProvider(risk),
		livability.WithLogger(log),
		livability.WithQueryInterval(cfg.QueryInterval),
	)
}

// provideHandlers wires the HTTP handler set
func provideHandlers(
	analyzer livability.Service,
	geocoder httpapi.Geocoder,
	log *logging.Logger,
	placesClient *places.Client,
) *httpapi.Handlers {
	return httpapi.NewHandlers(analyzer, geocoder, log, placesClient.Configured())
}
