//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/mizutama/livability/internal/config"
	"github.com/mizutama/livability/internal/domain/livability"
	"github.com/mizutama/livability/internal/domain/livability/providers/googleplaces"
	"github.com/mizutama/livability/internal/domain/livability/providers/simrisk"
	"github.com/mizutama/livability/internal/httpapi"
	"github.com/mizutama/livability/pkg/geocode"
	"github.com/mizutama/livability/pkg/logging"
)

// InitializeServer creates the HTTP server with all resources wired up
func InitializeServer(cfg config.Config, log *logging.Logger) (*httpapi.Server, error) {
	wire.Build(
		// Infrastructure - Google Maps clients
		providePlacesClient,
		provideGeocodeClient,
		wire.Bind(new(httpapi.Geocoder), new(*geocode.Client)),

		// Providers
		googleplaces.NewProvider,
		wire.Bind(new(livability.PlacesProvider), new(*googleplaces.Provider)),
		simrisk.NewProvider,
		wire.Bind(new(livability.RiskProvider), new(*simrisk.Provider)),

		// Services
		provideService,

		// HTTP surface
		provideHandlers,
		httpapi.NewServer,
	)

	return &httpapi.Server{}, nil
}
