// Package googleplaces adapts the pkg/places client to the livability
// PlacesProvider interface.
package googleplaces

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/mizutama/livability/internal/domain/livability"
	"github.com/mizutama/livability/internal/metrics"
	"github.com/mizutama/livability/pkg/geo"
	"github.com/mizutama/livability/pkg/places"
)

// searchClient describes the subset of the places client used by the provider.
type searchClient interface {
	NearbySearch(ctx context.Context, lat, lng float64, placeType string, radiusMeters int) ([]places.Place, error)
	Configured() bool
}

// Provider implements livability.PlacesProvider using the Google Places API
type Provider struct {
	client searchClient
}

// NewProvider builds a Google Places provider
func NewProvider(client *places.Client) (*Provider, error) {
	if client == nil {
		return nil, eris.New("googleplaces provider: client is required")
	}
	return &Provider{client: client}, nil
}

// newProviderForTest wires an arbitrary search client.
func newProviderForTest(client searchClient) *Provider {
	return &Provider{client: client}
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return "googleplaces"
}

// NearbySearch queries one place type and returns raw records. Records
// without geometry come through with a nil Location; the caller drops them.
func (p *Provider) NearbySearch(ctx context.Context, origin geo.Point, placeType string, radiusMeters int) ([]livability.RawPlace, error) {
	if p == nil || p.client == nil {
		return nil, eris.New("googleplaces provider: client is nil")
	}
	if !p.client.Configured() {
		return nil, livability.ErrNoCredential
	}

	found, err := p.client.NearbySearch(ctx, origin.Lat, origin.Lng, placeType, radiusMeters)
	metrics.RecordProviderQuery(placeType, err == nil)
	if err != nil {
		if eris.Is(err, places.ErrNoCredential) {
			return nil, livability.ErrNoCredential
		}
		return nil, eris.Wrapf(err, "googleplaces: %s search failed", placeType)
	}

	out := make([]livability.RawPlace, 0, len(found))
	for _, pl := range found {
		raw := livability.RawPlace{
			Name:        pl.Name,
			ExternalID:  pl.PlaceID,
			Rating:      pl.Rating,
			RatingCount: pl.UserRatingsTotal,
			PriceLevel:  pl.PriceLevel,
			Types:       pl.Types,
		}
		if pl.Location != nil {
			raw.Location = &geo.Point{Lat: pl.Location.Lat, Lng: pl.Location.Lng}
		}
		out = append(out, raw)
	}

	return out, nil
}

var _ livability.PlacesProvider = (*Provider)(nil)
