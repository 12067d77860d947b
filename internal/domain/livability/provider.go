package livability

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/mizutama/livability/pkg/geo"
)

// ErrNoCredential marks a total provider outage: the places provider has no
// API credential at all. An affected domain short-circuits to an empty
// result instead of issuing further queries.
var ErrNoCredential = eris.New("livability: places provider has no credential")

// RawPlace is one unprocessed provider record. Location is nil when the
// provider omitted geometry; such records are dropped during annotation.
type RawPlace struct {
	Name        string
	ExternalID  string
	Rating      float64
	RatingCount int
	PriceLevel  int
	Types       []string
	Location    *geo.Point
}

// PlacesProvider represents an external nearby-search source (Google Places,
// a fixture in tests, etc.). The radius is advisory; returned records may lie
// outside it and must be re-filtered by computed distance.
type PlacesProvider interface {
	// e.g. "googleplaces"
	Name() string

	NearbySearch(ctx context.Context, origin geo.Point, placeType string, radiusMeters int) ([]RawPlace, error)
}

// DisasterRisk carries opaque [0,1] hazard signals for a coordinate.
type DisasterRisk struct {
	Flood      float64
	Earthquake float64
}

// CrimeSafety carries an opaque [0,100] ambient-safety signal.
type CrimeSafety struct {
	SafetyScore float64
}

// RiskProvider supplies the external risk signals consumed by the safety
// domain only. Both signals are treated as opaque numbers.
type RiskProvider interface {
	DisasterRisk(ctx context.Context, origin geo.Point) (DisasterRisk, error)
	CrimeSafety(ctx context.Context, origin geo.Point) (CrimeSafety, error)
}
