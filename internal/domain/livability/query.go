package livability

import (
	"context"
	"sort"

	"github.com/rotisserie/eris"

	"github.com/mizutama/livability/internal/domain"
	"github.com/mizutama/livability/pkg/geo"
	"github.com/mizutama/livability/pkg/logging"
)

const (
	// maxRadiusMeters clamps the advisory radius sent upstream. Larger
	// requests are silently reduced; the provider ignores extremes anyway.
	maxRadiusMeters = 1500

	// hardCeilingMeters is the absolute distance ceiling for any facility
	// that survives a query, regardless of the requested radius. The
	// upstream radius parameter is advisory and results have been observed
	// well outside it. Equal to the largest domain cutoff; the per-domain
	// cutoff applies the tighter second filter later.
	hardCeilingMeters = 3000.0
)

// querier performs one category-scoped nearby search, annotates results with
// locally computed distance, and drops anything past the hard cap.
type querier struct {
	provider PlacesProvider
	log      *logging.Logger
}

// search returns facilities for one CategorySpec, nearest first. Upstream
// unavailability (network failure, non-success status) degrades to an empty
// slice: this layer never aborts the pipeline. The one exception is
// ErrNoCredential, which is passed through so the caller can short-circuit
// the whole domain.
func (q *querier) search(ctx context.Context, origin geo.Point, spec CategorySpec) ([]domain.Facility, error) {
	radius := spec.RadiusMeters
	if radius > maxRadiusMeters {
		radius = maxRadiusMeters
	}

	raw, err := q.provider.NearbySearch(ctx, origin, spec.PlaceType, radius)
	if err != nil {
		if eris.Is(err, ErrNoCredential) {
			return nil, err
		}
		// Expected and frequent: degrade to an empty contribution.
		q.log.Debug("nearby search degraded to empty",
			"provider", q.provider.Name(),
			"place_type", spec.PlaceType,
			"err", err,
		)
		return nil, nil
	}

	out := make([]domain.Facility, 0, len(raw))
	for _, p := range raw {
		if p.Location == nil {
			continue
		}
		dist := geo.Distance(origin, *p.Location)
		if dist > hardCeilingMeters {
			continue
		}
		out = append(out, domain.Facility{
			Name:           p.Name,
			ExternalID:     p.ExternalID,
			DistanceMeters: dist,
			Rating:         p.Rating,
			RatingCount:    p.RatingCount,
			PriceLevel:     p.PriceLevel,
			Types:          p.Types,
			Tag:            spec.PlaceType,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceMeters < out[j].DistanceMeters
	})

	return out, nil
}
