package livability

import (
	"context"
	"sort"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/mizutama/livability/internal/domain"
	"github.com/mizutama/livability/pkg/geo"
	"github.com/mizutama/livability/pkg/logging"
)

// defaultQueryInterval spaces out category queries within one domain. The
// upstream is rate limited, so categories run sequentially with a fixed
// delay; the extra latency is an accepted trade-off. Do not parallelize
// these calls without re-validating upstream limits.
const defaultQueryInterval = 100 * time.Millisecond

// aggregator collects, merges, and filters facilities for one domain.
type aggregator struct {
	querier       *querier
	queryInterval time.Duration
	log           *logging.Logger
}

func newAggregator(provider PlacesProvider, interval time.Duration, log *logging.Logger) *aggregator {
	if interval <= 0 {
		interval = defaultQueryInterval
	}
	return &aggregator{
		querier:       &querier{provider: provider, log: log},
		queryInterval: interval,
		log:           log,
	}
}

// collect runs the domain's category queries sequentially, merges and
// deduplicates the results, sorts them nearest first, and applies the
// domain cutoff. A failed category simply contributes nothing; only a
// missing provider credential short-circuits the whole domain to an empty
// result.
func (a *aggregator) collect(ctx context.Context, origin geo.Point, cat domain.Category) (domain.DomainResult, error) {
	plan, ok := domainPlans[cat]
	if !ok {
		return domain.DomainResult{}, eris.Errorf("livability: no collection plan for domain %q", cat)
	}

	limiter := rate.NewLimiter(rate.Every(a.queryInterval), 1)

	var merged []domain.Facility
	for _, spec := range plan.queries {
		if err := limiter.Wait(ctx); err != nil {
			return domain.DomainResult{}, eris.Wrapf(err, "livability: %s aggregation interrupted", cat)
		}

		found, err := a.querier.search(ctx, origin, spec)
		if err != nil {
			if eris.Is(err, ErrNoCredential) {
				a.log.Warn("places credential missing, domain degraded", "domain", cat)
				return domain.DomainResult{}, nil
			}
			return domain.DomainResult{}, err
		}

		for _, f := range found {
			if len(plan.includeTypes) > 0 && !f.HasAnyType(plan.includeTypes) {
				continue
			}
			if len(plan.excludeTypes) > 0 && f.HasAnyType(plan.excludeTypes) {
				continue
			}
			merged = append(merged, f)
		}
	}

	unique := dedupe(merged)

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].DistanceMeters < unique[j].DistanceMeters
	})

	kept := unique[:0:0]
	for _, f := range unique {
		if f.DistanceMeters <= plan.cutoffMeters {
			kept = append(kept, f)
		}
	}

	a.log.Debug("domain aggregation complete",
		"domain", cat,
		"merged", len(merged),
		"unique", len(unique),
		"within_cutoff", len(kept),
	)

	return domain.DomainResult{
		Total:      len(kept),
		Facilities: kept,
	}, nil
}

// dedupe drops repeated facilities, keyed by external place ID when present
// and by name otherwise. The first occurrence wins, so the earliest category
// in the plan keeps the record.
func dedupe(in []domain.Facility) []domain.Facility {
	seen := make(map[string]struct{}, len(in))
	out := make([]domain.Facility, 0, len(in))

	for _, f := range in {
		key := f.ExternalID
		if key == "" {
			key = f.Name
		}
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}

	return out
}
