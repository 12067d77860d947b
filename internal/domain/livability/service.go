package livability

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"github.com/mizutama/livability/internal/domain"
	"github.com/mizutama/livability/pkg/geo"
	"github.com/mizutama/livability/pkg/logging"
)

// Service runs the full livability pipeline for one coordinate.
type Service interface {
	Analyze(ctx context.Context, origin geo.Point) (domain.CompositeResult, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	provider      PlacesProvider
	risk          RiskProvider
	log           *logging.Logger
	clock         func() time.Time
	queryInterval time.Duration
}

// WithPlacesProvider sets the nearby-search source
func WithPlacesProvider(p PlacesProvider) Option {
	return func(c *config) {
		c.provider = p
	}
}

// WithRiskProvider sets the external risk collaborator
func WithRiskProvider(r RiskProvider) Option {
	return func(c *config) {
		c.risk = r
	}
}

// WithLogger sets the logger
func WithLogger(log *logging.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithQueryInterval overrides the inter-category throttle delay
func WithQueryInterval(d time.Duration) Option {
	return func(c *config) {
		c.queryInterval = d
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock:         time.Now,
		queryInterval: defaultQueryInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.provider == nil {
		return nil, eris.New("livability.Service: places provider is required")
	}
	if cfg.risk == nil {
		return nil, eris.New("livability.Service: risk provider is required")
	}
	if cfg.log == nil {
		cfg.log = logging.NewNop()
	}

	return &service{
		aggregator: newAggregator(cfg.provider, cfg.queryInterval, cfg.log),
		risk:       cfg.risk,
		log:        cfg.log,
		clock:      cfg.clock,
	}, nil
}

// NewServiceWithDeps creates a Service from direct dependencies (Wire-compatible)
func NewServiceWithDeps(provider PlacesProvider, risk RiskProvider, log *logging.Logger) (Service, error) {
	return NewService(
		WithPlacesProvider(provider),
		WithRiskProvider(risk),
		WithLogger(log),
	)
}

type service struct {
	aggregator *aggregator
	risk       RiskProvider
	log        *logging.Logger
	clock      func() time.Time
}

// domainOutcome is the tagged fan-in result for one domain pipeline. Failure
// travels as an explicit field, never as a value whose dynamic type has to
// be inspected.
type domainOutcome struct {
	category domain.Category
	score    domain.DomainScore
	result   domain.DomainResult
	err      error
}

// Analyze fans out all domain pipelines concurrently and assembles the
// composite. Each domain is failure-isolated: a panic or error inside one
// pipeline substitutes that domain's documented default and never cancels
// siblings. Only failures outside the per-domain boundary propagate.
func (s *service) Analyze(ctx context.Context, origin geo.Point) (domain.CompositeResult, error) {
	if !origin.Valid() {
		return domain.CompositeResult{}, eris.Errorf("livability: coordinates out of range (%f, %f)", origin.Lat, origin.Lng)
	}

	started := s.clock()
	categories := domain.Categories()
	outcomes := make([]domainOutcome, len(categories))

	g, gctx := errgroup.WithContext(ctx)
	for i, cat := range categories {
		g.Go(func() error {
			outcomes[i] = s.runDomain(gctx, origin, cat)
			// Failures are carried in the outcome; returning them here
			// would cancel sibling pipelines.
			return nil
		})
	}
	_ = g.Wait()

	scores := make(map[domain.Category]domain.DomainScore, len(categories))
	facilities := make(map[domain.Category]domain.DomainResult, len(categories))
	sum := 0.0

	for _, out := range outcomes {
		if out.err != nil {
			s.log.Error("domain pipeline failed, substituting default",
				"domain", out.category,
				"err", out.err,
			)
			out.score = DefaultScore(out.category)
			out.result = domain.DomainResult{}
		}
		scores[out.category] = out.score
		facilities[out.category] = out.result
		sum += out.score.Value
	}

	total := round1(sum / float64(len(categories)))

	result := domain.CompositeResult{
		ID:          uuid.New(),
		Location:    origin,
		TotalScore:  total,
		Grade:       GradeFor(total),
		Scores:      scores,
		Facilities:  facilities,
		GeneratedAt: started.UTC(),
	}

	s.log.Info("analysis complete",
		"analysis_id", result.ID,
		"total_score", result.TotalScore,
		"grade", result.Grade,
		"elapsed", s.clock().Sub(started),
	)

	return result, nil
}

// runDomain executes one domain's collect-then-score pipeline, converting
// panics into tagged failures.
func (s *service) runDomain(ctx context.Context, origin geo.Point, cat domain.Category) (out domainOutcome) {
	out.category = cat

	defer func() {
		if r := recover(); r != nil {
			out.err = eris.Errorf("livability: %s pipeline panicked: %v", cat, r)
		}
	}()

	result, err := s.aggregator.collect(ctx, origin, cat)
	if err != nil {
		out.err = err
		return out
	}

	out.result = result
	out.score = ScoreDomain(cat, result)

	if cat == domain.CategorySafety {
		out.score = s.applyRiskSignals(ctx, origin, out.score)
	}

	return out
}

// applyRiskSignals folds disaster and crime signals into the safety score.
// A failed risk lookup leaves the facility-based score unadjusted; the
// signal is supplementary, not load-bearing.
func (s *service) applyRiskSignals(ctx context.Context, origin geo.Point, facilityScore domain.DomainScore) domain.DomainScore {
	disaster, err := s.risk.DisasterRisk(ctx, origin)
	if err != nil {
		s.log.Warn("disaster risk lookup failed, skipping adjustment", "err", err)
		return facilityScore
	}

	crime, err := s.risk.CrimeSafety(ctx, origin)
	if err != nil {
		s.log.Warn("crime safety lookup failed, skipping adjustment", "err", err)
		return facilityScore
	}

	return adjustSafety(facilityScore, disaster, crime)
}
