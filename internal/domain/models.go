package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/mizutama/livability/pkg/geo"
)

// AnalysisID uniquely identifies one analysis run
type AnalysisID = uuid.UUID

// Category identifies one livability domain
type Category string

const (
	CategoryEducation   Category = "education"
	CategoryMedical     Category = "medical"
	CategoryTransport   Category = "transport"
	CategoryShopping    Category = "shopping"
	CategoryDining      Category = "dining"
	CategorySafety      Category = "safety"
	CategoryEnvironment Category = "environment"
	CategoryCultural    Category = "cultural"
)

// Categories lists all scored domains in presentation order.
func Categories() []Category {
	return []Category{
		CategoryEducation,
		CategoryMedical,
		CategoryTransport,
		CategoryShopping,
		CategoryDining,
		CategorySafety,
		CategoryEnvironment,
		CategoryCultural,
	}
}

// Facility is a normalized point-of-interest record. Distance is always
// computed locally against the query coordinate, never taken from the
// provider. Immutable once produced.
type Facility struct {
	Name           string
	ExternalID     string
	DistanceMeters float64
	Rating         float64
	RatingCount    int
	PriceLevel     int
	Types          []string
	Tag            string
}

// HasType reports whether the facility carries the given provider type.
func (f Facility) HasType(t string) bool {
	for _, ft := range f.Types {
		if ft == t {
			return true
		}
	}
	return false
}

// HasAnyType reports whether the facility carries at least one of the types.
func (f Facility) HasAnyType(types []string) bool {
	for _, t := range types {
		if f.HasType(t) {
			return true
		}
	}
	return false
}

// DomainResult is the aggregated facility list for one domain, nearest first.
// Built once per domain per request and never mutated afterwards.
type DomainResult struct {
	Total      int
	Facilities []Facility
}

// Empty reports whether the aggregation produced no usable facilities.
func (r DomainResult) Empty() bool {
	return r.Total == 0 || len(r.Facilities) == 0
}

// ScoreBreakdown records sub-score contributions for observability.
type ScoreBreakdown struct {
	Base      float64 `json:"base"`
	Proximity float64 `json:"proximity"`
	Quality   float64 `json:"quality"`
	Diversity float64 `json:"diversity"`
}

// DomainScore is one domain's 0-100 score. Values are clamped to [10,100];
// scores never drop below 10 so a zero-signal domain cannot dominate the
// composite average.
type DomainScore struct {
	Value       float64        `json:"score"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
	DefaultUsed bool           `json:"default_used"`
}

// RiskProfile carries the external safety signals for one coordinate.
type RiskProfile struct {
	FloodRisk      float64 `json:"flood_risk"`      // [0,1]
	EarthquakeRisk float64 `json:"earthquake_risk"` // [0,1]
	CrimeSafety    float64 `json:"crime_safety"`    // [0,100]
}

// Grade is a letter bucket over the composite score.
type Grade string

// CompositeResult is the full outcome of one analysis request. Created fresh
// per request; there is no cross-request caching.
type CompositeResult struct {
	ID          AnalysisID
	Address     string
	Location    geo.Point
	TotalScore  float64
	Grade       Grade
	Scores      map[Category]DomainScore
	Facilities  map[Category]DomainResult
	GeneratedAt time.Time
}
