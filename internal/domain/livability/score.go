package livability

import (
	"math"

	"github.com/mizutama/livability/internal/domain"
)

// Score bounds. A domain is never scored below the floor so that a single
// zero-signal domain cannot drag the composite mean toward zero.
const (
	scoreFloor   = 10.0
	scoreCeiling = 100.0
)

// defaultScores are returned when a domain's aggregation yields nothing,
// whether from an upstream outage or a genuinely empty area. Computing on
// empty data would produce NaN averages, so the defaults stand in instead.
var defaultScores = map[domain.Category]float64{
	domain.CategoryEducation:   50.0,
	domain.CategoryMedical:     50.0,
	domain.CategoryTransport:   40.0,
	domain.CategoryShopping:    50.0,
	domain.CategoryDining:      45.0,
	domain.CategorySafety:      50.0,
	domain.CategoryEnvironment: 60.0,
	domain.CategoryCultural:    40.0,
}

// DefaultScore exposes the documented fallback for a domain.
func DefaultScore(cat domain.Category) domain.DomainScore {
	return domain.DomainScore{
		Value:       defaultScores[cat],
		DefaultUsed: true,
	}
}

// ScoreDomain dispatches to the per-domain scoring function. The safety
// domain is scored separately because external risk signals modulate it; see
// scoreSafetyFacilities and adjustSafety.
func ScoreDomain(cat domain.Category, result domain.DomainResult) domain.DomainScore {
	if result.Empty() {
		return DefaultScore(cat)
	}

	var s domain.DomainScore
	switch cat {
	case domain.CategoryEducation:
		s = scoreEducation(result)
	case domain.CategoryMedical:
		s = scoreMedical(result)
	case domain.CategoryTransport:
		s = scoreTransport(result)
	case domain.CategoryShopping:
		s = scoreShopping(result)
	case domain.CategoryDining:
		s = scoreDining(result)
	case domain.CategorySafety:
		s = scoreSafetyFacilities(result)
	case domain.CategoryEnvironment:
		s = scoreEnvironment(result)
	case domain.CategoryCultural:
		s = scoreCultural(result)
	default:
		return DefaultScore(cat)
	}

	s.Value = clampScore(s.Value)
	return s
}

func clampScore(v float64) float64 {
	if math.IsNaN(v) {
		return scoreFloor
	}
	if v < scoreFloor {
		return scoreFloor
	}
	if v > scoreCeiling {
		return scoreCeiling
	}
	return round1(v)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// sumBreakdown totals the sub-scores into a final value.
func sumBreakdown(b domain.ScoreBreakdown) domain.DomainScore {
	return domain.DomainScore{
		Value:     b.Base + b.Proximity + b.Quality + b.Diversity,
		Breakdown: b,
	}
}

// bandPoints awards tiered per-facility points over the nearest maxCount
// facilities: thresholds[i] meters earns points[i], anything past the last
// threshold earns farPoints. The sum is capped.
func bandPoints(facilities []domain.Facility, maxCount int, thresholds []float64, points []float64, farPoints, limit float64) float64 {
	total := 0.0
	for i, f := range facilities {
		if i >= maxCount {
			break
		}
		awarded := farPoints
		for j, th := range thresholds {
			if f.DistanceMeters <= th {
				awarded = points[j]
				break
			}
		}
		total += awarded
	}
	return math.Min(limit, total)
}

// nearestDistance returns the smallest facility distance, or fallback when
// the list is empty.
func nearestDistance(facilities []domain.Facility, fallback float64) float64 {
	nearest := fallback
	for _, f := range facilities {
		if f.DistanceMeters < nearest {
			nearest = f.DistanceMeters
		}
	}
	return nearest
}

// ratingStats averages rating and review counts over rated facilities only.
// ok is false when no facility carries a rating.
func ratingStats(facilities []domain.Facility) (avgRating, avgReviews float64, ok bool) {
	n := 0
	for _, f := range facilities {
		if f.Rating > 0 {
			avgRating += f.Rating
			avgReviews += float64(f.RatingCount)
			n++
		}
	}
	if n == 0 {
		return 0, 0, false
	}
	return avgRating / float64(n), avgReviews / float64(n), true
}
