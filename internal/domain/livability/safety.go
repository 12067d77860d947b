package livability

import (
	"math"

	"github.com/mizutama/livability/internal/domain"
)

// Safety is the one domain where external numeric signals modulate a
// facility-based score instead of the facility list alone driving it. The
// asymmetry is intentional: safety is judged by both emergency
// infrastructure presence and ambient risk.

// scoreSafetyFacilities produces the infrastructure half of the safety
// score: base (≤40) + emergency response bonus (≤30) + proximity bonus (≤30).
func scoreSafetyFacilities(r domain.DomainResult) domain.DomainScore {
	b := domain.ScoreBreakdown{
		Base: math.Min(40, float64(r.Total)*8),
	}

	b.Quality = responseBonus(r.Facilities)
	b.Proximity = safetyProximityBonus(r.Facilities)

	return sumBreakdown(b)
}

// responseBonus rates expected emergency response from facility category,
// distance, and round-the-clock availability. Police and fire stations are
// staffed around the clock; hospitals may not be.
func responseBonus(facilities []domain.Facility) float64 {
	if len(facilities) == 0 {
		return 0
	}

	sum := 0.0
	for _, f := range facilities {
		weight := 0.5
		available := 1.0
		switch {
		case f.HasType("fire_station"):
			weight = 1.0
			available = 1.2
		case f.HasType("police"):
			weight = 0.9
			available = 1.2
		case f.HasType("hospital"):
			weight = 0.8
		}

		distFactor := 0.0
		switch {
		case f.DistanceMeters <= 500:
			distFactor = 1.0
		case f.DistanceMeters <= 1000:
			distFactor = 0.7
		case f.DistanceMeters <= 2000:
			distFactor = 0.4
		}

		sum += weight * distFactor * available
	}

	responseScore := sum / float64(len(facilities))
	return math.Min(30, round1(responseScore*30))
}

// safetyProximityBonus sums weighted counts over 500m/1km/2km bands.
func safetyProximityBonus(facilities []domain.Facility) float64 {
	bonus := 0.0
	for _, f := range facilities {
		switch {
		case f.DistanceMeters <= 500:
			bonus += 5
		case f.DistanceMeters <= 1000:
			bonus += 3
		case f.DistanceMeters <= 2000:
			bonus += 1
		}
	}
	return math.Min(30, bonus)
}

// adjustSafety folds the external risk signals into the facility score:
// a crime bonus of up to 10 points and a disaster penalty of up to 50.
func adjustSafety(facilityScore domain.DomainScore, disaster DisasterRisk, crime CrimeSafety) domain.DomainScore {
	crimeBonus := math.Max(0, math.Min(10, crime.SafetyScore/10))
	disasterPenalty := math.Max(0, math.Min(50, (disaster.Flood+disaster.Earthquake)*25))

	adjusted := facilityScore
	adjusted.Value = clampScore(facilityScore.Value + crimeBonus - disasterPenalty)
	return adjusted
}
