package livability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizutama/livability/internal/domain"
)

func facilityAt(meters float64, rating float64, count int, types ...string) domain.Facility {
	return domain.Facility{
		Name:           "fixture",
		DistanceMeters: meters,
		Rating:         rating,
		RatingCount:    count,
		Types:          types,
	}
}

func resultOf(facilities ...domain.Facility) domain.DomainResult {
	return domain.DomainResult{Total: len(facilities), Facilities: facilities}
}

func TestDefaultScores(t *testing.T) {
	want := map[domain.Category]float64{
		domain.CategoryEducation:   50,
		domain.CategoryMedical:     50,
		domain.CategoryTransport:   40,
		domain.CategoryShopping:    50,
		domain.CategoryDining:      45,
		domain.CategorySafety:      50,
		domain.CategoryEnvironment: 60,
		domain.CategoryCultural:    40,
	}

	for cat, value := range want {
		got := DefaultScore(cat)
		assert.Equal(t, value, got.Value, "domain %s", cat)
		assert.True(t, got.DefaultUsed, "domain %s", cat)
	}
}

func TestScoreDomainEmptyUsesDefault(t *testing.T) {
	for _, cat := range domain.Categories() {
		got := ScoreDomain(cat, domain.DomainResult{})
		assert.True(t, got.DefaultUsed, "domain %s", cat)
		assert.Equal(t, DefaultScore(cat).Value, got.Value, "domain %s", cat)
	}
}

func TestScoreShoppingDeterministic(t *testing.T) {
	// Four unrated stores: base 4*3=12, bands 5+3+2+1=11, no quality signal.
	r := resultOf(
		facilityAt(100, 0, 0, "supermarket"),
		facilityAt(400, 0, 0, "supermarket"),
		facilityAt(900, 0, 0, "convenience_store"),
		facilityAt(1800, 0, 0, "department_store"),
	)

	got := ScoreDomain(domain.CategoryShopping, r)
	require.False(t, got.DefaultUsed)
	assert.Equal(t, 12.0, got.Breakdown.Base)
	assert.Equal(t, 11.0, got.Breakdown.Proximity)
	assert.Equal(t, 0.0, got.Breakdown.Quality)
	assert.Equal(t, 23.0, got.Value)
}

func TestScoreTransportDeterministic(t *testing.T) {
	// Two close, well-rated stations: base 16, bands 15+15=30,
	// quality 2*8.33=16.66.
	r := resultOf(
		facilityAt(250, 4.5, 1200, "train_station"),
		facilityAt(280, 4.2, 800, "subway_station"),
	)

	got := ScoreDomain(domain.CategoryTransport, r)
	assert.Equal(t, 16.0, got.Breakdown.Base)
	assert.Equal(t, 30.0, got.Breakdown.Proximity)
	assert.InDelta(t, 16.66, got.Breakdown.Quality, 0.01)
	assert.InDelta(t, 62.7, got.Value, 0.01)
}

func TestScoreEducationDiversity(t *testing.T) {
	r := resultOf(
		facilityAt(300, 0, 0, "primary_school"),
		facilityAt(700, 0, 0, "university"),
		facilityAt(900, 0, 0, "school"),
	)

	got := ScoreDomain(domain.CategoryEducation, r)
	// Three distinct stages at 6.25 apiece.
	assert.InDelta(t, 18.75, got.Breakdown.Diversity, 0.001)
}

func TestScoreEnvironmentNearestDriven(t *testing.T) {
	r := resultOf(
		facilityAt(250, 0, 0, "park"),
		facilityAt(1200, 0, 0, "cemetery"),
	)

	got := ScoreDomain(domain.CategoryEnvironment, r)
	assert.Equal(t, 30.0, got.Breakdown.Proximity)
	// park 8 + cemetery 4
	assert.Equal(t, 12.0, got.Breakdown.Diversity)
	assert.Equal(t, 52.0, got.Value)
}

func TestScoreCulturalLongRange(t *testing.T) {
	// A single museum at 2300m still earns mid-range proximity.
	got := ScoreDomain(domain.CategoryCultural, resultOf(facilityAt(2300, 0, 0, "museum")))
	assert.Equal(t, 15.0, got.Breakdown.Proximity)
	assert.Equal(t, 5.0, got.Breakdown.Diversity)
	assert.Equal(t, 24.0, got.Value)
}

func TestScoreBounds(t *testing.T) {
	rich := make([]domain.Facility, 0, 60)
	for i := 0; i < 60; i++ {
		rich = append(rich, facilityAt(50, 4.9, 900,
			"school", "primary_school", "university", "hospital", "pharmacy",
			"dentist", "train_station", "supermarket", "restaurant", "park",
			"library", "museum", "movie_theater", "gym", "art_gallery",
			"place_of_worship", "cemetery", "tourist_attraction",
			"police", "fire_station"))
	}
	dense := domain.DomainResult{Total: len(rich), Facilities: rich}

	sparse := resultOf(facilityAt(2999, 0, 0, "unclassified"))

	for _, cat := range domain.Categories() {
		high := ScoreDomain(cat, dense)
		assert.LessOrEqual(t, high.Value, scoreCeiling, "domain %s", cat)
		assert.GreaterOrEqual(t, high.Value, scoreFloor, "domain %s", cat)

		low := ScoreDomain(cat, sparse)
		assert.LessOrEqual(t, low.Value, scoreCeiling, "domain %s", cat)
		assert.GreaterOrEqual(t, low.Value, scoreFloor, "domain %s", cat)
	}
}

func TestBandPointsCapsAndCounts(t *testing.T) {
	facilities := []domain.Facility{
		facilityAt(100, 0, 0),
		facilityAt(600, 0, 0),
		facilityAt(1400, 0, 0),
		facilityAt(2500, 0, 0),
		facilityAt(2600, 0, 0), // beyond maxCount below
	}

	got := bandPoints(facilities, 4, []float64{500, 1000, 1500}, []float64{8, 5, 3}, 1, 25)
	assert.Equal(t, 17.0, got) // 8+5+3+1

	capped := bandPoints(facilities, 5, []float64{3000}, []float64{8}, 0, 20)
	assert.Equal(t, 20.0, capped)
}

func TestRatingStats(t *testing.T) {
	avgRating, avgReviews, ok := ratingStats([]domain.Facility{
		facilityAt(100, 4.0, 100),
		facilityAt(200, 3.0, 300),
		facilityAt(300, 0, 0), // unrated, excluded
	})
	require.True(t, ok)
	assert.Equal(t, 3.5, avgRating)
	assert.Equal(t, 200.0, avgReviews)

	_, _, ok = ratingStats([]domain.Facility{facilityAt(100, 0, 0)})
	assert.False(t, ok)
}
