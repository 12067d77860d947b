package livability

import (
	"math"

	"github.com/mizutama/livability/internal/domain"
)

// Per-domain scoring constants. The emphasis deliberately differs between
// domains: transport rewards having any rail access far more than raw count,
// dining weights reputation heavily, environment and culture key off the
// single nearest facility. Resist the urge to unify these tables.

func scoreEducation(r domain.DomainResult) domain.DomainScore {
	b := domain.ScoreBreakdown{
		Base: math.Min(50, float64(r.Total)*5),
		Proximity: bandPoints(r.Facilities, 8,
			[]float64{500, 1000, 1500},
			[]float64{8, 5, 3},
			1, 25),
	}

	// Coverage across school stages matters more than many of one kind.
	stages := map[string]struct{}{}
	for _, f := range r.Facilities {
		switch {
		case f.HasType("primary_school"):
			stages["primary"] = struct{}{}
		case f.HasType("secondary_school"):
			stages["secondary"] = struct{}{}
		case f.HasType("university"):
			stages["university"] = struct{}{}
		default:
			stages["school"] = struct{}{}
		}
	}
	b.Diversity = math.Min(25, float64(len(stages))*6.25)

	return sumBreakdown(b)
}

func scoreMedical(r domain.DomainResult) domain.DomainScore {
	b := domain.ScoreBreakdown{
		Base: math.Min(45, float64(r.Total)*4),
		Proximity: bandPoints(r.Facilities, 10,
			[]float64{400, 1000, 2000},
			[]float64{6, 4, 2},
			1, 30),
	}

	kinds := map[string]struct{}{}
	for _, f := range r.Facilities {
		switch {
		case f.HasType("hospital"):
			kinds["hospital"] = struct{}{}
		case f.HasType("pharmacy"):
			kinds["pharmacy"] = struct{}{}
		case f.HasType("dentist"):
			kinds["dentist"] = struct{}{}
		default:
			kinds["clinic"] = struct{}{}
		}
	}
	b.Diversity = math.Min(25, float64(len(kinds))*6.25)

	return sumBreakdown(b)
}

func scoreTransport(r domain.DomainResult) domain.DomainScore {
	b := domain.ScoreBreakdown{
		Base: math.Min(40, float64(r.Total)*8),
		Proximity: bandPoints(r.Facilities, 5,
			[]float64{300, 600, 1200},
			[]float64{15, 10, 6},
			3, 35),
	}

	// Well-rated stations stand in for major interchanges.
	major := 0
	for _, f := range r.Facilities {
		if f.Rating >= 4.0 {
			major++
		}
	}
	b.Quality = math.Min(25, float64(major)*8.33)

	return sumBreakdown(b)
}

func scoreShopping(r domain.DomainResult) domain.DomainScore {
	b := domain.ScoreBreakdown{
		Base: math.Min(40, float64(r.Total)*3),
		Proximity: bandPoints(r.Facilities, 10,
			[]float64{200, 500, 1000},
			[]float64{5, 3, 2},
			1, 30),
	}

	if avgRating, avgReviews, ok := ratingStats(r.Facilities); ok {
		q := (avgRating-3.5)*10 + math.Min(avgReviews/20, 10)
		b.Quality = math.Max(0, math.Min(30, q))
	}

	return sumBreakdown(b)
}

func scoreDining(r domain.DomainResult) domain.DomainScore {
	b := domain.ScoreBreakdown{
		Base: math.Min(40, float64(r.Total)*2.5),
		Proximity: bandPoints(r.Facilities, 10,
			[]float64{300, 800, 1500},
			[]float64{5, 3, 2},
			1, 30),
	}

	// Reputation carries more weight here than in any other domain.
	if avgRating, avgReviews, ok := ratingStats(r.Facilities); ok {
		q := (avgRating-3.0)*12 + math.Min(avgReviews/15, 18)
		b.Quality = math.Max(0, math.Min(30, q))
	}

	return sumBreakdown(b)
}

func scoreEnvironment(r domain.DomainResult) domain.DomainScore {
	b := domain.ScoreBreakdown{
		Base: math.Min(50, float64(r.Total)*5),
	}

	switch nearest := nearestDistance(r.Facilities, 3000); {
	case nearest <= 300:
		b.Proximity = 30
	case nearest <= 800:
		b.Proximity = 20
	case nearest <= 1500:
		b.Proximity = 10
	}

	for _, bonus := range []struct {
		placeType string
		points    float64
	}{
		{"park", 8},
		{"place_of_worship", 6},
		{"cemetery", 4},
		{"tourist_attraction", 2},
	} {
		for _, f := range r.Facilities {
			if f.HasType(bonus.placeType) {
				b.Diversity += bonus.points
				break
			}
		}
	}
	b.Diversity = math.Min(20, b.Diversity)

	return sumBreakdown(b)
}

func scoreCultural(r domain.DomainResult) domain.DomainScore {
	b := domain.ScoreBreakdown{
		Base: math.Min(40, float64(r.Total)*4),
	}

	// Cultural venues keep value at longer range than daily-needs domains.
	switch nearest := nearestDistance(r.Facilities, 5000); {
	case nearest <= 800:
		b.Proximity = 35
	case nearest <= 1500:
		b.Proximity = 25
	case nearest <= 2500:
		b.Proximity = 15
	case nearest <= 4000:
		b.Proximity = 10
	}

	for _, placeType := range []string{"library", "museum", "movie_theater", "gym", "art_gallery"} {
		for _, f := range r.Facilities {
			if f.HasType(placeType) {
				b.Diversity += 5
				break
			}
		}
	}
	b.Diversity = math.Min(25, b.Diversity)

	return sumBreakdown(b)
}
