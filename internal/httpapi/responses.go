package httpapi

import (
	"math"
	"time"

	"github.com/mizutama/livability/internal/domain"
	"github.com/mizutama/livability/internal/domain/livability"
	"github.com/mizutama/livability/pkg/geo"
)

type analyzeRequest struct {
	Address     string     `json:"address"`
	Coordinates *geo.Point `json:"coordinates"`
}

type facilityView struct {
	Name           string   `json:"name"`
	DistanceMeters int      `json:"distance"`
	WalkingMinutes int      `json:"walking_minutes"`
	DistanceBand   string   `json:"distance_band"`
	PlaceID        string   `json:"place_id,omitempty"`
	Rating         float64  `json:"rating,omitempty"`
	RatingCount    int      `json:"rating_count,omitempty"`
	Types          []string `json:"types,omitempty"`
	Category       string   `json:"category,omitempty"`
}

type domainView struct {
	Score           float64               `json:"score"`
	Breakdown       domain.ScoreBreakdown `json:"breakdown"`
	DefaultUsed     bool                  `json:"default_used"`
	TotalFacilities int                   `json:"total_facilities"`
	CutoffMeters    float64               `json:"cutoff_meters"`
	Facilities      []facilityView        `json:"facilities"`
}

type analyzeResponse struct {
	AnalysisID  string                `json:"analysis_id"`
	Address     string                `json:"address,omitempty"`
	Coordinates geo.Point             `json:"coordinates"`
	TotalScore  float64               `json:"total_score"`
	Grade       string                `json:"grade"`
	Breakdown   map[string]domainView `json:"breakdown"`
	GeneratedAt time.Time             `json:"generated_at"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status        string          `json:"status"`
	Version       string          `json:"version"`
	Timestamp     time.Time       `json:"timestamp"`
	APIsAvailable map[string]bool `json:"apis_available"`
}

func toAnalyzeResponse(result domain.CompositeResult) analyzeResponse {
	breakdown := make(map[string]domainView, len(result.Scores))
	for _, cat := range domain.Categories() {
		score := result.Scores[cat]
		agg := result.Facilities[cat]

		facilities := make([]facilityView, 0, len(agg.Facilities))
		for _, f := range agg.Facilities {
			facilities = append(facilities, facilityView{
				Name:           f.Name,
				DistanceMeters: int(math.Round(f.DistanceMeters)),
				WalkingMinutes: geo.WalkingMinutes(f.DistanceMeters),
				DistanceBand:   geo.Band(f.DistanceMeters),
				PlaceID:        f.ExternalID,
				Rating:         f.Rating,
				RatingCount:    f.RatingCount,
				Types:          f.Types,
				Category:       f.Tag,
			})
		}

		breakdown[string(cat)] = domainView{
			Score:           score.Value,
			Breakdown:       score.Breakdown,
			DefaultUsed:     score.DefaultUsed,
			TotalFacilities: agg.Total,
			CutoffMeters:    livability.CutoffMeters(cat),
			Facilities:      facilities,
		}
	}

	return analyzeResponse{
		AnalysisID:  result.ID.String(),
		Address:     result.Address,
		Coordinates: result.Location,
		TotalScore:  result.TotalScore,
		Grade:       string(result.Grade),
		Breakdown:   breakdown,
		GeneratedAt: result.GeneratedAt,
	}
}
