// Package simrisk supplies synthetic disaster and crime signals banded by
// coordinate region. Placeholder data for the Tokyo area until a real hazard
// source is integrated; consumers treat the numbers as opaque either way.
package simrisk

import (
	"context"

	"github.com/mizutama/livability/internal/domain/livability"
	"github.com/mizutama/livability/pkg/geo"
)

// Provider implements livability.RiskProvider with simulated data
type Provider struct{}

// NewProvider builds a simulated risk provider
func NewProvider() *Provider {
	return &Provider{}
}

// DisasterRisk bands flood and earthquake risk by rough Tokyo geography:
// the city core is low risk, the eastern lowlands flood-prone, the south
// moderate.
func (p *Provider) DisasterRisk(_ context.Context, origin geo.Point) (livability.DisasterRisk, error) {
	switch {
	case origin.Lat >= 35.6 && origin.Lat <= 35.8 && origin.Lng >= 139.6 && origin.Lng <= 139.8:
		return livability.DisasterRisk{Flood: 0.2, Earthquake: 0.3}, nil
	case origin.Lng >= 139.8:
		return livability.DisasterRisk{Flood: 0.6, Earthquake: 0.4}, nil
	case origin.Lat <= 35.6:
		return livability.DisasterRisk{Flood: 0.4, Earthquake: 0.3}, nil
	default:
		return livability.DisasterRisk{Flood: 0.3, Earthquake: 0.4}, nil
	}
}

// CrimeSafety bands the ambient safety score by the same rough geography.
func (p *Provider) CrimeSafety(_ context.Context, origin geo.Point) (livability.CrimeSafety, error) {
	switch {
	case origin.Lat >= 35.65 && origin.Lat <= 35.75 && origin.Lng >= 139.65 && origin.Lng <= 139.8:
		return livability.CrimeSafety{SafetyScore: 85}, nil
	case origin.Lat >= 35.75:
		return livability.CrimeSafety{SafetyScore: 75}, nil
	case origin.Lng <= 139.65:
		return livability.CrimeSafety{SafetyScore: 90}, nil
	default:
		return livability.CrimeSafety{SafetyScore: 70}, nil
	}
}

var _ livability.RiskProvider = (*Provider)(nil)
