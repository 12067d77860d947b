package simrisk

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizutama/livability/pkg/geo"
)

func TestDisasterRiskBands(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	core, err := p.DisasterRisk(ctx, geo.Point{Lat: 35.68, Lng: 139.76})
	require.NoError(t, err)
	assert.Equal(t, 0.2, core.Flood)
	assert.Equal(t, 0.3, core.Earthquake)

	east, err := p.DisasterRisk(ctx, geo.Point{Lat: 35.7, Lng: 139.85})
	require.NoError(t, err)
	assert.Equal(t, 0.6, east.Flood)

	south, err := p.DisasterRisk(ctx, geo.Point{Lat: 35.5, Lng: 139.5})
	require.NoError(t, err)
	assert.Equal(t, 0.4, south.Flood)
}

func TestCrimeSafetyBands(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	core, err := p.CrimeSafety(ctx, geo.Point{Lat: 35.7, Lng: 139.7})
	require.NoError(t, err)
	assert.Equal(t, 85.0, core.SafetyScore)

	west, err := p.CrimeSafety(ctx, geo.Point{Lat: 35.7, Lng: 139.5})
	require.NoError(t, err)
	assert.Equal(t, 90.0, west.SafetyScore)
}

func TestSignalRanges(t *testing.T) {
	p := NewProvider()
	ctx := context.Background()

	for _, pt := range []geo.Point{
		{Lat: 35.68, Lng: 139.76},
		{Lat: 35.7, Lng: 139.9},
		{Lat: 35.55, Lng: 139.4},
		{Lat: 35.9, Lng: 139.6},
	} {
		d, err := p.DisasterRisk(ctx, pt)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, d.Flood, 0.0)
		assert.LessOrEqual(t, d.Flood, 1.0)
		assert.GreaterOrEqual(t, d.Earthquake, 0.0)
		assert.LessOrEqual(t, d.Earthquake, 1.0)

		c, err := p.CrimeSafety(ctx, pt)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c.SafetyScore, 0.0)
		assert.LessOrEqual(t, c.SafetyScore, 100.0)
	}
}
