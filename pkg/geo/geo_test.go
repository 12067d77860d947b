package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceIdentity(t *testing.T) {
	tokyoStation := Point{Lat: 35.681, Lng: 139.767}
	assert.Zero(t, Distance(tokyoStation, tokyoStation))
}

func TestDistanceOneDegreeLatitude(t *testing.T) {
	a := Point{Lat: 35.0, Lng: 139.0}
	b := Point{Lat: 36.0, Lng: 139.0}

	// One degree of latitude is about 111,195 m on a 6,371 km sphere.
	got := Distance(a, b)
	assert.InEpsilon(t, 111195.0, got, 0.01)
}

func TestDistanceSymmetry(t *testing.T) {
	a := Point{Lat: 35.6995, Lng: 139.4814}
	b := Point{Lat: 35.681, Lng: 139.767}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
	assert.Greater(t, Distance(a, b), 0.0)
}

func TestDistanceShortRange(t *testing.T) {
	// Roughly 500 m north of the origin point.
	a := Point{Lat: 35.70, Lng: 139.48}
	b := Point{Lat: 35.70 + 500.0/111195.0, Lng: 139.48}

	got := Distance(a, b)
	assert.InDelta(t, 500.0, got, 5.0)
}

func TestPointValid(t *testing.T) {
	assert.True(t, Point{Lat: 35.7, Lng: 139.5}.Valid())
	assert.True(t, Point{Lat: -90, Lng: 180}.Valid())
	assert.False(t, Point{Lat: 91, Lng: 0}.Valid())
	assert.False(t, Point{Lat: 0, Lng: -181}.Valid())
}

func TestWalkingMinutes(t *testing.T) {
	assert.Equal(t, 1, WalkingMinutes(0))
	assert.Equal(t, 1, WalkingMinutes(79))
	assert.Equal(t, 10, WalkingMinutes(800))
	assert.Equal(t, 25, WalkingMinutes(2000))
}

func TestBand(t *testing.T) {
	cases := map[float64]string{
		100:  "very_close",
		300:  "very_close",
		301:  "close",
		800:  "close",
		1200: "moderate",
		2500: "far",
		5000: "very_far",
	}
	for dist, want := range cases {
		assert.Equal(t, want, Band(dist), "distance %v", dist)
	}
}

func TestDistanceNonNegative(t *testing.T) {
	pts := []Point{
		{Lat: 0, Lng: 0},
		{Lat: 35.7, Lng: 139.5},
		{Lat: -35.7, Lng: -139.5},
		{Lat: 89.9, Lng: 179.9},
	}
	for _, a := range pts {
		for _, b := range pts {
			d := Distance(a, b)
			assert.False(t, math.IsNaN(d))
			assert.GreaterOrEqual(t, d, 0.0)
		}
	}
}
