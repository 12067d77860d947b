// Package geo provides great-circle distance math used by the facility
// aggregation pipeline. Distances are computed locally and never trusted
// from upstream providers.
package geo

import "math"

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000.0

// walkingSpeedMetersPerMin approximates an average pedestrian pace.
const walkingSpeedMetersPerMin = 80.0

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the point lies within latitude/longitude bounds.
func (p Point) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Distance returns the haversine distance between two points in meters.
// Accurate to well under 0.5% for the sub-50km ranges this service cares about.
func Distance(a, b Point) float64 {
	latA := radians(a.Lat)
	latB := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// WalkingMinutes converts a distance to an estimated walking time, never
// reporting less than one minute.
func WalkingMinutes(distanceMeters float64) int {
	minutes := int(distanceMeters / walkingSpeedMetersPerMin)
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Band classifies a distance into a coarse walkability bucket.
func Band(distanceMeters float64) string {
	switch {
	case distanceMeters <= 300:
		return "very_close"
	case distanceMeters <= 800:
		return "close"
	case distanceMeters <= 1500:
		return "moderate"
	case distanceMeters <= 3000:
		return "far"
	default:
		return "very_far"
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
