package livability

import "github.com/mizutama/livability/internal/domain"

// CategorySpec is one provider query within a domain: a place type and the
// advisory search radius passed upstream.
type CategorySpec struct {
	PlaceType    string
	RadiusMeters int
}

// domainPlan is the static per-domain collection configuration. Not
// user-controlled.
type domainPlan struct {
	queries []CategorySpec

	// cutoffMeters is the domain-specific final distance filter, applied
	// after the global hard cap. Both filters are required: they differ
	// and neither alone is sufficient.
	cutoffMeters float64

	// includeTypes, when set, keeps only facilities carrying at least one
	// of these provider types. excludeTypes drops facilities carrying any.
	includeTypes []string
	excludeTypes []string
}

// foodTypes tags anything that serves food or drink. Shopping excludes
// these; dining requires at least one of them.
var foodTypes = []string{
	"restaurant", "food", "meal_takeaway", "meal_delivery",
	"cafe", "bar", "bakery", "fast_food", "liquor_store",
}

var domainPlans = map[domain.Category]domainPlan{
	domain.CategoryEducation: {
		queries: []CategorySpec{
			{PlaceType: "school", RadiusMeters: 1000},
			{PlaceType: "primary_school", RadiusMeters: 800},
			{PlaceType: "secondary_school", RadiusMeters: 1000},
			{PlaceType: "university", RadiusMeters: 1500},
		},
		cutoffMeters: 1500,
	},
	domain.CategoryMedical: {
		queries: []CategorySpec{
			{PlaceType: "hospital", RadiusMeters: 1500},
			{PlaceType: "doctor", RadiusMeters: 1000},
			{PlaceType: "dentist", RadiusMeters: 1000},
			{PlaceType: "pharmacy", RadiusMeters: 800},
		},
		cutoffMeters: 2000,
	},
	domain.CategoryTransport: {
		queries: []CategorySpec{
			{PlaceType: "transit_station", RadiusMeters: 1500},
			{PlaceType: "train_station", RadiusMeters: 1500},
			{PlaceType: "subway_station", RadiusMeters: 1200},
			{PlaceType: "bus_station", RadiusMeters: 800},
		},
		cutoffMeters: 2000,
	},
	domain.CategoryShopping: {
		queries: []CategorySpec{
			{PlaceType: "supermarket", RadiusMeters: 1000},
			{PlaceType: "convenience_store", RadiusMeters: 500},
			{PlaceType: "department_store", RadiusMeters: 1500},
			{PlaceType: "shopping_mall", RadiusMeters: 2000},
			{PlaceType: "pharmacy", RadiusMeters: 800},
			{PlaceType: "clothing_store", RadiusMeters: 1200},
			{PlaceType: "electronics_store", RadiusMeters: 1500},
			{PlaceType: "book_store", RadiusMeters: 1200},
			{PlaceType: "furniture_store", RadiusMeters: 2000},
			{PlaceType: "hardware_store", RadiusMeters: 1500},
		},
		cutoffMeters: 2000,
		excludeTypes: foodTypes,
	},
	domain.CategoryDining: {
		queries: []CategorySpec{
			{PlaceType: "restaurant", RadiusMeters: 1500},
			{PlaceType: "cafe", RadiusMeters: 1000},
			{PlaceType: "bar", RadiusMeters: 1200},
			{PlaceType: "meal_takeaway", RadiusMeters: 800},
			{PlaceType: "meal_delivery", RadiusMeters: 1000},
			{PlaceType: "bakery", RadiusMeters: 1000},
			{PlaceType: "food", RadiusMeters: 1500},
		},
		cutoffMeters: 1500,
		includeTypes: foodTypes,
	},
	domain.CategorySafety: {
		queries: []CategorySpec{
			{PlaceType: "police", RadiusMeters: 1500},
			{PlaceType: "fire_station", RadiusMeters: 2000},
			{PlaceType: "hospital", RadiusMeters: 2000},
		},
		cutoffMeters: 2000,
	},
	domain.CategoryEnvironment: {
		queries: []CategorySpec{
			{PlaceType: "park", RadiusMeters: 1000},
			{PlaceType: "place_of_worship", RadiusMeters: 800},
			{PlaceType: "cemetery", RadiusMeters: 1500},
			{PlaceType: "tourist_attraction", RadiusMeters: 1200},
			{PlaceType: "natural_feature", RadiusMeters: 1500},
		},
		cutoffMeters: 2000,
	},
	domain.CategoryCultural: {
		queries: []CategorySpec{
			{PlaceType: "library", RadiusMeters: 1500},
			{PlaceType: "museum", RadiusMeters: 2000},
			{PlaceType: "movie_theater", RadiusMeters: 1500},
			{PlaceType: "gym", RadiusMeters: 1000},
			{PlaceType: "spa", RadiusMeters: 1500},
			{PlaceType: "art_gallery", RadiusMeters: 2000},
			{PlaceType: "bowling_alley", RadiusMeters: 2000},
			{PlaceType: "stadium", RadiusMeters: 3000},
			{PlaceType: "aquarium", RadiusMeters: 2500},
		},
		cutoffMeters: 3000,
	},
}

// CutoffMeters exposes the configured cutoff for a domain, mostly for
// response payloads and tests.
func CutoffMeters(cat domain.Category) float64 {
	return domainPlans[cat].cutoffMeters
}
