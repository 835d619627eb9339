// Package geo computes great-circle distances between catalog coordinates.
package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusKm is the mean Earth radius used for all distances.
const EarthRadiusKm = 6371.0

// DistanceKm returns the haversine distance between two points given in
// degrees, rounded to the nearest whole kilometer.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	// Evaluate in a canonical order so the result is bit-for-bit symmetric.
	if lat1 > lat2 || (lat1 == lat2 && lon1 > lon2) {
		lat1, lon1, lat2, lon2 = lat2, lon2, lat1, lon1
	}
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	// s2.LatLng.Distance is the haversine central angle.
	return math.Round(a.Distance(b).Radians() * EarthRadiusKm)
}

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat, Lng float64
}

// Between is DistanceKm for two points.
func Between(a, b Point) float64 {
	return DistanceKm(a.Lat, a.Lng, b.Lat, b.Lng)
}
