package util

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusKm is the mean Earth radius used for great-circle distances.
	EarthRadiusKm = 6371.0
	// KmPerDegree approximates the length of one degree of latitude.
	KmPerDegree = 111.0
)

// BoundingBox returns the lat/lng box around center that contains every point within radiusKm.
// Longitude spans are widened by 1/cos(lat) and are not wrapped at the antimeridian.
func BoundingBox(center orb.Point, radiusKm float64) orb.Bound {
	latDelta := radiusKm / KmPerDegree
	lngDelta := radiusKm / (KmPerDegree * math.Cos(center.Lat()*math.Pi/180))

	return orb.Bound{
		Min: orb.Point{center.Lon() - lngDelta, center.Lat() - latDelta},
		Max: orb.Point{center.Lon() + lngDelta, center.Lat() + latDelta},
	}
}

// HaversineKm calculates the great circle distance between two points in kilometers.
func HaversineKm(from, to orb.Point) float64 {
	lat1Rad := from.Lat() * math.Pi / 180
	lng1Rad := from.Lon() * math.Pi / 180
	lat2Rad := to.Lat() * math.Pi / 180
	lng2Rad := to.Lon() * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// ValidCoordinate reports whether lat/lng are finite and inside Earth bounds.
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))

	return math.Round(v*p) / p
}
