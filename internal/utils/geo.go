package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/prasongk/fleetview/internal/pkg/models"
)

// CoincidenceEpsilonDegrees is the per-axis threshold below which two
// coordinate pairs count as the same place (~11 m at the equator).
const CoincidenceEpsilonDegrees = 0.0001

// CoordinatesClose reports whether two points are within the coincidence
// epsilon on both axes.
func CoordinatesClose(a, b models.LatLng) bool {
	return math.Abs(a.Latitude-b.Latitude) < CoincidenceEpsilonDegrees &&
		math.Abs(a.Longitude-b.Longitude) < CoincidenceEpsilonDegrees
}

// EncodeCell converts a point to the geohash cell it falls in at the given
// precision.
func EncodeCell(p models.LatLng, precision uint) string {
	return geohash.EncodeWithPrecision(p.Latitude, p.Longitude, precision)
}

// GeohashPrecisionForZoom maps a map zoom level to the geohash precision used
// for marker clustering. Wider zooms use coarser cells so that visually close
// markers collapse into one aggregate.
func GeohashPrecisionForZoom(zoom int) uint {
	switch {
	case zoom <= 3:
		return 2
	case zoom <= 6:
		return 3
	case zoom <= 9:
		return 4
	case zoom <= 12:
		return 5
	case zoom <= 14:
		return 6
	case zoom <= 16:
		return 7
	default:
		return 8
	}
}

// CalculateDistance calculates the distance between two points in kilometers
// using the Haversine formula.
func CalculateDistance(p1, p2 models.LatLng) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := p1.Latitude * math.Pi / 180.0
	lon1 := p1.Longitude * math.Pi / 180.0
	lat2 := p2.Latitude * math.Pi / 180.0
	lon2 := p2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}
