// Package viewmap implements the steerable view map: per-orientation edge
// density rasters plus a complete, non-directional raster, each carried as a
// Gaussian pyramid for multi-scale queries.
package viewmap

import "math"

// NumOrientations is the number of directional buckets in a steerable view
// map. Directions are taken modulo pi, so four buckets cover the half circle
// in 45-degree steps.
const NumOrientations = 4

// Orientation selects one directional bucket of a steerable view map.
type Orientation uint8

const (
	// East is the horizontal bucket (0 degrees).
	East Orientation = iota

	// NorthEast is the 45-degree bucket.
	NorthEast

	// North is the vertical bucket (90 degrees).
	North

	// NorthWest is the 135-degree bucket.
	NorthWest
)

// Valid reports whether the orientation addresses an existing bucket.
func (o Orientation) Valid() bool {
	return o < NumOrientations
}

// Angle returns the bucket's center direction in radians.
func (o Orientation) Angle() float64 {
	return float64(o) * math.Pi / NumOrientations
}

// String returns a string representation of the orientation.
func (o Orientation) String() string {
	switch o {
	case East:
		return "East"
	case NorthEast:
		return "NorthEast"
	case North:
		return "North"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// OrientationFor returns the bucket whose center direction is closest to the
// direction (dx, dy), taken modulo pi.
func OrientationFor(dx, dy float64) Orientation {
	theta := math.Atan2(dy, dx)
	if theta < 0 {
		theta += math.Pi
	}
	// Round to the nearest bucket center; the half circle wraps.
	idx := int(math.Round(theta/(math.Pi/NumOrientations))) % NumOrientations
	return Orientation(idx)
}
