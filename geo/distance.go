// Package geo - great-circle distance model.
//
// Distance implements the spherical law of cosines on a fixed Earth radius.
// It is the only numeric kernel of the package: pure, deterministic, and
// side-effect free. Matrix construction calls it once per unordered pair.
package geo

import "math"

// EarthRadiusMiles is the spherical Earth radius used by the distance model.
// The value matches the original county-tour dataset, which measured routes
// in miles; switching units means scaling every distance uniformly, which
// does not change any tour ordering.
const EarthRadiusMiles = 3963.0

// degToRad converts degrees to radians.
//
// Complexity: O(1).
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Distance returns the great-circle distance between a and b in miles using
// the spherical law of cosines:
//
//	acos(sin φ₁·sin φ₂ + cos φ₁·cos φ₂·cos(λ₁−λ₂)) · R
//
// Contract:
//   - Coordinates are assumed in-range (NewSet enforces this before any
//     matrix build); out-of-range inputs yield garbage, not panics.
//   - Distance(a, a) == 0 exactly: coincident ids short-circuit, and the
//     acos argument is clamped to [-1, 1] so floating-point overshoot near
//     zero angular separation cannot cause a NaN.
//   - Symmetric: Distance(a, b) == Distance(b, a).
//
// Complexity: O(1).
func Distance(a, b Location) float64 {
	// Coincident points: the law of cosines degenerates at zero separation,
	// so answer exactly 0 without touching acos at all.
	if a.Lat == b.Lat && a.Lon == b.Lon {
		return 0
	}

	var (
		lat1 = degToRad(a.Lat)
		lon1 = degToRad(a.Lon)
		lat2 = degToRad(b.Lat)
		lon2 = degToRad(b.Lon)
	)

	// cos of the central angle between the two points.
	c := math.Sin(lat1)*math.Sin(lat2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Cos(lon1-lon2)

	// Clamp against floating-point overshoot: |c| may exceed 1 by an ulp for
	// nearly coincident or nearly antipodal points, and acos outside [-1, 1]
	// is NaN.
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}

	return math.Acos(c) * EarthRadiusMiles
}
