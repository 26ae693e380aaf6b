// Package geo provides the geographic primitives consumed by the tour
// optimizer: identified locations, validated location sets, a great-circle
// distance model, and a dense pairwise distance matrix.
//
// The package is deliberately small and allocation-conscious:
//
//   - Location / Set — an immutable, order-stable collection of points
//     (id, latitude, longitude), deduplicated by id at construction.
//
//   - Distance — spherical law-of-cosines great-circle distance on a fixed
//     Earth radius (miles). Pure and deterministic; the acos argument is
//     clamped to [-1, 1] so coincident points return exactly 0 instead of
//     tripping a floating-point domain error.
//
//   - Matrix — an n×n symmetric cache of pairwise distances with a zero
//     diagonal, built once (optionally across several workers) and read-only
//     thereafter. Construction is the O(n²) scaling bound of the whole
//     system; practical n is thousands, not millions.
//
// All user-triggered failures are reported through package sentinel errors
// (see types.go) and matched with errors.Is; no function panics on input.
package geo
