// Package geo: core value types and the unified sentinel error set.
//
// Every message is prefixed with "geo: ..." for consistency and to allow easy
// grepping across logs. Algorithms MUST return these sentinels and tests MUST
// check them via errors.Is. Wrap with fmt.Errorf("ctx: %w", ErrX) only at an
// outer boundary; callers still match with errors.Is.
package geo

import "errors"

// Location is a single identified geographic point. It is immutable once
// loaded: the optimizer only ever reads it.
//
// Lat is in degrees within [-90, 90]; Lon is in degrees within [-180, 180].
// ID is an opaque, unique, non-empty identifier (the geonames gid in the
// county-seat dataset, but any stable string works).
type Location struct {
	ID  string  // unique opaque identifier
	Lat float64 // latitude, degrees in [-90, 90]
	Lon float64 // longitude, degrees in [-180, 180]
}

var (
	// ErrTooFewLocations is returned when fewer than two locations are
	// supplied; a tour needs at least two distinct points to be meaningful.
	ErrTooFewLocations = errors.New("geo: at least two locations required")

	// ErrEmptyID is returned when a location carries an empty identifier.
	ErrEmptyID = errors.New("geo: empty location id")

	// ErrDuplicateID is returned when two locations share an identifier.
	ErrDuplicateID = errors.New("geo: duplicate location id")

	// ErrCoordinateRange is returned when a latitude is outside [-90, 90] or
	// a longitude is outside [-180, 180] (NaN coordinates fail this check too).
	ErrCoordinateRange = errors.New("geo: coordinate out of range")

	// ErrNilSet indicates that a nil *Set was passed where a set is required.
	ErrNilSet = errors.New("geo: nil location set")

	// ErrIndexRange indicates a matrix or set index outside [0, n).
	ErrIndexRange = errors.New("geo: index out of range")

	// ErrBadWorkers is returned when a non-positive worker count reaches
	// matrix construction.
	ErrBadWorkers = errors.New("geo: worker count must be positive")
)
