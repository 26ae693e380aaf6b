// Package geo - validated, order-stable location sets.
//
// A Set is the optimizer's only view of the prepared location table: ids are
// unique, coordinates are in range, and the enumeration order is fixed at
// construction time. That stable order is what seeds the initial tour
// permutation, so it must never change after NewSet returns.
package geo

// Set is an immutable collection of locations with a stable enumeration
// order and O(1) id lookup. Construct only via NewSet.
type Set struct {
	locs  []Location     // enumeration order, fixed at construction
	index map[string]int // id -> dense index into locs
}

// NewSet validates locs and builds a Set.
//
// Validation, in priority order:
//  1. len(locs) >= 2               — ErrTooFewLocations
//  2. every id non-empty           — ErrEmptyID
//  3. ids pairwise distinct        — ErrDuplicateID
//  4. coordinates within range     — ErrCoordinateRange (NaN fails too)
//
// The input slice is copied; callers may reuse or mutate locs afterwards.
//
// Complexity: O(n) time, O(n) space.
func NewSet(locs []Location) (*Set, error) {
	if len(locs) < 2 {
		return nil, ErrTooFewLocations
	}

	var (
		s = &Set{
			locs:  make([]Location, len(locs)),
			index: make(map[string]int, len(locs)),
		}
		i int
		l Location
	)
	for i, l = range locs {
		if l.ID == "" {
			return nil, ErrEmptyID
		}
		if _, dup := s.index[l.ID]; dup {
			return nil, ErrDuplicateID
		}
		// Negated form so NaN coordinates fail the check as well.
		if !(l.Lat >= -90 && l.Lat <= 90) {
			return nil, ErrCoordinateRange
		}
		if !(l.Lon >= -180 && l.Lon <= 180) {
			return nil, ErrCoordinateRange
		}
		s.locs[i] = l
		s.index[l.ID] = i
	}

	return s, nil
}

// Len reports the number of locations in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}

	return len(s.locs)
}

// At returns the location at dense index i in enumeration order.
//
// Complexity: O(1).
func (s *Set) At(i int) (Location, error) {
	if s == nil {
		return Location{}, ErrNilSet
	}
	if i < 0 || i >= len(s.locs) {
		return Location{}, ErrIndexRange
	}

	return s.locs[i], nil
}

// IndexOf returns the dense index assigned to id, or ok==false when the id
// is not part of the set.
//
// Complexity: O(1).
func (s *Set) IndexOf(id string) (int, bool) {
	if s == nil {
		return 0, false
	}
	i, ok := s.index[id]

	return i, ok
}

// IDs returns a fresh slice of all ids in enumeration order. The copy keeps
// the set immutable even if the caller shuffles the result (the annealer
// does exactly that to seed its initial permutation).
//
// Complexity: O(n) time, O(n) space.
func (s *Set) IDs() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.locs))

	var i int
	for i = range s.locs {
		out[i] = s.locs[i].ID
	}

	return out
}
