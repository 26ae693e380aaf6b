// Package tourio - CSV ingestion and emission.
package tourio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/greatloop/greatloop/geo"
)

var (
	// ErrEmptyInput is returned when the reader yields no header row at all.
	ErrEmptyInput = errors.New("tourio: empty input")

	// ErrBadHeader is returned when the id/lat/lon columns cannot all be
	// located in the header row.
	ErrBadHeader = errors.New("tourio: missing id/lat/lon columns in header")

	// ErrBadRecord is returned (wrapped with the line number) for a data row
	// with a malformed coordinate.
	ErrBadRecord = errors.New("tourio: malformed record")
)

// Column names recognized by ReadLocations. The v_-prefixed names are the
// prepared visit-table layout; the bare names are accepted for hand-written
// fixtures.
var (
	idColumns  = []string{"v_id", "id"}
	latColumns = []string{"v_lat", "lat"}
	lonColumns = []string{"v_lon", "lon"}
)

// tourHeader is the single column emitted by WriteTour.
const tourHeader = "v_id"

// ReadLocations parses a headered CSV of prepared locations from r.
//
// Contract:
//   - The first row is a header naming at least the id, latitude and
//     longitude columns (see idColumns/latColumns/lonColumns). Matching is
//     exact and case-sensitive; extra columns are ignored.
//   - Coordinates must parse as floats; range and uniqueness checks are the
//     business of geo.NewSet, not of this reader.
//
// Returns the locations in file order, which later fixes the set's
// enumeration order.
//
// Complexity: O(rows).
func ReadLocations(r io.Reader) ([]geo.Location, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("tourio: read header: %w", err)
	}

	var (
		idIdx  = findColumn(header, idColumns)
		latIdx = findColumn(header, latColumns)
		lonIdx = findColumn(header, lonColumns)
	)
	if idIdx < 0 || latIdx < 0 || lonIdx < 0 {
		return nil, ErrBadHeader
	}

	var (
		out  []geo.Location
		rec  []string
		line = 1 // header consumed
		lat  float64
		lon  float64
	)
	for {
		rec, err = cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("tourio: line %d: %w", line, err)
		}
		if lat, err = strconv.ParseFloat(rec[latIdx], 64); err != nil {
			return nil, fmt.Errorf("tourio: line %d: latitude: %w", line, ErrBadRecord)
		}
		if lon, err = strconv.ParseFloat(rec[lonIdx], 64); err != nil {
			return nil, fmt.Errorf("tourio: line %d: longitude: %w", line, ErrBadRecord)
		}
		out = append(out, geo.Location{ID: rec[idIdx], Lat: lat, Lon: lon})
	}

	return out, nil
}

// WriteTour emits the finished tour to w: a v_id header followed by one
// location id per row, in tour order, ready for a downstream mapping or
// join stage.
//
// Complexity: O(n).
func WriteTour(w io.Writer, tour []string) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{tourHeader}); err != nil {
		return fmt.Errorf("tourio: write header: %w", err)
	}

	var id string
	for _, id = range tour {
		if err := cw.Write([]string{id}); err != nil {
			return fmt.Errorf("tourio: write row: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// findColumn returns the index of the first header cell matching any of the
// accepted names, or -1.
func findColumn(header []string, names []string) int {
	var (
		i int
		h string
		n string
	)
	for i, h = range header {
		for _, n = range names {
			if h == n {
				return i
			}
		}
	}

	return -1
}
