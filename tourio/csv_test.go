package tourio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greatloop/greatloop/geo"
	"github.com/greatloop/greatloop/tourio"
)

// TestReadLocations_VisitTable parses the prepared v_-prefixed layout with a
// trailing extra column, which must be ignored.
func TestReadLocations_VisitTable(t *testing.T) {
	in := strings.Join([]string{
		"v_id,v_lat,v_lon,v_name",
		"6941775,40.712800,-74.006000,start",
		"22,34.052200,-118.243700,west",
		"7,41.878100,-87.629800,mid",
	}, "\n")

	locs, err := tourio.ReadLocations(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, locs, 3)

	assert.Equal(t, geo.Location{ID: "6941775", Lat: 40.7128, Lon: -74.006}, locs[0])
	assert.Equal(t, "22", locs[1].ID)
	assert.Equal(t, "7", locs[2].ID)
	assert.InDelta(t, 41.8781, locs[2].Lat, 1e-9)
}

// TestReadLocations_BareHeaders accepts the hand-written id/lat/lon layout,
// including reordered columns.
func TestReadLocations_BareHeaders(t *testing.T) {
	in := "lon,id,lat\n-0.1278,london,51.5074\n2.3522,paris,48.8566\n"

	locs, err := tourio.ReadLocations(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, locs, 2)
	assert.Equal(t, geo.Location{ID: "london", Lat: 51.5074, Lon: -0.1278}, locs[0])
	assert.Equal(t, geo.Location{ID: "paris", Lat: 48.8566, Lon: 2.3522}, locs[1])
}

// TestReadLocations_HeaderOnly: a header with no data rows is not an error;
// set construction downstream decides whether zero locations are acceptable.
func TestReadLocations_HeaderOnly(t *testing.T) {
	locs, err := tourio.ReadLocations(strings.NewReader("v_id,v_lat,v_lon\n"))
	require.NoError(t, err)
	assert.Empty(t, locs)
}

func TestReadLocations_EmptyInput(t *testing.T) {
	_, err := tourio.ReadLocations(strings.NewReader(""))
	assert.ErrorIs(t, err, tourio.ErrEmptyInput)
}

func TestReadLocations_BadHeader(t *testing.T) {
	for _, in := range []string{
		"v_id,v_lat\n",              // lon missing
		"name,latitude,longitude\n", // no accepted names at all
		"V_ID,V_LAT,V_LON\n",        // matching is case-sensitive
	} {
		_, err := tourio.ReadLocations(strings.NewReader(in))
		assert.ErrorIs(t, err, tourio.ErrBadHeader, "header %q", in)
	}
}

// TestReadLocations_BadRecord: malformed coordinates surface ErrBadRecord
// with the offending line number in the message.
func TestReadLocations_BadRecord(t *testing.T) {
	in := "v_id,v_lat,v_lon\n1,10.0,20.0\n2,oops,30.0\n"

	_, err := tourio.ReadLocations(strings.NewReader(in))
	require.ErrorIs(t, err, tourio.ErrBadRecord)
	assert.Contains(t, err.Error(), "line 3")
	assert.Contains(t, err.Error(), "latitude")

	in = "v_id,v_lat,v_lon\n1,10.0,east\n"
	_, err = tourio.ReadLocations(strings.NewReader(in))
	require.ErrorIs(t, err, tourio.ErrBadRecord)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "longitude")
}

// TestWriteTour pins the emitted shape: a v_id header, one id per row.
func TestWriteTour(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tourio.WriteTour(&buf, []string{"6941775", "22", "7"}))
	assert.Equal(t, "v_id\n6941775\n22\n7\n", buf.String())
}

func TestWriteTour_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, tourio.WriteTour(&buf, nil))
	assert.Equal(t, "v_id\n", buf.String())
}

// TestRoundTrip: ids written by WriteTour read back through ReadLocations'
// id column untouched when re-joined with coordinates.
func TestRoundTrip(t *testing.T) {
	in := "v_id,v_lat,v_lon\nalpha,1.0,2.0\nbeta,3.0,4.0\n"
	locs, err := tourio.ReadLocations(strings.NewReader(in))
	require.NoError(t, err)

	ids := make([]string, len(locs))
	for i, l := range locs {
		ids[i] = l.ID
	}

	var buf bytes.Buffer
	require.NoError(t, tourio.WriteTour(&buf, ids))
	assert.Equal(t, "v_id\nalpha\nbeta\n", buf.String())
}
