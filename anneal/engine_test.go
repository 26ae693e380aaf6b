// Package anneal_test exercises the engine through the public API: input
// validation, terminal states, determinism, and the two scenario contracts
// (unit-degree square and the 2-location degenerate tour).
package anneal_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greatloop/greatloop/anneal"
	"github.com/greatloop/greatloop/geo"
)

// squareCorners is the canonical end-to-end instance: four locations at the
// corners of a unit-degree square. The optimal cycle walks the perimeter;
// the two crossed orderings are ~20% longer.
func squareCorners(t testing.TB) (*geo.Set, *geo.Matrix) {
	t.Helper()
	s, err := geo.NewSet([]geo.Location{
		{ID: "A", Lat: 0, Lon: 0},
		{ID: "B", Lat: 0, Lon: 1},
		{ID: "C", Lat: 1, Lon: 1},
		{ID: "D", Lat: 1, Lon: 0},
	})
	require.NoError(t, err)
	m, err := geo.BuildMatrix(s)
	require.NoError(t, err)

	return s, m
}

// squarePerimeter computes the length of the perimeter cycle A-B-C-D under
// the distance model.
func squarePerimeter(t testing.TB, s *geo.Set) float64 {
	t.Helper()
	var (
		total float64
		order = []int{0, 1, 2, 3}
		i     int
	)
	for i = range order {
		a, err := s.At(order[i])
		require.NoError(t, err)
		b, err := s.At(order[(i+1)%len(order)])
		require.NoError(t, err)
		total += geo.Distance(a, b)
	}

	return total
}

// TestNew_InputValidation walks the full rejection surface: everything is
// caught before Running, and nothing can fail afterwards.
func TestNew_InputValidation(t *testing.T) {
	s, m := squareCorners(t)

	_, err := anneal.New(nil, m)
	assert.ErrorIs(t, err, anneal.ErrNilSet)

	_, err = anneal.New(s, nil)
	assert.ErrorIs(t, err, anneal.ErrNilMatrix)

	// Matrix of the wrong order.
	other, err := geo.NewSet([]geo.Location{
		{ID: "x", Lat: 1, Lon: 2}, {ID: "y", Lat: 3, Lon: 4}, {ID: "z", Lat: 5, Lon: 6},
	})
	require.NoError(t, err)
	mo, err := geo.BuildMatrix(other)
	require.NoError(t, err)
	_, err = anneal.New(s, mo)
	assert.ErrorIs(t, err, anneal.ErrMatrixMismatch)

	// Configuration sentinels.
	_, err = anneal.New(s, m, anneal.WithInitialTemperature(0))
	assert.ErrorIs(t, err, anneal.ErrBadTemperature)
	_, err = anneal.New(s, m, anneal.WithMinTemperature(-1))
	assert.ErrorIs(t, err, anneal.ErrBadTemperature)
	_, err = anneal.New(s, m, anneal.WithCoolingRate(1))
	assert.ErrorIs(t, err, anneal.ErrBadCoolingRate)
	_, err = anneal.New(s, m, anneal.WithCoolingRate(0))
	assert.ErrorIs(t, err, anneal.ErrBadCoolingRate)
	_, err = anneal.New(s, m, anneal.WithMaxSteps(0))
	assert.ErrorIs(t, err, anneal.ErrBadMaxSteps)
	_, err = anneal.New(s, m, anneal.WithTimeBudget(-time.Second))
	assert.ErrorIs(t, err, anneal.ErrBadTimeBudget)

	// Unknown anchors are rejected upfront, not at finalization.
	_, err = anneal.New(s, m, anneal.WithAnchor("Z"))
	assert.ErrorIs(t, err, anneal.ErrAnchorNotFound)
}

// TestRun_SquareConvergesToPerimeter is the end-to-end scenario: with the
// prescribed schedule the engine must finish Converged on a 4-permutation
// whose cyclic length equals the square's perimeter (the non-crossing tour).
func TestRun_SquareConvergesToPerimeter(t *testing.T) {
	s, m := squareCorners(t)

	eng, err := anneal.New(s, m,
		anneal.WithInitialTemperature(10),
		anneal.WithCoolingRate(0.95),
		anneal.WithMinTemperature(0.01),
		anneal.WithSeed(42),
	)
	require.NoError(t, err)

	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, anneal.Converged, res.State)
	assert.Less(t, res.FinalTemp, 0.01)
	require.Len(t, res.Tour, 4)

	sorted := append([]string(nil), res.Tour...)
	sort.Strings(sorted)
	assert.Equal(t, []string{"A", "B", "C", "D"}, sorted, "tour must be a permutation of the id set")

	assert.InDelta(t, squarePerimeter(t, s), res.Length, 1e-6,
		"the engine must settle on the non-crossing perimeter cycle")
}

// TestRun_TwoLocationsDegenerate: with exactly two locations any
// permutation is optimal; the engine terminates immediately and reports the
// doubled round-trip leg.
func TestRun_TwoLocationsDegenerate(t *testing.T) {
	a := geo.Location{ID: "here", Lat: 40.72, Lon: 74.00}
	b := geo.Location{ID: "there", Lat: 34.05, Lon: 118.25}
	s, err := geo.NewSet([]geo.Location{a, b})
	require.NoError(t, err)
	m, err := geo.BuildMatrix(s)
	require.NoError(t, err)

	eng, err := anneal.New(s, m)
	require.NoError(t, err)
	res, err := eng.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, anneal.Converged, res.State)
	assert.Zero(t, res.Steps, "degenerate tours must not burn steps")
	require.Len(t, res.Tour, 2)
	assert.InDelta(t, 2*geo.Distance(a, b), res.Length, 1e-6)
}

// TestRun_Determinism: identical set, configuration and seed must yield
// byte-identical results across runs and across engines.
func TestRun_Determinism(t *testing.T) {
	s, m := squareCorners(t)
	opts := []anneal.Option{
		anneal.WithInitialTemperature(100),
		anneal.WithCoolingRate(0.99),
		anneal.WithMinTemperature(0.5),
		anneal.WithSeed(7),
	}

	eng, err := anneal.New(s, m, opts...)
	require.NoError(t, err)

	r1, err := eng.Run(context.Background())
	require.NoError(t, err)
	r2, err := eng.Run(context.Background()) // engine is reusable
	require.NoError(t, err)

	eng2, err := anneal.New(s, m, opts...)
	require.NoError(t, err)
	r3, err := eng2.Run(context.Background())
	require.NoError(t, err)

	for _, r := range []anneal.Result{r2, r3} {
		assert.Equal(t, r1.Tour, r.Tour)
		assert.Equal(t, r1.Length, r.Length)
		assert.Equal(t, r1.Steps, r.Steps)
		assert.Equal(t, r1.Accepted, r.Accepted)
		assert.Equal(t, r1.Uphill, r.Uphill)
		assert.Equal(t, r1.State, r.State)
	}
}

// TestRun_AnchorRotation: the configured anchor must land at position 0
// without changing the tour length.
func TestRun_AnchorRotation(t *testing.T) {
	s, m := squareCorners(t)

	plain, err := anneal.New(s, m, anneal.WithSeed(3))
	require.NoError(t, err)
	rp, err := plain.Run(context.Background())
	require.NoError(t, err)

	anchored, err := anneal.New(s, m, anneal.WithSeed(3), anneal.WithAnchor("C"))
	require.NoError(t, err)
	ra, err := anchored.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "C", ra.Tour[0])
	assert.Equal(t, rp.Length, ra.Length, "rotation must not change the tour length")
}

// TestRun_CancelledContextTimesOut: a pre-cancelled context terminates the
// run before the first step, still yielding a valid tour.
func TestRun_CancelledContextTimesOut(t *testing.T) {
	s, m := squareCorners(t)
	eng, err := anneal.New(s, m)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := eng.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, anneal.TimedOut, res.State)
	assert.Zero(t, res.Steps)
	assert.Len(t, res.Tour, 4)
}

// TestRun_TrackBest: the shadow state must be at least as short as the
// final annealed state and must not disturb determinism.
func TestRun_TrackBest(t *testing.T) {
	s, m := squareCorners(t)
	opts := []anneal.Option{
		anneal.WithInitialTemperature(10),
		anneal.WithCoolingRate(0.95),
		anneal.WithMinTemperature(0.01),
		anneal.WithSeed(11),
	}

	bare, err := anneal.New(s, m, opts...)
	require.NoError(t, err)
	rb, err := bare.Run(context.Background())
	require.NoError(t, err)

	tracked, err := anneal.New(s, m, append(opts, anneal.WithTrackBest())...)
	require.NoError(t, err)
	rt, err := tracked.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, rb.Tour, rt.Tour, "best tracking must not alter acceptance dynamics")
	require.Len(t, rt.BestTour, 4)
	assert.LessOrEqual(t, rt.BestLength, rt.Length)

	assert.Empty(t, rb.BestTour, "BestTour is opt-in")
}

// TestSolve_BuildsAndRuns covers the convenience path.
func TestSolve_BuildsAndRuns(t *testing.T) {
	s, _ := squareCorners(t)
	res, err := anneal.Solve(context.Background(), s,
		anneal.WithInitialTemperature(10),
		anneal.WithCoolingRate(0.95),
		anneal.WithMinTemperature(0.01),
		anneal.WithSeed(42),
	)
	require.NoError(t, err)
	assert.Equal(t, anneal.Converged, res.State)
	assert.Len(t, res.Tour, 4)

	_, err = anneal.Solve(context.Background(), nil)
	assert.ErrorIs(t, err, anneal.ErrNilSet)
}

// TestState_String pins the log representation of the state machine.
func TestState_String(t *testing.T) {
	assert.Equal(t, "Initializing", anneal.Initializing.String())
	assert.Equal(t, "Running", anneal.Running.String())
	assert.Equal(t, "Converged", anneal.Converged.String())
	assert.Equal(t, "TimedOut", anneal.TimedOut.String())
	assert.Equal(t, "Unknown", anneal.State(99).String())
}
