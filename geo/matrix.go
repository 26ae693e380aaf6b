// Package geo - dense pairwise distance matrix.
//
// BuildMatrix evaluates the distance model once per unordered pair and
// mirrors the result, so the matrix is symmetric by construction with a zero
// diagonal. The matrix is immutable after BuildMatrix returns and therefore
// safe to share across concurrent readers (e.g. racing annealing runs).
//
// Construction is embarrassingly parallel: every cell write is independent
// and nothing reads the matrix until the build completes. WithWorkers splits
// rows across an errgroup; the parallel result is bit-identical to the
// serial one because each cell is computed by exactly one worker from pure
// inputs.
//
// Complexity: O(n²) time and space - the dominant scaling bound of the
// whole optimizer.
package geo

import (
	"golang.org/x/sync/errgroup"
)

// defaultWorkers is the serial build policy; parallelism is strictly opt-in.
const defaultWorkers = 1

// Matrix is a read-only dense n×n table of pairwise great-circle distances,
// stored row-major in a single flat slice for cache-friendly scans.
// Invariants: w[i*n+j] == w[j*n+i] and w[i*n+i] == 0.
type Matrix struct {
	n int
	w []float64
}

// BuildOptions configures matrix construction. Zero value is not usable;
// obtain defaults through BuildMatrix, which applies DefaultBuildOptions
// before the functional options.
type BuildOptions struct {
	// Workers is the number of goroutines computing rows. Must be >= 1.
	Workers int
}

// BuildOption mutates BuildOptions (functional options pattern).
type BuildOption func(*BuildOptions)

// DefaultBuildOptions returns the documented construction defaults:
// Workers: 1 (serial).
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Workers: defaultWorkers}
}

// WithWorkers sets the number of concurrent row builders. Panics on k < 1:
// a non-positive worker count is a programming error, caught at option
// construction rather than deep inside the build.
func WithWorkers(k int) BuildOption {
	if k < 1 {
		panic(ErrBadWorkers.Error())
	}

	return func(o *BuildOptions) {
		o.Workers = k
	}
}

// BuildMatrix computes the full pairwise distance table for s.
//
// Contract:
//   - s must be non-nil with Len() >= 2 (NewSet already guarantees valid
//     coordinates, so the build itself has no failure modes).
//   - The returned matrix is immutable; readers never need synchronization.
//
// Complexity: O(n²/Workers) wall time, O(n²) space.
func BuildMatrix(s *Set, opts ...BuildOption) (*Matrix, error) {
	if s == nil {
		return nil, ErrNilSet
	}
	n := s.Len()
	if n < 2 {
		return nil, ErrTooFewLocations
	}

	o := DefaultBuildOptions()
	var apply BuildOption
	for _, apply = range opts {
		apply(&o)
	}

	m := &Matrix{n: n, w: make([]float64, n*n)}

	if o.Workers == 1 {
		buildRows(m, s, 0, n)

		return m, nil
	}

	// Parallel build: contiguous row bands, one per worker. Bands only write
	// cells (i,j) with j > i plus their mirrors, so no two goroutines touch
	// the same cell.
	var (
		g    errgroup.Group
		band = (n + o.Workers - 1) / o.Workers
		lo   int
	)
	for lo = 0; lo < n; lo += band {
		hi := lo + band
		if hi > n {
			hi = n
		}
		from, to := lo, hi
		g.Go(func() error {
			buildRows(m, s, from, to)

			return nil
		})
	}
	// Workers cannot fail (pure arithmetic); Wait only joins them.
	_ = g.Wait()

	return m, nil
}

// buildRows fills rows [from, to) of m, writing each upper-triangle cell and
// its mirror. The diagonal stays at its zero value from allocation.
func buildRows(m *Matrix, s *Set, from, to int) {
	var (
		i, j int
		d    float64
	)
	for i = from; i < to; i++ {
		for j = i + 1; j < m.n; j++ {
			d = Distance(s.locs[i], s.locs[j])
			m.w[i*m.n+j] = d
			m.w[j*m.n+i] = d
		}
	}
}

// N reports the matrix order (number of locations).
func (m *Matrix) N() int {
	if m == nil {
		return 0
	}

	return m.n
}

// At returns the distance between dense indices i and j with bounds checks.
// Hot paths should prefer Weights and index the flat slice directly.
//
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if m == nil {
		return 0, ErrNilSet
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, ErrIndexRange
	}

	return m.w[i*m.n+j], nil
}

// Weights returns a copy of the flat row-major weight buffer (len n²). The
// copy keeps the matrix immutable while letting hot loops read w[i*n+j]
// without interface or bounds-check overhead; the annealer prefetches this
// once per engine.
//
// Complexity: O(n²) time and space.
func (m *Matrix) Weights() []float64 {
	if m == nil {
		return nil
	}
	out := make([]float64, len(m.w))
	copy(out, m.w)

	return out
}
