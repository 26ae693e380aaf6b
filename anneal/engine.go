// Package anneal - the annealing engine.
//
// The engine owns everything mutable for the duration of a run: the tour
// permutation, its cached energy, the temperature, and the RNG. The distance
// matrix is prefetched once into a flat buffer at construction and only ever
// read. One run is single-writer by design; concurrency lives one level up
// in Race (private state per restart, shared immutable weights).
//
// Step anatomy (Running):
//  1. propose: draw two positions uniformly in [0,n) and compute the swap
//     delta over the affected edges (a==b ⇒ delta 0).
//  2. accept: Metropolis — ΔE ≤ 0 always; otherwise with probability
//     exp(−ΔE/T) against one uniform draw.
//  3. commit or discard: a swap is applied fully before the next stopping
//     check, so cancellation never observes a half-made move.
//  4. cool: T ← T·α.
//
// Stopping, evaluated each step: ctx cancelled or TimeBudget exceeded ⇒
// TimedOut; temperature below MinTemperature or MaxSteps reached ⇒
// Converged. Both terminal states yield the current tour.
package anneal

import (
	"context"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/greatloop/greatloop/geo"
)

// roundScale stabilizes reported lengths to 1e-9 absolute precision, which
// removes cross-platform FP drift without affecting tour ordering.
const roundScale = 1e9

// traceEvery is the energy sampling stride for the run report.
const traceEvery = 256

// deadlineMask throttles wall-clock reads: the deadline is checked every 64
// steps, which keeps time.Now out of the hot loop while bounding overshoot
// to a sliver of the budget.
const deadlineMask = 63

// Engine drives one simulated-annealing search over a fixed location set.
// Construct with New; an Engine is reusable — every Run re-initializes from
// the configured seed, so repeated runs are byte-identical.
type Engine struct {
	ids  []string  // dense index -> location id, enumeration order
	w    []float64 // prefetched flat weight buffer, row-major, order n
	n    int
	opts Options
}

// New validates the inputs and builds an engine bound to set and m.
//
// Contract (checked in priority order):
//   - set non-nil with at least two locations — ErrNilSet / ErrTooFewLocations.
//   - m non-nil and of matching order          — ErrNilMatrix / ErrMatrixMismatch.
//   - options consistent                       — see validateOptions.
//   - AnchorID, when set, present in set       — ErrAnchorNotFound.
//
// After New succeeds the run cannot fail: there is no Failed state.
//
// Complexity: O(n²) time/space for the weight prefetch.
func New(set *geo.Set, m *geo.Matrix, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	var apply Option
	for _, apply = range opts {
		apply(&o)
	}

	return newEngine(set, m, o)
}

// newEngine is the Options-struct construction path shared with Race.
func newEngine(set *geo.Set, m *geo.Matrix, o Options) (*Engine, error) {
	if set == nil {
		return nil, ErrNilSet
	}
	if set.Len() < 2 {
		return nil, ErrTooFewLocations
	}
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.N() != set.Len() {
		return nil, ErrMatrixMismatch
	}
	if err := validateOptions(o); err != nil {
		return nil, err
	}
	if o.AnchorID != "" {
		if _, ok := set.IndexOf(o.AnchorID); !ok {
			return nil, ErrAnchorNotFound
		}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	return &Engine{
		ids:  set.IDs(),
		w:    m.Weights(),
		n:    set.Len(),
		opts: o,
	}, nil
}

// Run executes the annealing loop to a terminal state and returns the
// structured result. ctx may be nil-safe via context.Background(); a ctx
// cancellation or deadline is treated exactly like TimeBudget exhaustion
// (terminal state TimedOut).
//
// Determinism: with identical set, options and seed, two Runs produce
// byte-identical results (ctx/time permitting — a fired deadline is the one
// nondeterministic input, by definition).
//
// Complexity: O(steps) time with O(1) work per step, O(n) space.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// --- Initializing: seed permutation, initial energy, temperature.
	var (
		start = time.Now()
		rng   = rngFromSeed(e.opts.Seed)
		n     = e.n
		perm  = make([]int, n)
		i     int
	)
	for i = 0; i < n; i++ {
		perm[i] = i
	}
	shuffleIntsInPlace(perm, rng)
	if !validatePermutation(perm, n) {
		// Unreachable: a shuffled identity is always a bijection. Guards
		// future refactors of the initializer.
		panic("anneal: internal: seed permutation is not a bijection")
	}

	var (
		energy = tourEnergy(e.w, n, perm)
		temp   = e.opts.InitialTemperature
		trace  = make([]float64, 0, 1+e.opts.MaxSteps/traceEvery)
		state  = Running
	)
	trace = append(trace, energy)

	var (
		useDeadline bool
		deadline    time.Time
	)
	if e.opts.TimeBudget > 0 {
		useDeadline = true
		deadline = start.Add(e.opts.TimeBudget)
	}

	// Optional best-seen shadow state; never feeds back into acceptance.
	var (
		best       []int
		bestEnergy = energy
	)
	if e.opts.TrackBest {
		best = make([]int, n)
		copy(best, perm)
	}

	var (
		steps    int
		accepted int
		uphill   int
	)

	if n == 2 {
		// Degenerate tour: both cyclic orders traverse the same two edges,
		// so no move can change the energy. Converge immediately.
		state = Converged
	}

	// --- Running.
	var (
		a, b  int
		delta float64
	)
	for state == Running {
		// Stopping conditions. External deadline wins over schedule
		// exhaustion when both hold at the same step.
		if err := ctx.Err(); err != nil {
			state = TimedOut

			break
		}
		if useDeadline && steps&deadlineMask == 0 && time.Now().After(deadline) {
			state = TimedOut

			break
		}
		if temp < e.opts.MinTemperature {
			state = Converged

			break
		}
		if steps >= e.opts.MaxSteps {
			state = Converged

			break
		}

		// Propose: two positions with replacement; a==b is a zero-delta
		// no-op, not an error.
		a = rng.Intn(n)
		b = rng.Intn(n)
		delta = swapDelta(e.w, n, perm, a, b)

		// Accept (Metropolis) and commit atomically.
		if metropolis(rng, delta, temp) {
			perm[a], perm[b] = perm[b], perm[a]
			energy += delta
			accepted++
			if delta > 0 {
				uphill++
			}
			if e.opts.TrackBest && energy < bestEnergy {
				bestEnergy = energy
				copy(best, perm)
			}
		}

		// Cool and advance.
		temp *= e.opts.CoolingRate
		steps++

		if steps%traceEvery == 0 {
			trace = append(trace, energy)
		}
		if e.opts.LogEvery > 0 && steps%e.opts.LogEvery == 0 {
			e.opts.Logger.Debug("anneal progress",
				zap.Int("step", steps),
				zap.Float64("temperature", temp),
				zap.Float64("energy", energy),
				zap.Int("accepted", accepted),
			)
		}
	}

	// --- Terminal: finalize the result. The reported length is recomputed
	// from scratch so accumulated per-step deltas cannot drift into it.
	res := Result{
		State:     state,
		Steps:     steps,
		Accepted:  accepted,
		Uphill:    uphill,
		FinalTemp: temp,
		Elapsed:   time.Since(start),
		Length:    round1e9(tourEnergy(e.w, n, perm)),
	}

	tour, err := e.finalize(perm)
	if err != nil {
		return Result{}, err
	}
	res.Tour = tour

	mean, std := stat.MeanStdDev(trace, nil)
	if len(trace) < 2 {
		std = 0
	}
	res.EnergyMean = mean
	res.EnergyStd = std

	if e.opts.TrackBest {
		res.BestLength = round1e9(tourEnergy(e.w, n, best))
		if res.BestTour, err = e.finalize(best); err != nil {
			return Result{}, err
		}
	}

	return res, nil
}

// finalize maps a permutation of dense indices to location ids and rotates
// the cycle to the configured anchor (a display convention — the edge set
// and length are untouched).
func (e *Engine) finalize(perm []int) ([]string, error) {
	tour := make([]string, len(perm))

	var i int
	for i = range perm {
		tour[i] = e.ids[perm[i]]
	}
	if e.opts.AnchorID == "" {
		return tour, nil
	}

	return RotateToAnchor(tour, e.opts.AnchorID)
}

// metropolis implements the acceptance rule: always accept a non-increasing
// move; accept an uphill move with probability exp(−ΔE/T) against a single
// uniform draw. The draw is consumed only on the uphill branch, which keeps
// the accepted-state sequence reproducible for a given seed.
//
// Complexity: O(1).
func metropolis(rng *rand.Rand, delta, temp float64) bool {
	if delta <= 0 {
		return true
	}

	return rng.Float64() < math.Exp(-delta/temp)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Solve is the common path: build the distance matrix for set, run a single
// engine to termination, and return the finalized result.
//
// Complexity: O(n²) build + O(steps) annealing.
func Solve(ctx context.Context, set *geo.Set, opts ...Option) (Result, error) {
	if set == nil {
		return Result{}, ErrNilSet
	}
	m, err := geo.BuildMatrix(set)
	if err != nil {
		return Result{}, err
	}
	eng, err := New(set, m, opts...)
	if err != nil {
		return Result{}, err
	}

	return eng.Run(ctx)
}
