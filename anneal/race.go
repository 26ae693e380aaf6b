// Package anneal - concurrent multi-start racing.
//
// Independent annealing runs with different seeds may end in different local
// optima; racing several of them and keeping the shortest is the cheapest
// way to buy tour quality with cores instead of steps. Each restart owns a
// private engine (private permutation, private RNG) and only reads the
// shared immutable distance matrix, so the runs never synchronize beyond
// the final join.
package anneal

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/greatloop/greatloop/geo"
)

// Race runs `restarts` independent annealing searches concurrently over the
// same set and matrix and returns the shortest final tour.
//
// Seeding: restart k runs with deriveSeed(base, k), where base is the
// configured Seed after the seed==0 policy. The derivation is a pure
// function, so Race is as deterministic as a single Run.
//
// Selection: strictly smallest Length wins; on a tie the lowest restart
// index is kept, which makes the winner independent of goroutine scheduling.
//
// Contract:
//   - restarts >= 1, else ErrBadRestarts.
//   - set/m/options constraints are those of New, validated before any
//     goroutine starts.
//
// Complexity: restarts × O(steps) work across the errgroup; O(restarts·n)
// space for the retained results.
func Race(ctx context.Context, set *geo.Set, m *geo.Matrix, restarts int, opts ...Option) (Result, error) {
	if restarts < 1 {
		return Result{}, ErrBadRestarts
	}
	if ctx == nil {
		ctx = context.Background()
	}

	base := DefaultOptions()
	var apply Option
	for _, apply = range opts {
		apply(&base)
	}

	// Validate once upfront so a misconfiguration is reported before any
	// work is spawned; the per-restart constructors cannot fail after this.
	if _, err := newEngine(set, m, base); err != nil {
		return Result{}, err
	}

	var (
		results = make([]Result, restarts)
		g, gctx = errgroup.WithContext(ctx)
		parent  = normalizeSeed(base.Seed)
		k       int
	)
	for k = 0; k < restarts; k++ {
		o := base
		o.Seed = deriveSeed(parent, uint64(k))
		slot := k
		g.Go(func() error {
			eng, err := newEngine(set, m, o)
			if err != nil {
				return err
			}
			r, err := eng.Run(gctx)
			if err != nil {
				return err
			}
			results[slot] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	bestIdx := 0
	for k = 1; k < restarts; k++ {
		if results[k].Length < results[bestIdx].Length {
			bestIdx = k
		}
	}

	return results[bestIdx], nil
}
