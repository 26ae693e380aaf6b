// Package greatloop computes short closed tours over fixed sets of
// geographic locations with a seedable simulated-annealing heuristic.
//
// 🚀 What is greatloop?
//
//	A small, deterministic tour optimizer split into focused packages:
//		• geo/     — locations, validated sets, great-circle distances,
//		             and the dense pairwise distance matrix
//		• anneal/  — the annealing engine (swap moves, Metropolis
//		             acceptance, geometric cooling), tour finalization,
//		             and concurrent multi-start racing
//		• tourio/  — CSV boundary for prepared location tables and
//		             finished tours
//		• cmd/greatloop — the host process wiring it all together
//
// The optimizer trades optimality for bounded running time: it always
// returns a valid permutation of the input ids, never a guarantee that the
// tour is globally shortest.
//
// Quick sketch:
//
//	set, _ := geo.NewSet(locations)
//	res, _ := anneal.Solve(ctx, set,
//	    anneal.WithSeed(42),
//	    anneal.WithAnchor("6941775"),
//	)
//	fmt.Println(res.Length, res.Tour)
//
//	go get github.com/greatloop/greatloop
package greatloop
