// Package anneal provides a simulated-annealing optimizer for closed
// geographic tours over a precomputed distance matrix (see package geo).
//
// The engine is a plain state machine, composed rather than inherited:
//
//	Initializing → Running → Converged   (temperature floor or step budget)
//	               Running → TimedOut    (wall-clock budget or ctx cancel)
//
// Each Running step proposes a swap of two tour positions, evaluates the
// energy delta over the (at most four) affected edges, accepts via the
// Metropolis criterion — always when ΔE ≤ 0, with probability exp(−ΔE/T)
// otherwise — and cools the temperature geometrically. There is no Failed
// state: malformed input is rejected by New before Running is ever entered.
//
// Determinism:
//   - Every random draw comes from a single seedable source owned by the
//     engine; identical set, options and seed reproduce the run exactly.
//   - Racing restarts derive independent substreams from the base seed via
//     a SplitMix64 mix, so Race is deterministic as well.
//
// The optimizer is a heuristic: it guarantees a valid permutation and a
// bounded running time, not a globally optimal tour.
//
// Use Solve for the common path (build matrix, run once, finalize), New/Run
// when the matrix is shared across runs, and Race to run several seeds
// concurrently and keep the shortest result.
package anneal
