// Package anneal - tour state primitives.
//
// The tour is a permutation of dense location indices; the cycle closes from
// the last element back to the first. These helpers are pure functions over
// a prefetched flat weight buffer w (row-major, order n), so the hot loop
// pays no interface or bounds-check overhead.
package anneal

// tourEnergy returns the total cyclic length of perm: the sum of
// w[perm[i-1]][perm[i]] over all positions, with index -1 wrapping to n-1.
// This is the full-recompute energy definition; the cached engine energy
// must always agree with it to floating-point tolerance.
//
// Complexity: O(n) time, O(1) space.
func tourEnergy(w []float64, n int, perm []int) float64 {
	var (
		e    float64
		i    int
		prev = perm[n-1]
	)
	for i = 0; i < n; i++ {
		e += w[prev*n+perm[i]]
		prev = perm[i]
	}

	return e
}

// swapDelta returns the energy change of swapping positions a and b of perm,
// without mutating perm. The result equals
//
//	tourEnergy(after swap) − tourEnergy(before swap)
//
// computed incrementally: only the distinct edges incident to positions a
// and b change, and there are at most four of them. Deduplicating the edge
// set makes adjacent positions and the wrap-around edge fall out naturally,
// so the incremental delta matches the full-recompute difference exactly in
// real arithmetic (and to FP tolerance otherwise) — acceptance statistics
// are preserved while each proposal costs O(1) instead of O(n).
//
// a == b is a legal no-op move with delta 0, not an error.
//
// Complexity: O(1) time, O(1) space.
func swapDelta(w []float64, n int, perm []int, a, b int) float64 {
	if a == b {
		return 0
	}

	// Value occupying position p once the swap is applied.
	at := func(p int) int {
		switch p {
		case a:
			return perm[b]
		case b:
			return perm[a]
		default:
			return perm[p]
		}
	}

	// Collect the distinct left endpoints of affected edges (p, p+1):
	// positions a-1, a, b-1, b modulo n.
	var (
		edges [4]int
		ne    int
	)
	add := func(p int) {
		if p < 0 {
			p += n
		}
		var k int
		for k = 0; k < ne; k++ {
			if edges[k] == p {
				return
			}
		}
		edges[ne] = p
		ne++
	}
	add(a - 1)
	add(a)
	add(b - 1)
	add(b)

	var (
		before float64
		after  float64
		k, p   int
		q      int
	)
	for k = 0; k < ne; k++ {
		p = edges[k]
		q = p + 1
		if q == n {
			q = 0
		}
		before += w[perm[p]*n+perm[q]]
		after += w[at(p)*n+at(q)]
	}

	return after - before
}

// validatePermutation checks that perm is a bijection onto {0..n-1}. The
// engine asserts it once at initialization and relies on structure afterwards
// (a swap cannot break a bijection); white-box tests assert it on results.
//
// Complexity: O(n) time, O(n) space.
func validatePermutation(perm []int, n int) bool {
	if len(perm) != n || n < 1 {
		return false
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
