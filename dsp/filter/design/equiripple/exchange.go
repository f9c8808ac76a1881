package equiripple

import (
	"fmt"
	"math"
)

// exchange relocates the extremal set to the locations of maximum
// weighted error. It scans the error curve e for local extrema, prunes
// the candidate list down to len(iext) entries with strictly alternating
// signs, and writes the result into iext in place. The return value is
// the number of positions that changed; zero means the Remez iteration
// has reached its fixed point.
//
// Pruning always removes the candidate whose error magnitude least
// supports the equal-ripple property, so the largest deviations survive
// and keep bounding the achieved minimax error from below.
func exchange(e []float64, iext []int) (int, error) {
	want := len(iext) // r+1
	n := len(e)

	found := make([]int, 0, 2*want)

	// The endpoints count as extrema when they exceed their single
	// neighbor; interior points must be strict one-sided peaks.
	if math.Abs(e[0]) > math.Abs(e[1]) {
		found = append(found, 0)
	}
	for i := 1; i < n-1; i++ {
		if (e[i] > 0 && e[i-1] < e[i] && e[i+1] < e[i]) ||
			(e[i] < 0 && e[i-1] > e[i] && e[i+1] > e[i]) {
			found = append(found, i)
		}
	}
	if math.Abs(e[n-1]) > math.Abs(e[n-2]) {
		found = append(found, n-1)
	}

	// Chebyshev theory guarantees at least r+1 extrema for an error curve
	// produced by the interpolation step; fewer means the set degenerated.
	if len(found) < want {
		return 0, fmt.Errorf("%w: only %d error extrema for %d extremal points",
			ErrDegenerate, len(found), want)
	}

	for len(found) > want {
		found = pruneOne(e, found, len(found)-want)
	}

	changed := 0
	for i, idx := range found {
		if iext[i] != idx {
			changed++
		}
		iext[i] = idx
	}
	return changed, nil
}

// pruneOne removes one candidate from the ordered extremum list:
//
//   - if two adjacent candidates share a sign, the smaller of the pair in
//     magnitude goes (it violates alternation);
//   - if the list already alternates and exactly one candidate is excess,
//     the weaker of the two edge candidates goes;
//   - otherwise the globally smallest-magnitude candidate goes.
//
// excess is the number of candidates still to be removed overall.
func pruneOne(e []float64, found []int, excess int) []int {
	imin := 0
	positive := e[found[0]] > 0
	alternating := true

	for i := 1; i < len(found); i++ {
		if math.Abs(e[found[i]]) < math.Abs(e[found[imin]]) {
			imin = i
		}
		switch {
		case positive && e[found[i]] < 0:
			positive = false
		case !positive && e[found[i]] > 0:
			positive = true
		default:
			// Adjacent candidates with the same sign: the smaller one
			// cannot be an alternation extremum.
			if math.Abs(e[found[i]]) < math.Abs(e[found[i-1]]) {
				imin = i
			} else {
				imin = i - 1
			}
			alternating = false
		}
		if !alternating {
			break
		}
	}

	if alternating && excess == 1 {
		if math.Abs(e[found[0]]) < math.Abs(e[found[len(found)-1]]) {
			imin = 0
		} else {
			imin = len(found) - 1
		}
	}

	return append(found[:imin], found[imin+1:]...)
}
