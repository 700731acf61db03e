// Package knapsack — the shared tie-break comparator.
//
// Every exact strategy ranks candidate subsets through this file so the
// optimal subset cannot drift between Exhaustive, DP and BranchAndBound.
//
// Order (best first):
//  1. higher Profit,
//  2. fewer items (Count),
//  3. smaller sum of catalog indices (IndexSum),
//  4. colexicographically smaller index set: walking indices from the top,
//     the first index present in exactly one subset makes that subset worse.
//
// Keys 1–3 are the documented policy. Key 4 only separates distinct subsets
// that tie on 1–3 (e.g. {0,3} and {1,2}); it is what DP's "keep skip on a full
// tie" rule computes implicitly, so the three solvers return the same subset.
package knapsack

// Score is the ranking key of a subset without its membership.
type Score struct {
	Profit   int64
	Count    int
	IndexSum int64
}

// add returns s extended by the item at index idx with profit p.
func (s Score) add(idx int, p int64) Score {
	return Score{Profit: s.Profit + p, Count: s.Count + 1, IndexSum: s.IndexSum + int64(idx)}
}

// Compare orders two scores by profit desc, count asc, index-sum asc.
// It returns -1 when a ranks better than b, +1 when worse, 0 on a full tie.
//
// Complexity: O(1).
func Compare(a, b Score) int {
	switch {
	case a.Profit != b.Profit:
		if a.Profit > b.Profit {
			return -1
		}
		return 1
	case a.Count != b.Count:
		if a.Count < b.Count {
			return -1
		}
		return 1
	case a.IndexSum != b.IndexSum:
		if a.IndexSum < b.IndexSum {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// compareSubsets extends Compare with the colex key on membership masks.
// Distinct subsets never compare equal.
//
// Complexity: O(1) when scores differ, O(n/64) otherwise.
func compareSubsets(as Score, am bitset, bs Score, bm bitset) int {
	if c := Compare(as, bs); c != 0 {
		return c
	}
	hi := am.highestDiff(bm)
	if hi < 0 {
		return 0
	}
	// The subset holding the highest differing index loses.
	if am.test(hi) {
		return 1
	}

	return -1
}
