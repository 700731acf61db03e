package knapsack

import "sort"

// SolveGreedy approximates the knapsack by profit density.
//
// A private index slice is stable-sorted by descending profit/weight (exact
// cross multiplication; equal densities keep catalog order). The sorted order
// is scanned once: every item that fits the remaining capacity is taken. The
// scan stops when capacity reaches zero or the items run out.
//
// No backtracking and no optimality guarantee: the result may be worse than
// the optimum (and never better). It is not held to the tie-break policy of
// the exact strategies; its only determinism comes from the stable sort.
//
// Complexity: O(n log n) time, O(n) memory.
func SolveGreedy(items []Item, capacity int64, opts Options) (Solution, error) {
	if err := Validate(items, capacity); err != nil {
		return Solution{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}

	return greedy(items, capacity), nil
}

func greedy(items []Item, capacity int64) Solution {
	if len(items) == 0 || capacity == 0 {
		return emptySolution(Greedy)
	}

	var (
		order  = densityOrder(items)
		remain = capacity
		sol    = Solution{Algorithm: Greedy, Selected: make([]int, 0, len(items))}
		it     Item
	)
	for _, idx := range order {
		if remain == 0 {
			break
		}
		it = items[idx]
		if it.Weight > remain {
			continue
		}
		remain -= it.Weight
		sol.Weight += it.Weight
		sol.Profit += it.Profit
		sol.Selected = append(sol.Selected, idx)
	}
	sort.Ints(sol.Selected)

	return sol
}
