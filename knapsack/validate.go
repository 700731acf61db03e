// Package knapsack — input validation shared by every solver.
//
// Design:
//   - Deterministic, side-effect free; no logging, no panics on user input.
//   - Sentinel errors from types.go, wrapped with the offending index so
//     callers can still match them with errors.Is.
//   - O(n) time, O(n) extra space for the duplicate-ID check.
package knapsack

import (
	"fmt"
	"math"
)

// Validate checks a catalog and capacity against the solver contract:
//   - capacity ≥ 0,
//   - every weight > 0 and every profit ≥ 0,
//   - item IDs unique,
//   - total weight and total profit fit in int64.
//
// Complexity: O(n).
func Validate(items []Item, capacity int64) error {
	if capacity < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativeCapacity, capacity)
	}
	seen := make(map[int]int, len(items))

	var (
		i          int
		it         Item
		prev       int
		dup        bool
		sumW, sumP int64
	)
	for i, it = range items {
		if it.Weight <= 0 {
			return fmt.Errorf("%w: item %d (id %d) has weight %d", ErrNonPositiveWeight, i, it.ID, it.Weight)
		}
		if it.Profit < 0 {
			return fmt.Errorf("%w: item %d (id %d) has profit %d", ErrNegativeProfit, i, it.ID, it.Profit)
		}
		if prev, dup = seen[it.ID]; dup {
			return fmt.Errorf("%w: id %d at items %d and %d", ErrDuplicateID, it.ID, prev, i)
		}
		seen[it.ID] = i
		// Sums must stay representable so solvers can accumulate without overflow.
		if sumW > math.MaxInt64-it.Weight || sumP > math.MaxInt64-it.Profit {
			return fmt.Errorf("%w: at item %d (id %d)", ErrCatalogOverflow, i, it.ID)
		}
		sumW += it.Weight
		sumP += it.Profit
	}

	return nil
}

// validateOptions rejects negative budgets.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 || opts.NodeLimit < 0 || opts.MaxTableCells < 0 {
		return ErrBadOptions
	}

	return nil
}

// FromColumns builds a catalog from parallel slices, the shape used by
// array-oriented callers. The three slices must have equal length.
//
// Complexity: O(n).
func FromColumns(ids []int, weights, profits []int64) ([]Item, error) {
	if len(ids) != len(weights) || len(ids) != len(profits) {
		return nil, fmt.Errorf("%w: %d ids, %d weights, %d profits",
			ErrDimensionMismatch, len(ids), len(weights), len(profits))
	}
	items := make([]Item, len(ids))
	var i int
	for i = range ids {
		items[i] = Item{ID: ids[i], Weight: weights[i], Profit: profits[i]}
	}

	return items, nil
}

// Verify recomputes a Solution against its catalog and capacity: indices in
// range, strictly ascending, total weight ≤ capacity, and Weight/Profit equal
// to the recomputed sums.
//
// Complexity: O(k) for k selected items.
func Verify(items []Item, capacity int64, sol Solution) error {
	var (
		w, p int64
		prev = -1
	)
	for _, idx := range sol.Selected {
		if idx < 0 || idx >= len(items) {
			return fmt.Errorf("%w: index %d out of range [0,%d)", ErrInvalidSolution, idx, len(items))
		}
		if idx <= prev {
			return fmt.Errorf("%w: indices not strictly ascending at %d", ErrInvalidSolution, idx)
		}
		prev = idx
		w += items[idx].Weight
		p += items[idx].Profit
	}
	if w > capacity {
		return fmt.Errorf("%w: weight %d exceeds capacity %d", ErrInvalidSolution, w, capacity)
	}
	if w != sol.Weight || p != sol.Profit {
		return fmt.Errorf("%w: reported (weight %d, profit %d), recomputed (weight %d, profit %d)",
			ErrInvalidSolution, sol.Weight, sol.Profit, w, p)
	}

	return nil
}
