// Package knapsack — unified dispatcher for the knapsack strategies.
//
// Solve validates the catalog, capacity and options once and routes to the
// strategy named by Options.Algo. The per-strategy entry points
// (SolveExhaustive, SolveDP, SolveGreedy, SolveBranchAndBound) remain
// available for callers that do not need routing.
package knapsack

import "fmt"

// Solve runs the strategy selected by opts.Algo.
//
// Errors: validation sentinels from types.go, ErrUnsupportedAlgorithm for an
// unknown opts.Algo, the budget sentinels of the chosen strategy and
// opts.Context.Err() when the context ends mid-search.
func Solve(items []Item, capacity int64, opts Options) (Solution, error) {
	if err := Validate(items, capacity); err != nil {
		return Solution{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}

	switch opts.Algo {
	case Exhaustive:
		return exhaustive(items, capacity, opts)
	case DynamicProgramming:
		return dynamic(items, capacity, opts)
	case Greedy:
		return greedy(items, capacity), nil
	case BranchAndBound:
		return branchAndBound(items, capacity, opts)
	default:
		return Solution{}, ErrUnsupportedAlgorithm
	}
}

// SolveAll runs every strategy in Algorithms order with the budgets of opts
// (opts.Algo is ignored). It stops at the first error, wrapped with the name
// of the failing strategy.
func SolveAll(items []Item, capacity int64, opts Options) ([]Solution, error) {
	out := make([]Solution, 0, len(Algorithms))
	for _, a := range Algorithms {
		opts.Algo = a
		sol, err := Solve(items, capacity, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a, err)
		}
		out = append(out, sol)
	}

	return out, nil
}
