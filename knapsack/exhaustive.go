// Package knapsack — exhaustive search over every subset.
//
// SolveExhaustive enumerates all 2ⁿ subsets of the catalog. Subsets are
// produced in reflected Gray-code order, so each step adds or removes exactly
// one item and the running weight, profit, count and index sum are updated in
// O(1). Feasible subsets are ranked by compareSubsets; enumeration order does
// not influence the result because that order is total.
//
// Cost:
//   - Time:   O(2ⁿ) subsets, O(1) amortized per subset (+O(n/64) per incumbent tie).
//   - Memory: O(n) for the current and best membership masks.
//
// The number of items is not capped: masks and the step counter grow with n.
// Catalogs beyond n≈25–30 take seconds to hours; bound the run with
// Options.TimeLimit or Options.NodeLimit instead of relying on a hidden limit.
package knapsack

// SolveExhaustive returns the optimal, tie-broken Solution by brute force.
//
// Errors:
//   - validation sentinels from Validate / validateOptions,
//   - ErrTimeLimit / ErrNodeLimit when a budget in opts runs out,
//   - opts.Context.Err() once the context is done.
func SolveExhaustive(items []Item, capacity int64, opts Options) (Solution, error) {
	if err := Validate(items, capacity); err != nil {
		return Solution{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}

	return exhaustive(items, capacity, opts)
}

// exhaustive is the search core; inputs are already validated.
func exhaustive(items []Item, capacity int64, opts Options) (Solution, error) {
	n := len(items)
	if n == 0 || capacity == 0 {
		return emptySolution(Exhaustive), nil
	}

	var (
		cur      = newBitset(n)
		curScore Score
		curW     int64

		best      = newBitset(n)
		bestScore Score // the empty subset is feasible and is the first incumbent
		bestW     int64

		gc  = newGrayCounter(n)
		bud = newBudget(opts)
		i   int
	)
	for {
		if i = gc.next(); i < 0 {
			break
		}
		if err := bud.tick(); err != nil {
			return Solution{}, err
		}

		// Flip item i in or out of the current subset.
		cur.flip(i)
		if cur.test(i) {
			curW += items[i].Weight
			curScore = curScore.add(i, items[i].Profit)
		} else {
			curW -= items[i].Weight
			curScore = Score{
				Profit:   curScore.Profit - items[i].Profit,
				Count:    curScore.Count - 1,
				IndexSum: curScore.IndexSum - int64(i),
			}
		}

		if curW > capacity {
			continue
		}
		if compareSubsets(curScore, cur, bestScore, best) < 0 {
			copy(best, cur)
			bestScore = curScore
			bestW = curW
		}
	}

	return Solution{
		Algorithm: Exhaustive,
		Profit:    bestScore.Profit,
		Weight:    bestW,
		Selected:  best.indices(),
	}, nil
}

// emptySolution is the well-defined answer for capacity 0 or an empty catalog.
func emptySolution(a Algorithm) Solution {
	return Solution{Algorithm: a, Selected: []int{}}
}
