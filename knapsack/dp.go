// Package knapsack — dynamic programming over (item prefix × capacity).
//
// best[i][w] holds the Score of the best subset of items 0..i whose weight is
// at most w (profit desc, count asc, index-sum asc).
//
// Recurrence for item i and capacity w:
//
//	weight[i] > w : best[i][w] = best[i-1][w]
//	otherwise     : better of  skip = best[i-1][w]
//	                           take = best[i-1][w-weight[i]] + item i
//
// A full Score tie keeps "skip": among subsets that tie on the policy keys,
// the one without the higher index is preferred, which is the colex key of
// compare.go. Row 0 applies the same rule against the empty subset, so an
// item with zero profit is never taken.
//
// Backtracking walks i = n-1..1 and marks item i whenever best[i][w] differs
// from best[i-1][w] as a whole Score. Comparing profit alone would miss
// decisions that changed only the count or index sum. Item 0 is marked when
// row 0 at the residual capacity records it.
//
// The table is one dense slice of n·(capacity+1) cells sized from the actual
// input. Time and memory are O(n·capacity); Options.MaxTableCells bounds the
// allocation and ErrTableTooLarge reports inputs that exceed it. Without a
// cell limit the table is still held under maxTableBytes, below the largest
// slice the runtime will allocate. A done Options.Context is noticed once
// per row.
package knapsack

import (
	"math"
	"unsafe"
)

// maxTableBytes is the hard ceiling on the DP table, whatever MaxTableCells says.
const maxTableBytes = min(math.MaxInt, 1<<46)

// maxTableCells is maxTableBytes expressed in Score cells.
const maxTableCells = maxTableBytes / int64(unsafe.Sizeof(Score{}))

// dpTable is the dense best[i][w] table; cell (i, w) lives at i*cols+w.
type dpTable struct {
	cols  int
	cells []Score
}

func (t *dpTable) at(i, w int) Score           { return t.cells[i*t.cols+w] }
func (t *dpTable) put(i, w int, s Score)       { t.cells[i*t.cols+w] = s }
func (t *dpTable) row(i int) []Score           { return t.cells[i*t.cols : (i+1)*t.cols] }
func (t *dpTable) final(n, capacity int) Score { return t.at(n-1, capacity) }

// SolveDP returns the optimal, tie-broken Solution by dynamic programming.
//
// Errors:
//   - validation sentinels from Validate / validateOptions,
//   - ErrTableTooLarge when n·(capacity+1) exceeds opts.MaxTableCells or
//     the table would outgrow maxTableBytes,
//   - opts.Context.Err() when the context is done before the table is full.
func SolveDP(items []Item, capacity int64, opts Options) (Solution, error) {
	if err := Validate(items, capacity); err != nil {
		return Solution{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}

	return dynamic(items, capacity, opts)
}

// tableCells returns n·(capacity+1), or an error when it overflows, breaks
// the configured limit or exceeds maxTableCells.
func tableCells(n int, capacity int64, limit int64) (int, error) {
	cols := capacity + 1
	if cols <= 0 || cols > math.MaxInt64/int64(n) {
		return 0, ErrTableTooLarge
	}
	cells := cols * int64(n)
	if limit > 0 && cells > limit {
		return 0, ErrTableTooLarge
	}
	if cells > maxTableCells {
		return 0, ErrTableTooLarge
	}

	return int(cells), nil
}

// dynamic is the DP core; inputs are already validated.
func dynamic(items []Item, capacity int64, opts Options) (Solution, error) {
	n := len(items)
	if n == 0 || capacity == 0 {
		return emptySolution(DynamicProgramming), nil
	}
	size, err := tableCells(n, capacity, opts.MaxTableCells)
	if err != nil {
		return Solution{}, err
	}

	var (
		c    = int(capacity)
		t    = dpTable{cols: c + 1, cells: make([]Score, size)}
		i, w int
		wi   int
		skip Score
		take Score
		row  []Score
	)

	// Base row: item 0 alone, taken only where it fits and beats the empty set.
	take = Score{}.add(0, items[0].Profit)
	row = t.row(0)
	for w = 0; w <= c; w++ {
		if int64(w) >= items[0].Weight && Compare(take, Score{}) < 0 {
			row[w] = take
		}
	}

	// Remaining rows.
	for i = 1; i < n; i++ {
		if err = contextErr(opts.Context); err != nil {
			return Solution{}, err
		}
		for w = 0; w <= c; w++ {
			skip = t.at(i-1, w)
			if items[i].Weight > int64(w) {
				t.put(i, w, skip)
				continue
			}
			wi = int(items[i].Weight)
			take = t.at(i-1, w-wi).add(i, items[i].Profit)
			if Compare(take, skip) < 0 {
				t.put(i, w, take)
			} else {
				t.put(i, w, skip)
			}
		}
	}

	sel := backtrack(items, &t, c)
	final := t.final(n, c)

	var weight int64
	for _, i = range sel {
		weight += items[i].Weight
	}

	return Solution{
		Algorithm: DynamicProgramming,
		Profit:    final.Profit,
		Weight:    weight,
		Selected:  sel,
	}, nil
}

// backtrack recovers the chosen indices (ascending) from a filled table.
func backtrack(items []Item, t *dpTable, capacity int) []int {
	n := len(items)
	used := make([]bool, n)

	var (
		i int
		w = capacity
	)
	for i = n - 1; i > 0; i-- {
		if t.at(i, w) != t.at(i-1, w) {
			used[i] = true
			w -= int(items[i].Weight)
		}
	}
	// Row 0 records item 0 as a count of one.
	if t.at(0, w).Count == 1 {
		used[0] = true
	}

	sel := make([]int, 0, t.final(n, capacity).Count)
	for i = 0; i < n; i++ {
		if used[i] {
			sel = append(sel, i)
		}
	}

	return sel
}
