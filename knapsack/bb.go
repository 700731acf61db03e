// Package knapsack — Branch-and-Bound over the include/exclude decision tree.
//
// SolveBranchAndBound explores one tree level per catalog item, depth-first,
// with an explicit stack instead of recursion. Popping a node and pushing its
// two children keeps at most n+1 nodes alive.
//
// Node state: level (items decided), profit, weight, Score, decision mask over
// items 0..level-1, and an upper bound on any completion of the node.
//
// Bound (fractional / LP relaxation):
//   - Undecided items are walked in profit-density order (ties by index).
//   - Whole items are added while they fit; the first item that does not fit
//     contributes profit·remain/weight, then the walk stops.
//   - Computed exactly in integers as ⌊LP⌋: profits are integral, so no
//     completion can beat the floor of the relaxation.
//
// Density order keeps the bound admissible whatever the catalog order is:
// the greedy-by-density fractional fill is the LP optimum, and the LP optimum
// dominates every integral completion.
//
// Pruning: once an incumbent leaf exists, a node (or a child before it is
// pushed) is dropped when its optimistic Score (bound, count, index sum so
// far) already ranks strictly worse than the incumbent. In particular every
// node with bound < incumbent profit is dropped. Nodes whose bound equals the
// incumbent profit survive while they may still win the tie-break, since
// completions can only add items. Leaves (level == n) are ranked with
// compareSubsets.
//
// Children are pushed "exclude" first and "include" second, so the include
// branch is explored first and strong incumbents appear early.
//
// Complexity:
//   - Worst case O(2ⁿ) nodes; O(n) bound per child push.
//   - Memory: O(n) nodes of O(n/64) words each, plus O(n) for the density order.
package knapsack

import (
	"math/bits"
	"sort"
)

// bbNode is one partial assignment on the explicit DFS stack.
type bbNode struct {
	level  int
	weight int64
	score  Score
	mask   bitset
	bound  int64
}

// bbEngine holds the read-only inputs and the incumbent for one search.
type bbEngine struct {
	items    []Item
	capacity int64
	order    []int // catalog indices by descending density, ties by index

	hasBest   bool
	bestScore Score
	bestMask  bitset
	bestW     int64

	bud budget
}

// SolveBranchAndBound returns the optimal, tie-broken Solution by
// depth-first Branch-and-Bound.
//
// Errors:
//   - validation sentinels from Validate / validateOptions,
//   - ErrTimeLimit / ErrNodeLimit when a budget in opts runs out,
//   - opts.Context.Err() once the context is done.
func SolveBranchAndBound(items []Item, capacity int64, opts Options) (Solution, error) {
	if err := Validate(items, capacity); err != nil {
		return Solution{}, err
	}
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}

	return branchAndBound(items, capacity, opts)
}

// branchAndBound is the search core; inputs are already validated.
func branchAndBound(items []Item, capacity int64, opts Options) (Solution, error) {
	n := len(items)
	if n == 0 || capacity == 0 {
		return emptySolution(BranchAndBound), nil
	}

	e := bbEngine{
		items:    items,
		capacity: capacity,
		order:    densityOrder(items),
		bud:      newBudget(opts),
	}

	root := bbNode{mask: newBitset(n)}
	root.bound = e.upperBound(0, 0, 0)

	stack := make([]bbNode, 0, n+1)
	stack = append(stack, root)

	var (
		node  bbNode
		it    Item
		child bbNode
	)
	for len(stack) > 0 {
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := e.bud.tick(); err != nil {
			return Solution{}, err
		}

		if node.level == n {
			e.offer(node)
			continue
		}
		// The incumbent may have improved since the node was pushed.
		if e.prunable(node.bound, node.score) {
			continue
		}

		it = items[node.level]

		// Exclude item `level`: always legal.
		child = bbNode{
			level:  node.level + 1,
			weight: node.weight,
			score:  node.score,
			mask:   node.mask,
		}
		child.bound = e.upperBound(child.level, child.score.Profit, child.weight)
		if !e.prunable(child.bound, child.score) {
			child.mask = node.mask.clone()
			stack = append(stack, child)
		}

		// Include item `level`: only when it fits.
		if node.weight+it.Weight <= capacity {
			child = bbNode{
				level:  node.level + 1,
				weight: node.weight + it.Weight,
				score:  node.score.add(node.level, it.Profit),
			}
			child.bound = e.upperBound(child.level, child.score.Profit, child.weight)
			if !e.prunable(child.bound, child.score) {
				child.mask = node.mask.clone()
				child.mask.set(node.level)
				stack = append(stack, child)
			}
		}
	}

	return Solution{
		Algorithm: BranchAndBound,
		Profit:    e.bestScore.Profit,
		Weight:    e.bestW,
		Selected:  e.bestMask.indices(),
	}, nil
}

// prunable reports whether no completion of a node can beat the incumbent.
// Completions reach at most `bound` profit and at least the node's count and
// index sum, so that optimistic Score ranks no worse than any of them.
func (e *bbEngine) prunable(bound int64, s Score) bool {
	if !e.hasBest {
		return false
	}
	optimistic := Score{Profit: bound, Count: s.Count, IndexSum: s.IndexSum}

	return Compare(optimistic, e.bestScore) > 0
}

// offer ranks a complete assignment against the incumbent.
func (e *bbEngine) offer(leaf bbNode) {
	if e.hasBest && compareSubsets(leaf.score, leaf.mask, e.bestScore, e.bestMask) >= 0 {
		return
	}
	e.hasBest = true
	e.bestScore = leaf.score
	e.bestMask = leaf.mask
	e.bestW = leaf.weight
}

// upperBound returns ⌊LP relaxation⌋ for a node that has decided items
// 0..level-1 with the given profit and weight.
//
// Complexity: O(n).
func (e *bbEngine) upperBound(level int, profit, weight int64) int64 {
	var (
		remain = e.capacity - weight
		bound  = profit
		it     Item
	)
	for _, idx := range e.order {
		if idx < level {
			continue
		}
		if remain == 0 {
			break
		}
		it = e.items[idx]
		if it.Weight <= remain {
			remain -= it.Weight
			bound += it.Profit
			continue
		}
		// Fractional part: ⌊profit·remain/weight⌋ with remain < weight,
		// computed in 128 bits so large profits cannot overflow.
		hi, lo := bits.Mul64(uint64(it.Profit), uint64(remain))
		q, _ := bits.Div64(hi, lo, uint64(it.Weight))
		bound += int64(q)

		break
	}

	return bound
}

// densityOrder returns catalog indices sorted by descending profit/weight.
// The sort is stable, so equal densities keep catalog order.
//
// Complexity: O(n log n).
func densityOrder(items []Item) []int {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return denser(items[order[a]], items[order[b]])
	})

	return order
}

// denser reports whether a has strictly higher profit density than b, by exact
// cross multiplication: a.Profit·b.Weight > b.Profit·a.Weight.
func denser(a, b Item) bool {
	ah, al := bits.Mul64(uint64(a.Profit), uint64(b.Weight))
	bh, bl := bits.Mul64(uint64(b.Profit), uint64(a.Weight))
	if ah != bh {
		return ah > bh
	}

	return al > bl
}
