// Package knapsack provides solvers for the bounded 0/1 knapsack problem.
//
// Given a catalog of items (ID, weight, profit) and a capacity, a solver picks
// a subset of the catalog whose total weight fits the capacity and whose total
// profit is as large as possible. Every item is either taken once or left out.
//
// Four interchangeable strategies are available:
//
//   - SolveExhaustive — enumerates all 2ⁿ subsets (Gray-code order).
//
//   - Complexity: O(2ⁿ) time, O(n) memory.
//
//   - Practical up to n≈25–30; use Options.TimeLimit / Options.NodeLimit
//     to fail fast on larger catalogs.
//
//   - SolveDP — dynamic programming over (item prefix × residual capacity).
//
//   - Complexity: O(n·C) time and memory (C = capacity).
//
//   - Options.MaxTableCells bounds the table size.
//
//   - SolveBranchAndBound — depth-first search with an explicit stack and the
//     fractional (LP) relaxation as upper bound.
//
//   - Complexity: exponential worst case; pruning makes it fast in practice.
//
//   - SolveGreedy — profit-density heuristic; an approximation only.
//
//   - Complexity: O(n log n).
//
// Tie-break policy:
//
// The three exact strategies (Exhaustive, DP, BranchAndBound) agree not only
// on the optimal profit but on the optimal subset. Among feasible subsets with
// the maximum profit they return the one with the fewest items, then the
// smallest sum of catalog indices, then the colexicographically smallest
// index set (the subset whose highest differing index is absent). The order
// lives in one place (compare.go) and is shared by all three solvers.
//
// Greedy makes no optimality claim and is never held to the tie-break policy.
//
// Errors:
//
// Invalid input is rejected up front with sentinel errors from types.go
// (ErrNegativeCapacity, ErrNonPositiveWeight, ErrNegativeProfit, …).
// A capacity of 0 or an empty catalog is not an error: every strategy returns
// the empty Solution with profit 0.
//
// Solvers are pure: no logging, no global state, no goroutines. Each call
// allocates its own working storage and returns an independent Solution.
package knapsack
