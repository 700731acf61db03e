// Package knapsack — core types, sentinel errors and solver options.
package knapsack

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"
)

// Sentinel errors returned by the knapsack solvers.
var (
	// ErrNegativeCapacity indicates a capacity below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNonPositiveWeight indicates an item with weight ≤ 0.
	ErrNonPositiveWeight = errors.New("knapsack: item weight must be positive")

	// ErrNegativeProfit indicates an item with profit < 0.
	ErrNegativeProfit = errors.New("knapsack: item profit must be non-negative")

	// ErrDuplicateID indicates two catalog items sharing the same ID.
	ErrDuplicateID = errors.New("knapsack: duplicate item ID")

	// ErrDimensionMismatch indicates parallel input slices of different lengths.
	ErrDimensionMismatch = errors.New("knapsack: dimension mismatch")

	// ErrCatalogOverflow indicates catalog weight or profit totals that do
	// not fit in an int64.
	ErrCatalogOverflow = errors.New("knapsack: catalog totals overflow int64")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("knapsack: unsupported algorithm")

	// ErrBadOptions indicates a negative budget in Options.
	ErrBadOptions = errors.New("knapsack: invalid options")

	// ErrTimeLimit is returned when Options.TimeLimit elapses before the search completes.
	ErrTimeLimit = errors.New("knapsack: time limit exceeded")

	// ErrNodeLimit is returned when Options.NodeLimit subsets/nodes were visited
	// before the search completed.
	ErrNodeLimit = errors.New("knapsack: node limit exceeded")

	// ErrTableTooLarge is returned by SolveDP when n·(capacity+1) exceeds
	// Options.MaxTableCells or the fixed ceiling on table memory.
	ErrTableTooLarge = errors.New("knapsack: dynamic-programming table too large")

	// ErrInvalidSolution is returned by Verify when a Solution does not match its catalog.
	ErrInvalidSolution = errors.New("knapsack: invalid solution")
)

// Item is a single catalog entry. Items are immutable once loaded.
type Item struct {
	// ID is the external identifier (e.g. pallet number). Unique within a catalog.
	ID int

	// Weight is the capacity the item consumes; must be > 0.
	Weight int64

	// Profit is the value gained by selecting the item; must be ≥ 0.
	Profit int64
}

// Solution is the outcome of one solver call.
type Solution struct {
	// Algorithm is the strategy that produced the solution.
	Algorithm Algorithm

	// Profit is the total profit of the selected items.
	Profit int64

	// Weight is the total weight of the selected items; always ≤ capacity.
	Weight int64

	// Selected holds catalog indices of chosen items in ascending order.
	// It is never nil; an empty selection is an empty slice.
	Selected []int
}

// IDs maps the selected catalog indices to item IDs, ascending by ID.
func (s Solution) IDs(items []Item) []int {
	ids := make([]int, 0, len(s.Selected))
	for _, idx := range s.Selected {
		ids = append(ids, items[idx].ID)
	}
	sort.Ints(ids)

	return ids
}

// Algorithm selects a solving strategy.
type Algorithm int

const (
	// Exhaustive enumerates every subset (exact, exponential).
	Exhaustive Algorithm = iota + 1

	// DynamicProgramming fills the (item × capacity) table (exact, pseudo-polynomial).
	DynamicProgramming

	// Greedy takes items by descending profit density (approximation).
	Greedy

	// BranchAndBound explores the decision tree with LP-relaxation pruning (exact).
	BranchAndBound
)

// Algorithms lists every strategy in menu order.
var Algorithms = []Algorithm{Exhaustive, DynamicProgramming, Greedy, BranchAndBound}

var algorithmNames = map[Algorithm]string{
	Exhaustive:         "brute-force",
	DynamicProgramming: "dp",
	Greedy:             "greedy",
	BranchAndBound:     "bnb",
}

var algorithmAliases = map[string]Algorithm{
	"brute-force":         Exhaustive,
	"bruteforce":          Exhaustive,
	"exhaustive":          Exhaustive,
	"bf":                  Exhaustive,
	"dp":                  DynamicProgramming,
	"dynamic":             DynamicProgramming,
	"dynamic-programming": DynamicProgramming,
	"greedy":              Greedy,
	"approx":              Greedy,
	"approximation":       Greedy,
	"bnb":                 BranchAndBound,
	"branch-and-bound":    BranchAndBound,
	"ilp":                 BranchAndBound,
}

// String returns the canonical name of a (the one ParseAlgorithm accepts first).
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return "unknown"
}

// Exact reports whether the strategy guarantees the optimal, tie-broken subset.
func (a Algorithm) Exact() bool {
	return a == Exhaustive || a == DynamicProgramming || a == BranchAndBound
}

// ParseAlgorithm resolves a canonical name or alias (case-insensitive).
// Unknown names yield ErrUnsupportedAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	if a, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}

	return 0, ErrUnsupportedAlgorithm
}

// AlgorithmNames returns every accepted name and alias, sorted.
func AlgorithmNames() []string {
	names := make([]string, 0, len(algorithmAliases))
	for name := range algorithmAliases {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Options configures a solver call.
type Options struct {
	// Algo selects the strategy Solve routes to. The per-strategy entry
	// points ignore it.
	Algo Algorithm

	// TimeLimit is a soft wall-clock budget for Exhaustive and
	// BranchAndBound, checked every few thousand steps. 0 ⇒ unlimited.
	TimeLimit time.Duration

	// NodeLimit caps the subsets enumerated (Exhaustive) or nodes expanded
	// (BranchAndBound). 0 ⇒ unlimited.
	NodeLimit int64

	// MaxTableCells caps n·(capacity+1) for DynamicProgramming. 0 ⇒ only
	// the platform ceiling applies.
	MaxTableCells int64

	// Context, when non-nil, stops Exhaustive, BranchAndBound and
	// DynamicProgramming early with Context.Err() once it is done.
	Context context.Context
}

// DefaultOptions returns Options with DynamicProgramming selected and no budgets.
func DefaultOptions() Options {
	return Options{
		Algo:          DynamicProgramming,
		TimeLimit:     0,
		NodeLimit:     0,
		MaxTableCells: 0,
	}
}
