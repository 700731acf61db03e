// Package knapsack_test provides small helpers shared across *_test.go files.
package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/palletpack/knapsack"
)

const (
	// seedDet is the deterministic seed for random catalogs.
	seedDet = int64(7)

	// randomRounds is the number of random instances per cross-check.
	randomRounds = 300
)

// exactSolvers lists the strategies bound to the tie-break policy.
var exactSolvers = map[string]func([]knapsack.Item, int64, knapsack.Options) (knapsack.Solution, error){
	"exhaustive": knapsack.SolveExhaustive,
	"dp":         knapsack.SolveDP,
	"bnb":        knapsack.SolveBranchAndBound,
}

// allSolvers adds Greedy to exactSolvers.
var allSolvers = map[string]func([]knapsack.Item, int64, knapsack.Options) (knapsack.Solution, error){
	"exhaustive": knapsack.SolveExhaustive,
	"dp":         knapsack.SolveDP,
	"bnb":        knapsack.SolveBranchAndBound,
	"greedy":     knapsack.SolveGreedy,
}

// ignoreAlgo compares Solutions without the producing strategy.
var ignoreAlgo = cmpopts.IgnoreFields(knapsack.Solution{}, "Algorithm")

// scenarioItems is the classic 60/100/120 instance (capacity 50 ⇒ 220).
func scenarioItems() []knapsack.Item {
	return []knapsack.Item{
		{ID: 1, Weight: 10, Profit: 60},
		{ID: 2, Weight: 20, Profit: 100},
		{ID: 3, Weight: 30, Profit: 120},
	}
}

// randomCatalog builds n items with weights in [1,maxW] and profits in [0,maxP].
func randomCatalog(rng *rand.Rand, n int, maxW, maxP int64) []knapsack.Item {
	items := make([]knapsack.Item, n)
	var i int
	for i = 0; i < n; i++ {
		items[i] = knapsack.Item{
			ID:     i + 1,
			Weight: 1 + rng.Int63n(maxW),
			Profit: rng.Int63n(maxP + 1),
		}
	}

	return items
}

// mustSolve runs solve and fails the test on error or on an invalid Solution.
func mustSolve(
	t *testing.T,
	solve func([]knapsack.Item, int64, knapsack.Options) (knapsack.Solution, error),
	items []knapsack.Item,
	capacity int64,
) knapsack.Solution {
	t.Helper()
	sol, err := solve(items, capacity, knapsack.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, knapsack.Verify(items, capacity, sol))
	require.NotNil(t, sol.Selected)

	return sol
}

// requireSameSolution fails with a structural diff when a and b differ
// (ignoring the Algorithm field).
func requireSameSolution(t *testing.T, a, b knapsack.Solution, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(a, b, ignoreAlgo); diff != "" {
		require.Fail(t, "solutions differ (-a +b):\n"+diff, msgAndArgs...)
	}
}
