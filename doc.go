// Package palletpack decides which pallets to load onto a truck: the 0/1
// knapsack problem over a pallet catalog and a truck capacity.
//
// 🚚 What is palletpack?
//
//	A small, dependency-light toolkit that brings together:
//		• Four solvers: brute force, dynamic programming, branch-and-bound, greedy
//		• One tie-break law shared by every exact solver
//		• CSV loaders for numbered pallet/truck datasets
//		• An interactive menu and a one-shot command
//
// ✨ Why palletpack?
//
//   - Deterministic – exact solvers return the same subset, not just the same profit
//   - No hidden ceilings – tables and masks are sized from the input
//   - Budgets – time, node and table limits instead of silent truncation
//   - Pure library core – solvers never print, log or keep state
//
// Layout:
//
//	knapsack/          — Item, Solution, the four solvers, Solve/SolveAll, Verify
//	dataset/           — Pallets_NN.csv / TruckAndPallets_NN.csv loaders
//	cli/               — config (pflag + viper), logging (zap via logr), menu, rendering
//	cmd/palletpack/    — the command
//	examples/          — a runnable depot scenario
//
// Quick example:
//
//	items := []knapsack.Item{{ID: 1, Weight: 10, Profit: 60}, {ID: 2, Weight: 20, Profit: 100}}
//	sol, err := knapsack.Solve(items, 25, knapsack.DefaultOptions())
//
//	go install github.com/katalvlaran/palletpack/cmd/palletpack@latest
package palletpack
