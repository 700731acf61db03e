// Package cli wires configuration, logging, dataset loading and the knapsack
// solvers into the palletpack command.
//
// Config is populated from flags (spf13/pflag), an optional YAML file and
// PALLETPACK_* environment variables, resolved through spf13/viper.
// Logging goes through logr backed by zap; V(DEFAULT) reports dataset loads
// and solves, V(VERBOSE) each dispatch.
//
// Runner has two modes:
//
//   - Menu — choose a dataset by number, then a strategy by number or name
//     (1 brute-force, 2 dp, 3 greedy, 4 bnb, 5 compare all). "0" exits;
//     invalid answers are reported, with a suggestion when one is close,
//     and asked again.
//   - Once — --dataset N --algo NAME solves a single dataset and exits.
//
// Every solve carries a fresh run ID in its log lines and in the rendered
// Report, which is printed as text or YAML.
package cli
