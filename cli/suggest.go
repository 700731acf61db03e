package cli

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/katalvlaran/palletpack/knapsack"
)

// ErrUnknownChoice indicates a menu entry or --algo value that names no strategy.
var ErrUnknownChoice = errors.New("cli: unknown strategy")

// Menu numbers beyond the four strategies.
const (
	choiceExit    = 0
	choiceCompare = 5
)

// compareNames select every strategy at once.
var compareNames = []string{"all", "compare"}

// choice is one resolved strategy selection.
type choice struct {
	all  bool
	algo knapsack.Algorithm
}

// parseChoice resolves a menu number (1-5), a strategy name or alias, or
// one of compareNames. Unknown input is ErrUnknownChoice with suggestions.
func parseChoice(in string) (choice, error) {
	s := strings.ToLower(strings.TrimSpace(in))
	if n, err := strconv.Atoi(s); err == nil {
		switch {
		case n >= 1 && n <= len(knapsack.Algorithms):
			return choice{algo: knapsack.Algorithms[n-1]}, nil
		case n == choiceCompare:
			return choice{all: true}, nil
		}
		return choice{}, fmt.Errorf("%w: %d", ErrUnknownChoice, n)
	}
	for _, name := range compareNames {
		if s == name {
			return choice{all: true}, nil
		}
	}
	if a, err := knapsack.ParseAlgorithm(s); err == nil {
		return choice{algo: a}, nil
	}

	if near := suggest(s, choiceNames()); len(near) > 0 {
		return choice{}, fmt.Errorf("%w: %q (did you mean %s?)", ErrUnknownChoice, in, strings.Join(near, " or "))
	}

	return choice{}, fmt.Errorf("%w: %q", ErrUnknownChoice, in)
}

// choiceNames lists every name parseChoice accepts.
func choiceNames() []string {
	return append(knapsack.AlgorithmNames(), compareNames...)
}

// suggest returns at most two candidates within edit distance of token,
// closest first, ties alphabetical.
func suggest(token string, candidates []string) []string {
	if len(token) < 2 {
		return nil
	}
	type scored struct {
		val  string
		dist int
	}

	results := make([]scored, 0, len(candidates))
	for _, cand := range candidates {
		if strings.HasPrefix(cand, token) {
			results = append(results, scored{val: cand})
			continue
		}
		dist := levenshtein.ComputeDistance(token, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		results = append(results, scored{val: cand, dist: dist})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].val < results[j].val
		}
		return results[i].dist < results[j].dist
	})

	out := make([]string, 0, 2)
	for _, r := range results {
		if len(out) == 2 {
			break
		}
		out = append(out, r.val)
	}

	return out
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
