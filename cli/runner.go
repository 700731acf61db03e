package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/katalvlaran/palletpack/dataset"
	"github.com/katalvlaran/palletpack/knapsack"
)

// errExit ends the menu loop without error.
var errExit = errors.New("exit")

// LoadFunc loads dataset n from dir; dataset.Load in production.
type LoadFunc func(dir string, n int) (*dataset.Dataset, error)

// Runner drives the interactive menu and one-shot solves.
type Runner struct {
	cfg  *Config
	log  logr.Logger
	in   *bufio.Scanner
	out  io.Writer
	load LoadFunc
}

// NewRunner returns a Runner reading answers from in and writing prompts
// and results to out.
func NewRunner(cfg *Config, logger logr.Logger, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		cfg:  cfg,
		log:  logger,
		in:   bufio.NewScanner(in),
		out:  out,
		load: dataset.Load,
	}
}

// WithLoader replaces the dataset loader.
func (r *Runner) WithLoader(load LoadFunc) *Runner {
	r.load = load
	return r
}

// Run solves once when the Config asks for it, otherwise starts the menu.
func (r *Runner) Run(ctx context.Context) error {
	if r.cfg.OneShot() {
		return r.Once(ctx, r.cfg.Dataset, r.cfg.Algo)
	}
	return r.Menu(ctx)
}

// Once loads dataset n, runs the strategy named by algo and renders it.
// Load and solver errors are returned.
func (r *Runner) Once(ctx context.Context, n int, algo string) error {
	ch, err := parseChoice(algo)
	if err != nil {
		return err
	}
	ds, err := r.loadDataset(n)
	if err != nil {
		return err
	}

	rep, solveErr := r.solve(ctx, ds, ch)
	if err = Render(r.out, rep, r.cfg.Output); err != nil {
		return err
	}

	return solveErr
}

// Menu prompts for a dataset, then a strategy, renders the result and
// starts over. "0" at either prompt, or end of input, exits. Invalid
// answers are reported and asked again; a dataset that fails to load never
// reaches a solver.
func (r *Runner) Menu(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ds, err := r.promptDataset()
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			return err
		}

		ch, err := r.promptChoice()
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			return err
		}

		// Solver failures are part of the rendered report.
		rep, _ := r.solve(ctx, ds, ch)
		if err = Render(r.out, rep, r.cfg.Output); err != nil {
			return err
		}
	}
}

// promptDataset asks until a dataset loads or the user exits.
func (r *Runner) promptDataset() (*dataset.Dataset, error) {
	for {
		r.printf("\nPlease select the dataset that you would like to use (0 to exit): ")
		line, err := r.readLine()
		if err != nil {
			return nil, err
		}
		n, convErr := strconv.Atoi(line)
		switch {
		case convErr != nil || n < 0:
			r.printf("Invalid dataset %q, please try again.\n", line)
			continue
		case n == choiceExit:
			return nil, errExit
		}

		ds, err := r.loadDataset(n)
		if err != nil {
			r.printf("Could not load dataset %02d: %v\n", n, err)
			continue
		}
		return ds, nil
	}
}

// promptChoice asks until the answer names a strategy or the user exits.
func (r *Runner) promptChoice() (choice, error) {
	for {
		r.printf("\nNow select the algorithmic approach you would like to use to solve this problem\n")
		r.printf("1. Brute-Force Approach\n")
		r.printf("2. Dynamic Programming Approach\n")
		r.printf("3. Approximation Approach\n")
		r.printf("4. Branch-and-Bound (ILP) Approach\n")
		r.printf("5. Compare all approaches\n")
		r.printf("0. Exit\n")
		r.printf("Please enter your choice: ")

		line, err := r.readLine()
		if err != nil {
			return choice{}, err
		}
		if line == strconv.Itoa(choiceExit) {
			return choice{}, errExit
		}
		ch, err := parseChoice(line)
		if err != nil {
			r.printf("Invalid choice, please try again. (%v)\n", err)
			continue
		}
		return ch, nil
	}
}

// readLine returns the next trimmed input line; end of input is errExit.
func (r *Runner) readLine() (string, error) {
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", err
		}
		return "", errExit
	}
	return strings.TrimSpace(r.in.Text()), nil
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Runner) loadDataset(n int) (*dataset.Dataset, error) {
	start := time.Now()
	ds, err := r.load(r.cfg.DataDir, n)
	if err != nil {
		r.log.V(DEFAULT).Info("Dataset load failed", "dataset", n, "dir", r.cfg.DataDir, "error", err.Error())
		return nil, err
	}
	r.log.V(DEFAULT).Info("Dataset loaded",
		"dataset", n, "pallets", len(ds.Items), "capacity", ds.Truck.Capacity, "elapsed", time.Since(start))
	return ds, nil
}

// solve runs the selected strategies on ds. Each strategy is timed and a
// failure is recorded in the Report instead of aborting the others; the
// failures are also returned, combined, each prefixed with its strategy.
func (r *Runner) solve(ctx context.Context, ds *dataset.Dataset, ch choice) (*Report, error) {
	runID := uuid.NewString()
	logger := r.log.WithValues("runID", runID, "dataset", ds.Number)
	rep := newReport(runID, ds)

	algos := []knapsack.Algorithm{ch.algo}
	if ch.all {
		algos = knapsack.Algorithms
	}
	var errs error
	for _, a := range algos {
		if err := ctx.Err(); err != nil {
			rep.add(a, ds.Items, knapsack.Solution{}, 0, err)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", a, err))
			continue
		}

		logger.V(VERBOSE).Info("Solving", "algorithm", a.String())
		start := time.Now()
		sol, err := knapsack.Solve(ds.Items, ds.Truck.Capacity, r.cfg.SolverOptions(ctx, a))
		elapsed := time.Since(start)
		if err != nil {
			logger.Error(err, "Solver stopped", "algorithm", a.String(), "elapsed", elapsed)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", a, err))
		} else {
			logger.V(DEFAULT).Info("Solved",
				"algorithm", a.String(), "profit", sol.Profit, "weight", sol.Weight,
				"selected", len(sol.Selected), "elapsed", elapsed)
		}
		rep.add(a, ds.Items, sol, elapsed, err)
	}
	rep.annotateGaps()

	return rep, errs
}
