// Command palletpack chooses which pallets to load onto a truck so that the
// total profit is maximal without exceeding the truck's capacity.
//
// Usage:
//
//	palletpack [--data-dir DIR] [--dataset N --algo NAME] [--output text|yaml]
//
// Without --dataset/--algo an interactive menu is started on stdin.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/palletpack/cli"
)

func main() {
	fs := pflag.NewFlagSet("palletpack", pflag.ContinueOnError)
	cfg := cli.NewConfig()
	cfg.AddFlags(fs)
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Until the configured logger exists, report setup problems on a default one.
	setupLog := cli.NewStderrLogger(0, true)
	if err := cfg.Complete(fs); err != nil {
		cli.Fatal(setupLog, err, "Failed to resolve configuration")
	}
	if err := cfg.Validate(); err != nil {
		cli.Fatal(setupLog, err, "Invalid configuration")
	}

	logger := cli.NewStderrLogger(cfg.Verbosity, cfg.DevLog)
	logger.V(cli.DEBUG).Info("Configuration resolved",
		"dataDir", cfg.DataDir, "timeLimit", cfg.TimeLimit, "nodeLimit", cfg.NodeLimit,
		"maxTableCells", cfg.MaxTableCells, "output", cfg.Output, "configFile", cfg.ConfigFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRunner(cfg, logger, os.Stdin, os.Stdout).Run(ctx); err != nil {
		stop()
		cli.Fatal(logger, err, "palletpack failed")
	}
}
