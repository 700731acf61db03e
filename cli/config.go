package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/katalvlaran/palletpack/knapsack"
)

// Flag and configuration keys. The same names are accepted in the config
// file and, upper-cased with '-' replaced by '_', as PALLETPACK_* variables.
const (
	KeyConfig        = "config"
	KeyDataDir       = "data-dir"
	KeyTimeLimit     = "time-limit"
	KeyNodeLimit     = "node-limit"
	KeyMaxTableCells = "max-table-cells"
	KeyOutput        = "output"
	KeyDataset       = "dataset"
	KeyAlgo          = "algo"
	KeyVerbosity     = "v"
	KeyDevLog        = "dev-log"

	EnvPrefix = "PALLETPACK"
)

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("cli: invalid configuration")

// Config contains the resolved command-line configuration.
type Config struct {
	ConfigFile string // Optional YAML file layered under flags and env.
	DataDir    string // Directory holding Pallets_NN.csv / TruckAndPallets_NN.csv.
	//
	// Solver budgets.
	//
	TimeLimit     time.Duration // Wall-clock budget for brute-force and bnb.
	NodeLimit     int64         // Subset/node budget for brute-force and bnb.
	MaxTableCells int64         // Cell budget for the dp table.
	//
	// One-shot mode: both set ⇒ no menu.
	//
	Dataset int
	Algo    string
	//
	// Presentation and diagnostics.
	//
	Output    string
	Verbosity int
	DevLog    bool
}

// NewConfig returns a Config initialized with default values.
func NewConfig() *Config {
	return &Config{
		DataDir:       ".",
		TimeLimit:     30 * time.Second,
		MaxTableCells: 10_000_000,
		Output:        OutputText,
	}
}

// AddFlags registers one flag per Config field on fs, using the current
// values as defaults.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	if fs == nil {
		fs = pflag.CommandLine
	}

	fs.StringVar(&c.ConfigFile, KeyConfig, c.ConfigFile,
		"Optional YAML config file; flags and PALLETPACK_* variables take precedence.")
	fs.StringVar(&c.DataDir, KeyDataDir, c.DataDir,
		"Directory containing the Pallets_NN.csv and TruckAndPallets_NN.csv files.")
	fs.DurationVar(&c.TimeLimit, KeyTimeLimit, c.TimeLimit,
		"Wall-clock budget for brute-force and bnb. 0 disables the limit.")
	fs.Int64Var(&c.NodeLimit, KeyNodeLimit, c.NodeLimit,
		"Maximum subsets (brute-force) or nodes (bnb) to visit. 0 disables the limit.")
	fs.Int64Var(&c.MaxTableCells, KeyMaxTableCells, c.MaxTableCells,
		"Maximum items·(capacity+1) cells for dp. 0 disables the limit.")
	fs.IntVar(&c.Dataset, KeyDataset, c.Dataset,
		"Dataset number to solve without the menu (requires --algo).")
	fs.StringVar(&c.Algo, KeyAlgo, c.Algo,
		"Strategy for one-shot mode: brute-force, dp, greedy, bnb or all.")
	fs.StringVar(&c.Output, KeyOutput, c.Output,
		"Result format: text or yaml.")
	fs.IntVarP(&c.Verbosity, KeyVerbosity, "v", c.Verbosity,
		"Number for the log level verbosity.")
	fs.BoolVar(&c.DevLog, KeyDevLog, c.DevLog,
		"Human-readable development logs instead of JSON.")
}

// Complete layers the config file and PALLETPACK_* variables under the
// parsed flags in fs. Precedence: explicit flag, env, config file, default.
func (c *Config) Complete(fs *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	c.ConfigFile = v.GetString(KeyConfig)
	c.DataDir = v.GetString(KeyDataDir)
	c.TimeLimit = v.GetDuration(KeyTimeLimit)
	c.NodeLimit = v.GetInt64(KeyNodeLimit)
	c.MaxTableCells = v.GetInt64(KeyMaxTableCells)
	c.Dataset = v.GetInt(KeyDataset)
	c.Algo = v.GetString(KeyAlgo)
	c.Output = strings.ToLower(v.GetString(KeyOutput))
	c.Verbosity = v.GetInt(KeyVerbosity)
	c.DevLog = v.GetBool(KeyDevLog)

	return nil
}

// Validate checks the Config for invalid or conflicting values. All
// problems are reported together.
func (c *Config) Validate() error {
	var errs error
	invalid := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.DataDir == "" {
		invalid("--%s must not be empty", KeyDataDir)
	}
	for _, b := range []struct {
		name string
		neg  bool
	}{
		{KeyTimeLimit, c.TimeLimit < 0},
		{KeyNodeLimit, c.NodeLimit < 0},
		{KeyMaxTableCells, c.MaxTableCells < 0},
		{KeyDataset, c.Dataset < 0},
	} {
		if b.neg {
			invalid("--%s must not be negative", b.name)
		}
	}
	if c.Output != OutputText && c.Output != OutputYAML {
		invalid("--%s %q: want %s or %s", KeyOutput, c.Output, OutputText, OutputYAML)
	}
	if c.Verbosity < 0 || c.Verbosity > 127 {
		invalid("--%s %d: must be between 0 and 127", KeyVerbosity, c.Verbosity)
	}
	if (c.Dataset > 0) != (c.Algo != "") {
		invalid("--%s and --%s must be given together", KeyDataset, KeyAlgo)
	}
	if c.Algo != "" {
		if _, err := parseChoice(c.Algo); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: --%s: %w", ErrInvalidConfig, KeyAlgo, err))
		}
	}

	return errs
}

// OneShot reports whether a single solve was requested on the command line.
func (c *Config) OneShot() bool {
	return c.Dataset > 0 && c.Algo != ""
}

// SolverOptions converts the budgets into knapsack.Options for algo. The
// solve stops early with ctx.Err() once ctx is done.
func (c *Config) SolverOptions(ctx context.Context, algo knapsack.Algorithm) knapsack.Options {
	opts := knapsack.DefaultOptions()
	opts.Algo = algo
	opts.Context = ctx
	opts.TimeLimit = c.TimeLimit
	opts.NodeLimit = c.NodeLimit
	opts.MaxTableCells = c.MaxTableCells

	return opts
}
