package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/palletpack/dataset"
	"github.com/katalvlaran/palletpack/knapsack"
)

// Result is one strategy's outcome as presented to the user.
type Result struct {
	Algorithm string  `yaml:"algorithm"`
	Exact     bool    `yaml:"exact"`
	Profit    int64   `yaml:"profit"`
	Weight    int64   `yaml:"weight"`
	Pallets   []int   `yaml:"pallets"`
	Elapsed   string  `yaml:"elapsed"`
	Error     string  `yaml:"error,omitempty"`
	Gap       *string `yaml:"gap,omitempty"`
}

// Report groups the results of one run on one dataset.
type Report struct {
	RunID    string   `yaml:"run_id"`
	Dataset  int      `yaml:"dataset"`
	Capacity int64    `yaml:"capacity"`
	Pallets  int      `yaml:"pallets"`
	Results  []Result `yaml:"results"`
}

// newReport starts a Report for ds.
func newReport(runID string, ds *dataset.Dataset) *Report {
	return &Report{
		RunID:    runID,
		Dataset:  ds.Number,
		Capacity: ds.Truck.Capacity,
		Pallets:  len(ds.Items),
	}
}

// add records a solver outcome; err is a budget or validation failure.
func (r *Report) add(algo knapsack.Algorithm, items []knapsack.Item, sol knapsack.Solution, elapsed time.Duration, err error) {
	res := Result{
		Algorithm: algo.String(),
		Exact:     algo.Exact(),
		Elapsed:   elapsed.Round(time.Microsecond).String(),
		Pallets:   []int{},
	}
	if err != nil {
		res.Error = err.Error()
	} else {
		res.Profit = sol.Profit
		res.Weight = sol.Weight
		res.Pallets = sol.IDs(items)
	}
	r.Results = append(r.Results, res)
}

// annotateGaps sets Gap on approximate results relative to the best exact
// profit in the report, when there is one.
func (r *Report) annotateGaps() {
	var (
		best  int64
		found bool
	)
	for _, res := range r.Results {
		if res.Exact && res.Error == "" && (!found || res.Profit > best) {
			best, found = res.Profit, true
		}
	}
	if !found {
		return
	}
	for i := range r.Results {
		res := &r.Results[i]
		if res.Exact || res.Error != "" {
			continue
		}
		gap := "0.00%"
		if best > 0 {
			gap = fmt.Sprintf("%.2f%%", 100*float64(best-res.Profit)/float64(best))
		}
		res.Gap = &gap
	}
}

// Render writes r to w in the given format (OutputText or OutputYAML).
func Render(w io.Writer, r *Report, format string) error {
	switch format {
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case OutputText, "":
		return renderText(w, r)
	default:
		return fmt.Errorf("%w: output %q", ErrInvalidConfig, format)
	}
}

func renderText(w io.Writer, r *Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\nDataset %02d: %d pallets, truck capacity %d\n", r.Dataset, r.Pallets, r.Capacity)
	for _, res := range r.Results {
		kind := "exact"
		if !res.Exact {
			kind = "approximate"
		}
		fmt.Fprintf(&b, "\n[%s] %s\n", res.Algorithm, kind)
		if res.Error != "" {
			fmt.Fprintf(&b, "  Failed: %s\n", res.Error)
			continue
		}
		fmt.Fprintf(&b, "  Selected pallets: %s\n", joinIDs(res.Pallets))
		fmt.Fprintf(&b, "  Total weight: %d / %d\n", res.Weight, r.Capacity)
		fmt.Fprintf(&b, "  The best solution is %d\n", res.Profit)
		if res.Gap != nil {
			fmt.Fprintf(&b, "  Gap to optimum: %s\n", *res.Gap)
		}
		fmt.Fprintf(&b, "  Elapsed: %s\n", res.Elapsed)
	}
	fmt.Fprintf(&b, "\nRun %s\n", r.RunID)

	_, err := io.WriteString(w, b.String())
	return err
}

func joinIDs(ids []int) string {
	if len(ids) == 0 {
		return "none"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}

	return strings.Join(parts, ", ")
}
