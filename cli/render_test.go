package cli_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/katalvlaran/palletpack/cli"
)

var _ = Describe("Render", func() {
	report := func() *cli.Report {
		return &cli.Report{
			RunID:    "run-1",
			Dataset:  3,
			Capacity: 10,
			Pallets:  2,
			Results: []cli.Result{
				{Algorithm: "dp", Exact: true, Profit: 0, Pallets: []int{}, Elapsed: "1µs"},
				{Algorithm: "brute-force", Exact: true, Pallets: []int{}, Error: "knapsack: time limit exceeded"},
			},
		}
	}

	It("prints none for an empty selection", func() {
		var buf bytes.Buffer
		Expect(cli.Render(&buf, report(), cli.OutputText)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("Dataset 03: 2 pallets, truck capacity 10"))
		Expect(buf.String()).To(ContainSubstring("Selected pallets: none"))
		Expect(buf.String()).To(ContainSubstring("Failed: knapsack: time limit exceeded"))
		Expect(buf.String()).To(ContainSubstring("Run run-1"))
	})

	It("omits empty optional YAML fields", func() {
		var buf bytes.Buffer
		Expect(cli.Render(&buf, report(), cli.OutputYAML)).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("run_id: run-1"))
		Expect(buf.String()).To(ContainSubstring("error: "))
		Expect(buf.String()).To(ContainSubstring("knapsack: time limit exceeded"))
		Expect(buf.String()).NotTo(ContainSubstring("gap:"))
	})

	It("rejects unknown formats", func() {
		var buf bytes.Buffer
		Expect(cli.Render(&buf, report(), "xml")).To(MatchError(cli.ErrInvalidConfig))
	})
})
