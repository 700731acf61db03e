package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/palletpack/cli"
	"github.com/katalvlaran/palletpack/dataset"
	"github.com/katalvlaran/palletpack/knapsack"
)

// fakeLoader serves dataset 1 (the 60/100/120 catalog, capacity 50) and
// fails for every other number, counting calls.
type fakeLoader struct {
	calls []int
}

var errNoSuchDataset = errors.New("no such dataset")

func (f *fakeLoader) load(_ string, n int) (*dataset.Dataset, error) {
	f.calls = append(f.calls, n)
	if n != 1 {
		return nil, fmt.Errorf("%w: %d", errNoSuchDataset, n)
	}
	return &dataset.Dataset{
		Number: 1,
		Items: []knapsack.Item{
			{ID: 1, Weight: 10, Profit: 60},
			{ID: 2, Weight: 20, Profit: 100},
			{ID: 3, Weight: 30, Profit: 120},
		},
		Truck: dataset.Truck{Capacity: 50, Pallets: 3},
	}, nil
}

var _ = Describe("Runner", func() {
	var (
		cfg    *cli.Config
		out    *bytes.Buffer
		loader *fakeLoader
		ctx    context.Context
	)

	BeforeEach(func() {
		cfg = cli.NewConfig()
		out = &bytes.Buffer{}
		loader = &fakeLoader{}
		ctx = context.Background()
	})

	menu := func(input string) error {
		r := cli.NewRunner(cfg, logr.Discard(), strings.NewReader(input), out).WithLoader(loader.load)
		return r.Menu(ctx)
	}

	Context("menu", func() {
		It("solves a dataset with the chosen strategy and exits on 0", func() {
			Expect(menu("1\n2\n0\n")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("[dp] exact"))
			Expect(out.String()).To(ContainSubstring("Selected pallets: 2, 3"))
			Expect(out.String()).To(ContainSubstring("Total weight: 50 / 50"))
			Expect(out.String()).To(ContainSubstring("The best solution is 220"))
			Expect(loader.calls).To(Equal([]int{1}))
		})

		It("accepts strategy names", func() {
			Expect(menu("1\ngreedy\n0\n")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("[greedy] approximate"))
			Expect(out.String()).To(ContainSubstring("Selected pallets: 1, 2"))
			Expect(out.String()).To(ContainSubstring("The best solution is 160"))
		})

		It("re-prompts on an invalid dataset and never solves a failed load", func() {
			Expect(menu("abc\n-2\n7\n0\n")).To(Succeed())
			Expect(out.String()).To(ContainSubstring(`Invalid dataset "abc"`))
			Expect(out.String()).To(ContainSubstring(`Invalid dataset "-2"`))
			Expect(out.String()).To(ContainSubstring("Could not load dataset 07"))
			Expect(out.String()).NotTo(ContainSubstring("The best solution is"))
			Expect(loader.calls).To(Equal([]int{7}))
		})

		It("re-prompts on an invalid strategy with a suggestion", func() {
			Expect(menu("1\n9\ngredy\n4\n0\n")).To(Succeed())
			Expect(strings.Count(out.String(), "Invalid choice, please try again.")).To(Equal(2))
			Expect(out.String()).To(ContainSubstring("did you mean greedy"))
			Expect(out.String()).To(ContainSubstring("[bnb] exact"))
			Expect(out.String()).To(ContainSubstring("The best solution is 220"))
		})

		It("exits from the strategy prompt", func() {
			Expect(menu("1\n0\n")).To(Succeed())
			Expect(out.String()).NotTo(ContainSubstring("The best solution is"))
		})

		It("exits at end of input", func() {
			Expect(menu("1\n3\n")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("The best solution is 160"))
		})

		It("compares every strategy and reports the greedy gap", func() {
			Expect(menu("1\n5\n0\n")).To(Succeed())
			text := out.String()
			for _, a := range knapsack.Algorithms {
				Expect(text).To(ContainSubstring("[" + a.String() + "]"))
			}
			Expect(strings.Count(text, "The best solution is 220")).To(Equal(3))
			Expect(text).To(ContainSubstring("Gap to optimum: 27.27%"))
		})

		It("reports a budget failure and keeps going", func() {
			cfg.NodeLimit = 1
			Expect(menu("1\nbrute-force\n1\ndp\n0\n")).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Failed: knapsack: node limit exceeded"))
			Expect(out.String()).To(ContainSubstring("The best solution is 220"))
		})

		It("stops when the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			r := cli.NewRunner(cfg, logr.Discard(), strings.NewReader("1\n2\n"), out).WithLoader(loader.load)
			Expect(r.Menu(cctx)).To(MatchError(context.Canceled))
		})
	})

	Context("one-shot", func() {
		once := func(n int, algo string) error {
			r := cli.NewRunner(cfg, logr.Discard(), strings.NewReader(""), out).WithLoader(loader.load)
			return r.Once(ctx, n, algo)
		}

		It("renders YAML with a run ID", func() {
			cfg.Output = cli.OutputYAML
			Expect(once(1, "dp")).To(Succeed())

			var rep cli.Report
			Expect(yaml.Unmarshal(out.Bytes(), &rep)).To(Succeed())
			Expect(rep.RunID).To(HaveLen(36))
			Expect(rep.Dataset).To(Equal(1))
			Expect(rep.Capacity).To(Equal(int64(50)))
			Expect(rep.Results).To(HaveLen(1))
			Expect(rep.Results[0].Algorithm).To(Equal("dp"))
			Expect(rep.Results[0].Profit).To(Equal(int64(220)))
			Expect(rep.Results[0].Pallets).To(Equal([]int{2, 3}))
			Expect(rep.Results[0].Gap).To(BeNil())
		})

		It("uses a fresh run ID per solve", func() {
			cfg.Output = cli.OutputYAML
			var ids []string
			for i := 0; i < 2; i++ {
				out.Reset()
				Expect(once(1, "greedy")).To(Succeed())
				var rep cli.Report
				Expect(yaml.Unmarshal(out.Bytes(), &rep)).To(Succeed())
				ids = append(ids, rep.RunID)
			}
			Expect(ids[0]).NotTo(Equal(ids[1]))
		})

		It("returns the solver error after rendering", func() {
			cfg.NodeLimit = 1
			err := once(1, "all")
			Expect(err).To(MatchError(knapsack.ErrNodeLimit))
			Expect(err.Error()).To(ContainSubstring("bnb"))
			Expect(out.String()).To(ContainSubstring("[dp] exact"))
		})

		It("interrupts a running solve when the context is cancelled", func() {
			cfg.TimeLimit = 0
			items := make([]knapsack.Item, 34)
			for i := range items {
				items[i] = knapsack.Item{ID: i + 1, Weight: int64(1 + i%9), Profit: int64(1 + i%11)}
			}
			slow := func(_ string, n int) (*dataset.Dataset, error) {
				return &dataset.Dataset{Number: n, Items: items, Truck: dataset.Truck{Capacity: 80, Pallets: len(items)}}, nil
			}

			cctx, cancel := context.WithCancel(ctx)
			defer cancel()
			r := cli.NewRunner(cfg, logr.Discard(), strings.NewReader(""), out).WithLoader(slow)
			done := make(chan error, 1)
			go func() {
				defer GinkgoRecover()
				done <- r.Once(cctx, 1, "brute-force")
			}()

			time.Sleep(50 * time.Millisecond)
			cancel()
			var err error
			Eventually(done, 5*time.Second).Should(Receive(&err))
			Expect(err).To(MatchError(context.Canceled))
			Expect(out.String()).To(ContainSubstring("Failed: context canceled"))
		})

		It("returns load and choice errors without solving", func() {
			Expect(once(4, "dp")).To(MatchError(errNoSuchDataset))
			Expect(once(1, "simplex")).To(MatchError(cli.ErrUnknownChoice))
			Expect(out.String()).To(BeEmpty())
		})

		It("is selected by Run when the config names a dataset and a strategy", func() {
			cfg.Dataset = 1
			cfg.Algo = "bnb"
			r := cli.NewRunner(cfg, logr.Discard(), strings.NewReader(""), out).WithLoader(loader.load)
			Expect(r.Run(ctx)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("[bnb] exact"))
			Expect(out.String()).NotTo(ContainSubstring("Please select the dataset"))
		})
	})

	Context("with files on disk", func() {
		It("loads numbered CSV datasets", func() {
			dir := GinkgoT().TempDir()
			pallets, truck := dataset.Paths(dir, 2)
			Expect(os.WriteFile(pallets, []byte("Pallet,Weight,Profit\n1,4,5\n2,3,4\n3,2,3\n"), 0o644)).To(Succeed())
			Expect(os.WriteFile(truck, []byte("Capacity,Pallets\n6,3\n"), 0o644)).To(Succeed())

			cfg.DataDir = dir
			r := cli.NewRunner(cfg, logr.Discard(), strings.NewReader("2\n1\n0\n"), out)
			Expect(r.Menu(ctx)).To(Succeed())
			Expect(out.String()).To(ContainSubstring("Dataset 02: 3 pallets, truck capacity 6"))
			Expect(out.String()).To(ContainSubstring("Selected pallets: 1, 3"))
			Expect(out.String()).To(ContainSubstring("The best solution is 8"))
		})
	})
})
