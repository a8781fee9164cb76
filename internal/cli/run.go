package cli

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mipdive/dive"
	"github.com/katalvlaran/mipdive/gen"
	"github.com/katalvlaran/mipdive/relax"
)

// Run modes accepted by --rule.
const (
	modeFractional = "fractional"
	modeGuided     = "guided"
	modePortfolio  = "portfolio"
)

// runOptions holds the flags of the run command.
type runOptions struct {
	kind   string
	size   int
	seed   int64
	rule   string
	config string
}

// runReport is what the summary prints.
type runReport struct {
	kind     gen.Kind
	size     int
	seed     int64
	mode     string
	rows     int
	cols     int
	sense    relax.Sense
	lpValue  float64
	stages   []stage
	best     dive.Result
	solution []float64
	elapsed  time.Duration
}

// stage is one heuristic call shown in the summary.
type stage struct {
	label  string
	result dive.Result
}

func (c *CLI) runCommand() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate an instance and dive on its root relaxation",
		Long: `Generate a mixed-integer instance, solve its LP relaxation and run a diving heuristic.

Rules:
  fractional  round the least fractional blocked column
  guided      seed an incumbent with a fractional dive, then dive toward it
  portfolio   run three fractional variants concurrently, keep the best`,
		Example: `  mipdive run --kind knapsack --size 30 --seed 7
  mipdive run --kind gap --size 40 --rule guided -v
  mipdive run --kind setcover --size 20 --rule portfolio --config tune.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := c.run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			c.printReport(rep)

			return nil
		},
	}

	kinds := make([]string, 0, len(gen.Kinds()))
	for _, k := range gen.Kinds() {
		kinds = append(kinds, string(k))
	}
	cmd.Flags().StringVar(&opts.kind, "kind", string(gen.KindKnapsack), "instance family ("+strings.Join(kinds, "|")+")")
	cmd.Flags().IntVar(&opts.size, "size", 30, "instance size")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "generator seed")
	cmd.Flags().StringVar(&opts.rule, "rule", "", "fractional|guided|portfolio (default: tuning file rule, else fractional)")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML tuning file")

	return cmd
}

func (c *CLI) kindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List instance families",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, k := range gen.Kinds() {
				fmt.Fprintln(c.out, k)
			}

			return nil
		},
	}
}

// run executes one run command and returns its report.
func (c *CLI) run(ctx context.Context, o runOptions) (runReport, error) {
	kind, err := gen.ParseKind(o.kind)
	if err != nil {
		return runReport{}, err
	}
	base := dive.DefaultOptions()
	if o.config != "" {
		if base, err = loadTuning(o.config); err != nil {
			return runReport{}, err
		}
		c.Logger.Debug("tuning loaded", "path", o.config)
	}
	mode := strings.ToLower(o.rule)
	if mode == "" {
		mode = base.Rule.String()
	}
	if mode != modeFractional && mode != modeGuided && mode != modePortfolio {
		return runReport{}, fmt.Errorf("unknown rule %q (want fractional, guided or portfolio)", o.rule)
	}

	start := time.Now()
	p, ints, err := gen.Build(kind, o.size, gen.WithSeed(o.seed))
	if err != nil {
		return runReport{}, err
	}
	lp, err := relax.NewSimplex(p)
	if err != nil {
		return runReport{}, err
	}
	lp.Resolve()
	if !lp.IsProvenOptimal() {
		return runReport{}, fmt.Errorf("root relaxation: %s", lp.Status())
	}
	c.Logger.Info("root relaxation solved", "kind", kind, "rows", p.Matrix.Rows(), "cols", p.Matrix.Cols(), "value", lp.ObjValue())

	model := &dive.StaticModel{LP: lp, Constraints: p.Matrix, Integers: ints, Trigger: 3}
	newHeuristic := func(extra ...dive.Option) (*dive.Heuristic, error) {
		opts := append([]dive.Option{dive.WithOptions(base), dive.WithLogger(c.Logger)}, extra...)
		return dive.New(model, opts...)
	}

	rep := runReport{
		kind: kind, size: o.size, seed: o.seed, mode: mode,
		rows: p.Matrix.Rows(), cols: p.Matrix.Cols(),
		sense: p.Sense, lpValue: lp.ObjValue(),
	}
	switch mode {
	case modeFractional:
		err = c.runFractional(ctx, &rep, newHeuristic)
	case modeGuided:
		err = c.runGuided(ctx, &rep, model, newHeuristic)
	default:
		err = c.runPortfolio(ctx, &rep, newHeuristic)
	}
	if err != nil {
		return runReport{}, err
	}
	rep.elapsed = time.Since(start)

	return rep, nil
}

type heuristicFactory func(extra ...dive.Option) (*dive.Heuristic, error)

func (c *CLI) runFractional(ctx context.Context, rep *runReport, newHeuristic heuristicFactory) error {
	h, err := newHeuristic(dive.WithRule(dive.RuleFractional))
	if err != nil {
		return err
	}
	out := make([]float64, rep.cols)
	res, err := h.Solution(ctx, math.Inf(1), out)
	if err != nil {
		return err
	}
	rep.stages = append(rep.stages, stage{label: modeFractional, result: res})
	rep.best = res
	if res.Improved {
		rep.solution = out
	}

	return nil
}

// runGuided seeds the incumbent with a fractional dive, then dives toward it.
func (c *CLI) runGuided(ctx context.Context, rep *runReport, model *dive.StaticModel, newHeuristic heuristicFactory) error {
	if err := c.runFractional(ctx, rep, newHeuristic); err != nil {
		return err
	}
	incumbent := math.Inf(1)
	if rep.best.Improved {
		model.Incumbent = rep.solution
		incumbent = rep.best.Value
	}

	h, err := newHeuristic(dive.WithRule(dive.RuleGuided))
	if err != nil {
		return err
	}
	out := make([]float64, rep.cols)
	res, err := h.Solution(ctx, incumbent, out)
	if err != nil {
		return err
	}
	rep.stages = append(rep.stages, stage{label: modeGuided, result: res})
	if res.Improved {
		rep.best, rep.solution = res, out
	}

	return nil
}

// runPortfolio races the configured dive against two variants.
func (c *CLI) runPortfolio(ctx context.Context, rep *runReport, newHeuristic heuristicFactory) error {
	variants := []struct {
		label string
		opts  []dive.Option
	}{
		{"configured", nil},
		{"no-pins", []dive.Option{dive.WithFixFraction(0)}},
		{"flat-penalty", []dive.Option{dive.WithNonBinaryPenalty(1)}},
	}
	hs := make([]*dive.Heuristic, len(variants))
	for i, v := range variants {
		h, err := newHeuristic(append([]dive.Option{dive.WithRule(dive.RuleFractional)}, v.opts...)...)
		if err != nil {
			return err
		}
		hs[i] = h
	}

	pr, err := dive.RunPortfolio(ctx, math.Inf(1), rep.cols, hs...)
	if err != nil {
		return err
	}
	for i, v := range variants {
		rep.stages = append(rep.stages, stage{label: v.label, result: pr.All[i]})
	}
	if pr.Best >= 0 {
		rep.best, rep.solution = pr.Result, pr.Solution
	} else {
		rep.best = pr.All[0]
	}

	return nil
}

// printReport renders the summary of one run.
func (c *CLI) printReport(rep runReport) {
	c.printTitle(fmt.Sprintf("mipdive · %s (size %d, seed %d)", rep.kind, rep.size, rep.seed))
	c.printKeyValue("instance", fmt.Sprintf("%d rows × %d cols, %s", rep.rows, rep.cols, rep.sense))
	c.printKeyValue("lp bound", formatValue(rep.lpValue))
	c.printKeyValue("rule", rep.mode)
	for _, s := range rep.stages {
		r := s.result
		c.printKeyValue(s.label, fmt.Sprintf("%s · %d iterations · %d resolves · %d rollbacks · %d flips · %d pinned",
			r.Outcome, r.Iterations, r.Resolves, r.Rollbacks, r.Flips, r.Pinned))
	}
	c.printKeyValue("elapsed", rep.elapsed.Round(time.Millisecond).String())

	if rep.solution == nil {
		c.printWarning("no integer solution (%s)", rep.best.Outcome)

		return
	}
	// Values cross the heuristic API in minimization form.
	c.printSuccess("objective %s", formatValue(rep.sense.Factor()*rep.best.Value))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
