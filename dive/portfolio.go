// SPDX-License-Identifier: MIT
// Package dive - concurrent portfolio over independent heuristic instances.
//
// Each instance dives on its own oracle clone with its own output buffer, so
// the instances share nothing mutable. The live oracles they clone from must
// tolerate concurrent Clone calls (relax.Simplex does).

package dive

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// PortfolioResult is the best outcome over all instances.
type PortfolioResult struct {
	// Best is the index of the winning instance, or -1 when none improved.
	Best     int
	Result   Result
	Solution []float64
	// All holds every instance's Result in input order.
	All []Result
}

// RunPortfolio runs hs concurrently against the same incumbent and returns
// the verified candidate with the smallest value (ties go to the lower index).
// ncols sizes the per-instance buffers. A contract error of any instance
// cancels the others and is returned.
func RunPortfolio(ctx context.Context, incumbent float64, ncols int, hs ...*Heuristic) (PortfolioResult, error) {
	seen := make(map[*Heuristic]struct{}, len(hs))
	for _, h := range hs {
		if h == nil {
			return PortfolioResult{}, diveErrorf("RunPortfolio", ErrNilHeuristic)
		}
		if _, dup := seen[h]; dup {
			return PortfolioResult{}, diveErrorf("RunPortfolio", ErrDuplicateInstance)
		}
		seen[h] = struct{}{}
	}

	var (
		results = make([]Result, len(hs))
		buffers = make([][]float64, len(hs))
	)
	g, gctx := errgroup.WithContext(ctx)
	for i, h := range hs {
		i, h := i, h
		buffers[i] = make([]float64, ncols)
		g.Go(func() error {
			res, err := h.Solution(gctx, incumbent, buffers[i])
			results[i] = res

			return err
		})
	}
	if err := g.Wait(); err != nil {
		return PortfolioResult{}, diveErrorf("RunPortfolio", err)
	}

	pr := PortfolioResult{Best: -1, All: results}
	for i, res := range results {
		if !res.Improved {
			continue
		}
		if pr.Best < 0 || res.Value < pr.Result.Value {
			pr.Best, pr.Result, pr.Solution = i, res, buffers[i]
		}
	}

	return pr, nil
}
