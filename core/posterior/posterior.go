// Package posterior summarizes a completed chain into point estimates.
package posterior

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"mhnorm-core/chain"
)

// Estimate holds posterior point estimates and 95% equal-tailed credible
// intervals computed from the post-burn-in chain.
type Estimate struct {
	Mean    float64
	Stdev   float64
	MeanCI  [2]float64
	StdevCI [2]float64
}

// Summarize averages the mean and stdev columns over the inclusive slot
// range [burnin, len-1]. The divisor is the true count of retained slots.
func Summarize(h *chain.History, burnin int) (Estimate, error) {
	n := h.Len()
	if burnin < 0 || burnin >= n-1 {
		return Estimate{}, fmt.Errorf("posterior: burnin %d out of range for a chain of %d slots", burnin, n)
	}
	means := h.Means()[burnin:]
	stdevs := h.Stdevs()[burnin:]
	return Estimate{
		Mean:    stat.Mean(means, nil),
		Stdev:   stat.Mean(stdevs, nil),
		MeanCI:  credible95(means),
		StdevCI: credible95(stdevs),
	}, nil
}

func credible95(xs []float64) [2]float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	return [2]float64{
		stat.Quantile(0.025, stat.Empirical, s, nil),
		stat.Quantile(0.975, stat.Empirical, s, nil),
	}
}
