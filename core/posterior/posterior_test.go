package posterior

import (
	"math"
	"testing"

	"mhnorm-core/chain"
)

func constantTail(t *testing.T, burnin, n int, mean, stdev float64) *chain.History {
	t.Helper()
	means := make([]float64, n)
	stdevs := make([]float64, n)
	lls := make([]float64, n)
	for i := 0; i < n; i++ {
		// Pre-burn-in junk that must not leak into the summary.
		means[i], stdevs[i] = -1000, 999
		if i >= burnin {
			means[i], stdevs[i] = mean, stdev
		}
	}
	h, err := chain.HistoryFromColumns(means, stdevs, lls)
	if err != nil {
		t.Fatalf("HistoryFromColumns: %v", err)
	}
	return h
}

func TestSummarizeConstantTailIsExact(t *testing.T) {
	h := constantTail(t, 5, 20, 10.0, 1.0)
	est, err := Summarize(h, 5)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if est.Mean != 10.0 || est.Stdev != 1.0 {
		t.Fatalf("estimate (%v, %v), want exactly (10, 1)", est.Mean, est.Stdev)
	}
	if est.MeanCI != [2]float64{10, 10} || est.StdevCI != [2]float64{1, 1} {
		t.Fatalf("credible intervals %v %v, want degenerate", est.MeanCI, est.StdevCI)
	}
}

func TestSummarizeDiscardsBurnin(t *testing.T) {
	h := constantTail(t, 5, 20, 10.0, 1.0)
	est, err := Summarize(h, 0)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if est.Mean == 10.0 {
		t.Fatalf("burnin 0 should include the junk prefix, got mean %v", est.Mean)
	}
}

func TestSummarizeDivisorMatchesTermCount(t *testing.T) {
	// Slots 2..4 retained: mean of {1, 2, 3} over exactly 3 terms.
	h, err := chain.HistoryFromColumns(
		[]float64{9, 9, 1, 2, 3},
		[]float64{9, 9, 1, 1, 1},
		make([]float64, 5),
	)
	if err != nil {
		t.Fatalf("HistoryFromColumns: %v", err)
	}
	est, err := Summarize(h, 2)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if math.Abs(est.Mean-2) > 1e-15 {
		t.Fatalf("mean %v, want 2", est.Mean)
	}
}

func TestSummarizeFrozenChainEqualsSeed(t *testing.T) {
	cfg := chain.Config{
		Bounds:        chain.Bounds{MeanLow: 0, MeanHigh: 50, StdevLow: 0, StdevHigh: 10},
		ProposalScale: 0,
		Generations:   50,
		Seed:          9,
	}
	eng, err := chain.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res, err := eng.Run([]float64{9, 10, 11})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	est, err := Summarize(res.History, 10)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	seed := res.History.At(0)
	if math.Abs(est.Mean-seed.Mean) > 1e-12 || math.Abs(est.Stdev-seed.Stdev) > 1e-12 {
		t.Fatalf("frozen-chain posterior (%v, %v) != seed (%v, %v)", est.Mean, est.Stdev, seed.Mean, seed.Stdev)
	}
}

func TestSummarizeBurninRange(t *testing.T) {
	h := constantTail(t, 0, 10, 10, 1)
	for _, burnin := range []int{-1, 9, 10, 50} {
		if _, err := Summarize(h, burnin); err == nil {
			t.Fatalf("burnin %d: expected range error", burnin)
		}
	}
	if _, err := Summarize(h, 8); err != nil {
		t.Fatalf("burnin 8 should be valid: %v", err)
	}
}
