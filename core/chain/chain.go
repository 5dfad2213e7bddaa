package chain

import (
	"errors"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"mhnorm-core/likelihood"
)

// Engine runs Metropolis-Hastings chains with a given config. Each Engine
// owns its RNG; nothing is shared process-wide, so independent runs never
// interfere.
type Engine struct {
	cfg Config
	rng *rand.Rand
}

// Result is a completed run: the full chain plus acceptance accounting.
type Result struct {
	History        *History
	Accepted       int
	AcceptanceRate float64
}

// New creates an Engine seeded from cfg.Seed.
func New(cfg Config) (*Engine, error) {
	return NewWithSource(cfg, rand.NewSource(cfg.Seed))
}

// NewWithSource creates an Engine drawing from an explicit source. Tests use
// this to inject scripted randomness.
func NewWithSource(cfg Config, src rand.Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, rng: rand.New(src)}, nil
}

// Run samples the posterior of (mean, stdev) for obs. The returned History
// has exactly Generations+1 slots: the seed draw plus one slot per
// generation, with rejected moves repeating the previous slot.
func (e *Engine) Run(obs []float64) (*Result, error) {
	if len(obs) == 0 {
		return nil, errors.New("chain: observation sample is empty")
	}

	b := e.cfg.Bounds
	meanPrior := distuv.Uniform{Min: b.MeanLow, Max: b.MeanHigh, Src: e.rng}
	stdevPrior := distuv.Uniform{Min: b.StdevLow, Max: b.StdevHigh, Src: e.rng}
	step := distuv.Normal{Mu: 0, Sigma: e.cfg.ProposalScale, Src: e.rng}

	h := newHistory(e.cfg.Generations + 1)
	cur := State{Mean: meanPrior.Rand(), Stdev: stdevPrior.Rand()}
	cur.LogLike = likelihood.LogLikelihood(obs, cur.Mean, cur.Stdev)
	h.append(cur)

	accepted := 0
	for g := 1; g <= e.cfg.Generations; g++ {
		prop := State{
			Mean:  cur.Mean + step.Rand(),
			Stdev: cur.Stdev + step.Rand(),
		}
		prop.LogLike = likelihood.LogLikelihood(obs, prop.Mean, prop.Stdev)

		if e.accept(cur, prop) {
			cur = prop
			accepted++
		}
		h.append(cur)

		if e.cfg.ProgressEvery > 0 && e.cfg.Progress != nil && g%e.cfg.ProgressEvery == 0 {
			e.cfg.Progress(g, cur)
		}
	}

	return &Result{
		History:        h,
		Accepted:       accepted,
		AcceptanceRate: float64(accepted) / float64(e.cfg.Generations),
	}, nil
}

// accept applies the symmetric-proposal Metropolis rule with the uniform box
// prior. u is drawn every generation so the draw sequence does not depend on
// which branch decides.
func (e *Engine) accept(cur, prop State) bool {
	u := e.rng.Float64()

	// Zero prior mass is a certain reject; deciding before any exp() avoids
	// the 0*Inf=NaN corner when the likelihood ratio overflows.
	if !e.cfg.Bounds.In(prop.Mean, prop.Stdev) {
		return false
	}

	lr := prop.LogLike - cur.LogLike
	if lr > 0 {
		// exp(lr) > 1: a strict improvement is always taken, and this branch
		// also absorbs exp overflow to +Inf.
		return true
	}
	return math.Exp(lr) > u
}
