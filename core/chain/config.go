package chain

import (
	"errors"
	"fmt"
)

// Bounds is the support box of the uniform prior. Any proposal outside the
// box has zero prior mass and is always rejected.
type Bounds struct {
	MeanLow   float64
	MeanHigh  float64
	StdevLow  float64
	StdevHigh float64
}

// In reports whether (mean, stdev) lies inside the prior support.
func (b Bounds) In(mean, stdev float64) bool {
	return mean >= b.MeanLow && mean <= b.MeanHigh &&
		stdev >= b.StdevLow && stdev <= b.StdevHigh
}

// Config holds sampler parameters. Validate before use; a valid Config
// cannot fail mid-run.
type Config struct {
	Bounds        Bounds
	ProposalScale float64 // random-walk step sigma, shared by both parameters; 0 freezes the chain
	Generations   int     // iterations after the seed entry
	Seed          uint64  // RNG seed; identical Config+observations replay bit-identically

	// ProgressEvery > 0 invokes Progress every that many generations with the
	// generation number and the state just recorded. Reporting only; never a
	// suspension point.
	ProgressEvery int
	Progress      func(gen int, s State)
}

// Validate fails fast on configurations that would produce nonsensical output.
func (c Config) Validate() error {
	if c.Generations < 1 {
		return fmt.Errorf("chain: generations must be >= 1 (got %d)", c.Generations)
	}
	if !(c.ProposalScale >= 0) {
		return fmt.Errorf("chain: proposal scale must be >= 0 (got %v)", c.ProposalScale)
	}
	if !(c.Bounds.MeanHigh > c.Bounds.MeanLow) {
		return fmt.Errorf("chain: mean bounds [%v, %v] are empty", c.Bounds.MeanLow, c.Bounds.MeanHigh)
	}
	if !(c.Bounds.StdevHigh > c.Bounds.StdevLow) {
		return fmt.Errorf("chain: stdev bounds [%v, %v] are empty", c.Bounds.StdevLow, c.Bounds.StdevHigh)
	}
	if c.Bounds.StdevLow < 0 {
		return errors.New("chain: stdev lower bound must be >= 0")
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("chain: progress interval must be >= 0 (got %d)", c.ProgressEvery)
	}
	return nil
}
