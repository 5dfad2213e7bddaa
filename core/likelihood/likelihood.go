// Package likelihood evaluates observation samples under a Normal model.
// It never imports chain or posterior; keep it domain-only.
package likelihood

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// LogLikelihood returns the total log-likelihood of obs under an independent
// Normal(mean, stdev) model. A non-positive (or NaN) stdev has no valid
// density; it returns -Inf so callers treat such parameters as impossible
// rather than erroring mid-chain.
func LogLikelihood(obs []float64, mean, stdev float64) float64 {
	if !(stdev > 0) {
		return math.Inf(-1)
	}
	dist := distuv.Normal{Mu: mean, Sigma: stdev}
	ll := 0.0
	for _, x := range obs {
		ll += dist.LogProb(x)
	}
	return ll
}
