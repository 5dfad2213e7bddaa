// Package sample provides the observation data fed to the chain engine:
// synthetic draws from a reference Normal, or values loaded from a file.
package sample

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generate draws n observations from Normal(mean, stdev) using src, so a
// fixed seed reproduces the same sample.
func Generate(n int, mean, stdev float64, src rand.Source) []float64 {
	dist := distuv.Normal{Mu: mean, Sigma: stdev, Src: src}
	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}
