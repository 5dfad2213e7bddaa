// internal/output/api.go
package output

import (
	"mhnorm-core/chain"
	"mhnorm-core/posterior"
	"mhnorm/pkg/api"
)

// ToAPIPosterior maps a posterior estimate onto the stable v1 schema.
func ToAPIPosterior(est posterior.Estimate, burnin int) api.PosteriorV1 {
	return api.PosteriorV1{
		Burnin:      burnin,
		Mean:        est.Mean,
		Stdev:       est.Stdev,
		MeanCILow:   est.MeanCI[0],
		MeanCIHigh:  est.MeanCI[1],
		StdevCILow:  est.StdevCI[0],
		StdevCIHigh: est.StdevCI[1],
	}
}

// ToAPISamples exports the full chain as v1 rows; slot index doubles as the
// generation number (0 = seed draw).
func ToAPISamples(h *chain.History) []api.SampleV1 {
	out := make([]api.SampleV1, h.Len())
	for i := range out {
		s := h.At(i)
		out[i] = api.SampleV1{Generation: i, Mean: s.Mean, Stdev: s.Stdev, LogLike: s.LogLike}
	}
	return out
}
