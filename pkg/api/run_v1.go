// pkg/api/run_v1.go
package api

// SampleV1 is the stable JSON/JSONL schema for one chain slot.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SampleV1 struct {
	Generation int     `json:"generation"`
	Mean       float64 `json:"mean"`
	Stdev      float64 `json:"stdev"`
	LogLike    float64 `json:"log_like"`
}

// PosteriorV1 is the stable schema for posterior summaries.
type PosteriorV1 struct {
	Burnin      int     `json:"burnin"`
	Mean        float64 `json:"mean"`
	Stdev       float64 `json:"stdev"`
	MeanCILow   float64 `json:"mean_ci_low"`
	MeanCIHigh  float64 `json:"mean_ci_high"`
	StdevCILow  float64 `json:"stdev_ci_low"`
	StdevCIHigh float64 `json:"stdev_ci_high"`
}

// RunV1 is the stable schema for a full sampler run. Samples is populated
// only when the caller asked for the chain trace.
type RunV1 struct {
	Generations    int         `json:"generations"`
	SampleSize     int         `json:"sample_size"`
	Seed           uint64      `json:"seed"`
	AcceptanceRate float64     `json:"acceptance_rate"`
	Posterior      PosteriorV1 `json:"posterior"`
	Samples        []SampleV1  `json:"samples,omitempty"`
}
