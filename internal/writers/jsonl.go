// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"mhnorm/pkg/api"
)

// jsonlSummary is the trailing JSONL line; its shape distinguishes it from
// SampleV1 rows when a trace is read back.
type jsonlSummary struct {
	Posterior      api.PosteriorV1 `json:"posterior"`
	AcceptanceRate float64         `json:"acceptance_rate"`
}

func init() {
	RegisterRun("jsonl", writeRunJSONL)
	RegisterSummary("jsonl", func(w io.Writer, s api.PosteriorV1) error {
		return json.NewEncoder(w).Encode(jsonlSummary{Posterior: s})
	})
}

func writeRunJSONL(w io.Writer, p RunPayload) error {
	enc := json.NewEncoder(w)
	for _, s := range p.Run.Samples {
		if err := enc.Encode(s); err != nil {
			return err
		}
	}
	return enc.Encode(jsonlSummary{Posterior: p.Run.Posterior, AcceptanceRate: p.Run.AcceptanceRate})
}
