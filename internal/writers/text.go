// internal/writers/text.go
package writers

import (
	"fmt"
	"io"

	"mhnorm/pkg/api"
)

// TSVHeader is the canonical header row for text/TSV chain traces.
// Keep this as the single source of truth; traceio parses against it too.
const TSVHeader = "generation\tmean\tstdev\tlog_like"

func init() {
	RegisterRun("text", writeRunText)
	RegisterSummary("text", writeSummaryText)
}

func writeRunText(w io.Writer, p RunPayload) error {
	if p.Run.Samples != nil {
		if p.Header {
			if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
				return err
			}
		}
		for _, s := range p.Run.Samples {
			if _, err := fmt.Fprintf(w, "%d\t%g\t%g\t%g\n", s.Generation, s.Mean, s.Stdev, s.LogLike); err != nil {
				return err
			}
		}
	}
	// '#' keeps the summary out of TSV parsers reading the trace above.
	if _, err := fmt.Fprintf(w, "# generations=%d sample_size=%d seed=%d acceptance_rate=%.4f\n",
		p.Run.Generations, p.Run.SampleSize, p.Run.Seed, p.Run.AcceptanceRate); err != nil {
		return err
	}
	return writeSummaryText(w, p.Run.Posterior)
}

func writeSummaryText(w io.Writer, s api.PosteriorV1) error {
	if _, err := fmt.Fprintf(w, "# burnin=%d\n", s.Burnin); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w,
		"posterior_mean\t%.6g\nposterior_mean_ci95\t%.6g\t%.6g\nposterior_stdev\t%.6g\nposterior_stdev_ci95\t%.6g\t%.6g\n",
		s.Mean, s.MeanCILow, s.MeanCIHigh, s.Stdev, s.StdevCILow, s.StdevCIHigh)
	return err
}
