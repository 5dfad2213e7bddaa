// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"mhnorm/pkg/api"
)

// RunPayload is everything a run writer needs. Samples inside Run are
// populated only when the caller asked for the chain trace.
type RunPayload struct {
	Run    api.RunV1
	Header bool
}

// Writer registries (format → handler), registered from init() blocks in the
// per-format files.
var (
	RunWriters     = map[string]func(w io.Writer, p RunPayload) error{}
	SummaryWriters = map[string]func(w io.Writer, s api.PosteriorV1) error{}
)

// Register helpers (idempotent last-wins)
func RegisterRun(format string, fn func(io.Writer, RunPayload) error) { RunWriters[format] = fn }

func RegisterSummary(format string, fn func(io.Writer, api.PosteriorV1) error) {
	SummaryWriters[format] = fn
}

// Dispatch helpers used by the apps.
func WriteRun(format string, w io.Writer, p RunPayload) error {
	fn, ok := RunWriters[format]
	if !ok {
		return fmt.Errorf("unknown run format %q (no writer registered)", format)
	}
	return fn(w, p)
}

func WriteSummary(format string, w io.Writer, s api.PosteriorV1) error {
	fn, ok := SummaryWriters[format]
	if !ok {
		return fmt.Errorf("unknown summary format %q (no writer registered)", format)
	}
	return fn(w, s)
}
