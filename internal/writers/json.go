// internal/writers/json.go
package writers

import (
	"io"

	"mhnorm/internal/jsonutil"
	"mhnorm/pkg/api"
)

func init() {
	RegisterRun("json", func(w io.Writer, p RunPayload) error {
		return jsonutil.EncodePretty(w, p.Run)
	})
	RegisterSummary("json", func(w io.Writer, s api.PosteriorV1) error {
		return jsonutil.EncodePretty(w, s)
	})
}
