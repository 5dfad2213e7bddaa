// internal/traceio/reader.go
package traceio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"mhnorm-core/chain"
	"mhnorm/pkg/api"
)

// Load reads a previously written chain trace from path ("-" = stdin).
// Both the text/TSV and the JSONL trace formats are accepted; the format is
// detected per line, so headers, '#' comments, and the trailing JSONL
// posterior object are all skipped.
func Load(path string) (*chain.History, error) {
	if path == "-" {
		return Read(os.Stdin, "stdin")
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Read(fh, path)
}

// Read parses a trace from r; name labels errors.
func Read(r io.Reader, name string) (*chain.History, error) {
	var means, stdevs, logLikes []float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "" || line[0] == '#':
			continue
		case line[0] == '{':
			var probe map[string]json.RawMessage
			if err := json.Unmarshal([]byte(line), &probe); err != nil {
				return nil, fmt.Errorf("%s:%d bad JSON line: %v", name, ln, err)
			}
			if _, isSummary := probe["posterior"]; isSummary {
				continue
			}
			var s api.SampleV1
			if err := json.Unmarshal([]byte(line), &s); err != nil {
				return nil, fmt.Errorf("%s:%d bad sample line: %v", name, ln, err)
			}
			means = append(means, s.Mean)
			stdevs = append(stdevs, s.Stdev)
			logLikes = append(logLikes, s.LogLike)
		default:
			f := strings.Fields(line)
			if len(f) == 4 && f[0] == "generation" {
				continue // TSV header
			}
			if strings.HasPrefix(f[0], "posterior_") {
				continue // trailing summary block of a text run
			}
			if len(f) != 4 {
				return nil, fmt.Errorf("%s:%d bad field count %d (want generation mean stdev log_like)", name, ln, len(f))
			}
			vals := make([]float64, 3)
			for i, col := range f[1:] {
				v, err := strconv.ParseFloat(col, 64)
				if err != nil {
					return nil, fmt.Errorf("%s:%d bad value %q", name, ln, col)
				}
				vals[i] = v
			}
			means = append(means, vals[0])
			stdevs = append(stdevs, vals[1])
			logLikes = append(logLikes, vals[2])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(means) == 0 {
		return nil, fmt.Errorf("%s: no chain slots found", name)
	}
	return chain.HistoryFromColumns(means, stdevs, logLikes)
}
