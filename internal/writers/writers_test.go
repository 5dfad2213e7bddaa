package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"mhnorm/pkg/api"
)

func payload(trace bool) RunPayload {
	run := api.RunV1{
		Generations:    2,
		SampleSize:     3,
		Seed:           42,
		AcceptanceRate: 0.5,
		Posterior: api.PosteriorV1{
			Burnin: 1, Mean: 10, Stdev: 1,
			MeanCILow: 9, MeanCIHigh: 11, StdevCILow: 0.5, StdevCIHigh: 1.5,
		},
	}
	if trace {
		run.Samples = []api.SampleV1{
			{Generation: 0, Mean: 9.5, Stdev: 1.2, LogLike: -15},
			{Generation: 1, Mean: 10.1, Stdev: 1.0, LogLike: -14},
			{Generation: 2, Mean: 10.1, Stdev: 1.0, LogLike: -14},
		}
	}
	return RunPayload{Run: run, Header: true}
}

func TestWriteRunTextWithTrace(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRun("text", &buf, payload(true)); err != nil {
		t.Fatalf("WriteRun: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, TSVHeader+"\n") {
		t.Fatalf("missing header:\n%s", out)
	}
	for _, want := range []string{"0\t9.5\t1.2\t-15", "posterior_mean\t10", "posterior_stdev_ci95\t0.5\t1.5", "# burnin=1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteRunTextNoHeaderNoTrace(t *testing.T) {
	var buf bytes.Buffer
	p := payload(false)
	p.Header = false
	if err := WriteRun("text", &buf, p); err != nil {
		t.Fatalf("WriteRun: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, TSVHeader) {
		t.Fatalf("summary-only output should not carry the trace header:\n%s", out)
	}
	if !strings.Contains(out, "acceptance_rate=0.5000") {
		t.Fatalf("missing run metadata:\n%s", out)
	}
}

func TestWriteRunJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRun("json", &buf, payload(true)); err != nil {
		t.Fatalf("WriteRun: %v", err)
	}
	var got api.RunV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Seed != 42 || len(got.Samples) != 3 || got.Posterior.Mean != 10 {
		t.Fatalf("roundtrip mismatch: %+v", got)
	}
}

func TestWriteRunJSONL(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRun("jsonl", &buf, payload(true)); err != nil {
		t.Fatalf("WriteRun: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("want 3 sample lines + summary, got %d:\n%s", len(lines), buf.String())
	}
	var s api.SampleV1
	if err := json.Unmarshal([]byte(lines[0]), &s); err != nil || s.Generation != 0 {
		t.Fatalf("bad first sample line %q: %v", lines[0], err)
	}
	if !strings.Contains(lines[3], `"posterior"`) {
		t.Fatalf("last line should be the posterior summary: %q", lines[3])
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := WriteRun("xml", &bytes.Buffer{}, payload(false)); err == nil {
		t.Fatalf("expected error for unregistered format")
	}
	if err := WriteSummary("xml", &bytes.Buffer{}, api.PosteriorV1{}); err == nil {
		t.Fatalf("expected error for unregistered format")
	}
}
