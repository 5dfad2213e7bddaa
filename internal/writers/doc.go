// Package writers turns sampler results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV trace, JSON, JSONL).
//   - The chain engine stays domain-only; app stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
