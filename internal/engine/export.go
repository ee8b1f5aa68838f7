package engine

import (
	"encoding/json"

	"github.com/vc-platform/decision-engine/internal/engine/errs"
	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// ExportRaw is the only function in this module permitted to hand a raw
// graph to a persistence layer (spec §6's export firewall). It re-runs the
// forbidden-fields scan before marshaling so a caller can never smuggle a
// derived value into storage through this path.
func ExportRaw(g raw.Graph, policy raw.Policy) ([]byte, error) {
	data, err := json.Marshal(g)
	if err != nil {
		return nil, errs.Wrap("export", errs.KindInvariantViolation, "raw graph did not marshal", err)
	}
	hits, err := raw.ValidateNoForbiddenFields(data, policy)
	if err != nil {
		return nil, errs.Wrap("export", errs.KindInvariantViolation, "forbidden-field scan failed", err)
	}
	if len(hits) > 0 {
		return nil, errs.New("export", errs.KindInvariantViolation, "refusing to export raw graph containing forbidden derived field(s)")
	}
	return data, nil
}

// ExportComputed serializes a Result for display or audit. Computed output
// is never round-tripped back through ExportRaw or ValidateNoForbiddenFields
// — Results are write-once artifacts, not inputs to any future Compute
// call (spec §2's "no derived value may ever be stored").
func ExportComputed(r Result) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, errs.Wrap("export", errs.KindInvariantViolation, "result did not marshal", err)
	}
	return data, nil
}
