package raw

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ForbiddenFields returns the union of every derived/computed field name
// that may never appear in raw input or in a persisted export (spec §4.1,
// §9 Open Question: "the forbidden-fields enumeration in two source
// locations differs slightly; take their union as authoritative").
func ForbiddenFields() []string {
	return []string{
		"runway", "trajectory", "health", "priority", "impact", "urgency",
		"risk", "score", "tier", "band", "rankScore", "rankComponents",
		"obviousnessPenalty", "onTrack", "projectedCompletion",
		"requiredVelocity", "velocity", "issues", "preissues", "preIssues",
		"ripple", "rippleScore", "trustRisk", "calibratedProbability",
		"expectedNetImpact", "impactScore", "priorityScore", "healthScore",
		"executionProbability", "frictionPenalty", "anomalies", "anomaly",
		"derived", "computed", "view", "output", "priorities", "actions",
		"timingState", "escalationDate", "expectedFutureCost",
	}
}

// forbiddenSet is a lazily built lookup; field names are matched
// case-insensitively since JSON payloads and Go-derived names differ in
// casing conventions across the corpus.
func forbiddenSet(fields []string) map[string]bool {
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[strings.ToLower(f)] = true
	}
	return set
}

// ForbiddenFieldHit is one path in raw input where a forbidden key was
// found.
type ForbiddenFieldHit struct {
	Path string
	Key  string
}

// ValidateNoForbiddenFields deep-scans an arbitrary JSON-shaped value
// (typically the result of json.Marshal on a raw.Graph or an exported
// snapshot) and reports every path where a forbidden key appears. An
// empty return means the input is clean. This is the hard-fail check
// spec §4.1/§7 requires before Compute may proceed.
func ValidateNoForbiddenFields(data []byte, policy Policy) ([]ForbiddenFieldHit, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("forbidden-field scan: invalid JSON: %w", err)
	}
	forbidden := forbiddenSet(policy.ForbiddenFields)
	var hits []ForbiddenFieldHit
	scan("$", v, forbidden, &hits)
	return hits, nil
}

func scan(path string, v interface{}, forbidden map[string]bool, hits *[]ForbiddenFieldHit) {
	switch node := v.(type) {
	case map[string]interface{}:
		for key, val := range node {
			childPath := path + "." + key
			if forbidden[strings.ToLower(key)] {
				*hits = append(*hits, ForbiddenFieldHit{Path: childPath, Key: key})
			}
			scan(childPath, val, forbidden, hits)
		}
	case []interface{}:
		for i, val := range node {
			scan(fmt.Sprintf("%s[%d]", path, i), val, forbidden, hits)
		}
	}
}
