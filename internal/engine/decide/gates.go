package decide

import (
	"fmt"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// GateLevel is the fixed urgency-gate enumeration (spec §4.4.4).
type GateLevel string

const (
	GateNone GateLevel = "NONE"
	GateCAT2 GateLevel = "CAT2"
	GateCAT1 GateLevel = "CAT1"
)

// GateConditions bundles the per-company facts gate evaluation needs,
// kept separate from ImpactInput since gating happens before impact
// attachment in the orchestration sequence (spec §4.5 step 4).
type GateConditions struct {
	RunwayMonths        float64
	HasActiveFundraiseGoal bool
	LegalDeadlineDays   float64 // days until a legal deadline, <0 if none
	DataBlockerStaleDays float64
	DeckAgeDays         float64
	DuringFundraise     bool
}

// EvaluateGate determines the urgency gate an action is subject to (spec
// §4.4.4). Opportunity-sourced actions (introductions included — see
// DESIGN.md's Open Question decision on OPPORTUNITY vs INTRODUCTION
// sourceType) are always exempt from CAT1 (P6).
func EvaluateGate(isOpportunitySourced bool, cond GateConditions, unblocks []string) GateLevel {
	if isOpportunitySourced {
		return GateNone
	}

	cat1 := (cond.RunwayMonths < 3 && !cond.HasActiveFundraiseGoal) ||
		(cond.LegalDeadlineDays >= 0 && cond.LegalDeadlineDays < 14)
	if cat1 {
		return GateCAT1
	}

	cat2 := cond.DuringFundraise && (cond.DataBlockerStaleDays > 7 || cond.DeckAgeDays > 30)
	if cat2 && len(unblocks) > 0 {
		return GateCAT2
	}

	return GateNone
}

// ProactivityThreshold returns the minimum OPPORTUNITY-sourced ratio
// required in the top-N actions for the active gate level (spec §4.4.4).
func ProactivityThreshold(gate GateLevel, a raw.Assumptions) float64 {
	switch gate {
	case GateCAT1:
		return a.ProactivityCAT1
	case GateCAT2:
		return a.ProactivityCAT2
	default:
		return a.ProactivityNoGate
	}
}

// ValidateProactivity checks the top-N actions' OPPORTUNITY-sourced ratio
// against the threshold implied by the most severe gate present among
// them (CAT1 beats CAT2 beats no gate — each carries its own, typically
// lower, required ratio), returning a warning string (non-fatal, spec
// §4.4.4, §7's "ranking violation -> report, don't mutate").
func ValidateProactivity(topN []Action, a raw.Assumptions) (warning string, ok bool) {
	if len(topN) == 0 {
		return "", true
	}

	threshold := a.ProactivityNoGate
	strictestGate := GateNone
	for _, act := range topN {
		if act.Gate == GateCAT1 {
			strictestGate = GateCAT1
			break
		}
		if act.Gate == GateCAT2 && strictestGate != GateCAT1 {
			strictestGate = GateCAT2
		}
	}
	threshold = ProactivityThreshold(strictestGate, a)

	var opportunityCount int
	for _, act := range topN {
		if act.IsOpportunitySourced {
			opportunityCount++
		}
	}
	ratio := float64(opportunityCount) / float64(len(topN))

	if ratio < threshold {
		return fmt.Sprintf(
			"proactivity ratio %.2f below %.2f threshold (gate=%s) across top %d actions",
			ratio, threshold, strictestGate, len(topN),
		), false
	}
	return "", true
}
