package decide

import (
	"testing"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

func TestEvaluateGate_RunwayCliffWithoutFundraiseIsCAT1(t *testing.T) {
	cond := GateConditions{RunwayMonths: 2, HasActiveFundraiseGoal: false}
	gate := EvaluateGate(false, cond, nil)
	if gate != GateCAT1 {
		t.Fatalf("expected CAT1 for sub-3-month runway with no active fundraise, got %s", gate)
	}
}

func TestEvaluateGate_RunwayCliffWithActiveFundraiseIsNotCAT1(t *testing.T) {
	cond := GateConditions{RunwayMonths: 2, HasActiveFundraiseGoal: true, LegalDeadlineDays: -1}
	gate := EvaluateGate(false, cond, nil)
	if gate == GateCAT1 {
		t.Fatalf("expected an active fundraise goal to suppress CAT1, got %s", gate)
	}
}

func TestEvaluateGate_OpportunitySourcedIsAlwaysExempt(t *testing.T) {
	cond := GateConditions{RunwayMonths: 1, HasActiveFundraiseGoal: false, LegalDeadlineDays: 1}
	gate := EvaluateGate(true, cond, nil)
	if gate != GateNone {
		t.Fatalf("expected opportunity-sourced actions to be exempt from every gate, got %s", gate)
	}
}

func TestEvaluateGate_CAT2RequiresFundraiseAndStalenessAndUnblocks(t *testing.T) {
	cond := GateConditions{RunwayMonths: 12, LegalDeadlineDays: -1, DuringFundraise: true, DataBlockerStaleDays: 10}
	withUnblocks := EvaluateGate(false, cond, []string{"goal-1"})
	if withUnblocks != GateCAT2 {
		t.Fatalf("expected CAT2 when stale during fundraise with unblocks, got %s", withUnblocks)
	}

	withoutUnblocks := EvaluateGate(false, cond, nil)
	if withoutUnblocks == GateCAT2 {
		t.Fatal("expected no CAT2 without any unblocked goals")
	}
}

func TestValidateProactivity_BelowThresholdProducesWarning(t *testing.T) {
	a := raw.DefaultPolicy().Assumptions
	actions := []Action{
		{ID: "a1", Gate: GateNone, IsOpportunitySourced: false},
		{ID: "a2", Gate: GateNone, IsOpportunitySourced: false},
		{ID: "a3", Gate: GateNone, IsOpportunitySourced: false},
	}
	warning, ok := ValidateProactivity(actions, a)
	if ok {
		t.Fatal("expected proactivity validation to fail with zero opportunity-sourced actions and no gate active")
	}
	if warning == "" {
		t.Fatal("expected a non-empty warning message")
	}
}

func TestValidateProactivity_EmptyTopNIsTriviallyOK(t *testing.T) {
	a := raw.DefaultPolicy().Assumptions
	_, ok := ValidateProactivity(nil, a)
	if !ok {
		t.Fatal("expected an empty top-N list to trivially satisfy proactivity")
	}
}
