package decide

import (
	"testing"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

func TestComputeFriction_DefaultsWithInsufficientSamples(t *testing.T) {
	samples := []OutcomeSample{
		{Outcome: raw.OutcomeFailure, DelayDays: 5},
		{Outcome: raw.OutcomeSuccess, DelayDays: 2},
	}
	f := ComputeFriction(samples)
	if f != defaultFriction {
		t.Fatalf("expected default friction %f with only %d samples, got %f", defaultFriction, len(samples), f)
	}
}

func TestComputeFriction_AllFailuresIsHigh(t *testing.T) {
	samples := []OutcomeSample{
		{Outcome: raw.OutcomeFailure, DelayDays: 30},
		{Outcome: raw.OutcomeFailure, DelayDays: 30},
		{Outcome: raw.OutcomeFailure, DelayDays: 30},
	}
	f := ComputeFriction(samples)
	if f < 0.79 {
		t.Fatalf("expected near-maximal friction for all-failure, max-delay samples, got %f", f)
	}
}

func TestComputeFriction_AllSuccessNoDelayIsLow(t *testing.T) {
	samples := []OutcomeSample{
		{Outcome: raw.OutcomeSuccess, DelayDays: 0},
		{Outcome: raw.OutcomeSuccess, DelayDays: 0},
		{Outcome: raw.OutcomeSuccess, DelayDays: 0},
		{Outcome: raw.OutcomeSuccess, DelayDays: 0},
	}
	f := ComputeFriction(samples)
	if f != 0 {
		t.Fatalf("expected zero friction for all-success, zero-delay samples, got %f", f)
	}
}
