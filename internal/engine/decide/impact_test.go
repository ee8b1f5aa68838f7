package decide

import (
	"testing"

	"github.com/vc-platform/decision-engine/internal/engine/predict"
	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

func TestComputeImpact_HigherSeverityIssueRaisesUpside(t *testing.T) {
	a := raw.DefaultPolicy().Assumptions
	low := ImpactInput{EntityType: EntityIssue, IssueSeverity: 1, GoalCount: 1, GoalWeight: 1}
	high := ImpactInput{EntityType: EntityIssue, IssueSeverity: 3, GoalCount: 1, GoalWeight: 1}

	lowImpact := ComputeImpact(low, a)
	highImpact := ComputeImpact(high, a)

	if highImpact.UpsideMagnitude <= lowImpact.UpsideMagnitude {
		t.Fatalf("expected severity 3 upside > severity 1 upside: low=%f high=%f",
			lowImpact.UpsideMagnitude, highImpact.UpsideMagnitude)
	}
}

func TestComputeImpact_NeverTimingZeroesExecutionProbability(t *testing.T) {
	a := raw.DefaultPolicy().Assumptions
	in := ImpactInput{EntityType: EntityIntroduction, IntroTiming: predict.TimingNever, EffortDays: 2}
	impact := ComputeImpact(in, a)
	if impact.ExecutionProbability > 0.1 {
		t.Fatalf("expected a near-floor execution probability for NEVER timing, got %f", impact.ExecutionProbability)
	}
}

func TestComputeImpact_AllDimensionsStayWithinDocumentedRanges(t *testing.T) {
	a := raw.DefaultPolicy().Assumptions
	in := ImpactInput{
		EntityType: EntityPreIssue, Stage: raw.StageSeriesA,
		PreIssueLikelihood: 0.8, PreIssueIrreversibility: 0.6, PreIssueCostMultiplier: 2,
		PreIssueExpectedCost: 40, PreIssueTimeToBreach: 10, EffortDays: 5, StepCount: 4,
	}
	impact := ComputeImpact(in, a)

	if impact.UpsideMagnitude < 5 || impact.UpsideMagnitude > 100 {
		t.Fatalf("upside out of range: %f", impact.UpsideMagnitude)
	}
	if impact.ProbabilityOfSuccess < 0.15 || impact.ProbabilityOfSuccess > 0.95 {
		t.Fatalf("probability of success out of range: %f", impact.ProbabilityOfSuccess)
	}
	if impact.ExecutionProbability < 0.1 || impact.ExecutionProbability > 0.9 {
		t.Fatalf("execution probability out of range: %f", impact.ExecutionProbability)
	}
	if impact.DownsideMagnitude < 2 || impact.DownsideMagnitude > 40 {
		t.Fatalf("downside out of range: %f", impact.DownsideMagnitude)
	}
	if impact.TimeToImpactDays < 1 || impact.TimeToImpactDays > 60 {
		t.Fatalf("time to impact out of range: %f", impact.TimeToImpactDays)
	}
	if impact.EffortCost < 5 || impact.EffortCost > 85 {
		t.Fatalf("effort cost out of range: %f", impact.EffortCost)
	}
	if impact.SecondOrderLeverage < 5 || impact.SecondOrderLeverage > 80 {
		t.Fatalf("second order leverage out of range: %f", impact.SecondOrderLeverage)
	}
}

func TestComputeImpact_StructuralRunwayIssueGetsLeverageFloor(t *testing.T) {
	a := raw.DefaultPolicy().Assumptions
	in := ImpactInput{EntityType: EntityIssue, IssueType: predict.IssueRunwayCritical}
	impact := ComputeImpact(in, a)
	if impact.SecondOrderLeverage < 60 {
		t.Fatalf("expected runway-critical structural leverage floor of 60, got %f", impact.SecondOrderLeverage)
	}
}
