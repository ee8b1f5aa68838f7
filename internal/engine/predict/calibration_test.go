package predict

import (
	"testing"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

func TestCalibratePriors_FallsBackToBaselineWithNoData(t *testing.T) {
	cal := CalibratePriors(nil)
	p := cal.CalibratedProbability("introducer-1", raw.PathOneHop, "fundraise")
	if p != baseline {
		t.Fatalf("expected baseline %f, got %f", baseline, p)
	}
}

func TestCalibratePriors_EmpiricalGroupMovesAwayFromBaseline(t *testing.T) {
	var outcomes []raw.IntroOutcome
	for i := 0; i < 5; i++ {
		outcomes = append(outcomes, raw.IntroOutcome{
			IntroducerID: "introducer-1", TargetID: "t", PathType: raw.PathOneHop,
			IntroKind: "fundraise", Status: raw.IntroPositive,
		})
	}
	cal := CalibratePriors(outcomes)
	p := cal.CalibratedProbability("introducer-1", raw.PathOneHop, "fundraise")
	if p <= baseline {
		t.Fatalf("expected calibrated probability above baseline after 5 successes, got %f", p)
	}
	if p > clampHigh {
		t.Fatalf("expected probability clamped to %f, got %f", clampHigh, p)
	}
}

func TestCalibratePriors_IgnoresNonTerminalOutcomes(t *testing.T) {
	outcomes := []raw.IntroOutcome{
		{IntroducerID: "i", TargetID: "t", PathType: raw.PathOneHop, IntroKind: "fundraise", Status: raw.IntroSent},
		{IntroducerID: "i", TargetID: "t", PathType: raw.PathOneHop, IntroKind: "fundraise", Status: raw.IntroMeeting},
	}
	cal := CalibratePriors(outcomes)
	p := cal.CalibratedProbability("i", raw.PathOneHop, "fundraise")
	if p != baseline {
		t.Fatalf("non-terminal outcomes should not move calibration away from baseline, got %f", p)
	}
}
