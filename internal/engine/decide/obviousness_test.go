package decide

import (
	"testing"
	"time"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

func TestComputeObviousness_DecaysOverHalfLife(t *testing.T) {
	now := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	fresh := ObviousnessInputs{
		Dismissals: []raw.DismissalEvent{{Reason: raw.ReasonNotRelevant, Timestamp: now}},
	}
	aged := ObviousnessInputs{
		Dismissals: []raw.DismissalEvent{{Reason: raw.ReasonNotRelevant, Timestamp: now.Add(-60 * 24 * time.Hour)}},
	}

	freshScore := ComputeObviousness(fresh, now)
	agedScore := ComputeObviousness(aged, now)

	if agedScore >= freshScore {
		t.Fatalf("expected a 60-day-old dismissal to have decayed below a fresh one: fresh=%f aged=%f", freshScore, agedScore)
	}
	if agedScore < freshScore/2.5 || agedScore > freshScore/1.5 {
		t.Fatalf("expected roughly half-life decay at 60 days (half-life is 60), fresh=%f aged=%f", freshScore, agedScore)
	}
}

func TestComputeObviousness_CapsAtEightyPercent(t *testing.T) {
	now := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	in := ObviousnessInputs{
		Dismissals: []raw.DismissalEvent{
			{Reason: raw.ReasonNotRelevant, Timestamp: now},
			{Reason: raw.ReasonDisagree, Timestamp: now},
			{Reason: raw.ReasonNotRelevant, Timestamp: now},
		},
		RecentUserActionSameEntity: true,
		RedundantWithFocus:         true,
	}
	score := ComputeObviousness(in, now)
	if score > 0.8 {
		t.Fatalf("expected obviousness penalty capped at 0.8, got %f", score)
	}
}

func TestComputeObviousness_NoEvidenceIsZero(t *testing.T) {
	now := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	score := ComputeObviousness(ObviousnessInputs{}, now)
	if score != 0 {
		t.Fatalf("expected zero obviousness with no dismissals/surfaces/recency, got %f", score)
	}
}
