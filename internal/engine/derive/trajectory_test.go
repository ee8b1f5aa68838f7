package derive

import (
	"testing"
	"time"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

func TestDeriveTrajectory_FewerThanTwoPoints(t *testing.T) {
	now := time.Now()
	goal := raw.Goal{Target: 100, Current: 10, DueDate: now.Add(60 * 24 * time.Hour)}
	tr := DeriveTrajectory(goal, nil, now)
	if tr.OnTrack != OnTrackUnknown {
		t.Fatalf("expected unknown with 0 data points, got %v", tr.OnTrack)
	}
	if tr.RequiredVelocity <= 0 {
		t.Fatalf("expected positive required velocity, got %v", tr.RequiredVelocity)
	}
}

func TestDeriveTrajectory_Unachievable(t *testing.T) {
	now := time.Now()
	goal := raw.Goal{Target: 100, Current: 10, DueDate: now.Add(60 * 24 * time.Hour)}
	snaps := []raw.GoalSnapshot{
		{AsOf: now.Add(-20 * 24 * time.Hour), Value: 20},
		{AsOf: now, Value: 10},
	}
	tr := DeriveTrajectory(goal, snaps, now)
	if tr.OnTrack != OnTrackNo {
		t.Fatalf("expected not on track for negative velocity, got %v", tr.OnTrack)
	}
}

func TestDeriveTrajectory_AlreadyMet(t *testing.T) {
	now := time.Now()
	goal := raw.Goal{Target: 100, Current: 120, DueDate: now.Add(30 * 24 * time.Hour)}
	snaps := []raw.GoalSnapshot{
		{AsOf: now.Add(-10 * 24 * time.Hour), Value: 90},
		{AsOf: now, Value: 120},
	}
	tr := DeriveTrajectory(goal, snaps, now)
	if tr.OnTrack != OnTrackYes {
		t.Fatalf("expected on track when target already met, got %v", tr.OnTrack)
	}
	if tr.ProjectedCompletion == nil {
		t.Fatal("expected non-nil projected completion")
	}
}
