package derive

import (
	"math"
	"testing"
	"time"
)

func TestDeriveRunway_MissingInputs(t *testing.T) {
	r := DeriveRunway(ResolvedMetric{Found: false}, ResolvedMetric{Found: true, Value: 1000}, time.Time{}, time.Now())
	if r.Confidence != 0 {
		t.Fatalf("expected zero confidence, got %v", r.Confidence)
	}
	if len(r.MissingInputs) != 1 || r.MissingInputs[0] != "cash" {
		t.Fatalf("expected missing cash, got %v", r.MissingInputs)
	}
}

func TestDeriveRunway_ZeroBurn(t *testing.T) {
	now := time.Now()
	r := DeriveRunway(ResolvedMetric{Found: true, Value: 1000}, ResolvedMetric{Found: true, Value: 0}, now, now)
	if !math.IsInf(r.Value, 1) {
		t.Fatalf("expected +Inf runway, got %v", r.Value)
	}
	if r.Confidence != 0.5 {
		t.Fatalf("expected confidence 0.5, got %v", r.Confidence)
	}
}

func TestDeriveRunway_NegativeCash(t *testing.T) {
	now := time.Now()
	r := DeriveRunway(ResolvedMetric{Found: true, Value: -500}, ResolvedMetric{Found: true, Value: 1000}, now, now)
	if r.Value != 0 {
		t.Fatalf("expected 0 runway, got %v", r.Value)
	}
	if r.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9, got %v", r.Confidence)
	}
}

func TestDeriveRunway_Normal(t *testing.T) {
	now := time.Now()
	r := DeriveRunway(ResolvedMetric{Found: true, Value: 20000}, ResolvedMetric{Found: true, Value: 10000}, now, now)
	if r.Value != 2.0 {
		t.Fatalf("expected 2.0 months, got %v", r.Value)
	}
	if r.Confidence != 1.0 {
		t.Fatalf("expected full confidence for fresh data, got %v", r.Confidence)
	}
}

func TestDeriveRunway_StalenessPenalty(t *testing.T) {
	now := time.Now()
	asOf := now.Add(-30 * 24 * time.Hour)
	r := DeriveRunway(ResolvedMetric{Found: true, Value: 20000}, ResolvedMetric{Found: true, Value: 10000}, asOf, now)
	if r.StalenessPenalty != 1.0 {
		t.Fatalf("expected full staleness penalty at 30 days, got %v", r.StalenessPenalty)
	}
	if r.Confidence != 0.5 {
		t.Fatalf("expected confidence 0.5 at full staleness, got %v", r.Confidence)
	}
}

// Runway monotonicity law (spec §8): holding cash constant, increasing
// burn never increases derived runway value.
func TestRunwayMonotonicity(t *testing.T) {
	now := time.Now()
	cash := ResolvedMetric{Found: true, Value: 50000}
	prevRunway := math.Inf(1)
	for _, burn := range []float64{100, 1000, 5000, 10000, 25000} {
		r := DeriveRunway(cash, ResolvedMetric{Found: true, Value: burn}, now, now)
		if r.Value > prevRunway {
			t.Fatalf("runway increased from %v to %v as burn rose to %v", prevRunway, r.Value, burn)
		}
		prevRunway = r.Value
	}
}
