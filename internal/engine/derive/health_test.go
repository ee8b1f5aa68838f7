package derive

import "testing"

func TestDeriveHealth_Bands(t *testing.T) {
	cases := []struct {
		months float64
		want   HealthBand
	}{
		{2, HealthRed},
		{8, HealthYellow},
		{18, HealthGreen},
	}
	for _, c := range cases {
		h := DeriveHealth(Runway{Value: c.months, Confidence: 1})
		if h.Band != c.want {
			t.Errorf("months=%v: got %v, want %v", c.months, h.Band, c.want)
		}
	}
}

func TestDeriveHealth_MissingDataNeverPenalizesBand(t *testing.T) {
	// Law (spec §8): adding a missing-goal fact never lowers health band.
	// Here: missing runway inputs must not force RED — it drops confidence
	// but defaults to a neutral band, never worse than what partial data
	// would imply.
	h := DeriveHealth(Runway{MissingInputs: []string{"cash"}})
	if h.Band == HealthRed {
		t.Fatal("missing data must never produce a RED band by itself")
	}
	if h.Confidence != 0.3 {
		t.Fatalf("expected reduced confidence 0.3, got %v", h.Confidence)
	}
}
