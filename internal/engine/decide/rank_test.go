package decide

import (
	"testing"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

func TestComputeRankScore_HigherUpsideRanksHigher(t *testing.T) {
	w := raw.DefaultPolicy().Weights
	low := Impact{UpsideMagnitude: 20, ProbabilityOfSuccess: 0.6, ExecutionProbability: 0.6, EffortCost: 10, TimeToImpactDays: 10}
	high := Impact{UpsideMagnitude: 80, ProbabilityOfSuccess: 0.6, ExecutionProbability: 0.6, EffortCost: 10, TimeToImpactDays: 10}

	lowScore, _ := ComputeRankScore(low, ScoreInputs{}, w)
	highScore, _ := ComputeRankScore(high, ScoreInputs{}, w)

	if highScore <= lowScore {
		t.Fatalf("expected higher upside to rank higher: low=%f high=%f", lowScore, highScore)
	}
}

func TestRankActions_TiesBreakByIDAscending(t *testing.T) {
	actions := []Action{
		{ID: "b", RankScore: 10},
		{ID: "a", RankScore: 10},
		{ID: "c", RankScore: 20},
	}
	ranked := RankActions(actions)

	if ranked[0].ID != "c" {
		t.Fatalf("expected c first (highest score), got %s", ranked[0].ID)
	}
	if ranked[1].ID != "a" || ranked[2].ID != "b" {
		t.Fatalf("expected tie broken by ascending id: got %s, %s", ranked[1].ID, ranked[2].ID)
	}
	for i, a := range ranked {
		if a.Rank != i+1 {
			t.Fatalf("expected rank %d at position %d, got %d", i+1, i, a.Rank)
		}
	}
}

func TestRankActions_Deterministic(t *testing.T) {
	build := func() []Action {
		return []Action{
			{ID: "x", RankScore: 5},
			{ID: "y", RankScore: 5},
			{ID: "z", RankScore: 9},
		}
	}
	first := RankActions(build())
	second := RankActions(build())
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Rank != second[i].Rank {
			t.Fatalf("expected identical ranking across runs at position %d", i)
		}
	}
}
