package decide

import (
	"sort"

	"github.com/vc-platform/decision-engine/internal/engine/predict"
	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// RankComponents is the mandatory audit breakdown behind a ranked action's
// rankScore (spec §4.4.2). Never persisted.
type RankComponents struct {
	ExpectedNetImpact       float64
	TrustPenalty            float64
	ExecutionFrictionPenalty float64
	TimeCriticalityBoost    float64
	ObviousnessPenalty      float64 // in [0, 0.8], pre-SCALE
}

// Action is one fully-scored, ranked output of the decide layer (spec §3).
type Action struct {
	ID             string
	CompanyID      string
	GoalID         string
	EntityType     EntityType
	IsOpportunitySourced bool
	ResolutionID   string
	Sources        []predict.CandidateSource
	Steps          []string
	Impact         Impact
	Unblocks       []string
	TimingState    predict.IntroTiming // empty for non-introduction actions
	Gate           GateLevel
	RankScore      float64
	Rank           int
	RankComponents RankComponents
}

// ScoreInputs bundles the cross-cutting, per-action context rankScore
// needs beyond the Impact model itself (spec §4.4.2).
type ScoreInputs struct {
	TrustRiskScore       float64 // 0-100, 0 for non-introduction actions
	Friction             float64 // 0-1
	DaysUntilDeadline    float64 // 0 when no deadline applies
	ObviousnessPenalty   float64 // 0-0.8
}

// ComputeRankScore implements spec §4.4.2's rankScore formula exactly and
// returns both the scalar and its audit breakdown.
func ComputeRankScore(impact Impact, in ScoreInputs, w raw.Weights) (float64, RankComponents) {
	combinedProb := impact.ExecutionProbability * impact.ProbabilityOfSuccess

	expectedNetImpact := impact.UpsideMagnitude*combinedProb +
		impact.SecondOrderLeverage -
		impact.DownsideMagnitude*(1-combinedProb) -
		impact.EffortCost -
		timePenalty(impact.TimeToImpactDays, w)

	tp := trustPenalty(in.TrustRiskScore, w)
	fp := executionFrictionPenalty(in.Friction, w)
	tcb := timeCriticalityBoost(in.DaysUntilDeadline, w)
	obviousness := clamp(in.ObviousnessPenalty, 0, 0.8)

	score := expectedNetImpact - tp - fp + tcb - obviousness*w.ObviousnessScale

	return score, RankComponents{
		ExpectedNetImpact:        expectedNetImpact,
		TrustPenalty:             tp,
		ExecutionFrictionPenalty: fp,
		TimeCriticalityBoost:     tcb,
		ObviousnessPenalty:       obviousness,
	}
}

// RankActions sorts by rankScore descending, tie-broken by action ID
// ascending (spec §4.4.2, P3), then assigns ranks 1..N. The input slice is
// sorted in place and also returned for convenience.
func RankActions(actions []Action) []Action {
	sort.SliceStable(actions, func(i, j int) bool {
		if actions[i].RankScore != actions[j].RankScore {
			return actions[i].RankScore > actions[j].RankScore
		}
		return actions[i].ID < actions[j].ID
	})
	for i := range actions {
		actions[i].Rank = i + 1
	}
	return actions
}
