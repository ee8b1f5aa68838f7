package decide

import (
	"math"

	"github.com/vc-platform/decision-engine/internal/engine/predict"
	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// EntityType tags what kind of candidate an ImpactInput describes, driving
// the small per-dimension entity-type adjustments spec §4.4.1 calls for.
type EntityType string

const (
	EntityIssue        EntityType = "ISSUE"
	EntityPreIssue     EntityType = "PREISSUE"
	EntityGoal         EntityType = "GOAL"
	EntityIntroduction EntityType = "INTRODUCTION"
	EntityOpportunity  EntityType = "OPPORTUNITY"
)

// entityAdjustment is the fixed small per-entity-type nudge applied across
// several dimensions (spec §4.4.1's repeated "entity-type adjustment").
var entityAdjustment = map[EntityType]float64{
	EntityIssue:        0,
	EntityPreIssue:     -0.03,
	EntityGoal:         0.02,
	EntityIntroduction: -0.05,
	EntityOpportunity:  0.05,
}

// ImpactInput is everything impact.go needs to compute a candidate's seven
// dimensions; it is assembled by the engine orchestration from a predict
// Candidate plus its supporting context (spec §4.4.1: "a function of
// (action, context) only").
type ImpactInput struct {
	Stage      raw.Stage
	EntityType EntityType

	EffortDays float64
	StepCount  int

	// Issue-sourced fields.
	IssueSeverity int // 0-3, -1 if not issue-sourced
	IssueType     predict.IssueType

	// Pre-issue-sourced fields.
	PreIssueLikelihood      float64
	PreIssueIrreversibility float64
	PreIssueCostMultiplier  float64
	PreIssueImminent        bool
	PreIssueExpectedCost    float64
	PreIssueTimeToBreach    float64
	PreIssueType            predict.PreIssueType

	// Goal-direct fields.
	GoalProbabilityOfHit float64 // trajectory confidence the goal hits on time

	// Introduction fields.
	IntroTiming    predict.IntroTiming
	OptionalityGain float64

	RippleScore float64

	ResolutionEffectiveness float64 // 0.2-1.0, from the resolution catalogue

	GoalWeight  float64
	GoalCount   int
	DamageCount int
}

// Impact is the seven-dimension model attached to one candidate (spec
// §4.4.1).
type Impact struct {
	UpsideMagnitude       float64
	ProbabilityOfSuccess  float64
	ExecutionProbability  float64
	DownsideMagnitude     float64
	TimeToImpactDays      float64
	EffortCost            float64
	SecondOrderLeverage   float64
}

func introTimingMultiplier(t predict.IntroTiming) float64 {
	switch t {
	case predict.TimingNow:
		return 1.2
	case predict.TimingSoon:
		return 1.0
	case predict.TimingLater:
		return 0.7
	case predict.TimingNever:
		return 0.0
	default:
		return 1.0
	}
}

// ComputeImpact derives the full seven-dimension model for one candidate.
func ComputeImpact(in ImpactInput, assumptions raw.Assumptions) Impact {
	return Impact{
		UpsideMagnitude:      upsideMagnitude(in, assumptions),
		ProbabilityOfSuccess: probabilityOfSuccess(in),
		ExecutionProbability: executionProbability(in),
		DownsideMagnitude:    downsideMagnitude(in),
		TimeToImpactDays:     timeToImpact(in),
		EffortCost:           effortCost(in),
		SecondOrderLeverage:  secondOrderLeverage(in),
	}
}

func upsideMagnitude(in ImpactInput, a raw.Assumptions) float64 {
	var deltaProbability float64
	switch in.EntityType {
	case EntityIssue:
		switch in.IssueSeverity {
		case 3:
			deltaProbability = 0.40
		case 2:
			deltaProbability = 0.28
		case 1:
			deltaProbability = 0.18
		default:
			deltaProbability = 0.12
		}
	case EntityPreIssue:
		sevFactor := 0.08
		if in.PreIssueIrreversibility >= 0.5 {
			sevFactor = 0.15
		}
		deltaProbability = in.PreIssueLikelihood * sevFactor
	case EntityGoal:
		deltaProbability = (1 - in.GoalProbabilityOfHit) * 0.25
	case EntityIntroduction, EntityOpportunity:
		deltaProbability = 0.10
	}

	weight := in.GoalWeight
	if weight == 0 {
		if in.GoalCount > 0 {
			weight = 1.0
		} else {
			weight = implicitGoalWeight(in.Stage, a)
		}
	}
	upside := weight * deltaProbability * 100

	if in.EntityType == EntityIntroduction {
		upside *= introTimingMultiplier(in.IntroTiming)
	}

	if in.GoalCount > 0 {
		return clamp(upside, 10, 100)
	}
	// No associated goal: implicit-goal path still produces a usable
	// signal rather than collapsing to the floor.
	return clamp(upside, 5, 100)
}

// implicitGoalWeight stands in for goalWeight when a candidate has no
// associated goal (spec §4.4.1): pre-seed/seed/series-A companies imply
// an unstated fundraise goal, everything later implies an unstated
// operational goal, each weighted the same way a real goal of that type
// would be.
func implicitGoalWeight(s raw.Stage, a raw.Assumptions) float64 {
	implicitType := raw.GoalOperational
	if s.Ordinal() >= 0 && s.Ordinal() <= raw.StageSeriesA.Ordinal() {
		implicitType = raw.GoalFundraise
	}
	return a.GoalWeightBase[implicitType] * a.GoalWeightStageModifier[s]
}

func probabilityOfSuccess(in ImpactInput) float64 {
	eff := in.ResolutionEffectiveness
	if eff == 0 {
		eff = 0.6
	}
	p := clamp(eff, 0.2, 1.0)

	switch in.EntityType {
	case EntityIssue:
		switch in.IssueSeverity {
		case 3:
			p += 0.05
		case 0:
			p -= 0.05
		}
	case EntityPreIssue:
		p -= in.PreIssueLikelihood * 0.1
	}

	p += raw.StagePenalty(in.Stage)

	if in.EntityType == EntityGoal && in.GoalProbabilityOfHit < 0.2 {
		p -= 0.08
	}

	return clamp(p, 0.15, 0.95)
}

func executionProbability(in ImpactInput) float64 {
	var base float64
	switch {
	case in.EffortDays <= 1:
		base = 0.75
	case in.EffortDays <= 3:
		base = 0.65
	case in.EffortDays <= 7:
		base = 0.55
	case in.EffortDays <= 14:
		base = 0.45
	default:
		base = 0.35
	}

	// Step-count friction: each step beyond 3 trims a little execution
	// confidence.
	if in.StepCount > 3 {
		base -= float64(in.StepCount-3) * 0.02
	}

	base += stageExecutionBoost(in.Stage)

	if in.PreIssueImminent {
		base += 0.12
	}

	switch in.IssueSeverity {
	case 3:
		base += 0.15
	case 2:
		base += 0.08
	}

	base += entityAdjustment[in.EntityType]

	if in.EntityType == EntityIntroduction {
		switch in.IntroTiming {
		case predict.TimingNow:
			base += 0.1
		case predict.TimingLater:
			base -= 0.15
		case predict.TimingNever:
			base -= 1.0
		}
	}

	return clamp(base, 0.1, 0.9)
}

func stageExecutionBoost(s raw.Stage) float64 {
	if s.Ordinal() >= raw.StageSeriesB.Ordinal() {
		return 0.03
	}
	return 0
}

func downsideMagnitude(in ImpactInput) float64 {
	downside := 5.0
	switch in.EntityType {
	case EntityIssue:
		downside = 5 + float64(in.IssueSeverity)*5
	case EntityPreIssue:
		costFactor := in.PreIssueCostMultiplier
		if costFactor > 3 {
			costFactor = 3
		}
		downside = 3 + in.PreIssueIrreversibility*15 + costFactor*3
	}

	if in.EffortDays >= 21 {
		downside += 5
	} else if in.EffortDays >= 14 {
		downside += 3
	}

	downside += entityAdjustment[in.EntityType] * 10

	return clamp(downside, 2, 40)
}

func timeToImpact(in ImpactInput) float64 {
	days := math.Round(in.EffortDays * 1.5)

	if in.EntityType == EntityPreIssue && in.PreIssueTimeToBreach > 0 {
		compressed := in.PreIssueTimeToBreach * 0.7
		if compressed < days {
			days = compressed
		}
	}

	if in.PreIssueImminent || in.IssueSeverity >= 3 {
		if days > 7 {
			days = 7
		}
	}

	days *= raw.TimeToImpactStageScale(in.Stage)

	return clamp(days, 1, 60)
}

func effortCost(in ImpactInput) float64 {
	effort := in.EffortDays
	if effort > 30 {
		effort = 30
	}
	cost := 10 + effort*2

	if in.StepCount > 3 {
		cost += float64(in.StepCount-3) * 1.5
	}

	cost += stageOverhead(in.Stage)
	cost += entityAdjustment[in.EntityType] * 20

	if in.EntityType == EntityPreIssue {
		cost += in.PreIssueIrreversibility * 5
	}
	if in.EntityType == EntityIssue {
		cost += float64(in.IssueSeverity) * 2
	}

	return clamp(cost, 5, 85)
}

func stageOverhead(s raw.Stage) float64 {
	if s.Ordinal() >= raw.StageSeriesC.Ordinal() {
		return 8
	}
	if s.Ordinal() >= raw.StageSeriesA.Ordinal() {
		return 3
	}
	return 0
}

// structuralIssueLeverage is the fixed issue-type leverage bonus table
// (spec §4.4.1: "structural issue-type bonus (RUNWAY = 60, PIPELINE = 45)").
var structuralIssueLeverage = map[predict.IssueType]float64{
	predict.IssueRunwayCritical: 60,
	predict.IssueRunwayWarning:  60,
	predict.IssueNoPipeline:     45,
	predict.IssuePipelineGap:    45,
}

func secondOrderLeverage(in ImpactInput) float64 {
	candidates := []float64{0}

	candidates = append(candidates, 10+in.RippleScore*70)

	if bonus, ok := structuralIssueLeverage[in.IssueType]; ok {
		candidates = append(candidates, bonus)
	}

	if in.PreIssueExpectedCost > 0 {
		efcBonus := 15 + in.PreIssueExpectedCost*0.8
		if efcBonus > 65 {
			efcBonus = 65
		}
		candidates = append(candidates, efcBonus)
	}

	if bonus := in.PreIssueType.StructuralLeverage(); bonus > 0 {
		candidates = append(candidates, bonus)
	}

	if in.GoalCount > 1 {
		candidates = append(candidates, 25+8*float64(in.GoalCount))
	}

	if in.DamageCount > 1 {
		candidates = append(candidates, 20+10*float64(in.DamageCount))
	}

	if in.EntityType == EntityIntroduction {
		candidates = append(candidates, in.OptionalityGain)
	}

	max := candidates[0]
	for _, c := range candidates[1:] {
		if c > max {
			max = c
		}
	}

	return clamp(max, 5, 80)
}
