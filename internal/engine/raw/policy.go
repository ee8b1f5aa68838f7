package raw

// StageParams holds the per-stage numeric bounds the derive layer uses to
// judge whether a company's metrics are in a healthy range for its stage.
// One canonical table exists here — see DESIGN.md's Open Question
// resolution for why the corpus's second, reduced copy is discarded.
type StageParams struct {
	MinRaiseSize      float64
	MaxRaiseSize      float64
	MinBurn           float64
	MaxBurn           float64
	MinEmployees      int
	MaxEmployees      int
	MinRunwayMonths   float64
	MinRevenue        float64
	MaxRevenue        float64
	OperationalBounds map[MetricKey][2]float64 // [min, max]
	ExpectedGoalTypes []GoalType
}

// Assumptions holds tunable policy constants that feed the derive/predict
// layers but never flow directly into rankScore (spec §4.1).
type Assumptions struct {
	// GoalWeightBase[goalType] is the base weight before stage modifiers.
	GoalWeightBase map[GoalType]float64
	// GoalWeightStageModifier[stage] scales GoalWeightBase.
	GoalWeightStageModifier map[Stage]float64

	RelationshipDecayHalfLifeDays float64 // 90
	RelationshipColdThresholdDays float64 // 180

	IntroBaselineConversion float64 // 0.15

	// Timing-window urgency thresholds, in days.
	TimingWindowNow   float64 // 7
	TimingWindowSoon  float64 // 14
	TimingWindowLater float64 // 30
	TimingWindowNever float64 // 60

	// Urgency gate thresholds.
	CAT1RunwayMonths    float64 // 3
	CAT1LegalDays       float64 // 14
	CAT2DataBlockerDays float64 // 7
	CAT2DeckAgeDays     float64 // 30

	// Ranking bounds.
	ImpactMax          float64 // 100
	ComponentFloor     float64 // 0.2
	ComponentCeiling   float64 // 1.0
	ObviousnessCap     float64 // 0.8

	// Proactivity targets, keyed by active gate (see decide/gates.go).
	ProactivityNoGate float64 // 0.70
	ProactivityCAT2   float64 // 0.50
	ProactivityCAT1   float64 // 0.0
}

// Weights holds ranking-component weights and the timePenalty shape,
// named in spec §6 "Configuration".
type Weights struct {
	TimePenaltyK float64 // saturating-function constant, default 14

	TrustPenaltyScale float64
	FrictionPenaltyScale float64
	TimeCriticalityScale float64
	ObviousnessScale  float64 // SCALE in rankScore's final term
}

// Policy is the single immutable process-wide configuration struct (spec
// §6). Never mutated after construction; every field here must pass
// through derive or decide before reaching rankScore (spec §4.1).
type Policy struct {
	StageParams     map[Stage]StageParams
	Assumptions     Assumptions
	ForbiddenFields []string
	Weights         Weights
}

// DefaultPolicy returns the hard-coded baseline policy. Callers that want
// file-based overrides should start from this value and apply
// LoadPolicyYAML on top of a copy (see policyconfig.go).
func DefaultPolicy() Policy {
	return Policy{
		StageParams: defaultStageParams(),
		Assumptions: Assumptions{
			GoalWeightBase: map[GoalType]float64{
				GoalFundraise:           1.0,
				GoalRevenue:             0.9,
				GoalProduct:             0.7,
				GoalHiring:              0.6,
				GoalPartnership:         0.6,
				GoalOperational:         0.5,
				GoalRetention:           0.8,
				GoalEfficiency:          0.6,
				GoalCustomerGrowth:      0.85,
				GoalDealClose:           1.0,
				GoalRoundCompletion:     1.0,
				GoalInvestorActivation:  0.7,
				GoalChampionCultivation: 0.65,
				GoalRelationshipBuild:   0.5,
				GoalIntroTarget:         0.6,
			},
			GoalWeightStageModifier: map[Stage]float64{
				StagePreSeed: 1.2,
				StageSeed:    1.1,
				StageSeriesA: 1.0,
				StageSeriesB: 0.95,
				StageSeriesC: 0.9,
				StageSeriesD: 0.85,
			},
			RelationshipDecayHalfLifeDays:  90,
			RelationshipColdThresholdDays:  180,
			IntroBaselineConversion:        0.15,
			TimingWindowNow:                7,
			TimingWindowSoon:               14,
			TimingWindowLater:              30,
			TimingWindowNever:              60,
			CAT1RunwayMonths:               3,
			CAT1LegalDays:                  14,
			CAT2DataBlockerDays:            7,
			CAT2DeckAgeDays:                30,
			ImpactMax:                      100,
			ComponentFloor:                 0.2,
			ComponentCeiling:               1.0,
			ObviousnessCap:                 0.8,
			ProactivityNoGate:              0.70,
			ProactivityCAT2:                0.50,
			ProactivityCAT1:                0.0,
		},
		ForbiddenFields: ForbiddenFields(),
		Weights: Weights{
			TimePenaltyK:         14,
			TrustPenaltyScale:    1.0,
			FrictionPenaltyScale: 20.0,
			TimeCriticalityScale: 1.0,
			ObviousnessScale:     40.0,
		},
	}
}

func defaultStageParams() map[Stage]StageParams {
	ops := func(pairs ...interface{}) map[MetricKey][2]float64 {
		m := make(map[MetricKey][2]float64)
		for i := 0; i < len(pairs); i += 3 {
			m[pairs[i].(MetricKey)] = [2]float64{pairs[i+1].(float64), pairs[i+2].(float64)}
		}
		return m
	}
	return map[Stage]StageParams{
		StagePreSeed: {
			MinRaiseSize: 100_000, MaxRaiseSize: 1_500_000,
			MinBurn: 5_000, MaxBurn: 60_000,
			MinEmployees: 1, MaxEmployees: 8,
			MinRunwayMonths: 6,
			MinRevenue: 0, MaxRevenue: 50_000,
			OperationalBounds: ops(MetricChurn, 0.0, 0.15, MetricNPS, -20.0, 80.0),
			ExpectedGoalTypes: []GoalType{GoalFundraise, GoalProduct},
		},
		StageSeed: {
			MinRaiseSize: 500_000, MaxRaiseSize: 4_000_000,
			MinBurn: 20_000, MaxBurn: 150_000,
			MinEmployees: 3, MaxEmployees: 20,
			MinRunwayMonths: 9,
			MinRevenue: 0, MaxRevenue: 300_000,
			OperationalBounds: ops(MetricChurn, 0.0, 0.1, MetricNPS, 0.0, 85.0),
			ExpectedGoalTypes: []GoalType{GoalFundraise, GoalRevenue, GoalProduct},
		},
		StageSeriesA: {
			MinRaiseSize: 3_000_000, MaxRaiseSize: 15_000_000,
			MinBurn: 80_000, MaxBurn: 500_000,
			MinEmployees: 10, MaxEmployees: 60,
			MinRunwayMonths: 12,
			MinRevenue: 100_000, MaxRevenue: 2_000_000,
			OperationalBounds: ops(MetricChurn, 0.0, 0.08, MetricNPS, 10.0, 90.0),
			ExpectedGoalTypes: []GoalType{GoalRevenue, GoalCustomerGrowth, GoalHiring},
		},
		StageSeriesB: {
			MinRaiseSize: 10_000_000, MaxRaiseSize: 40_000_000,
			MinBurn: 300_000, MaxBurn: 1_500_000,
			MinEmployees: 40, MaxEmployees: 150,
			MinRunwayMonths: 15,
			MinRevenue: 1_000_000, MaxRevenue: 10_000_000,
			OperationalBounds: ops(MetricChurn, 0.0, 0.06, MetricNPS, 20.0, 90.0),
			ExpectedGoalTypes: []GoalType{GoalRevenue, GoalRetention, GoalEfficiency},
		},
		StageSeriesC: {
			MinRaiseSize: 30_000_000, MaxRaiseSize: 100_000_000,
			MinBurn: 1_000_000, MaxBurn: 5_000_000,
			MinEmployees: 100, MaxEmployees: 400,
			MinRunwayMonths: 18,
			MinRevenue: 10_000_000, MaxRevenue: 50_000_000,
			OperationalBounds: ops(MetricChurn, 0.0, 0.05, MetricNPS, 30.0, 95.0),
			ExpectedGoalTypes: []GoalType{GoalEfficiency, GoalRetention, GoalOperational},
		},
		StageSeriesD: {
			MinRaiseSize: 50_000_000, MaxRaiseSize: 250_000_000,
			MinBurn: 2_000_000, MaxBurn: 15_000_000,
			MinEmployees: 250, MaxEmployees: 1000,
			MinRunwayMonths: 18,
			MinRevenue: 30_000_000, MaxRevenue: 200_000_000,
			OperationalBounds: ops(MetricChurn, 0.0, 0.04, MetricNPS, 30.0, 95.0),
			ExpectedGoalTypes: []GoalType{GoalOperational, GoalEfficiency},
		},
	}
}

// StagePenalty returns the probability-of-success adjustment a company's
// stage contributes to decide/impact.go's ProbabilityOfSuccess dimension
// (spec §4.4.1: "Pre-seed -0.08 ... Series C +0.05").
func StagePenalty(s Stage) float64 {
	switch s {
	case StagePreSeed:
		return -0.08
	case StageSeed:
		return -0.05
	case StageSeriesA:
		return -0.02
	case StageSeriesB:
		return 0.0
	case StageSeriesC:
		return 0.05
	case StageSeriesD:
		return 0.05
	default:
		return 0.0
	}
}

// TimeToImpactStageScale returns the time-to-impact stage scaling factor
// (spec §4.4.1: "Pre-seed 0.7 ... Series C 1.2").
func TimeToImpactStageScale(s Stage) float64 {
	switch s {
	case StagePreSeed:
		return 0.7
	case StageSeed:
		return 0.8
	case StageSeriesA:
		return 0.9
	case StageSeriesB:
		return 1.0
	case StageSeriesC:
		return 1.2
	case StageSeriesD:
		return 1.2
	default:
		return 1.0
	}
}
