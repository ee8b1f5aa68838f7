package predict

import (
	"fmt"
	"time"

	"github.com/vc-platform/decision-engine/internal/engine/derive"
	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// PreIssueType is the fixed pre-issue catalogue (spec §4.3).
type PreIssueType string

const (
	PreIssueRunwayBreach      PreIssueType = "RUNWAY_BREACH"
	PreIssueRoundStall        PreIssueType = "ROUND_STALL"
	PreIssueLeadVacancy       PreIssueType = "LEAD_VACANCY"
	PreIssueDealMomentumLoss  PreIssueType = "DEAL_MOMENTUM_LOSS"
	PreIssueChampionDeparture PreIssueType = "CHAMPION_DEPARTURE"
	PreIssueCommitmentAtRisk  PreIssueType = "COMMITMENT_AT_RISK"
	PreIssueConnectionDormant PreIssueType = "CONNECTION_DORMANT"
	PreIssueRelationshipDecay PreIssueType = "RELATIONSHIP_DECAY"
	PreIssueGoalMiss          PreIssueType = "GOAL_MISS"
)

// PreIssue is a forecast future problem (spec §3, §4.3).
type PreIssue struct {
	ID                    string
	CompanyID             string
	GoalID                string
	Type                  PreIssueType
	Likelihood            float64 // 0-1
	Severity              derive.Severity
	TimeToBreachDays       float64
	Irreversibility       float64 // 0-1
	CostOfDelayMultiplier float64
	EscalationDate        time.Time
	IsImminent            bool
	ExpectedFutureCost    float64
	PreventativeResolutions []string
}

// PreventativeResolutionMap is the fixed pre-issue-type -> preventative
// resolution keys table (spec §4.3, §9).
var PreventativeResolutionMap = map[PreIssueType][]string{
	PreIssueRunwayBreach:      {"resolution.runway.extend_runway", "resolution.fundraise.start_early"},
	PreIssueRoundStall:        {"resolution.round.revive_round", "resolution.pipeline.expand_pipeline"},
	PreIssueLeadVacancy:       {"resolution.round.find_lead"},
	PreIssueDealMomentumLoss:  {"resolution.deal.re_engage"},
	PreIssueChampionDeparture: {"resolution.relationship.cultivate_champion"},
	PreIssueCommitmentAtRisk:  {"resolution.deal.confirm_commitment"},
	PreIssueConnectionDormant: {"resolution.relationship.reconnect"},
	PreIssueRelationshipDecay: {"resolution.relationship.reconnect"},
	PreIssueGoalMiss:          {"resolution.goal.accelerate", "resolution.goal.reset_plan"},
}

// preIssueStructuralLeverage is the fixed pre-issue-type -> structural second-order
// leverage bonus table (spec §4.4.1).
var preIssueStructuralLeverage = map[PreIssueType]float64{
	PreIssueRunwayBreach: 55,
}

// StructuralLeverage returns the structural leverage bonus for a pre-issue
// type, or 0 if none is defined.
func (t PreIssueType) StructuralLeverage() float64 {
	return preIssueStructuralLeverage[t]
}

// DetectPreIssues forecasts future problems from derived trends and
// relationship decay.
func DetectPreIssues(c raw.Company, snap derive.Snapshot, goals []raw.Goal, deals []raw.Deal, rounds []raw.Round, rels []raw.Relationship, assumptions raw.Assumptions, now time.Time) []PreIssue {
	var out []PreIssue
	seq := 0
	next := func() string {
		seq++
		return fmt.Sprintf("%s-preissue-%d", c.ID, seq)
	}

	if len(snap.Runway.MissingInputs) == 0 && snap.Runway.Value >= 3 && snap.Runway.Value < 9 {
		daysToBreach := (snap.Runway.Value - 3) * 30
		escalation := now.Add(time.Duration(daysToBreach * 24 * float64(time.Hour)))
		out = append(out, PreIssue{
			ID: next(), CompanyID: c.ID, Type: PreIssueRunwayBreach,
			Likelihood: likelihoodFromMonths(snap.Runway.Value), Severity: derive.SeverityHigh,
			TimeToBreachDays: daysToBreach, Irreversibility: 0.6, CostOfDelayMultiplier: 2.0,
			EscalationDate: escalation, IsImminent: daysToBreach <= 30,
			ExpectedFutureCost:      80,
			PreventativeResolutions: PreventativeResolutionMap[PreIssueRunwayBreach],
		})
	}

	for _, r := range rounds {
		if r.CompanyID != c.ID || r.Status == "closed" {
			continue
		}
		if r.Raised < r.Target*0.5 {
			out = append(out, PreIssue{
				ID: next(), CompanyID: c.ID, Type: PreIssueRoundStall,
				Likelihood: 0.5, Severity: derive.SeverityMedium,
				TimeToBreachDays: 45, Irreversibility: 0.4, CostOfDelayMultiplier: 1.5,
				EscalationDate: now.Add(45 * 24 * time.Hour),
				ExpectedFutureCost: 50,
				PreventativeResolutions: PreventativeResolutionMap[PreIssueRoundStall],
			})
		}
		if r.LeadInvestorID == "" {
			out = append(out, PreIssue{
				ID: next(), CompanyID: c.ID, Type: PreIssueLeadVacancy,
				Likelihood: 0.4, Severity: derive.SeverityMedium,
				TimeToBreachDays: 60, Irreversibility: 0.5, CostOfDelayMultiplier: 1.5,
				EscalationDate: now.Add(60 * 24 * time.Hour),
				ExpectedFutureCost: 45,
				PreventativeResolutions: PreventativeResolutionMap[PreIssueLeadVacancy],
			})
		}
	}

	for _, d := range deals {
		if d.CompanyID != c.ID || isTerminalDeal(d.Status) {
			continue
		}
		last := d.LastTouchAt
		if last == nil {
			last = d.MeetingAt
		}
		if last == nil {
			continue
		}
		days := now.Sub(*last).Hours() / 24
		if days > 7 && days <= 14 {
			out = append(out, PreIssue{
				ID: next(), CompanyID: c.ID, Type: PreIssueDealMomentumLoss,
				Likelihood: 0.45, Severity: derive.SeverityMedium,
				TimeToBreachDays: 14 - days, Irreversibility: 0.3, CostOfDelayMultiplier: 1.3,
				EscalationDate: now.Add(time.Duration((14-days) * 24 * float64(time.Hour))),
				ExpectedFutureCost: 30,
				PreventativeResolutions: PreventativeResolutionMap[PreIssueDealMomentumLoss],
			})
		}
		if d.Status == raw.DealTermsheet && d.CloseProbability < 60 {
			out = append(out, PreIssue{
				ID: next(), CompanyID: c.ID, Type: PreIssueCommitmentAtRisk,
				Likelihood: float64(100-d.CloseProbability) / 100, Severity: derive.SeverityHigh,
				TimeToBreachDays: 10, Irreversibility: 0.7, CostOfDelayMultiplier: 2.0,
				EscalationDate: now.Add(10 * 24 * time.Hour), IsImminent: true,
				ExpectedFutureCost: 60,
				PreventativeResolutions: PreventativeResolutionMap[PreIssueCommitmentAtRisk],
			})
		}
	}

	for _, g := range goals {
		if g.Status != raw.GoalActive || g.DueDate.IsZero() {
			continue
		}
		daysLeft := g.DueDate.Sub(now).Hours() / 24
		tr := snap.Trajectories[g.ID]
		if daysLeft > 0 && daysLeft <= assumptions.TimingWindowLater && tr.OnTrack != derive.OnTrackYes {
			out = append(out, PreIssue{
				ID: next(), CompanyID: c.ID, GoalID: g.ID, Type: PreIssueGoalMiss,
				Likelihood: 0.55, Severity: derive.SeverityMedium,
				TimeToBreachDays: daysLeft, Irreversibility: 0.3, CostOfDelayMultiplier: 1.4,
				EscalationDate: g.DueDate, IsImminent: daysLeft <= assumptions.TimingWindowNow,
				ExpectedFutureCost: 35,
				PreventativeResolutions: PreventativeResolutionMap[PreIssueGoalMiss],
			})
		}

		if g.Type == raw.GoalChampionCultivation || g.Type == raw.GoalRelationshipBuild {
			for _, rel := range rels {
				t := derive.EffectiveLastTouch(rel, nil)
				if t.IsZero() {
					continue
				}
				days := now.Sub(t).Hours() / 24
				if days > assumptions.RelationshipColdThresholdDays {
					preType := PreIssueConnectionDormant
					if g.Type == raw.GoalChampionCultivation {
						preType = PreIssueChampionDeparture
					}
					out = append(out, PreIssue{
						ID: next(), CompanyID: c.ID, GoalID: g.ID, Type: preType,
						Likelihood: 0.4, Severity: derive.SeverityLow,
						TimeToBreachDays: 30, Irreversibility: 0.5, CostOfDelayMultiplier: 1.2,
						EscalationDate: now.Add(30 * 24 * time.Hour),
						ExpectedFutureCost: 20,
						PreventativeResolutions: PreventativeResolutionMap[preType],
					})
				} else if days > assumptions.RelationshipDecayHalfLifeDays {
					out = append(out, PreIssue{
						ID: next(), CompanyID: c.ID, GoalID: g.ID, Type: PreIssueRelationshipDecay,
						Likelihood: 0.3, Severity: derive.SeverityLow,
						TimeToBreachDays: assumptions.RelationshipColdThresholdDays - days,
						Irreversibility: 0.3, CostOfDelayMultiplier: 1.1,
						EscalationDate: now.Add(time.Duration((assumptions.RelationshipColdThresholdDays-days) * 24 * float64(time.Hour))),
						ExpectedFutureCost: 15,
						PreventativeResolutions: PreventativeResolutionMap[PreIssueRelationshipDecay],
					})
				}
			}
		}
	}

	return out
}

func likelihoodFromMonths(months float64) float64 {
	if months <= 3 {
		return 0.95
	}
	if months >= 9 {
		return 0.1
	}
	// linear interpolation between (3, 0.95) and (9, 0.1)
	return 0.95 - (months-3)/6*0.85
}
