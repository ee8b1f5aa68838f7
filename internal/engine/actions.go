package engine

import (
	"time"

	"github.com/vc-platform/decision-engine/internal/engine/decide"
	"github.com/vc-platform/decision-engine/internal/engine/derive"
	"github.com/vc-platform/decision-engine/internal/engine/predict"
	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

func buildActions(
	c raw.Company,
	goals []raw.Goal,
	snap derive.Snapshot,
	issues []predict.Issue,
	preIssues []predict.PreIssue,
	ripple predict.RippleEffect,
	intros []predict.Introduction,
	candidates []predict.Candidate,
	allDismissals []raw.DismissalEvent,
	events []raw.ActionEvent,
	policy raw.Policy,
	now time.Time,
) []decide.Action {
	issueByID := make(map[string]predict.Issue, len(issues))
	for _, iss := range issues {
		issueByID[iss.ID] = iss
	}
	preIssueByID := make(map[string]predict.PreIssue, len(preIssues))
	for _, pi := range preIssues {
		preIssueByID[pi.ID] = pi
	}
	introByID := make(map[string]predict.Introduction, len(intros))
	for _, in := range intros {
		introByID[in.ID] = in
	}
	goalByID := make(map[string]raw.Goal, len(goals))
	for _, g := range goals {
		goalByID[g.ID] = g
	}

	introActionIDsByGoal := make(map[string][]string)
	for _, in := range intros {
		if in.GoalID != "" {
			introActionIDsByGoal[in.GoalID] = append(introActionIDsByGoal[in.GoalID], in.ID)
		}
	}

	hasActiveFundraise := false
	for _, g := range goals {
		if g.Type == raw.GoalFundraise && g.Status == raw.GoalActive {
			hasActiveFundraise = true
			break
		}
	}

	gateCond := decide.GateConditions{
		RunwayMonths:           9999,
		HasActiveFundraiseGoal: hasActiveFundraise,
		LegalDeadlineDays:      -1,
		DuringFundraise:        c.Raising,
	}
	if len(snap.Runway.MissingInputs) == 0 {
		gateCond.RunwayMonths = snap.Runway.Value
	}
	if !c.AsOf.IsZero() {
		staleDays := now.Sub(c.AsOf).Hours() / 24
		gateCond.DataBlockerStaleDays = staleDays
		gateCond.DeckAgeDays = staleDays
	}

	outcomesByResolution := outcomeSamplesByResolution(events)

	dismissalsByGoal := make(map[string][]raw.DismissalEvent)
	for _, d := range allDismissals {
		if d.CompanyID != c.ID {
			continue
		}
		dismissalsByGoal[d.GoalID] = append(dismissalsByGoal[d.GoalID], d)
	}
	recentActionGoals := recentUserActionGoals(events, now)

	var actions []decide.Action
	for _, cand := range candidates {
		entityType, primary := classify(cand)

		in := decide.ImpactInput{
			Stage:                   c.Stage,
			EntityType:              entityType,
			ResolutionEffectiveness: decide.ResolutionEffectiveness(cand.ResolutionID),
			GoalWeight:              goalWeight(goalByID[cand.GoalID], c.Stage, policy.Assumptions),
			GoalCount:               goalCountFromSources(cand.Sources),
			DamageCount:             goalCountFromSources(cand.Sources),
			RippleScore:             ripple.Score,
		}

		tmpl := templateFor(cand.ResolutionID)
		in.EffortDays = tmpl.EffortDays
		in.StepCount = len(tmpl.Steps)

		switch primary.Type {
		case predict.SourceIssue:
			if iss, ok := issueByID[primary.EntityID]; ok {
				in.IssueSeverity = int(iss.Severity)
				in.IssueType = iss.Type
			}
		case predict.SourcePreIssue:
			if pi, ok := preIssueByID[primary.EntityID]; ok {
				in.PreIssueLikelihood = pi.Likelihood
				in.PreIssueIrreversibility = pi.Irreversibility
				in.PreIssueCostMultiplier = pi.CostOfDelayMultiplier
				in.PreIssueImminent = pi.IsImminent
				in.PreIssueExpectedCost = pi.ExpectedFutureCost
				in.PreIssueTimeToBreach = pi.TimeToBreachDays
				in.PreIssueType = pi.Type
			}
		case predict.SourceGoal:
			if g, ok := goalByID[primary.EntityID]; ok {
				if tr, ok := snap.Trajectories[g.ID]; ok {
					in.GoalProbabilityOfHit = tr.Confidence
				}
			}
		case predict.SourceIntroduction:
			if intro, ok := introByID[primary.EntityID]; ok {
				in.IntroTiming = intro.Timing
				in.OptionalityGain = intro.OptionalityGain
			}
		}

		impact := decide.ComputeImpact(in, policy.Assumptions)

		isOpportunity := entityType == decide.EntityIntroduction || entityType == decide.EntityOpportunity

		unblocks := introActionIDsByGoal[cand.GoalID]
		gate := decide.EvaluateGate(isOpportunity, gateCond, unblocks)

		trustRisk := 0.0
		timing := predict.IntroTiming("")
		if intro, ok := introByID[firstIntroEntityID(cand.Sources)]; ok {
			trustRisk = intro.TrustRisk.Score
			timing = intro.Timing
		}

		deadlineDays := 0.0
		if g, ok := goalByID[cand.GoalID]; ok && !g.DueDate.IsZero() {
			d := g.DueDate.Sub(now).Hours() / 24
			if d > 0 {
				deadlineDays = d
			}
		}

		obv := decide.ComputeObviousness(decide.ObviousnessInputs{
			Dismissals:                 dismissalsByGoal[cand.GoalID],
			RecentUserActionSameEntity: recentActionGoals[c.ID+"|"+cand.GoalID],
		}, now)

		friction := decide.ComputeFriction(outcomesByResolution[cand.ResolutionID])

		rankScore, components := decide.ComputeRankScore(impact, decide.ScoreInputs{
			TrustRiskScore:     trustRisk,
			Friction:           friction,
			DaysUntilDeadline:  deadlineDays,
			ObviousnessPenalty: obv,
		}, policy.Weights)

		actions = append(actions, decide.Action{
			ID:                   cand.ID,
			CompanyID:            c.ID,
			GoalID:               cand.GoalID,
			EntityType:           entityType,
			IsOpportunitySourced: isOpportunity,
			ResolutionID:         cand.ResolutionID,
			Sources:              cand.Sources,
			Steps:                tmpl.Steps,
			Impact:               impact,
			Unblocks:             unblocks,
			TimingState:          timing,
			Gate:                 gate,
			RankScore:            rankScore,
			RankComponents:       components,
		})
	}

	return actions
}

// classify picks the primary source behind a candidate using the fixed
// precedence ISSUE > PREISSUE > GOAL > INTRODUCTION, determining which
// ImpactInput fields populate (spec §4.3, §4.4.1).
func classify(cand predict.Candidate) (decide.EntityType, predict.CandidateSource) {
	precedence := map[predict.SourceType]int{
		predict.SourceIssue: 0, predict.SourcePreIssue: 1, predict.SourceGoal: 2,
		predict.SourceIntroduction: 3, predict.SourceOpportunity: 4,
	}
	best := cand.Sources[0]
	for _, s := range cand.Sources[1:] {
		if precedence[s.Type] < precedence[best.Type] {
			best = s
		}
	}
	switch best.Type {
	case predict.SourceIssue:
		return decide.EntityIssue, best
	case predict.SourcePreIssue:
		return decide.EntityPreIssue, best
	case predict.SourceGoal:
		return decide.EntityGoal, best
	case predict.SourceIntroduction:
		return decide.EntityIntroduction, best
	default:
		return decide.EntityOpportunity, best
	}
}

func firstIntroEntityID(sources []predict.CandidateSource) string {
	for _, s := range sources {
		if s.Type == predict.SourceIntroduction {
			return s.EntityID
		}
	}
	return ""
}

func goalCountFromSources(sources []predict.CandidateSource) int {
	seen := make(map[string]bool)
	for _, s := range sources {
		seen[s.EntityID] = true
	}
	if len(seen) == 0 {
		return 0
	}
	return len(seen)
}

func goalWeight(g raw.Goal, stage raw.Stage, a raw.Assumptions) float64 {
	if g.ID == "" {
		return 1.0
	}
	base := a.GoalWeightBase[g.Type]
	if base == 0 {
		base = 0.6
	}
	modifier := a.GoalWeightStageModifier[stage]
	if modifier == 0 {
		modifier = 1.0
	}
	weight := base * modifier
	if g.Weight != nil {
		weight *= *g.Weight
	}
	return weight
}

func outcomeSamplesByResolution(events []raw.ActionEvent) map[string][]decide.OutcomeSample {
	out := make(map[string][]decide.OutcomeSample)
	for _, e := range events {
		if e.Type != raw.EventOutcomeRecorded {
			continue
		}
		resolutionID, _ := e.Payload["resolutionId"].(string)
		if resolutionID == "" {
			continue
		}
		outcomeStr, _ := e.Payload["outcome"].(string)
		delay, _ := e.Payload["delayDays"].(float64)
		out[resolutionID] = append(out[resolutionID], decide.OutcomeSample{
			Outcome:   raw.Outcome(outcomeStr),
			DelayDays: delay,
		})
	}
	return out
}

// recentUserActionGoals marks (companyId, goalId) pairs with a user action
// event (started or completed) in the last 14 days, keyed by
// "companyId|goalId" per the convention that those event payloads carry
// companyId/goalId (a whitelisted, non-derived pair — see
// ActionEvent.Payload's forbidden-field exclusion list, spec §7).
func recentUserActionGoals(events []raw.ActionEvent, now time.Time) map[string]bool {
	const window = 14 * 24 * time.Hour
	out := make(map[string]bool)
	for _, e := range events {
		if e.Type != raw.EventStarted && e.Type != raw.EventCompleted {
			continue
		}
		if now.Sub(e.Timestamp) > window || now.Before(e.Timestamp) {
			continue
		}
		companyID, _ := e.Payload["companyId"].(string)
		goalID, _ := e.Payload["goalId"].(string)
		if companyID == "" {
			continue
		}
		out[companyID+"|"+goalID] = true
	}
	return out
}
