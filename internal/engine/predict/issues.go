// Package predict detects gaps and opportunities from derived state: confirmed
// issues, forecast pre-issues, downstream ripple, introduction trust risk,
// calibrated introduction priors, and the goal-driven action candidates
// those feed the decide layer. Depends on raw and derive only.
package predict

import (
	"fmt"
	"time"

	"github.com/vc-platform/decision-engine/internal/engine/derive"
	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// IssueType is the fixed issue catalogue (spec §4.3).
type IssueType string

const (
	IssueRunwayCritical IssueType = "RUNWAY_CRITICAL"
	IssueRunwayWarning  IssueType = "RUNWAY_WARNING"
	IssueBurnSpike      IssueType = "BURN_SPIKE"
	IssueNoPipeline     IssueType = "NO_PIPELINE"
	IssuePipelineGap    IssueType = "PIPELINE_GAP"
	IssueDealStale      IssueType = "DEAL_STALE"
	IssueGoalMissed     IssueType = "GOAL_MISSED"
	IssueGoalBehind     IssueType = "GOAL_BEHIND"
	IssueGoalStalled    IssueType = "GOAL_STALLED"
	IssueDataStale      IssueType = "DATA_STALE"
	IssueDataMissing    IssueType = "DATA_MISSING"
	IssueNoGoals        IssueType = "NO_GOALS"
	IssueRoundStale     IssueType = "ROUND_STALE"
)

// Issue is a confirmed present gap or problem (spec §3).
type Issue struct {
	ID        string
	CompanyID string
	GoalID    string // empty when not goal-scoped
	DealID    string // empty when not deal-scoped
	Type      IssueType
	Severity  derive.Severity
	Evidence  string
}

// DetectIssues runs the issue catalogue against one company's derived
// state, goals, and deals. It takes no relationships and never emits
// IssueRoundStale.
func DetectIssues(c raw.Company, snap derive.Snapshot, goals []raw.Goal, deals []raw.Deal, now time.Time) []Issue {
	var issues []Issue
	seq := 0
	next := func() string {
		seq++
		return fmt.Sprintf("%s-issue-%d", c.ID, seq)
	}

	if len(snap.Runway.MissingInputs) > 0 {
		issues = append(issues, Issue{
			ID: next(), CompanyID: c.ID, Type: IssueDataMissing, Severity: derive.SeverityMedium,
			Evidence: "runway cannot be computed: " + joinMissing(snap.Runway.MissingInputs),
		})
	} else {
		if snap.Runway.StalenessPenalty >= 0.5 {
			issues = append(issues, Issue{
				ID: next(), CompanyID: c.ID, Type: IssueDataStale, Severity: derive.SeverityMedium,
				Evidence: "cash/burn data is more than 15 days stale",
			})
		}
		if !hasActiveFundraiseGoal(goals) {
			if snap.Runway.Value < 3 {
				issues = append(issues, Issue{
					ID: next(), CompanyID: c.ID, Type: IssueRunwayCritical, Severity: derive.SeverityCritical,
					Evidence: fmt.Sprintf("runway is %.1f months with no active fundraise goal", snap.Runway.Value),
				})
			} else if snap.Runway.Value < 6 {
				issues = append(issues, Issue{
					ID: next(), CompanyID: c.ID, Type: IssueRunwayWarning, Severity: derive.SeverityHigh,
					Evidence: fmt.Sprintf("runway is %.1f months", snap.Runway.Value),
				})
			}
		}
	}

	for _, a := range snap.Anomalies {
		if a.Metric == raw.MetricBurn && a.Direction == derive.DirectionAboveMax && a.Severity >= derive.SeverityMedium {
			issues = append(issues, Issue{
				ID: next(), CompanyID: c.ID, Type: IssueBurnSpike, Severity: a.Severity,
				Evidence: a.Evidence,
			})
		}
	}

	if len(goals) == 0 {
		issues = append(issues, Issue{
			ID: next(), CompanyID: c.ID, Type: IssueNoGoals, Severity: derive.SeverityMedium,
			Evidence: "company has no tracked goals",
		})
	}

	for _, g := range goals {
		if g.Status != raw.GoalActive {
			continue
		}
		tr := snap.Trajectories[g.ID]
		switch {
		case !g.DueDate.IsZero() && now.After(g.DueDate) && g.Current < g.Target:
			issues = append(issues, Issue{
				ID: next(), CompanyID: c.ID, GoalID: g.ID, Type: IssueGoalMissed, Severity: derive.SeverityHigh,
				Evidence: fmt.Sprintf("goal %s passed its due date without hitting target", g.ID),
			})
		case tr.OnTrack == derive.OnTrackNo:
			issues = append(issues, Issue{
				ID: next(), CompanyID: c.ID, GoalID: g.ID, Type: IssueGoalBehind, Severity: derive.SeverityMedium,
				Evidence: fmt.Sprintf("goal %s projected to miss its due date at current velocity", g.ID),
			})
		case tr.DataPoints >= 2 && tr.VelocityPerDay == 0:
			issues = append(issues, Issue{
				ID: next(), CompanyID: c.ID, GoalID: g.ID, Type: IssueGoalStalled, Severity: derive.SeverityMedium,
				Evidence: fmt.Sprintf("goal %s has shown zero movement across observations", g.ID),
			})
		}

		if g.Type == raw.GoalFundraise {
			if !hasAnyActiveDealForGoal(deals) {
				issues = append(issues, Issue{
					ID: next(), CompanyID: c.ID, GoalID: g.ID, Type: IssueNoPipeline, Severity: derive.SeverityHigh,
					Evidence: "fundraise goal is active with zero deals in the pipeline",
				})
			} else if countActiveDeals(deals) < 3 {
				issues = append(issues, Issue{
					ID: next(), CompanyID: c.ID, GoalID: g.ID, Type: IssuePipelineGap, Severity: derive.SeverityMedium,
					Evidence: "fewer than three active deals for an open fundraise goal",
				})
			}
		}
	}

	for _, d := range deals {
		if isTerminalDeal(d.Status) {
			continue
		}
		last := d.LastTouchAt
		if last == nil {
			last = d.OutreachAt
		}
		if last == nil {
			continue
		}
		staleDays := now.Sub(*last).Hours() / 24
		if staleDays > 14 {
			issues = append(issues, Issue{
				ID: next(), CompanyID: c.ID, DealID: d.ID, Type: IssueDealStale, Severity: derive.SeverityMedium,
				Evidence: fmt.Sprintf("deal %s has had no touch in %.0f days", d.ID, staleDays),
			})
		}
	}

	return issues
}

func joinMissing(m []string) string {
	out := ""
	for i, s := range m {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}

func hasActiveFundraiseGoal(goals []raw.Goal) bool {
	for _, g := range goals {
		if g.Type == raw.GoalFundraise && g.Status == raw.GoalActive {
			return true
		}
	}
	return false
}

func hasAnyActiveDealForGoal(deals []raw.Deal) bool {
	return countActiveDeals(deals) > 0
}

func countActiveDeals(deals []raw.Deal) int {
	n := 0
	for _, d := range deals {
		if !isTerminalDeal(d.Status) {
			n++
		}
	}
	return n
}

func isTerminalDeal(s raw.DealStatus) bool {
	return s == raw.DealClosed || s == raw.DealPassed
}

// IssueResolutionMap is the fixed issue-type -> resolution-template map
// (spec §4.3, §9's static-lookup-table design note).
var IssueResolutionMap = map[IssueType]string{
	IssueRunwayCritical: "resolution.runway.emergency_fundraise",
	IssueRunwayWarning:  "resolution.runway.extend_runway",
	IssueBurnSpike:      "resolution.burn.review_spend",
	IssueNoPipeline:     "resolution.pipeline.build_pipeline",
	IssuePipelineGap:    "resolution.pipeline.expand_pipeline",
	IssueDealStale:      "resolution.deal.re_engage",
	IssueGoalMissed:      "resolution.goal.reset_plan",
	IssueGoalBehind:      "resolution.goal.accelerate",
	IssueGoalStalled:    "resolution.goal.unblock",
	IssueDataStale:      "resolution.data.refresh_metrics",
	IssueDataMissing:    "resolution.data.collect_metrics",
	IssueNoGoals:        "resolution.goal.set_goals",
	IssueRoundStale:     "resolution.round.revive_round",
}
