package predict

import (
	"math"
	"sort"
)

// rippleScoreByIssueType is the fixed rule-based per-issue-type ripple
// score table (spec §4.3).
var rippleScoreByIssueType = map[IssueType]float64{
	IssueRunwayCritical: 0.95,
	IssueRunwayWarning:  0.6,
	IssueBurnSpike:      0.55,
	IssueNoPipeline:     0.7,
	IssuePipelineGap:    0.45,
	IssueDealStale:      0.4,
	IssueGoalMissed:      0.5,
	IssueGoalBehind:      0.35,
	IssueGoalStalled:    0.3,
	IssueDataStale:      0.15,
	IssueDataMissing:    0.15,
	IssueNoGoals:        0.25,
	IssueRoundStale:     0.45,
}

// downstreamConsequences is the fixed rule-based per-issue-type
// consequence list.
var downstreamConsequences = map[IssueType][]string{
	IssueRunwayCritical: {"forced down-round or shutdown risk", "team attrition", "investor confidence loss"},
	IssueRunwayWarning:  {"reduced negotiating leverage in next round"},
	IssueBurnSpike:      {"accelerated runway depletion"},
	IssueNoPipeline:     {"missed fundraise timeline", "cash crunch"},
	IssuePipelineGap:    {"weaker round terms from reduced competition"},
	IssueDealStale:      {"investor disengagement", "lost allocation"},
	IssueGoalMissed:      {"missed board expectations"},
	IssueGoalBehind:      {"compounding delay on dependent goals"},
	IssueGoalStalled:    {"stakeholder confidence erosion"},
	IssueRoundStale:     {"round collapse", "signaling risk to other investors"},
}

// RippleEffect aggregates per-company downstream risk from the set of
// active issues (spec §3, §4.3): sort by per-issue ripple score
// descending, i-th issue contributes score * 0.5^i, clamp to 1.0, and
// deduplicate explanations contributed by issues with ripple >= 0.3.
type RippleEffect struct {
	CompanyID    string
	Score        float64
	Explanations []string
}

// AggregateRipple computes one company's RippleEffect from its active
// issue list.
func AggregateRipple(companyID string, issues []Issue) RippleEffect {
	type scored struct {
		issue Issue
		score float64
	}
	var scoredIssues []scored
	for _, iss := range issues {
		scoredIssues = append(scoredIssues, scored{issue: iss, score: rippleScoreByIssueType[iss.Type]})
	}
	sort.Slice(scoredIssues, func(i, j int) bool { return scoredIssues[i].score > scoredIssues[j].score })

	var total float64
	seen := make(map[string]bool)
	var explanations []string
	for i, s := range scoredIssues {
		contribution := s.score * math.Pow(0.5, float64(i))
		total += contribution
		if s.score >= 0.3 {
			for _, e := range downstreamConsequences[s.issue.Type] {
				if !seen[e] {
					seen[e] = true
					explanations = append(explanations, e)
				}
			}
		}
	}
	if total > 1.0 {
		total = 1.0
	}

	return RippleEffect{CompanyID: companyID, Score: total, Explanations: explanations}
}
