package predict

// SourceType tags which predict-layer detector produced a Candidate.
type SourceType string

const (
	SourceIssue        SourceType = "ISSUE"
	SourcePreIssue     SourceType = "PREISSUE"
	SourceGoal         SourceType = "GOAL"
	SourceIntroduction SourceType = "INTRODUCTION"
	SourceOpportunity  SourceType = "OPPORTUNITY"
)

// CandidateGoal is the minimal goal projection BuildCandidates needs, kept
// separate from raw.Goal so this package's goal-sourced candidate logic
// doesn't need the full raw schema.
type CandidateGoal struct {
	ID   string
	Type string
}

// CandidateSource is one contributing detection behind a Candidate. A
// single Candidate can be backed by more than one source (e.g. an issue
// and a goal both point at the same resolution).
type CandidateSource struct {
	Type     SourceType
	EntityID string // issue/preissue/goal/introduction ID
}

// Candidate is a not-yet-ranked action candidate: a resolution or
// introduction attached to its entity references, prior to the decide
// layer computing its seven-dimension Impact (spec §3, §4.3/§4.4).
type Candidate struct {
	ID           string
	CompanyID    string
	GoalID       string // empty when not goal-scoped
	ResolutionID string
	Sources      []CandidateSource
	Steps        []string
}

// goalResolutionMap is the fixed goal-type -> resolution-key catalogue
// (spec §4.3): every active goal, independent of whether it has generated
// an issue yet, contributes up to three structural candidates so the
// engine always has forward-looking actions to rank, not just reactive
// ones.
var goalResolutionMap = map[string][]string{
	"revenue":            {"resolution.goal.growth_push", "resolution.goal.pipeline_review", "resolution.data.collect_metrics"},
	"fundraise":          {"resolution.pipeline.build_pipeline", "resolution.pipeline.expand_pipeline", "resolution.relationship.reconnect"},
	"product":            {"resolution.goal.accelerate", "resolution.goal.unblock", "resolution.data.collect_metrics"},
	"hiring":             {"resolution.relationship.reconnect", "resolution.goal.accelerate", "resolution.goal.unblock"},
	"partnership":        {"resolution.relationship.cultivate_champion", "resolution.relationship.reconnect", "resolution.goal.accelerate"},
	"operational":        {"resolution.goal.unblock", "resolution.goal.accelerate", "resolution.data.collect_metrics"},
	"retention":          {"resolution.goal.accelerate", "resolution.goal.unblock", "resolution.data.collect_metrics"},
	"efficiency":         {"resolution.burn.review_spend", "resolution.goal.accelerate", "resolution.data.collect_metrics"},
	"customer_growth":    {"resolution.goal.growth_push", "resolution.pipeline.build_pipeline", "resolution.goal.accelerate"},
	"deal_close":         {"resolution.deal.confirm_commitment", "resolution.deal.re_engage", "resolution.goal.accelerate"},
	"round_completion":   {"resolution.round.revive_round", "resolution.round.find_lead", "resolution.pipeline.expand_pipeline"},
	"investor_activation": {"resolution.relationship.reconnect", "resolution.relationship.cultivate_champion", "resolution.goal.accelerate"},
	"champion_cultivation": {"resolution.relationship.cultivate_champion", "resolution.relationship.reconnect", "resolution.goal.unblock"},
	"relationship_build": {"resolution.relationship.reconnect", "resolution.relationship.cultivate_champion", "resolution.goal.unblock"},
	"intro_target":       {"resolution.pipeline.build_pipeline", "resolution.relationship.reconnect", "resolution.goal.accelerate"},
}

// BuildCandidates merges issue-, pre-issue-, goal-, and introduction-
// sourced candidates for one company, deduplicating on (goalID,
// resolutionID) and accumulating every contributing source onto the
// merged candidate (spec §4.3's "three-per-goal" structural design note,
// recorded in the Open Question decisions).
func BuildCandidates(companyID string, issues []Issue, preIssues []PreIssue, goals []CandidateGoal, intros []Introduction) []Candidate {
	byKey := make(map[string]*Candidate)
	var order []string
	seq := 0

	add := func(goalID, resolutionID string, src CandidateSource) {
		key := goalID + "|" + resolutionID
		if c, ok := byKey[key]; ok {
			c.Sources = append(c.Sources, src)
			return
		}
		seq++
		c := &Candidate{
			ID:           companyID + "-cand-" + resolutionKeySuffix(seq),
			CompanyID:    companyID,
			GoalID:       goalID,
			ResolutionID: resolutionID,
			Sources:      []CandidateSource{src},
		}
		byKey[key] = c
		order = append(order, key)
	}

	for _, iss := range issues {
		if res, ok := IssueResolutionMap[iss.Type]; ok {
			add(iss.GoalID, res, CandidateSource{Type: SourceIssue, EntityID: iss.ID})
		}
	}
	for _, pi := range preIssues {
		for _, res := range PreventativeResolutionMap[pi.Type] {
			add(pi.GoalID, res, CandidateSource{Type: SourcePreIssue, EntityID: pi.ID})
		}
	}
	for _, g := range goals {
		for _, res := range goalResolutionMap[g.Type] {
			add(g.ID, res, CandidateSource{Type: SourceGoal, EntityID: g.ID})
		}
	}

	out := make([]Candidate, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}

	for _, intro := range intros {
		out = append(out, Candidate{
			ID:           intro.ID,
			CompanyID:    companyID,
			GoalID:       intro.GoalID,
			ResolutionID: "resolution.introduction.make_intro",
			Sources:      []CandidateSource{{Type: SourceIntroduction, EntityID: intro.ID}},
		})
	}

	return out
}

func resolutionKeySuffix(n int) string {
	const digits = "0123456789"
	if n == 0 {
		return "0"
	}
	var buf []byte
	for n > 0 {
		buf = append([]byte{digits[n%10]}, buf...)
		n /= 10
	}
	return string(buf)
}
