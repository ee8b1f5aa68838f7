package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/vc-platform/decision-engine/internal/engine/decide"
	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

func runwayCliffCompany(id string, raising bool) raw.Company {
	return raw.Company{
		ID: id, Name: "Cliff Co", Stage: raw.StageSeed, Sector: "fintech",
		Cash: 20_000, Burn: 40_000, Employees: 5, IsPortfolio: true, Raising: raising,
		AsOf: time.Date(2026, 7, 29, 0, 0, 0, 0, time.UTC),
	}
}

func baseGraph(now time.Time) raw.Graph {
	return raw.Graph{
		Companies: []raw.Company{runwayCliffCompany("co-1", false)},
	}
}

// TestRunwayCliffNoFundraise_TriggersCAT1 is spec §8 scenario 1: a company
// under 3 months of runway with no active fundraise goal must surface a
// CAT1-gated RUNWAY_CRITICAL action.
func TestRunwayCliffNoFundraise_TriggersCAT1(t *testing.T) {
	now := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	g := baseGraph(now)

	result, err := Compute(g, now, nil, raw.DefaultPolicy())
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	var found bool
	for _, a := range result.Actions {
		if a.CompanyID == "co-1" && a.Gate == decide.GateCAT1 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a CAT1-gated action for a runway cliff with no active fundraise")
	}
}

// TestRunwayCliffActiveFundraise_SuppressesCAT1 is spec §8 scenario 2: the
// same cliff with an active fundraise goal must not produce CAT1.
func TestRunwayCliffActiveFundraise_SuppressesCAT1(t *testing.T) {
	now := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	company := runwayCliffCompany("co-1", true)
	goal := raw.Goal{
		ID: "g-1", CompanyID: "co-1", Type: raw.GoalFundraise,
		Target: 1_000_000, Current: 0, DueDate: now.Add(45 * 24 * time.Hour), Status: raw.GoalActive,
	}
	g := raw.Graph{Companies: []raw.Company{company}, Goals: []raw.Goal{goal}}

	result, err := Compute(g, now, nil, raw.DefaultPolicy())
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	for _, a := range result.Actions {
		if a.CompanyID == "co-1" && a.Gate == decide.GateCAT1 {
			t.Fatalf("expected no CAT1 gate once an active fundraise goal exists, got action %s", a.ID)
		}
	}
}

// TestDismissalSuppression_StrongReasonRanksBelowUndismissed is spec §8
// scenario 3: a "not_relevant" dismissal recorded one day ago should
// meaningfully outweigh the same action having no dismissal history at all.
func TestDismissalSuppression_StrongReasonRanksBelowUndismissed(t *testing.T) {
	now := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	companyDismissed := runwayCliffCompany("co-dismissed", false)
	companyClean := runwayCliffCompany("co-clean", false)

	g := raw.Graph{
		Companies: []raw.Company{companyDismissed, companyClean},
		Dismissals: []raw.DismissalEvent{
			{CompanyID: "co-dismissed", Reason: raw.ReasonNotRelevant, Timestamp: now.Add(-24 * time.Hour)},
		},
	}

	result, err := Compute(g, now, nil, raw.DefaultPolicy())
	if err != nil {
		t.Fatalf("compute failed: %v", err)
	}

	var dismissedScore, cleanScore float64
	var sawDismissed, sawClean bool
	for _, a := range result.Actions {
		if a.CompanyID == "co-dismissed" && !sawDismissed {
			dismissedScore = a.RankScore
			sawDismissed = true
		}
		if a.CompanyID == "co-clean" && !sawClean {
			cleanScore = a.RankScore
			sawClean = true
		}
	}
	if !sawDismissed || !sawClean {
		t.Fatal("expected both companies to surface at least one action")
	}
	if dismissedScore >= cleanScore {
		t.Fatalf("expected the dismissed company's top action to rank below the clean one: dismissed=%f clean=%f",
			dismissedScore, cleanScore)
	}
}

// TestCompute_Deterministic is P1: identical (graph, now, events, policy)
// always yields a byte-identical Result.
func TestCompute_Deterministic(t *testing.T) {
	now := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	g := baseGraph(now)
	policy := raw.DefaultPolicy()

	first, err := Compute(g, now, nil, policy)
	if err != nil {
		t.Fatalf("first compute failed: %v", err)
	}
	second, err := Compute(g, now, nil, policy)
	if err != nil {
		t.Fatalf("second compute failed: %v", err)
	}

	if len(first.Actions) != len(second.Actions) {
		t.Fatalf("expected identical action counts across runs: first=%d second=%d", len(first.Actions), len(second.Actions))
	}
	for i := range first.Actions {
		if first.Actions[i].ID != second.Actions[i].ID || first.Actions[i].RankScore != second.Actions[i].RankScore {
			t.Fatalf("expected identical action at position %d across runs", i)
		}
	}
}

// TestRankActions_TotalOrderWithIDTiebreak is P3: rankScore totally orders
// actions, ties broken by ID ascending, independent of input order.
func TestRankActions_TotalOrderWithIDTiebreak(t *testing.T) {
	forward := []decide.Action{
		{ID: "act-1", RankScore: 5},
		{ID: "act-2", RankScore: 5},
		{ID: "act-3", RankScore: 9},
	}
	reversed := []decide.Action{
		{ID: "act-3", RankScore: 9},
		{ID: "act-2", RankScore: 5},
		{ID: "act-1", RankScore: 5},
	}

	rankedForward := decide.RankActions(forward)
	rankedReversed := decide.RankActions(reversed)

	idsForward := make([]string, len(rankedForward))
	for i, a := range rankedForward {
		idsForward[i] = a.ID
	}
	idsReversed := make([]string, len(rankedReversed))
	for i, a := range rankedReversed {
		idsReversed[i] = a.ID
	}
	if !reflect.DeepEqual(idsForward, idsReversed) {
		t.Fatalf("expected input order to not affect the final ranking: forward=%v reversed=%v", idsForward, idsReversed)
	}
}

// TestValidateGraph_RejectsForbiddenDerivedFields is the export-firewall
// half of the validate step: a raw graph carrying a forbidden derived
// field must fail Compute before any derive/predict/decide work runs.
//
// raw.Graph's struct tags never emit any of ForbiddenFields()'s default
// entries (runway/health/impact/... simply aren't JSON keys anywhere in
// raw/types.go, by design — see spec §4.1), so this test can't trip the
// firewall by appending a default-list name to the policy: the scan would
// find nothing and the test would pass for the wrong reason. Instead it
// bans "key", a JSON field every raw.MetricFact genuinely carries, and
// confirms Compute refuses to run once the policy flags a key that is
// actually present.
func TestValidateGraph_RejectsForbiddenDerivedFields(t *testing.T) {
	now := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	policy := raw.DefaultPolicy()
	policy.ForbiddenFields = append(policy.ForbiddenFields, "key")

	g := baseGraph(now)
	g.MetricFacts = []raw.MetricFact{
		{ID: "mf-1", CompanyID: "co-1", Key: raw.MetricCash, Value: 20_000, AsOf: now},
	}

	_, err := Compute(g, now, nil, policy)
	if err == nil {
		t.Fatal("expected an error when the raw graph is checked against a forbidden-field policy it violates")
	}
}

// TestNoActivePortfolioCompanies_YieldsEmptyActionsNotError checks the
// degenerate empty-portfolio case runs cleanly rather than erroring.
func TestNoActivePortfolioCompanies_YieldsEmptyActionsNotError(t *testing.T) {
	now := time.Date(2026, 7, 30, 0, 0, 0, 0, time.UTC)
	g := raw.Graph{Companies: []raw.Company{{ID: "co-1", IsPortfolio: false}}}

	result, err := Compute(g, now, nil, raw.DefaultPolicy())
	if err != nil {
		t.Fatalf("compute failed on an empty portfolio: %v", err)
	}
	if len(result.Actions) != 0 {
		t.Fatalf("expected no actions with no portfolio companies, got %d", len(result.Actions))
	}
}
