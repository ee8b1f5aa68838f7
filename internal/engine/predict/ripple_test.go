package predict

import "testing"

func TestAggregateRipple_ClampsAndSortsDescending(t *testing.T) {
	issues := []Issue{
		{ID: "a", Type: IssueRunwayCritical},
		{ID: "b", Type: IssueNoPipeline},
		{ID: "c", Type: IssueDataStale},
	}
	r := AggregateRipple("co-1", issues)
	if r.Score <= 0 || r.Score > 1.0 {
		t.Fatalf("expected score in (0,1], got %f", r.Score)
	}
	if len(r.Explanations) == 0 {
		t.Fatal("expected at least one explanation from the high-ripple issues")
	}
}

func TestAggregateRipple_EmptyIssues(t *testing.T) {
	r := AggregateRipple("co-1", nil)
	if r.Score != 0 {
		t.Fatalf("expected zero score for no issues, got %f", r.Score)
	}
	if len(r.Explanations) != 0 {
		t.Fatalf("expected no explanations, got %v", r.Explanations)
	}
}

func TestAggregateRipple_DedupesExplanations(t *testing.T) {
	issues := []Issue{
		{ID: "a", Type: IssueRunwayCritical},
		{ID: "b", Type: IssueRunwayCritical},
	}
	r := AggregateRipple("co-1", issues)
	seen := make(map[string]bool)
	for _, e := range r.Explanations {
		if seen[e] {
			t.Fatalf("duplicate explanation %q", e)
		}
		seen[e] = true
	}
}
