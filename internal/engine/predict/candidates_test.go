package predict

import "testing"

func TestBuildCandidates_IssueOnlyResolutionKeepsSingleSource(t *testing.T) {
	issues := []Issue{{ID: "iss-1", GoalID: "g-1", Type: IssueRunwayCritical}}
	goals := []CandidateGoal{{ID: "g-1", Type: "fundraise"}}

	cands := BuildCandidates("co-1", issues, nil, goals, nil)

	var found bool
	for _, c := range cands {
		if c.ResolutionID == "resolution.runway.emergency_fundraise" {
			found = true
			if len(c.Sources) != 1 {
				t.Fatalf("expected exactly one source for the issue-only resolution, got %d", len(c.Sources))
			}
		}
	}
	if !found {
		t.Fatal("expected the issue's resolution to appear in candidates")
	}
}

func TestBuildCandidates_IntroductionsAlwaysOwnCandidate(t *testing.T) {
	intros := []Introduction{{ID: "co-1-intro-1", GoalID: "g-1"}}
	cands := BuildCandidates("co-1", nil, nil, nil, intros)
	if len(cands) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(cands))
	}
	if cands[0].ResolutionID != "resolution.introduction.make_intro" {
		t.Fatalf("unexpected resolution id %q", cands[0].ResolutionID)
	}
}

func TestBuildCandidates_NoSourcesProducesNoCandidates(t *testing.T) {
	cands := BuildCandidates("co-1", nil, nil, nil, nil)
	if len(cands) != 0 {
		t.Fatalf("expected no candidates, got %d", len(cands))
	}
}
