package predict

import (
	"testing"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

func TestGenerateIntroductions_OneHopPathFound(t *testing.T) {
	company := raw.Company{ID: "co-1", Stage: raw.StageSeed, Sector: "fintech"}
	founder := raw.Person{ID: "p-founder", OrgID: "co-1", OrgKind: raw.OrgCompany}
	partner := raw.Person{ID: "p-partner", OrgID: "firm-1", OrgKind: raw.OrgFirm, Role: "partner"}
	firm := raw.Firm{ID: "firm-1", ThesisStages: []raw.Stage{raw.StageSeed}}
	rel := raw.Relationship{ID: "r-1", PersonA: founder.ID, PersonB: partner.ID, Strength: 80}
	goal := raw.Goal{ID: "g-1", CompanyID: "co-1", Type: raw.GoalFundraise, Status: raw.GoalActive}

	intros := GenerateIntroductions(company, []raw.Goal{goal}, []raw.Person{founder, partner}, []raw.Firm{firm}, []raw.Relationship{rel}, nil)

	if len(intros) != 1 {
		t.Fatalf("expected 1 introduction, got %d", len(intros))
	}
	if intros[0].HopCount != 1 {
		t.Fatalf("expected a 1-hop path, got %d", intros[0].HopCount)
	}
	if intros[0].Rationale == "" {
		t.Fatal("rationale is compulsory and must not be empty")
	}
}

func TestGenerateIntroductions_NoSourcesYieldsNothing(t *testing.T) {
	company := raw.Company{ID: "co-1", Stage: raw.StageSeed}
	goal := raw.Goal{ID: "g-1", CompanyID: "co-1", Type: raw.GoalFundraise, Status: raw.GoalActive}
	intros := GenerateIntroductions(company, []raw.Goal{goal}, nil, nil, nil, nil)
	if len(intros) != 0 {
		t.Fatalf("expected no introductions with no people in the graph, got %d", len(intros))
	}
}

func TestGenerateIntroductions_NeverTimingWhenTrustRiskExtreme(t *testing.T) {
	company := raw.Company{ID: "co-1", Stage: raw.StageSeed, Sector: "fintech"}
	founder := raw.Person{ID: "p-founder", OrgID: "co-1", OrgKind: raw.OrgCompany}
	mid := raw.Person{ID: "p-mid", OrgID: "external-1", OrgKind: raw.OrgExternal}
	partner := raw.Person{ID: "p-partner", OrgID: "firm-1", OrgKind: raw.OrgFirm}
	firm := raw.Firm{ID: "firm-1", ThesisStages: []raw.Stage{raw.StageSeed}}
	rels := []raw.Relationship{
		{ID: "r-1", PersonA: founder.ID, PersonB: mid.ID, Strength: 5},
		{ID: "r-2", PersonA: mid.ID, PersonB: partner.ID, Strength: 5},
	}
	goal := raw.Goal{ID: "g-1", CompanyID: "co-1", Type: raw.GoalFundraise, Status: raw.GoalActive}

	intros := GenerateIntroductions(company, []raw.Goal{goal}, []raw.Person{founder, mid, partner}, []raw.Firm{firm}, rels, nil)

	for _, in := range intros {
		if in.TrustRisk.Score > 80 && in.Timing != TimingNever {
			t.Fatalf("expected NEVER timing when trust risk > 80, got %s (score %f)", in.Timing, in.TrustRisk.Score)
		}
	}
}
