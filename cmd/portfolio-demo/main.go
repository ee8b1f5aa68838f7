// Command portfolio-demo runs the decision engine over a small synthetic
// portfolio and prints the ranked action list. It exists to exercise
// pkg/portfolio end to end, not as a production entry point.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/vc-platform/decision-engine/internal/narrate"
	"github.com/vc-platform/decision-engine/pkg/portfolio"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

func main() {
	_ = narrate.LoadEnv(".env")

	now := time.Date(2026, 7, 30, 9, 0, 0, 0, time.UTC)
	g := demoGraph(now)
	ctx := context.Background()

	eng := portfolio.New()
	if os.Getenv("DATABASE_URL") != "" {
		if persistent, err := portfolio.NewWithPersistence(ctx); err != nil {
			log.Printf("snapshot persistence unavailable: %v", err)
		} else {
			eng = persistent
		}
	}

	result, err := eng.Compute(ctx, g, now)
	if err != nil {
		log.Fatalf("compute failed: %v", err)
	}

	if eng.Snapshots != nil {
		if err := eng.PersistExport(ctx, "portfolio-demo:"+g.Companies[0].ID, g, now); err != nil {
			log.Printf("persist export failed: %v", err)
		}
	}

	manager := narrate.NewManager()

	for _, a := range result.Actions {
		text, err := manager.Narrate(ctx, narrate.NarrationRequest{
			CompanyName:  a.CompanyID,
			GoalLabel:    a.GoalID,
			ResolutionID: a.ResolutionID,
			Steps:        a.Steps,
			RankScore:    a.RankScore,
			Rank:         a.Rank,
			EntityType:   string(a.EntityType),
		})
		if err != nil {
			log.Printf("narration failed for %s: %v", a.ID, err)
			continue
		}
		fmt.Println(text)
		fmt.Println("---")
	}

	for _, w := range result.Warnings {
		log.Printf("warning: %s", w)
	}
}

func demoGraph(now time.Time) raw.Graph {
	company := raw.Company{
		ID: "co-1", Name: "Acme Robotics", Stage: raw.StageSeed, Sector: "robotics",
		Cash: 120_000, Burn: 40_000, Employees: 6, IsPortfolio: true, Raising: true,
		AsOf: now.Add(-2 * 24 * time.Hour),
	}
	goal := raw.Goal{
		ID: "goal-1", CompanyID: company.ID, Type: raw.GoalFundraise,
		Target: 2_000_000, Current: 0, DueDate: now.Add(60 * 24 * time.Hour), Status: raw.GoalActive,
	}
	return raw.Graph{
		Companies: []raw.Company{company},
		Goals:     []raw.Goal{goal},
	}
}
