// Package engine wires raw, derive, predict, and decide into the single
// Compute entry point (spec §4.5), and owns the export firewall (spec §6)
// that is the only path allowed to persist anything the engine produces.
package engine

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vc-platform/decision-engine/internal/engine/decide"
	"github.com/vc-platform/decision-engine/internal/engine/derive"
	"github.com/vc-platform/decision-engine/internal/engine/errs"
	"github.com/vc-platform/decision-engine/internal/engine/predict"
	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// topNForProactivity bounds how many top-ranked actions the post-ranking
// proactivity check inspects (spec §4.4.4).
const topNForProactivity = 10

// CompanyResult bundles one portfolio company's derived and predicted
// state, attached to the global Result for audit (spec §4.5).
type CompanyResult struct {
	CompanyID string
	Snapshot  derive.Snapshot
	Issues    []predict.Issue
	PreIssues []predict.PreIssue
	Ripple    predict.RippleEffect
	Introductions []predict.Introduction
}

// Result is compute's full output bundle (spec §2, §4.5): per-company
// derived blocks, a global flat ranked action list, and run metadata.
type Result struct {
	Companies map[string]CompanyResult
	Actions   []decide.Action
	Warnings  []string
	ComputedAt time.Time
}

// Compute runs validate -> derive -> predict -> decide -> rank -> emit
// over the full raw graph and returns a referentially transparent result:
// identical (g, now, events) always yields a byte-identical Result (P1).
func Compute(g raw.Graph, now time.Time, events []raw.ActionEvent, policy raw.Policy) (Result, error) {
	if err := validateGraph(g, policy); err != nil {
		return Result{}, err
	}

	idx := derive.BuildMetricIndex(g)
	cal := predict.CalibratePriors(g.IntroOutcomes)

	goalsByCompany := make(map[string][]raw.Goal)
	for _, goal := range g.Goals {
		goalsByCompany[goal.CompanyID] = append(goalsByCompany[goal.CompanyID], goal)
	}
	snapshotsByGoal := make(map[string][]raw.GoalSnapshot)
	for _, s := range g.GoalSnapshots {
		snapshotsByGoal[s.GoalID] = append(snapshotsByGoal[s.GoalID], s)
	}
	dealsByCompany := make(map[string][]raw.Deal)
	for _, d := range g.Deals {
		dealsByCompany[d.CompanyID] = append(dealsByCompany[d.CompanyID], d)
	}
	roundsByCompany := make(map[string][]raw.Round)
	for _, r := range g.Rounds {
		roundsByCompany[r.CompanyID] = append(roundsByCompany[r.CompanyID], r)
	}

	var portfolio []raw.Company
	for _, c := range g.Companies {
		if c.IsPortfolio {
			portfolio = append(portfolio, c)
		}
	}

	companyResults := make([]CompanyResult, len(portfolio))
	actionsByCompany := make([][]decide.Action, len(portfolio))

	var eg errgroup.Group
	for i, c := range portfolio {
		i, c := i, c
		eg.Go(func() error {
			goals := goalsByCompany[c.ID]
			params := policy.StageParams[c.Stage]

			snap := derive.DeriveSnapshot(c, goals, snapshotsByGoal, idx, params, now)
			issues := predict.DetectIssues(c, snap, goals, dealsByCompany[c.ID], now)
			preIssues := predict.DetectPreIssues(c, snap, goals, dealsByCompany[c.ID], roundsByCompany[c.ID], g.Relationships, policy.Assumptions, now)
			ripple := predict.AggregateRipple(c.ID, issues)
			intros := predict.GenerateIntroductions(c, goals, g.People, g.Firms, g.Relationships, cal)

			companyResults[i] = CompanyResult{
				CompanyID: c.ID, Snapshot: snap, Issues: issues, PreIssues: preIssues,
				Ripple: ripple, Introductions: intros,
			}

			candGoals := make([]predict.CandidateGoal, 0, len(goals))
			for _, goal := range goals {
				if goal.Status == raw.GoalActive {
					candGoals = append(candGoals, predict.CandidateGoal{ID: goal.ID, Type: string(goal.Type)})
				}
			}
			candidates := predict.BuildCandidates(c.ID, issues, preIssues, candGoals, intros)

			actionsByCompany[i] = buildActions(c, goals, snap, issues, preIssues, ripple, intros, candidates, g.Dismissals, events, policy, now)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, errs.Wrap("compute", errs.KindInvariantViolation, "per-company fan-out failed", err)
	}

	companyMap := make(map[string]CompanyResult, len(companyResults))
	var allActions []decide.Action
	for i := range companyResults {
		companyMap[companyResults[i].CompanyID] = companyResults[i]
		allActions = append(allActions, actionsByCompany[i]...)
	}

	allActions = decide.RankActions(allActions)

	var warnings []string
	topN := allActions
	if len(topN) > topNForProactivity {
		topN = topN[:topNForProactivity]
	}
	if warning, ok := decide.ValidateProactivity(topN, policy.Assumptions); !ok {
		warnings = append(warnings, warning)
	}

	return Result{
		Companies:  companyMap,
		Actions:    allActions,
		Warnings:   warnings,
		ComputedAt: now,
	}, nil
}

func validateGraph(g raw.Graph, policy raw.Policy) error {
	data, err := json.Marshal(g)
	if err != nil {
		return errs.Wrap("validate", errs.KindInvariantViolation, "raw graph did not marshal to JSON", err)
	}
	hits, err := raw.ValidateNoForbiddenFields(data, policy)
	if err != nil {
		return errs.Wrap("validate", errs.KindInvariantViolation, "forbidden-field scan failed", err)
	}
	if len(hits) > 0 {
		return errs.New("validate", errs.KindInvariantViolation, fmt.Sprintf("forbidden derived field(s) present in raw input: %v", hits))
	}
	return nil
}
