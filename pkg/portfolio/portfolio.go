// Package portfolio is the consumer-facing facade over internal/engine:
// it re-exports Compute and the export firewall, and adds the thin
// event-store plumbing a caller needs to record outcomes between runs.
// Everything it wraps is already documented in internal/engine; this
// package exists only to give external callers one stable import path.
package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/vc-platform/decision-engine/internal/engine"
	"github.com/vc-platform/decision-engine/internal/engine/raw"
	"github.com/vc-platform/decision-engine/internal/engine/store"
	"github.com/vc-platform/decision-engine/internal/eventstore"
)

// Engine bundles a policy and an event store so callers don't have to
// thread both through every call. Snapshots is nil unless the caller
// built the Engine with NewWithPersistence; PersistExport refuses to run
// without one rather than silently no-op-ing.
type Engine struct {
	Policy    raw.Policy
	Events    eventstore.EventStore
	Snapshots *store.RawSnapshotRepository
}

// New constructs an Engine with the default policy and an in-memory event
// store, with no durable snapshot repository attached. Callers that need
// ExportRaw output actually persisted should use NewWithPersistence
// instead.
func New() *Engine {
	return &Engine{
		Policy: raw.DefaultPolicy(),
		Events: eventstore.NewInMemory(),
	}
}

// NewWithPersistence constructs an Engine identical to New but also opens
// the process-wide pgx pool (via DATABASE_URL, see internal/engine/store)
// and attaches a RawSnapshotRepository, so PersistExport has somewhere to
// write.
func NewWithPersistence(ctx context.Context) (*Engine, error) {
	pool, err := store.Pool(ctx)
	if err != nil {
		return nil, fmt.Errorf("portfolio: opening snapshot store: %w", err)
	}
	return &Engine{
		Policy:    raw.DefaultPolicy(),
		Events:    eventstore.NewInMemory(),
		Snapshots: store.NewRawSnapshotRepository(pool),
	}, nil
}

// Compute runs the full decision pipeline for the given graph as of now.
func (e *Engine) Compute(ctx context.Context, g raw.Graph, now time.Time) (engine.Result, error) {
	events, err := e.Events.GetEvents(ctx, "")
	if err != nil {
		return engine.Result{}, err
	}
	return engine.Compute(g, now, events, e.Policy)
}

// terminalEventTypes are the event types that retire an action from
// today's list for good (spec §6: "terminal: observed or skipped — but
// never executed alone, since executed is an intermediate state").
// raw.ActionEventType has no literal "observed" constant; the closest
// fit is EventOutcomeRecorded (an outcome was observed and logged
// against the action), so that's what's treated as the "observed" half
// of the pair here.
var terminalEventTypes = map[raw.ActionEventType]bool{
	raw.EventOutcomeRecorded: true,
	raw.EventSkipped:         true,
}

// TodayActions is getTodayActions's full response shape (spec §6):
// the ranked list with terminally-resolved actions excluded, a count of
// actions per entity-type source, how many were excluded, and the
// request's `now`.
type TodayActions struct {
	Actions        []ActionView
	BySourceCounts map[string]int
	TotalExcluded  int
	Timestamp      time.Time
}

// GetTodayActions runs a fresh Compute and filters out any action whose
// id has a terminal event recorded against it (spec §6's consumer-API
// contract), then summarizes what's left.
func (e *Engine) GetTodayActions(ctx context.Context, g raw.Graph, now time.Time) (TodayActions, error) {
	result, err := e.Compute(ctx, g, now)
	if err != nil {
		return TodayActions{}, err
	}

	events, err := e.Events.GetEvents(ctx, "")
	if err != nil {
		return TodayActions{}, err
	}
	excluded := make(map[string]bool)
	for _, ev := range events {
		if terminalEventTypes[ev.Type] {
			excluded[ev.ActionID] = true
		}
	}

	views := make([]ActionView, 0, len(result.Actions))
	bySourceCounts := make(map[string]int)
	var totalExcluded int
	for _, a := range result.Actions {
		if excluded[a.ID] {
			totalExcluded++
			continue
		}
		views = append(views, ActionView{
			ID: a.ID, CompanyID: a.CompanyID, GoalID: a.GoalID,
			ResolutionID: a.ResolutionID, Rank: a.Rank, RankScore: a.RankScore,
			Gate: string(a.Gate),
		})
		bySourceCounts[string(a.EntityType)]++
	}

	return TodayActions{
		Actions:        views,
		BySourceCounts: bySourceCounts,
		TotalExcluded:  totalExcluded,
		Timestamp:      now,
	}, nil
}

// ActionView is the minimal external-facing projection of a decide.Action.
type ActionView struct {
	ID           string
	CompanyID    string
	GoalID       string
	ResolutionID string
	Rank         int
	RankScore    float64
	Gate         string
}

// RecordEvent appends one event to the engine's event store, to be picked
// up by the next Compute call's calibration, friction, and obviousness
// context.
func (e *Engine) RecordEvent(ctx context.Context, event raw.ActionEvent) error {
	return e.Events.AddEvent(ctx, event)
}

// ExportRaw re-exports engine.ExportRaw behind the facade's policy.
func (e *Engine) ExportRaw(g raw.Graph) ([]byte, error) {
	return engine.ExportRaw(g, e.Policy)
}

// ExportComputed re-exports engine.ExportComputed.
func (e *Engine) ExportComputed(r engine.Result) ([]byte, error) {
	return engine.ExportComputed(r)
}

// PersistExport runs g through the export firewall and saves the result
// under key via the attached RawSnapshotRepository. Requires an Engine
// built with NewWithPersistence.
func (e *Engine) PersistExport(ctx context.Context, key string, g raw.Graph, asOf time.Time) error {
	if e.Snapshots == nil {
		return fmt.Errorf("portfolio: no snapshot repository attached; build the Engine with NewWithPersistence")
	}
	return e.Snapshots.SaveSnapshot(ctx, key, g, e.Policy, asOf)
}
