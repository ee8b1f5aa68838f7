// Package narrate renders prose rationale for actions of an
// already-computed engine.Result. It is strictly ambient: it does not
// import internal/engine (only internal/engine/raw), internal/engine never
// imports it, and nothing it produces ever feeds back into rankScore
// (SPEC_FULL.md §10).
package narrate

import "context"

// Provider renders narration text for one ranked action. Implementations
// may be deterministic (TemplateProvider) or LLM-backed (GeminiProvider);
// callers select one via Manager.
type Provider interface {
	Name() string
	Narrate(ctx context.Context, req NarrationRequest) (string, error)
}

// NarrationRequest carries everything a Provider needs to render one
// action's rationale without importing internal/decide or internal/predict
// types directly; the caller fills it from an Action, so this package
// does not depend on engine's Result/Action shape at all.
type NarrationRequest struct {
	CompanyName  string
	GoalLabel    string
	ResolutionID string
	Steps        []string
	RankScore    float64
	Rank         int
	EntityType   string
	Evidence     []string
}
