// Package errs defines the typed error taxonomy surfaced by the decision
// engine's validate/derive/predict/decide stages (spec §7).
package errs

import "fmt"

// Kind is the fixed error-taxonomy enumeration (spec §7).
type Kind string

const (
	KindInvariantViolation     Kind = "INVARIANT_VIOLATION"
	KindMissingInput           Kind = "MISSING_INPUT"
	KindStaleInput             Kind = "STALE_INPUT"
	KindReferentialGap         Kind = "REFERENTIAL_GAP"
	KindCalibrationInsufficiency Kind = "CALIBRATION_INSUFFICIENCY"
	KindRankingViolation       Kind = "RANKING_VIOLATION"
)

// EngineError is the concrete error type every stage returns. Callers
// type-switch on Kind, not on the formatted message.
type EngineError struct {
	Kind    Kind
	Stage   string
	Detail  string
	Wrapped error
}

func (e *EngineError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s[%s]: %s: %v", e.Stage, e.Kind, e.Detail, e.Wrapped)
	}
	return fmt.Sprintf("%s[%s]: %s", e.Stage, e.Kind, e.Detail)
}

func (e *EngineError) Unwrap() error { return e.Wrapped }

func New(stage string, kind Kind, detail string) *EngineError {
	return &EngineError{Stage: stage, Kind: kind, Detail: detail}
}

func Wrap(stage string, kind Kind, detail string, err error) *EngineError {
	return &EngineError{Stage: stage, Kind: kind, Detail: detail, Wrapped: err}
}

// InvariantViolation reports a broken ranking/determinism invariant (P1-P3)
// detected at runtime — these should never fire in correct code and are
// the engine's last line of defense before bad output reaches a caller.
func InvariantViolation(stage, detail string) *EngineError {
	return New(stage, KindInvariantViolation, detail)
}

// MissingInput reports a required raw field that was absent, distinct from
// StaleInput (present but too old to trust).
func MissingInput(stage, detail string) *EngineError {
	return New(stage, KindMissingInput, detail)
}

func StaleInput(stage, detail string) *EngineError {
	return New(stage, KindStaleInput, detail)
}

// ReferentialGap reports a dangling ID reference (a goal pointing at a
// company that isn't in the graph, etc.).
func ReferentialGap(stage, detail string) *EngineError {
	return New(stage, KindReferentialGap, detail)
}

// CalibrationInsufficiency is informational, not fatal: predict/calibration.go
// falls back to the baseline rate and continues; this type exists so
// callers can distinguish "used a prior" from "used the fallback" in logs.
func CalibrationInsufficiency(stage, detail string) *EngineError {
	return New(stage, KindCalibrationInsufficiency, detail)
}

func RankingViolation(stage, detail string) *EngineError {
	return New(stage, KindRankingViolation, detail)
}
