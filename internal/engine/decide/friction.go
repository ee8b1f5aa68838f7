package decide

import "github.com/vc-platform/decision-engine/internal/engine/raw"

// minFrictionSamples is the minimum outcome-sample count before a
// resolution type's friction score is trusted over the default (spec
// §4.4.5).
const minFrictionSamples = 3

// defaultFriction is used whenever a resolution type has fewer than
// minFrictionSamples recorded outcomes.
const defaultFriction = 0.1

// maxDelayDays normalizes average-delay into [0,1]; delays at or beyond
// this are treated as maximally frictional.
const maxDelayDays = 30.0

// OutcomeSample is one resolved action's outcome, used to compute a
// resolution type's historical friction (spec §4.4.5).
type OutcomeSample struct {
	Outcome  raw.Outcome
	DelayDays float64 // days between assignment and completion/abandonment
}

// ComputeFriction implements spec §4.4.5's weighted formula: 0.5 ×
// failureRate + 0.3 × normalized-average-delay + 0.2 × abandonRate.
func ComputeFriction(samples []OutcomeSample) float64 {
	if len(samples) < minFrictionSamples {
		return defaultFriction
	}

	var failures, abandons int
	var delaySum float64
	for _, s := range samples {
		switch s.Outcome {
		case raw.OutcomeFailure:
			failures++
		case raw.OutcomeAbandoned:
			abandons++
		}
		delaySum += s.DelayDays
	}

	n := float64(len(samples))
	failureRate := float64(failures) / n
	abandonRate := float64(abandons) / n
	avgDelay := delaySum / n
	normalizedDelay := clamp(avgDelay/maxDelayDays, 0, 1)

	friction := 0.5*failureRate + 0.3*normalizedDelay + 0.2*abandonRate
	return clamp(friction, 0, 1)
}
