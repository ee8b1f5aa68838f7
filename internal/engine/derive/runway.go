package derive

import (
	"math"
	"time"
)

// Runway is the runtime-only derived fact for a company's months of cash
// remaining. Never persisted (spec §3).
type Runway struct {
	Value            float64 // months, or +Inf
	Confidence       float64 // 0-1
	UsedInputs       []string
	MissingInputs    []string
	StalenessPenalty float64 // 0-1
	Explain          string
}

// DeriveRunway implements spec §4.2's runway rules:
//   - missing required input -> null/0-confidence
//   - burn <= 0 -> +Inf months, confidence 0.5
//   - negative cash -> 0 months, confidence 0.9
//   - otherwise value = cash / burn, rounded to 0.1
//   - staleness penalty grows linearly to 1.0 at 30 days;
//     confidence = 1 - 0.5*staleness
func DeriveRunway(cash, burn ResolvedMetric, asOf time.Time, now time.Time) Runway {
	if !cash.Found || !burn.Found {
		var missing []string
		if !cash.Found {
			missing = append(missing, "cash")
		}
		if !burn.Found {
			missing = append(missing, "burn")
		}
		return Runway{
			Value:         0,
			Confidence:    0,
			MissingInputs: missing,
			Explain:       "required input missing: runway cannot be derived",
		}
	}

	used := []string{"cash", "burn"}
	staleness := stalenessPenalty(asOf, now)
	confidence := 1 - 0.5*staleness

	switch {
	case burn.Value <= 0:
		return Runway{
			Value:            math.Inf(1),
			Confidence:       math.Min(confidence, 0.5),
			UsedInputs:       used,
			StalenessPenalty: staleness,
			Explain:          "burn is zero or negative; runway treated as infinite",
		}
	case cash.Value < 0:
		return Runway{
			Value:            0,
			Confidence:       math.Min(confidence, 0.9),
			UsedInputs:       used,
			StalenessPenalty: staleness,
			Explain:          "cash balance is negative; runway is zero",
		}
	default:
		months := math.Round((cash.Value/burn.Value)*10) / 10
		return Runway{
			Value:            months,
			Confidence:       confidence,
			UsedInputs:       used,
			StalenessPenalty: staleness,
			Explain:          "runway computed as cash / burn",
		}
	}
}

// stalenessPenalty grows linearly to 1.0 at 30 days past asOf, relative to
// now. A zero asOf (no time-series observation backing the value) is
// treated as fresh — the data came from the company's own scalar fields
// at ingestion time, not a stale historical fact.
func stalenessPenalty(asOf, now time.Time) float64 {
	if asOf.IsZero() {
		return 0
	}
	days := now.Sub(asOf).Hours() / 24
	if days <= 0 {
		return 0
	}
	if days >= 30 {
		return 1.0
	}
	return days / 30
}
