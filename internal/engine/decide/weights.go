// Package decide attaches the seven-dimension impact model to each
// predict-layer candidate, applies urgency gates and the obviousness
// penalty, and reduces everything to the single `rankScore` scalar that
// totally orders actions (spec §4.4). Depends on raw, derive, predict only.
package decide

import (
	"math"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// timePenalty grows monotonically with days-to-impact and saturates near
// 60 days (spec §4.4.2). t/(t+k) is the canonical shape chosen to resolve
// spec §9's open question on timePenalty's exact form (see DESIGN.md).
func timePenalty(days float64, w raw.Weights) float64 {
	if days <= 0 {
		return 0
	}
	k := w.TimePenaltyK
	if k <= 0 {
		k = 14
	}
	return (days / (days + k)) * 20.0
}

// trustPenalty scales an introduction action's social-capital trust-risk
// score (0-100) into a rankScore deduction.
func trustPenalty(trustRiskScore float64, w raw.Weights) float64 {
	return (trustRiskScore / 100.0) * 20.0 * w.TrustPenaltyScale
}

// executionFrictionPenalty scales a [0,1] friction score into a rankScore
// deduction.
func executionFrictionPenalty(friction float64, w raw.Weights) float64 {
	return friction * w.FrictionPenaltyScale
}

// timeCriticalityBoost rewards actions tied to an imminent deadline; it
// falls linearly from its maximum just before the deadline to zero at 90
// days out.
func timeCriticalityBoost(daysUntilDeadline float64, w raw.Weights) float64 {
	if daysUntilDeadline <= 0 {
		return 0
	}
	// Deadlines further than 90 days out contribute nothing.
	if daysUntilDeadline > 90 {
		return 0
	}
	urgency := 1.0 - (daysUntilDeadline / 90.0)
	return urgency * 15.0 * w.TimeCriticalityScale
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
