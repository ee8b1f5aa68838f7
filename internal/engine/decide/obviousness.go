package decide

import (
	"math"
	"time"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// dismissalStrength is the fixed reason -> penalty-strength table (spec
// §4.4.3).
func dismissalStrength(reason raw.DismissalReason) (strength, halfLifeDays float64) {
	switch reason {
	case raw.ReasonNotRelevant, raw.ReasonDisagree:
		return 0.35, 60
	default: // not_now, already_doing
		return 0.1, 14
	}
}

// SurfaceEvent records one prior surfacing of an action without a
// dismissal, contributing a small decay-weighted obviousness term.
type SurfaceEvent struct {
	Timestamp time.Time
}

// ObviousnessInputs bundles the event/dismissal context one action's
// obviousness penalty is computed from (spec §4.4.3).
type ObviousnessInputs struct {
	Dismissals          []raw.DismissalEvent
	RecentSurfaces      []SurfaceEvent
	RecentUserActionSameEntity bool // a user acted on the same (company, goal) recently
	RedundantWithFocus  bool        // action duplicates a user-pinned focus entity
}

const recentSurfaceHalfLifeDays = 7

// ComputeObviousness sums the dismissal-decay, recent-surface,
// recent-user-action, and focus-redundancy contributions and caps the
// total at 0.8 (spec §4.4.3).
func ComputeObviousness(in ObviousnessInputs, now time.Time) float64 {
	var total float64

	for _, d := range in.Dismissals {
		strength, halfLife := dismissalStrength(d.Reason)
		daysSince := now.Sub(d.Timestamp).Hours() / 24
		if daysSince < 0 {
			daysSince = 0
		}
		total += strength * math.Pow(0.5, daysSince/halfLife)
	}

	for _, s := range in.RecentSurfaces {
		daysSince := now.Sub(s.Timestamp).Hours() / 24
		if daysSince < 0 {
			daysSince = 0
		}
		total += 0.05 * math.Pow(0.5, daysSince/recentSurfaceHalfLifeDays)
	}

	if in.RecentUserActionSameEntity {
		total += 0.4
	}

	if in.RedundantWithFocus {
		total += 0.05
	}

	if total > 0.8 {
		total = 0.8
	}
	if total < 0 {
		total = 0
	}
	return total
}
