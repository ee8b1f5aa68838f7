package derive

import (
	"strings"
	"time"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// Snapshot groups all per-company derived facts for a single `now`,
// giving the engine a stable unit to attach to per-company output
// without re-deriving (SPEC_FULL.md §4.2).
type Snapshot struct {
	CompanyID   string
	Runway      Runway
	Health      Health
	Anomalies   []Anomaly
	Trajectories map[string]Trajectory // goalID -> trajectory
}

// DeriveSnapshot computes the full per-company derived bundle.
func DeriveSnapshot(c raw.Company, goals []raw.Goal, snapshotsByGoal map[string][]raw.GoalSnapshot, idx *MetricIndex, params raw.StageParams, now time.Time) Snapshot {
	cash, burn := ResolveCashBurn(idx, c)
	asOf := LatestAsOf(cash, burn)
	if asOf.IsZero() {
		asOf = c.AsOf
	}
	runway := DeriveRunway(cash, burn, asOf, now)
	health := DeriveHealth(runway)
	anomalies := DetectAnomalies(c.Stage, params, idx, c)

	trajectories := make(map[string]Trajectory, len(goals))
	for _, g := range goals {
		trajectories[g.ID] = DeriveTrajectory(g, snapshotsByGoal[g.ID], now)
	}

	return Snapshot{
		CompanyID:    c.ID,
		Runway:       runway,
		Health:       health,
		Anomalies:    anomalies,
		Trajectories: trajectories,
	}
}

// EffectiveLastTouch returns a relationship's LastTouchAt, falling back to
// the most recent meeting date that includes both endpoints of the
// relationship as participants, when the relationship itself carries no
// explicit last-touch timestamp. Returns zero time if neither source
// applies — callers treat that as "cold" per the decay model.
func EffectiveLastTouch(rel raw.Relationship, meetings []raw.Meeting) time.Time {
	if rel.LastTouchAt != nil {
		return *rel.LastTouchAt
	}
	var latest time.Time
	for _, m := range meetings {
		if containsBoth(m.ParticipantIDs, rel.PersonA, rel.PersonB) && m.Date.After(latest) {
			latest = m.Date
		}
	}
	return latest
}

func containsBoth(participants []string, a, b string) bool {
	var hasA, hasB bool
	for _, p := range participants {
		if p == a {
			hasA = true
		}
		if p == b {
			hasB = true
		}
	}
	return hasA && hasB
}

// MeetingPlainText extracts a best-effort plain-text rendering of a
// meeting's summary when it isn't already plain. HTML extraction lives in
// internal/narrate/meetingtext.go (ambient, non-core); this helper only
// strips the cheap cases (markdown emphasis markers) so the derive layer
// never needs to import the narration package.
func MeetingPlainText(m raw.Meeting) string {
	if m.SummaryFormat != "markdown" {
		return m.Summary
	}
	s := m.Summary
	for _, marker := range []string{"**", "__", "*", "_", "`"} {
		s = strings.ReplaceAll(s, marker, "")
	}
	return s
}
