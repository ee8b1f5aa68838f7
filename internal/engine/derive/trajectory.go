package derive

import (
	"math"
	"sort"
	"time"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// OnTrack is tri-valued per spec §4.2.
type OnTrack string

const (
	OnTrackYes     OnTrack = "yes"
	OnTrackNo      OnTrack = "no"
	OnTrackUnknown OnTrack = "unknown"
)

// Trajectory is the runtime-only derived projection of a goal's progress.
type Trajectory struct {
	VelocityPerDay        float64
	ProjectedCompletion   *time.Time
	OnTrack               OnTrack
	Confidence            float64
	RequiredVelocity      float64 // only meaningful when OnTrack == Unknown
	DataPoints            int
}

// DeriveTrajectory implements spec §4.2's trajectory rules from a
// time-ordered sequence of goal snapshots.
func DeriveTrajectory(goal raw.Goal, snapshots []raw.GoalSnapshot, now time.Time) Trajectory {
	sorted := make([]raw.GoalSnapshot, len(snapshots))
	copy(sorted, snapshots)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].AsOf.Before(sorted[j].AsOf) })

	if len(sorted) < 2 {
		return Trajectory{
			OnTrack:          OnTrackUnknown,
			Confidence:        0.3,
			DataPoints:        len(sorted),
			RequiredVelocity:  requiredVelocity(goal, now),
		}
	}

	first, last := sorted[0], sorted[len(sorted)-1]
	spanDays := last.AsOf.Sub(first.AsOf).Hours() / 24
	var velocity float64
	if spanDays > 0 {
		velocity = (last.Value - first.Value) / spanDays
	}

	onTrack, projected := project(goal, last, velocity, now)

	confidence := trajectoryConfidence(len(sorted), spanDays, goal.DueDate, now, velocityVariance(sorted))

	return Trajectory{
		VelocityPerDay:      velocity,
		ProjectedCompletion: projected,
		OnTrack:             onTrack,
		Confidence:          confidence,
		DataPoints:          len(sorted),
	}
}

func project(goal raw.Goal, last raw.GoalSnapshot, velocity float64, now time.Time) (OnTrack, *time.Time) {
	if last.Value >= goal.Target {
		today := now
		return OnTrackYes, &today
	}
	if velocity <= 0 {
		return OnTrackNo, nil
	}
	remaining := goal.Target - last.Value
	daysNeeded := remaining / velocity
	completion := now.Add(time.Duration(daysNeeded * 24 * float64(time.Hour)))
	onTrack := OnTrackNo
	if !goal.DueDate.IsZero() && !completion.After(goal.DueDate) {
		onTrack = OnTrackYes
	}
	return onTrack, &completion
}

func requiredVelocity(goal raw.Goal, now time.Time) float64 {
	if goal.DueDate.IsZero() || !goal.DueDate.After(now) {
		return 0
	}
	remaining := goal.Target - goal.Current
	daysLeft := goal.DueDate.Sub(now).Hours() / 24
	if daysLeft <= 0 {
		return 0
	}
	return remaining / daysLeft
}

func trajectoryConfidence(dataPoints int, spanDays float64, dueDate time.Time, now time.Time, variance float64) float64 {
	dataTerm := math.Min(float64(dataPoints)/10, 1) * 0.2

	var timeTerm float64
	if !dueDate.IsZero() {
		daysToDeadline := dueDate.Sub(now).Hours() / 24
		if daysToDeadline > 0 {
			ratio := spanDays / daysToDeadline
			timeTerm = clamp(ratio, 0, 1) * 0.2
		}
	}

	varianceTerm := (1 - clamp(variance, 0, 1)) * 0.1

	c := 0.5 + dataTerm + timeTerm + varianceTerm
	return clamp(c, 0, 1)
}

// velocityVariance is a normalized coefficient-of-variation over
// consecutive-snapshot velocities, clamped to [0,1] by the caller.
func velocityVariance(sorted []raw.GoalSnapshot) float64 {
	if len(sorted) < 3 {
		return 0
	}
	var velocities []float64
	for i := 1; i < len(sorted); i++ {
		days := sorted[i].AsOf.Sub(sorted[i-1].AsOf).Hours() / 24
		if days <= 0 {
			continue
		}
		velocities = append(velocities, (sorted[i].Value-sorted[i-1].Value)/days)
	}
	if len(velocities) < 2 {
		return 0
	}
	var mean float64
	for _, v := range velocities {
		mean += v
	}
	mean /= float64(len(velocities))
	if mean == 0 {
		return 1
	}
	var variance float64
	for _, v := range velocities {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(velocities))
	stddev := math.Sqrt(variance)
	return math.Abs(stddev / mean)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
