package predict

import "github.com/vc-platform/decision-engine/internal/engine/raw"

// priorStrength and baseline are the fixed Bayesian-smoothing constants
// (spec §4.3).
const (
	priorStrength = 2.0
	baseline      = 0.15
	clampLow      = 0.05
	clampHigh     = 0.85
)

// empiricalThreshold is the minimum observation count for a group to be
// considered "empirical" rather than a fallback-to-baseline estimate, keyed
// by grouping granularity: (introducer, pathType, targetType) = 3,
// (introducer, pathType) = 5, (pathType, targetType) = 5 (spec §4.3).
const (
	thresholdIntroducerPathTarget = 3
	thresholdIntroducerPath       = 5
	thresholdPathTarget           = 5
)

// PriorGroup is one Bayesian-smoothed success-rate estimate.
type PriorGroup struct {
	Key          string
	Successes    int
	Total        int
	Rate         float64
	IsEmpirical  bool
}

func smooth(successes, total int) float64 {
	rate := (float64(successes) + priorStrength*baseline) / (float64(total) + priorStrength)
	if rate < clampLow {
		return clampLow
	}
	if rate > clampHigh {
		return clampHigh
	}
	return rate
}

// groupKey builds the (introducer, pathType, targetType) key. targetType
// here is the free-form IntroKind carried on raw.IntroOutcome — it stands
// in for "target type" since the raw schema does not separately tag
// target-person category.
type groupKey struct {
	Introducer string
	PathType   raw.IntroPathType
	TargetType string
}

// CalibratePriors computes Bayesian-smoothed success rates across three
// grouping granularities from terminal introduction outcomes; a lookup
// averages every matching group that has enough samples, and returns the
// baseline rate when none does (spec §4.3; see also §7's "calibration
// insufficiency -> revert to baseline").
type Calibration struct {
	byIntroducerPathTarget map[groupKey]PriorGroup
	byIntroducerPath       map[string]PriorGroup
	byPathTarget           map[string]PriorGroup
}

func CalibratePriors(outcomes []raw.IntroOutcome) *Calibration {
	fine := make(map[groupKey][2]int)   // [successes, total]
	mid := make(map[string][2]int)
	coarse := make(map[string][2]int)

	for _, o := range outcomes {
		if !o.Status.IsTerminal() {
			continue
		}
		success := 0
		if o.Status.IsSuccess() {
			success = 1
		}

		fk := groupKey{Introducer: o.IntroducerID, PathType: o.PathType, TargetType: o.IntroKind}
		fv := fine[fk]
		fv[0] += success
		fv[1]++
		fine[fk] = fv

		mk := o.IntroducerID + "|" + string(o.PathType)
		mv := mid[mk]
		mv[0] += success
		mv[1]++
		mid[mk] = mv

		ck := string(o.PathType) + "|" + o.IntroKind
		cv := coarse[ck]
		cv[0] += success
		cv[1]++
		coarse[ck] = cv
	}

	c := &Calibration{
		byIntroducerPathTarget: make(map[groupKey]PriorGroup),
		byIntroducerPath:       make(map[string]PriorGroup),
		byPathTarget:           make(map[string]PriorGroup),
	}
	for k, v := range fine {
		c.byIntroducerPathTarget[k] = PriorGroup{
			Successes: v[0], Total: v[1], Rate: smooth(v[0], v[1]),
			IsEmpirical: v[1] >= thresholdIntroducerPathTarget,
		}
	}
	for k, v := range mid {
		c.byIntroducerPath[k] = PriorGroup{
			Successes: v[0], Total: v[1], Rate: smooth(v[0], v[1]),
			IsEmpirical: v[1] >= thresholdIntroducerPath,
		}
	}
	for k, v := range coarse {
		c.byPathTarget[k] = PriorGroup{
			Successes: v[0], Total: v[1], Rate: smooth(v[0], v[1]),
			IsEmpirical: v[1] >= thresholdPathTarget,
		}
	}
	return c
}

// CalibratedProbability returns the average of the applicable empirical
// priors for (introducer, pathType, targetKind), falling back to baseline
// when no group is empirical (spec §4.3, §7 calibration-insufficiency).
func (c *Calibration) CalibratedProbability(introducerID string, pathType raw.IntroPathType, targetKind string) float64 {
	var sum float64
	var n int

	if g, ok := c.byIntroducerPathTarget[groupKey{introducerID, pathType, targetKind}]; ok && g.IsEmpirical {
		sum += g.Rate
		n++
	}
	if g, ok := c.byIntroducerPath[introducerID+"|"+string(pathType)]; ok && g.IsEmpirical {
		sum += g.Rate
		n++
	}
	if g, ok := c.byPathTarget[string(pathType)+"|"+targetKind]; ok && g.IsEmpirical {
		sum += g.Rate
		n++
	}

	if n == 0 {
		return baseline
	}
	return sum / float64(n)
}
