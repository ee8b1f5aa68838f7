package derive

import (
	"fmt"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// Severity is the fixed anomaly/issue severity scale.
type Severity int

const (
	SeverityLow      Severity = 0
	SeverityMedium   Severity = 1
	SeverityHigh     Severity = 2
	SeverityCritical Severity = 3
)

// Direction is which way a bound was breached.
type Direction string

const (
	DirectionBelowMin Direction = "below_min"
	DirectionAboveMax Direction = "above_max"
)

// Anomaly is a stage-relative bound breach on one metric.
type Anomaly struct {
	Metric    raw.MetricKey
	Direction Direction
	Severity  Severity
	Ratio     float64
	Evidence  string
}

// DetectAnomalies implements spec §4.2: for each (metric, stage-bound)
// pair compute the ratio of actual to bound, map to severity, and flag a
// stage-mismatch anomaly when 2+ same-direction breaches reach MEDIUM+.
func DetectAnomalies(stage raw.Stage, params raw.StageParams, idx *MetricIndex, c raw.Company) []Anomaly {
	var anomalies []Anomaly

	checkBound := func(key raw.MetricKey, value float64, found bool, min, max float64) {
		if !found {
			return
		}
		if min > 0 && value < min {
			ratio := value / min
			sev := belowMinSeverity(ratio)
			if sev >= SeverityMedium {
				anomalies = append(anomalies, Anomaly{
					Metric: key, Direction: DirectionBelowMin, Severity: sev, Ratio: ratio,
					Evidence: fmt.Sprintf("%s is %.0f%% of the stage minimum", key, ratio*100),
				})
			}
		}
		if max > 0 && value > max {
			ratio := value / max
			sev := aboveMaxSeverity(ratio)
			if sev >= SeverityMedium {
				anomalies = append(anomalies, Anomaly{
					Metric: key, Direction: DirectionAboveMax, Severity: sev, Ratio: ratio,
					Evidence: fmt.Sprintf("%s is %.0f%% of the stage maximum", key, ratio*100),
				})
			}
		}
	}

	checkBound(raw.MetricBurn, c.Burn, true, params.MinBurn, params.MaxBurn)
	checkBound(raw.MetricEmployees, float64(c.Employees), true, float64(params.MinEmployees), float64(params.MaxEmployees))
	if c.HasRevenue {
		checkBound(raw.MetricRevenue, c.Revenue, true, params.MinRevenue, params.MaxRevenue)
	}
	for key, bounds := range params.OperationalBounds {
		if m := idx.Resolve(c.ID, key, nil); m.Found {
			checkBound(key, m.Value, true, bounds[0], bounds[1])
		}
	}

	if mismatch := stageMismatch(anomalies); mismatch != nil {
		anomalies = append(anomalies, *mismatch)
	}

	return anomalies
}

func belowMinSeverity(ratio float64) Severity {
	switch {
	case ratio < 0.25:
		return SeverityCritical
	case ratio < 0.5:
		return SeverityHigh
	case ratio < 0.75:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

func aboveMaxSeverity(ratio float64) Severity {
	switch {
	case ratio > 3:
		return SeverityCritical
	case ratio > 2:
		return SeverityHigh
	case ratio > 1.5:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// stageMismatch returns a synthetic anomaly suggesting an adjacent stage
// when two or more same-direction breaches reach MEDIUM+ (spec §4.2).
func stageMismatch(anomalies []Anomaly) *Anomaly {
	var belowCount, aboveCount int
	for _, a := range anomalies {
		if a.Severity < SeverityMedium {
			continue
		}
		if a.Direction == DirectionBelowMin {
			belowCount++
		} else {
			aboveCount++
		}
	}
	switch {
	case belowCount >= 2:
		return &Anomaly{
			Direction: DirectionBelowMin, Severity: SeverityMedium,
			Evidence: "multiple metrics below stage minimums; company may be an earlier stage than labeled",
		}
	case aboveCount >= 2:
		return &Anomaly{
			Direction: DirectionAboveMax, Severity: SeverityMedium,
			Evidence: "multiple metrics above stage maximums; company may be a later stage than labeled",
		}
	}
	return nil
}
