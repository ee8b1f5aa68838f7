package predict

import (
	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// TrustRiskBand is the fixed trust-risk band enumeration.
type TrustRiskBand string

const (
	TrustRiskLow    TrustRiskBand = "low"
	TrustRiskMedium TrustRiskBand = "medium"
	TrustRiskHigh   TrustRiskBand = "high"
)

// TrustRisk is the social-capital downside model for an introduction
// action (spec §3, §4.3). Composed from six weighted sources.
type TrustRisk struct {
	Score              float64 // 0-100
	Band               TrustRiskBand
	BlockAmplification bool
	Breakdown          map[string]float64
}

// IntroPath describes one candidate introduction chain for trust-risk
// scoring.
type IntroPath struct {
	HopCount          int
	EdgeStrengths     []int // 0-100, one per hop
	IntroducerID      string
	IntroducerSenior  bool
	TargetID          string
	IntroducerTags    []string
	TargetTags        []string
	IntroducerSector  string
	TargetSector      string
	DaysSinceTouch    float64
	AsksLast90Days    int
}

// ComputeTrustRisk implements spec §4.3's six weighted sources.
func ComputeTrustRisk(path IntroPath, introducerSuccessRate float64, hasIntroducerHistory bool) TrustRisk {
	breakdown := make(map[string]float64, 6)

	avgStrength := averageStrength(path.EdgeStrengths)
	breakdown["relationship_strength"] = relationshipStrengthPenalty(avgStrength)
	breakdown["recency"] = recencyPenalty(path.DaysSinceTouch)
	breakdown["intro_frequency"] = introFrequencyPenalty(path.AsksLast90Days)
	breakdown["path_length"] = pathLengthPenalty(path.HopCount)
	breakdown["fit_mismatch"] = fitMismatchPenalty(path)
	breakdown["reputational_asymmetry"] = reputationalAsymmetryPenalty(path, avgStrength, introducerSuccessRate, hasIntroducerHistory)

	var total float64
	for _, v := range breakdown {
		total += v
	}
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	band := TrustRiskLow
	switch {
	case total > 60:
		band = TrustRiskHigh
	case total > 30:
		band = TrustRiskMedium
	}

	return TrustRisk{
		Score:               total,
		Band:                band,
		BlockAmplification:  band == TrustRiskHigh,
		Breakdown:           breakdown,
	}
}

func averageStrength(strengths []int) float64 {
	if len(strengths) == 0 {
		return 0
	}
	var sum int
	for _, s := range strengths {
		sum += s
	}
	return float64(sum) / float64(len(strengths))
}

// relationshipStrengthPenalty: max(0, 100-strength) * 0.3
func relationshipStrengthPenalty(avgStrength float64) float64 {
	p := 100 - avgStrength
	if p < 0 {
		p = 0
	}
	return p * 0.3
}

// recencyPenalty: bucketed days-since-touch.
func recencyPenalty(days float64) float64 {
	switch {
	case days <= 7:
		return 0
	case days <= 30:
		return 10
	case days <= 90:
		return 25
	default:
		return 40
	}
}

// introFrequencyPenalty: bucketed asks in the last 90 days.
func introFrequencyPenalty(asks int) float64 {
	switch {
	case asks <= 0:
		return 0
	case asks == 1:
		return 5
	case asks == 2:
		return 15
	case asks == 3:
		return 30
	default:
		return 50 // 4+ asks
	}
}

// pathLengthPenalty: 1 hop: 0, 2: 15, 3: 35, 4+: 50.
func pathLengthPenalty(hops int) float64 {
	switch {
	case hops <= 1:
		return 0
	case hops == 2:
		return 15
	case hops == 3:
		return 35
	default:
		return 50
	}
}

// fitMismatchPenalty derives from tag overlap and sector adjacency: no
// overlap and different sector is the worst case.
func fitMismatchPenalty(path IntroPath) float64 {
	overlap := tagOverlap(path.IntroducerTags, path.TargetTags)
	penalty := 20.0 - float64(overlap)*5
	if penalty < 0 {
		penalty = 0
	}
	if path.IntroducerSector != "" && path.TargetSector != "" && path.IntroducerSector != path.TargetSector {
		penalty += 5
	}
	if penalty > 25 {
		penalty = 25
	}
	return penalty
}

func tagOverlap(a, b []string) int {
	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}
	n := 0
	for _, t := range b {
		if set[t] {
			n++
		}
	}
	return n
}

// reputationalAsymmetryPenalty applies only when the introducer is senior
// and the relationship is only moderately strong; it's further weighted
// by the introducer's own historical success rate (a poor track record
// compounds the asymmetry risk).
func reputationalAsymmetryPenalty(path IntroPath, avgStrength, successRate float64, hasHistory bool) float64 {
	if !path.IntroducerSenior || avgStrength >= 70 || avgStrength < 30 {
		return 0
	}
	base := 10.0
	if hasHistory {
		base += (1 - successRate) * 10
	}
	return base
}

// IsSenior reports whether a person's role marks them as senior for trust-
// risk purposes. A simple, auditable rule rather than a learned one.
func IsSenior(p raw.Person) bool {
	switch p.Role {
	case "partner", "general partner", "managing partner", "ceo", "founder":
		return true
	default:
		return false
	}
}
