package predict

import (
	"fmt"
	"math"
	"sort"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// IntroTiming is the fixed timing-state enumeration for an introduction
// opportunity (spec §4.3).
type IntroTiming string

const (
	TimingNow   IntroTiming = "NOW"
	TimingSoon  IntroTiming = "SOON"
	TimingLater IntroTiming = "LATER"
	TimingNever IntroTiming = "NEVER"
)

// Introduction is a candidate introduction-opportunity action (spec §3,
// §4.3). One is generated per (active or blocked goal, reachable target
// person) pair that, for two-hop paths, survives the second-order lift
// filter. Trust risk sets the timing; it does not drop pairs.
type Introduction struct {
	ID                  string
	CompanyID           string
	GoalID              string
	TargetPersonID      string
	HopCount            int
	PathPersonIDs       []string
	PathScore           float64 // 0-1, length-penalized geometric mean of edge strengths
	TrustRisk           TrustRisk
	CalibratedProbability float64
	OptionalityGain     float64
	Timing              IntroTiming
	Rationale           string
}

// optionalityGainByGoalType is the fixed per-goal-type second-order value
// an introduction unlocks beyond the immediate goal (spec §4.4.1's
// "second-order leverage" dimension).
var optionalityGainByGoalType = map[raw.GoalType]float64{
	raw.GoalFundraise:   40,
	raw.GoalPartnership: 30,
	raw.GoalHiring:      20,
}

// introRelevantGoalTypes are the only goal types that can block on a
// reachable person and thus generate introduction candidates (spec §4.3).
var introRelevantGoalTypes = map[raw.GoalType]bool{
	raw.GoalFundraise:   true,
	raw.GoalPartnership: true,
	raw.GoalHiring:      true,
}

type adjacencyEdge struct {
	to       string
	strength int
}

func buildAdjacency(rels []raw.Relationship) map[string][]adjacencyEdge {
	adj := make(map[string][]adjacencyEdge)
	for _, r := range rels {
		adj[r.PersonA] = append(adj[r.PersonA], adjacencyEdge{to: r.PersonB, strength: r.Strength})
		adj[r.PersonB] = append(adj[r.PersonB], adjacencyEdge{to: r.PersonA, strength: r.Strength})
	}
	return adj
}

type bfsPath struct {
	personIDs []string
	strengths []int
}

// bfsTwoHop explores from every source person up to two hops, returning
// the best (highest average-strength) path found to each reachable person
// not already in sources.
func bfsTwoHop(adj map[string][]adjacencyEdge, sources []string) map[string]bfsPath {
	sourceSet := make(map[string]bool, len(sources))
	for _, s := range sources {
		sourceSet[s] = true
	}

	best := make(map[string]bfsPath)
	type frontierEntry struct {
		personID string
		path     bfsPath
	}

	for _, src := range sources {
		frontier := []frontierEntry{{personID: src, path: bfsPath{personIDs: []string{src}}}}
		for hop := 0; hop < 2 && len(frontier) > 0; hop++ {
			var next []frontierEntry
			for _, f := range frontier {
				for _, e := range adj[f.personID] {
					if sourceSet[e.to] {
						continue
					}
					np := bfsPath{
						personIDs: append(append([]string{}, f.path.personIDs...), e.to),
						strengths: append(append([]int{}, f.path.strengths...), e.strength),
					}
					if cur, ok := best[e.to]; !ok || averageStrength(np.strengths) > averageStrength(cur.strengths) {
						best[e.to] = np
					}
					next = append(next, frontierEntry{personID: e.to, path: np})
				}
			}
			frontier = next
		}
	}
	return best
}

func pathScore(strengths []int) float64 {
	if len(strengths) == 0 {
		return 0
	}
	product := 1.0
	for _, s := range strengths {
		product *= float64(s) / 100.0
	}
	geoMean := math.Pow(product, 1.0/float64(len(strengths)))
	lengthPenalty := 1.0
	if len(strengths) == 2 {
		lengthPenalty = 0.8
	} else if len(strengths) > 2 {
		lengthPenalty = 0.6
	}
	return geoMean * lengthPenalty
}

func targetPeopleForGoal(g raw.Goal, c raw.Company, people []raw.Person, firms []raw.Firm) []raw.Person {
	var targets []raw.Person
	switch g.Type {
	case raw.GoalFundraise:
		matchFirms := make(map[string]bool)
		for _, f := range firms {
			stageMatch := false
			for _, s := range f.ThesisStages {
				if s == c.Stage {
					stageMatch = true
					break
				}
			}
			sectorMatch := false
			for _, s := range f.ThesisSectors {
				if s == c.Sector {
					sectorMatch = true
					break
				}
			}
			if stageMatch || sectorMatch {
				matchFirms[f.ID] = true
			}
		}
		for _, p := range people {
			if p.OrgKind == raw.OrgFirm && matchFirms[p.OrgID] {
				targets = append(targets, p)
			}
		}
	case raw.GoalPartnership:
		for _, p := range people {
			if p.OrgKind == raw.OrgCompany && p.OrgID != c.ID {
				targets = append(targets, p)
			}
		}
	case raw.GoalHiring:
		for _, p := range people {
			if p.OrgKind == raw.OrgExternal || p.OrgKind == raw.OrgCompany && p.OrgID != c.ID {
				targets = append(targets, p)
			}
		}
	}
	return targets
}

func timingFromEvidence(path bfsPath, tr TrustRisk) IntroTiming {
	if tr.Score > 80 {
		return TimingNever
	}
	avg := averageStrength(path.strengths)
	switch {
	case len(path.personIDs) <= 2 && avg >= 70 && tr.Band == TrustRiskLow:
		return TimingNow
	case avg >= 50 && tr.Band != TrustRiskHigh:
		return TimingSoon
	default:
		return TimingLater
	}
}

// GenerateIntroductions produces introduction-opportunity candidates for
// one company's active or blocked goals of a relevant type, applying the second-
// order (two-hop) lift filter and the whole-run kill switch (spec §4.3).
func GenerateIntroductions(c raw.Company, goals []raw.Goal, people []raw.Person, firms []raw.Firm, rels []raw.Relationship, cal *Calibration) []Introduction {
	adj := buildAdjacency(rels)

	var sources []string
	for _, p := range people {
		if p.OrgKind == raw.OrgCompany && p.OrgID == c.ID {
			sources = append(sources, p.ID)
		}
	}
	if len(sources) == 0 {
		return nil
	}

	reachable := bfsTwoHop(adj, sources)

	var oneHop, secondOrder []Introduction
	var secondOrderAttempts, secondOrderPassed int
	seq := 0

	for _, g := range goals {
		if g.Status != raw.GoalBlocked && g.Status != raw.GoalActive {
			continue
		}
		if !introRelevantGoalTypes[g.Type] {
			continue
		}

		targets := targetPeopleForGoal(g, c, people, firms)
		for _, target := range targets {
			path, ok := reachable[target.ID]
			if !ok || len(path.personIDs) < 2 {
				continue
			}

			introducerID := path.personIDs[len(path.personIDs)-2]
			introducer := findPerson(people, introducerID)

			probability := baseline
			if cal != nil {
				probability = cal.CalibratedProbability(introducerID, hopPathType(len(path.strengths)), string(g.Type))
			}

			priorSuccess, hasHistory := 0.0, false
			if cal != nil {
				if g2, ok := cal.byIntroducerPath[introducerID+"|"+string(hopPathType(len(path.strengths)))]; ok {
					priorSuccess, hasHistory = g2.Rate, g2.IsEmpirical
				}
			}

			tr := ComputeTrustRisk(IntroPath{
				HopCount:         len(path.strengths),
				EdgeStrengths:    path.strengths,
				IntroducerID:     introducerID,
				IntroducerSenior: introducer != nil && IsSenior(*introducer),
				TargetID:         target.ID,
				IntroducerTags:   personTags(introducer),
				TargetTags:       target.Tags,
			}, priorSuccess, hasHistory)

			seq++
			intro := Introduction{
				ID:                    fmt.Sprintf("%s-intro-%d", c.ID, seq),
				CompanyID:             c.ID,
				GoalID:                g.ID,
				TargetPersonID:        target.ID,
				HopCount:              len(path.strengths),
				PathPersonIDs:         path.personIDs,
				PathScore:             pathScore(path.strengths),
				TrustRisk:             tr,
				CalibratedProbability: probability,
				OptionalityGain:       optionalityGainByGoalType[g.Type],
				Rationale: fmt.Sprintf(
					"%s can reach %s in %d hop(s) via %s (path strength %.0f%%) to advance the %s goal",
					sources[0], target.ID, len(path.strengths), introducerID, pathScore(path.strengths)*100, g.Type,
				),
			}
			intro.Timing = timingFromEvidence(path, tr)

			if intro.HopCount == 1 {
				oneHop = append(oneHop, intro)
				continue
			}

			secondOrderAttempts++
			if g.ID == "" || probability <= baseline*1.2 {
				continue
			}
			secondOrderPassed++
			secondOrder = append(secondOrder, intro)
		}
	}

	out := oneHop
	if secondOrderAttempts > 0 {
		passRate := float64(secondOrderPassed) / float64(secondOrderAttempts)
		if passRate >= 0.2 {
			out = append(out, secondOrder...)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func hopPathType(hops int) raw.IntroPathType {
	if hops <= 1 {
		return raw.PathOneHop
	}
	return raw.PathTwoHop
}

func findPerson(people []raw.Person, id string) *raw.Person {
	for i := range people {
		if people[i].ID == id {
			return &people[i]
		}
	}
	return nil
}

func personTags(p *raw.Person) []string {
	if p == nil {
		return nil
	}
	return p.Tags
}
