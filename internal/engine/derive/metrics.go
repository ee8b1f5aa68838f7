// Package derive computes per-entity derived facts — runway, trajectory,
// health, anomalies, metric resolution, and per-company snapshots — from
// raw input plus the raw policy layer. Nothing in this package may be
// persisted (spec §4.2); every exported type here is recomputed on every
// Compute call.
package derive

import (
	"time"

	"github.com/vc-platform/decision-engine/internal/engine/raw"
)

// MetricSourceBranch records which branch of the resolver supplied a
// value, for provenance.
type MetricSourceBranch string

const (
	BranchTimeSeries   MetricSourceBranch = "time_series"
	BranchScalarField  MetricSourceBranch = "scalar_field"
	BranchNone         MetricSourceBranch = "none"
)

// ResolvedMetric is the result of resolving one (company, key) pair.
type ResolvedMetric struct {
	Key    raw.MetricKey
	Value  float64
	Found  bool
	Branch MetricSourceBranch
	AsOf   time.Time
}

// MetricIndex is a once-per-run index over a graph's metric facts, keyed
// by company then metric key, holding only the latest observation per key
// (spec §4.2: "the value observed at the latest asOf wins").
type MetricIndex struct {
	latest map[string]map[raw.MetricKey]raw.MetricFact
}

// BuildMetricIndex scans every MetricFact once and retains the latest
// AsOf per (company, key).
func BuildMetricIndex(g raw.Graph) *MetricIndex {
	idx := &MetricIndex{latest: make(map[string]map[raw.MetricKey]raw.MetricFact)}
	for _, f := range g.MetricFacts {
		byKey, ok := idx.latest[f.CompanyID]
		if !ok {
			byKey = make(map[raw.MetricKey]raw.MetricFact)
			idx.latest[f.CompanyID] = byKey
		}
		if cur, ok := byKey[f.Key]; !ok || f.AsOf.After(cur.AsOf) {
			byKey[f.Key] = f
		}
	}
	return idx
}

// Resolve returns the value for (companyID, key): latest time-series
// observation, falling back to the company's scalar field, falling back
// to not-found. scalarFallback is looked up by the caller since the
// scalar fields live on raw.Company and vary by key.
func (idx *MetricIndex) Resolve(companyID string, key raw.MetricKey, scalarFallback func() (float64, bool)) ResolvedMetric {
	if byKey, ok := idx.latest[companyID]; ok {
		if fact, ok := byKey[key]; ok {
			return ResolvedMetric{Key: key, Value: fact.Value, Found: true, Branch: BranchTimeSeries, AsOf: fact.AsOf}
		}
	}
	if scalarFallback != nil {
		if v, ok := scalarFallback(); ok {
			return ResolvedMetric{Key: key, Value: v, Found: true, Branch: BranchScalarField}
		}
	}
	return ResolvedMetric{Key: key, Found: false, Branch: BranchNone}
}

// ResolveCashBurn is the convenience accessor runway derivation uses: it
// resolves cash and burn together, preferring time-series facts over the
// company's scalar fields.
func ResolveCashBurn(idx *MetricIndex, c raw.Company) (cash, burn ResolvedMetric) {
	cash = idx.Resolve(c.ID, raw.MetricCash, func() (float64, bool) { return c.Cash, true })
	burn = idx.Resolve(c.ID, raw.MetricBurn, func() (float64, bool) { return c.Burn, true })
	return
}

// LatestAsOf returns the most recent AsOf among the company's resolved
// metrics, used by staleness calculations. Returns zero time if nothing
// resolved from the time series (scalar-only company data has no
// observation timestamp, so staleness falls back to the company's AsOf).
func LatestAsOf(metrics ...ResolvedMetric) time.Time {
	var latest time.Time
	for _, m := range metrics {
		if m.Branch == BranchTimeSeries && m.AsOf.After(latest) {
			latest = m.AsOf
		}
	}
	return latest
}
