package decide

// Context bundles the per-run lookup maps rankScore needs that are built
// once and read many times: trust-risk and deadline days keyed by action
// ID, and the friction score keyed by resolution ID (spec §4.4.2,
// §4.4.5). Mirrors derive.Snapshot's "assemble once, attach many" idiom.
type Context struct {
	TrustRiskByAction     map[string]float64
	DeadlineDaysByAction  map[string]float64
	FrictionByResolution  map[string]float64
}

// NewContext builds an empty, ready-to-populate Context.
func NewContext() Context {
	return Context{
		TrustRiskByAction:    make(map[string]float64),
		DeadlineDaysByAction: make(map[string]float64),
		FrictionByResolution: make(map[string]float64),
	}
}

// Friction returns the resolution's friction score, defaulting per
// ComputeFriction's own rule when the resolution has no entry yet.
func (c Context) Friction(resolutionID string) float64 {
	if f, ok := c.FrictionByResolution[resolutionID]; ok {
		return f
	}
	return defaultFriction
}
