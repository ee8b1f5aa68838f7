package decide

// resolutionEffectiveness is the fixed resolution-type -> effectiveness
// table (0.2-1.0) feeding probabilityOfSuccess (spec §4.4.1). Resolution
// IDs not listed here default to 0.6 in ComputeImpact.
var resolutionEffectiveness = map[string]float64{
	"resolution.runway.emergency_fundraise":    0.55,
	"resolution.runway.extend_runway":          0.7,
	"resolution.fundraise.start_early":         0.75,
	"resolution.burn.review_spend":             0.8,
	"resolution.pipeline.build_pipeline":       0.65,
	"resolution.pipeline.expand_pipeline":      0.7,
	"resolution.deal.re_engage":                0.6,
	"resolution.deal.confirm_commitment":       0.65,
	"resolution.goal.reset_plan":               0.6,
	"resolution.goal.accelerate":               0.65,
	"resolution.goal.unblock":                  0.6,
	"resolution.goal.growth_push":              0.6,
	"resolution.goal.pipeline_review":          0.65,
	"resolution.goal.set_goals":                0.85,
	"resolution.data.refresh_metrics":          0.9,
	"resolution.data.collect_metrics":          0.9,
	"resolution.round.revive_round":            0.5,
	"resolution.round.find_lead":               0.45,
	"resolution.relationship.cultivate_champion": 0.55,
	"resolution.relationship.reconnect":        0.75,
	"resolution.introduction.make_intro":       0.6,
}

// ResolutionEffectiveness looks up a resolution's effectiveness, defaulting
// to 0.6 (mid-range) for anything not in the catalogue.
func ResolutionEffectiveness(resolutionID string) float64 {
	if v, ok := resolutionEffectiveness[resolutionID]; ok {
		return v
	}
	return 0.6
}
