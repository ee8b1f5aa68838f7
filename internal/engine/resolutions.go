package engine

// resolutionTemplate captures the fixed effort/step profile a resolution
// identifier implies (spec §4.3's candidate `steps[]`, §4.4.1's effort-day
// inputs to execution probability, effort cost, and time to impact).
// Resolution IDs not listed default to a 5-day, generic two-step profile.
type resolutionTemplate struct {
	EffortDays float64
	Steps      []string
}

var resolutionTemplates = map[string]resolutionTemplate{
	"resolution.runway.emergency_fundraise": {EffortDays: 3, Steps: []string{"convene board", "draft bridge terms", "contact existing investors"}},
	"resolution.runway.extend_runway":       {EffortDays: 5, Steps: []string{"review burn line items", "identify cuts", "confirm new runway"}},
	"resolution.fundraise.start_early":      {EffortDays: 7, Steps: []string{"draft deck update", "build target investor list", "schedule outreach"}},
	"resolution.burn.review_spend":          {EffortDays: 2, Steps: []string{"pull spend breakdown", "flag anomalous line items"}},
	"resolution.pipeline.build_pipeline":    {EffortDays: 7, Steps: []string{"build target list", "warm intro requests", "schedule first meetings"}},
	"resolution.pipeline.expand_pipeline":   {EffortDays: 5, Steps: []string{"identify gap investors", "request intros", "track outreach"}},
	"resolution.deal.re_engage":             {EffortDays: 1, Steps: []string{"send re-engagement note", "propose next step"}},
	"resolution.deal.confirm_commitment":    {EffortDays: 1, Steps: []string{"call lead partner", "confirm terms in writing"}},
	"resolution.goal.reset_plan":            {EffortDays: 3, Steps: []string{"review goal assumptions", "set revised plan", "communicate to team"}},
	"resolution.goal.accelerate":            {EffortDays: 3, Steps: []string{"identify bottleneck", "add resourcing or focus"}},
	"resolution.goal.unblock":               {EffortDays: 2, Steps: []string{"identify blocker", "resolve or escalate"}},
	"resolution.goal.growth_push":           {EffortDays: 7, Steps: []string{"review growth levers", "launch targeted push"}},
	"resolution.goal.pipeline_review":       {EffortDays: 2, Steps: []string{"review pipeline coverage", "flag gaps"}},
	"resolution.goal.set_goals":             {EffortDays: 1, Steps: []string{"set initial goal set with founder"}},
	"resolution.data.refresh_metrics":       {EffortDays: 1, Steps: []string{"request updated metrics", "load into system"}},
	"resolution.data.collect_metrics":       {EffortDays: 1, Steps: []string{"request missing metrics", "load into system"}},
	"resolution.round.revive_round":         {EffortDays: 7, Steps: []string{"re-engage stalled investors", "reset round narrative"}},
	"resolution.round.find_lead":            {EffortDays: 10, Steps: []string{"identify candidate leads", "pitch lead role", "negotiate terms"}},
	"resolution.relationship.cultivate_champion": {EffortDays: 2, Steps: []string{"schedule touchpoint", "share relevant update"}},
	"resolution.relationship.reconnect":     {EffortDays: 1, Steps: []string{"send reconnect note", "propose a call"}},
	"resolution.introduction.make_intro":    {EffortDays: 1, Steps: []string{"request the introduction", "make the warm intro"}},
}

func templateFor(resolutionID string) resolutionTemplate {
	if t, ok := resolutionTemplates[resolutionID]; ok {
		return t
	}
	return resolutionTemplate{EffortDays: 5, Steps: []string{"review", "act"}}
}
