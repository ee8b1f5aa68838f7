package raw

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// policyOverrideDoc mirrors the subset of Policy an operator may tune from
// a YAML file, following the teacher's agent.Config convention of small
// yaml-tagged override structs layered on top of code defaults.
type policyOverrideDoc struct {
	Assumptions struct {
		RelationshipDecayHalfLifeDays *float64 `yaml:"relationship_decay_half_life_days"`
		RelationshipColdThresholdDays *float64 `yaml:"relationship_cold_threshold_days"`
		IntroBaselineConversion       *float64 `yaml:"intro_baseline_conversion"`
		CAT1RunwayMonths              *float64 `yaml:"cat1_runway_months"`
		CAT1LegalDays                 *float64 `yaml:"cat1_legal_days"`
		CAT2DataBlockerDays           *float64 `yaml:"cat2_data_blocker_days"`
		CAT2DeckAgeDays               *float64 `yaml:"cat2_deck_age_days"`
		ProactivityNoGate             *float64 `yaml:"proactivity_no_gate"`
		ProactivityCAT2               *float64 `yaml:"proactivity_cat2"`
	} `yaml:"assumptions"`
	Weights struct {
		TimePenaltyK         *float64 `yaml:"time_penalty_k"`
		TrustPenaltyScale    *float64 `yaml:"trust_penalty_scale"`
		FrictionPenaltyScale *float64 `yaml:"friction_penalty_scale"`
		TimeCriticalityScale *float64 `yaml:"time_criticality_scale"`
		ObviousnessScale     *float64 `yaml:"obviousness_scale"`
	} `yaml:"weights"`
}

// LoadPolicyYAML reads a YAML override file and applies it on top of base,
// returning a new Policy value. base is never mutated. Unset fields in the
// file keep base's value — this is a sparse overlay, not a full
// replacement, so a partial operator file can never leave the policy in an
// inconsistent state.
func LoadPolicyYAML(path string, base Policy) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("read policy config %q: %w", path, err)
	}

	var doc policyOverrideDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Policy{}, fmt.Errorf("parse policy config %q: %w", path, err)
	}

	out := base
	a := &out.Assumptions
	if v := doc.Assumptions.RelationshipDecayHalfLifeDays; v != nil {
		a.RelationshipDecayHalfLifeDays = *v
	}
	if v := doc.Assumptions.RelationshipColdThresholdDays; v != nil {
		a.RelationshipColdThresholdDays = *v
	}
	if v := doc.Assumptions.IntroBaselineConversion; v != nil {
		a.IntroBaselineConversion = *v
	}
	if v := doc.Assumptions.CAT1RunwayMonths; v != nil {
		a.CAT1RunwayMonths = *v
	}
	if v := doc.Assumptions.CAT1LegalDays; v != nil {
		a.CAT1LegalDays = *v
	}
	if v := doc.Assumptions.CAT2DataBlockerDays; v != nil {
		a.CAT2DataBlockerDays = *v
	}
	if v := doc.Assumptions.CAT2DeckAgeDays; v != nil {
		a.CAT2DeckAgeDays = *v
	}
	if v := doc.Assumptions.ProactivityNoGate; v != nil {
		a.ProactivityNoGate = *v
	}
	if v := doc.Assumptions.ProactivityCAT2; v != nil {
		a.ProactivityCAT2 = *v
	}

	w := &out.Weights
	if v := doc.Weights.TimePenaltyK; v != nil {
		w.TimePenaltyK = *v
	}
	if v := doc.Weights.TrustPenaltyScale; v != nil {
		w.TrustPenaltyScale = *v
	}
	if v := doc.Weights.FrictionPenaltyScale; v != nil {
		w.FrictionPenaltyScale = *v
	}
	if v := doc.Weights.TimeCriticalityScale; v != nil {
		w.TimeCriticalityScale = *v
	}
	if v := doc.Weights.ObviousnessScale; v != nil {
		w.ObviousnessScale = *v
	}

	return out, nil
}
