package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/tavist/internal/calculators"
	"github.com/KirkDiggler/tavist/internal/character"
	"github.com/KirkDiggler/tavist/internal/entities/attack"
	"github.com/KirkDiggler/tavist/internal/errors"
	"github.com/KirkDiggler/tavist/internal/summary"
	"github.com/KirkDiggler/tavist/internal/tracking"
)

// OutcomeView is the serializable form of an Outcome
type OutcomeView struct {
	Label             string         `yaml:"label"`
	AttackTotal       int            `yaml:"attack_total"`
	AttackDie         int            `yaml:"attack_die"`
	Threat            bool           `yaml:"threat"`
	ConfirmTotal      *int           `yaml:"confirm_total,omitempty"`
	NaturalOne        bool           `yaml:"natural_one,omitempty"`
	NaturalTwenty     bool           `yaml:"natural_twenty,omitempty"`
	DamageNormal      int            `yaml:"damage_normal"`
	DamageCritical    int            `yaml:"damage_critical"`
	BreakdownNormal   map[string]int `yaml:"breakdown_normal"`
	BreakdownCritical map[string]int `yaml:"breakdown_critical"`
	GuaranteedHit     bool           `yaml:"guaranteed_hit,omitempty"`
}

// BandView is the serializable form of a Band
type BandView struct {
	Lower     *int           `yaml:"lower,omitempty"`
	Upper     *int           `yaml:"upper,omitempty"`
	Damage    int            `yaml:"damage"`
	Breakdown map[string]int `yaml:"breakdown,omitempty"`
}

// RoundView is the serializable form of a resolved round
type RoundView struct {
	ID         string             `yaml:"id"`
	Settings   character.Settings `yaml:"settings"`
	Outcomes   []OutcomeView      `yaml:"outcomes"`
	Bands      []BandView         `yaml:"bands,omitempty"`
	Bounds     tracking.Bounds    `yaml:"bounds"`
	Bound      string             `yaml:"bound"`
	Estimate   int                `yaml:"estimate"`
	Candidates []int              `yaml:"candidates,omitempty"`
}

// NewOutcomeView flattens an outcome; bounds may be nil
func NewOutcomeView(o *attack.Outcome, bounds *tracking.Bounds) OutcomeView {
	view := OutcomeView{
		Label:             o.Label,
		AttackTotal:       o.AttackTotal,
		AttackDie:         o.AttackDie,
		Threat:            o.IsThreat,
		ConfirmTotal:      o.ConfirmTotal,
		NaturalOne:        o.NaturalOne,
		NaturalTwenty:     o.NaturalTwenty,
		DamageNormal:      o.DamageNormal,
		DamageCritical:    o.DamageCritical,
		BreakdownNormal:   o.BreakdownNormal.Named(),
		BreakdownCritical: o.BreakdownCritical.Named(),
	}
	if bounds != nil {
		view.GuaranteedHit = bounds.GuaranteedHit(o)
	}
	return view
}

// NewBandViews flattens bands
func NewBandViews(bands []summary.Band) []BandView {
	views := make([]BandView, len(bands))
	for i, b := range bands {
		views[i] = BandView{
			Lower:     b.Lower,
			Upper:     b.Upper,
			Damage:    b.Damage,
			Breakdown: b.Breakdown.Named(),
		}
	}
	return views
}

// RecommendationView is the serializable form of an optimizer result
type RecommendationView struct {
	Recommendation calculators.Recommendation `yaml:"recommendation"`
	Applied        bool                       `yaml:"applied"`
}

// EncodeYAML writes v as a YAML document
func EncodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "failed to flush yaml")
	}
	return nil
}
