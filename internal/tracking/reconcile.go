package tracking

import (
	"sort"

	"github.com/KirkDiggler/tavist/internal/entities/attack"
	"github.com/KirkDiggler/tavist/internal/errors"
)

// Disambiguation asks which of a round's ambiguous swings hit.
// Candidates are sorted by ascending attack total.
type Disambiguation struct {
	Candidates []*attack.Outcome
}

// Totals lists the attack totals the caller may pick as the lowest hit
func (d *Disambiguation) Totals() []int {
	out := make([]int, len(d.Candidates))
	for i, c := range d.Candidates {
		out[i] = c.AttackTotal
	}
	return out
}

// Choice answers a Disambiguation: either every candidate missed, or LowestHit is the
// lowest attack total that hit
type Choice struct {
	AllMissed bool
	LowestHit int
}

// AllMissed is the choice for a round where no candidate hit
func AllMissed() Choice {
	return Choice{AllMissed: true}
}

// LowestHit is the choice naming the lowest candidate total that hit
func LowestHit(total int) Choice {
	return Choice{LowestHit: total}
}

// IsCandidate reports whether an outcome's result cannot be inferred from the bounds.
// Natural 1s and 20s never are.
func (b Bounds) IsCandidate(o *attack.Outcome) bool {
	if o.NaturalOne || o.NaturalTwenty {
		return false
	}
	if b.Inside(o.AttackTotal) {
		return true
	}
	confirm, ok := o.Confirm()
	return ok && b.Inside(confirm)
}

// Candidates returns the ambiguous outcomes of a round, ascending by attack total
func (t *Tracker) Candidates(outcomes []*attack.Outcome) []*attack.Outcome {
	var out []*attack.Outcome
	for _, o := range outcomes {
		if t.bounds.IsCandidate(o) {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AttackTotal < out[j].AttackTotal
	})
	return out
}

// Disambiguate returns the question to put to the user, nil when the round is unambiguous
func (t *Tracker) Disambiguate(outcomes []*attack.Outcome) *Disambiguation {
	candidates := t.Candidates(outcomes)
	if len(candidates) == 0 {
		return nil
	}
	return &Disambiguation{Candidates: candidates}
}

// Reconcile applies a Choice. Candidates at or above the chosen total are recorded as
// hits, using the confirm total of a threat, and the rest as misses. Every hit then
// accrues its damage against the resulting upper bound.
func (t *Tracker) Reconcile(d *Disambiguation, choice Choice) error {
	if d == nil {
		return errors.FailedPreconditionf("no disambiguation to reconcile")
	}

	if choice.AllMissed {
		for _, c := range d.Candidates {
			t.RecordMiss(c.AttackTotal)
		}
		t.logger.Info("Reconciled round as all misses", "lower", t.bounds.Lower, "upper", t.bounds.Upper)
		return nil
	}

	if !containsTotal(d.Candidates, choice.LowestHit) {
		return errors.InvalidArgumentf("choice %d is not a candidate attack total", choice.LowestHit).
			WithMeta("candidates", d.Totals())
	}

	var hits []*attack.Outcome
	for _, c := range d.Candidates {
		if c.AttackTotal < choice.LowestHit {
			t.RecordMiss(c.AttackTotal)
			continue
		}
		if confirm, ok := c.Confirm(); ok && c.IsThreat {
			t.RecordHit(confirm)
		} else {
			t.RecordHit(c.AttackTotal)
		}
		hits = append(hits, c)
	}

	for _, c := range hits {
		t.AddDamage(t.bounds.DamageForHit(c))
	}

	t.logger.Info("Reconciled round",
		"lowest_hit", choice.LowestHit,
		"hits", len(hits),
		"lower", t.bounds.Lower,
		"upper", t.bounds.Upper,
		"damage_done", t.bounds.DamageDone,
	)
	return nil
}

// DamageForHit is the damage of a swing known to hit: critical when a threat's confirm
// total meets the upper bound, normal otherwise
func (b Bounds) DamageForHit(o *attack.Outcome) int {
	if confirm, ok := o.Confirm(); ok && o.IsThreat && b.Known() && confirm >= b.Upper {
		return o.DamageCritical
	}
	return o.DamageNormal
}

// GuaranteedHit reports whether a swing hits every AC the bounds allow
func (b Bounds) GuaranteedHit(o *attack.Outcome) bool {
	if o.NaturalOne {
		return false
	}
	if o.NaturalTwenty {
		return true
	}
	if !b.Known() {
		return false
	}
	if o.AttackTotal >= b.Upper {
		return true
	}
	confirm, ok := o.Confirm()
	return ok && confirm >= b.Upper
}

// AccumulateKnownHits accrues the damage of every swing whose hit does not depend on
// the user's answer. Ambiguous swings are left for Reconcile. It returns the damage added.
func (t *Tracker) AccumulateKnownHits(outcomes []*attack.Outcome) int {
	added := 0
	for _, o := range outcomes {
		if t.bounds.IsCandidate(o) || !t.bounds.GuaranteedHit(o) {
			continue
		}
		added += t.AddDamage(t.bounds.DamageForHit(o))
	}
	return added
}

func containsTotal(candidates []*attack.Outcome, total int) bool {
	for _, c := range candidates {
		if c.AttackTotal == total {
			return true
		}
	}
	return false
}
