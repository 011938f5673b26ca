package attack

import (
	"fmt"

	"github.com/KirkDiggler/tavist/internal/entities/damage"
	"github.com/KirkDiggler/tavist/internal/modifiers"
)

// Outcome is one resolved swing. It is built once by the Resolver and only read afterwards.
// Natural 1/20 flags do not change the numbers; consumers apply the auto-miss/auto-hit rule.
type Outcome struct {
	Label             string
	AttackTotal       int
	AttackDie         int
	IsThreat          bool
	ConfirmTotal      *int
	NaturalOne        bool
	NaturalTwenty     bool
	DamageNormal      int
	DamageCritical    int
	BreakdownNormal   damage.Breakdown
	BreakdownCritical damage.Breakdown

	// Detail keeps the raw draws for the swing log
	Detail *SwingDetail
}

// SwingDetail is the audit trail of an Outcome
type SwingDetail struct {
	AttackBonuses []modifiers.Bonus
	DamageType    damage.Type
	DamageDice    []DiceSpec
	DamageBonuses []modifiers.Bonus
	NormalRolls   [][]int
	CriticalRolls [][]int
}

// Confirm returns the confirmation total when a threat was rolled
func (o *Outcome) Confirm() (int, bool) {
	if o.ConfirmTotal == nil {
		return 0, false
	}
	return *o.ConfirmTotal, true
}

// HitsAC applies the natural 1/20 overrides to an attack total comparison
func (o *Outcome) HitsAC(ac int) bool {
	if o.NaturalOne {
		return false
	}
	return o.NaturalTwenty || ac <= o.AttackTotal
}

// ConfirmsAC reports whether the threat confirms against ac
func (o *Outcome) ConfirmsAC(ac int) bool {
	confirm, ok := o.Confirm()
	return o.IsThreat && ok && ac <= confirm
}

// Breakdown returns the breakdown that applies at ac, nil when the swing misses
func (o *Outcome) Breakdown(ac int) damage.Breakdown {
	if !o.HitsAC(ac) {
		return nil
	}
	if o.ConfirmsAC(ac) {
		return o.BreakdownCritical
	}
	return o.BreakdownNormal
}

func (o *Outcome) String() string {
	return fmt.Sprintf("%s: attack %d (d20=%d), damage %d/%d", o.Label, o.AttackTotal, o.AttackDie, o.DamageNormal, o.DamageCritical)
}
