package attack

import (
	"github.com/KirkDiggler/tavist/internal/entities/damage"
	"github.com/KirkDiggler/tavist/internal/modifiers"
)

// AttackDieSides is the implicit first die of every attack roll
const AttackDieSides = 20

// DiceSpec describes count×d<sides>. A weapon die is rolled twice as many times on a confirmed critical.
type DiceSpec struct {
	Count     int
	Sides     int
	Label     string
	WeaponDie bool
}

// Name is the label, "damage" when unset
func (d DiceSpec) Name() string {
	if d.Label == "" {
		return "damage"
	}
	return d.Label
}

// Mean is the expected sum of one roll of these dice
func (d DiceSpec) Mean() float64 {
	return float64(d.Count) * float64(d.Sides+1) / 2
}

// AttackSpec is an attack roll: one d20 plus any extra dice plus bonuses
type AttackSpec struct {
	Label         string
	CritThreshold int
	Dice          []DiceSpec
	Bonuses       []modifiers.Bonus
}

// Bonus sums the attack bonuses, excluding every die
func (a AttackSpec) Bonus() int {
	return modifiers.Sum(a.Bonuses)
}

// DamageSpec is a damage roll; Type labels the weapon bucket of the breakdown
type DamageSpec struct {
	Label   string
	Type    damage.Type
	Dice    []DiceSpec
	Bonuses []modifiers.Bonus
}

// SourceFor returns the breakdown bucket of a damage die
func (d DamageSpec) SourceFor(die DiceSpec) damage.Source {
	if die.WeaponDie {
		return damage.WeaponSource(d.Type)
	}
	return damage.LabelSource(die.Name())
}

// BonusSource returns the breakdown bucket of a damage bonus
func (d DamageSpec) BonusSource(b modifiers.Bonus) damage.Source {
	switch b.Category {
	case modifiers.CategoryAbility, modifiers.CategoryEnhancement, modifiers.CategoryPowerAttack:
		return damage.WeaponSource(d.Type)
	case modifiers.CategoryUnnamed, "":
		return damage.LabelSource(b.Name())
	default:
		return damage.CategorySource(b.Category)
	}
}

// Swing pairs the attack and damage rolls of one weapon
type Swing struct {
	Attack AttackSpec
	Damage DamageSpec
}
