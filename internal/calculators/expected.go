package calculators

import (
	"github.com/KirkDiggler/tavist/internal/character"
	"github.com/KirkDiggler/tavist/internal/entities/attack"
	"github.com/KirkDiggler/tavist/internal/modifiers"
)

// ExpectedAttackDamage returns the mean damage of one swing against ac.
// Natural 1 always misses and natural 20 always hits. The confirmation roll is
// modeled with the same hit distribution as the attack roll.
func ExpectedAttackDamage(swing attack.Swing, ac int) float64 {
	atkBonus := swing.Attack.Bonus()

	hits, threats := 0, 0
	for r := 1; r <= attack.AttackDieSides; r++ {
		if !hitsOnFace(r, atkBonus, ac) {
			continue
		}
		hits++
		if r >= swing.Attack.CritThreshold {
			threats++
		}
	}

	hitProbability := float64(hits) / attack.AttackDieSides
	threatProbability := float64(threats) / attack.AttackDieSides
	confirmProbability := hitProbability

	meanNormal, meanCrit := meanDamage(swing.Damage)

	return hitProbability*meanNormal + threatProbability*confirmProbability*(meanCrit-meanNormal)
}

func hitsOnFace(r, atkBonus, ac int) bool {
	switch r {
	case 1:
		return false
	case attack.AttackDieSides:
		return true
	}
	return r+atkBonus >= ac
}

func meanDamage(spec attack.DamageSpec) (normal, crit float64) {
	for _, d := range spec.Dice {
		normal += d.Mean()
		if d.WeaponDie {
			crit += 2 * d.Mean()
		} else {
			crit += d.Mean()
		}
	}
	bonus := float64(modifiers.Sum(spec.Bonuses))
	return normal + bonus, crit + 2*bonus
}

// ExpectedFullAttack sums the expected damage of a full attack at ac. Each entry of
// bonuses is the primary weapon's base attack bonus for one swing; dual-wielding
// adds one off-hand swing at offHandBonus. The character is not modified.
func ExpectedFullAttack(c *character.Character, ac int, twoHanded bool, bonuses []int, offHandBonus int) float64 {
	scratch := c.Clone()
	scratch.SetTwoHanded(twoHanded)

	total := 0.0
	for _, bab := range bonuses {
		total += ExpectedAttackDamage(scratch.SwingWithBaseAttack(character.Primary, bab), ac)
	}
	if !twoHanded {
		total += ExpectedAttackDamage(scratch.SwingWithBaseAttack(character.OffHand, offHandBonus), ac)
	}
	return total
}
