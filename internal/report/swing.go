package report

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/tavist/internal/dice"
	"github.com/KirkDiggler/tavist/internal/entities/attack"
	"github.com/KirkDiggler/tavist/internal/modifiers"
)

// FormatSwing renders the detailed log of one swing: totals, modifiers and every die drawn
func FormatSwing(o *attack.Outcome) string {
	threat := ""
	if o.IsThreat {
		threat = " CRIT THREAT"
	}

	lines := []string{
		fmt.Sprintf("=== Attack: %s ===", o.Label),
		fmt.Sprintf("Attack total: %d (d20=%d%s)", o.AttackTotal, o.AttackDie, threat),
	}

	if o.Detail != nil {
		lines = append(lines, "Attack mods: "+attackMods(o.Detail.AttackBonuses))
	}

	confirm, hasConfirm := o.Confirm()
	switch {
	case o.NaturalOne:
		lines = append(lines, "Natural 1: automatic miss")
	case o.IsThreat && hasConfirm:
		lines = append(lines, fmt.Sprintf("Confirm roll: %d (crit confirms on AC %d)", confirm, confirm))
	default:
		lines = append(lines, "No critical threat")
	}

	lines = append(lines,
		fmt.Sprintf("Damage (normal): %d", o.DamageNormal),
		fmt.Sprintf("Damage (critical): %d (if confirmed)", o.DamageCritical),
		fmt.Sprintf("Breakdown normal: %s", o.BreakdownNormal),
		fmt.Sprintf("Breakdown critical: %s", o.BreakdownCritical),
	)

	if o.Detail != nil {
		lines = append(lines,
			"Damage dice: "+damageDice(o.Detail),
			"Damage mods: "+damageMods(o.Detail),
		)
	}

	return strings.Join(lines, "\n")
}

func attackMods(bonuses []modifiers.Bonus) string {
	if len(bonuses) == 0 {
		return "no modifiers"
	}
	parts := make([]string, len(bonuses))
	for i, b := range bonuses {
		parts[i] = fmt.Sprintf("%s[%+d]", b.Name(), b.Value)
	}
	return strings.Join(parts, " + ")
}

func damageDice(d *attack.SwingDetail) string {
	if len(d.DamageDice) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(d.DamageDice))
	for i, die := range d.DamageDice {
		normal := formatRolls(die.Sides, rollsAt(d.NormalRolls, i))
		crit := formatRolls(die.Sides, rollsAt(d.CriticalRolls, i))
		tag := ""
		if die.WeaponDie {
			tag = " *2 on crit"
		}
		part := fmt.Sprintf("%s: %s%s", die.Name(), normal, tag)
		if crit != normal {
			part += "; crit: " + crit
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " | ")
}

func damageMods(d *attack.SwingDetail) string {
	if len(d.DamageBonuses) == 0 {
		return "none"
	}
	spec := attack.DamageSpec{Type: d.DamageType}
	parts := make([]string, len(d.DamageBonuses))
	for i, b := range d.DamageBonuses {
		parts[i] = fmt.Sprintf("%s[%+d] *2 on crit", spec.BonusSource(b), b.Value)
	}
	return strings.Join(parts, " + ")
}

func rollsAt(rolls [][]int, i int) []int {
	if i < len(rolls) {
		return rolls[i]
	}
	return nil
}

func formatRolls(sides int, rolls []int) string {
	return dice.NewResult(rolls, len(rolls), sides, 0).String()
}
