package report

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/tavist/internal/calculators"
	"github.com/KirkDiggler/tavist/internal/entities/attack"
	"github.com/KirkDiggler/tavist/internal/summary"
	"github.com/KirkDiggler/tavist/internal/tracking"
)

// FormatAttackLine renders one swing against the tracked bounds. Swings that hit every
// AC the bounds allow are emphasized. A nil bounds means nothing is tracked.
func FormatAttackLine(o *attack.Outcome, bounds *tracking.Bounds) string {
	normal := fmt.Sprintf("%d dmg [%s]", o.DamageNormal, o.BreakdownNormal)
	crit := fmt.Sprintf("%d dmg [%s]", o.DamageCritical, o.BreakdownCritical)
	confirm, hasConfirm := o.Confirm()

	var line string
	switch {
	case o.NaturalOne:
		line = fmt.Sprintf("%s: natural 1 (automatic miss)", o.Label)
	case o.NaturalTwenty:
		line = fmt.Sprintf("%s: natural 20 | damage %s", o.Label, normal)
		if o.IsThreat && hasConfirm {
			line += fmt.Sprintf(" | threat (crit confirms on AC %d) crit %s", confirm, crit)
		}
	case o.IsThreat && hasConfirm:
		switch {
		case bounds != nil && bounds.Known() && confirm >= bounds.Upper:
			line = fmt.Sprintf("%s: hits AC %d | crit confirmed at AC %d crit %s", o.Label, o.AttackTotal, confirm, crit)
		case bounds != nil && bounds.Lower != 0 && confirm <= bounds.Lower:
			line = fmt.Sprintf("%s: hits AC %d | threat (AC %d did not confirm) normal %s", o.Label, o.AttackTotal, confirm, normal)
		default:
			line = fmt.Sprintf("%s: hits AC %d | threat (crit confirms on AC %d) normal %s / crit %s", o.Label, o.AttackTotal, confirm, normal, crit)
		}
	default:
		line = fmt.Sprintf("%s: hits AC %d | damage %s", o.Label, o.AttackTotal, normal)
	}

	if bounds != nil && bounds.GuaranteedHit(o) {
		line = "* **" + line + "**"
	}
	return line
}

// FormatBound renders the tracked interval: "== N" once solved, otherwise ">L, ≤U"
// with "?" for an unknown upper bound
func FormatBound(b tracking.Bounds) string {
	if b.Solved() {
		return fmt.Sprintf("== %d", b.Upper)
	}
	upper := "?"
	if b.Known() {
		upper = fmt.Sprintf("%d", b.Upper)
	}
	return fmt.Sprintf(">%d, ≤%s", b.Lower, upper)
}

// FormatBand renders one damage band
func FormatBand(b summary.Band) string {
	suffix := ""
	if len(b.Breakdown) > 0 {
		suffix = fmt.Sprintf(" (%s)", b.Breakdown)
	}

	var rng string
	switch {
	case b.Lower != nil && b.Upper == nil:
		rng = fmt.Sprintf("AC > %d", *b.Lower)
	case b.Lower == nil && b.Upper != nil:
		rng = fmt.Sprintf("AC ≤ %d", *b.Upper)
	case b.Lower != nil:
		rng = fmt.Sprintf("%d < AC ≤ %d", *b.Lower, *b.Upper)
	default:
		rng = "any AC"
	}
	return fmt.Sprintf("%s: %d dmg%s", rng, b.Damage, suffix)
}

// FormatBands renders every band, highest AC first
func FormatBands(bands []summary.Band) []string {
	lines := make([]string, len(bands))
	for i, b := range bands {
		lines[i] = FormatBand(b)
	}
	return lines
}

// FormatDisambiguation renders the question for an ambiguous round
func FormatDisambiguation(d *tracking.Disambiguation) string {
	var sb strings.Builder
	sb.WriteString("Which attacks hit? Choose the lowest total that hit, or 'miss':\n")
	for _, c := range d.Candidates {
		fmt.Fprintf(&sb, "  %s (AC %d)", c.Label, c.AttackTotal)
		if confirm, ok := c.Confirm(); ok && c.IsThreat {
			fmt.Fprintf(&sb, " threat, confirm %d", confirm)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatRecommendation renders the optimizer result with the best setup of each weapon mode
func FormatRecommendation(rec calculators.Recommendation) []string {
	return []string{
		fmt.Sprintf("AC %d: power attack %d, %s (%.2f expected)", rec.AC, rec.PowerAttack, modeName(rec.TwoHanded), rec.Expected),
		fmt.Sprintf("  %s: power attack %d, %.2f", modeName(false), rec.BestDual.PowerAttack, rec.BestDual.Expected),
		fmt.Sprintf("  %s: power attack %d, %.2f", modeName(true), rec.BestTwoHanded.PowerAttack, rec.BestTwoHanded.Expected),
	}
}

func modeName(twoHanded bool) string {
	if twoHanded {
		return "two-handed"
	}
	return "dual-wield"
}
