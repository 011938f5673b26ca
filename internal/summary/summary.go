package summary

import (
	"sort"

	"github.com/KirkDiggler/tavist/internal/entities/attack"
	"github.com/KirkDiggler/tavist/internal/entities/damage"
)

// Band is a contiguous AC range (Lower, Upper] over which a round deals the same damage.
// A nil Lower is unbounded below and a nil Upper is unbounded above.
type Band struct {
	Lower     *int
	Upper     *int
	Damage    int
	Breakdown damage.Breakdown
}

// Contains reports whether ac falls inside the band
func (b Band) Contains(ac int) bool {
	if b.Lower != nil && ac <= *b.Lower {
		return false
	}
	if b.Upper != nil && ac > *b.Upper {
		return false
	}
	return true
}

// DamageAt totals the damage a round deals to a target of the given AC
func DamageAt(outcomes []*attack.Outcome, ac int) (int, damage.Breakdown) {
	breakdown := damage.Breakdown{}
	for _, o := range outcomes {
		breakdown.Merge(o.Breakdown(ac))
	}
	breakdown = breakdown.Compact()
	return breakdown.Total(), breakdown
}

// Summarize partitions the AC line into maximal bands of identical damage, highest AC first.
// Adjacent bands merge when both total and breakdown match.
func Summarize(outcomes []*attack.Outcome) []Band {
	thresholds := distinctThresholds(outcomes)
	if len(thresholds) == 0 {
		return nil
	}

	raw := make([]Band, 0, len(thresholds)+1)
	raw = append(raw, Band{Lower: ptr(thresholds[0]), Breakdown: damage.Breakdown{}})
	for i, upper := range thresholds {
		var lower *int
		if i+1 < len(thresholds) {
			lower = ptr(thresholds[i+1])
		}
		total, breakdown := DamageAt(outcomes, upper)
		raw = append(raw, Band{Lower: lower, Upper: ptr(upper), Damage: total, Breakdown: breakdown})
	}

	merged := make([]Band, 0, len(raw))
	for _, band := range raw {
		if n := len(merged); n > 0 && merged[n-1].Damage == band.Damage && merged[n-1].Breakdown.Equal(band.Breakdown) {
			merged[n-1].Lower = band.Lower
			continue
		}
		merged = append(merged, band)
	}
	return merged
}

// distinctThresholds returns every attack and confirm total, descending
func distinctThresholds(outcomes []*attack.Outcome) []int {
	seen := make(map[int]bool)
	var out []int
	add := func(v int) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, o := range outcomes {
		add(o.AttackTotal)
		if confirm, ok := o.Confirm(); ok {
			add(confirm)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func ptr(v int) *int {
	return &v
}
