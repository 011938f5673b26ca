package dice

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/tavist/internal/errors"
)

// RollResult holds the dice drawn for one Roll call
type RollResult struct {
	Total    int   // Sum of all dice plus bonus
	Rolls    []int // Individual die results
	Bonus    int   // Bonus applied
	Count    int   // Number of dice rolled
	Sides    int   // Number of sides on each die
	RawTotal int   // Sum of dice only
}

// Validate checks that a count/sides pair describes real dice
func Validate(count, sides int) error {
	if count < 1 {
		return errors.InvalidArgumentf("invalid dice count %d", count)
	}
	if sides < 1 {
		return errors.InvalidArgumentf("invalid dice size %d", sides)
	}
	return nil
}

// NewResult sums the drawn dice into a RollResult
func NewResult(rolls []int, count, sides, bonus int) *RollResult {
	raw := 0
	for _, r := range rolls {
		raw += r
	}
	return &RollResult{
		Total:    raw + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
		RawTotal: raw,
	}
}

// String renders the roll as d<sides>(a,b,c)
func (r *RollResult) String() string {
	parts := make([]string, len(r.Rolls))
	for i, roll := range r.Rolls {
		parts[i] = fmt.Sprintf("%d", roll)
	}
	return fmt.Sprintf("d%d(%s)", r.Sides, strings.Join(parts, ","))
}
