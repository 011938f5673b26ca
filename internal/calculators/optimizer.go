package calculators

import (
	"github.com/KirkDiggler/tavist/internal/character"
)

// DefaultMaxPowerAttack is the highest power attack the optimizer tries
const DefaultMaxPowerAttack = 12

// Evaluation is the expected full-attack damage of one setup
type Evaluation struct {
	PowerAttack int     `yaml:"power_attack"`
	TwoHanded   bool    `yaml:"two_handed"`
	Expected    float64 `yaml:"expected"`
}

// Recommendation is the best setup found, plus the best of each weapon mode
type Recommendation struct {
	Evaluation `yaml:",inline"`

	AC            int        `yaml:"ac"`
	BestDual      Evaluation `yaml:"best_dual"`
	BestTwoHanded Evaluation `yaml:"best_two_handed"`
}

// RecommendInput describes one optimizer run
type RecommendInput struct {
	AC             int
	Bonuses        []int
	OffHandBonus   int
	MaxPowerAttack int
}

// RecommendSetup searches every weapon mode and power attack value in [0, MaxPowerAttack].
// Dual-wield is tried before two-handed and power attack ascends; the first setup
// with strictly greater expected damage wins, so ties keep the earlier one.
func RecommendSetup(c *character.Character, input *RecommendInput) Recommendation {
	rec := Recommendation{AC: input.AC}
	found := false

	for _, twoHanded := range []bool{false, true} {
		modeBest := Evaluation{TwoHanded: twoHanded}
		modeFound := false

		for pa := 0; pa <= input.MaxPowerAttack; pa++ {
			scratch := c.Clone()
			scratch.SetPowerAttack(pa)
			eval := Evaluation{
				PowerAttack: pa,
				TwoHanded:   twoHanded,
				Expected:    ExpectedFullAttack(scratch, input.AC, twoHanded, input.Bonuses, input.OffHandBonus),
			}

			if !modeFound || eval.Expected > modeBest.Expected {
				modeBest = eval
				modeFound = true
			}
			if !found || eval.Expected > rec.Expected {
				rec.Evaluation = eval
				found = true
			}
		}

		if twoHanded {
			rec.BestTwoHanded = modeBest
		} else {
			rec.BestDual = modeBest
		}
	}

	return rec
}
