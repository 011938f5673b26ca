package dice

import (
	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/tavist/internal/errors"
)

// randomRoller implements Roller on top of the rpg-toolkit dice source
type randomRoller struct {
	source toolkitdice.Roller
}

// NewRandomRoller creates a roller backed by the toolkit's default source
func NewRandomRoller() Roller {
	return &randomRoller{source: toolkitdice.DefaultRoller}
}

// NewRollerWithSource creates a roller that draws from the given toolkit source
func NewRollerWithSource(source toolkitdice.Roller) Roller {
	if source == nil {
		source = toolkitdice.DefaultRoller
	}
	return &randomRoller{source: source}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if err := Validate(count, sides); err != nil {
		return nil, err
	}

	rolls, err := r.source.RollN(count, sides)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %dd%d", count, sides)
	}

	return NewResult(rolls, count, sides, bonus), nil
}
