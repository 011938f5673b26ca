package character

import (
	"github.com/KirkDiggler/tavist/internal/modifiers"
)

// apply recomputes every derived bonus from s in one pass
func (c *Character) apply(s Settings) {
	s.PowerAttack = max(0, s.PowerAttack)
	s.Expertise = max(0, s.Expertise)

	values := derive(s)
	for id, v := range values {
		// every derived ID is registered in baseline
		_ = c.table.Set(id, v)
	}
	c.settings = s
}

func derive(s Settings) map[modifiers.ID]int {
	v := map[modifiers.ID]int{
		IDPowerAttackPenalty: -s.PowerAttack,
		IDExpertise:          -s.Expertise,
		IDExternalHit:        s.ExternalHit,
		IDPrimaryExternalStr: s.ExternalStr,
		IDOffHandExternalStr: floorHalf(s.ExternalStr),
	}

	if s.TwoHanded {
		v[IDTwoWeaponPenalty] = 0
		v[IDPrimaryAbility] = 6
		v[IDOffHandAbility] = 0
		v[IDPrimaryPowerAttack] = s.PowerAttack * 2
		v[IDOffHandPowerAttack] = 0
		v[IDPrimarySurge] = 6
		v[IDOffHandSurge] = 0
	} else {
		v[IDTwoWeaponPenalty] = -2
		v[IDPrimaryAbility] = 4
		v[IDOffHandAbility] = 2
		v[IDPrimaryPowerAttack] = s.PowerAttack
		v[IDOffHandPowerAttack] = s.PowerAttack / 2
		v[IDPrimarySurge] = 4
		v[IDOffHandSurge] = 2
	}

	v[IDFatiguePenalty] = 0
	v[IDPrimaryFatigue] = 0
	v[IDOffHandFatigue] = 0
	if s.Fatigued {
		v[IDFatiguePenalty] = -2
		v[IDPrimaryFatigue] = -1
		if !s.TwoHanded {
			v[IDOffHandFatigue] = -1
		}
	}

	return v
}

// floorHalf halves toward negative infinity
func floorHalf(n int) int {
	if n < 0 && n%2 != 0 {
		return n/2 - 1
	}
	return n / 2
}
