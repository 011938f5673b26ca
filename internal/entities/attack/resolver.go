package attack

import (
	"log/slog"

	"github.com/KirkDiggler/tavist/internal/dice"
	"github.com/KirkDiggler/tavist/internal/entities/damage"
	"github.com/KirkDiggler/tavist/internal/errors"
)

// ResolverConfig holds the dependencies of a Resolver
type ResolverConfig struct {
	Roller dice.Roller
	Logger *slog.Logger
}

// Resolver turns roll specifications into concrete draws
type Resolver struct {
	roller dice.Roller
	logger *slog.Logger
}

// NewResolver creates a resolver; a nil roller uses random dice
func NewResolver(cfg *ResolverConfig) *Resolver {
	r := &Resolver{roller: dice.NewRandomRoller(), logger: slog.Default()}
	if cfg == nil {
		return r
	}
	if cfg.Roller != nil {
		r.roller = cfg.Roller
	}
	if cfg.Logger != nil {
		r.logger = cfg.Logger
	}
	return r
}

// AttackRoll is the result of one attack roll
type AttackRoll struct {
	Total int
	Die   int
	Rolls [][]int
}

// RollAttack draws the d20 and any extra dice, then adds every bonus
func (r *Resolver) RollAttack(spec AttackSpec) (*AttackRoll, error) {
	d20, err := r.roller.Roll(1, AttackDieSides, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll attack die")
	}

	result := &AttackRoll{
		Total: d20.Total + spec.Bonus(),
		Die:   d20.Rolls[0],
		Rolls: [][]int{d20.Rolls},
	}

	for _, d := range spec.Dice {
		extra, err := r.roller.Roll(d.Count, d.Sides, 0)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s dice", d.Name())
		}
		result.Total += extra.Total
		result.Rolls = append(result.Rolls, extra.Rolls)
	}

	return result, nil
}

// DamageRoll is the result of one damage roll
type DamageRoll struct {
	Total     int
	Breakdown damage.Breakdown
	Rolls     [][]int
}

// RollDamage draws the damage dice; on a critical, weapon dice are rolled twice as often
// and every bonus counts double. Zero buckets are dropped from the breakdown.
func (r *Resolver) RollDamage(spec DamageSpec, critical bool) (*DamageRoll, error) {
	breakdown := damage.Breakdown{}
	rolls := make([][]int, 0, len(spec.Dice))

	for _, d := range spec.Dice {
		count := d.Count
		if critical && d.WeaponDie {
			count *= 2
		}
		result, err := r.roller.Roll(count, d.Sides, 0)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll %s damage", d.Name())
		}
		breakdown.Add(spec.SourceFor(d), result.Total)
		rolls = append(rolls, result.Rolls)
	}

	multiplier := 1
	if critical {
		multiplier = 2
	}
	for _, b := range spec.Bonuses {
		breakdown.Add(spec.BonusSource(b), b.Value*multiplier)
	}

	breakdown = breakdown.Compact()
	return &DamageRoll{
		Total:     breakdown.Total(),
		Breakdown: breakdown,
		Rolls:     rolls,
	}, nil
}

// ResolveSwing rolls the attack, the confirmation on a threat, and both damage variants.
// Damage is always rolled normal and critical; callers pick one once the AC is known.
func (r *Resolver) ResolveSwing(atk AttackSpec, dmg DamageSpec, label string) (*Outcome, error) {
	attackRoll, err := r.RollAttack(atk)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{
		Label:         label,
		AttackTotal:   attackRoll.Total,
		AttackDie:     attackRoll.Die,
		IsThreat:      attackRoll.Die >= atk.CritThreshold,
		NaturalOne:    attackRoll.Die == 1,
		NaturalTwenty: attackRoll.Die == AttackDieSides,
	}

	if outcome.IsThreat {
		confirm, err := r.RollAttack(atk)
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll confirmation")
		}
		total := confirm.Total
		outcome.ConfirmTotal = &total
	}

	normal, err := r.RollDamage(dmg, false)
	if err != nil {
		return nil, err
	}
	crit, err := r.RollDamage(dmg, true)
	if err != nil {
		return nil, err
	}

	outcome.DamageNormal = normal.Total
	outcome.BreakdownNormal = normal.Breakdown
	outcome.DamageCritical = crit.Total
	outcome.BreakdownCritical = crit.Breakdown
	outcome.Detail = &SwingDetail{
		AttackBonuses: atk.Bonuses,
		DamageType:    dmg.Type,
		DamageDice:    dmg.Dice,
		DamageBonuses: dmg.Bonuses,
		NormalRolls:   normal.Rolls,
		CriticalRolls: crit.Rolls,
	}

	r.logger.Debug("Swing resolved",
		"label", label,
		"attack_total", outcome.AttackTotal,
		"attack_die", outcome.AttackDie,
		"threat", outcome.IsThreat,
		"damage_normal", outcome.DamageNormal,
		"damage_critical", outcome.DamageCritical,
	)

	return outcome, nil
}
