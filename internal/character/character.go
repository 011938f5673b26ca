package character

import (
	"github.com/KirkDiggler/tavist/internal/entities/attack"
	"github.com/KirkDiggler/tavist/internal/modifiers"
)

// Hand selects one of the two attack routes
type Hand int

const (
	Primary Hand = iota
	OffHand
)

func (h Hand) String() string {
	if h == OffHand {
		return "off-hand"
	}
	return "primary"
}

// Settings is every user-controlled input of the build. All derived bonuses are
// a function of this value alone.
type Settings struct {
	PowerAttack int  `yaml:"power_attack"`
	TwoHanded   bool `yaml:"two_handed"`
	Fatigued    bool `yaml:"fatigued"`
	ExternalHit int  `yaml:"external_hit"`
	ExternalStr int  `yaml:"external_str"`
	Surge       bool `yaml:"surge"`
	Evil        bool `yaml:"evil"`
	Expertise   int  `yaml:"expertise"`
}

// Character is the Tavist build: a katana in the primary hand and a wakizashi in the
// off hand, sharing one modifier table. It is not safe for concurrent use.
type Character struct {
	table    *modifiers.Table
	settings Settings
}

// New creates the build with default settings: dual-wielding, no power attack
func New() *Character {
	c := &Character{table: modifiers.NewTable()}
	for _, b := range baseline() {
		c.table.Add(b)
	}
	c.apply(Settings{})
	return c
}

// Settings returns the current settings
func (c *Character) Settings() Settings {
	return c.settings
}

// Apply replaces every setting at once
func (c *Character) Apply(s Settings) {
	c.apply(s)
}

// SetPowerAttack trades n points of attack for damage, clamped at zero
func (c *Character) SetPowerAttack(n int) {
	s := c.settings
	s.PowerAttack = n
	c.apply(s)
}

// SetTwoHanded switches between two-handed and dual-wield modes
func (c *Character) SetTwoHanded(on bool) {
	s := c.settings
	s.TwoHanded = on
	c.apply(s)
}

// SetFatigued toggles the fatigued condition
func (c *Character) SetFatigued(on bool) {
	s := c.settings
	s.Fatigued = on
	c.apply(s)
}

// SetExternalHit sets the externally granted attack bonus
func (c *Character) SetExternalHit(v int) {
	s := c.settings
	s.ExternalHit = v
	c.apply(s)
}

// SetExternalStr sets the externally granted strength damage bonus; the off hand gets half
func (c *Character) SetExternalStr(v int) {
	s := c.settings
	s.ExternalStr = v
	c.apply(s)
}

// SetPowerSurge toggles the power surge bonus pair
func (c *Character) SetPowerSurge(on bool) {
	s := c.settings
	s.Surge = on
	c.apply(s)
}

// SetEvilOpponent toggles the holy damage dice on the primary weapon
func (c *Character) SetEvilOpponent(on bool) {
	s := c.settings
	s.Evil = on
	c.apply(s)
}

// SetCombatExpertise trades n points of attack for AC, clamped at zero
func (c *Character) SetCombatExpertise(n int) {
	s := c.settings
	s.Expertise = n
	c.apply(s)
}

// Bonus returns a registered bonus
func (c *Character) Bonus(id modifiers.ID) (modifiers.Bonus, bool) {
	return c.table.Get(id)
}

// Clone returns an independent copy; changes to either do not affect the other
func (c *Character) Clone() *Character {
	return &Character{
		table:    c.table.Clone(),
		settings: c.settings,
	}
}

// Swing snapshots the attack and damage rolls of a hand
func (c *Character) Swing(h Hand) attack.Swing {
	if h == OffHand {
		return c.offHand()
	}
	return c.primary()
}

// SwingWithBaseAttack snapshots a hand's rolls with the base attack bonus replaced,
// leaving the character untouched
func (c *Character) SwingWithBaseAttack(h Hand, bab int) attack.Swing {
	swing := c.Swing(h)
	for i := range swing.Attack.Bonuses {
		if swing.Attack.Bonuses[i].ID == IDBaseAttack {
			swing.Attack.Bonuses[i].Value = bab
		}
	}
	return swing
}

func (c *Character) primary() attack.Swing {
	attackIDs := []modifiers.ID{IDPrimaryEnhancementAttack, IDPrimaryWeaponFocus}
	damageIDs := []modifiers.ID{
		IDPrimaryEnhancementDamage,
		IDPrimaryAbility,
		IDPrimaryExternalStr,
		IDPrimaryFatigue,
		IDPrimaryPowerAttack,
	}
	if c.settings.Surge {
		attackIDs = append(attackIDs, IDPrimarySurgeAttack)
		damageIDs = append(damageIDs, IDPrimarySurge)
	}
	attackIDs = append(attackIDs, sharedAttackIDs...)

	dice := []attack.DiceSpec{
		{Count: 1, Sides: 10, Label: "weapon", WeaponDie: true},
		{Count: 1, Sides: 6, Label: MercifulLabel},
	}
	if c.settings.Evil {
		dice = append(dice, attack.DiceSpec{Count: 2, Sides: 6, Label: HolyLabel})
	}

	return attack.Swing{
		Attack: attack.AttackSpec{
			Label:         PrimaryWeapon,
			CritThreshold: PrimaryCritThreshold,
			Bonuses:       c.table.Resolve(attackIDs),
		},
		Damage: attack.DamageSpec{
			Label:   PrimaryWeapon,
			Type:    PrimaryDamageType,
			Dice:    dice,
			Bonuses: c.table.Resolve(damageIDs),
		},
	}
}

func (c *Character) offHand() attack.Swing {
	attackIDs := []modifiers.ID{IDOffHandEnhancementAttack}
	damageIDs := []modifiers.ID{
		IDOffHandEnhancementDamage,
		IDOffHandAbility,
		IDOffHandExternalStr,
		IDOffHandFatigue,
		IDOffHandPowerAttack,
	}
	if c.settings.Surge {
		attackIDs = append(attackIDs, IDOffHandSurgeAttack)
		damageIDs = append(damageIDs, IDOffHandSurge)
	}
	attackIDs = append(attackIDs, sharedAttackIDs...)

	return attack.Swing{
		Attack: attack.AttackSpec{
			Label:         OffHandWeapon,
			CritThreshold: OffHandCritThreshold,
			Bonuses:       c.table.Resolve(attackIDs),
		},
		Damage: attack.DamageSpec{
			Label: OffHandWeapon,
			Type:  OffHandDamageType,
			Dice: []attack.DiceSpec{
				{Count: 1, Sides: 6, Label: "weapon", WeaponDie: true},
				{Count: 1, Sides: 6, Label: MercifulLabel},
			},
			Bonuses: c.table.Resolve(damageIDs),
		},
	}
}
