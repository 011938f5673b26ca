package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/tavist/internal/character"
	"github.com/KirkDiggler/tavist/internal/modifiers"
)

func value(t *testing.T, c *character.Character, id modifiers.ID) int {
	t.Helper()
	b, ok := c.Bonus(id)
	require.True(t, ok, "bonus %s not registered", id)
	return b.Value
}

func TestPowerAttackScaling(t *testing.T) {
	tests := []struct {
		name        string
		twoHanded   bool
		powerAttack int
		wantPenalty int
		wantPrimary int
		wantOffHand int
	}{
		{name: "two-handed doubles", twoHanded: true, powerAttack: 6, wantPenalty: -6, wantPrimary: 12, wantOffHand: 0},
		{name: "dual-wield halves off hand", twoHanded: false, powerAttack: 6, wantPenalty: -6, wantPrimary: 6, wantOffHand: 3},
		{name: "odd value floors", twoHanded: false, powerAttack: 5, wantPenalty: -5, wantPrimary: 5, wantOffHand: 2},
		{name: "negative clamps", twoHanded: false, powerAttack: -3, wantPenalty: 0, wantPrimary: 0, wantOffHand: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := character.New()
			c.SetTwoHanded(tt.twoHanded)
			c.SetPowerAttack(tt.powerAttack)

			assert.Equal(t, tt.wantPenalty, value(t, c, character.IDPowerAttackPenalty))
			assert.Equal(t, tt.wantPrimary, value(t, c, character.IDPrimaryPowerAttack))
			assert.Equal(t, tt.wantOffHand, value(t, c, character.IDOffHandPowerAttack))
		})
	}
}

func TestSetTwoHanded_ReappliesPowerAttack(t *testing.T) {
	c := character.New()
	c.SetPowerAttack(6)
	c.SetTwoHanded(true)

	assert.Equal(t, 12, value(t, c, character.IDPrimaryPowerAttack))
	assert.Equal(t, 0, value(t, c, character.IDOffHandPowerAttack))
	assert.Equal(t, 0, value(t, c, character.IDTwoWeaponPenalty))
	assert.Equal(t, 6, value(t, c, character.IDPrimaryAbility))
	assert.Equal(t, 0, value(t, c, character.IDOffHandAbility))

	c.SetTwoHanded(false)

	assert.Equal(t, 6, value(t, c, character.IDPrimaryPowerAttack))
	assert.Equal(t, 3, value(t, c, character.IDOffHandPowerAttack))
	assert.Equal(t, -2, value(t, c, character.IDTwoWeaponPenalty))
	assert.Equal(t, 4, value(t, c, character.IDPrimaryAbility))
	assert.Equal(t, 2, value(t, c, character.IDOffHandAbility))
}

func TestSetFatigued(t *testing.T) {
	c := character.New()

	c.SetFatigued(true)
	assert.Equal(t, -2, value(t, c, character.IDFatiguePenalty))
	assert.Equal(t, -1, value(t, c, character.IDPrimaryFatigue))
	assert.Equal(t, -1, value(t, c, character.IDOffHandFatigue))

	c.SetTwoHanded(true)
	assert.Equal(t, -1, value(t, c, character.IDPrimaryFatigue))
	assert.Equal(t, 0, value(t, c, character.IDOffHandFatigue))

	c.SetFatigued(false)
	assert.Equal(t, 0, value(t, c, character.IDFatiguePenalty))
	assert.Equal(t, 0, value(t, c, character.IDPrimaryFatigue))
}

func TestModeSwitchDoesNotFatigue(t *testing.T) {
	c := character.New()
	c.SetTwoHanded(true)
	c.SetTwoHanded(false)

	assert.Equal(t, 0, value(t, c, character.IDPrimaryFatigue))
	assert.Equal(t, 0, value(t, c, character.IDOffHandFatigue))
}

func TestSetExternalStr(t *testing.T) {
	tests := []struct {
		in          int
		wantPrimary int
		wantOffHand int
	}{
		{in: 4, wantPrimary: 4, wantOffHand: 2},
		{in: 3, wantPrimary: 3, wantOffHand: 1},
		{in: -3, wantPrimary: -3, wantOffHand: -2},
		{in: 0, wantPrimary: 0, wantOffHand: 0},
	}

	for _, tt := range tests {
		c := character.New()
		c.SetExternalStr(tt.in)
		assert.Equal(t, tt.wantPrimary, value(t, c, character.IDPrimaryExternalStr), "ext-str %d", tt.in)
		assert.Equal(t, tt.wantOffHand, value(t, c, character.IDOffHandExternalStr), "ext-str %d", tt.in)
	}
}

func TestSwing_SharedBonusesSeeChanges(t *testing.T) {
	c := character.New()
	before := c.Swing(character.Primary).Attack.Bonus()

	c.SetExternalHit(3)
	c.SetPowerAttack(2)

	assert.Equal(t, before+1, c.Swing(character.Primary).Attack.Bonus())
	assert.Equal(t, c.Swing(character.OffHand).Attack.Bonus()+1, c.Swing(character.Primary).Attack.Bonus())
}

func TestSwing_DefaultBuild(t *testing.T) {
	c := character.New()

	primary := c.Swing(character.Primary)
	// enh 2 + focus 1 + ability 4 + bab 12 + two-weapon -2
	assert.Equal(t, 17, primary.Attack.Bonus())
	assert.Equal(t, character.PrimaryCritThreshold, primary.Attack.CritThreshold)
	assert.Len(t, primary.Damage.Dice, 2)
	// enh 2 + ability 4
	assert.Equal(t, 6, modifiers.Sum(primary.Damage.Bonuses))

	off := c.Swing(character.OffHand)
	assert.Equal(t, 16, off.Attack.Bonus())
	assert.Equal(t, character.OffHandCritThreshold, off.Attack.CritThreshold)
	assert.Equal(t, 3, modifiers.Sum(off.Damage.Bonuses))
}

func TestToggles_ChangeRollContents(t *testing.T) {
	c := character.New()

	c.SetPowerSurge(true)
	c.SetEvilOpponent(true)

	primary := c.Swing(character.Primary)
	assert.Equal(t, 21, primary.Attack.Bonus())
	assert.Len(t, primary.Damage.Dice, 3)
	assert.Equal(t, character.HolyLabel, primary.Damage.Dice[2].Label)
	assert.Equal(t, 10, modifiers.Sum(primary.Damage.Bonuses))

	off := c.Swing(character.OffHand)
	assert.Equal(t, 20, off.Attack.Bonus())
	assert.Len(t, off.Damage.Dice, 2)
	assert.Equal(t, 5, modifiers.Sum(off.Damage.Bonuses))

	c.SetTwoHanded(true)
	// enh 2 + ability 6 + surge 6
	assert.Equal(t, 14, modifiers.Sum(c.Swing(character.Primary).Damage.Bonuses))

	c.SetPowerSurge(false)
	c.SetEvilOpponent(false)
	assert.Len(t, c.Swing(character.Primary).Damage.Dice, 2)
}

func TestSetCombatExpertise(t *testing.T) {
	c := character.New()
	c.SetCombatExpertise(3)
	assert.Equal(t, -3, value(t, c, character.IDExpertise))

	c.SetCombatExpertise(-1)
	assert.Equal(t, 0, value(t, c, character.IDExpertise))
	assert.Equal(t, 0, c.Settings().Expertise)
}

func TestApply_WholeSettings(t *testing.T) {
	c := character.New()
	want := character.Settings{PowerAttack: 4, TwoHanded: true, Fatigued: true, ExternalHit: 1, Surge: true}

	c.Apply(want)

	assert.Equal(t, want, c.Settings())
	assert.Equal(t, 8, value(t, c, character.IDPrimaryPowerAttack))
	assert.Equal(t, -2, value(t, c, character.IDFatiguePenalty))
}

func TestClone_IsIndependent(t *testing.T) {
	c := character.New()
	c.SetPowerAttack(4)

	clone := c.Clone()
	clone.SetTwoHanded(true)

	assert.False(t, c.Settings().TwoHanded)
	assert.Equal(t, 4, value(t, c, character.IDPrimaryPowerAttack))
	assert.Equal(t, -2, value(t, c, character.IDTwoWeaponPenalty))
	assert.Equal(t, 8, value(t, clone, character.IDPrimaryPowerAttack))
}

func TestSwingWithBaseAttack(t *testing.T) {
	c := character.New()

	swing := c.SwingWithBaseAttack(character.Primary, 2)

	assert.Equal(t, 7, swing.Attack.Bonus())
	assert.Equal(t, 17, c.Swing(character.Primary).Attack.Bonus())
}
