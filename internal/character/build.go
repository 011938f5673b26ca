package character

import (
	"github.com/KirkDiggler/tavist/internal/entities/damage"
	"github.com/KirkDiggler/tavist/internal/modifiers"
)

// Bonus identifiers of the Tavist build
const (
	// shared by both weapons' attack rolls
	IDAbilityAttack      modifiers.ID = "ability-attack"
	IDBaseAttack         modifiers.ID = "base-attack"
	IDExpertise          modifiers.ID = "expertise"
	IDTwoWeaponPenalty   modifiers.ID = "two-weapon-penalty"
	IDPowerAttackPenalty modifiers.ID = "power-attack-penalty"
	IDFatiguePenalty     modifiers.ID = "fatigue-penalty"
	IDExternalHit        modifiers.ID = "external-hit"

	IDPrimaryEnhancementAttack modifiers.ID = "primary-enhancement-attack"
	IDPrimaryWeaponFocus       modifiers.ID = "primary-weapon-focus"
	IDPrimarySurgeAttack       modifiers.ID = "primary-surge-attack"
	IDOffHandEnhancementAttack modifiers.ID = "off-hand-enhancement-attack"
	IDOffHandSurgeAttack       modifiers.ID = "off-hand-surge-attack"

	IDPrimaryEnhancementDamage modifiers.ID = "primary-enhancement-damage"
	IDPrimaryAbility           modifiers.ID = "primary-ability"
	IDPrimaryExternalStr       modifiers.ID = "primary-external-str"
	IDPrimaryFatigue           modifiers.ID = "primary-fatigue"
	IDPrimaryPowerAttack       modifiers.ID = "primary-power-attack"
	IDPrimarySurge             modifiers.ID = "primary-surge"

	IDOffHandEnhancementDamage modifiers.ID = "off-hand-enhancement-damage"
	IDOffHandAbility           modifiers.ID = "off-hand-ability"
	IDOffHandExternalStr       modifiers.ID = "off-hand-external-str"
	IDOffHandFatigue           modifiers.ID = "off-hand-fatigue"
	IDOffHandPowerAttack       modifiers.ID = "off-hand-power-attack"
	IDOffHandSurge             modifiers.ID = "off-hand-surge"
)

const (
	// DefaultBaseAttack is the base attack bonus of the first swing
	DefaultBaseAttack = 12

	PrimaryCritThreshold = 17 // keen bastard sword
	OffHandCritThreshold = 19

	PrimaryWeapon = "katana"
	OffHandWeapon = "wakizashi"

	PrimaryDamageType = damage.TypeSlashing
	OffHandDamageType = damage.TypePiercing

	HolyLabel     = "holy"
	MercifulLabel = "merciful"
	SurgeLabel    = "power-surge"
)

// baseline registers every bonus with the values of an unconfigured character.
// Derived values are overwritten by apply.
func baseline() []modifiers.Bonus {
	return []modifiers.Bonus{
		{ID: IDAbilityAttack, Value: 4, Category: modifiers.CategoryAbility},
		{ID: IDBaseAttack, Value: DefaultBaseAttack, Category: modifiers.CategoryBaseAttack},
		{ID: IDExpertise, Category: modifiers.CategoryUnnamed, Label: "expertise"},
		{ID: IDTwoWeaponPenalty, Value: -2, Category: modifiers.CategoryTwoWeaponPenalty},
		{ID: IDPowerAttackPenalty, Category: modifiers.CategoryPowerAttack, Label: "power attack"},
		{ID: IDFatiguePenalty, Category: modifiers.CategoryUnnamed, Label: "fatigued"},
		{ID: IDExternalHit, Category: modifiers.CategoryUnnamed, Label: "ext-hit"},

		{ID: IDPrimaryEnhancementAttack, Value: 2, Category: modifiers.CategoryEnhancement},
		{ID: IDPrimaryWeaponFocus, Value: 1, Category: modifiers.CategoryWeaponFocus},
		{ID: IDPrimarySurgeAttack, Value: 4, Category: modifiers.CategoryAbility, Label: SurgeLabel},
		{ID: IDOffHandEnhancementAttack, Value: 2, Category: modifiers.CategoryEnhancement},
		{ID: IDOffHandSurgeAttack, Value: 4, Category: modifiers.CategoryAbility, Label: SurgeLabel},

		{ID: IDPrimaryEnhancementDamage, Value: 2, Category: modifiers.CategoryEnhancement},
		{ID: IDPrimaryAbility, Value: 4, Category: modifiers.CategoryAbility},
		{ID: IDPrimaryExternalStr, Category: modifiers.CategoryAbility, Label: "ext-str"},
		{ID: IDPrimaryFatigue, Category: modifiers.CategoryAbility, Label: "fatigue"},
		{ID: IDPrimaryPowerAttack, Category: modifiers.CategoryPowerAttack, Label: "power attack"},
		{ID: IDPrimarySurge, Value: 4, Category: modifiers.CategoryAbility, Label: SurgeLabel},

		{ID: IDOffHandEnhancementDamage, Value: 1, Category: modifiers.CategoryEnhancement},
		{ID: IDOffHandAbility, Value: 2, Category: modifiers.CategoryAbility},
		{ID: IDOffHandExternalStr, Category: modifiers.CategoryAbility, Label: "ext-str"},
		{ID: IDOffHandFatigue, Category: modifiers.CategoryAbility, Label: "fatigue"},
		{ID: IDOffHandPowerAttack, Category: modifiers.CategoryPowerAttack, Label: "power attack"},
		{ID: IDOffHandSurge, Value: 2, Category: modifiers.CategoryAbility, Label: SurgeLabel},
	}
}

var sharedAttackIDs = []modifiers.ID{
	IDAbilityAttack,
	IDBaseAttack,
	IDExpertise,
	IDTwoWeaponPenalty,
	IDPowerAttackPenalty,
	IDFatiguePenalty,
	IDExternalHit,
}
