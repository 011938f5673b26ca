package modifiers

// ID identifies a bonus in a Table. Roll specifications hold IDs, never copies,
// so every roll that lists the same ID sees a value change made through the table.
type ID string

// Category is the named bonus type; bonuses of the same category share a breakdown bucket
type Category string

const (
	CategoryUnnamed          Category = "unnamed"
	CategoryBaseAttack       Category = "base-attack-bonus"
	CategoryAbility          Category = "ability"
	CategoryEnhancement      Category = "enhancement"
	CategoryTwoWeaponPenalty Category = "two-weapons"
	CategoryWeaponFocus      Category = "weapon-focus"
	CategoryPowerAttack      Category = "power-attack"
)

// Bonus is a signed modifier. Bounds are a caller concern.
type Bonus struct {
	ID       ID
	Value    int
	Category Category
	Label    string
}

// Name is the display name: the category unless unnamed, then the label
func (b Bonus) Name() string {
	if b.Category != CategoryUnnamed && b.Category != "" {
		return string(b.Category)
	}
	if b.Label != "" {
		return b.Label
	}
	return string(CategoryUnnamed)
}

// Sum adds the values of the given bonuses
func Sum(bonuses []Bonus) int {
	total := 0
	for _, b := range bonuses {
		total += b.Value
	}
	return total
}
