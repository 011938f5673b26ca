package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll draws count uniform integers in [1, sides] and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}
