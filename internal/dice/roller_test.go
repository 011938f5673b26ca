package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/tavist/internal/dice"
	mockdice "github.com/KirkDiggler/tavist/internal/dice/mock"
	"github.com/KirkDiggler/tavist/internal/errors"
)

// fixedSource satisfies the toolkit dice.Roller interface with canned draws
type fixedSource struct {
	draws []int
	calls int
}

func (s *fixedSource) Roll(_ int) (int, error) {
	v := s.draws[s.calls]
	s.calls++
	return v, nil
}

func (s *fixedSource) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = s.draws[s.calls]
		s.calls++
	}
	return out, nil
}

func TestManualMockRoller_Roll(t *testing.T) {
	tests := []struct {
		name       string
		setupRolls []int
		count      int
		sides      int
		bonus      int
		wantTotal  int
		wantRolls  []int
		wantErr    func(error) bool
	}{
		{
			name:       "single d20 roll",
			setupRolls: []int{15},
			count:      1,
			sides:      20,
			wantTotal:  15,
			wantRolls:  []int{15},
		},
		{
			name:       "2d6+3",
			setupRolls: []int{4, 5},
			count:      2,
			sides:      6,
			bonus:      3,
			wantTotal:  12, // 4+5+3
			wantRolls:  []int{4, 5},
		},
		{
			name:       "negative bonus",
			setupRolls: []int{2},
			count:      1,
			sides:      10,
			bonus:      -4,
			wantTotal:  -2,
			wantRolls:  []int{2},
		},
		{
			name:       "not enough rolls",
			setupRolls: []int{4},
			count:      2,
			sides:      6,
			wantErr:    errors.IsInternal,
		},
		{
			name:       "invalid roll for die size",
			setupRolls: []int{7},
			count:      1,
			sides:      6,
			wantErr:    errors.IsInvalidArgument,
		},
		{
			name:    "zero dice",
			count:   0,
			sides:   6,
			wantErr: errors.IsInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := mockdice.NewManualMockRoller(tt.setupRolls...)

			result, err := roller.Roll(tt.count, tt.sides, tt.bonus)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error kind: %v", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, tt.wantRolls, result.Rolls)
			assert.Equal(t, tt.wantTotal-tt.bonus, result.RawTotal)
		})
	}
}

func TestManualMockRoller_SequentialRolls(t *testing.T) {
	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{20, 1})
	roller.SetNextRoll(8)

	result, err := roller.Roll(1, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{20}, result.Rolls)

	result, err = roller.Roll(1, 20, 5)
	require.NoError(t, err)
	assert.Equal(t, 6, result.Total)

	assert.Equal(t, 1, roller.Remaining())
	result, err = roller.Roll(1, 8, 3)
	require.NoError(t, err)
	assert.Equal(t, 11, result.Total)
	assert.Equal(t, "d8(8)", result.String())

	_, err = roller.Roll(1, 20, 0)
	assert.True(t, errors.IsInternal(err))
}

func TestRandomRoller_WithSource(t *testing.T) {
	source := &fixedSource{draws: []int{3, 6, 1}}
	roller := dice.NewRollerWithSource(source)

	result, err := roller.Roll(3, 6, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6, 1}, result.Rolls)
	assert.Equal(t, 12, result.Total)
	assert.Equal(t, 10, result.RawTotal)
	assert.Equal(t, 3, result.Count)
	assert.Equal(t, 6, result.Sides)
}

func TestRandomRoller_RejectsInvalidDice(t *testing.T) {
	roller := dice.NewRandomRoller()

	_, err := roller.Roll(1, 0, 0)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRandomRoller_BasicFunctionality(t *testing.T) {
	// Only bounds can be checked on real draws
	roller := dice.NewRandomRoller()

	for i := 0; i < 50; i++ {
		result, err := roller.Roll(2, 6, 3)
		require.NoError(t, err)
		assert.Len(t, result.Rolls, 2)
		assert.GreaterOrEqual(t, result.Total, 5)
		assert.LessOrEqual(t, result.Total, 15)
	}
}
