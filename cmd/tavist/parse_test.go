package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/tavist/internal/errors"
	"github.com/KirkDiggler/tavist/internal/tracking"
)

func TestParseAC(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "number", text: "22", want: 22},
		{name: "padded", text: " 18 ", want: 18},
		{name: "empty", text: "", want: tracking.UnknownUpper},
		{name: "garbage", text: "twenty", want: tracking.UnknownUpper},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAC(tt.text))
		})
	}
}

func TestParseModifier(t *testing.T) {
	assert.Equal(t, -2, parseModifier("-2"))
	assert.Equal(t, 3, parseModifier("+3"))
	assert.Equal(t, 0, parseModifier("two"))
	assert.Equal(t, 0, parseModifier(""))
}

func TestParsePowerAttack(t *testing.T) {
	assert.Equal(t, 0, parsePowerAttack("-4", 12))
	assert.Equal(t, 5, parsePowerAttack("5", 12))
	assert.Equal(t, 12, parsePowerAttack("30", 12))
	assert.Equal(t, 0, parsePowerAttack("lots", 12))
}

func TestParseChoice(t *testing.T) {
	choice, err := parseChoice("Miss\n")
	require.NoError(t, err)
	assert.True(t, choice.AllMissed)

	choice, err = parseChoice(" 20\n")
	require.NoError(t, err)
	assert.Equal(t, tracking.LowestHit(20), choice)

	_, err = parseChoice("maybe")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestOptionsSettings(t *testing.T) {
	o := options{
		powerAttack: "15",
		twoHanded:   true,
		externalHit: "1",
		externalStr: "-3",
		expertise:   "-1",
		evil:        true,
	}

	s := o.settings(12)

	assert.Equal(t, 12, s.PowerAttack)
	assert.True(t, s.TwoHanded)
	assert.Equal(t, 1, s.ExternalHit)
	assert.Equal(t, -3, s.ExternalStr)
	assert.Equal(t, -1, s.Expertise)
	assert.True(t, s.Evil)
	assert.False(t, s.Surge)
}
