package main

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/tavist/internal/errors"
	"github.com/KirkDiggler/tavist/internal/tracking"
)

// parseAC reads a target AC; anything unparsable means no AC is known
func parseAC(text string) int {
	ac, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return tracking.UnknownUpper
	}
	return ac
}

// parseModifier reads a signed modifier, defaulting to 0
func parseModifier(text string) int {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return n
}

// parsePowerAttack reads a power attack amount clamped to [0, max]
func parsePowerAttack(text string, max int) int {
	n := parseModifier(text)
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

// parseChoice reads an answer to a disambiguation: "miss" or the lowest total that hit
func parseChoice(text string) (tracking.Choice, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	switch text {
	case "miss", "m", "none":
		return tracking.AllMissed(), nil
	}
	total, err := strconv.Atoi(text)
	if err != nil {
		return tracking.Choice{}, errors.InvalidArgumentf("expected 'miss' or an attack total, got %q", text)
	}
	return tracking.LowestHit(total), nil
}
