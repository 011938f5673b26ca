package tracking

import (
	"log/slog"
)

// UnknownUpper is the upper bound before any hit is observed
const UnknownUpper = 99

// Bounds is a snapshot of the tracked interval (Lower, Upper] and the damage dealt so far
type Bounds struct {
	Lower      int `yaml:"lower"`
	Upper      int `yaml:"upper"`
	DamageDone int `yaml:"damage_done"`
}

// Known reports whether any hit has bounded the AC from above
func (b Bounds) Known() bool {
	return b.Upper != UnknownUpper
}

// Solved reports whether exactly one AC remains
func (b Bounds) Solved() bool {
	return b.Known() && b.Upper-b.Lower <= 1
}

// Estimate is the lower bound until a hit is seen, the AC once solved, and the
// upper-rounded midpoint otherwise
func (b Bounds) Estimate() int {
	if !b.Known() {
		return b.Lower
	}
	if b.Upper-b.Lower <= 1 {
		return b.Upper
	}
	return (b.Lower + b.Upper + 1) / 2
}

// Inside reports whether v lies strictly between the bounds
func (b Bounds) Inside(v int) bool {
	return b.Lower < v && v < b.Upper
}

// Config holds the dependencies of a Tracker
type Config struct {
	Logger *slog.Logger
}

// Tracker narrows the opponent's AC across rounds. Lower < Upper always holds;
// observations that would break it are clamped and logged.
type Tracker struct {
	bounds Bounds
	logger *slog.Logger
}

// New creates a tracker in the unknown state
func New(cfg *Config) *Tracker {
	t := &Tracker{logger: slog.Default()}
	if cfg != nil && cfg.Logger != nil {
		t.logger = cfg.Logger
	}
	t.Reset()
	return t
}

// Bounds returns a copy of the current state
func (t *Tracker) Bounds() Bounds {
	return t.bounds
}

// DamageDone is the damage accrued against the current opponent
func (t *Tracker) DamageDone() int {
	return t.bounds.DamageDone
}

// Estimate returns the current best guess of the AC
func (t *Tracker) Estimate() int {
	return t.bounds.Estimate()
}

// Reset forgets the opponent
func (t *Tracker) Reset() {
	t.bounds = Bounds{Lower: 0, Upper: UnknownUpper}
}

// RecordHit lowers the upper bound to v
func (t *Tracker) RecordHit(v int) {
	upper := min(t.bounds.Upper, v)
	if upper <= t.bounds.Lower {
		t.logger.Warn("Hit contradicts tracked bounds",
			"total", v,
			"lower", t.bounds.Lower,
			"upper", t.bounds.Upper,
		)
		upper = t.bounds.Lower + 1
	}
	t.bounds.Upper = upper
}

// RecordMiss raises the lower bound to v
func (t *Tracker) RecordMiss(v int) {
	lower := max(t.bounds.Lower, v)
	if lower >= t.bounds.Upper {
		t.logger.Warn("Miss contradicts tracked bounds",
			"total", v,
			"lower", t.bounds.Lower,
			"upper", t.bounds.Upper,
		)
		lower = t.bounds.Upper - 1
	}
	t.bounds.Lower = lower
}

// AddDamage accrues damage and returns the amount added; negative amounts are ignored
func (t *Tracker) AddDamage(n int) int {
	if n <= 0 {
		return 0
	}
	t.bounds.DamageDone += n
	return n
}
