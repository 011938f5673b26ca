package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/tavist/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Combat CombatConfig
	Log    LogConfig
}

// CombatConfig describes the full attack sequence
type CombatConfig struct {
	AttackBonuses  []int    `env:"TAVIST_ATTACK_BONUSES" envDefault:"12,12,7,2"`
	AttackNames    []string `env:"TAVIST_ATTACK_NAMES" envDefault:"first,speed,second,third"`
	OffHandBonus   int      `env:"TAVIST_OFFHAND_BONUS" envDefault:"12"`
	MaxPowerAttack int      `env:"TAVIST_MAX_POWER_ATTACK" envDefault:"12"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `env:"TAVIST_LOG_LEVEL" envDefault:"warn"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom loads configuration from the given variables instead of the process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the combat sequence is usable
func (c *Config) Validate() error {
	if len(c.Combat.AttackBonuses) == 0 {
		return errors.InvalidArgument("TAVIST_ATTACK_BONUSES must list at least one attack")
	}
	if len(c.Combat.AttackNames) != len(c.Combat.AttackBonuses) {
		return errors.InvalidArgumentf("TAVIST_ATTACK_NAMES has %d names for %d attacks",
			len(c.Combat.AttackNames), len(c.Combat.AttackBonuses))
	}
	if c.Combat.MaxPowerAttack < 0 {
		return errors.InvalidArgumentf("TAVIST_MAX_POWER_ATTACK must not be negative, got %d", c.Combat.MaxPowerAttack)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses the configured level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(l.Level))); err != nil {
		return slog.LevelWarn, errors.InvalidArgumentf("unknown log level %q", l.Level)
	}
	return level, nil
}
