package services

import (
	"log/slog"

	"github.com/KirkDiggler/tavist/internal/calculators"
	"github.com/KirkDiggler/tavist/internal/character"
	"github.com/KirkDiggler/tavist/internal/config"
	"github.com/KirkDiggler/tavist/internal/dice"
	"github.com/KirkDiggler/tavist/internal/entities/attack"
	"github.com/KirkDiggler/tavist/internal/events"
	"github.com/KirkDiggler/tavist/internal/services/combat"
	"github.com/KirkDiggler/tavist/internal/tracking"
	"github.com/KirkDiggler/tavist/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CombatService combat.Service
	EventBus      *events.Bus
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	Combat        config.CombatConfig
	Roller        dice.Roller
	UUIDGenerator uuid.Generator
	Logger        *slog.Logger
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// Use random dice if none provided
	roller := cfg.Roller
	if roller == nil {
		roller = dice.NewRandomRoller()
	}

	combatCfg := cfg.Combat
	if len(combatCfg.AttackBonuses) == 0 {
		// nothing loaded: default full attack and power attack limit
		combatCfg.MaxPowerAttack = calculators.DefaultMaxPowerAttack
	}

	bus := events.NewBus(logger)

	combatService := combat.NewService(&combat.ServiceConfig{
		Character:      character.New(),
		Resolver:       attack.NewResolver(&attack.ResolverConfig{Roller: roller, Logger: logger}),
		Tracker:        tracking.New(&tracking.Config{Logger: logger}),
		Bus:            bus,
		UUIDGenerator:  cfg.UUIDGenerator,
		Logger:         logger,
		AttackBonuses:  combatCfg.AttackBonuses,
		AttackNames:    combatCfg.AttackNames,
		OffHandBonus:   combatCfg.OffHandBonus,
		MaxPowerAttack: combatCfg.MaxPowerAttack,
	})

	return &Provider{
		CombatService: combatService,
		EventBus:      bus,
	}
}
