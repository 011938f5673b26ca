package main

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/tavist/internal/character"
	"github.com/KirkDiggler/tavist/internal/config"
	"github.com/KirkDiggler/tavist/internal/errors"
	"github.com/KirkDiggler/tavist/internal/services"
	"github.com/KirkDiggler/tavist/internal/services/combat"
)

const (
	outputText = "text"
	outputYAML = "yaml"
)

// options holds the persistent flags
type options struct {
	powerAttack string
	twoHanded   bool
	fatigued    bool
	externalHit string
	externalStr string
	surge       bool
	evil        bool
	expertise   string
	auto        bool
	output      string
}

var opts options

// settings converts the flags into character settings
func (o *options) settings(maxPowerAttack int) character.Settings {
	return character.Settings{
		PowerAttack: parsePowerAttack(o.powerAttack, maxPowerAttack),
		TwoHanded:   o.twoHanded,
		Fatigued:    o.fatigued,
		ExternalHit: parseModifier(o.externalHit),
		ExternalStr: parseModifier(o.externalStr),
		Surge:       o.surge,
		Evil:        o.evil,
		Expertise:   parseModifier(o.expertise),
	}
}

// loadSession reads .env and the environment, then builds a combat service
// configured from the flags
func loadSession(cmd *cobra.Command) (*runner, error) {
	if opts.output != outputText && opts.output != outputYAML {
		return nil, errors.InvalidArgumentf("unknown output format %q", opts.output)
	}

	// .env is optional
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if envErr != nil {
		logger.Debug("No .env file loaded", "error", envErr)
	}

	provider := services.NewProvider(&services.ProviderConfig{
		Combat: cfg.Combat,
		Logger: logger,
	})

	if err := provider.CombatService.ApplySettings(cmd.Context(), opts.settings(cfg.Combat.MaxPowerAttack)); err != nil {
		return nil, err
	}

	r := newRunner(provider, opts.output, cmd.OutOrStdout(), cmd.ErrOrStderr(), cmd.InOrStdin())
	r.auto = opts.auto
	// an explicit --power-attack survives --auto
	r.lockPowerAttack = cmd.Flags().Changed("power-attack")
	return r, nil
}

// newRunner builds a runner over the provider's combat service. Text output also
// listens on the provider's bus for tracker changes.
func newRunner(provider *services.Provider, output string, out, prompt io.Writer, in io.Reader) *runner {
	r := &runner{
		svc:    provider.CombatService,
		out:    out,
		prompt: prompt,
		in:     bufio.NewReader(in),
		output: output,
	}
	if output == outputText {
		r.notifier = subscribeNotifier(provider.EventBus)
	}
	return r
}

// runner executes commands against a combat service
type runner struct {
	svc             combat.Service
	out             io.Writer
	prompt          io.Writer
	in              *bufio.Reader
	output          string
	auto            bool
	lockPowerAttack bool
	notifier        *notifier
}

func (r *runner) autoRecommend(ctx context.Context) error {
	if !r.auto {
		return nil
	}
	result, err := r.svc.AutoRecommend(ctx, &combat.AutoRecommendInput{
		Apply:           true,
		LockPowerAttack: r.lockPowerAttack,
	})
	if err != nil {
		return errors.Wrap(err, "failed to recommend setup")
	}
	if r.output == outputText {
		return r.printf("Auto setup at AC %d: power attack %d, two-handed %t\n",
			result.AC, result.Settings.PowerAttack, result.Settings.TwoHanded)
	}
	return nil
}
