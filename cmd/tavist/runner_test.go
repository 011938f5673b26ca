package main

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/tavist/internal/calculators"
	"github.com/KirkDiggler/tavist/internal/character"
	"github.com/KirkDiggler/tavist/internal/config"
	mockdice "github.com/KirkDiggler/tavist/internal/dice/mock"
	"github.com/KirkDiggler/tavist/internal/entities/attack"
	"github.com/KirkDiggler/tavist/internal/entities/damage"
	"github.com/KirkDiggler/tavist/internal/errors"
	"github.com/KirkDiggler/tavist/internal/services"
	"github.com/KirkDiggler/tavist/internal/services/combat"
	mockcombat "github.com/KirkDiggler/tavist/internal/services/combat/mock"
	"github.com/KirkDiggler/tavist/internal/summary"
	"github.com/KirkDiggler/tavist/internal/tracking"
	"github.com/KirkDiggler/tavist/internal/uuid"
)

func outcome(label string, total, dmg int) *attack.Outcome {
	return &attack.Outcome{
		Label:             label,
		AttackTotal:       total,
		AttackDie:         10,
		DamageNormal:      dmg,
		DamageCritical:    dmg * 2,
		BreakdownNormal:   damage.Breakdown{damage.WeaponSource(damage.TypeSlashing): dmg},
		BreakdownCritical: damage.Breakdown{damage.WeaponSource(damage.TypeSlashing): dmg * 2},
	}
}

func ambiguousRound() *combat.Round {
	low := outcome("third", 20, 14)
	high := outcome("first", 27, 14)
	outcomes := []*attack.Outcome{high, low}
	return &combat.Round{
		ID:             "round-1",
		Outcomes:       outcomes,
		Bands:          summary.Summarize(outcomes),
		Bounds:         tracking.Bounds{Lower: 10, Upper: tracking.UnknownUpper},
		Disambiguation: &tracking.Disambiguation{Candidates: []*attack.Outcome{low, high}},
	}
}

type runnerFixture struct {
	svc    *mockcombat.MockService
	out    *bytes.Buffer
	prompt *bytes.Buffer
	runner *runner
}

func newRunnerFixture(t *testing.T, output, input string) *runnerFixture {
	ctrl := gomock.NewController(t)
	f := &runnerFixture{
		svc:    mockcombat.NewMockService(ctrl),
		out:    &bytes.Buffer{},
		prompt: &bytes.Buffer{},
	}
	f.runner = &runner{
		svc:    f.svc,
		out:    f.out,
		prompt: f.prompt,
		in:     bufio.NewReader(strings.NewReader(input)),
		output: output,
	}
	return f
}

func TestAttack_PromptsUntilAnswerIsUsable(t *testing.T) {
	f := newRunnerFixture(t, outputText, "maybe\n22\n20\n")
	ctx := context.Background()
	reconciled := tracking.Bounds{Lower: 10, Upper: 20, DamageDone: 28}

	f.svc.EXPECT().FullAttack(ctx).Return(ambiguousRound(), nil)
	gomock.InOrder(
		f.svc.EXPECT().Reconcile(ctx, "round-1", tracking.LowestHit(22)).
			Return(tracking.Bounds{}, errors.InvalidArgumentf("choice 22 is not a candidate attack total")),
		f.svc.EXPECT().Reconcile(ctx, "round-1", tracking.LowestHit(20)).Return(reconciled, nil),
	)
	f.svc.EXPECT().Settings(ctx).Return(character.Settings{})

	require.NoError(t, f.runner.attack(ctx, 1, ""))

	out := f.out.String()
	assert.Contains(t, out, "== Round round-1 ==")
	assert.Contains(t, out, "first: hits AC 27 | damage 14 dmg")
	assert.Contains(t, out, "Damage by AC:")
	assert.Contains(t, out, "AC >10, ≤20 (estimate 15)\n")

	prompt := f.prompt.String()
	assert.Equal(t, 3, strings.Count(prompt, "Which attacks hit?"))
	assert.Contains(t, prompt, "expected 'miss' or an attack total")
	assert.Contains(t, prompt, "choice 22 is not a candidate")
}

func TestAttack_EndOfInput(t *testing.T) {
	f := newRunnerFixture(t, outputText, "")
	ctx := context.Background()

	f.svc.EXPECT().FullAttack(ctx).Return(ambiguousRound(), nil)

	err := f.runner.attack(ctx, 1, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no answer for round round-1")
}

func TestAttack_ChooseAnswersEveryRound(t *testing.T) {
	f := newRunnerFixture(t, outputYAML, "")
	ctx := context.Background()

	f.svc.EXPECT().FullAttack(ctx).Return(ambiguousRound(), nil).Times(2)
	f.svc.EXPECT().Reconcile(ctx, "round-1", tracking.AllMissed()).
		Return(tracking.Bounds{Lower: 27, Upper: tracking.UnknownUpper}, nil).Times(2)
	f.svc.EXPECT().Settings(ctx).Return(character.Settings{PowerAttack: 2}).Times(2)

	require.NoError(t, f.runner.attack(ctx, 2, "miss"))

	assert.Empty(t, f.prompt.String())
	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(f.out.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, ">27, ≤?", decoded[0]["bound"])
	assert.Equal(t, []any{20, 27}, decoded[0]["candidates"])
}

func TestAttack_AutoLocksPowerAttack(t *testing.T) {
	f := newRunnerFixture(t, outputText, "")
	f.runner.auto = true
	f.runner.lockPowerAttack = true
	ctx := context.Background()

	round := &combat.Round{
		ID:       "round-1",
		Outcomes: []*attack.Outcome{outcome("first", 30, 14)},
		Bounds:   tracking.Bounds{Lower: 0, Upper: 20},
	}
	gomock.InOrder(
		f.svc.EXPECT().AutoRecommend(ctx, &combat.AutoRecommendInput{Apply: true, LockPowerAttack: true}).
			Return(&combat.AutoRecommendResult{AC: 10, Applied: true, Settings: character.Settings{PowerAttack: 4, TwoHanded: true}}, nil),
		f.svc.EXPECT().FullAttack(ctx).Return(round, nil),
	)
	f.svc.EXPECT().Settings(ctx).Return(character.Settings{PowerAttack: 4, TwoHanded: true})

	require.NoError(t, f.runner.attack(ctx, 1, ""))

	out := f.out.String()
	assert.Contains(t, out, "Auto setup at AC 10: power attack 4, two-handed true")
	assert.Contains(t, out, "* **first: hits AC 30 | damage 14 dmg")
}

func TestAttack_RejectsNoRounds(t *testing.T) {
	f := newRunnerFixture(t, outputText, "")

	err := f.runner.attack(context.Background(), 0, "")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSwing_NotFound(t *testing.T) {
	f := newRunnerFixture(t, outputText, "")
	ctx := context.Background()

	f.svc.EXPECT().Swing(ctx, "fourth").Return(nil, errors.NotFoundf("attack %q not found", "fourth"))

	err := f.runner.swing(ctx, "fourth", "")
	assert.True(t, errors.IsNotFound(err))
}

func TestRecommend_Text(t *testing.T) {
	f := newRunnerFixture(t, outputText, "")
	ctx := context.Background()

	f.svc.EXPECT().Recommend(ctx, 22).Return(&calculators.Recommendation{
		Evaluation:    calculators.Evaluation{PowerAttack: 3, TwoHanded: true, Expected: 60.525},
		AC:            22,
		BestDual:      calculators.Evaluation{PowerAttack: 1, Expected: 50.5},
		BestTwoHanded: calculators.Evaluation{PowerAttack: 3, TwoHanded: true, Expected: 60.525},
	}, nil)

	require.NoError(t, f.runner.recommend(ctx, 22))

	assert.Equal(t, "AC 22: power attack 3, two-handed (60.52 expected)\n"+
		"  dual-wield: power attack 1, 50.50\n"+
		"  two-handed: power attack 3, 60.52\n", f.out.String())
}

func TestAttack_PrintsTrackerChangesFromBus(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	// katana swings draw d20, d10+d6, 2d10+d6; the wakizashi draws d20, d6+d6, 2d6+d6.
	// Totals 27, 22, 20, 10 and off-hand 20.
	roller := mockdice.NewManualMockRoller(
		10, 5, 3, 5, 5, 3,
		5, 5, 3, 5, 5, 3,
		8, 5, 3, 5, 5, 3,
		3, 5, 3, 5, 5, 3,
		4, 2, 1, 2, 2, 1,
	)
	provider := services.NewProvider(&services.ProviderConfig{
		Combat:        cfg.Combat,
		Roller:        roller,
		UUIDGenerator: uuid.NewSequenceGenerator("round"),
	})
	out := &bytes.Buffer{}
	r := newRunner(provider, outputText, out, &bytes.Buffer{}, strings.NewReader(""))

	require.NoError(t, r.attack(context.Background(), 1, "20"))

	text := out.String()
	assert.Contains(t, text, "== Round round-1 ==")
	assert.Contains(t, text, "AC >0, ≤? -> >10, ≤20 (estimate 15)\n")
	assert.Contains(t, text, "Damage +48 (total 48)\n")
	assert.Less(t, strings.Index(text, "Damage by AC:"), strings.Index(text, "Damage +48"))
	assert.Zero(t, roller.Remaining())
}

func TestNewRunner_YAMLDoesNotListen(t *testing.T) {
	provider := services.NewProvider(&services.ProviderConfig{})

	r := newRunner(provider, outputYAML, &bytes.Buffer{}, &bytes.Buffer{}, strings.NewReader(""))

	assert.Nil(t, r.notifier)
	assert.NoError(t, r.notifier.flush(&bytes.Buffer{}))
}
