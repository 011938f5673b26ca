package combat

//go:generate mockgen -destination=mock/mock_service.go -package=mockcombat -source=service.go

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/tavist/internal/calculators"
	"github.com/KirkDiggler/tavist/internal/character"
	"github.com/KirkDiggler/tavist/internal/entities/attack"
	"github.com/KirkDiggler/tavist/internal/errors"
	"github.com/KirkDiggler/tavist/internal/events"
	"github.com/KirkDiggler/tavist/internal/summary"
	"github.com/KirkDiggler/tavist/internal/tracking"
	"github.com/KirkDiggler/tavist/internal/uuid"
)

// OffHandAttack names the off-hand swing
const OffHandAttack = "off-hand"

var (
	defaultAttackBonuses = []int{12, 12, 7, 2}
	defaultAttackNames   = []string{"first", "speed", "second", "third"}
)

// Service defines the combat session interface
type Service interface {
	// FullAttack resolves every primary swing and, when dual-wielding, the off-hand swing
	FullAttack(ctx context.Context) (*Round, error)

	// Swing resolves a single named swing
	Swing(ctx context.Context, attackName string) (*Round, error)

	// Reconcile answers the disambiguation of a round
	Reconcile(ctx context.Context, roundID string, choice tracking.Choice) (tracking.Bounds, error)

	// Recommend finds the best setup against ac
	Recommend(ctx context.Context, ac int) (*calculators.Recommendation, error)

	// AutoRecommend finds the best setup against the tracked AC estimate and optionally applies it
	AutoRecommend(ctx context.Context, input *AutoRecommendInput) (*AutoRecommendResult, error)

	// ApplySettings replaces the character settings
	ApplySettings(ctx context.Context, settings character.Settings) error

	// Settings returns the character settings
	Settings(ctx context.Context) character.Settings

	// Tracker returns a snapshot of the tracked bounds
	Tracker(ctx context.Context) tracking.Bounds

	// NewOpponent resets the tracker and drops pending rounds
	NewOpponent(ctx context.Context) error
}

// Round is the result of one FullAttack or Swing
type Round struct {
	ID       string
	Outcomes []*attack.Outcome
	Bands    []summary.Band
	// KnownDamage is the damage accrued without asking the user
	KnownDamage int
	Bounds      tracking.Bounds
	// Disambiguation is set when the user must say which swings hit
	Disambiguation *tracking.Disambiguation
}

// AutoRecommendInput controls AutoRecommend
type AutoRecommendInput struct {
	Apply           bool
	LockPowerAttack bool
}

// AutoRecommendResult is the outcome of AutoRecommend
type AutoRecommendResult struct {
	AC             int
	Recommendation calculators.Recommendation
	Applied        bool
	Settings       character.Settings
}

type service struct {
	mu sync.Mutex

	character      *character.Character
	resolver       *attack.Resolver
	tracker        *tracking.Tracker
	bus            *events.Bus
	uuidGenerator  uuid.Generator
	logger         *slog.Logger
	attackBonuses  []int
	attackNames    []string
	offHandBonus   int
	maxPowerAttack int

	pending map[string]*tracking.Disambiguation
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Character      *character.Character
	Resolver       *attack.Resolver
	Tracker        *tracking.Tracker
	Bus            *events.Bus
	UUIDGenerator  uuid.Generator
	Logger         *slog.Logger
	AttackBonuses  []int
	AttackNames    []string
	OffHandBonus   int
	MaxPowerAttack int
}

// NewService creates a new combat service. Missing collaborators get defaults;
// an empty attack sequence uses the default full attack. MaxPowerAttack bounds both
// the optimizer and applied settings; a negative value uses the default.
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		cfg = &ServiceConfig{MaxPowerAttack: calculators.DefaultMaxPowerAttack}
	}

	svc := &service{
		character:      cfg.Character,
		resolver:       cfg.Resolver,
		tracker:        cfg.Tracker,
		bus:            cfg.Bus,
		uuidGenerator:  cfg.UUIDGenerator,
		logger:         cfg.Logger,
		attackBonuses:  cfg.AttackBonuses,
		attackNames:    cfg.AttackNames,
		offHandBonus:   cfg.OffHandBonus,
		maxPowerAttack: cfg.MaxPowerAttack,
		pending:        make(map[string]*tracking.Disambiguation),
	}

	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.character == nil {
		svc.character = character.New()
	}
	if svc.resolver == nil {
		svc.resolver = attack.NewResolver(&attack.ResolverConfig{Logger: svc.logger})
	}
	if svc.tracker == nil {
		svc.tracker = tracking.New(&tracking.Config{Logger: svc.logger})
	}
	if svc.bus == nil {
		svc.bus = events.NewBus(svc.logger)
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}
	if len(svc.attackBonuses) == 0 {
		svc.attackBonuses = defaultAttackBonuses
		svc.attackNames = defaultAttackNames
		if svc.offHandBonus == 0 {
			svc.offHandBonus = defaultAttackBonuses[0]
		}
	}
	if len(svc.attackNames) != len(svc.attackBonuses) {
		panic("attack names must match attack bonuses")
	}
	if svc.maxPowerAttack < 0 {
		svc.maxPowerAttack = calculators.DefaultMaxPowerAttack
	}

	return svc
}

func (s *service) FullAttack(ctx context.Context) (*Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	roundID := s.uuidGenerator.New()
	outcomes := make([]*attack.Outcome, 0, len(s.attackBonuses)+1)

	for i, bab := range s.attackBonuses {
		outcome, err := s.resolve(roundID, character.Primary, bab, s.attackNames[i])
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, outcome)
	}

	if !s.character.Settings().TwoHanded {
		outcome, err := s.resolve(roundID, character.OffHand, s.offHandBonus, OffHandAttack)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, outcome)
	}

	return s.finishRound(roundID, outcomes)
}

func (s *service) Swing(ctx context.Context, attackName string) (*Round, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hand, bab, err := s.lookupAttack(attackName)
	if err != nil {
		return nil, err
	}

	roundID := s.uuidGenerator.New()
	outcome, err := s.resolve(roundID, hand, bab, attackName)
	if err != nil {
		return nil, err
	}

	return s.finishRound(roundID, []*attack.Outcome{outcome})
}

func (s *service) lookupAttack(name string) (character.Hand, int, error) {
	if name == OffHandAttack {
		if s.character.Settings().TwoHanded {
			return 0, 0, errors.FailedPreconditionf("no off-hand attack while two-handed")
		}
		return character.OffHand, s.offHandBonus, nil
	}
	for i, n := range s.attackNames {
		if n == name {
			return character.Primary, s.attackBonuses[i], nil
		}
	}
	return 0, 0, errors.NotFoundf("attack %q not found", name).WithMeta("attacks", s.attackNames)
}

func (s *service) resolve(roundID string, hand character.Hand, bab int, label string) (*attack.Outcome, error) {
	swing := s.character.SwingWithBaseAttack(hand, bab)
	outcome, err := s.resolver.ResolveSwing(swing.Attack, swing.Damage, label)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s swing", label)
	}
	if err := s.bus.Emit(events.NewSwingResolvedEvent(roundID, outcome)); err != nil {
		return nil, err
	}
	return outcome, nil
}

func (s *service) finishRound(roundID string, outcomes []*attack.Outcome) (*Round, error) {
	round := &Round{
		ID:       roundID,
		Outcomes: outcomes,
		Bands:    summary.Summarize(outcomes),
	}
	if err := s.bus.Emit(events.NewRoundSummarizedEvent(roundID, round.Bands)); err != nil {
		return nil, err
	}

	round.KnownDamage = s.tracker.AccumulateKnownHits(outcomes)
	if round.KnownDamage > 0 {
		if err := s.bus.Emit(events.NewDamageAccruedEvent(roundID, round.KnownDamage, s.tracker.DamageDone())); err != nil {
			return nil, err
		}
	}

	round.Disambiguation = s.tracker.Disambiguate(outcomes)
	if round.Disambiguation != nil {
		s.pending[roundID] = round.Disambiguation
		if err := s.bus.Emit(events.NewDisambiguationRequestedEvent(roundID, round.Disambiguation)); err != nil {
			return nil, err
		}
	}
	round.Bounds = s.tracker.Bounds()

	s.logger.Info("Round resolved",
		"round_id", roundID,
		"swings", len(outcomes),
		"known_damage", round.KnownDamage,
		"ambiguous", round.Disambiguation != nil,
	)
	return round, nil
}

func (s *service) Reconcile(ctx context.Context, roundID string, choice tracking.Choice) (tracking.Bounds, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.pending[roundID]
	if !ok {
		return s.tracker.Bounds(), errors.NotFoundf("no pending round %s", roundID)
	}

	before := s.tracker.Bounds()
	if err := s.tracker.Reconcile(d, choice); err != nil {
		return before, errors.Wrapf(err, "failed to reconcile round %s", roundID)
	}
	delete(s.pending, roundID)

	after := s.tracker.Bounds()
	if err := s.emitBoundsChanges(roundID, before, after); err != nil {
		return after, err
	}
	return after, nil
}

func (s *service) emitBoundsChanges(roundID string, before, after tracking.Bounds) error {
	if before.Lower != after.Lower || before.Upper != after.Upper {
		s.logger.Info("AC bounds changed",
			"round_id", roundID,
			"lower", after.Lower,
			"upper", after.Upper,
			"estimate", after.Estimate(),
		)
		if err := s.bus.Emit(events.NewBoundsChangedEvent(roundID, before, after)); err != nil {
			return err
		}
	}
	if added := after.DamageDone - before.DamageDone; added > 0 {
		if err := s.bus.Emit(events.NewDamageAccruedEvent(roundID, added, after.DamageDone)); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Recommend(ctx context.Context, ac int) (*calculators.Recommendation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.recommend(ac)
	return &rec, nil
}

func (s *service) recommend(ac int) calculators.Recommendation {
	rec := calculators.RecommendSetup(s.character, &calculators.RecommendInput{
		AC:             ac,
		Bonuses:        s.attackBonuses,
		OffHandBonus:   s.offHandBonus,
		MaxPowerAttack: s.maxPowerAttack,
	})
	s.logger.Info("Recommended setup",
		"ac", ac,
		"power_attack", rec.PowerAttack,
		"two_handed", rec.TwoHanded,
		"expected", rec.Expected,
	)
	return rec
}

func (s *service) AutoRecommend(ctx context.Context, input *AutoRecommendInput) (*AutoRecommendResult, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ac := s.tracker.Estimate()
	result := &AutoRecommendResult{
		AC:             ac,
		Recommendation: s.recommend(ac),
		Settings:       s.character.Settings(),
	}

	if !input.Apply {
		return result, nil
	}

	settings := s.character.Settings()
	if input.LockPowerAttack {
		settings.TwoHanded = s.bestModeAt(ac, settings.PowerAttack)
	} else {
		settings.PowerAttack = result.Recommendation.PowerAttack
		settings.TwoHanded = result.Recommendation.TwoHanded
	}
	s.character.Apply(settings)

	result.Applied = true
	result.Settings = s.character.Settings()
	return result, nil
}

// bestModeAt picks the weapon mode for a fixed power attack; dual-wield wins ties
func (s *service) bestModeAt(ac, powerAttack int) bool {
	scratch := s.character.Clone()
	scratch.SetPowerAttack(powerAttack)
	dual := calculators.ExpectedFullAttack(scratch, ac, false, s.attackBonuses, s.offHandBonus)
	twoHanded := calculators.ExpectedFullAttack(scratch, ac, true, s.attackBonuses, s.offHandBonus)
	return twoHanded > dual
}

func (s *service) ApplySettings(ctx context.Context, settings character.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings.PowerAttack = min(settings.PowerAttack, s.maxPowerAttack)
	s.character.Apply(settings)
	s.logger.Debug("Applied settings", "settings", s.character.Settings())
	return nil
}

func (s *service) Settings(ctx context.Context) character.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.character.Settings()
}

func (s *service) Tracker(ctx context.Context) tracking.Bounds {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.tracker.Bounds()
}

func (s *service) NewOpponent(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.tracker.Bounds()
	s.tracker.Reset()
	s.pending = make(map[string]*tracking.Disambiguation)

	s.logger.Info("New opponent", "damage_done", before.DamageDone)
	return s.bus.Emit(events.NewBoundsChangedEvent("", before, s.tracker.Bounds()))
}
