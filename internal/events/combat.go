package events

import (
	"github.com/KirkDiggler/tavist/internal/entities/attack"
	"github.com/KirkDiggler/tavist/internal/summary"
	"github.com/KirkDiggler/tavist/internal/tracking"
)

// SwingResolvedEvent is emitted once per resolved swing
type SwingResolvedEvent struct {
	BaseEvent
	Outcome *attack.Outcome
}

// NewSwingResolvedEvent creates a swing_resolved event
func NewSwingResolvedEvent(roundID string, o *attack.Outcome) *SwingResolvedEvent {
	return &SwingResolvedEvent{
		BaseEvent: BaseEvent{Type: EventTypeSwingResolved, RoundID: roundID},
		Outcome:   o,
	}
}

// RoundSummarizedEvent carries the damage bands of a round
type RoundSummarizedEvent struct {
	BaseEvent
	Bands []summary.Band
}

// NewRoundSummarizedEvent creates a round_summarized event
func NewRoundSummarizedEvent(roundID string, bands []summary.Band) *RoundSummarizedEvent {
	return &RoundSummarizedEvent{
		BaseEvent: BaseEvent{Type: EventTypeRoundSummarized, RoundID: roundID},
		Bands:     bands,
	}
}

// BoundsChangedEvent is emitted when the tracked AC interval moves
type BoundsChangedEvent struct {
	BaseEvent
	Before tracking.Bounds
	After  tracking.Bounds
}

// NewBoundsChangedEvent creates a bounds_changed event
func NewBoundsChangedEvent(roundID string, before, after tracking.Bounds) *BoundsChangedEvent {
	return &BoundsChangedEvent{
		BaseEvent: BaseEvent{Type: EventTypeBoundsChanged, RoundID: roundID},
		Before:    before,
		After:     after,
	}
}

// DamageAccruedEvent is emitted when damage is added to the running total
type DamageAccruedEvent struct {
	BaseEvent
	Amount int
	Total  int
}

// NewDamageAccruedEvent creates a damage_accrued event
func NewDamageAccruedEvent(roundID string, amount, total int) *DamageAccruedEvent {
	return &DamageAccruedEvent{
		BaseEvent: BaseEvent{Type: EventTypeDamageAccrued, RoundID: roundID},
		Amount:    amount,
		Total:     total,
	}
}

// DisambiguationRequestedEvent asks the user which ambiguous swings hit
type DisambiguationRequestedEvent struct {
	BaseEvent
	Disambiguation *tracking.Disambiguation
}

// NewDisambiguationRequestedEvent creates a disambiguation_requested event
func NewDisambiguationRequestedEvent(roundID string, d *tracking.Disambiguation) *DisambiguationRequestedEvent {
	return &DisambiguationRequestedEvent{
		BaseEvent:      BaseEvent{Type: EventTypeDisambiguationRequested, RoundID: roundID},
		Disambiguation: d,
	}
}
