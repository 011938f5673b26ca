package events_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/tavist/internal/entities/attack"
	"github.com/KirkDiggler/tavist/internal/events"
	"github.com/KirkDiggler/tavist/internal/tracking"
)

func TestEventBus_SwingResolved(t *testing.T) {
	bus := events.NewBus(nil)

	var seen []int
	bus.Subscribe(events.EventTypeSwingResolved, &testListener{
		id:       "recorder",
		priority: events.PriorityDefault,
		handler: func(e events.Event) error {
			if swing, ok := e.(*events.SwingResolvedEvent); ok {
				seen = append(seen, swing.Outcome.AttackTotal)
			}
			return nil
		},
	})

	err := bus.Emit(events.NewSwingResolvedEvent("round-1", &attack.Outcome{AttackTotal: 24}))
	require.NoError(t, err)

	// other event types do not reach the listener
	err = bus.Emit(events.NewDamageAccruedEvent("round-1", 5, 5))
	require.NoError(t, err)

	assert.Equal(t, []int{24}, seen)
}

func TestEventBus_Priority(t *testing.T) {
	bus := events.NewBus(nil)

	// Track execution order
	var executionOrder []string
	record := func(name string) func(events.Event) error {
		return func(events.Event) error {
			executionOrder = append(executionOrder, name)
			return nil
		}
	}

	// Subscribe in random order
	bus.Subscribe(events.EventTypeBoundsChanged, &testListener{id: "low", priority: 300, handler: record("low")})
	bus.Subscribe(events.EventTypeBoundsChanged, &testListener{id: "high", priority: 100, handler: record("high")})
	bus.Subscribe(events.EventTypeBoundsChanged, &testListener{id: "medium", priority: 200, handler: record("medium")})

	err := bus.Emit(events.NewBoundsChangedEvent("", tracking.Bounds{Upper: 99}, tracking.Bounds{Upper: 18}))
	require.NoError(t, err)

	// Verify execution order (lower priority number = earlier execution)
	assert.Equal(t, []string{"high", "medium", "low"}, executionOrder)
}

func TestEventBus_Cancellation(t *testing.T) {
	bus := events.NewBus(nil)

	var firstExecuted, secondExecuted bool

	// First listener cancels the event
	bus.Subscribe(events.EventTypeDisambiguationRequested, &testListener{
		id:       "first",
		priority: 100,
		handler: func(e events.Event) error {
			firstExecuted = true
			e.Cancel()
			return nil
		},
	})

	// Second listener should not execute
	bus.Subscribe(events.EventTypeDisambiguationRequested, &testListener{
		id:       "second",
		priority: 200,
		handler: func(e events.Event) error {
			secondExecuted = true
			return nil
		},
	})

	event := events.NewDisambiguationRequestedEvent("round-1", &tracking.Disambiguation{})
	err := bus.Emit(event)
	require.NoError(t, err)

	assert.True(t, firstExecuted)
	assert.False(t, secondExecuted)
	assert.True(t, event.IsCancelled())
}

func TestEventBus_ListenerError(t *testing.T) {
	bus := events.NewBus(nil)
	bus.Subscribe(events.EventTypeDamageAccrued, events.NewListenerFunc("broken", events.PriorityDefault, func(events.Event) error {
		return stderrors.New("boom")
	}))

	err := bus.Emit(events.NewDamageAccruedEvent("round-1", 3, 3))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listener broken failed: boom")
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := events.NewBus(nil)

	calls := 0
	count := func(events.Event) error {
		calls++
		return nil
	}
	bus.Subscribe(events.EventTypeRoundSummarized, events.NewListenerFunc("a", 100, count))
	bus.Subscribe(events.EventTypeRoundSummarized, events.NewListenerFunc("b", 200, count))

	bus.Unsubscribe(events.EventTypeRoundSummarized, "a")
	require.NoError(t, bus.Emit(events.NewRoundSummarizedEvent("r", nil)))
	assert.Equal(t, 1, calls)

	bus.Clear()
	require.NoError(t, bus.Emit(events.NewRoundSummarizedEvent("r", nil)))
	assert.Equal(t, 1, calls)
}

// Test helper: simple event listener
type testListener struct {
	id       string
	priority int
	handler  func(events.Event) error
}

func (l *testListener) ID() string                       { return l.id }
func (l *testListener) Priority() int                    { return l.priority }
func (l *testListener) HandleEvent(e events.Event) error { return l.handler(e) }
