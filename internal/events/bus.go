package events

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/KirkDiggler/tavist/internal/errors"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// ListenerFunc adapts a function to an EventListener
type ListenerFunc struct {
	id       string
	priority int
	fn       func(Event) error
}

// NewListenerFunc creates a listener from a function
func NewListenerFunc(id string, priority int, fn func(Event) error) *ListenerFunc {
	return &ListenerFunc{id: id, priority: priority, fn: fn}
}

func (l *ListenerFunc) HandleEvent(event Event) error { return l.fn(event) }
func (l *ListenerFunc) Priority() int                 { return l.priority }
func (l *ListenerFunc) ID() string                    { return l.id }

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
	logger    *slog.Logger
}

// NewBus creates a new event bus; a nil logger uses the default
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		listeners: make(map[EventType][]EventListener),
		logger:    logger,
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)

	// Sort by priority
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})

	b.logger.Debug("Subscribed listener",
		"listener", listener.ID(),
		"event", eventType,
		"priority", listener.Priority(),
	)
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)

		b.logger.Debug("Unsubscribed listener", "listener", listenerID, "event", eventType)
		return
	}
}

// Emit sends an event to all registered listeners
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	b.logger.Debug("Emitting event", "event", event.GetType(), "round_id", event.GetRoundID(), "listeners", len(listeners))

	// Process listeners in priority order
	for _, listener := range listeners {
		if event.IsCancelled() {
			b.logger.Debug("Event cancelled, stopping propagation", "event", event.GetType())
			break
		}

		if err := listener.HandleEvent(event); err != nil {
			return errors.Wrapf(err, "listener %s failed", listener.ID())
		}
	}

	return nil
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
	b.logger.Debug("Cleared all listeners")
}
