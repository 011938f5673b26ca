package events

// EventType represents the type of combat event
type EventType string

// Event is the base interface for all combat events
type Event interface {
	GetType() EventType
	GetRoundID() string
	IsCancelled() bool
	Cancel()
}

// BaseEvent provides common implementation for all events
type BaseEvent struct {
	Type      EventType
	RoundID   string
	Cancelled bool
}

func (e *BaseEvent) GetType() EventType { return e.Type }
func (e *BaseEvent) GetRoundID() string { return e.RoundID }
func (e *BaseEvent) IsCancelled() bool  { return e.Cancelled }
func (e *BaseEvent) Cancel()            { e.Cancelled = true }
