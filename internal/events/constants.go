package events

// Event type constants
const (
	EventTypeSwingResolved           EventType = "swing_resolved"
	EventTypeRoundSummarized         EventType = "round_summarized"
	EventTypeBoundsChanged           EventType = "bounds_changed"
	EventTypeDamageAccrued           EventType = "damage_accrued"
	EventTypeDisambiguationRequested EventType = "disambiguation_requested"
)

// Priority levels for listener order
const (
	PriorityFirst   = 0
	PriorityDefault = 100
	PriorityLast    = 500 // loggers, recorders
)
