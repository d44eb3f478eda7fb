package events

import "time"

// Session event codes. The view layer (or CLI) subscribes to react to
// identity changes without polling the session manager.
const (
	TypeSignedIn   = "SESSION_SIGNED_IN"
	TypeSignedOut  = "SESSION_SIGNED_OUT"
	TypeRegistered = "SESSION_REGISTERED"
	TypeWarning    = "SESSION_WARNING"
)

// Event defines the contract for all session events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "SESSION_SIGNED_IN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
