package loop

import "github.com/tomz197/fishnet/internal/object"

// EventType identifies what happened during a session.
type EventType int

const (
	EventCatch    EventType = iota // Fish landed in the net
	EventMiss                      // Fish left the bottom of the pond
	EventGameOver                  // Last heart lost
	EventRestart                   // Session restarted
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventCatch:
		return "catch"
	case EventMiss:
		return "miss"
	case EventGameOver:
		return "game over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event describes a state change, reported to the session observer.
// Score and Lives are the values after the change.
type Event struct {
	Type  EventType
	Kind  object.Kind // Fish involved (catch/miss)
	Value int         // Points awarded (catch)
	Score int
	Lives int
}
