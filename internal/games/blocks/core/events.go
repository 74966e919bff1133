package core

// EventType identifies an engine notification.
type EventType int

const (
	EventLineCleared EventType = iota // Count rows removed by a lock
	EventRotated                      // Success reports whether the rotation was committed
	EventLocked                       // Active piece written into the grid
	EventGameOver                     // FinalScore holds the final score
)

// String returns a human-readable event name.
func (t EventType) String() string {
	switch t {
	case EventLineCleared:
		return "line_cleared"
	case EventRotated:
		return "rotated"
	case EventLocked:
		return "locked"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted to subscribers synchronously, after the session state
// is consistent again.
type Event struct {
	Type       EventType
	Count      int  // EventLineCleared
	Success    bool // EventRotated
	FinalScore int  // EventGameOver
}

// Listener receives engine events.
type Listener func(Event)

// emitter fans events out to listeners in subscription order.
type emitter struct {
	listeners []Listener
}

func (e *emitter) subscribe(l Listener) {
	if l != nil {
		e.listeners = append(e.listeners, l)
	}
}

func (e *emitter) emit(ev Event) {
	for _, l := range e.listeners {
		l(ev)
	}
}
