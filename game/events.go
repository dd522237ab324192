package game

// EventType classifies a notable session transition
type EventType int

const (
	EventStarted EventType = iota
	EventCorrect
	EventIncorrect
	EventPairChecking
	EventMatch
	EventMismatch
	EventFinished
)

var eventNames = [...]string{
	EventStarted:      "started",
	EventCorrect:      "correct",
	EventIncorrect:    "incorrect",
	EventPairChecking: "pair_checking",
	EventMatch:        "match",
	EventMismatch:     "mismatch",
	EventFinished:     "finished",
}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// Event is a transition the presentation layer may react to (sound, flash)
type Event struct {
	Type EventType
}

// eventQueue buffers events between DrainEvents calls
type eventQueue struct {
	pending []Event
}

func (q *eventQueue) push(t EventType) {
	q.pending = append(q.pending, Event{Type: t})
}

func (q *eventQueue) drain() []Event {
	out := q.pending
	q.pending = nil
	return out
}
