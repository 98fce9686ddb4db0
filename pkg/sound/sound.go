// Package sound carries discrete sound requests out of the core.
// Delivery is best effort: a request is dropped rather than blocking a frame.
package sound

// Event is a sound the game wants played
type Event int

// sound events
const (
	CardPlaced Event = iota
	CardDrawn
	Shuffle
	ButtonPressed
	Invalid
	RoundOver
)

func (e Event) String() string {
	switch e {
	case CardPlaced:
		return "cardPlaced"
	case CardDrawn:
		return "cardDrawn"
	case Shuffle:
		return "shuffle"
	case ButtonPressed:
		return "buttonPressed"
	case Invalid:
		return "invalid"
	case RoundOver:
		return "roundOver"
	}

	return "unknown"
}

// Sink receives sound events
type Sink interface {
	Play(e Event)
}

// Discard is a Sink that drops every event
var Discard Sink = discard{}

type discard struct{}

func (discard) Play(Event) {}

// Queue is a Sink backed by a buffered channel. The player reads Events().
type Queue struct {
	events  chan Event
	dropped int
}

// NewQueue returns a queue that holds up to size events
func NewQueue(size int) *Queue {
	return &Queue{events: make(chan Event, size)}
}

// Play queues the event, dropping it if the queue is full
func (q *Queue) Play(e Event) {
	select {
	case q.events <- e:
	default:
		q.dropped++
	}
}

// Events returns the channel to read queued events from
func (q *Queue) Events() <-chan Event {
	return q.events
}

// Dropped returns how many events were dropped because the queue was full
func (q *Queue) Dropped() int {
	return q.dropped
}

// Drain returns every queued event without blocking
func (q *Queue) Drain() []Event {
	var events []Event
	for {
		select {
		case e := <-q.events:
			events = append(events, e)
		default:
			return events
		}
	}
}
