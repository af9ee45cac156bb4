package ecs

// Event is something a system reports to whoever runs the loop.
type Event struct {
	Type string
	// Time is the world clock when the event was emitted.
	Time float64
	Data any
}

// EventQueue collects events during a tick; the loop owner drains it
// between ticks.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain hands over the pending events and empties the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Filter keeps the events whose type is one of types, in order.
func Filter(events []Event, types ...string) []Event {
	var out []Event
	for _, evt := range events {
		for _, t := range types {
			if evt.Type == t {
				out = append(out, evt)
				break
			}
		}
	}
	return out
}
