// internal/sink/sink.go
package sink

import "github.com/tamzrod/mmwave-presence/internal/protocol"

// Sink receives decoded events, once per event, in arrival order.
// Deliver must not block the protocol loop for long; wrap slow sinks in a Queue.
type Sink interface {
	Deliver(ev protocol.Event)
}

// Func adapts a plain function to Sink.
type Func func(ev protocol.Event)

func (f Func) Deliver(ev protocol.Event) { f(ev) }

// Fanout delivers every event to each sink in order.
type Fanout []Sink

func (f Fanout) Deliver(ev protocol.Event) {
	for _, s := range f {
		if s != nil {
			s.Deliver(ev)
		}
	}
}
