// internal/sink/dedup.go
package sink

import (
	"sync"

	"github.com/tamzrod/mmwave-presence/internal/protocol"
)

// Dedup forwards an occupancy event only when it differs from the last
// occupancy event forwarded. Non-occupancy events always pass.
type Dedup struct {
	next Sink

	mu   sync.Mutex
	last protocol.EventKind
}

func NewDedup(next Sink) *Dedup {
	return &Dedup{next: next}
}

func (d *Dedup) Deliver(ev protocol.Event) {
	if ev.Kind.IsOccupancy() {
		d.mu.Lock()
		if ev.Kind == d.last {
			d.mu.Unlock()
			return
		}
		d.last = ev.Kind
		d.mu.Unlock()
	}
	d.next.Deliver(ev)
}

// Reset forgets the last state so the next occupancy event is forwarded.
func (d *Dedup) Reset() {
	d.mu.Lock()
	d.last = protocol.EventNone
	d.mu.Unlock()
}
