// internal/sink/queue.go
package sink

import (
	"context"
	"sync/atomic"

	"github.com/tamzrod/mmwave-presence/internal/protocol"
)

// Queue decouples the protocol loop from slow consumers.
// Deliver never blocks: when the buffer is full the event is dropped and counted.
type Queue struct {
	ch      chan protocol.Event
	dropped atomic.Uint64
}

func NewQueue(size int) *Queue {
	if size <= 0 {
		size = 1
	}
	return &Queue{ch: make(chan protocol.Event, size)}
}

func (q *Queue) Deliver(ev protocol.Event) {
	select {
	case q.ch <- ev:
	default:
		q.dropped.Add(1)
	}
}

// Events is the consumer side.
func (q *Queue) Events() <-chan protocol.Event { return q.ch }

// Dropped returns the number of events lost to a full buffer.
func (q *Queue) Dropped() uint64 { return q.dropped.Load() }

// Close ends the consumer side. Only the producer may call it, after its last Deliver.
func (q *Queue) Close() { close(q.ch) }

// Drain forwards queued events to next until ctx ends or the queue is closed.
func (q *Queue) Drain(ctx context.Context, next Sink) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-q.ch:
			if !ok {
				return
			}
			next.Deliver(ev)
		}
	}
}
