// internal/radar/loop.go
package radar

import (
	"context"
	"errors"
	"fmt"

	"github.com/tamzrod/mmwave-presence/internal/protocol"
	"github.com/tamzrod/mmwave-presence/internal/sink"
	"github.com/tamzrod/mmwave-presence/internal/stream"
)

// Run reads reports until ctx ends or the stream fails.
//
// Protocol noise (bad checksum, bad length, a frame cut short by a line
// timeout) is passed to the error handler and reading continues.
// Idle timeouts are silent. Anything else ends the loop.
func (s *Sensor) Run(ctx context.Context, out sink.Sink) error {
	decode := protocol.DecodeEvent
	if s.opts.ExtendedReports {
		decode = protocol.DecodeExtendedEvent
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		p, err := s.reader.ReadPacket()
		if err != nil {
			if transient(err) {
				if !idle(err) {
					s.report(err)
				}
				continue
			}
			// a port closed by shutdown surfaces as a read error
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return fmt.Errorf("radar: read: %w", err)
		}

		ev, ok := decode(*p)
		if !ok {
			continue
		}
		out.Deliver(ev)
	}
}

// idle is a line timeout with no frame in progress.
func idle(err error) bool {
	return errors.Is(err, stream.ErrTimeout) && !errors.Is(err, protocol.ErrTruncatedPacket)
}

func transient(err error) bool {
	return protocol.IsRecoverable(err) || errors.Is(err, stream.ErrTimeout)
}
