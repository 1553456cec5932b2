// internal/radar/handshake.go
package radar

import (
	"context"
	"fmt"
	"time"

	"github.com/tamzrod/mmwave-presence/internal/protocol"
)

var (
	regRoomType      = protocol.Register{Address1: protocol.AddrSystemParameter, Address2: protocol.RegRoomType}
	regGearThreshold = protocol.Register{Address1: protocol.AddrSystemParameter, Address2: protocol.RegGearThreshold}
)

type step struct {
	name  string
	reg   protocol.Register
	value byte
}

// Initialize writes the room type, then the gear threshold.
// Each register must be acknowledged with the value sent before the next
// command goes out. Packets that are not the expected ack are discarded.
func (s *Sensor) Initialize(ctx context.Context, cfg SensorConfig) error {
	steps := []step{
		{name: "room type", reg: regRoomType, value: cfg.RoomType},
		{name: "gear threshold", reg: regGearThreshold, value: cfg.GearThreshold},
	}

	for _, st := range steps {
		if err := s.confirm(ctx, st); err != nil {
			return err
		}
		s.logger.Printf("radar: %s set (reg=%s value=%d)", st.name, st.reg, st.value)
	}
	return nil
}

func (s *Sensor) confirm(ctx context.Context, st step) error {
	cmd := protocol.SetParameter(st.reg, st.value)

	for attempt := 1; attempt <= s.opts.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := writeAll(s.rw, cmd); err != nil {
			return fmt.Errorf("radar: write %s: %w", st.name, err)
		}

		ok, err := s.awaitAck(ctx, st)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		s.logger.Printf("radar: no ack for %s (reg=%s attempt=%d/%d)",
			st.name, st.reg, attempt, s.opts.MaxAttempts)
	}

	return &InitializationTimeoutError{
		Step:     st.name,
		Register: st.reg,
		Value:    st.value,
		Attempts: s.opts.MaxAttempts,
	}
}

// awaitAck reads until the matching ack arrives or AckTimeout passes.
// The deadline is only checked between reads, so the effective wait is
// AckTimeout plus at most one stream read timeout.
func (s *Sensor) awaitAck(ctx context.Context, st step) (bool, error) {
	deadline := time.Now().Add(s.opts.AckTimeout)

	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		p, err := s.reader.ReadPacket()
		if err != nil {
			if transient(err) {
				if !idle(err) {
					s.report(err)
				}
				continue
			}
			return false, fmt.Errorf("radar: awaiting %s ack: %w", st.name, err)
		}

		if isAck(p, st) {
			return true, nil
		}
		s.logger.Printf("radar: discard while awaiting %s ack: %s", st.name, p)
	}

	return false, nil
}

func isAck(p *protocol.Packet, st step) bool {
	return p.Function == protocol.FuncSetParameterAck &&
		p.Register() == st.reg &&
		len(p.Payload) >= 1 &&
		p.Payload[0] == st.value
}
