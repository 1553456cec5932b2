// internal/status/snapshot.go
package status

import "github.com/tamzrod/mmwave-presence/internal/protocol"

// Snapshot represents exactly what the writer is allowed to deliver.
// It contains no memory of the past beyond current state.
type Snapshot struct {
	Health         uint16
	LastErrorCode  uint16
	SecondsInError uint16

	Presence       uint16
	BodyData       float32
	ChecksumErrors uint16
}

// Apply folds one event into the snapshot.
// Events that carry no block state are ignored.
func (s *Snapshot) Apply(ev protocol.Event) {
	switch ev.Kind {
	case protocol.EventUnoccupied:
		s.Presence = PresenceUnoccupied
	case protocol.EventOccupiedStatic:
		s.Presence = PresenceStatic
	case protocol.EventOccupiedMoving:
		s.Presence = PresenceMoving
	case protocol.EventBodyData:
		s.BodyData = ev.Value
	}
}

// Saturate16 clamps a counter to the register range.
func Saturate16(v uint64) uint16 {
	if v > 0xFFFF {
		return 0xFFFF
	}
	return uint16(v)
}
