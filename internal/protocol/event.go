// internal/protocol/event.go
package protocol

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EventKind is the semantic meaning of a proactive report.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventUnoccupied
	EventOccupiedStatic
	EventOccupiedMoving
	EventBodyData

	// extended reports
	EventNoApproach
	EventApproach
	EventAway
	EventSustainedApproach
	EventSustainedAway
	EventHeartbeatUnoccupied
	EventHeartbeatStatic
	EventHeartbeatMoving
)

var eventNames = map[EventKind]string{
	EventNone:                "none",
	EventUnoccupied:          "unoccupied",
	EventOccupiedStatic:      "occupied-static",
	EventOccupiedMoving:      "occupied-moving",
	EventBodyData:            "body-data",
	EventNoApproach:          "no-approach",
	EventApproach:            "approach",
	EventAway:                "away",
	EventSustainedApproach:   "sustained-approach",
	EventSustainedAway:       "sustained-away",
	EventHeartbeatUnoccupied: "heartbeat-unoccupied",
	EventHeartbeatStatic:     "heartbeat-occupied-static",
	EventHeartbeatMoving:     "heartbeat-occupied-moving",
}

func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}
	return fmt.Sprintf("event(%d)", uint8(k))
}

// IsOccupancy reports the three mutually exclusive occupancy states.
func (k EventKind) IsOccupancy() bool {
	return k == EventUnoccupied || k == EventOccupiedStatic || k == EventOccupiedMoving
}

// Event is one decoded report. Value is only set for EventBodyData.
type Event struct {
	Kind  EventKind
	Value float32
}

func (e Event) String() string {
	if e.Kind == EventBodyData {
		return fmt.Sprintf("body-data %d", int(e.Value))
	}
	return e.Kind.String()
}

type triple [3]byte

var environmentStatus = map[triple]EventKind{
	{0x00, 0xFF, 0xFF}: EventUnoccupied,
	{0x01, 0x00, 0xFF}: EventOccupiedStatic,
	{0x01, 0x01, 0x01}: EventOccupiedMoving,
}

var approachAway = map[triple]EventKind{
	{0x01, 0x01, 0x01}: EventNoApproach,
	{0x01, 0x01, 0x02}: EventApproach,
	{0x01, 0x01, 0x03}: EventAway,
	{0x01, 0x01, 0x04}: EventSustainedApproach,
	{0x01, 0x01, 0x05}: EventSustainedAway,
}

// heartbeat "moving" ends in 0x00, unlike the environment status report.
var heartbeat = map[triple]EventKind{
	{0x00, 0xFF, 0xFF}: EventHeartbeatUnoccupied,
	{0x01, 0x00, 0xFF}: EventHeartbeatStatic,
	{0x01, 0x01, 0x00}: EventHeartbeatMoving,
}

// DecodeEvent maps a proactive report to an event.
// Anything not in the table (including transitional sensor states)
// yields false; that is not an error.
func DecodeEvent(p Packet) (Event, bool) {
	if p.Function != FuncProactiveReport || p.Address1 != AddrSensorReport {
		return Event{}, false
	}

	switch p.Address2 {
	case RegEnvironmentStatus:
		return lookup(environmentStatus, p.Payload)
	case RegBodyData:
		v, ok := bodyData(p.Payload)
		if !ok {
			return Event{}, false
		}
		return Event{Kind: EventBodyData, Value: v}, true
	}

	return Event{}, false
}

// DecodeExtendedEvent is DecodeEvent plus approach/away and heartbeat reports.
func DecodeExtendedEvent(p Packet) (Event, bool) {
	if ev, ok := DecodeEvent(p); ok {
		return ev, true
	}
	if p.Function != FuncProactiveReport {
		return Event{}, false
	}

	switch p.Register() {
	case Register{AddrSensorReport, RegApproachAway}:
		return lookup(approachAway, p.Payload)
	case Register{AddrOtherReport, RegHeartbeat}:
		return lookup(heartbeat, p.Payload)
	}

	return Event{}, false
}

func lookup(table map[triple]EventKind, payload []byte) (Event, bool) {
	if len(payload) != 3 {
		return Event{}, false
	}
	k, ok := table[triple{payload[0], payload[1], payload[2]}]
	if !ok {
		return Event{}, false
	}
	return Event{Kind: k}, true
}

// bodyData reinterprets the payload as a little-endian IEEE-754 float32.
// The sensor documentation labels this report as 3 bytes, yet the working
// decoder unpacks 4; we keep the literal 4-byte layout and ignore any
// other length.
func bodyData(payload []byte) (float32, bool) {
	if len(payload) != 4 {
		return 0, false
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(payload)), true
}
