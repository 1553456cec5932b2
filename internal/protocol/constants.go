// internal/protocol/constants.go
package protocol

// Frame layout constants.
// These values define the sensor wire format and MUST NOT be configurable.

// ---- FRAMING ----

// SyncByte marks the start of every frame.
const SyncByte byte = 0x55

// HeaderSize is sync(1) + length(2) + function(1) + address1(1) + address2(1).
const HeaderSize = 6

// ChecksumSize is the trailing CRC16 (little-endian).
const ChecksumSize = 2

// LengthOverhead is the part of the declared length that is not payload:
// length(2) + function(1) + address1(1) + address2(1) + crc(2).
const LengthOverhead = 7

// MaxPayloadSize keeps the declared length inside its uint16 field.
const MaxPayloadSize = 0xFFFF - LengthOverhead

// ---- FUNCTION CODES ----

const (
	FuncReadParameter   byte = 0x01
	FuncSetParameter    byte = 0x02
	FuncSetParameterAck byte = 0x03
	FuncProactiveReport byte = 0x04
)

// ---- REGISTERS (address1) ----

const (
	// AddrSensorReport groups proactive sensor information reports.
	AddrSensorReport byte = 0x03
	// AddrSystemParameter groups configurable system parameters.
	AddrSystemParameter byte = 0x04
	// AddrOtherReport groups heartbeat and other information.
	AddrOtherReport byte = 0x05
)

// ---- REGISTERS (address2) ----

const (
	// under AddrSensorReport
	RegEnvironmentStatus byte = 0x05
	RegBodyData          byte = 0x06
	RegApproachAway      byte = 0x07

	// under AddrSystemParameter
	RegGearThreshold byte = 0x0C
	RegRoomType      byte = 0x10

	// under AddrOtherReport
	RegHeartbeat byte = 0x01
)
