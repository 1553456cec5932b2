// internal/status/constants.go
package status

// Link Status Block layout constants.
// These values define the protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of logical slots per sensor.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the link health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the last raw error code.
const SlotLastErrorCode = 1

// SlotSecondsInError holds the duration (in seconds) the link has been in error.
const SlotSecondsInError = 2

// SlotPresence holds the last occupancy state (see Presence* codes).
const SlotPresence = 3

// SlotBodyDataHi and SlotBodyDataLo hold the IEEE-754 bits of the last
// body data value, high word first.
const SlotBodyDataHi = 4
const SlotBodyDataLo = 5

// SlotChecksumErrors holds the number of frames dropped for a bad CRC
// (saturating).
const SlotChecksumErrors = 6

// ---- RESERVED RANGE ----

// Slots 7-10 are reserved for future use.
const SlotReservedStart = 7
const SlotReservedEnd = 10

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first slot used for the sensor name.
// The name is always placed at the END of the status block.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of slots reserved for the sensor name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last slot used for the sensor name (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// ---- LIMITS ----

// DeviceNameMaxChars is the maximum number of ASCII characters stored for the name.
const DeviceNameMaxChars = 16

// ---- HEALTH CODES ----

// HealthUnknown represents an unknown or boot state.
const HealthUnknown uint16 = 0

// HealthOK represents a configured sensor delivering reports.
const HealthOK uint16 = 1

// HealthError represents a link error state.
const HealthError uint16 = 2

// HealthInitializing represents a handshake in progress.
const HealthInitializing uint16 = 3

// ---- PRESENCE CODES ----

const (
	PresenceUnknown    uint16 = 0
	PresenceUnoccupied uint16 = 1
	PresenceStatic     uint16 = 2
	PresenceMoving     uint16 = 3
)
