// internal/status/encode.go
package status

import "math"

// Encode converts a Snapshot into the runtime slots of a status block.
// The device name slots are left zero; the writer owns them.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerDevice)

	regs[SlotHealthCode] = s.Health
	regs[SlotLastErrorCode] = s.LastErrorCode
	regs[SlotSecondsInError] = s.SecondsInError
	regs[SlotPresence] = s.Presence

	bits := math.Float32bits(s.BodyData)
	regs[SlotBodyDataHi] = uint16(bits >> 16)
	regs[SlotBodyDataLo] = uint16(bits)

	regs[SlotChecksumErrors] = s.ChecksumErrors

	return regs
}

// EncodeDeviceName packs up to DeviceNameMaxChars ASCII characters into
// SlotDeviceNameSlots registers, two characters per register, high byte first.
func EncodeDeviceName(name string) []uint16 {
	regs := make([]uint16, SlotDeviceNameSlots)

	b := []byte(name)
	if len(b) > DeviceNameMaxChars {
		b = b[:DeviceNameMaxChars]
	}

	for i := 0; i < len(b); i += 2 {
		hi := uint16(b[i])
		lo := uint16(0)
		if i+1 < len(b) {
			lo = uint16(b[i+1])
		}
		regs[i/2] = hi<<8 | lo
	}

	return regs
}
