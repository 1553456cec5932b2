// internal/protocol/checksum.go
package protocol

import "github.com/sigurn/crc16"

// The sensor firmware uses the Modbus CRC16:
// reflected polynomial 0xA001, initial value 0xFFFF, no final xor.
// Both directions check it, so it must match byte-for-byte.
var crcTable = crc16.MakeTable(crc16.CRC16_MODBUS)

// Checksum computes the frame CRC16 over b.
// Pure function; the result goes on the wire little-endian.
func Checksum(b []byte) uint16 {
	return crc16.Checksum(b, crcTable)
}
