// internal/protocol/packet.go
package protocol

import (
	"encoding/binary"
	"fmt"
)

// Register is the (address1, address2) pair addressing one sensor parameter.
type Register struct {
	Address1 byte
	Address2 byte
}

func (r Register) String() string {
	return fmt.Sprintf("%02X/%02X", r.Address1, r.Address2)
}

// Packet is one validated frame.
// Packets with a bad checksum are never constructed by Reader.
type Packet struct {
	Function byte
	Address1 byte
	Address2 byte
	Payload  []byte

	// Checksum is the transmitted CRC (already verified).
	Checksum uint16
}

// Register returns the addressed register.
func (p Packet) Register() Register {
	return Register{Address1: p.Address1, Address2: p.Address2}
}

func (p Packet) String() string {
	return fmt.Sprintf("fn=%d reg=%s payload=% X", p.Function, p.Register(), p.Payload)
}

// EncodeCommand builds a complete frame ready to write to the stream.
//
// Layout:
//
//	[0x55][LEN_L][LEN_H][FUNC][ADDR1][ADDR2][DATA...][CRC_L][CRC_H]
//
// LEN = len(data) + 7. CRC covers every byte before it.
// data longer than MaxPayloadSize is truncated to keep LEN representable.
func EncodeCommand(function, address1, address2 byte, data []byte) []byte {
	if len(data) > MaxPayloadSize {
		data = data[:MaxPayloadSize]
	}

	frame := make([]byte, HeaderSize, HeaderSize+len(data)+ChecksumSize)
	frame[0] = SyncByte
	binary.LittleEndian.PutUint16(frame[1:3], uint16(len(data)+LengthOverhead))
	frame[3] = function
	frame[4] = address1
	frame[5] = address2

	frame = append(frame, data...)

	return binary.LittleEndian.AppendUint16(frame, Checksum(frame))
}

// Encode frames the packet. The stored Checksum is ignored and recomputed.
func (p Packet) Encode() []byte {
	return EncodeCommand(p.Function, p.Address1, p.Address2, p.Payload)
}

// SetParameter builds the "set parameter" command for reg.
func SetParameter(reg Register, value ...byte) []byte {
	return EncodeCommand(FuncSetParameter, reg.Address1, reg.Address2, value)
}
