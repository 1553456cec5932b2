// internal/protocol/packet_test.go
package protocol

import (
	"bytes"
	"testing"
)

func TestEncodeCommand_Golden(t *testing.T) {
	tests := []struct {
		name     string
		function byte
		addr1    byte
		addr2    byte
		data     []byte
		want     []byte
	}{
		{
			name:     "set room type",
			function: FuncSetParameter,
			addr1:    AddrSystemParameter,
			addr2:    RegRoomType,
			data:     []byte{0x03},
			want:     []byte{0x55, 0x08, 0x00, 0x02, 0x04, 0x10, 0x03, 0x12, 0xF5},
		},
		{
			name:     "set gear threshold",
			function: FuncSetParameter,
			addr1:    AddrSystemParameter,
			addr2:    RegGearThreshold,
			data:     []byte{0x01},
			want:     []byte{0x55, 0x08, 0x00, 0x02, 0x04, 0x0C, 0x01, 0x9B, 0xF4},
		},
		{
			name:     "occupied moving report",
			function: FuncProactiveReport,
			addr1:    AddrSensorReport,
			addr2:    RegEnvironmentStatus,
			data:     []byte{0x01, 0x01, 0x01},
			want:     []byte{0x55, 0x0A, 0x00, 0x04, 0x03, 0x05, 0x01, 0x01, 0x01, 0x9D, 0x04},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeCommand(tt.function, tt.addr1, tt.addr2, tt.data)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("EncodeCommand() = % X, want % X", got, tt.want)
			}
		})
	}
}

func TestEncodeCommand_EmptyData(t *testing.T) {
	frame := EncodeCommand(FuncReadParameter, 0x01, 0x01, nil)

	if len(frame) != HeaderSize+ChecksumSize {
		t.Fatalf("frame length = %d, want %d", len(frame), HeaderSize+ChecksumSize)
	}
	if frame[1] != LengthOverhead || frame[2] != 0 {
		t.Fatalf("declared length = %02X %02X, want 07 00", frame[1], frame[2])
	}
}

func TestSetParameter_MatchesEncodeCommand(t *testing.T) {
	reg := Register{Address1: AddrSystemParameter, Address2: RegRoomType}

	got := SetParameter(reg, 3)
	want := EncodeCommand(FuncSetParameter, AddrSystemParameter, RegRoomType, []byte{3})

	if !bytes.Equal(got, want) {
		t.Fatalf("SetParameter() = % X, want % X", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []Packet{
		{Function: FuncProactiveReport, Address1: 3, Address2: 5, Payload: []byte{0x00, 0xFF, 0xFF}},
		{Function: FuncSetParameterAck, Address1: 4, Address2: 0x10, Payload: []byte{0x03}},
		{Function: 0x7F, Address1: 0xFF, Address2: 0x00, Payload: []byte{}},
		{Function: FuncProactiveReport, Address1: 3, Address2: 6, Payload: bytes.Repeat([]byte{0x55}, 300)},
	}

	for _, want := range tests {
		rd := NewReader(bytes.NewReader(want.Encode()), nil)

		got, err := rd.ReadPacket()
		if err != nil {
			t.Fatalf("ReadPacket(%v) err=%v", want, err)
		}
		if got.Function != want.Function || got.Address1 != want.Address1 || got.Address2 != want.Address2 {
			t.Fatalf("header mismatch: got %v want %v", got, want)
		}
		if !bytes.Equal(got.Payload, want.Payload) {
			t.Fatalf("payload mismatch: got % X want % X", got.Payload, want.Payload)
		}
	}
}
