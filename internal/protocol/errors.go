// internal/protocol/errors.go
package protocol

import (
	"errors"
	"fmt"
)

// Error codes surfaced in the link status block.
const (
	CodeChecksum        uint16 = 2
	CodeTruncated       uint16 = 3
	CodeMalformedLength uint16 = 4
)

// ErrTruncatedPacket means the stream ended or failed in the middle of a frame.
// The underlying cause is wrapped.
var ErrTruncatedPacket = errors.New("protocol: truncated packet")

// truncated keeps the cause reachable through errors.Is/As.
type truncatedError struct {
	stage string
	cause error
}

func (e *truncatedError) Error() string {
	return fmt.Sprintf("%v: reading %s: %v", ErrTruncatedPacket, e.stage, e.cause)
}

func (e *truncatedError) Unwrap() []error { return []error{ErrTruncatedPacket, e.cause} }

func (e *truncatedError) Code() uint16 { return CodeTruncated }

// ChecksumError reports a frame whose CRC did not match.
// The frame is discarded; the next read resynchronizes.
type ChecksumError struct {
	Register Register
	Computed uint16
	Received uint16
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("protocol: checksum mismatch reg=%s computed=0x%04X received=0x%04X",
		e.Register, e.Computed, e.Received)
}

func (e *ChecksumError) Code() uint16 { return CodeChecksum }

// MalformedLengthError reports a declared length too short to hold a frame.
type MalformedLengthError struct {
	Length uint16
}

func (e *MalformedLengthError) Error() string {
	return fmt.Sprintf("protocol: malformed length %d (minimum %d)", e.Length, LengthOverhead)
}

func (e *MalformedLengthError) Code() uint16 { return CodeMalformedLength }

// IsRecoverable reports whether err is protocol noise:
// the bad frame was dropped and reading can simply continue.
func IsRecoverable(err error) bool {
	var ce *ChecksumError
	if errors.As(err, &ce) {
		return true
	}
	var me *MalformedLengthError
	return errors.As(err, &me)
}
