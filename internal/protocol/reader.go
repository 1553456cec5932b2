// internal/protocol/reader.go
package protocol

import (
	"encoding/binary"
	"io"
	"log"
)

// Stats counts protocol noise seen by a Reader.
type Stats struct {
	SkippedBytes   uint64
	ChecksumErrors uint64
	MalformedFrame uint64
	Packets        uint64
}

// Reader parses frames from a byte stream.
// All reads are blocking; it never buffers a partial frame across calls.
type Reader struct {
	r      io.Reader
	logger *log.Logger
	stats  Stats

	skipped  []byte
	nSkipped int
}

// maxSkippedLogged bounds the bytes echoed in one resync log line.
const maxSkippedLogged = 32

// NewReader wraps r. A nil logger discards log output.
func NewReader(r io.Reader, logger *log.Logger) *Reader {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Reader{r: r, logger: logger}
}

// Stats returns a copy of the noise counters.
func (rd *Reader) Stats() Stats { return rd.stats }

// ReadPacket reads the next valid frame.
//
// Error contract:
//   - error before the first frame byte: returned as-is (idle timeout / closed stream)
//   - stream failure mid-frame: wraps ErrTruncatedPacket
//   - *MalformedLengthError, *ChecksumError: frame dropped, see IsRecoverable
func (rd *Reader) ReadPacket() (*Packet, error) {
	if err := rd.sync(); err != nil {
		return nil, err
	}

	// sync byte already consumed; rest of the fixed header
	var hdr [HeaderSize]byte
	hdr[0] = SyncByte
	if _, err := io.ReadFull(rd.r, hdr[1:3]); err != nil {
		return nil, &truncatedError{stage: "length", cause: eof(err)}
	}

	length := binary.LittleEndian.Uint16(hdr[1:3])
	if length < LengthOverhead {
		rd.stats.MalformedFrame++
		err := &MalformedLengthError{Length: length}
		rd.logger.Printf("protocol: drop frame: %v", err)
		return nil, err
	}

	if _, err := io.ReadFull(rd.r, hdr[3:HeaderSize]); err != nil {
		return nil, &truncatedError{stage: "header", cause: eof(err)}
	}

	payload := make([]byte, int(length)-LengthOverhead)
	if _, err := io.ReadFull(rd.r, payload); err != nil {
		return nil, &truncatedError{stage: "payload", cause: eof(err)}
	}

	var crc [ChecksumSize]byte
	if _, err := io.ReadFull(rd.r, crc[:]); err != nil {
		return nil, &truncatedError{stage: "checksum", cause: eof(err)}
	}

	received := binary.LittleEndian.Uint16(crc[:])
	computed := Checksum(append(hdr[:], payload...))

	p := &Packet{
		Function: hdr[3],
		Address1: hdr[4],
		Address2: hdr[5],
		Payload:  payload,
		Checksum: received,
	}

	if computed != received {
		rd.stats.ChecksumErrors++
		err := &ChecksumError{Register: p.Register(), Computed: computed, Received: received}
		rd.logger.Printf("protocol: drop frame: %v", err)
		return nil, err
	}

	rd.stats.Packets++
	return p, nil
}

// sync consumes bytes one at a time until SyncByte.
// Skipped bytes are logged once per resync.
func (rd *Reader) sync() error {
	var b [1]byte
	defer rd.flushSkipped()

	for {
		if _, err := io.ReadFull(rd.r, b[:]); err != nil {
			return err
		}
		if b[0] == SyncByte {
			return nil
		}
		rd.stats.SkippedBytes++
		rd.nSkipped++
		if len(rd.skipped) < maxSkippedLogged {
			rd.skipped = append(rd.skipped, b[0])
		}
	}
}

func (rd *Reader) flushSkipped() {
	if rd.nSkipped == 0 {
		return
	}
	rd.logger.Printf("protocol: resync skipped %d byte(s): % X", rd.nSkipped, rd.skipped)
	rd.skipped = rd.skipped[:0]
	rd.nSkipped = 0
}

// eof turns a clean EOF inside a frame into ErrUnexpectedEOF.
func eof(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
