// internal/radar/sensor.go
package radar

import (
	"context"
	"io"
	"log"

	"github.com/tamzrod/mmwave-presence/internal/protocol"
	"github.com/tamzrod/mmwave-presence/internal/sink"
)

// Reference register values.
const (
	DefaultRoomType      uint8 = 3
	DefaultGearThreshold uint8 = 1
)

// SensorConfig is written to the radar during Initialize.
type SensorConfig struct {
	RoomType      uint8
	GearThreshold uint8
}

func DefaultSensorConfig() SensorConfig {
	return SensorConfig{
		RoomType:      DefaultRoomType,
		GearThreshold: DefaultGearThreshold,
	}
}

// Sensor is one radar session over a byte stream.
// The stream is owned by the session; callers must not read or write it concurrently.
type Sensor struct {
	rw     io.ReadWriter
	reader *protocol.Reader
	opts   Options
	logger *log.Logger
}

// New wraps rw. rw should return an idle error (stream.ErrTimeout) when no
// data is available so that Initialize and Run can observe cancellation.
func New(rw io.ReadWriter, opts ...Option) *Sensor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Sensor{
		rw:     rw,
		reader: protocol.NewReader(rw, logger),
		opts:   o,
		logger: logger,
	}
}

// Stats exposes the frame reader counters.
func (s *Sensor) Stats() protocol.Stats { return s.reader.Stats() }

// Start runs the handshake and then the report loop.
// It returns the handshake error, or whatever ends Run.
func (s *Sensor) Start(ctx context.Context, cfg SensorConfig, out sink.Sink) error {
	if err := s.Initialize(ctx, cfg); err != nil {
		return err
	}
	return s.Run(ctx, out)
}

func (s *Sensor) report(err error) {
	if s.opts.ErrorHandler != nil {
		s.opts.ErrorHandler(err)
	}
}

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		b = b[n:]
	}
	return nil
}
