// internal/stream/serial.go
package stream

import (
	"time"

	"github.com/goburrow/serial"
	"github.com/pkg/errors"
)

// ErrTimeout is returned by Read when no byte arrived within the read timeout.
// It is an idle signal, not a failure: the caller may poll and read again.
var ErrTimeout = errors.New("stream: read timeout")

// Reference line settings for the radar.
const (
	DefaultBaud        = 9600
	DefaultDataBits    = 8
	DefaultStopBits    = 1
	DefaultParity      = "N"
	DefaultReadTimeout = 500 * time.Millisecond
	DefaultSettle      = 1500 * time.Millisecond
)

// Config is the serial line configuration.
type Config struct {
	Device      string
	Baud        int
	ReadTimeout time.Duration

	// Settle is how long to wait after opening before traffic is trusted.
	Settle time.Duration
}

// SerialPort is the radar byte stream.
// It is owned by exactly one reader/writer at a time.
type SerialPort struct {
	port   serial.Port
	device string
}

// opener is swapped in tests.
var opener = serial.Open

// OpenSerial opens the device at 8N1 and waits for the line to settle.
func OpenSerial(cfg Config) (*SerialPort, error) {
	if cfg.Device == "" {
		return nil, errors.New("stream: device required")
	}
	if cfg.Baud <= 0 {
		cfg.Baud = DefaultBaud
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = DefaultReadTimeout
	}

	p, err := opener(&serial.Config{
		Address:  cfg.Device,
		BaudRate: cfg.Baud,
		DataBits: DefaultDataBits,
		StopBits: DefaultStopBits,
		Parity:   DefaultParity,
		Timeout:  cfg.ReadTimeout,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "stream: open %s", cfg.Device)
	}

	if cfg.Settle > 0 {
		time.Sleep(cfg.Settle)
	}

	return &SerialPort{port: p, device: cfg.Device}, nil
}

// Read implements io.Reader. A line timeout with no data becomes ErrTimeout.
func (s *SerialPort) Read(b []byte) (int, error) {
	n, err := s.port.Read(b)
	if err == serial.ErrTimeout {
		if n > 0 {
			return n, nil
		}
		return 0, ErrTimeout
	}
	if err != nil {
		return n, errors.Wrapf(err, "stream: read %s", s.device)
	}
	return n, nil
}

// Write implements io.Writer.
func (s *SerialPort) Write(b []byte) (int, error) {
	n, err := s.port.Write(b)
	if err != nil {
		return n, errors.Wrapf(err, "stream: write %s", s.device)
	}
	return n, nil
}

// Close releases the device. Pending reads return an error.
func (s *SerialPort) Close() error {
	if s == nil || s.port == nil {
		return nil
	}
	return s.port.Close()
}

// Device returns the device path.
func (s *SerialPort) Device() string { return s.device }
