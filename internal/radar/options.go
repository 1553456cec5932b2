// internal/radar/options.go
package radar

import (
	"log"
	"time"
)

// Options holds the session tuning.
type Options struct {
	// Logger receives protocol and handshake logs (optional)
	Logger *log.Logger

	// AckTimeout bounds the wait for one set-parameter acknowledgment
	AckTimeout time.Duration

	// MaxAttempts is the number of sends per register before giving up
	MaxAttempts int

	// ExtendedReports enables approach/away and heartbeat decoding
	ExtendedReports bool

	// ErrorHandler is told about non-fatal protocol noise (optional)
	ErrorHandler func(error)
}

func defaultOptions() Options {
	return Options{
		AckTimeout:  2 * time.Second,
		MaxAttempts: 5,
	}
}

// Option is a functional option for configuring the Sensor.
type Option func(*Options)

// WithLogger sets the logger. A nil logger keeps output discarded.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithAckTimeout sets how long one handshake attempt waits for its ack.
func WithAckTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.AckTimeout = d
		}
	}
}

// WithMaxAttempts sets the number of sends per register.
func WithMaxAttempts(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxAttempts = n
		}
	}
}

func WithExtendedReports(on bool) Option {
	return func(o *Options) {
		o.ExtendedReports = on
	}
}

func WithErrorHandler(fn func(error)) Option {
	return func(o *Options) {
		if fn != nil {
			o.ErrorHandler = fn
		}
	}
}
