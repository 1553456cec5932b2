// cmd/presence/main.go
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/tamzrod/mmwave-presence/internal/config"
	"github.com/tamzrod/mmwave-presence/internal/protocol"
	"github.com/tamzrod/mmwave-presence/internal/radar"
	"github.com/tamzrod/mmwave-presence/internal/sink"
	"github.com/tamzrod/mmwave-presence/internal/status"
	"github.com/tamzrod/mmwave-presence/internal/stream"
	"github.com/tamzrod/mmwave-presence/internal/writer"
)

const envFile = ".env"

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: presence <config.yaml>")
	}

	// --------------------
	// Load + validate config
	// --------------------

	if err := config.LoadEnvFile(envFile); err != nil {
		log.Fatalf("env load failed: %v", err)
	}

	cfg, err := config.Load(os.Args[1])
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	config.ApplyEnv(cfg)

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("presence stopped (sensor=%s): %v", cfg.Sensor.Name, err)
	}
	log.Printf("presence stopped (sensor=%s)", cfg.Sensor.Name)
}

func run(ctx context.Context, cfg *config.Config) error {
	name := cfg.Sensor.Name

	// --------------------
	// Serial link
	// --------------------

	port, err := stream.OpenSerial(stream.Config{
		Device:      cfg.Serial.Device,
		Baud:        cfg.Serial.Baud,
		ReadTimeout: time.Duration(cfg.Serial.TimeoutMs) * time.Millisecond,
		Settle:      time.Duration(*cfg.Serial.SettleMs) * time.Millisecond,
	})
	if err != nil {
		return err
	}
	defer port.Close()
	log.Printf("serial open (sensor=%s device=%s baud=%d)", name, port.Device(), cfg.Serial.Baud)

	// --------------------
	// Sinks
	// --------------------

	sinks := sink.Fanout{sink.NewLog(log.Default(), name)}

	if cfg.MQTT.Broker != "" {
		m, err := sink.NewMQTT(sink.MQTTConfig{
			Broker:   cfg.MQTT.Broker,
			ClientID: cfg.MQTT.ClientID,
			Topic:    cfg.MQTT.Topic,
			QoS:      cfg.MQTT.QoS,
			Retained: cfg.MQTT.Retained,
		}, log.Default())
		if err != nil {
			return err
		}
		defer m.Close()
		sinks = append(sinks, sink.NewDedup(m))
	}

	// Status writer (optional)
	statusWriter, closeStatus, statusEnabled, err := writer.BuildStatusWriter(cfg)
	if err != nil {
		return err
	}
	if statusEnabled {
		defer closeStatus()
	}

	// --------------------
	// Radar session
	// --------------------

	queue := sink.NewQueue(cfg.QueueSize)

	var crcErrors atomic.Uint64
	noise := make(chan error, 16)

	sensor := radar.New(port,
		radar.WithLogger(log.Default()),
		radar.WithAckTimeout(time.Duration(cfg.Handshake.AckTimeoutMs)*time.Millisecond),
		radar.WithMaxAttempts(cfg.Handshake.MaxAttempts),
		radar.WithExtendedReports(cfg.Sensor.ExtendedReports),
		radar.WithErrorHandler(func(err error) {
			var ce *protocol.ChecksumError
			if errors.As(err, &ce) {
				crcErrors.Add(1)
			}
			select {
			case noise <- err:
			default:
			}
		}),
	)

	sensorCfg := radar.SensorConfig{
		RoomType:      *cfg.Sensor.RoomType,
		GearThreshold: *cfg.Sensor.GearThreshold,
	}

	done := make(chan error, 1)
	go func() {
		done <- sensor.Start(ctx, sensorCfg, queue)
	}()

	// --------------------
	// Orchestrator (owns the snapshot + 1Hz seconds ticker)
	// --------------------

	var snap status.Snapshot
	snap.Health = status.HealthInitializing

	write := func(why string) {
		if !statusEnabled {
			return
		}
		if err := statusWriter.WriteStatus(snap); err != nil {
			log.Printf("status write failed (sensor=%s on=%s): %v", name, why, err)
		}
	}

	// Full block write on start (identity re-assert) if enabled.
	write("start")

	secTicker := time.NewTicker(time.Second)
	defer secTicker.Stop()

	var dropped uint64

	for {
		select {
		case ev := <-queue.Events():
			sinks.Deliver(ev)

			if snap.Health != status.HealthOK {
				// first report after the handshake
				log.Printf("sensor ready (sensor=%s)", name)
				snap.Health = status.HealthOK
				snap.SecondsInError = 0
			}
			snap.Apply(ev)
			write("event")

		case err := <-noise:
			log.Printf("protocol error (sensor=%s): %v", name, err)
			snap.LastErrorCode = errorCode(err)
			snap.ChecksumErrors = status.Saturate16(crcErrors.Load())
			write("error")

		case err := <-done:
			if ctx.Err() != nil {
				return nil
			}

			snap.Health = status.HealthError
			snap.LastErrorCode = errorCode(err)
			write("fatal")
			return err

		case <-secTicker.C:
			if n := queue.Dropped(); n != dropped {
				log.Printf("event queue full (sensor=%s dropped=%d)", name, n-dropped)
				dropped = n
			}

			// Tick 1 Hz while not OK.
			if snap.Health != status.HealthOK && snap.SecondsInError < 65535 {
				snap.SecondsInError++
				write("tick")
			}
		}
	}
}

// errorCode extracts a best-effort uint16 code from an error without assuming concrete types.
// If the error does not expose a code, returns 1 (generic error).
func errorCode(err error) uint16 {
	if err == nil {
		return 0
	}

	type coder interface{ Code() uint16 }

	var c coder
	if errors.As(err, &c) {
		return c.Code()
	}

	return 1
}
