// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/mmwave-presence/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	// ------------------------------------------------------------
	// SENSOR
	// ------------------------------------------------------------

	// sensor name sanity (ASCII only, it ends up in the status block)
	for i := 0; i < len(cfg.Sensor.Name); i++ {
		if cfg.Sensor.Name[i] > 0x7F {
			return fmt.Errorf(
				"sensor %q: name must contain ASCII characters only",
				cfg.Sensor.Name,
			)
		}
	}

	// ------------------------------------------------------------
	// SERIAL
	// ------------------------------------------------------------

	if cfg.Serial.Device == "" {
		return fmt.Errorf("serial.device is required")
	}
	if cfg.Serial.Baud < 0 {
		return fmt.Errorf("serial.baud must be >= 0 (got %d)", cfg.Serial.Baud)
	}
	if cfg.Serial.TimeoutMs < 0 {
		return fmt.Errorf("serial.timeout_ms must be >= 0 (got %d)", cfg.Serial.TimeoutMs)
	}
	if cfg.Serial.SettleMs != nil && *cfg.Serial.SettleMs < 0 {
		return fmt.Errorf("serial.settle_ms must be >= 0 (got %d)", *cfg.Serial.SettleMs)
	}

	// ------------------------------------------------------------
	// HANDSHAKE
	// ------------------------------------------------------------

	if cfg.Handshake.AckTimeoutMs < 0 {
		return fmt.Errorf("handshake.ack_timeout_ms must be >= 0 (got %d)", cfg.Handshake.AckTimeoutMs)
	}
	if cfg.Handshake.MaxAttempts < 0 {
		return fmt.Errorf("handshake.max_attempts must be >= 0 (got %d)", cfg.Handshake.MaxAttempts)
	}

	// ------------------------------------------------------------
	// MQTT (OPT-IN)
	// ------------------------------------------------------------

	if cfg.MQTT.Broker != "" {
		if cfg.MQTT.QoS > 2 {
			return fmt.Errorf("mqtt.qos must be 0, 1 or 2 (got %d)", cfg.MQTT.QoS)
		}
		if cfg.MQTT.Topic == "" && cfg.Sensor.Name == "" {
			return fmt.Errorf("mqtt.topic is required when sensor.name is empty")
		}
	}

	// ------------------------------------------------------------
	// LINK STATUS BLOCK (OPT-IN)
	// ------------------------------------------------------------

	if cfg.Status.Endpoint != "" {
		// base_slot is a block index: the block starts at base_slot * SlotsPerDevice
		start := uint32(cfg.Status.BaseSlot) * status.SlotsPerDevice
		end := start + status.SlotsPerDevice - 1
		if end > 0xFFFF {
			return fmt.Errorf(
				"status.base_slot %d: block %d-%d exceeds the register space",
				cfg.Status.BaseSlot,
				start,
				end,
			)
		}
		if cfg.Status.TimeoutMs < 0 {
			return fmt.Errorf("status.timeout_ms must be >= 0 (got %d)", cfg.Status.TimeoutMs)
		}
	}

	if cfg.QueueSize < 0 {
		return fmt.Errorf("queue_size must be >= 0 (got %d)", cfg.QueueSize)
	}

	return nil
}
