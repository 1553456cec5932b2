// internal/config/normalize.go
package config

import "github.com/tamzrod/mmwave-presence/internal/status"

// Defaults applied by Normalize.
const (
	DefaultRoomType       uint8 = 3
	DefaultGearThreshold  uint8 = 1
	DefaultBaud                 = 9600
	DefaultSerialTimeout        = 500
	DefaultSettleMs             = 1500
	DefaultAckTimeoutMs         = 2000
	DefaultMaxAttempts          = 5
	DefaultQueueSize            = 64
	DefaultStatusTimeout        = 1000
	DefaultStatusUnitID   uint8 = 1
	DefaultMQTTTopicRoot        = "zigbee2mqtt/"
	DefaultMQTTClientRoot       = "mmwave-"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	// ------------------------------------------------------------
	// SENSOR
	// ------------------------------------------------------------

	if cfg.Sensor.RoomType == nil {
		v := DefaultRoomType
		cfg.Sensor.RoomType = &v
	}
	if cfg.Sensor.GearThreshold == nil {
		v := DefaultGearThreshold
		cfg.Sensor.GearThreshold = &v
	}

	// ------------------------------------------------------------
	// SERIAL / HANDSHAKE
	// ------------------------------------------------------------

	if cfg.Serial.Baud == 0 {
		cfg.Serial.Baud = DefaultBaud
	}
	if cfg.Serial.TimeoutMs == 0 {
		cfg.Serial.TimeoutMs = DefaultSerialTimeout
	}
	if cfg.Serial.SettleMs == nil {
		v := DefaultSettleMs
		cfg.Serial.SettleMs = &v
	}
	if cfg.Handshake.AckTimeoutMs == 0 {
		cfg.Handshake.AckTimeoutMs = DefaultAckTimeoutMs
	}
	if cfg.Handshake.MaxAttempts == 0 {
		cfg.Handshake.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.QueueSize == 0 {
		cfg.QueueSize = DefaultQueueSize
	}

	// ------------------------------------------------------------
	// MQTT
	// ------------------------------------------------------------

	if cfg.MQTT.Broker != "" {
		if cfg.MQTT.Topic == "" {
			cfg.MQTT.Topic = DefaultMQTTTopicRoot + cfg.Sensor.Name
		}
		if cfg.MQTT.ClientID == "" {
			cfg.MQTT.ClientID = DefaultMQTTClientRoot + cfg.Sensor.Name
		}
	}

	// ------------------------------------------------------------
	// LINK STATUS BLOCK
	// ------------------------------------------------------------

	if cfg.Status.Endpoint != "" {
		if cfg.Status.UnitID == 0 {
			cfg.Status.UnitID = DefaultStatusUnitID
		}
		if cfg.Status.TimeoutMs == 0 {
			cfg.Status.TimeoutMs = DefaultStatusTimeout
		}
	}
}

// DeviceName is the sensor name as stored in the status block:
// ASCII already validated, truncated to the slot capacity.
func (c *Config) DeviceName() string {
	name := c.Sensor.Name
	if len(name) > status.DeviceNameMaxChars {
		name = name[:status.DeviceNameMaxChars]
	}
	return name
}
