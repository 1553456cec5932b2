// internal/config/config.go
package config

type Config struct {
	Sensor    SensorConfig    `yaml:"sensor"`
	Serial    SerialConfig    `yaml:"serial"`
	Handshake HandshakeConfig `yaml:"handshake"`
	MQTT      MQTTConfig      `yaml:"mqtt"`
	Status    StatusConfig    `yaml:"status"`

	// QueueSize bounds the events buffered between the radar loop and the sinks.
	QueueSize int `yaml:"queue_size"`
}

// ---- SENSOR ----

type SensorConfig struct {
	Name string `yaml:"name"`

	// Written during the handshake. nil => reference default.
	RoomType      *uint8 `yaml:"room_type"`
	GearThreshold *uint8 `yaml:"gear_threshold"`

	ExtendedReports bool `yaml:"extended_reports"`
}

// ---- SERIAL ----

type SerialConfig struct {
	Device    string `yaml:"device"`
	Baud      int    `yaml:"baud"`
	TimeoutMs int    `yaml:"timeout_ms"`
	SettleMs  *int   `yaml:"settle_ms"` // nil => default, 0 => no settle
}

// ---- HANDSHAKE ----

type HandshakeConfig struct {
	AckTimeoutMs int `yaml:"ack_timeout_ms"`
	MaxAttempts  int `yaml:"max_attempts"`
}

// ---- MQTT (optional) ----

type MQTTConfig struct {
	Broker   string `yaml:"broker"` // empty => MQTT disabled
	ClientID string `yaml:"client_id"`
	Topic    string `yaml:"topic"`
	QoS      uint8  `yaml:"qos"`
	Retained bool   `yaml:"retained"`
}

// ---- LINK STATUS BLOCK (optional) ----

type StatusConfig struct {
	Endpoint  string `yaml:"endpoint"` // empty => status block disabled
	UnitID    uint8  `yaml:"unit_id"`
	BaseSlot  uint16 `yaml:"base_slot"` // block index, not a register address
	TimeoutMs int    `yaml:"timeout_ms"`
}
