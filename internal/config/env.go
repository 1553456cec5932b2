// internal/config/env.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Environment overrides. A set, non-empty variable wins over the file.
const (
	EnvSerialDevice   = "PRESENCE_SERIAL_DEVICE"
	EnvMQTTBroker     = "PRESENCE_MQTT_BROKER"
	EnvMQTTTopic      = "PRESENCE_MQTT_TOPIC"
	EnvSensorName     = "PRESENCE_SENSOR_NAME"
	EnvStatusEndpoint = "PRESENCE_STATUS_ENDPOINT"
)

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// A missing file is not an error. Variables already set are kept.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays environment overrides onto cfg.
// It runs before Validate.
func ApplyEnv(cfg *Config) {
	ApplyEnvFunc(cfg, os.Getenv)
}

// ApplyEnvFunc is ApplyEnv with an explicit lookup.
func ApplyEnvFunc(cfg *Config, getenv func(string) string) {
	if cfg == nil {
		return
	}

	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	set(&cfg.Serial.Device, EnvSerialDevice)
	set(&cfg.MQTT.Broker, EnvMQTTBroker)
	set(&cfg.MQTT.Topic, EnvMQTTTopic)
	set(&cfg.Sensor.Name, EnvSensorName)
	set(&cfg.Status.Endpoint, EnvStatusEndpoint)
}
