// internal/config/validate_test.go
package config

import "testing"

// helper to build a minimal valid config quickly
func base() *Config {
	return &Config{
		Sensor: SensorConfig{Name: "presence-bedroom"},
		Serial: SerialConfig{Device: "/dev/ttyS0"},
	}
}

func intp(v int) *int { return &v }

// ---- tests ----

func TestValidate_MinimalOK(t *testing.T) {
	if err := Validate(base()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name string
		mut  func(c *Config)
	}{
		{"missing device", func(c *Config) { c.Serial.Device = "" }},
		{"non-ascii name", func(c *Config) { c.Sensor.Name = "chambre-é" }},
		{"negative baud", func(c *Config) { c.Serial.Baud = -1 }},
		{"negative timeout", func(c *Config) { c.Serial.TimeoutMs = -1 }},
		{"negative settle", func(c *Config) { c.Serial.SettleMs = intp(-5) }},
		{"negative ack timeout", func(c *Config) { c.Handshake.AckTimeoutMs = -1 }},
		{"negative attempts", func(c *Config) { c.Handshake.MaxAttempts = -1 }},
		{"bad qos", func(c *Config) {
			c.MQTT.Broker = "tcp://broker:1883"
			c.MQTT.QoS = 3
		}},
		{"mqtt without topic or name", func(c *Config) {
			c.Sensor.Name = ""
			c.MQTT.Broker = "tcp://broker:1883"
		}},
		{"status block past register space", func(c *Config) {
			c.Status.Endpoint = "10.0.0.5:502"
			c.Status.BaseSlot = 3276
		}},
		{"negative queue", func(c *Config) { c.QueueSize = -1 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mut(cfg)
			if err := Validate(cfg); err == nil {
				t.Fatalf("expected error, got nil")
			}
		})
	}
}

func TestValidate_OptInSectionsIgnoredWhenDisabled(t *testing.T) {
	cfg := base()
	cfg.MQTT.QoS = 9             // broker empty => not checked
	cfg.Status.BaseSlot = 0xFFFF // endpoint empty => not checked

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_StatusBlockAtTopOfSpace(t *testing.T) {
	cfg := base()
	cfg.Status.Endpoint = "10.0.0.5:502"
	cfg.Status.BaseSlot = 3275 // registers 65500-65519

	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	cfg := base()
	_ = Validate(cfg)

	if cfg.Sensor.RoomType != nil || cfg.Serial.Baud != 0 || cfg.QueueSize != 0 {
		t.Fatalf("Validate mutated config: %+v", cfg)
	}
}
