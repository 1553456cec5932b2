// internal/sink/mqtt.go
package sink

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/tamzrod/mmwave-presence/internal/protocol"
)

// MQTTConfig is the broker connection for the presence publisher.
type MQTTConfig struct {
	Broker   string // e.g. tcp://10.1.1.2:1883
	ClientID string
	Topic    string
	QoS      byte
	Retained bool
	Timeout  time.Duration
}

// MQTT publishes occupancy changes as { "presence": "<state>" }.
// Only occupancy events are published; wrap it in Dedup to publish changes only.
type MQTT struct {
	topic   string
	logger  *log.Logger
	publish func(topic string, payload []byte) error
	closeFn func()
}

type presenceMessage struct {
	Presence string `json:"presence"`
}

// NewMQTT connects to the broker. Reconnects are handled by the client.
func NewMQTT(cfg MQTTConfig, logger *log.Logger) (*MQTT, error) {
	if cfg.Broker == "" {
		return nil, errors.New("sink mqtt: broker required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("sink mqtt: topic required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID).
		SetKeepAlive(60 * time.Second).
		SetConnectTimeout(cfg.Timeout).
		SetAutoReconnect(true).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.Printf("mqtt connection lost (broker=%s): %v", cfg.Broker, err)
		})

	client := mqtt.NewClient(opts)

	tok := client.Connect()
	if !tok.WaitTimeout(cfg.Timeout) {
		return nil, fmt.Errorf("sink mqtt: connect %s: timeout after %v", cfg.Broker, cfg.Timeout)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("sink mqtt: connect %s: %w", cfg.Broker, err)
	}
	logger.Printf("mqtt connected (broker=%s topic=%s)", cfg.Broker, cfg.Topic)

	return &MQTT{
		topic:  cfg.Topic,
		logger: logger,
		publish: func(topic string, payload []byte) error {
			t := client.Publish(topic, cfg.QoS, cfg.Retained, payload)
			if !t.WaitTimeout(cfg.Timeout) {
				return fmt.Errorf("publish timeout after %v", cfg.Timeout)
			}
			return t.Error()
		},
		closeFn: func() { client.Disconnect(250) },
	}, nil
}

func (m *MQTT) Deliver(ev protocol.Event) {
	if !ev.Kind.IsOccupancy() {
		return
	}

	payload, err := json.Marshal(presenceMessage{Presence: ev.Kind.String()})
	if err != nil {
		m.logger.Printf("mqtt encode failed (topic=%s): %v", m.topic, err)
		return
	}

	if err := m.publish(m.topic, payload); err != nil {
		m.logger.Printf("mqtt publish failed (topic=%s): %v", m.topic, err)
	}
}

// Close disconnects from the broker.
func (m *MQTT) Close() error {
	if m.closeFn != nil {
		m.closeFn()
	}
	return nil
}
