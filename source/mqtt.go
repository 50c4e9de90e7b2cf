package source

import (
	"context"
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/signalsfoundry/gnss-conformance/hal"
)

// MQTTConfig identifies the broker and topic a test rig publishes
// location records on.
type MQTTConfig struct {
	Broker   string // e.g. tcp://localhost:1883
	ClientID string
	Topic    string
	QoS      byte
}

// MQTT subscribes to a broker topic of JSON location payloads and yields
// them as records. Payloads that fail to decode are dropped; a live rig
// may share the topic with other chatter. When the consumer stalls, the
// oldest buffered fix is dropped in favour of the newest.
type MQTT struct {
	client  mqtt.Client
	records chan Record
}

// NewMQTT connects to the broker and subscribes. Callers must Close the
// source to disconnect.
func NewMQTT(cfg MQTTConfig) (*MQTT, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.Broker).
		SetClientID(cfg.ClientID)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connect to %s: %w", cfg.Broker, token.Error())
	}

	s := &MQTT{
		client:  client,
		records: make(chan Record, 16),
	}

	token := client.Subscribe(cfg.Topic, cfg.QoS, func(_ mqtt.Client, msg mqtt.Message) {
		var loc hal.Location
		if err := json.Unmarshal(msg.Payload(), &loc); err != nil {
			return
		}
		s.enqueue(Record{Location: loc, Raw: string(msg.Payload())})
	})
	if token.Wait() && token.Error() != nil {
		client.Disconnect(0)
		return nil, fmt.Errorf("subscribe to %q: %w", cfg.Topic, token.Error())
	}
	return s, nil
}

// enqueue hands a record to Next without ever blocking the broker's
// router goroutine. A full buffer sheds the oldest fix first; the newest
// is the one a conformance run wants.
func (s *MQTT) enqueue(rec Record) {
	for {
		select {
		case s.records <- rec:
			return
		default:
		}
		select {
		case <-s.records:
		default:
		}
	}
}

// Next implements Source. It blocks until a record arrives or the context
// is cancelled; an MQTT stream has no natural end.
func (s *MQTT) Next(ctx context.Context) (Record, error) {
	select {
	case <-ctx.Done():
		return Record{}, ctx.Err()
	case rec := <-s.records:
		return rec, nil
	}
}

// Close disconnects from the broker.
func (s *MQTT) Close() {
	s.client.Disconnect(250)
}
