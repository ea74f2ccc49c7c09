// internal/publish/publisher.go
package publish

import (
	"errors"
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"

	"komfovent-bridge/internal/device"
	"komfovent-bridge/internal/poller"
	"komfovent-bridge/internal/status"
)

const (
	connectTimeout    = 10 * time.Second
	publishTimeout    = 5 * time.Second
	disconnectQuiesce = 1000 // milliseconds
	keepAlive         = 60 * time.Second
)

var (
	ErrConnectionFailed = errors.New("publish: broker connection failed")
	ErrPublishFailed    = errors.New("publish: publish failed")
)

// Config selects the broker and the topic namespace.
type Config struct {
	BrokerURL   string // tcp://host:1883 or ssl://host:8883
	ClientID    string
	Username    string
	Password    string
	TopicPrefix string
	QoS         byte
}

// Publisher pushes poll snapshots to an MQTT broker. State topics are
// retained so late subscribers see the last known state immediately.
type Publisher struct {
	cfg    Config
	client pahomqtt.Client
	log    *zap.Logger
}

// Connect dials the broker. The availability topic carries a retained
// last-will so subscribers learn about a crashed bridge without waiting
// for a keepalive timeout.
func Connect(cfg Config, log *zap.Logger) (*Publisher, error) {
	if log == nil {
		log = zap.NewNop()
	}

	p := &Publisher{cfg: cfg, log: log}

	opts := pahomqtt.NewClientOptions()
	opts.AddBroker(cfg.BrokerURL)
	opts.SetClientID(cfg.ClientID)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(true)
	opts.SetConnectTimeout(connectTimeout)
	opts.SetKeepAlive(keepAlive)
	opts.SetWill(p.topic(topicAvailability), payloadOffline, cfg.QoS, true)
	opts.SetOnConnectHandler(func(_ pahomqtt.Client) {
		p.publishAvailability(payloadOnline)
	})
	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		log.Warn("broker connection lost", zap.Error(err))
	})

	p.client = pahomqtt.NewClient(opts)
	token := p.client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, connectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	return p, nil
}

// PublishSnapshot pushes one poll cycle: the named state document and the
// raw register dump, both retained.
func (p *Publisher) PublishSnapshot(id device.Identity, snap poller.Snapshot) error {
	state, err := StatePayload(id, snap)
	if err != nil {
		return err
	}
	raw, err := RegistersPayload(snap)
	if err != nil {
		return err
	}

	if err := p.publish(p.topic(topicState), state); err != nil {
		return err
	}
	return p.publish(p.topic(topicRegisters), raw)
}

// PublishStatus pushes the bridge health document, retained.
func (p *Publisher) PublishStatus(snap status.Snapshot) error {
	payload, err := StatusPayload(snap)
	if err != nil {
		return err
	}
	return p.publish(p.topic(topicStatus), payload)
}

// Close publishes a graceful offline status and disconnects. Distinct from
// the last-will, which only fires on an unclean drop.
func (p *Publisher) Close() error {
	if p.client == nil {
		return nil
	}
	if p.client.IsConnected() {
		p.publishAvailability(payloadOffline)
	}
	p.client.Disconnect(disconnectQuiesce)
	return nil
}

func (p *Publisher) publish(topic string, payload []byte) error {
	token := p.client.Publish(topic, p.cfg.QoS, true, payload)
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("%w: timeout on %s", ErrPublishFailed, topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPublishFailed, topic, err)
	}
	return nil
}

func (p *Publisher) publishAvailability(status string) {
	token := p.client.Publish(p.topic(topicAvailability), p.cfg.QoS, true, status)
	token.WaitTimeout(publishTimeout)
}

func (p *Publisher) topic(suffix string) string {
	return p.cfg.TopicPrefix + "/" + suffix
}
