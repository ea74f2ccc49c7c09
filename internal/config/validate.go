// internal/config/validate.go
package config

import (
	"fmt"
	"net"
	"strings"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	// ------------------------------------------------------------
	// DEVICE
	// ------------------------------------------------------------

	if cfg.Device.Endpoint == "" {
		return fmt.Errorf("device: endpoint is required")
	}
	if host, _, err := net.SplitHostPort(cfg.Device.Endpoint); err != nil || host == "" {
		return fmt.Errorf("device: endpoint %q must be host:port", cfg.Device.Endpoint)
	}
	if cfg.Device.SlaveID == 0 {
		return fmt.Errorf("device: slave_id must be 1-255")
	}

	switch cfg.Device.Protocol {
	case "", ProtocolAuto, ProtocolC4:
	default:
		return fmt.Errorf("device: protocol %q must be %q or %q",
			cfg.Device.Protocol, ProtocolAuto, ProtocolC4)
	}

	if cfg.Device.TimeoutMs < 0 {
		return fmt.Errorf("device: timeout_ms must be >= 0")
	}

	// ------------------------------------------------------------
	// POLL
	// ------------------------------------------------------------

	if cfg.Poll.IntervalMs <= 0 {
		return fmt.Errorf("poll: interval_ms must be > 0")
	}

	// ------------------------------------------------------------
	// MQTT (opt-out)
	// ------------------------------------------------------------

	if cfg.MQTT.Enabled {
		if cfg.MQTT.BrokerURL == "" {
			return fmt.Errorf("mqtt: broker_url is required when mqtt is enabled")
		}
		if !strings.Contains(cfg.MQTT.BrokerURL, "://") {
			return fmt.Errorf("mqtt: broker_url %q must include a scheme (tcp:// or ssl://)", cfg.MQTT.BrokerURL)
		}
		if cfg.MQTT.QoS < 0 || cfg.MQTT.QoS > 2 {
			return fmt.Errorf("mqtt: qos must be 0, 1 or 2")
		}
		if strings.ContainsAny(cfg.MQTT.TopicPrefix, "#+") {
			return fmt.Errorf("mqtt: topic_prefix %q must not contain wildcards", cfg.MQTT.TopicPrefix)
		}
	}

	// ------------------------------------------------------------
	// LOGGING
	// ------------------------------------------------------------

	switch cfg.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging: unknown level %q", cfg.Logging.Level)
	}
	switch cfg.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging: unknown format %q", cfg.Logging.Format)
	}

	return nil
}
