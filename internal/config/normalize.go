// internal/config/normalize.go
package config

import "strings"

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Device.Protocol == "" {
		cfg.Device.Protocol = ProtocolAuto
	}
	if cfg.Device.TimeoutMs == 0 {
		cfg.Device.TimeoutMs = 5000
	}

	if cfg.MQTT.TopicPrefix != "" {
		cfg.MQTT.TopicPrefix = strings.TrimRight(cfg.MQTT.TopicPrefix, "/")
	}
	if cfg.MQTT.ClientID == "" {
		cfg.MQTT.ClientID = "komfovent-bridge"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}
