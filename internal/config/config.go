// internal/config/config.go
package config

type Config struct {
	Device  DeviceConfig  `yaml:"device" mapstructure:"device"`
	Poll    PollConfig    `yaml:"poll" mapstructure:"poll"`
	MQTT    MQTTConfig    `yaml:"mqtt" mapstructure:"mqtt"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// ---- DEVICE ----

type DeviceConfig struct {
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	SlaveID  uint8  `yaml:"slave_id" mapstructure:"slave_id"`

	// Protocol selects the register map: "auto" probes the firmware
	// register, "c4" skips the probe for controllers that have none.
	Protocol string `yaml:"protocol" mapstructure:"protocol"`

	TimeoutMs int `yaml:"timeout_ms" mapstructure:"timeout_ms"`
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms" mapstructure:"interval_ms"`
}

// ---- MQTT ----

type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled" mapstructure:"enabled"`
	BrokerURL   string `yaml:"broker_url" mapstructure:"broker_url"`
	ClientID    string `yaml:"client_id" mapstructure:"client_id"`
	Username    string `yaml:"username" mapstructure:"username"`
	Password    string `yaml:"password" mapstructure:"password"`
	TopicPrefix string `yaml:"topic_prefix" mapstructure:"topic_prefix"`
	QoS         int    `yaml:"qos" mapstructure:"qos"`
}

// ---- LOGGING ----

type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Protocol values accepted by DeviceConfig.Protocol.
const (
	ProtocolAuto = "auto"
	ProtocolC4   = "c4"
)

// Default returns the configuration used when a key is absent from the
// file and the environment.
func Default() *Config {
	return &Config{
		Device: DeviceConfig{
			SlaveID:   1,
			Protocol:  ProtocolAuto,
			TimeoutMs: 5000,
		},
		Poll: PollConfig{
			IntervalMs: 30000,
		},
		MQTT: MQTTConfig{
			Enabled:     true,
			ClientID:    "komfovent-bridge",
			TopicPrefix: "komfovent",
			QoS:         1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
