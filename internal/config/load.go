// internal/config/load.go
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load reads configuration from the given file, overlays KOMFOVENT_*
// environment variables, then validates and normalizes the result.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/komfovent-bridge/")
	}

	v.SetEnvPrefix("KOMFOVENT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		// missing file is fine: defaults plus environment
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	Normalize(cfg)

	return cfg, nil
}

// Sample renders the default configuration as YAML, for `config generate`.
func Sample() ([]byte, error) {
	cfg := Default()
	cfg.Device.Endpoint = "192.168.1.50:502"
	cfg.MQTT.BrokerURL = "tcp://localhost:1883"
	return yaml.Marshal(cfg)
}
