// cmd/komfoventd/root.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"komfovent-bridge/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "komfoventd",
	Short: "Komfovent ventilation unit bridge",
	Long: `Bridge for Komfovent air handling units over Modbus TCP.

Polls the controller's register map on a fixed interval and publishes
decoded state to an MQTT broker. Supports the C6, C6M and C8 controller
families with firmware autodetection, and the legacy C4 family by
explicit configuration.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Build metadata, overridden via -ldflags at release time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("komfoventd version %s\n", Version)
		fmt.Printf("  Commit: %s\n", GitCommit)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration file commands",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		fmt.Println("configuration is valid")
		fmt.Printf("  Device: %s (slave %d, %s)\n",
			cfg.Device.Endpoint, cfg.Device.SlaveID, cfg.Device.Protocol)
		fmt.Printf("  Poll interval: %dms\n", cfg.Poll.IntervalMs)
		if cfg.MQTT.Enabled {
			fmt.Printf("  MQTT: %s prefix=%s\n", cfg.MQTT.BrokerURL, cfg.MQTT.TopicPrefix)
		} else {
			fmt.Println("  MQTT: disabled")
		}
		return nil
	},
}

var configGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print a sample configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := config.Sample()
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "configuration file path")

	configCmd.AddCommand(configValidateCmd, configGenerateCmd)

	rootCmd.AddCommand(
		serveCmd,
		readCmd,
		writeCmd,
		modeCmd,
		resetAlarmsCmd,
		cleanFiltersCmd,
		syncTimeCmd,
		configCmd,
		versionCmd,
	)
}

func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Format == "console" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stdout"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
