// cmd/komfoventd/ops.go
package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"komfovent-bridge/internal/config"
	"komfovent-bridge/internal/device"
	"komfovent-bridge/internal/registers"
)

const opTimeout = 30 * time.Second

var readCmd = &cobra.Command{
	Use:   "read <register>",
	Short: "Read one register",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseAddr(args[0])
		if err != nil {
			return err
		}
		return withDevice(func(ctx context.Context, dev *device.Device) error {
			v, err := dev.Read(ctx, addr)
			if err != nil {
				return err
			}
			if scaled, ok := registers.Scaled(addr, v); ok {
				fmt.Printf("%d = %g (raw %d)\n", addr, scaled, v)
			} else {
				fmt.Printf("%d = %d\n", addr, v)
			}
			return nil
		})
	},
}

var writeCmd = &cobra.Command{
	Use:   "write <register> <value>",
	Short: "Write one register",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := parseAddr(args[0])
		if err != nil {
			return err
		}
		value, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", args[1], err)
		}
		return withDevice(func(ctx context.Context, dev *device.Device) error {
			if err := dev.Write(ctx, addr, value); err != nil {
				return err
			}
			fmt.Printf("wrote %d to register %d\n", value, addr)
			return nil
		})
	},
}

var modeMinutes int

var modeCmd = &cobra.Command{
	Use:   "mode <name>",
	Short: "Switch the operation mode",
	Long: `Switch the unit's operation mode.

Modes: standby, away, normal, intensive, boost, kitchen, fireplace,
override, holiday, air_quality, off. Timer modes (kitchen, fireplace,
override) accept --minutes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := device.ParseOperationMode(args[0])
		if err != nil {
			return err
		}
		return withDevice(func(ctx context.Context, dev *device.Device) error {
			return dev.SetOperationMode(ctx, mode, modeMinutes)
		})
	},
}

var resetAlarmsCmd = &cobra.Command{
	Use:   "reset-alarms",
	Short: "Acknowledge and reset active alarms",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(ctx context.Context, dev *device.Device) error {
			return dev.ResetAlarms(ctx)
		})
	},
}

var cleanFiltersCmd = &cobra.Command{
	Use:   "clean-filters",
	Short: "Reset the filter contamination counter",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(ctx context.Context, dev *device.Device) error {
			return dev.CleanFilters(ctx)
		})
	},
}

var syncTimeCmd = &cobra.Command{
	Use:   "sync-time",
	Short: "Set the controller clock from the local clock",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDevice(func(ctx context.Context, dev *device.Device) error {
			return dev.SetSystemTime(ctx, time.Now())
		})
	},
}

func init() {
	modeCmd.Flags().IntVar(&modeMinutes, "minutes", device.DefaultModeTimerMinutes, "timer duration for timer-driven modes")
}

// withDevice loads config, opens the device, runs fn and closes.
func withDevice(fn func(ctx context.Context, dev *device.Device) error) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	logger := zap.NewNop()

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	dev, err := openDevice(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer dev.Close()

	return fn(ctx, dev)
}

func parseAddr(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid register address %q: %w", s, err)
	}
	return uint16(n), nil
}
