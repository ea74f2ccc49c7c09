// cmd/komfoventd/serve.go
package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"komfovent-bridge/internal/config"
	"komfovent-bridge/internal/device"
	"komfovent-bridge/internal/modbus"
	"komfovent-bridge/internal/poller"
	"komfovent-bridge/internal/publish"
	"komfovent-bridge/internal/status"
)

const (
	// maxCycleFailures is how many consecutive failed poll cycles are
	// tolerated before the connection is torn down and re-established.
	maxCycleFailures = 5

	reconnectDelay = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Poll the unit and publish state",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	logger, err := initLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var pub *publish.Publisher
	if cfg.MQTT.Enabled {
		pub, err = publish.Connect(publish.Config{
			BrokerURL:   cfg.MQTT.BrokerURL,
			ClientID:    cfg.MQTT.ClientID,
			Username:    cfg.MQTT.Username,
			Password:    cfg.MQTT.Password,
			TopicPrefix: cfg.MQTT.TopicPrefix,
			QoS:         byte(cfg.MQTT.QoS),
		}, logger)
		if err != nil {
			return err
		}
		defer pub.Close()
	}

	logger.Info("starting",
		zap.String("endpoint", cfg.Device.Endpoint),
		zap.String("protocol", cfg.Device.Protocol),
		zap.Int("interval_ms", cfg.Poll.IntervalMs),
	)

	for {
		err := serveConnection(ctx, cfg, pub, logger)
		if ctx.Err() != nil {
			logger.Info("shutting down")
			return nil
		}
		logger.Error("connection lost, reconnecting",
			zap.Error(err),
			zap.Duration("delay", reconnectDelay))

		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case <-time.After(reconnectDelay):
		}
	}
}

// serveConnection runs one device connection until the context is
// cancelled or too many poll cycles fail in a row.
func serveConnection(ctx context.Context, cfg *config.Config, pub *publish.Publisher, logger *zap.Logger) error {
	dev, err := openDevice(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer dev.Close()

	p, err := poller.New(
		poller.Config{Interval: time.Duration(cfg.Poll.IntervalMs) * time.Millisecond},
		dev.Transport(),
		dev.Catalog(),
		dev.Identity(),
		logger,
	)
	if err != nil {
		return err
	}

	connCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := make(chan poller.Result, 1)
	go p.Run(connCtx, out)

	var tracker status.Tracker
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-out:
			if res.Err != nil {
				changed := tracker.RecordFailure(res.Err)
				snap := tracker.Snapshot()
				logger.Warn("poll cycle failed",
					zap.Int("consecutive", snap.ConsecutiveFailures),
					zap.Error(res.Err))
				if pub != nil && changed {
					if err := pub.PublishStatus(snap); err != nil {
						logger.Warn("status publish failed", zap.Error(err))
					}
				}
				if snap.ConsecutiveFailures >= maxCycleFailures {
					return fmt.Errorf("%d consecutive poll failures: %w",
						snap.ConsecutiveFailures, res.Err)
				}
				continue
			}

			changed := tracker.RecordSuccess(res.At)
			if pub == nil {
				logger.Info("poll cycle complete", zap.Int("registers", len(res.Snapshot)))
				continue
			}
			if changed {
				if err := pub.PublishStatus(tracker.Snapshot()); err != nil {
					logger.Warn("status publish failed", zap.Error(err))
				}
			}
			if err := pub.PublishSnapshot(dev.Identity(), res.Snapshot); err != nil {
				logger.Warn("publish failed", zap.Error(err))
			}
		}
	}
}

// openDevice dials the controller and resolves its identity.
func openDevice(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*device.Device, error) {
	assumeC4 := cfg.Device.Protocol == config.ProtocolC4

	// The extended catalog is 1-based while the wire is 0-based. The
	// legacy map embeds absolute wire numbering.
	base := -1
	if assumeC4 {
		base = 0
	}

	client := modbus.NewClient(modbus.Config{
		Endpoint:    cfg.Device.Endpoint,
		SlaveID:     cfg.Device.SlaveID,
		Timeout:     time.Duration(cfg.Device.TimeoutMs) * time.Millisecond,
		AddressBase: base,
	}, logger)

	return device.Connect(ctx, client, assumeC4, logger)
}
