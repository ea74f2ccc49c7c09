// internal/poller/poller.go
package poller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"komfovent-bridge/internal/device"
	"komfovent-bridge/internal/registers"
)

// Connected-panels bitmask in RegConnectedPanels.
const (
	panel1Bit = 0x1
	panel2Bit = 0x2
)

// Client abstracts the transport read the poller needs.
type Client interface {
	ReadRegisters(ctx context.Context, start, count uint16) ([]uint16, error)
}

// Config is the immutable runtime config of one poller.
type Config struct {
	Interval time.Duration
}

// Poller executes the read plan for one device on a fixed clock.
type Poller struct {
	cfg     Config
	client  Client
	catalog registers.Catalog
	plan    Plan
	log     *zap.Logger
}

// New creates a poller for an already identified device.
func New(cfg Config, client Client, catalog registers.Catalog, id device.Identity, log *zap.Logger) (*Poller, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if client == nil {
		return nil, errors.New("poller: client required")
	}
	if catalog == nil {
		return nil, errors.New("poller: catalog required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Poller{
		cfg:     cfg,
		client:  client,
		catalog: catalog,
		plan:    BuildPlan(id),
		log:     log,
	}, nil
}

// PollOnce performs exactly one poll cycle.
//
// Mandatory ranges are all-or-nothing: any failure aborts the cycle and no
// snapshot is produced. Optional ranges fail independently; their keys are
// omitted from the snapshot and the failure is logged. A decode fault in
// an optional range still aborts the cycle, since it means the catalog and
// the device disagree, not that the device declined the read.
func (p *Poller) PollOnce(ctx context.Context) (Snapshot, error) {
	snap := make(Snapshot, 160)

	for _, r := range p.plan.Mandatory {
		if err := p.readRange(ctx, r, snap); err != nil {
			return nil, fmt.Errorf("poller: range %d+%d: %w", r.Start, r.Count, err)
		}
	}

	for _, r := range p.optionalRanges(snap) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := p.readRange(ctx, r, snap); err != nil {
			var dec *registers.DecodeError
			if errors.As(err, &dec) {
				return nil, fmt.Errorf("poller: range %d+%d: %w", r.Start, r.Count, err)
			}
			p.log.Warn("optional range unavailable",
				zap.Uint16("start", r.Start),
				zap.Uint16("count", r.Count),
				zap.Error(err))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return snap, nil
}

// optionalRanges resolves the per-cycle optional reads. Panel firmware is
// only requested for panels the current snapshot reports as connected.
func (p *Poller) optionalRanges(snap Snapshot) []Range {
	out := append([]Range(nil), p.plan.Optional...)

	panels, ok := snap[registers.RegConnectedPanels]
	if !ok {
		return out
	}
	if panels&panel1Bit != 0 {
		out = append(out, Range{Start: registers.RegPanel1FW, Count: 2})
	}
	if panels&panel2Bit != 0 {
		out = append(out, Range{Start: registers.RegPanel2FW, Count: 2})
	}
	return out
}

// readRange reads one contiguous block and decodes every catalogued
// register inside it into snap.
func (p *Poller) readRange(ctx context.Context, r Range, snap Snapshot) error {
	words, err := p.client.ReadRegisters(ctx, r.Start, r.Count)
	if err != nil {
		return err
	}
	if len(words) != int(r.Count) {
		return fmt.Errorf("poller: short read: want %d words, got %d", r.Count, len(words))
	}

	descs, err := p.catalog.InRange(r.Start, r.Count)
	if err != nil {
		return err
	}
	for _, reg := range descs {
		off := reg.Address - r.Start
		n := reg.Datatype.Words()
		if int(off)+int(n) > len(words) {
			// A 32-bit register whose low word lands past the end of
			// the block. Every planned range must cover its registers
			// whole, so a straddling register is a planning bug.
			return fmt.Errorf("poller: register %d (%d words) straddles range end %d",
				reg.Address, n, r.Start+r.Count)
		}
		v, err := registers.Decode(words[off:off+n], reg)
		if err != nil {
			return err
		}
		snap[reg.Address] = v
	}
	return nil
}
