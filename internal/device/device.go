// internal/device/device.go
package device

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"komfovent-bridge/internal/registers"
)

// Transport is the serialized register transport the device speaks over.
type Transport interface {
	Connect(ctx context.Context) error
	Close() error
	ReadRegisters(ctx context.Context, start, count uint16) ([]uint16, error)
	WriteRegister(ctx context.Context, addr, value uint16) error
	WriteRegisters(ctx context.Context, addr uint16, words []uint16) error
}

// ErrNotReady is returned when connection establishment cannot produce a
// device identity. No partial identity is ever assumed.
var ErrNotReady = errors.New("device: not ready")

// RangeError rejects a semantic value outside a register's documented
// bounds before anything is encoded or transmitted.
type RangeError struct {
	Address  uint16
	Value    int64
	Min, Max int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("device: value %d for register %d outside range %d..%d",
		e.Value, e.Address, e.Min, e.Max)
}

// writeBounds lists documented bounds for read-write registers, in raw
// register units (temperature setpoints are x10 C). Registers absent from
// the map accept any encodable value.
var writeBounds = map[uint16]struct{ min, max int64 }{
	registers.RegEcoMinTemp:          {50, 400},
	registers.RegEcoMaxTemp:          {50, 400},
	registers.RegAwayTemp:            {50, 400},
	registers.RegNormalSetpoint:      {50, 400},
	registers.RegIntensiveTemp:       {50, 400},
	registers.RegBoostTemp:           {50, 400},
	registers.RegKitchenTemp:         {50, 400},
	registers.RegFireplaceTemp:       {50, 400},
	registers.RegOverrideTemp:        {50, 400},
	registers.RegHolidaysTemp:        {50, 400},
	registers.RegAQTempSetpoint:      {50, 400},
	registers.RegAQMinIntensity:      {20, 100},
	registers.RegAQMaxIntensity:      {20, 100},
	registers.RegAQCheckPeriod:       {1, 24},
	registers.RegAwayFanSupply:       {0, 200000},
	registers.RegAwayFanExtract:      {0, 200000},
	registers.RegNormalFanSupply:     {0, 200000},
	registers.RegNormalFanExtract:    {0, 200000},
	registers.RegIntensiveFanSupply:  {0, 200000},
	registers.RegIntensiveFanExtract: {0, 200000},
	registers.RegBoostFanSupply:      {0, 200000},
	registers.RegBoostFanExtract:     {0, 200000},
	registers.RegKitchenSupply:       {0, 200000},
	registers.RegKitchenExtract:      {0, 200000},
	registers.RegFireplaceSupply:     {0, 200000},
	registers.RegFireplaceExtract:    {0, 200000},
	registers.RegOverrideSupply:      {0, 200000},
	registers.RegOverrideExtract:     {0, 200000},
}

// Device binds one transport to the catalog selected by its identity.
type Device struct {
	tr      Transport
	catalog registers.Catalog
	id      Identity
	log     *zap.Logger
}

// Connect establishes the connection and resolves the device identity.
//
// The C4 family is assumed when requested: it has no version register and
// nothing else identifiable, so the caller must know upfront that it is
// talking to a C4 unit. All other families are identified by reading the
// firmware version register once; a failed probe is fatal to this
// connection attempt.
func Connect(ctx context.Context, tr Transport, assumeC4 bool, log *zap.Logger) (*Device, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if err := tr.Connect(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotReady, err)
	}

	if assumeC4 {
		return &Device{
			tr:      tr,
			catalog: registers.C4(),
			id:      Identity{Family: FamilyC4, FuncVersion: 0},
			log:     log,
		}, nil
	}

	d := &Device{tr: tr, catalog: registers.C6(), log: log}

	raw, err := d.Read(ctx, registers.RegFirmware)
	if err != nil {
		return nil, fmt.Errorf("%w: reading firmware version: %w", ErrNotReady, err)
	}
	fw, err := ParseFirmware(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotReady, err)
	}

	d.id = Identity{Family: fw.Controller, FuncVersion: fw.Functional}
	log.Info("identified controller",
		zap.Stringer("family", fw.Controller),
		zap.String("firmware", fw.String()),
		zap.Int("functional_version", fw.Functional),
	)
	return d, nil
}

// Identity returns the identity resolved at connection time.
func (d *Device) Identity() Identity { return d.id }

// Catalog returns the register catalog for this device's family.
func (d *Device) Catalog() registers.Catalog { return d.catalog }

// Transport exposes the underlying transport for poll execution.
func (d *Device) Transport() Transport { return d.tr }

// Close tears down the connection.
func (d *Device) Close() error { return d.tr.Close() }

// Read fetches and decodes a single register.
func (d *Device) Read(ctx context.Context, addr uint16) (int64, error) {
	reg, err := d.catalog.Lookup(addr)
	if err != nil {
		return 0, err
	}
	words, err := d.tr.ReadRegisters(ctx, reg.Address, reg.Datatype.Words())
	if err != nil {
		return 0, err
	}
	return registers.Decode(words, reg)
}

// Write validates, encodes and transmits a semantic value. Access and
// range checks happen before any wire traffic; a 32-bit value goes out as
// one atomic multi-word write.
func (d *Device) Write(ctx context.Context, addr uint16, value int64) error {
	reg, err := d.catalog.Lookup(addr)
	if err != nil {
		return err
	}

	if b, ok := writeBounds[addr]; ok {
		if value < b.min || value > b.max {
			return &RangeError{Address: addr, Value: value, Min: b.min, Max: b.max}
		}
	}

	words, err := registers.Encode(value, reg)
	if err != nil {
		return err
	}

	if len(words) == 1 {
		return d.tr.WriteRegister(ctx, reg.Address, words[0])
	}
	return d.tr.WriteRegisters(ctx, reg.Address, words)
}
