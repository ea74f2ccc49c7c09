// internal/device/device_test.go
package device

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"komfovent-bridge/internal/registers"
)

// ---- fake transport ----

type singleWrite struct {
	addr  uint16
	value uint16
}

type multiWrite struct {
	addr  uint16
	words []uint16
}

type fakeTransport struct {
	reads      map[uint16][]uint16
	readErr    error
	connectErr error

	readCalls    []uint16
	singleWrites []singleWrite
	multiWrites  []multiWrite
	closed       bool
}

func (f *fakeTransport) Connect(ctx context.Context) error { return f.connectErr }

func (f *fakeTransport) Close() error {
	f.closed = true
	return nil
}

func (f *fakeTransport) ReadRegisters(ctx context.Context, start, count uint16) ([]uint16, error) {
	f.readCalls = append(f.readCalls, start)
	if f.readErr != nil {
		return nil, f.readErr
	}
	words, ok := f.reads[start]
	if !ok {
		return make([]uint16, count), nil
	}
	return words, nil
}

func (f *fakeTransport) WriteRegister(ctx context.Context, addr, value uint16) error {
	f.singleWrites = append(f.singleWrites, singleWrite{addr, value})
	return nil
}

func (f *fakeTransport) WriteRegisters(ctx context.Context, addr uint16, words []uint16) error {
	f.multiWrites = append(f.multiWrites, multiWrite{addr, words})
	return nil
}

func newC6Device(f *fakeTransport) *Device {
	return &Device{
		tr:      f,
		catalog: registers.C6(),
		id:      Identity{Family: FamilyC6, FuncVersion: 67},
		log:     zap.NewNop(),
	}
}

func newC4Device(f *fakeTransport) *Device {
	return &Device{
		tr:      f,
		catalog: registers.C4(),
		id:      Identity{Family: FamilyC4},
		log:     zap.NewNop(),
	}
}

// ---- connection ----

func TestConnect_AssumedC4SkipsProbe(t *testing.T) {
	f := &fakeTransport{}
	d, err := Connect(context.Background(), f, true, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Identity().Family != FamilyC4 {
		t.Fatalf("got family %s, want C4", d.Identity().Family)
	}
	if len(f.readCalls) != 0 {
		t.Fatalf("expected no reads, got %v", f.readCalls)
	}
}

func TestConnect_ProbesFirmware(t *testing.T) {
	// C6 firmware 1.3.22.38
	f := &fakeTransport{reads: map[uint16][]uint16{
		registers.RegFirmware: {0x0131, 0x6026},
	}}
	d, err := Connect(context.Background(), f, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := d.Identity()
	if id.Family != FamilyC6 {
		t.Fatalf("got family %s, want C6", id.Family)
	}
	if id.FuncVersion != 38 {
		t.Fatalf("got functional version %d, want 38", id.FuncVersion)
	}
}

func TestConnect_ProbeFailureIsNotReady(t *testing.T) {
	f := &fakeTransport{readErr: errors.New("boom")}
	_, err := Connect(context.Background(), f, false, nil)
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("got %v, want ErrNotReady", err)
	}
}

func TestConnect_EmptyFirmwareIsNotReady(t *testing.T) {
	f := &fakeTransport{reads: map[uint16][]uint16{
		registers.RegFirmware: {0, 0},
	}}
	_, err := Connect(context.Background(), f, false, nil)
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("got %v, want ErrNotReady", err)
	}
	if !errors.Is(err, ErrNoFirmware) {
		t.Fatalf("got %v, want ErrNoFirmware in chain", err)
	}
}

func TestConnect_TransportFailure(t *testing.T) {
	f := &fakeTransport{connectErr: errors.New("refused")}
	_, err := Connect(context.Background(), f, false, nil)
	if !errors.Is(err, ErrNotReady) {
		t.Fatalf("got %v, want ErrNotReady", err)
	}
}

// ---- read ----

func TestRead_DecodesInt16(t *testing.T) {
	f := &fakeTransport{reads: map[uint16][]uint16{
		registers.RegSupplyTemp: {0xFF38},
	}}
	d := newC6Device(f)

	v, err := d.Read(context.Background(), registers.RegSupplyTemp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -200 {
		t.Fatalf("got %d, want -200", v)
	}
}

func TestRead_UnknownRegister(t *testing.T) {
	d := newC6Device(&fakeTransport{})
	if _, err := d.Read(context.Background(), 999); !errors.Is(err, registers.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

// ---- write ----

func TestWrite_ReadOnlyProducesNoTraffic(t *testing.T) {
	f := &fakeTransport{}
	d := newC6Device(f)

	err := d.Write(context.Background(), registers.RegSupplyTemp, 100)
	if !errors.Is(err, registers.ErrReadOnly) {
		t.Fatalf("got %v, want ErrReadOnly", err)
	}
	if len(f.singleWrites) != 0 || len(f.multiWrites) != 0 {
		t.Fatal("write was transmitted despite access rejection")
	}
}

func TestWrite_RangeCheckBeforeTraffic(t *testing.T) {
	f := &fakeTransport{}
	d := newC6Device(f)

	err := d.Write(context.Background(), registers.RegAwayTemp, 600)
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("got %v, want RangeError", err)
	}
	if re.Min != 50 || re.Max != 400 {
		t.Fatalf("got bounds %d..%d, want 50..400", re.Min, re.Max)
	}
	if len(f.singleWrites) != 0 {
		t.Fatal("out-of-range value was transmitted")
	}

	if err := d.Write(context.Background(), registers.RegAwayTemp, 215); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.singleWrites) != 1 || f.singleWrites[0].value != 215 {
		t.Fatalf("got writes %v, want one write of 215", f.singleWrites)
	}
}

func TestWrite_Uint32IsOneTransaction(t *testing.T) {
	f := &fakeTransport{}
	d := newC6Device(f)

	if err := d.Write(context.Background(), registers.RegAwayFanSupply, 65537); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.singleWrites) != 0 {
		t.Fatal("32-bit value went out as single-register writes")
	}
	if len(f.multiWrites) != 1 {
		t.Fatalf("got %d multi writes, want 1", len(f.multiWrites))
	}
	w := f.multiWrites[0]
	if w.addr != registers.RegAwayFanSupply {
		t.Fatalf("got addr %d, want %d", w.addr, registers.RegAwayFanSupply)
	}
	if len(w.words) != 2 || w.words[0] != 1 || w.words[1] != 1 {
		t.Fatalf("got words %v, want [1 1]", w.words)
	}
}

func TestWrite_Int16Negative(t *testing.T) {
	f := &fakeTransport{}
	d := newC4Device(f)

	if err := d.Write(context.Background(), registers.C4TempCorrection, -15); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.singleWrites[0].value != 0xFFF1 {
		t.Fatalf("got %#04x, want 0xFFF1", f.singleWrites[0].value)
	}
}
