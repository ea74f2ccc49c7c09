// internal/device/commands_test.go
package device

import (
	"context"
	"testing"
	"time"

	"komfovent-bridge/internal/registers"
)

func TestSetOperationMode_Direct(t *testing.T) {
	f := &fakeTransport{}
	d := newC6Device(f)

	if err := d.SetOperationMode(context.Background(), ModeNormal, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := f.singleWrites[0]
	if w.addr != registers.RegOperationMode || w.value != uint16(ModeNormal) {
		t.Fatalf("got write %+v", w)
	}
}

func TestSetOperationMode_Off(t *testing.T) {
	f := &fakeTransport{}
	d := newC6Device(f)

	if err := d.SetOperationMode(context.Background(), ModeOff, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := f.singleWrites[0]
	if w.addr != registers.RegPower || w.value != 0 {
		t.Fatalf("got write %+v, want power off", w)
	}
}

func TestSetOperationMode_TimerDefault(t *testing.T) {
	f := &fakeTransport{}
	d := newC6Device(f)

	if err := d.SetOperationMode(context.Background(), ModeKitchen, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := f.singleWrites[0]
	if w.addr != registers.RegKitchenTimer || w.value != DefaultModeTimerMinutes {
		t.Fatalf("got write %+v, want kitchen timer %d", w, DefaultModeTimerMinutes)
	}
}

func TestSetOperationMode_C4Levels(t *testing.T) {
	f := &fakeTransport{}
	d := newC4Device(f)

	if err := d.SetOperationMode(context.Background(), ModeIntensive, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := f.singleWrites[0]
	if w.addr != registers.C4VentLevelManual || w.value != uint16(ModeIntensive) {
		t.Fatalf("got write %+v", w)
	}

	if err := d.SetOperationMode(context.Background(), ModeKitchen, 0); err == nil {
		t.Fatal("kitchen mode should be rejected on the C4 map")
	}
}

func TestResetAlarms(t *testing.T) {
	f := &fakeTransport{}
	d := newC6Device(f)

	if err := d.ResetAlarms(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w := f.singleWrites[0]
	if w.addr != registers.RegActiveAlarmsCount || w.value != alarmResetMagic {
		t.Fatalf("got write %+v, want alarm reset magic", w)
	}

	if err := newC4Device(&fakeTransport{}).ResetAlarms(context.Background()); err == nil {
		t.Fatal("alarm reset should be rejected on the C4 map")
	}
}

func TestSetSystemTime_C6WritesShiftedEpoch(t *testing.T) {
	f := &fakeTransport{}
	d := newC6Device(f)

	now := time.Date(2026, 8, 31, 12, 30, 0, 0, time.UTC)
	if err := d.SetSystemTime(context.Background(), now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	epoch := now.Unix()
	w := f.multiWrites[0]
	if w.addr != registers.RegEpochTime {
		t.Fatalf("got write to %d, want %d", w.addr, registers.RegEpochTime)
	}
	if len(w.words) != 2 || w.words[0] != uint16(epoch>>16) || w.words[1] != uint16(epoch&0xFFFF) {
		t.Fatalf("got words %v for epoch %d", w.words, epoch)
	}
}

func TestSetSystemTime_C4WritesCalendarFields(t *testing.T) {
	f := &fakeTransport{}
	d := newC4Device(f)

	// 2026-08-31 is a Monday.
	now := time.Date(2026, 8, 31, 14, 45, 0, 0, time.UTC)
	if err := d.SetSystemTime(context.Background(), now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []singleWrite{
		{registers.C4Time, 14<<8 | 45},
		{registers.C4DayOfTheWeek, 1},
		{registers.C4Year, 2026}, // full four-digit year on the wire
	}
	if len(f.singleWrites) != len(want) {
		t.Fatalf("got %d writes, want %d", len(f.singleWrites), len(want))
	}
	for i, w := range want {
		if f.singleWrites[i] != w {
			t.Fatalf("write %d: got %+v, want %+v", i, f.singleWrites[i], w)
		}
	}
}

func TestParseOperationMode(t *testing.T) {
	m, err := ParseOperationMode("air_quality")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != ModeAirQuality {
		t.Fatalf("got %v, want air_quality", m)
	}
	if _, err := ParseOperationMode("turbo"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}
