// internal/registers/scale_test.go
package registers

import "testing"

func TestScaled_Temperature(t *testing.T) {
	v, ok := Scaled(RegSupplyTemp, 215)
	if !ok || v != 21.5 {
		t.Fatalf("got %v/%v, want 21.5/true", v, ok)
	}

	v, ok = Scaled(RegOutdoorTemp, -200)
	if !ok || v != -20.0 {
		t.Fatalf("got %v/%v, want -20/true", v, ok)
	}

	// Sensor fault sentinel, far outside the plausible range.
	if _, ok := Scaled(RegSupplyTemp, 30000); ok {
		t.Fatal("sentinel value should be rejected")
	}
}

func TestScaled_DutyCycle(t *testing.T) {
	v, ok := Scaled(RegHeatExchanger, 1000)
	if !ok || v != 100 {
		t.Fatalf("got %v/%v, want 100/true", v, ok)
	}
	if _, ok := Scaled(RegHeatExchanger, 1001); ok {
		t.Fatal("duty cycle above 100% should be rejected")
	}
}

func TestScaled_NoRule(t *testing.T) {
	if _, ok := Scaled(RegPower, 1); ok {
		t.Fatal("power has no scaling rule")
	}
}
