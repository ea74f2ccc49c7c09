// internal/registers/scale.go
package registers

// Scaler converts a decoded register value to its engineering value.
// Scaling is attached per register by composition; each entry is one pure
// transform.
type Scaler func(int64) (float64, bool)

func div10(v int64) (float64, bool)   { return float64(v) / 10, true }
func div100(v int64) (float64, bool)  { return float64(v) / 100, true }
func div1000(v int64) (float64, bool) { return float64(v) / 1000, true }

// dutyCycle divides by 10 and rejects values outside 0-100 %, which the
// controller emits while a signal source is disconnected.
func dutyCycle(v int64) (float64, bool) {
	f := float64(v) / 10
	if f < 0 || f > 100 {
		return 0, false
	}
	return f, true
}

// temperature divides by 10 and rejects sensor-fault sentinels far outside
// the physically plausible range.
func temperature(v int64) (float64, bool) {
	f := float64(v) / 10
	if f < -50 || f > 125 {
		return 0, false
	}
	return f, true
}

var c6Scalers = map[uint16]Scaler{
	RegSupplyTemp:       temperature,
	RegExtractTemp:      temperature,
	RegOutdoorTemp:      temperature,
	RegWaterTemp:        temperature,
	RegExhaustTemp:      temperature,
	RegPanel1Temp:       temperature,
	RegPanel2Temp:       temperature,
	RegPanel1RH:         div10,
	RegPanel2RH:         div10,
	RegElectricHeater:   dutyCycle,
	RegHeatExchanger:    dutyCycle,
	RegWaterHeater:      dutyCycle,
	RegWaterCooler:      dutyCycle,
	RegDXUnit:           dutyCycle,
	RegHeatRecovery:     div100,
	RegHeaterPower:      div100,
	RegPowerConsumption: div100,
	RegSPI:              div1000,
	RegSPIDay:           div1000,
	RegAHUDay:           div1000,
	RegAHUMonth:         div1000,
	RegAHUTotal:         div1000,
	RegHeaterDay:        div1000,
	RegHeaterMonth:      div1000,
	RegHeaterTotal:      div1000,
	RegRecoveryDay:      div1000,
	RegRecoveryMonth:    div1000,
	RegRecoveryTotal:    div1000,
}

// Scaled returns the engineering value for a decoded C6 register value.
// The second return is false when the register has no scaling rule or the
// value failed its validity check; callers should then treat the raw value
// as authoritative or unknown respectively.
func Scaled(addr uint16, value int64) (float64, bool) {
	s, ok := c6Scalers[addr]
	if !ok {
		return 0, false
	}
	return s(value)
}
