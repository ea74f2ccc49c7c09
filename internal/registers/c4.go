// internal/registers/c4.go
package registers

// C4 family register addresses. The C4 map embeds absolute numbering: the
// values below go on the wire as-is, with no catalog-to-wire offset.
const (
	// General
	C4Power              uint16 = 1000 // ON/OFF status
	C4Season             uint16 = 1001 // Summer = 0, Winter = 1
	C4Time               uint16 = 1002 // Time HH:MM
	C4DayOfTheWeek       uint16 = 1003
	C4MonthDay           uint16 = 1004
	C4Year               uint16 = 1005
	C4ModbusAddress      uint16 = 1006
	C4AlarmWarnings      uint16 = 1007
	C4AlarmStopFlags     uint16 = 1008
	C4AlarmStopCode      uint16 = 1009
	C4RecuperatorLevel   uint16 = 1010
	C4ElectricHeaterLvl  uint16 = 1011
	C4WaterHeatingLevel  uint16 = 1012
	C4WaterCoolingLevel  uint16 = 1013

	// Ventilation
	C4VentLevelManual  uint16 = 1100
	C4VentLevelCurrent uint16 = 1101
	C4Mode             uint16 = 1102
	C4OvrEnable        uint16 = 1111
	C4OvrTimeSet       uint16 = 1112
	C4OvrTimeGet       uint16 = 1113
	C4FanStatus        uint16 = 1114
	C4SupplyFanLevel   uint16 = 1115
	C4ExhaustFanLevel  uint16 = 1116

	// Temperature
	C4SupplyAirTemp  uint16 = 1200
	C4SetpointTemp   uint16 = 1201
	C4TempCorrection uint16 = 1202
	C4WaterTemp      uint16 = 1203
)

// The C4 map carries no per-register metadata on the wire. Every address is
// classified into exactly one of three global sets consulted by the codec;
// membership in none of them is a decode fault.
var (
	c4Unsigned16 = map[uint16]struct{}{
		C4Power:             {},
		C4Season:            {},
		C4Time:              {},
		C4DayOfTheWeek:      {},
		C4MonthDay:          {},
		C4Year:              {},
		C4ModbusAddress:     {},
		C4AlarmWarnings:     {},
		C4AlarmStopFlags:    {},
		C4AlarmStopCode:     {},
		C4RecuperatorLevel:  {},
		C4ElectricHeaterLvl: {},
		C4WaterHeatingLevel: {},
		C4WaterCoolingLevel: {},
		C4VentLevelManual:   {},
		C4VentLevelCurrent:  {},
		C4Mode:              {},
		C4OvrEnable:         {},
		C4OvrTimeSet:        {},
		C4OvrTimeGet:        {},
		C4FanStatus:         {},
		C4SupplyFanLevel:    {},
		C4ExhaustFanLevel:   {},
	}

	c4Signed16 = map[uint16]struct{}{
		C4SupplyAirTemp:  {},
		C4SetpointTemp:   {},
		C4TempCorrection: {},
		C4WaterTemp:      {},
	}

	// No 32-bit registers are documented for the C4 map. The set exists so
	// the classification scheme stays three-way like the other families.
	c4Unsigned32 = map[uint16]struct{}{}
)

// c4ReadOnly lists the addresses the controller rejects writes to.
var c4ReadOnly = map[uint16]struct{}{
	C4MonthDay:          {},
	C4AlarmWarnings:     {},
	C4AlarmStopFlags:    {},
	C4AlarmStopCode:     {},
	C4RecuperatorLevel:  {},
	C4ElectricHeaterLvl: {},
	C4WaterHeatingLevel: {},
	C4WaterCoolingLevel: {},
	C4VentLevelCurrent:  {},
	C4OvrTimeGet:        {},
	C4FanStatus:         {},
	C4SupplyFanLevel:    {},
	C4ExhaustFanLevel:   {},
	C4SupplyAirTemp:     {},
	C4WaterTemp:         {},
}

// c4Catalog synthesizes descriptors from the three classification sets.
type c4Catalog struct{}

// C4 returns the legacy three-set catalog.
func C4() Catalog { return c4Catalog{} }

func (c4Catalog) Lookup(addr uint16) (Register, error) {
	access := ReadWrite
	if _, ro := c4ReadOnly[addr]; ro {
		access = ReadOnly
	}
	if _, ok := c4Unsigned16[addr]; ok {
		return Register{Address: addr, Datatype: Uint16, Access: access}, nil
	}
	if _, ok := c4Signed16[addr]; ok {
		return Register{Address: addr, Datatype: Int16, Access: access}, nil
	}
	if _, ok := c4Unsigned32[addr]; ok {
		return Register{Address: addr, Datatype: Uint32, Access: access}, nil
	}
	return Register{}, &DecodeError{Address: addr}
}

// InRange classifies every address in the range. Unlike the extended
// catalog there are no permitted gaps: an unclassified address inside the
// range is a fault, never skipped.
func (c c4Catalog) InRange(start, count uint16) ([]Register, error) {
	out := make([]Register, 0, count)
	addr := start
	end := start + count
	for addr < end {
		r, err := c.Lookup(addr)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
		addr += r.Datatype.Words()
	}
	return out, nil
}
