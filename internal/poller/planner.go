// internal/poller/planner.go
package poller

import (
	"komfovent-bridge/internal/device"
	"komfovent-bridge/internal/registers"
)

// Extended-map read geometry. Counts for the eco/air-quality and
// monitoring ranges depend on the functional version: controllers below
// the humidity-control version expose shorter blocks, and reading past
// the end of a block is a device exception.
const (
	ecoAQCountBase     = 15
	ecoAQCountHumidity = 18

	monitoringCountBase     = 56
	monitoringCountHumidity = 58
)

// BuildPlan derives the read sequence for one identified device. The plan
// is fixed for the lifetime of the connection; only the connected-panels
// probe is resolved per cycle, because panels can be attached and detached
// while the unit runs.
func BuildPlan(id device.Identity) Plan {
	if id.Family == device.FamilyC4 {
		// The legacy map has no firmware register and no version gates.
		// Every range is mandatory.
		return Plan{
			Mandatory: []Range{
				{Start: registers.C4Power, Count: 13},
				{Start: registers.C4VentLevelManual, Count: 2},
				{Start: registers.C4Mode, Count: 1},
			},
		}
	}

	ecoAQ := uint16(ecoAQCountHumidity)
	monitoring := uint16(monitoringCountHumidity)
	if id.SupportsVersionGates() && id.FuncVersion < device.FuncVerAQHumidity {
		ecoAQ = ecoAQCountBase
		monitoring = monitoringCountBase
	}

	p := Plan{
		Mandatory: []Range{
			{Start: registers.RegPower, Count: 34},
			{Start: registers.RegAwayFanSupply, Count: 59},
			{Start: registers.RegEcoMinTemp, Count: ecoAQ},
			{Start: registers.RegActiveAlarmsCount, Count: 11},
			{Start: registers.RegStatus, Count: monitoring},
		},
	}

	if id.SupportsVersionGates() && id.FuncVersion >= device.FuncVerExhaustTemp {
		p.Optional = append(p.Optional, Range{Start: registers.RegExhaustTemp, Count: 1})
	}
	p.Optional = append(p.Optional, Range{Start: registers.RegFirmware, Count: 2})

	return p
}
