// internal/publish/payload.go
package publish

import (
	"encoding/json"
	"strconv"

	"komfovent-bridge/internal/device"
	"komfovent-bridge/internal/poller"
	"komfovent-bridge/internal/registers"
	"komfovent-bridge/internal/status"
)

// Topic suffixes under the configured prefix.
const (
	topicAvailability = "availability"
	topicState        = "state"
	topicRegisters    = "registers"
	topicStatus       = "status"
)

const (
	payloadOnline  = "online"
	payloadOffline = "offline"
)

// stateField maps a register to a named field in the state document.
// Registers with a known scaler are emitted in engineering units, the rest
// as their decoded integer value.
type stateField struct {
	name string
	addr uint16
}

var c6Fields = []stateField{
	{"power", registers.RegPower},
	{"eco_mode", registers.RegEcoMode},
	{"auto_mode", registers.RegAutoMode},
	{"supply_temperature", registers.RegSupplyTemp},
	{"extract_temperature", registers.RegExtractTemp},
	{"outdoor_temperature", registers.RegOutdoorTemp},
	{"exhaust_temperature", registers.RegExhaustTemp},
	{"supply_flow", registers.RegSupplyFlow},
	{"extract_flow", registers.RegExtractFlow},
	{"supply_fan", registers.RegSupplyFan},
	{"extract_fan", registers.RegExtractFan},
	{"heat_exchanger", registers.RegHeatExchanger},
	{"electric_heater", registers.RegElectricHeater},
	{"filter_clogging", registers.RegFilterClogging},
	{"power_consumption", registers.RegPowerConsumption},
	{"heat_recovery", registers.RegHeatRecovery},
	{"heat_efficiency", registers.RegHeatEfficiency},
	{"specific_power_input", registers.RegSPI},
	{"panel_temperature", registers.RegPanel1Temp},
	{"panel_humidity", registers.RegPanel1RH},
	{"active_alarms", registers.RegActiveAlarmsCount},
}

var c4Fields = []stateField{
	{"power", registers.C4Power},
	{"season", registers.C4Season},
	{"vent_level", registers.C4VentLevelCurrent},
	{"mode", registers.C4Mode},
	{"supply_temperature", registers.C4SupplyAirTemp},
	{"setpoint_temperature", registers.C4SetpointTemp},
	{"water_temperature", registers.C4WaterTemp},
	{"supply_fan", registers.C4SupplyFanLevel},
	{"extract_fan", registers.C4ExhaustFanLevel},
}

// StatePayload renders the named state document for one snapshot. Fields
// whose registers are absent from the snapshot are omitted, never zeroed.
func StatePayload(id device.Identity, snap poller.Snapshot) ([]byte, error) {
	doc := make(map[string]any, 32)
	doc["family"] = id.Family.String()

	fields := c6Fields
	if id.Family == device.FamilyC4 {
		fields = c4Fields
	}
	for _, f := range fields {
		v, ok := snap[f.addr]
		if !ok {
			continue
		}
		if scaled, ok := registers.Scaled(f.addr, v); ok {
			doc[f.name] = scaled
		} else {
			doc[f.name] = v
		}
	}

	if id.Family != device.FamilyC4 {
		if mode, ok := snap[registers.RegOperationMode]; ok {
			doc["operation_mode"] = device.OperationMode(mode).String()
		}
		if raw, ok := snap[registers.RegFirmware]; ok {
			if fw, err := device.ParseFirmware(raw); err == nil {
				doc["firmware"] = fw.String()
			}
		}
	}

	return json.Marshal(doc)
}

// StatusPayload renders the bridge health document.
func StatusPayload(snap status.Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// RegistersPayload renders the raw register dump: decoded values keyed by
// decimal register address.
func RegistersPayload(snap poller.Snapshot) ([]byte, error) {
	doc := make(map[string]int64, len(snap))
	for addr, v := range snap {
		doc[strconv.FormatUint(uint64(addr), 10)] = v
	}
	return json.Marshal(doc)
}
