// internal/publish/payload_test.go
package publish

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"komfovent-bridge/internal/device"
	"komfovent-bridge/internal/poller"
	"komfovent-bridge/internal/registers"
	"komfovent-bridge/internal/status"
)

func decode(t *testing.T, payload []byte) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(payload, &doc))
	return doc
}

func TestStatePayload_ScalesKnownFields(t *testing.T) {
	snap := poller.Snapshot{
		registers.RegPower:         1,
		registers.RegSupplyTemp:    215,
		registers.RegSupplyFan:     600,
		registers.RegOperationMode: 2,
	}
	id := device.Identity{Family: device.FamilyC6, FuncVersion: 67}

	payload, err := StatePayload(id, snap)
	require.NoError(t, err)
	doc := decode(t, payload)

	assert.Equal(t, "C6", doc["family"])
	assert.Equal(t, float64(1), doc["power"])
	assert.Equal(t, 21.5, doc["supply_temperature"])
	assert.Equal(t, "normal", doc["operation_mode"])
}

func TestStatePayload_OmitsMissingKeys(t *testing.T) {
	snap := poller.Snapshot{registers.RegPower: 1}
	id := device.Identity{Family: device.FamilyC6, FuncVersion: 38}

	payload, err := StatePayload(id, snap)
	require.NoError(t, err)
	doc := decode(t, payload)

	assert.Contains(t, doc, "power")
	assert.NotContains(t, doc, "exhaust_temperature")
	assert.NotContains(t, doc, "firmware")
}

func TestStatePayload_Firmware(t *testing.T) {
	snap := poller.Snapshot{registers.RegFirmware: 0x01316026}
	id := device.Identity{Family: device.FamilyC6, FuncVersion: 38}

	payload, err := StatePayload(id, snap)
	require.NoError(t, err)
	doc := decode(t, payload)

	assert.Equal(t, "C6 1.3.22.38", doc["firmware"])
}

func TestStatePayload_C4UsesLegacyFields(t *testing.T) {
	snap := poller.Snapshot{
		registers.C4Power:         1,
		registers.C4SupplyAirTemp: 180,
	}
	id := device.Identity{Family: device.FamilyC4}

	payload, err := StatePayload(id, snap)
	require.NoError(t, err)
	doc := decode(t, payload)

	assert.Equal(t, "C4", doc["family"])
	assert.Contains(t, doc, "power")
	assert.NotContains(t, doc, "operation_mode")
}

func TestRegistersPayload(t *testing.T) {
	snap := poller.Snapshot{
		registers.RegSupplyTemp: -200,
		registers.RegPower:      1,
	}

	payload, err := RegistersPayload(snap)
	require.NoError(t, err)
	doc := decode(t, payload)

	assert.Equal(t, float64(-200), doc["902"])
	assert.Equal(t, float64(1), doc["1"])
}

func TestStatusPayload(t *testing.T) {
	var tr status.Tracker
	tr.RecordFailure(assert.AnError)

	payload, err := StatusPayload(tr.Snapshot())
	require.NoError(t, err)
	doc := decode(t, payload)

	assert.Equal(t, "error", doc["health"])
	assert.Equal(t, float64(1), doc["consecutive_failures"])
	assert.NotEmpty(t, doc["last_error"])
}
