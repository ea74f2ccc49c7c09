// internal/status/status.go
package status

import "time"

// Health is the bridge-level health state derived from poll outcomes.
type Health uint16

const (
	// HealthUnknown represents the boot state before the first cycle.
	HealthUnknown Health = 0

	// HealthOK means the last poll cycle succeeded.
	HealthOK Health = 1

	// HealthError means the last poll cycle failed.
	HealthError Health = 2
)

func (h Health) String() string {
	switch h {
	case HealthOK:
		return "ok"
	case HealthError:
		return "error"
	default:
		return "unknown"
	}
}

// Snapshot represents exactly what may be delivered to consumers.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health              Health    `json:"-"`
	HealthLabel         string    `json:"health"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	LastError           string    `json:"last_error,omitempty"`
	LastSuccess         time.Time `json:"last_success"`
}

// Tracker folds poll outcomes into the current health state.
// Not safe for concurrent use; one tracker per poll loop.
type Tracker struct {
	snap Snapshot
}

// RecordSuccess notes a successful cycle. Reports whether the snapshot
// changed in a way consumers should see.
func (t *Tracker) RecordSuccess(at time.Time) bool {
	changed := t.snap.Health != HealthOK || t.snap.LastError != ""
	t.snap.Health = HealthOK
	t.snap.HealthLabel = HealthOK.String()
	t.snap.ConsecutiveFailures = 0
	t.snap.LastError = ""
	t.snap.LastSuccess = at
	return changed
}

// RecordFailure notes a failed cycle. The failure counter always moves,
// so the snapshot always changes.
func (t *Tracker) RecordFailure(err error) bool {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	t.snap.Health = HealthError
	t.snap.HealthLabel = HealthError.String()
	t.snap.ConsecutiveFailures++
	t.snap.LastError = msg
	return true
}

// Snapshot returns the current state.
func (t *Tracker) Snapshot() Snapshot {
	if t.snap.HealthLabel == "" {
		s := t.snap
		s.HealthLabel = HealthUnknown.String()
		return s
	}
	return t.snap
}
