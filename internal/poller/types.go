// internal/poller/types.go
package poller

import "time"

// Snapshot is the outcome of one poll cycle: register address mapped to
// its decoded value. A new successful cycle fully replaces the previous
// snapshot; consumers must treat a missing optional key as unknown, never
// as zero.
type Snapshot map[uint16]int64

// Range is one contiguous register read.
type Range struct {
	Start uint16
	Count uint16
}

// Plan is the ordered read sequence for one device identity. Mandatory
// ranges are all-or-nothing for the cycle; optional trailing reads fail
// independently without aborting it.
type Plan struct {
	Mandatory []Range
	Optional  []Range
}

// Result is delivered to the consumer once per cycle.
type Result struct {
	At       time.Time
	Snapshot Snapshot
	Err      error // non-nil means the cycle failed and Snapshot is nil
}
