// internal/registers/registers.go
package registers

import (
	"errors"
	"fmt"
)

// Datatype is the wire encoding of a register value.
// There is no signed 32-bit type in this protocol.
type Datatype uint8

const (
	Boolean Datatype = iota
	Uint16
	Int16
	Uint32
)

// Words returns the number of 16-bit wire words the datatype occupies.
// 32-bit values are transmitted high word first.
func (d Datatype) Words() uint16 {
	if d == Uint32 {
		return 2
	}
	return 1
}

func (d Datatype) String() string {
	switch d {
	case Boolean:
		return "boolean"
	case Uint16:
		return "uint16"
	case Int16:
		return "int16"
	case Uint32:
		return "uint32"
	default:
		return "unknown"
	}
}

// Access is the access mode of a register.
type Access uint8

const (
	ReadOnly Access = iota
	ReadWrite
)

// Register describes one addressable unit of device state.
// Addresses are 1-based catalog addresses, stable across firmware versions.
type Register struct {
	Address  uint16
	Datatype Datatype
	Access   Access
}

func (r Register) String() string {
	return fmt.Sprintf("register %d (%s)", r.Address, r.Datatype)
}

// ErrNotFound is returned when an address has no descriptor in the catalog.
var ErrNotFound = errors.New("registers: no such register")

// DecodeError reports an address inside a requested range that is absent
// from every datatype classification. This is a catalog completeness bug,
// never something to skip silently.
type DecodeError struct {
	Address uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("registers: address %d has no datatype classification", e.Address)
}

// Catalog resolves addresses to register descriptors for one device family.
type Catalog interface {
	// Lookup returns the descriptor at addr, or ErrNotFound.
	Lookup(addr uint16) (Register, error)

	// InRange returns the descriptors covered by [start, start+count),
	// ordered ascending by address. Implicit 32-bit low words and, where
	// the family permits them, undocumented gaps are skipped.
	InRange(start, count uint16) ([]Register, error)
}
