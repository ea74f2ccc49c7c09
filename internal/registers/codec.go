// internal/registers/codec.go
package registers

import (
	"errors"
	"fmt"
)

// ErrReadOnly rejects a write before any wire traffic is issued.
var ErrReadOnly = errors.New("registers: register is read-only")

// Decode converts raw wire words into the register's semantic value.
// The word count must match the datatype width exactly.
func Decode(words []uint16, reg Register) (int64, error) {
	if len(words) != int(reg.Datatype.Words()) {
		return 0, fmt.Errorf("registers: %s: got %d words, want %d",
			reg, len(words), reg.Datatype.Words())
	}

	switch reg.Datatype {
	case Boolean:
		if words[0] != 0 {
			return 1, nil
		}
		return 0, nil

	case Uint16:
		return int64(words[0]), nil

	case Int16:
		raw := int64(words[0])
		return raw - (raw>>15)<<16, nil

	case Uint32:
		return int64(words[0])<<16 | int64(words[1]), nil

	default:
		return 0, &DecodeError{Address: reg.Address}
	}
}

// Encode converts a semantic value into wire words. 32-bit values produce
// exactly two words, high word first, and must be transmitted as a single
// multi-word write so the device never observes a torn update.
func Encode(value int64, reg Register) ([]uint16, error) {
	if reg.Access == ReadOnly {
		return nil, ErrReadOnly
	}

	switch reg.Datatype {
	case Boolean:
		if value != 0 {
			return []uint16{1}, nil
		}
		return []uint16{0}, nil

	case Uint16:
		return []uint16{uint16(value)}, nil

	case Int16:
		// Masking yields the correct two's-complement bit pattern.
		return []uint16{uint16(value & 0xFFFF)}, nil

	case Uint32:
		return []uint16{
			uint16(value >> 16 & 0xFFFF),
			uint16(value & 0xFFFF),
		}, nil

	default:
		return nil, &DecodeError{Address: reg.Address}
	}
}
