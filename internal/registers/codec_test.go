// internal/registers/codec_test.go
package registers

import (
	"errors"
	"testing"
)

func TestDecode_Int16(t *testing.T) {
	reg := Register{Address: 902, Datatype: Int16, Access: ReadOnly}

	cases := []struct {
		raw  uint16
		want int64
	}{
		{0x0000, 0},
		{0x0001, 1},
		{0x00D7, 215}, // 21.5 C
		{0x7FFF, 32767},
		{0x8000, -32768},
		{0xFFFF, -1},
		{0xFF38, -200}, // -20.0 C
	}
	for _, c := range cases {
		got, err := Decode([]uint16{c.raw}, reg)
		if err != nil {
			t.Fatalf("raw %#04x: unexpected error: %v", c.raw, err)
		}
		if got != c.want {
			t.Fatalf("raw %#04x: got %d, want %d", c.raw, got, c.want)
		}
	}
}

func TestDecode_Uint32HighWordFirst(t *testing.T) {
	reg := Register{Address: 906, Datatype: Uint32, Access: ReadOnly}

	got, err := Decode([]uint16{0x0001, 0x0000}, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 65536 {
		t.Fatalf("got %d, want 65536", got)
	}

	got, err = Decode([]uint16{0xFFFF, 0xFFFF}, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 4294967295 {
		t.Fatalf("got %d, want 4294967295", got)
	}
}

func TestDecode_BooleanCoercesToBit(t *testing.T) {
	reg := Register{Address: 1, Datatype: Boolean, Access: ReadWrite}

	for _, raw := range []uint16{1, 2, 0x8000, 0xFFFF} {
		got, err := Decode([]uint16{raw}, reg)
		if err != nil {
			t.Fatalf("raw %d: unexpected error: %v", raw, err)
		}
		if got != 1 {
			t.Fatalf("raw %d: got %d, want 1", raw, got)
		}
	}

	got, err := Decode([]uint16{0}, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}

func TestDecode_WordCountMismatch(t *testing.T) {
	reg := Register{Address: 906, Datatype: Uint32, Access: ReadOnly}
	if _, err := Decode([]uint16{1}, reg); err == nil {
		t.Fatal("expected error for one word on a 32-bit register")
	}

	reg = Register{Address: 902, Datatype: Int16, Access: ReadOnly}
	if _, err := Decode([]uint16{1, 2}, reg); err == nil {
		t.Fatal("expected error for two words on a 16-bit register")
	}
}

func TestEncode_Int16Negative(t *testing.T) {
	reg := Register{Address: 104, Datatype: Int16, Access: ReadWrite}

	words, err := Encode(-1, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 1 || words[0] != 0xFFFF {
		t.Fatalf("got %v, want [0xFFFF]", words)
	}

	words, err = Encode(-32768, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if words[0] != 0x8000 {
		t.Fatalf("got %#04x, want 0x8000", words[0])
	}
}

func TestEncode_Uint32SplitsHighFirst(t *testing.T) {
	reg := Register{Address: 100, Datatype: Uint32, Access: ReadWrite}

	words, err := Encode(65537, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 2 || words[0] != 1 || words[1] != 1 {
		t.Fatalf("got %v, want [1 1]", words)
	}
}

func TestEncode_BooleanCoerces(t *testing.T) {
	reg := Register{Address: 1, Datatype: Boolean, Access: ReadWrite}

	words, err := Encode(7, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if words[0] != 1 {
		t.Fatalf("got %d, want 1", words[0])
	}
}

func TestEncode_ReadOnlyRejected(t *testing.T) {
	reg := Register{Address: 902, Datatype: Int16, Access: ReadOnly}
	if _, err := Encode(100, reg); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("got %v, want ErrReadOnly", err)
	}
}

func TestRoundTrip_Int16(t *testing.T) {
	reg := Register{Address: 104, Datatype: Int16, Access: ReadWrite}
	for _, v := range []int64{-32768, -200, -1, 0, 1, 215, 32767} {
		words, err := Encode(v, reg)
		if err != nil {
			t.Fatalf("%d: encode: %v", v, err)
		}
		got, err := Decode(words, reg)
		if err != nil {
			t.Fatalf("%d: decode: %v", v, err)
		}
		if got != v {
			t.Fatalf("round trip %d -> %d", v, got)
		}
	}
}
