// internal/modbus/integration_test.go
package modbus

import (
	"context"
	"testing"
	"time"

	"github.com/tbrandon/mbserver"
)

// Round-trips against a real Modbus TCP server on the loopback.
func TestClientRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("network test")
	}

	srv := mbserver.NewServer()
	addr := "127.0.0.1:15502"
	if err := srv.ListenTCP(addr); err != nil {
		t.Fatalf("server listen: %v", err)
	}
	defer srv.Close()

	c := NewClient(Config{
		Endpoint:    addr,
		SlaveID:     1,
		Timeout:     2 * time.Second,
		AddressBase: -1,
	}, nil)

	ctx := context.Background()
	if err := c.Connect(ctx); err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer c.Close()

	// The -1 base applies symmetrically, so what is written at a catalog
	// address reads back at the same catalog address.
	if err := c.WriteRegisters(ctx, 100, []uint16{0x0001, 0x86A0}); err != nil {
		t.Fatalf("write block: %v", err)
	}
	words, err := c.ReadRegisters(ctx, 100, 2)
	if err != nil {
		t.Fatalf("read block: %v", err)
	}
	if words[0] != 0x0001 || words[1] != 0x86A0 {
		t.Fatalf("got %v, want [0x0001 0x86A0]", words)
	}

	if err := c.WriteRegister(ctx, 104, 215); err != nil {
		t.Fatalf("write single: %v", err)
	}
	words, err = c.ReadRegisters(ctx, 104, 1)
	if err != nil {
		t.Fatalf("read single: %v", err)
	}
	if words[0] != 215 {
		t.Fatalf("got %d, want 215", words[0])
	}
}
