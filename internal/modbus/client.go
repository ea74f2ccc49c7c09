// internal/modbus/client.go
package modbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	gomodbus "github.com/goburrow/modbus"
	"go.uber.org/zap"
)

// Retry policy. Fixed attempt count with capped exponential backoff,
// applied at the stream level only: a device exception is never retried.
const (
	maxAttempts  = 3
	backoffStart = 250 * time.Millisecond
	backoffCap   = 2 * time.Second
)

// wire is the subset of the goburrow client the bridge uses.
type wire interface {
	ReadHoldingRegisters(address, quantity uint16) ([]byte, error)
	WriteSingleRegister(address, value uint16) ([]byte, error)
	WriteMultipleRegisters(address, quantity uint16, value []byte) ([]byte, error)
}

// Config is the transport configuration for one device connection.
type Config struct {
	Endpoint string
	SlaveID  byte
	Timeout  time.Duration

	// AddressBase is added to catalog addresses to form wire addresses.
	// The C6 map is 1-based in the catalog and 0-based on the wire (-1);
	// the C4 map embeds absolute numbering (0).
	AddressBase int
}

// Client owns one persistent Modbus TCP connection. All operations are
// mutually exclusive: the exchange has no request-ID correlation, so
// concurrent requests would produce ambiguous response pairing.
type Client struct {
	cfg Config
	log *zap.Logger

	mu        sync.Mutex
	handler   *gomodbus.TCPClientHandler
	conn      wire
	connected bool
}

// NewClient builds an unconnected client.
func NewClient(cfg Config, log *zap.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{cfg: cfg, log: log}
}

// Connect establishes the TCP connection, retrying within the bounded
// backoff window. A permanent failure leaves the client disconnected; the
// caller owns any further connection attempts.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}

	var lastErr error
	backoff := backoffStart
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.dial(); err != nil {
			lastErr = err
			c.log.Warn("connect attempt failed",
				zap.String("endpoint", c.cfg.Endpoint),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			if attempt < maxAttempts {
				if err := sleep(ctx, backoff); err != nil {
					return err
				}
				backoff = nextBackoff(backoff)
			}
			continue
		}
		return nil
	}
	return &ConnectivityError{Op: "connect", Err: lastErr}
}

func (c *Client) dial() error {
	h := gomodbus.NewTCPClientHandler(c.cfg.Endpoint)
	h.Timeout = c.cfg.Timeout
	h.SlaveId = c.cfg.SlaveID
	if err := h.Connect(); err != nil {
		return err
	}
	c.handler = h
	c.conn = gomodbus.NewClient(h)
	c.connected = true
	return nil
}

// Close tears down the connection. Safe to call repeatedly.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.teardown()
}

func (c *Client) teardown() error {
	c.connected = false
	c.conn = nil
	if c.handler == nil {
		return nil
	}
	err := c.handler.Close()
	c.handler = nil
	return err
}

// ReadRegisters reads count holding registers starting at a catalog
// address and returns the raw wire words.
func (c *Client) ReadRegisters(ctx context.Context, start, count uint16) ([]uint16, error) {
	op := fmt.Sprintf("read %d+%d", start, count)

	var words []uint16
	err := c.withRetry(ctx, op, func(w wire) error {
		data, err := w.ReadHoldingRegisters(c.wireAddr(start), count)
		if err != nil {
			return err
		}
		if len(data) != int(count)*2 {
			return &ProtocolError{Op: op, Err: fmt.Errorf(
				"short response: got %d bytes, want %d", len(data), count*2)}
		}
		words = unpackWords(data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// WriteRegister writes one holding register.
func (c *Client) WriteRegister(ctx context.Context, addr, value uint16) error {
	op := fmt.Sprintf("write %d", addr)
	return c.withRetry(ctx, op, func(w wire) error {
		_, err := w.WriteSingleRegister(c.wireAddr(addr), value)
		return err
	})
}

// WriteRegisters writes a contiguous block in one transaction. 32-bit
// values rely on this being atomic: both words go out in a single request.
func (c *Client) WriteRegisters(ctx context.Context, addr uint16, words []uint16) error {
	op := fmt.Sprintf("write %d+%d", addr, len(words))
	return c.withRetry(ctx, op, func(w wire) error {
		_, err := w.WriteMultipleRegisters(c.wireAddr(addr), uint16(len(words)), packWords(words))
		return err
	})
}

// withRetry serializes the operation on the shared connection and applies
// the stream-level retry policy. Device exceptions surface immediately.
func (c *Client) withRetry(ctx context.Context, op string, fn func(wire) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var lastErr error
	backoff := backoffStart
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !c.connected {
			if err := c.dial(); err != nil {
				lastErr = err
				if attempt < maxAttempts {
					if err := sleep(ctx, backoff); err != nil {
						return err
					}
					backoff = nextBackoff(backoff)
				}
				continue
			}
		}

		err := fn(c.conn)
		if err == nil {
			return nil
		}

		var pe *ProtocolError
		if errors.As(err, &pe) {
			return err
		}
		var me *gomodbus.ModbusError
		if errors.As(err, &me) {
			return &ProtocolError{Op: op, Err: me}
		}

		// Stream-level failure: discard the connection and retry.
		lastErr = err
		_ = c.teardown()
		c.log.Warn("transport error, reconnecting",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < maxAttempts {
			if err := sleep(ctx, backoff); err != nil {
				return err
			}
			backoff = nextBackoff(backoff)
		}
	}
	return &ConnectivityError{Op: op, Err: lastErr}
}

func (c *Client) wireAddr(addr uint16) uint16 {
	return uint16(int(addr) + c.cfg.AddressBase)
}

func nextBackoff(d time.Duration) time.Duration {
	d *= 2
	if d > backoffCap {
		return backoffCap
	}
	return d
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ---- wire word packing ----

func packWords(words []uint16) []byte {
	out := make([]byte, len(words)*2)
	for i, w := range words {
		out[2*i] = byte(w >> 8)
		out[2*i+1] = byte(w)
	}
	return out
}

func unpackWords(data []byte) []uint16 {
	out := make([]uint16, len(data)/2)
	for i := range out {
		out[i] = uint16(data[2*i])<<8 | uint16(data[2*i+1])
	}
	return out
}
