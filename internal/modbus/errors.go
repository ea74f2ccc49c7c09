// internal/modbus/errors.go
package modbus

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned for operations on a closed client.
var ErrNotConnected = errors.New("modbus: not connected")

// ConnectivityError is a stream-level failure (connect failure, disconnect
// mid-operation) that survived the bounded retry policy.
type ConnectivityError struct {
	Op  string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("modbus: %s: connection failed: %v", e.Op, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// ProtocolError is a device-reported error response or a malformed reply.
// It is not retried: the request reached the device and was rejected.
type ProtocolError struct {
	Op  string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("modbus: %s: %v", e.Op, e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }
