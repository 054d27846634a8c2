// core/cycle/errors.go
package cycle

import (
	"errors"
	"fmt"
)

// ErrNotSolved reports an aggregate query on a cycle that has not been
// solved (or has no devices). Recoverable: call Solve first.
var ErrNotSolved = errors.New("cycle not solved")

// ConfigError reports a device constructed with missing or
// contradictory parameters. It is detected at solve time.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// DeviceError wraps a failure from one device in the chain with its
// name and 1-based position. A failed device aborts the solve.
type DeviceError struct {
	Device   string
	Position int
	Err      error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("device %q (position %d): %v", e.Device, e.Position, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }
