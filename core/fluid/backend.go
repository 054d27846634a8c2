// core/fluid/backend.go
package fluid

import (
	"errors"
	"fmt"
)

// ErrUnresolvable reports that a backend cannot produce a physically
// valid state for the requested inputs. Resolution failures are always
// propagated to the caller, never replaced with a default state.
var ErrUnresolvable = errors.New("unresolvable state")

// ResolutionError carries the fluid and input pair a backend failed to
// resolve. It matches ErrUnresolvable under errors.Is.
type ResolutionError struct {
	Fluid  string
	Input  Input
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: %s (%s): %s", e.Fluid, ErrUnresolvable, e.Input, e.Reason)
}

func (e *ResolutionError) Unwrap() error { return ErrUnresolvable }

// Backend evaluates the equation of state for one fluid. Given a pair
// of independent properties it returns a fully populated State, plus
// the derived queries devices need. Implementations must be safe for
// concurrent use; they hold no per-query state.
type Backend interface {
	// Fluid returns the backend's fluid identity.
	Fluid() string

	// State resolves a full state from an independent input pair.
	State(in Input) (State, error)

	// CompressionToPressure compresses from the given state to a target
	// pressure. The isentropic enthalpy rise is divided by efficiency
	// (0 < efficiency <= 1); efficiency 1 is the ideal process.
	CompressionToPressure(from State, pressure, efficiency float64) (State, error)

	// ExpansionToPressure expands from the given state to a target
	// pressure. The isentropic enthalpy drop is multiplied by
	// efficiency (0 < efficiency <= 1).
	ExpansionToPressure(from State, pressure, efficiency float64) (State, error)

	// CoolingToEnthalpy resolves the state reached from the given one
	// by cooling to a target enthalpy while losing pressureDrop Pa.
	CoolingToEnthalpy(from State, enthalpy, pressureDrop float64) (State, error)

	// SaturationAtPressure returns the two-phase point at the given
	// pressure and quality (0 = saturated liquid, 1 = saturated vapor).
	// Backends without a saturation dome return ErrUnresolvable.
	SaturationAtPressure(pressure, quality float64) (State, error)
}
