// core/cycle/device.go
// Device capability contract for thermodynamic cycles. A device maps an
// inlet state to an outlet state through a Backend; the Cycle engine
// records the realized inlet/outlet pair as a Process result, so device
// values stay free of hidden mutable state.
package cycle

import (
	"math"

	"thermosys-core/fluid"
)

// DeviceType tags a device for aggregation grouping. It never selects
// behavior; dispatch happens through the Device interface.
type DeviceType int

const (
	DeviceCompressor DeviceType = iota
	DeviceTurbine
	DeviceHeatSource
	DeviceCondenser
	DevicePump
	DeviceDeaerator
)

func (t DeviceType) String() string {
	switch t {
	case DeviceCompressor:
		return "compressor"
	case DeviceTurbine:
		return "turbine"
	case DeviceHeatSource:
		return "heat_source"
	case DeviceCondenser:
		return "condenser"
	case DevicePump:
		return "pump"
	case DeviceDeaerator:
		return "deaerator"
	}
	return "unknown"
}

// Device is one modeled transformation step in a cycle. Outlet must be
// a pure function of the inlet state and the device's configuration; it
// must not mutate the inlet. Configuration problems are reported from
// Outlet (solve time), not at construction.
type Device interface {
	Name() string
	Type() DeviceType
	Outlet(b fluid.Backend, inlet fluid.State) (fluid.State, error)
}

// Process is the realized result of exercising one device during a
// solve: the inlet it consumed and the outlet it produced.
type Process struct {
	Device Device
	Inlet  fluid.State
	Outlet fluid.State
}

// EnergyBalance is the magnitude of the enthalpy change across the
// device in J/kg. It is non-negative by definition; direction is
// implied by the device type.
func (p Process) EnergyBalance() float64 {
	return math.Abs(p.Outlet.Enthalpy - p.Inlet.Enthalpy)
}

// base carries the name shared by every device kind.
type base struct {
	name string
}

func (b base) Name() string { return b.name }
