// core/cycle/cycle.go
// Sequential state-propagation engine: an ordered device chain sharing
// one continuous fluid trajectory.
package cycle

import "thermosys-core/fluid"

// Cycle threads a working-fluid state through an ordered chain of
// devices. Insertion order is physical flow order and is never
// reordered. A Cycle is either unsolved or solved; adding a device
// reverts it to unsolved.
//
// Cycles are not safe for concurrent use. Independent trials must each
// build their own devices and Cycle.
type Cycle struct {
	backend fluid.Backend
	initial fluid.State
	devices []Device
	procs   []Process
	solved  bool
}

// New returns an unsolved cycle starting from the given state.
func New(backend fluid.Backend, initial fluid.State) *Cycle {
	return &Cycle{backend: backend, initial: initial}
}

// AddDevice appends a device to the flow order and invalidates any
// previous solve.
func (c *Cycle) AddDevice(d Device) {
	c.devices = append(c.devices, d)
	c.solved = false
	c.procs = nil
}

// AddDevices appends devices in the given order.
func (c *Cycle) AddDevices(ds ...Device) {
	for _, d := range ds {
		c.AddDevice(d)
	}
}

// InitialState returns the state the trajectory starts from.
func (c *Cycle) InitialState() fluid.State { return c.initial }

// Devices returns the devices in flow order.
func (c *Cycle) Devices() []Device { return c.devices }

// Solved reports whether the last Solve completed.
func (c *Cycle) Solved() bool { return c.solved }

// Solve recomputes the full state trajectory from the initial state.
// Each device consumes the previous outlet as its inlet. The solve is
// all-or-nothing: a failing device aborts it, the cycle stays unsolved
// and the error names the device and its 1-based position. Re-solving
// an unchanged cycle reproduces identical results.
func (c *Cycle) Solve() error {
	c.solved = false
	c.procs = c.procs[:0]

	state := c.initial
	for i, d := range c.devices {
		outlet, err := d.Outlet(c.backend, state)
		if err != nil {
			c.procs = nil
			return &DeviceError{Device: d.Name(), Position: i + 1, Err: err}
		}
		c.procs = append(c.procs, Process{Device: d, Inlet: state, Outlet: outlet})
		state = outlet
	}
	c.solved = true
	return nil
}

// States returns the trajectory of a solved cycle: length device
// count + 1, index 0 the initial state, index i+1 the outlet of device
// i. Nil when unsolved.
func (c *Cycle) States() []fluid.State {
	if !c.solved {
		return nil
	}
	out := make([]fluid.State, 0, len(c.procs)+1)
	out = append(out, c.initial)
	for _, p := range c.procs {
		out = append(out, p.Outlet)
	}
	return out
}

// Processes returns the per-device results of a solved cycle, in flow
// order. Nil when unsolved.
func (c *Cycle) Processes() []Process {
	if !c.solved {
		return nil
	}
	return c.procs
}

func (c *Cycle) sumByType(t DeviceType) (float64, error) {
	if !c.solved || len(c.devices) == 0 {
		return 0, ErrNotSolved
	}
	var sum float64
	for _, p := range c.procs {
		if p.Device.Type() == t {
			sum += p.EnergyBalance()
		}
	}
	return sum, nil
}

// TurbineWork sums the energy balances of all turbines, J/kg.
func (c *Cycle) TurbineWork() (float64, error) { return c.sumByType(DeviceTurbine) }

// CompressorWork sums the energy balances of all compressors, J/kg.
func (c *Cycle) CompressorWork() (float64, error) { return c.sumByType(DeviceCompressor) }

// PumpWork sums the energy balances of all pumps, J/kg.
func (c *Cycle) PumpWork() (float64, error) { return c.sumByType(DevicePump) }

// HeatIn sums the energy balances of all heat sources, J/kg.
func (c *Cycle) HeatIn() (float64, error) { return c.sumByType(DeviceHeatSource) }

// Efficiency is the Brayton thermal efficiency,
// (turbine work − compressor work) / heat in. It fails with
// ErrNotSolved before a successful solve and with a ConfigError when
// the chain has no heat source.
func (c *Cycle) Efficiency() (float64, error) {
	turbine, err := c.TurbineWork()
	if err != nil {
		return 0, err
	}
	compressor, err := c.CompressorWork()
	if err != nil {
		return 0, err
	}
	heat, err := c.HeatIn()
	if err != nil {
		return 0, err
	}
	if heat == 0 {
		return 0, &ConfigError{Reason: "cycle has no heat input"}
	}
	return (turbine - compressor) / heat, nil
}
