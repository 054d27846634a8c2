// core/cycle/devices.go
// Concrete device kinds. The two turbine operating modes are two
// explicit types rather than one type switching on an optional field.
package cycle

import (
	"math"

	"thermosys-core/fluid"
)

// Compressor raises the inlet pressure by a fixed compression ratio.
// Efficiency < 1 increases the realized enthalpy rise above the
// isentropic one.
type Compressor struct {
	base
	efficiency float64
	ratio      float64
}

// NewCompressor returns a compressor with the given isentropic
// efficiency (0 < efficiency <= 1) and outlet/inlet pressure ratio.
func NewCompressor(name string, efficiency, ratio float64) *Compressor {
	return &Compressor{base: base{name}, efficiency: efficiency, ratio: ratio}
}

func (c *Compressor) Type() DeviceType { return DeviceCompressor }

func (c *Compressor) Outlet(b fluid.Backend, inlet fluid.State) (fluid.State, error) {
	if err := checkEfficiency(c.efficiency); err != nil {
		return fluid.State{}, err
	}
	if c.ratio <= 0 {
		return fluid.State{}, &ConfigError{Reason: "compression ratio must be positive"}
	}
	return b.CompressionToPressure(inlet, inlet.Pressure*c.ratio, c.efficiency)
}

// TurbineToPressure expands the inlet to a configured outlet pressure,
// de-rated by isentropic efficiency.
type TurbineToPressure struct {
	base
	efficiency     float64
	outletPressure float64
}

func NewTurbineToPressure(name string, efficiency, outletPressure float64) *TurbineToPressure {
	return &TurbineToPressure{base: base{name}, efficiency: efficiency, outletPressure: outletPressure}
}

func (t *TurbineToPressure) Type() DeviceType { return DeviceTurbine }

func (t *TurbineToPressure) Outlet(b fluid.Backend, inlet fluid.State) (fluid.State, error) {
	if err := checkEfficiency(t.efficiency); err != nil {
		return fluid.State{}, err
	}
	if t.outletPressure <= 0 {
		return fluid.State{}, &ConfigError{Reason: "outlet pressure must be positive"}
	}
	return b.ExpansionToPressure(inlet, t.outletPressure, t.efficiency)
}

// TurbineToEnergyBalance expands until the turbine has supplied a fixed
// specific work, e.g. to exactly drive a compressor on the same shaft.
// The outlet enthalpy is inlet enthalpy − balance/efficiency, reached
// with a pressure drop of |inlet pressure − outlet pressure|.
type TurbineToEnergyBalance struct {
	base
	efficiency     float64
	outletPressure float64
	energyBalance  float64 // J/kg the turbine must supply
}

func NewTurbineToEnergyBalance(name string, efficiency, outletPressure, energyBalance float64) *TurbineToEnergyBalance {
	return &TurbineToEnergyBalance{
		base:           base{name},
		efficiency:     efficiency,
		outletPressure: outletPressure,
		energyBalance:  energyBalance,
	}
}

func (t *TurbineToEnergyBalance) Type() DeviceType { return DeviceTurbine }

func (t *TurbineToEnergyBalance) Outlet(b fluid.Backend, inlet fluid.State) (fluid.State, error) {
	if err := checkEfficiency(t.efficiency); err != nil {
		return fluid.State{}, err
	}
	if t.energyBalance <= 0 {
		return fluid.State{}, &ConfigError{Reason: "energy balance must be positive"}
	}
	outletEnthalpy := inlet.Enthalpy - t.energyBalance/t.efficiency
	pressureDrop := math.Abs(inlet.Pressure - t.outletPressure)
	return b.CoolingToEnthalpy(inlet, outletEnthalpy, pressureDrop)
}

// HeatSource heats the fluid isobarically to a configured outlet
// temperature. It stands in for a combustion chamber or a recovery
// boiler; no chemistry is modeled.
type HeatSource struct {
	base
	outletTemperature float64 // °C
}

func NewHeatSource(name string, outletTemperature float64) *HeatSource {
	return &HeatSource{base: base{name}, outletTemperature: outletTemperature}
}

func (h *HeatSource) Type() DeviceType { return DeviceHeatSource }

func (h *HeatSource) Outlet(b fluid.Backend, inlet fluid.State) (fluid.State, error) {
	return b.State(fluid.PT(inlet.Pressure, h.outletTemperature))
}

// Condenser condenses the fluid to the saturated-liquid point at a
// configured pressure, or at the inlet pressure when none is set.
type Condenser struct {
	base
	outletPressure float64 // Pa; 0 means inlet pressure
}

func NewCondenser(name string, outletPressure float64) *Condenser {
	return &Condenser{base: base{name}, outletPressure: outletPressure}
}

func (c *Condenser) Type() DeviceType { return DeviceCondenser }

func (c *Condenser) Outlet(b fluid.Backend, inlet fluid.State) (fluid.State, error) {
	p := c.outletPressure
	if p == 0 {
		p = inlet.Pressure
	}
	return b.SaturationAtPressure(p, 0)
}

// Pump compresses a liquid to a configured outlet pressure, de-rated by
// efficiency. Mechanically a compressor applied to liquid.
type Pump struct {
	base
	efficiency     float64
	outletPressure float64
}

func NewPump(name string, efficiency, outletPressure float64) *Pump {
	return &Pump{base: base{name}, efficiency: efficiency, outletPressure: outletPressure}
}

func (p *Pump) Type() DeviceType { return DevicePump }

func (p *Pump) Outlet(b fluid.Backend, inlet fluid.State) (fluid.State, error) {
	if err := checkEfficiency(p.efficiency); err != nil {
		return fluid.State{}, err
	}
	if p.outletPressure <= 0 {
		return fluid.State{}, &ConfigError{Reason: "outlet pressure must be positive"}
	}
	return b.CompressionToPressure(inlet, p.outletPressure, p.efficiency)
}

// InletState back-solves the upstream state of the pump by isentropic
// expansion from a known downstream state to the lower inlet pressure.
// Used when a cycle is assembled around a known deaerator state.
func (p *Pump) InletState(b fluid.Backend, outlet fluid.State, inletPressure float64) (fluid.State, error) {
	if inletPressure <= 0 {
		return fluid.State{}, &ConfigError{Reason: "inlet pressure must be positive"}
	}
	return b.ExpansionToPressure(outlet, inletPressure, 1)
}

// Deaerator is a structural marker carrying an operating temperature.
// It fixes a branch temperature when linear sub-chains are assembled
// into a mixed cycle; it does not transform the stream itself.
type Deaerator struct {
	base
	temperature float64 // °C
}

func NewDeaerator(name string, temperature float64) *Deaerator {
	return &Deaerator{base: base{name}, temperature: temperature}
}

func (d *Deaerator) Type() DeviceType { return DeviceDeaerator }

// Temperature returns the configured operating temperature in °C.
func (d *Deaerator) Temperature() float64 { return d.temperature }

func (d *Deaerator) Outlet(_ fluid.Backend, inlet fluid.State) (fluid.State, error) {
	return inlet, nil
}

func checkEfficiency(eta float64) error {
	if eta <= 0 || eta > 1 {
		return &ConfigError{Reason: "efficiency must be in (0, 1]"}
	}
	return nil
}
