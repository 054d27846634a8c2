// internal/cycledef/cycledef.go
// YAML cycle definitions: a document names a working fluid, an initial
// state and an ordered device list, and builds into a ready-to-solve
// cycle.
package cycledef

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	"thermosys-core/backend/idealgas"
	"thermosys-core/backend/steam"
	"thermosys-core/cycle"
	"thermosys-core/fluid"
	"thermosys-core/units"
)

// Definition is the parsed document.
type Definition struct {
	Cycle   string      `yaml:"cycle"`
	Fluid   string      `yaml:"fluid"`
	Initial InitialDef  `yaml:"initial"`
	Devices []DeviceDef `yaml:"devices"`
}

// InitialDef fixes the trajectory's starting state.
type InitialDef struct {
	PressureBar  float64 `yaml:"pressure_bar"`
	TemperatureC float64 `yaml:"temperature_c"`
}

// DeviceDef is one device entry. Kind selects which of the remaining
// fields apply; unused fields are ignored.
type DeviceDef struct {
	Kind             string  `yaml:"kind"`
	Name             string  `yaml:"name"`
	Efficiency       float64 `yaml:"efficiency"`
	CompressionRatio float64 `yaml:"compression_ratio"`
	OutletPressure   float64 `yaml:"outlet_pressure_bar"`
	OutletTempC      float64 `yaml:"outlet_temperature_c"`
	EnergyBalanceKJ  float64 `yaml:"energy_balance_kj"`
	BalanceOf        string  `yaml:"balance_of"`
	TemperatureC     float64 `yaml:"temperature_c"`
}

// Load reads a definition from a YAML file.
func Load(path string) (*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cycle definition: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Decode(f)
}

// Decode reads a definition from a reader and validates it.
func Decode(r io.Reader) (*Definition, error) {
	var def Definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("decode cycle definition: %w", err)
	}
	if def.Cycle == "" {
		return nil, fmt.Errorf("cycle definition needs a name")
	}
	if len(def.Devices) == 0 {
		return nil, fmt.Errorf("cycle %q defines no devices", def.Cycle)
	}
	return &def, nil
}

// Backend maps the document's fluid name to a property backend.
func (d *Definition) Backend() (fluid.Backend, error) {
	switch strings.ToLower(d.Fluid) {
	case "air":
		return idealgas.New(), nil
	case "water", "steam":
		return steam.New(), nil
	default:
		return nil, fmt.Errorf("unknown fluid %q", d.Fluid)
	}
}

// Build constructs the unsolved cycle. A balance_of reference sizes a
// balance turbine to the realized work of an earlier named device; the
// partial chain is evaluated during the build to resolve it.
func (d *Definition) Build() (*cycle.Cycle, error) {
	b, err := d.Backend()
	if err != nil {
		return nil, err
	}
	initial, err := b.State(fluid.PT(
		units.BarToPascal(d.Initial.PressureBar),
		d.Initial.TemperatureC,
	))
	if err != nil {
		return nil, fmt.Errorf("initial state: %w", err)
	}
	initial = initial.WithLabel("1")

	c := cycle.New(b, initial)
	state := initial
	balances := map[string]float64{}
	for i, dd := range d.Devices {
		dev, err := d.device(dd, balances)
		if err != nil {
			return nil, fmt.Errorf("device %d (%s): %w", i+1, dd.Name, err)
		}
		c.AddDevice(dev)

		// Thread the partial trajectory so later balance_of
		// references can resolve. Build-time failures here are left
		// to Solve, which reports them with device positions.
		outlet, err := dev.Outlet(b, state)
		if err == nil {
			balances[dev.Name()] = outlet.Enthalpy - state.Enthalpy
			state = outlet
		}
	}
	return c, nil
}

func (d *Definition) device(dd DeviceDef, balances map[string]float64) (cycle.Device, error) {
	switch strings.ToLower(dd.Kind) {
	case "compressor":
		return cycle.NewCompressor(dd.Name, dd.Efficiency, dd.CompressionRatio), nil
	case "turbine":
		return cycle.NewTurbineToPressure(dd.Name, dd.Efficiency, units.BarToPascal(dd.OutletPressure)), nil
	case "turbine_to_energy_balance":
		balance := dd.EnergyBalanceKJ * 1000
		if dd.BalanceOf != "" {
			w, ok := balances[dd.BalanceOf]
			if !ok {
				return nil, fmt.Errorf("balance_of %q does not name an earlier device", dd.BalanceOf)
			}
			balance = w
		}
		return cycle.NewTurbineToEnergyBalance(dd.Name, dd.Efficiency, units.BarToPascal(dd.OutletPressure), balance), nil
	case "heat_source", "combustion_chamber":
		return cycle.NewHeatSource(dd.Name, dd.OutletTempC), nil
	case "condenser":
		return cycle.NewCondenser(dd.Name, units.BarToPascal(dd.OutletPressure)), nil
	case "pump":
		return cycle.NewPump(dd.Name, dd.Efficiency, units.BarToPascal(dd.OutletPressure)), nil
	case "deaerator":
		return cycle.NewDeaerator(dd.Name, dd.TemperatureC), nil
	default:
		return nil, fmt.Errorf("unknown device kind %q", dd.Kind)
	}
}
