// internal/scenario/scenario.go
// Built-in cycle drivers: a two-stage reheat gas cycle, a recovery
// vapor cycle fed by its exhaust, and their cogeneration combination.
package scenario

import (
	"fmt"

	"thermosys-core/cycle"
	"thermosys-core/fluid"
	"thermosys-core/units"
	"thermosys/internal/report"
	"thermosys/pkg/api"
)

// GasParams configures the gas topping cycle.
type GasParams struct {
	InletPressure             float64 // Pa
	InletTemperature          float64 // °C
	CompressorEfficiency      float64
	CompressionRatio          float64
	CombustionTemperature1    float64 // °C
	BalanceTurbineEfficiency  float64
	BalanceTurbineOutlet      float64 // Pa
	CombustionTemperature2    float64 // °C
	PressureTurbineEfficiency float64
}

// DefaultGasParams returns the reference two-stage reheat gas cycle:
// air at 1 bar / 30 °C, compression ratio 25, first stage burning to
// 1000 °C, a shaft-balancing turbine expanding to 10 bar, reheat to
// 710 °C and a final expansion back to inlet pressure.
func DefaultGasParams() GasParams {
	return GasParams{
		InletPressure:             units.BarToPascal(1),
		InletTemperature:          30,
		CompressorEfficiency:      0.8,
		CompressionRatio:          25,
		CombustionTemperature1:    1000,
		BalanceTurbineEfficiency:  0.8,
		BalanceTurbineOutlet:      units.BarToPascal(10),
		CombustionTemperature2:    710,
		PressureTurbineEfficiency: 0.85,
	}
}

// VaporParams configures the recovery vapor cycle.
type VaporParams struct {
	InletPressure      float64 // Pa, deaerator feed pressure
	DeaeratorPressure  float64 // Pa
	DeaeratorTemp      float64 // °C
	BoilerApproach     float64 // °C below the gas exhaust temperature
	TurbineEfficiency  float64
	CondenserPressure  float64 // Pa
	PumpEfficiency     float64
}

// DefaultVaporParams returns the reference recovery cycle: feed at
// 10 bar, deaerator at 5 bar / 120 °C, expansion stages to 5 bar and
// 0.1 bar, near-ideal pumps.
func DefaultVaporParams() VaporParams {
	return VaporParams{
		InletPressure:     units.BarToPascal(10),
		DeaeratorPressure: units.BarToPascal(5),
		DeaeratorTemp:     120,
		BoilerApproach:    25,
		TurbineEfficiency: 0.9,
		CondenserPressure: units.BarToPascal(0.1),
		PumpEfficiency:    0.9999,
	}
}

// Brayton builds and solves the gas cycle. The first turbine is sized
// at solve assembly to supply exactly the compressor's realized work.
func Brayton(b fluid.Backend, p GasParams) (api.CycleReportV1, *cycle.Cycle, error) {
	initial, err := b.State(fluid.PT(p.InletPressure, p.InletTemperature))
	if err != nil {
		return api.CycleReportV1{}, nil, err
	}
	initial = initial.WithLabel("1g")

	compressor := cycle.NewCompressor("C1g", p.CompressorEfficiency, p.CompressionRatio)

	// The balance turbine needs the compressor's realized enthalpy
	// rise before the chain exists. Devices are pure, so probing one
	// outside a cycle is harmless.
	compOut, err := compressor.Outlet(b, initial)
	if err != nil {
		return api.CycleReportV1{}, nil, err
	}
	compressorWork := compOut.Enthalpy - initial.Enthalpy

	c := cycle.New(b, initial)
	c.AddDevices(
		compressor,
		cycle.NewHeatSource("CC1g", p.CombustionTemperature1),
		cycle.NewTurbineToEnergyBalance("TCg", p.BalanceTurbineEfficiency, p.BalanceTurbineOutlet, compressorWork),
		cycle.NewHeatSource("CC2g", p.CombustionTemperature2),
		cycle.NewTurbineToPressure("TPg", p.PressureTurbineEfficiency, p.InletPressure),
	)
	if err := c.Solve(); err != nil {
		return api.CycleReportV1{}, nil, err
	}

	r, err := report.Build("brayton", c)
	if err != nil {
		return api.CycleReportV1{}, nil, err
	}
	return r, c, nil
}

// Rankine builds and solves the recovery vapor cycle against a given
// gas exhaust temperature. The linear engine covers boiler, expansion
// stages, condenser and condensate pump; the feed pump closing the loop
// back to the deaerator is back-solved from the deaerator state and
// folded into the aggregates here.
func Rankine(b fluid.Backend, gasOutletTemp float64, p VaporParams) (api.CycleReportV1, error) {
	boilerTemp := gasOutletTemp - p.BoilerApproach
	if boilerTemp <= p.DeaeratorTemp {
		return api.CycleReportV1{}, fmt.Errorf(
			"recovery boiler temperature %.1f C not above deaerator %.1f C",
			boilerTemp, p.DeaeratorTemp,
		)
	}

	deaerator, err := b.State(fluid.PT(p.InletPressure, p.DeaeratorTemp))
	if err != nil {
		return api.CycleReportV1{}, err
	}
	deaerator = deaerator.WithLabel("7v")

	c := cycle.New(b, deaerator)
	c.AddDevices(
		cycle.NewHeatSource("RBv", boilerTemp),
		cycle.NewTurbineToPressure("T1v", p.TurbineEfficiency, p.DeaeratorPressure),
		cycle.NewTurbineToPressure("T2v", p.TurbineEfficiency, p.CondenserPressure),
		cycle.NewCondenser("Cv", 0),
		cycle.NewPump("P1v", p.PumpEfficiency, p.DeaeratorPressure),
	)
	if err := c.Solve(); err != nil {
		return api.CycleReportV1{}, err
	}

	feedPump := cycle.NewPump("P2v", p.PumpEfficiency, p.InletPressure)
	feedInlet, err := feedPump.InletState(b, deaerator, p.DeaeratorPressure)
	if err != nil {
		return api.CycleReportV1{}, err
	}
	feedProc := cycle.Process{Device: feedPump, Inlet: feedInlet.WithLabel("6v"), Outlet: deaerator}

	r, err := report.Build("rankine", c)
	if err != nil {
		return api.CycleReportV1{}, err
	}

	feedWork := feedProc.EnergyBalance()
	r.States = append(r.States, api.StateV1{
		Index:          len(r.States),
		Label:          "6v",
		Fluid:          feedInlet.Fluid,
		PressureBar:    units.PascalToBar(feedInlet.Pressure),
		TemperatureC:   feedInlet.Temperature,
		EnthalpyKJ:     feedInlet.Enthalpy / 1000,
		EntropyKJ:      feedInlet.Entropy / 1000,
		SpecificVolume: feedInlet.SpecificVolume,
	})
	r.Processes = append(r.Processes, api.ProcessV1{
		Name:            feedPump.Name(),
		Type:            feedPump.Type().String(),
		EnergyBalanceKJ: feedWork / 1000,
	})
	r.PumpWorkKJ += feedWork / 1000
	r.NetWorkKJ = r.TurbineWorkKJ - r.CompressorWork - r.PumpWorkKJ
	if r.HeatInKJ > 0 {
		r.Efficiency = r.NetWorkKJ / r.HeatInKJ
	}
	if r.TurbineWorkKJ > 0 {
		r.BackWorkRatio = (r.CompressorWork + r.PumpWorkKJ) / r.TurbineWorkKJ
	}
	return r, nil
}

// Cogeneration solves the gas cycle, feeds its exhaust temperature to
// the vapor cycle, and returns both reports.
func Cogeneration(gas fluid.Backend, vapor fluid.Backend, gp GasParams, vp VaporParams) (api.CogenerationReportV1, error) {
	gasReport, c, err := Brayton(gas, gp)
	if err != nil {
		return api.CogenerationReportV1{}, err
	}
	states := c.States()
	exhaust := states[len(states)-1].Temperature

	vaporReport, err := Rankine(vapor, exhaust, vp)
	if err != nil {
		return api.CogenerationReportV1{}, err
	}
	return api.CogenerationReportV1{Gas: gasReport, Vapor: vaporReport}, nil
}
