// internal/report/report.go
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"thermosys-core/cycle"
	"thermosys-core/units"
	"thermosys/pkg/api"
)

// TSVHeader is the canonical header row for the text state table.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "index\tlabel\tpressure_bar\ttemperature_c\tenthalpy_kj_kg\tentropy_kj_kg_k"

// Build flattens a solved cycle into its stable report form. Work and
// heat terms are converted from J/kg to kJ/kg at this boundary.
func Build(name string, c *cycle.Cycle) (api.CycleReportV1, error) {
	states := c.States()
	if states == nil {
		return api.CycleReportV1{}, cycle.ErrNotSolved
	}

	turbine, err := c.TurbineWork()
	if err != nil {
		return api.CycleReportV1{}, err
	}
	compressor, err := c.CompressorWork()
	if err != nil {
		return api.CycleReportV1{}, err
	}
	pump, err := c.PumpWork()
	if err != nil {
		return api.CycleReportV1{}, err
	}
	heat, err := c.HeatIn()
	if err != nil {
		return api.CycleReportV1{}, err
	}

	r := api.CycleReportV1{
		Cycle:          name,
		Fluid:          c.InitialState().Fluid,
		TurbineWorkKJ:  turbine / 1000,
		CompressorWork: compressor / 1000,
		PumpWorkKJ:     pump / 1000,
		HeatInKJ:       heat / 1000,
		NetWorkKJ:      (turbine - compressor - pump) / 1000,
	}
	if heat > 0 {
		r.Efficiency = (turbine - compressor - pump) / heat
	}
	if turbine > 0 {
		r.BackWorkRatio = (compressor + pump) / turbine
	}

	for i, s := range states {
		r.States = append(r.States, api.StateV1{
			Index:          i,
			Label:          s.Label,
			Fluid:          s.Fluid,
			PressureBar:    units.PascalToBar(s.Pressure),
			TemperatureC:   s.Temperature,
			EnthalpyKJ:     s.Enthalpy / 1000,
			EntropyKJ:      s.Entropy / 1000,
			SpecificVolume: s.SpecificVolume,
		})
	}
	for _, p := range c.Processes() {
		r.Processes = append(r.Processes, api.ProcessV1{
			Name:            p.Device.Name(),
			Type:            p.Device.Type().String(),
			EnergyBalanceKJ: p.EnergyBalance() / 1000,
		})
	}
	return r, nil
}

// EncodeJSON writes v as indented JSON to w.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r api.CycleReportV1) error {
	return EncodeJSON(w, r)
}

// WriteText writes the report as a state table plus summary lines.
func WriteText(w io.Writer, r api.CycleReportV1) error {
	if _, err := fmt.Fprintf(w, "cycle\t%s\t(%s)\n", r.Cycle, r.Fluid); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
		return err
	}
	for _, s := range r.States {
		if _, err := fmt.Fprintf(
			w, "%d\t%s\t%.3f\t%.2f\t%.2f\t%.4f\n",
			s.Index, s.Label, s.PressureBar, s.TemperatureC, s.EnthalpyKJ, s.EntropyKJ,
		); err != nil {
			return err
		}
	}
	for _, p := range r.Processes {
		if _, err := fmt.Fprintf(
			w, "%s\t%s\t%.2f kJ/kg\n", p.Type, p.Name, p.EnergyBalanceKJ,
		); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(
		w,
		"turbine_work\t%.2f kJ/kg\ncompressor_work\t%.2f kJ/kg\npump_work\t%.2f kJ/kg\nheat_in\t%.2f kJ/kg\nnet_work\t%.2f kJ/kg\nefficiency\t%.4f\nback_work_ratio\t%.4f\n",
		r.TurbineWorkKJ, r.CompressorWork, r.PumpWorkKJ, r.HeatInKJ, r.NetWorkKJ, r.Efficiency, r.BackWorkRatio,
	)
	return err
}

// Write dispatches on format ("text" or "json").
func Write(w io.Writer, format string, r api.CycleReportV1) error {
	switch format {
	case "json":
		return WriteJSON(w, r)
	case "text", "":
		return WriteText(w, r)
	default:
		return fmt.Errorf("unsupported output %q", format)
	}
}
