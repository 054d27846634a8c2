// pkg/api/cycle_v1.go
package api

// StateV1 is the stable JSON schema for one point of a state
// trajectory. Values are reported in engineering units (bar, °C,
// kJ/kg); the core's SI values are converted at this boundary only.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type StateV1 struct {
	Index          int     `json:"index"`
	Label          string  `json:"label,omitempty"`
	Fluid          string  `json:"fluid"`
	PressureBar    float64 `json:"pressure_bar"`
	TemperatureC   float64 `json:"temperature_c"`
	EnthalpyKJ     float64 `json:"enthalpy_kj_kg"`
	EntropyKJ      float64 `json:"entropy_kj_kg_k"`
	SpecificVolume float64 `json:"specific_volume_m3_kg"`
}

// ProcessV1 is the stable schema for one exercised device.
type ProcessV1 struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	EnergyBalanceKJ float64 `json:"energy_balance_kj_kg"`
}

// CycleReportV1 is the stable schema for a solved cycle. Work and heat
// terms are specific (kJ/kg).
type CycleReportV1 struct {
	Cycle          string      `json:"cycle"`
	Fluid          string      `json:"fluid"`
	States         []StateV1   `json:"states"`
	Processes      []ProcessV1 `json:"processes"`
	TurbineWorkKJ  float64     `json:"turbine_work_kj_kg"`
	CompressorWork float64     `json:"compressor_work_kj_kg,omitempty"`
	PumpWorkKJ     float64     `json:"pump_work_kj_kg,omitempty"`
	HeatInKJ       float64     `json:"heat_in_kj_kg"`
	NetWorkKJ      float64     `json:"net_work_kj_kg"`
	Efficiency     float64     `json:"efficiency"`
	BackWorkRatio  float64     `json:"back_work_ratio,omitempty"`
}

// CogenerationReportV1 combines the gas topping and vapor bottoming
// cycle reports of a cogeneration run.
type CogenerationReportV1 struct {
	Gas   CycleReportV1 `json:"gas"`
	Vapor CycleReportV1 `json:"vapor"`
}
