// core/fluid/state.go
// Working-fluid state snapshots and the property-backend contract.
// The core always operates in SI: Pa, °C, J/kg, J/(kg·K), m³/kg.
package fluid

import "fmt"

// State is an immutable snapshot of a working fluid at one point in a
// cycle. States are produced by a Backend or by device transformations;
// they are never mutated in place.
type State struct {
	Fluid          string  // fluid identity, e.g. "air", "water"
	Label          string  // optional point label for reporting
	Temperature    float64 // °C
	Pressure       float64 // Pa
	Enthalpy       float64 // J/kg
	Entropy        float64 // J/(kg·K)
	SpecificVolume float64 // m³/kg
}

// WithLabel returns a copy of s carrying the given point label.
func (s State) WithLabel(label string) State {
	s.Label = label
	return s
}

func (s State) String() string {
	name := s.Label
	if name == "" {
		name = s.Fluid
	}
	return fmt.Sprintf("%s: %.2f bar, %.2f C, %.2f kJ/kg",
		name, s.Pressure*1e-5, s.Temperature, s.Enthalpy*1e-3)
}
