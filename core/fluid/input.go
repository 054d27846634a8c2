// core/fluid/input.go
package fluid

import "fmt"

// InputKind selects which independent property accompanies pressure in
// a state query.
type InputKind int

const (
	InputTemperature InputKind = iota // °C
	InputEnthalpy                     // J/kg
	InputEntropy                      // J/(kg·K)
	InputQuality                      // vapor mass fraction, 0..1
)

func (k InputKind) String() string {
	switch k {
	case InputTemperature:
		return "temperature"
	case InputEnthalpy:
		return "enthalpy"
	case InputEntropy:
		return "entropy"
	case InputQuality:
		return "quality"
	}
	return fmt.Sprintf("InputKind(%d)", int(k))
}

// Input is a pair of independent properties: pressure plus one other.
type Input struct {
	Kind     InputKind
	Pressure float64 // Pa
	Value    float64 // units per Kind
}

// PT builds a pressure+temperature input (Pa, °C).
func PT(pressure, temperature float64) Input {
	return Input{Kind: InputTemperature, Pressure: pressure, Value: temperature}
}

// PH builds a pressure+enthalpy input (Pa, J/kg).
func PH(pressure, enthalpy float64) Input {
	return Input{Kind: InputEnthalpy, Pressure: pressure, Value: enthalpy}
}

// PS builds a pressure+entropy input (Pa, J/kg/K).
func PS(pressure, entropy float64) Input {
	return Input{Kind: InputEntropy, Pressure: pressure, Value: entropy}
}

// PQ builds a pressure+quality input (Pa, mass fraction).
func PQ(pressure, quality float64) Input {
	return Input{Kind: InputQuality, Pressure: pressure, Value: quality}
}

func (in Input) String() string {
	return fmt.Sprintf("p=%.6g Pa, %s=%.6g", in.Pressure, in.Kind, in.Value)
}
