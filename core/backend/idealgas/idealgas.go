// core/backend/idealgas/idealgas.go
// Ideal-gas property backend for air. Enthalpy and reference entropy
// come from a cubic cp(T) fit (Çengel & Boles, Table A-2c, molar basis,
// valid roughly 250–1800 K); entropy adds the −R·ln(p/p0) pressure
// term. PH/PS queries invert the monotonic h(T) and s0(T) integrals
// with a bracketed Newton iteration.
//
// Units match the core: Pa, °C in/out (K internally), J/kg, J/(kg·K).
package idealgas

import (
	"math"

	"thermosys-core/fluid"
)

const (
	molarMass = 28.97    // kg/kmol
	gasConst  = 8314.462 / molarMass // J/(kg·K)

	// cp̄(T) = a + bT + cT² + dT³, kJ/(kmol·K), T in K.
	cpA = 28.11
	cpB = 0.1967e-2
	cpC = 0.4802e-5
	cpD = -1.966e-9

	refTemperature = 273.15 // K, h and s0 zero point
	refPressure    = 101325.0

	minTemperature = 250.0  // K, fit range
	maxTemperature = 2000.0 // K
)

// Backend evaluates air as an ideal gas. The zero value is ready to
// use; it holds no state and is safe for concurrent use.
type Backend struct{}

// New returns an air backend.
func New() *Backend { return &Backend{} }

func (*Backend) Fluid() string { return "air" }

// cp in J/(kg·K) at temperature tK.
func cp(tK float64) float64 {
	return (cpA + cpB*tK + cpC*tK*tK + cpD*tK*tK*tK) * 1000 / molarMass
}

// enthalpy integrates cp from the reference temperature, J/kg.
func enthalpy(tK float64) float64 {
	integ := func(t float64) float64 {
		return cpA*t + cpB/2*t*t + cpC/3*t*t*t + cpD/4*t*t*t*t
	}
	return (integ(tK) - integ(refTemperature)) * 1000 / molarMass
}

// refEntropy integrates cp/T from the reference temperature, J/(kg·K).
func refEntropy(tK float64) float64 {
	integ := func(t float64) float64 {
		return cpA*math.Log(t) + cpB*t + cpC/2*t*t + cpD/3*t*t*t
	}
	return (integ(tK) - integ(refTemperature)) * 1000 / molarMass
}

func (b *Backend) state(pressure, tK float64) fluid.State {
	return fluid.State{
		Fluid:          b.Fluid(),
		Temperature:    tK - 273.15,
		Pressure:       pressure,
		Enthalpy:       enthalpy(tK),
		Entropy:        refEntropy(tK) - gasConst*math.Log(pressure/refPressure),
		SpecificVolume: gasConst * tK / pressure,
	}
}

func (b *Backend) fail(in fluid.Input, reason string) error {
	return &fluid.ResolutionError{Fluid: b.Fluid(), Input: in, Reason: reason}
}

// State resolves a full air state from an input pair. Quality inputs
// are unresolvable: air has no saturation dome in the modeled range.
func (b *Backend) State(in fluid.Input) (fluid.State, error) {
	if in.Pressure <= 0 {
		return fluid.State{}, b.fail(in, "pressure must be positive")
	}
	switch in.Kind {
	case fluid.InputTemperature:
		tK := in.Value + 273.15
		if tK < minTemperature || tK > maxTemperature {
			return fluid.State{}, b.fail(in, "temperature outside fit range")
		}
		return b.state(in.Pressure, tK), nil

	case fluid.InputEnthalpy:
		tK, ok := invert(enthalpy, cp, in.Value)
		if !ok {
			return fluid.State{}, b.fail(in, "enthalpy outside fit range")
		}
		return b.state(in.Pressure, tK), nil

	case fluid.InputEntropy:
		// s(T,p) = s0(T) − R ln(p/p0); solve s0(T) for the target.
		target := in.Value + gasConst*math.Log(in.Pressure/refPressure)
		tK, ok := invert(refEntropy, func(t float64) float64 { return cp(t) / t }, target)
		if !ok {
			return fluid.State{}, b.fail(in, "entropy outside fit range")
		}
		return b.state(in.Pressure, tK), nil

	case fluid.InputQuality:
		return fluid.State{}, b.fail(in, "air has no two-phase region")
	}
	return fluid.State{}, b.fail(in, "unsupported input kind")
}

// CompressionToPressure performs isentropic compression de-rated by
// efficiency: the realized enthalpy rise is the ideal rise divided by
// efficiency.
func (b *Backend) CompressionToPressure(from fluid.State, pressure, efficiency float64) (fluid.State, error) {
	ideal, err := b.State(fluid.PS(pressure, from.Entropy))
	if err != nil {
		return fluid.State{}, err
	}
	if efficiency <= 0 || efficiency > 1 {
		return fluid.State{}, b.fail(fluid.PS(pressure, from.Entropy), "efficiency out of (0, 1]")
	}
	rise := (ideal.Enthalpy - from.Enthalpy) / efficiency
	return b.State(fluid.PH(pressure, from.Enthalpy+rise))
}

// ExpansionToPressure performs isentropic expansion de-rated by
// efficiency: the realized enthalpy drop is the ideal drop multiplied
// by efficiency.
func (b *Backend) ExpansionToPressure(from fluid.State, pressure, efficiency float64) (fluid.State, error) {
	ideal, err := b.State(fluid.PS(pressure, from.Entropy))
	if err != nil {
		return fluid.State{}, err
	}
	if efficiency <= 0 || efficiency > 1 {
		return fluid.State{}, b.fail(fluid.PS(pressure, from.Entropy), "efficiency out of (0, 1]")
	}
	drop := (ideal.Enthalpy - from.Enthalpy) * efficiency
	return b.State(fluid.PH(pressure, from.Enthalpy+drop))
}

// CoolingToEnthalpy resolves the state reached by cooling to a target
// enthalpy while losing pressureDrop.
func (b *Backend) CoolingToEnthalpy(from fluid.State, enthalpy, pressureDrop float64) (fluid.State, error) {
	return b.State(fluid.PH(from.Pressure-pressureDrop, enthalpy))
}

// SaturationAtPressure always fails: the ideal-gas model has no dome.
func (b *Backend) SaturationAtPressure(pressure, quality float64) (fluid.State, error) {
	return fluid.State{}, b.fail(fluid.PQ(pressure, quality), "air has no two-phase region")
}

// invert solves f(t) = target for t in the fit range. f must be
// strictly increasing with derivative df. Newton steps are kept inside
// a shrinking bisection bracket, after the root finder in the
// Lee-Kesler style of hand-rolled EOS solvers.
func invert(f, df func(float64) float64, target float64) (float64, bool) {
	lo, hi := minTemperature, maxTemperature
	if target < f(lo) || target > f(hi) {
		return 0, false
	}
	t := (lo + hi) / 2
	for i := 0; i < 80; i++ {
		val := f(t) - target
		if math.Abs(val) < 1e-9*(1+math.Abs(target)) {
			return t, true
		}
		if val > 0 {
			hi = t
		} else {
			lo = t
		}
		next := t - val/df(t)
		if next <= lo || next >= hi {
			next = (lo + hi) / 2
		}
		t = next
	}
	return t, true
}
