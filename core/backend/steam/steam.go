// core/backend/steam/steam.go
// Table-backed water/steam property backend. Saturation properties come
// from a hardcoded table interpolated on ln(p); two-phase states mix
// the endpoints by quality; superheated vapor extends from the dome
// with a constant vapor cp; compressed liquid uses the incompressible
// model h = cw·T + v·(p − psat(T)).
//
// Accuracy is textbook-grade (within about 1–2% of full steam tables
// over the dome and moderate superheat), which is what the cycle
// examples need. It is not an IAPWS implementation.
package steam

import (
	"math"
	"sort"

	"thermosys-core/fluid"
)

const (
	cw  = 4186.8 // liquid specific heat, J/(kg·K)
	cpv = 2200.0 // superheated vapor specific heat, J/(kg·K)
	rv  = 461.5  // vapor gas constant, J/(kg·K)
	vf0 = 0.001  // liquid specific volume, m³/kg

	zeroC = 273.15
)

// satRow is one saturation-table entry. Pressure in bar, temperature in
// °C, volumes in m³/kg, enthalpies in kJ/kg, entropies in kJ/(kg·K).
type satRow struct {
	pBar float64
	tSat float64
	vf   float64
	vg   float64
	hf   float64
	hg   float64
	sf   float64
	sg   float64
}

// Saturated water table (Moran/Çengel A-3 style).
var satTable = []satRow{
	{0.04, 28.96, 0.001004, 34.800, 121.46, 2554.4, 0.4226, 8.4746},
	{0.06, 36.16, 0.001006, 23.739, 151.53, 2567.4, 0.5210, 8.3304},
	{0.08, 41.51, 0.001008, 18.103, 173.88, 2577.0, 0.5926, 8.2287},
	{0.10, 45.81, 0.001010, 14.674, 191.83, 2584.7, 0.6493, 8.1502},
	{0.20, 60.06, 0.001017, 7.6490, 251.40, 2609.7, 0.8320, 7.9085},
	{0.50, 81.33, 0.001030, 3.2400, 340.49, 2645.9, 1.0910, 7.5939},
	{1.00, 99.63, 0.001043, 1.6940, 417.46, 2675.5, 1.3026, 7.3594},
	{1.50, 111.37, 0.001053, 1.1593, 467.11, 2693.6, 1.4336, 7.2233},
	{2.00, 120.23, 0.001061, 0.8857, 504.70, 2706.7, 1.5301, 7.1271},
	{3.00, 133.55, 0.001073, 0.6058, 561.47, 2725.3, 1.6718, 6.9919},
	{5.00, 151.86, 0.001093, 0.3749, 640.23, 2748.7, 1.8607, 6.8213},
	{7.00, 164.97, 0.001108, 0.2729, 697.22, 2763.5, 1.9922, 6.7080},
	{10.0, 179.91, 0.001127, 0.19444, 762.81, 2778.1, 2.1387, 6.5865},
	{15.0, 198.32, 0.001154, 0.13177, 844.84, 2792.2, 2.3150, 6.4448},
	{20.0, 212.42, 0.001177, 0.09963, 908.79, 2799.5, 2.4474, 6.3409},
	{30.0, 233.90, 0.001217, 0.06668, 1008.42, 2804.2, 2.6457, 6.1869},
	{40.0, 250.40, 0.001252, 0.04978, 1087.31, 2801.4, 2.7964, 6.0701},
	{60.0, 275.64, 0.001319, 0.03244, 1213.35, 2784.3, 3.0267, 5.8892},
	{80.0, 295.06, 0.001384, 0.02352, 1316.64, 2758.0, 3.2068, 5.7432},
	{100., 311.06, 0.001452, 0.018026, 1407.56, 2724.7, 3.3596, 5.6141},
	{140., 336.75, 0.001611, 0.011485, 1571.1, 2637.6, 3.6232, 5.3717},
	{180., 357.06, 0.001840, 0.007489, 1732.0, 2509.1, 3.8715, 5.1044},
	{220., 373.80, 0.002742, 0.003568, 2011.1, 2173.7, 4.3110, 4.5621},
}

// sat is a saturation point with everything in SI.
type sat struct {
	p, t           float64 // Pa, °C
	vf, vg         float64
	hf, hg, sf, sg float64
}

func rowToSI(r satRow, w float64, next satRow) sat {
	lerp := func(a, b float64) float64 { return a + w*(b-a) }
	// vg spans three decades; interpolate its logarithm.
	vg := math.Exp(lerp(math.Log(r.vg), math.Log(next.vg)))
	return sat{
		p:  math.Exp(lerp(math.Log(r.pBar), math.Log(next.pBar))) * 1e5,
		t:  lerp(r.tSat, next.tSat),
		vf: lerp(r.vf, next.vf),
		vg: vg,
		hf: lerp(r.hf, next.hf) * 1e3,
		hg: lerp(r.hg, next.hg) * 1e3,
		sf: lerp(r.sf, next.sf) * 1e3,
		sg: lerp(r.sg, next.sg) * 1e3,
	}
}

// Backend evaluates water and steam. The zero value is ready to use and
// safe for concurrent use.
type Backend struct{}

// New returns a water/steam backend.
func New() *Backend { return &Backend{} }

func (*Backend) Fluid() string { return "water" }

func (b *Backend) fail(in fluid.Input, reason string) error {
	return &fluid.ResolutionError{Fluid: b.Fluid(), Input: in, Reason: reason}
}

// satAt interpolates the saturation line at pressure p (Pa).
func satAt(p float64) (sat, bool) {
	pBar := p / 1e5
	if pBar < satTable[0].pBar || pBar > satTable[len(satTable)-1].pBar {
		return sat{}, false
	}
	i := sort.Search(len(satTable), func(i int) bool { return satTable[i].pBar >= pBar })
	if i == 0 {
		i = 1
	}
	lo, hi := satTable[i-1], satTable[i]
	w := (math.Log(pBar) - math.Log(lo.pBar)) / (math.Log(hi.pBar) - math.Log(lo.pBar))
	s := rowToSI(lo, w, hi)
	s.p = p
	return s, true
}

// psatAt returns the saturation pressure (Pa) for a temperature on the
// table's saturation line, or 0 below it (the correction term using it
// is negligible there).
func psatAt(tC float64) float64 {
	if tC <= satTable[0].tSat {
		return 0
	}
	if tC >= satTable[len(satTable)-1].tSat {
		return satTable[len(satTable)-1].pBar * 1e5
	}
	i := sort.Search(len(satTable), func(i int) bool { return satTable[i].tSat >= tC })
	lo, hi := satTable[i-1], satTable[i]
	w := (tC - lo.tSat) / (hi.tSat - lo.tSat)
	lnP := math.Log(lo.pBar) + w*(math.Log(hi.pBar)-math.Log(lo.pBar))
	return math.Exp(lnP) * 1e5
}

func (b *Backend) liquid(p, tC float64) fluid.State {
	return fluid.State{
		Fluid:          b.Fluid(),
		Temperature:    tC,
		Pressure:       p,
		Enthalpy:       cw*tC + vf0*(p-psatAt(tC)),
		Entropy:        cw * math.Log((tC+zeroC)/zeroC),
		SpecificVolume: vf0,
	}
}

func (b *Backend) superheated(p, tC float64, s sat) fluid.State {
	tK := tC + zeroC
	tSatK := s.t + zeroC
	return fluid.State{
		Fluid:          b.Fluid(),
		Temperature:    tC,
		Pressure:       p,
		Enthalpy:       s.hg + cpv*(tK-tSatK),
		Entropy:        s.sg + cpv*math.Log(tK/tSatK),
		SpecificVolume: rv * tK / p,
	}
}

func (b *Backend) twoPhase(p, x float64, s sat) fluid.State {
	mix := func(f, g float64) float64 { return f + x*(g-f) }
	return fluid.State{
		Fluid:          b.Fluid(),
		Temperature:    s.t,
		Pressure:       p,
		Enthalpy:       mix(s.hf, s.hg),
		Entropy:        mix(s.sf, s.sg),
		SpecificVolume: mix(s.vf, s.vg),
	}
}

// State resolves a full water/steam state from an input pair.
func (b *Backend) State(in fluid.Input) (fluid.State, error) {
	if in.Pressure <= 0 {
		return fluid.State{}, b.fail(in, "pressure must be positive")
	}
	s, ok := satAt(in.Pressure)
	if !ok {
		return fluid.State{}, b.fail(in, "pressure outside saturation table")
	}

	switch in.Kind {
	case fluid.InputTemperature:
		if in.Value >= s.t {
			return b.superheated(in.Pressure, in.Value, s), nil
		}
		if in.Value <= -zeroC {
			return fluid.State{}, b.fail(in, "temperature below fluid minimum")
		}
		return b.liquid(in.Pressure, in.Value), nil

	case fluid.InputEnthalpy:
		h := in.Value
		switch {
		case h < s.hf:
			// Invert h = cw·T + v·(p − psat(T)); one refinement pass on
			// the psat term is ample.
			t := h / cw
			t = (h - vf0*(in.Pressure-psatAt(t))) / cw
			if t <= -zeroC {
				return fluid.State{}, b.fail(in, "enthalpy below fluid minimum")
			}
			return b.liquid(in.Pressure, t), nil
		case h <= s.hg:
			return b.twoPhase(in.Pressure, (h-s.hf)/(s.hg-s.hf), s), nil
		default:
			return b.superheated(in.Pressure, s.t+(h-s.hg)/cpv, s), nil
		}

	case fluid.InputEntropy:
		sv := in.Value
		switch {
		case sv < s.sf:
			tK := zeroC * math.Exp(sv/cw)
			return b.liquid(in.Pressure, tK-zeroC), nil
		case sv <= s.sg:
			return b.twoPhase(in.Pressure, (sv-s.sf)/(s.sg-s.sf), s), nil
		default:
			tK := (s.t + zeroC) * math.Exp((sv-s.sg)/cpv)
			return b.superheated(in.Pressure, tK-zeroC, s), nil
		}

	case fluid.InputQuality:
		if in.Value < 0 || in.Value > 1 {
			return fluid.State{}, b.fail(in, "quality outside [0, 1]")
		}
		return b.twoPhase(in.Pressure, in.Value, s), nil
	}
	return fluid.State{}, b.fail(in, "unsupported input kind")
}

// CompressionToPressure compresses to a target pressure, de-rated by
// efficiency. Liquid inlets take the incompressible pump path
// (isentropic work = v·Δp); vapor inlets resolve through the entropy
// inversion like the gas backends.
func (b *Backend) CompressionToPressure(from fluid.State, pressure, efficiency float64) (fluid.State, error) {
	if efficiency <= 0 || efficiency > 1 {
		return fluid.State{}, b.fail(fluid.PS(pressure, from.Entropy), "efficiency out of (0, 1]")
	}
	if s, ok := satAt(from.Pressure); ok && from.Enthalpy <= s.hf+1 {
		rise := vf0 * (pressure - from.Pressure) / efficiency
		t := from.Temperature + (rise-vf0*(pressure-from.Pressure))/cw
		out := b.liquid(pressure, t)
		out.Enthalpy = from.Enthalpy + rise
		return out, nil
	}
	ideal, err := b.State(fluid.PS(pressure, from.Entropy))
	if err != nil {
		return fluid.State{}, err
	}
	rise := (ideal.Enthalpy - from.Enthalpy) / efficiency
	return b.State(fluid.PH(pressure, from.Enthalpy+rise))
}

// ExpansionToPressure expands to a target pressure, de-rated by
// efficiency. Expansions commonly end inside the dome; the entropy
// inversion resolves the quality there.
func (b *Backend) ExpansionToPressure(from fluid.State, pressure, efficiency float64) (fluid.State, error) {
	if efficiency <= 0 || efficiency > 1 {
		return fluid.State{}, b.fail(fluid.PS(pressure, from.Entropy), "efficiency out of (0, 1]")
	}
	ideal, err := b.State(fluid.PS(pressure, from.Entropy))
	if err != nil {
		return fluid.State{}, err
	}
	drop := (ideal.Enthalpy - from.Enthalpy) * efficiency
	return b.State(fluid.PH(pressure, from.Enthalpy+drop))
}

// CoolingToEnthalpy resolves the state reached by cooling to a target
// enthalpy while losing pressureDrop.
func (b *Backend) CoolingToEnthalpy(from fluid.State, enthalpy, pressureDrop float64) (fluid.State, error) {
	return b.State(fluid.PH(from.Pressure-pressureDrop, enthalpy))
}

// SaturationAtPressure returns the two-phase point at the given
// pressure and quality.
func (b *Backend) SaturationAtPressure(pressure, quality float64) (fluid.State, error) {
	return b.State(fluid.PQ(pressure, quality))
}
