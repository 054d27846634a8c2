package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thermosys-core/backend/idealgas"
	"thermosys-core/backend/steam"
	"thermosys-core/fluid"
)

// Spec scenario: a 0.8-efficiency compressor at ratio 25 fed air at
// 1 bar / 30 °C must produce 25 bar with a larger enthalpy rise than
// the ideal compressor on the same inputs.
func TestCompressorAgainstIdeal(t *testing.T) {
	b := idealgas.New()
	inlet, err := b.State(fluid.PT(1e5, 30))
	require.NoError(t, err)

	real, err := NewCompressor("C1g", 0.8, 25).Outlet(b, inlet)
	require.NoError(t, err)
	ideal, err := NewCompressor("C1s", 1.0, 25).Outlet(b, inlet)
	require.NoError(t, err)

	assert.InDelta(t, 25e5, real.Pressure, 1e-6)
	assert.Greater(t, real.Enthalpy-inlet.Enthalpy, ideal.Enthalpy-inlet.Enthalpy)
}

// In energy-balance mode the outlet enthalpy is exactly
// inlet − balance/efficiency.
func TestTurbineToEnergyBalanceEnthalpy(t *testing.T) {
	b := idealgas.New()
	inlet, err := b.State(fluid.PT(25e5, 1000))
	require.NoError(t, err)

	const balance = 300e3
	const eta = 0.8
	turb := NewTurbineToEnergyBalance("TCg", eta, 10e5, balance)
	out, err := turb.Outlet(b, inlet)
	require.NoError(t, err)

	assert.InDelta(t, inlet.Enthalpy-balance/eta, out.Enthalpy, 1e-6)
	assert.InDelta(t, 10e5, out.Pressure, 1e-6)
	assert.Equal(t, DeviceTurbine, turb.Type())
}

func TestHeatSourceIsobaric(t *testing.T) {
	b := idealgas.New()
	inlet, err := b.State(fluid.PT(25e5, 400))
	require.NoError(t, err)

	out, err := NewHeatSource("CC1g", 1000).Outlet(b, inlet)
	require.NoError(t, err)
	assert.InDelta(t, inlet.Pressure, out.Pressure, 1e-9)
	assert.InDelta(t, 1000.0, out.Temperature, 1e-9)
	assert.Greater(t, out.Enthalpy, inlet.Enthalpy)
}

func TestDeaeratorPassesInletThrough(t *testing.T) {
	d := NewDeaerator("D", 120)
	inlet := fluid.State{Fluid: "water", Pressure: 5e5, Enthalpy: 5e5}
	out, err := d.Outlet(nil, inlet)
	require.NoError(t, err)
	assert.Equal(t, inlet, out)
	assert.Equal(t, 120.0, d.Temperature())
}

func TestCondenserAndPump(t *testing.T) {
	b := steam.New()
	exhaust, err := b.State(fluid.PQ(0.1e5, 0.9))
	require.NoError(t, err)

	cond, err := NewCondenser("COND", 0).Outlet(b, exhaust)
	require.NoError(t, err)
	liq, err := b.SaturationAtPressure(0.1e5, 0)
	require.NoError(t, err)
	assert.InDelta(t, liq.Enthalpy, cond.Enthalpy, 1e-6)

	pump := NewPump("P1v", 0.9999, 5e5)
	fed, err := pump.Outlet(b, cond)
	require.NoError(t, err)
	assert.InDelta(t, 5e5, fed.Pressure, 1e-6)
	assert.Greater(t, fed.Enthalpy, cond.Enthalpy)
}

// Back-solving the pump inlet from a known downstream state recovers a
// state at the lower pressure with the downstream entropy.
func TestPumpInletStateBackSolve(t *testing.T) {
	b := steam.New()
	downstream, err := b.State(fluid.PT(10e5, 120))
	require.NoError(t, err)

	pump := NewPump("P2v", 0.9999, 10e5)
	up, err := pump.InletState(b, downstream, 5e5)
	require.NoError(t, err)
	assert.InDelta(t, 5e5, up.Pressure, 1e-6)
	assert.InDelta(t, downstream.Entropy, up.Entropy, 1.0)
	assert.Less(t, up.Enthalpy, downstream.Enthalpy+1)
}

// Full Brayton chain from the reference configuration: compressor,
// heat source, shaft-balancing turbine, reheat, power turbine.
func TestBraytonChain(t *testing.T) {
	b := idealgas.New()
	initial, err := b.State(fluid.PT(1e5, 30))
	require.NoError(t, err)

	comp := NewCompressor("C1g", 0.8, 25)
	afterComp, err := comp.Outlet(b, initial)
	require.NoError(t, err)
	shaftBalance := afterComp.Enthalpy - initial.Enthalpy

	c := New(b, initial)
	c.AddDevices(
		comp,
		NewHeatSource("CC1g", 1000),
		NewTurbineToEnergyBalance("TCg", 0.8, 10e5, shaftBalance),
		NewHeatSource("CC2g", 710),
		NewTurbineToPressure("TPg", 0.85, 1e5),
	)
	require.NoError(t, c.Solve())
	require.Len(t, c.States(), 6)

	tw, err := c.TurbineWork()
	require.NoError(t, err)
	cw, err := c.CompressorWork()
	require.NoError(t, err)
	assert.Greater(t, tw-cw, 0.0, "net work must be positive")

	eff, err := c.Efficiency()
	require.NoError(t, err)
	assert.Greater(t, eff, 0.0)
	assert.Less(t, eff, 1.0)

	bwr := cw / tw
	assert.Greater(t, bwr, 0.0)
	assert.Less(t, bwr, 1.0)
}

// Configuration problems surface at solve time with device name and
// position, not at construction.
func TestInvalidConfigurationAtSolveTime(t *testing.T) {
	b := idealgas.New()
	initial, err := b.State(fluid.PT(1e5, 30))
	require.NoError(t, err)

	cases := []struct {
		name   string
		device Device
	}{
		{"zero efficiency", NewCompressor("bad", 0, 25)},
		{"efficiency above 1", NewTurbineToPressure("bad", 1.5, 1e5)},
		{"missing outlet pressure", NewTurbineToPressure("bad", 0.9, 0)},
		{"missing energy balance", NewTurbineToEnergyBalance("bad", 0.9, 1e5, 0)},
		{"bad ratio", NewCompressor("bad", 0.8, -1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(b, initial)
			c.AddDevice(tc.device)
			err := c.Solve()
			require.Error(t, err)

			var de *DeviceError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, "bad", de.Device)
			assert.Equal(t, 1, de.Position)
			var cfg *ConfigError
			assert.ErrorAs(t, err, &cfg)
			assert.False(t, c.Solved())
		})
	}
}

// A backend failure propagates through the solve instead of being
// swallowed: heating air beyond the cp fit range must fail.
func TestBackendFailurePropagates(t *testing.T) {
	b := idealgas.New()
	initial, err := b.State(fluid.PT(1e5, 30))
	require.NoError(t, err)

	c := New(b, initial)
	c.AddDevice(NewHeatSource("CC", 2500))
	err = c.Solve()
	require.Error(t, err)
	assert.ErrorIs(t, err, fluid.ErrUnresolvable)
}
