package cycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thermosys-core/fluid"
)

// stubDevice shifts enthalpy by a fixed amount, or fails. It lets the
// engine be tested without any property backend.
type stubDevice struct {
	name  string
	kind  DeviceType
	shift float64
	err   error
}

func (d *stubDevice) Name() string     { return d.name }
func (d *stubDevice) Type() DeviceType { return d.kind }

func (d *stubDevice) Outlet(_ fluid.Backend, inlet fluid.State) (fluid.State, error) {
	if d.err != nil {
		return fluid.State{}, d.err
	}
	inlet.Enthalpy += d.shift
	return inlet, nil
}

func testInitial() fluid.State {
	return fluid.State{Fluid: "stub", Pressure: 1e5, Temperature: 30, Enthalpy: 1e5}
}

func TestSolveTrajectory(t *testing.T) {
	c := New(nil, testInitial())
	c.AddDevices(
		&stubDevice{name: "a", kind: DeviceCompressor, shift: 100},
		&stubDevice{name: "b", kind: DeviceHeatSource, shift: 400},
		&stubDevice{name: "c", kind: DeviceTurbine, shift: -300},
	)
	require.NoError(t, c.Solve())

	states := c.States()
	procs := c.Processes()
	require.Len(t, states, 4)
	require.Len(t, procs, 3)
	assert.Equal(t, testInitial(), states[0])
	for i, p := range procs {
		assert.Equal(t, p.Outlet, states[i+1], "states[%d] must be device %d outlet", i+1, i)
		assert.Equal(t, p.Inlet, states[i], "device %d inlet must be states[%d]", i, i)
	}
}

func TestSolveIdempotent(t *testing.T) {
	c := New(nil, testInitial())
	c.AddDevices(
		&stubDevice{name: "a", kind: DeviceCompressor, shift: 100},
		&stubDevice{name: "b", kind: DeviceHeatSource, shift: 400},
	)
	require.NoError(t, c.Solve())
	first := c.States()
	firstEff, firstErr := c.Efficiency()

	require.NoError(t, c.Solve())
	assert.Equal(t, first, c.States())
	eff, err := c.Efficiency()
	assert.Equal(t, firstErr, err)
	assert.Equal(t, firstEff, eff)
}

// Energy balance is a magnitude: the same for enthalpy rising or
// falling across the device.
func TestEnergyBalanceNonNegative(t *testing.T) {
	c := New(nil, testInitial())
	c.AddDevices(
		&stubDevice{name: "up", kind: DeviceCompressor, shift: 250},
		&stubDevice{name: "down", kind: DeviceTurbine, shift: -250},
	)
	require.NoError(t, c.Solve())
	for _, p := range c.Processes() {
		assert.Equal(t, 250.0, p.EnergyBalance())
	}
}

func TestAggregation(t *testing.T) {
	c := New(nil, testInitial())
	c.AddDevices(
		&stubDevice{name: "comp", kind: DeviceCompressor, shift: 100},
		&stubDevice{name: "cc", kind: DeviceHeatSource, shift: 400},
		&stubDevice{name: "turb", kind: DeviceTurbine, shift: -300},
	)
	require.NoError(t, c.Solve())

	tw, err := c.TurbineWork()
	require.NoError(t, err)
	cw, err := c.CompressorWork()
	require.NoError(t, err)
	qin, err := c.HeatIn()
	require.NoError(t, err)
	eff, err := c.Efficiency()
	require.NoError(t, err)

	assert.Equal(t, 300.0, tw)
	assert.Equal(t, 100.0, cw)
	assert.Equal(t, 400.0, qin)
	assert.InDelta(t, 0.5, eff, 1e-12)
}

func TestEfficiencyBeforeSolve(t *testing.T) {
	c := New(nil, testInitial())

	_, err := c.Efficiency()
	assert.ErrorIs(t, err, ErrNotSolved)

	// Zero devices: solving succeeds trivially but aggregates must
	// still refuse rather than return 0/0.
	require.NoError(t, c.Solve())
	_, err = c.Efficiency()
	assert.ErrorIs(t, err, ErrNotSolved)
}

func TestNoHeatInput(t *testing.T) {
	c := New(nil, testInitial())
	c.AddDevice(&stubDevice{name: "comp", kind: DeviceCompressor, shift: 100})
	require.NoError(t, c.Solve())

	_, err := c.Efficiency()
	var cfg *ConfigError
	assert.ErrorAs(t, err, &cfg)
}

func TestAddDeviceInvalidatesSolve(t *testing.T) {
	c := New(nil, testInitial())
	c.AddDevice(&stubDevice{name: "cc", kind: DeviceHeatSource, shift: 400})
	require.NoError(t, c.Solve())
	assert.True(t, c.Solved())

	c.AddDevice(&stubDevice{name: "turb", kind: DeviceTurbine, shift: -300})
	assert.False(t, c.Solved())
	assert.Nil(t, c.States())
	_, err := c.Efficiency()
	assert.ErrorIs(t, err, ErrNotSolved)
}

// A failing device aborts the solve; the error carries the device name
// and 1-based position, and the cycle is left unsolved rather than
// partially solved.
func TestFailedDeviceAbortsSolve(t *testing.T) {
	boom := errors.New("backend exploded")
	c := New(nil, testInitial())
	c.AddDevices(
		&stubDevice{name: "ok", kind: DeviceCompressor, shift: 100},
		&stubDevice{name: "bad", kind: DeviceHeatSource, err: boom},
		&stubDevice{name: "never", kind: DeviceTurbine, shift: -300},
	)

	err := c.Solve()
	require.Error(t, err)

	var de *DeviceError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "bad", de.Device)
	assert.Equal(t, 2, de.Position)
	assert.ErrorIs(t, err, boom)

	assert.False(t, c.Solved())
	assert.Nil(t, c.States())
	assert.Nil(t, c.Processes())
	_, aggErr := c.Efficiency()
	assert.ErrorIs(t, aggErr, ErrNotSolved)
}
