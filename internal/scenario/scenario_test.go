package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thermosys-core/backend/idealgas"
	"thermosys-core/backend/steam"
	"thermosys/internal/scenario"
)

func TestBraytonReferenceCycle(t *testing.T) {
	r, c, err := scenario.Brayton(idealgas.New(), scenario.DefaultGasParams())
	require.NoError(t, err)
	require.True(t, c.Solved())

	assert.Len(t, r.States, 6)
	assert.Len(t, r.Processes, 5)
	assert.Greater(t, r.NetWorkKJ, 0.0)
	assert.Greater(t, r.Efficiency, 0.0)
	assert.Less(t, r.Efficiency, 1.0)
	assert.Greater(t, r.BackWorkRatio, 0.0)
	assert.Less(t, r.BackWorkRatio, 1.0)

	// The balance turbine extracts the compressor work divided by its
	// own efficiency.
	procs := c.Processes()
	compressor := procs[0].EnergyBalance()
	balanceTurbine := procs[2].EnergyBalance()
	assert.InEpsilon(t, compressor/0.8, balanceTurbine, 1e-9)

	// Final expansion returns to inlet pressure.
	states := c.States()
	assert.InEpsilon(t, states[0].Pressure, states[5].Pressure, 1e-9)
}

func TestRankineReferenceCycle(t *testing.T) {
	r, err := scenario.Rankine(steam.New(), 420, scenario.DefaultVaporParams())
	require.NoError(t, err)

	// Five chain outlets plus the initial state plus the back-solved
	// feed pump inlet.
	assert.Len(t, r.States, 7)
	assert.Len(t, r.Processes, 6)
	assert.Greater(t, r.TurbineWorkKJ, r.PumpWorkKJ)
	assert.Greater(t, r.PumpWorkKJ, 0.0)
	assert.Greater(t, r.Efficiency, 0.0)
	assert.Less(t, r.Efficiency, 1.0)
}

func TestRankineRejectsColdExhaust(t *testing.T) {
	_, err := scenario.Rankine(steam.New(), 100, scenario.DefaultVaporParams())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not above deaerator")
}

func TestCogenerationCouplesExhaust(t *testing.T) {
	r, err := scenario.Cogeneration(
		idealgas.New(), steam.New(),
		scenario.DefaultGasParams(), scenario.DefaultVaporParams(),
	)
	require.NoError(t, err)

	assert.Equal(t, "brayton", r.Gas.Cycle)
	assert.Equal(t, "rankine", r.Vapor.Cycle)

	// The recovery boiler outlet sits the approach below the gas
	// exhaust.
	exhaust := r.Gas.States[len(r.Gas.States)-1].TemperatureC
	boilerOutlet := r.Vapor.States[1].TemperatureC
	assert.InDelta(t, exhaust-25, boilerOutlet, 1e-6)
}
