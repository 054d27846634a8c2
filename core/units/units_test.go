package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPressure(t *testing.T) {
	assert.InDelta(t, 100000.0, BarToPascal(1), 1e-9)
	assert.InDelta(t, 1.0, PascalToBar(BarToPascal(1)), 1e-12)
	assert.InDelta(t, 101325.0, AtmToPascal(1), 1e-9)
}

func TestTemperature(t *testing.T) {
	assert.InDelta(t, 273.15, CelsiusToKelvin(0), 1e-12)
	assert.InDelta(t, 30.0, KelvinToCelsius(CelsiusToKelvin(30)), 1e-12)
	assert.InDelta(t, 212.0, CelsiusToFahrenheit(100), 1e-12)
	assert.InDelta(t, 100.0, FahrenheitToCelsius(212), 1e-12)
}

func TestEnergyAndVolume(t *testing.T) {
	assert.InDelta(t, 0.947817, JouleToBTU(1000), 1e-9)
	assert.InDelta(t, 3.6e6, KilowattHourToJoule(1), 1e-9)
	assert.InDelta(t, 0.001, LiterToCubicMeter(1), 1e-15)
	assert.InDelta(t, 3.78541, GallonToLiter(1), 1e-9)
}
