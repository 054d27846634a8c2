// core/units/units.go
// Unit conversions for the I/O boundary. The core itself always works
// in SI (Pa, °C, J/kg); convert on the way in and out only.
package units

// BarToPascal converts pressure from bar to Pa.
func BarToPascal(bar float64) float64 { return bar * 100000 }

// PascalToBar converts pressure from Pa to bar.
func PascalToBar(pa float64) float64 { return pa / 100000 }

// AtmToPascal converts pressure from standard atmospheres to Pa.
func AtmToPascal(atm float64) float64 { return atm * 101325 }

// CelsiusToKelvin converts temperature from °C to K.
func CelsiusToKelvin(c float64) float64 { return c + 273.15 }

// KelvinToCelsius converts temperature from K to °C.
func KelvinToCelsius(k float64) float64 { return k - 273.15 }

// CelsiusToFahrenheit converts temperature from °C to °F.
func CelsiusToFahrenheit(c float64) float64 { return c*9/5 + 32 }

// FahrenheitToCelsius converts temperature from °F to °C.
func FahrenheitToCelsius(f float64) float64 { return (f - 32) * 5 / 9 }

// JouleToBTU converts energy from J to BTU.
func JouleToBTU(j float64) float64 { return j * 0.000947817 }

// KilowattHourToJoule converts energy from kWh to J.
func KilowattHourToJoule(kwh float64) float64 { return kwh * 3600000 }

// LiterToCubicMeter converts volume from L to m³.
func LiterToCubicMeter(l float64) float64 { return l / 1000 }

// GallonToLiter converts volume from US gallons to L.
func GallonToLiter(gal float64) float64 { return gal * 3.78541 }
