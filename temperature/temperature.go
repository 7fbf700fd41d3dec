// Package temperature provides exact Celsius/Fahrenheit conversions and a
// Temperature value that remembers which unit it was measured in. A plain
// float64 cannot say whether it means 21.5 degrees Celsius or Fahrenheit;
// a Temperature always can.
package temperature

import "fmt"

// ToCelsius converts degrees Fahrenheit to degrees Celsius.
func ToCelsius(fahrenheit float64) float64 {
	return (fahrenheit - 32) * 5 / 9
}

// ToFahrenheit converts degrees Celsius to degrees Fahrenheit.
func ToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

// Unit discriminates the two supported temperature scales.
type Unit int

const (
	Celsius Unit = iota
	Fahrenheit
)

// String returns the unit suffix: "C" or "F".
func (u Unit) String() string {
	switch u {
	case Celsius:
		return "C"
	case Fahrenheit:
		return "F"
	default:
		panic(fmt.Sprintf("unknown temperature unit %d", int(u)))
	}
}

// Temperature is a magnitude tagged with the unit it is measured in.
// The zero value is 0 degrees Celsius. Conversion never mutates; it returns
// a new Temperature.
type Temperature struct {
	degrees float64
	unit    Unit
}

// InCelsius creates a Temperature measured in degrees Celsius.
func InCelsius(degrees float64) Temperature {
	return Temperature{degrees: degrees, unit: Celsius}
}

// InFahrenheit creates a Temperature measured in degrees Fahrenheit.
func InFahrenheit(degrees float64) Temperature {
	return Temperature{degrees: degrees, unit: Fahrenheit}
}

// Degrees returns the magnitude in the Temperature's own unit.
func (t Temperature) Degrees() float64 {
	return t.degrees
}

// Unit returns the unit the Temperature is measured in.
func (t Temperature) Unit() Unit {
	return t.unit
}

// AsCelsius returns the Temperature expressed in Celsius.
// A Temperature already in Celsius is returned unchanged.
func (t Temperature) AsCelsius() Temperature {
	switch t.unit {
	case Celsius:
		return t
	case Fahrenheit:
		return InCelsius(ToCelsius(t.degrees))
	default:
		panic(fmt.Sprintf("unknown temperature unit %d", int(t.unit)))
	}
}

// AsFahrenheit returns the Temperature expressed in Fahrenheit.
// A Temperature already in Fahrenheit is returned unchanged.
func (t Temperature) AsFahrenheit() Temperature {
	switch t.unit {
	case Celsius:
		return InFahrenheit(ToFahrenheit(t.degrees))
	case Fahrenheit:
		return t
	default:
		panic(fmt.Sprintf("unknown temperature unit %d", int(t.unit)))
	}
}

// String returns the magnitude followed by the unit suffix, e.g. "21.5C" or "72F".
func (t Temperature) String() string {
	return fmt.Sprintf("%v%s", t.degrees, t.unit)
}
