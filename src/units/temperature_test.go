// Copyright © 2016 Geoff Holden <geoff@geoffholden.com>

package units

import (
	"errors"
	"math"
	"testing"
	"testing/quick"
)

func floatEquals(a, b float64) bool {
	diff := math.Abs(a - b)
	a = math.Abs(a)
	b = math.Abs(b)
	m := math.Max(a, b)
	return diff <= m*1e-5
}

func TestTemperatureCelsius(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewTemperatureCelsius(x)
		return floatEquals(x, y.Celsius())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestTemperatureFahrenheit(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewTemperatureFahrenheit(x)
		return floatEquals(x, y.Fahrenheit())
	}, nil); err != nil {
		t.Error(err)
	}
}

func TestTemperatureKelvin(t *testing.T) {
	if err := quick.Check(func(x float64) bool {
		y := NewTemperatureKelvin(x)
		return floatEquals(x, y.Kelvin())
	}, nil); err != nil {
		t.Error(err)
	}
}

// Freezing and boiling points must convert exactly, not just approximately.
func TestFahrenheitExactAnchors(t *testing.T) {
	if got := NewTemperatureCelsius(0).Fahrenheit(); got != 32.0 {
		t.Fatalf("0C => %v, want 32", got)
	}
	if got := NewTemperatureCelsius(100).Fahrenheit(); got != 212.0 {
		t.Fatalf("100C => %v, want 212", got)
	}
}

func TestTemperatureGet(t *testing.T) {
	temp := NewTemperatureCelsius(0)

	value, err := temp.Get("C")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 0) {
		t.Fatal("Value should be 0")
	}

	value, err = temp.Get("fahrenheit")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 32) {
		t.Fatal("Value should be 32")
	}

	value, err = temp.Get(" K ")
	if err != nil {
		t.Fatal(err)
	}
	if !floatEquals(value, 273.15) {
		t.Fatal("Value should be 273.15")
	}

	if _, err = temp.Get("M"); !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("invalid unit should give ErrUnknownUnit, got %v", err)
	}
	if ValidTemperatureUnit("M") || !ValidTemperatureUnit("f") {
		t.Fatal("ValidTemperatureUnit disagrees with Get")
	}
}
