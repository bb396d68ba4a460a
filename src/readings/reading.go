// Package readings loads timestamped sensor samples from the station's CSV log.
package readings

import (
	"time"

	"github.com/rowan-sl/hayselnut/src/units"
)

// Columns lists the CSV layout; the file carries no header row.
var Columns = [...]string{"time", "temperature", "humidity", "pressure", "battery"}

// Reading is one sensor sample. It is a value type with unexported fields, so a
// Reading cannot change after NewReading or the loader built it.
type Reading struct {
	at          time.Time
	temperature units.Temperature
	humidity    float64
	pressure    float64
	battery     float64
}

// NewReading builds a Reading from a temperature in Celsius and pass-through values.
func NewReading(at time.Time, celsius, humidity, pressure, battery float64) Reading {
	return Reading{
		at:          at,
		temperature: units.NewTemperatureCelsius(celsius),
		humidity:    humidity,
		pressure:    pressure,
		battery:     battery,
	}
}

func (r Reading) Time() time.Time                { return r.at }
func (r Reading) Temperature() units.Temperature { return r.temperature }

// Humidity is relative humidity in percent.
func (r Reading) Humidity() float64 { return r.humidity }

// Pressure and Battery are kept in whatever unit the station recorded.
func (r Reading) Pressure() float64 { return r.pressure }
func (r Reading) Battery() float64  { return r.battery }
