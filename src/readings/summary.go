package readings

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Range is the observed minimum and maximum of one metric.
type Range struct {
	Min float64
	Max float64
}

func emptyRange() Range { return Range{Min: math.Inf(1), Max: math.Inf(-1)} }

func (r *Range) add(v float64) {
	if v < r.Min {
		r.Min = v
	}
	if v > r.Max {
		r.Max = v
	}
}

// Summary describes a loaded file. Temperature is in Celsius.
type Summary struct {
	Count       int
	First       time.Time
	Last        time.Time
	Temperature Range
	Humidity    Range
	Pressure    Range
	Battery     Range
}

// Span is the time between the first and last reading.
func (s Summary) Span() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Last.Sub(s.First)
}

// Summarize scans rs once; it does not assume rs is sorted.
func Summarize(rs []Reading) Summary {
	s := Summary{
		Count:       len(rs),
		Temperature: emptyRange(),
		Humidity:    emptyRange(),
		Pressure:    emptyRange(),
		Battery:     emptyRange(),
	}
	for i, r := range rs {
		if i == 0 || r.at.Before(s.First) {
			s.First = r.at
		}
		if i == 0 || r.at.After(s.Last) {
			s.Last = r.at
		}
		s.Temperature.add(r.temperature.Celsius())
		s.Humidity.add(r.humidity)
		s.Pressure.add(r.pressure)
		s.Battery.add(r.battery)
	}
	return s
}

// String renders a one-line status, e.g. for the viewer's header.
func (s Summary) String() string {
	if s.Count == 0 {
		return "0 readings"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d readings, %s .. %s (%s)", s.Count,
		s.First.Format("2006-01-02 15:04"), s.Last.Format("2006-01-02 15:04"), s.Span().Round(time.Second))
	return b.String()
}
