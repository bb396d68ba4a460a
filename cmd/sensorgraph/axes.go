package main

import (
	"fmt"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rowan-sl/hayselnut/cmd/sensorgraph/uihelpers"
	"github.com/rowan-sl/hayselnut/src/readings"
	"github.com/rowan-sl/hayselnut/src/units"
)

type axisSide int

const (
	sideLeft axisSide = iota
	sideRight
)

// axisSpacing is the horizontal distance between stacked right-hand axes.
const axisSpacing = 60

// metricAxis describes one y axis: which metric it shows, how a reading maps to a
// plotted value, and where the axis sits. Offset is measured outward from the plot
// edge on its side.
type metricAxis struct {
	Name   string
	Value  func(readings.Reading) float64
	Side   axisSide
	Offset int
}

// defaultAxes is the station layout: battery on the primary (left) axis, then
// temperature, humidity and pressure cascading to the right.
func defaultAxes(temperatureUnit string) ([]metricAxis, error) {
	if !units.ValidTemperatureUnit(temperatureUnit) {
		return nil, fmt.Errorf("unknown temperature unit %q (allowed: C, F, K)", temperatureUnit)
	}
	temperature := func(r readings.Reading) float64 {
		v, _ := r.Temperature().Get(temperatureUnit)
		return v
	}
	return []metricAxis{
		{Name: "Battery", Value: readings.Reading.Battery, Side: sideLeft},
		{Name: "Temperature", Value: temperature, Side: sideRight, Offset: 0},
		{Name: "Humidity", Value: readings.Reading.Humidity, Side: sideRight, Offset: axisSpacing},
		{Name: "Pressure", Value: readings.Reading.Pressure, Side: sideRight, Offset: 2 * axisSpacing},
	}, nil
}

// gutter returns the padding the axes need left and right of the plot.
func gutter(axes []metricAxis) (left, right int) {
	const axisWidth = 58
	left, right = 10, 10
	for _, a := range axes {
		need := a.Offset + axisWidth
		if a.Side == sideLeft && need > left {
			left = need
		}
		if a.Side == sideRight && need > right {
			right = need
		}
	}
	return left, right
}

// axisLayout is a metricAxis resolved against data: its scale, ticks and color.
type axisLayout struct {
	metricAxis
	Range chart.ContinuousRange
	Ticks []chart.Tick
	Color drawing.Color
}

const (
	axisTickCount = 6
	axisPadPct    = 0.05
)

// buildRangeAndTicks picks nice ticks covering [min,max] and pads the range by padPct
// of the tick span on both ends so lines do not sit on the frame.
func buildRangeAndTicks(min, max float64, n int, padPct float64) (*chart.ContinuousRange, []chart.Tick) {
	if math.IsInf(min, 0) || math.IsInf(max, 0) || math.IsNaN(min) || math.IsNaN(max) {
		min, max = 0, 1
	}
	vals := uihelpers.BuildNumericTicks(min, max, n)
	ticks := make([]chart.Tick, len(vals))
	for i, v := range vals {
		ticks[i] = chart.Tick{Value: v, Label: uihelpers.FormatNumericTick(v)}
	}
	first, last := vals[0], vals[len(vals)-1]
	pad := (last - first) * padPct
	return &chart.ContinuousRange{Min: first - pad, Max: last + pad}, ticks
}

// minMax ignores NaN and ±Inf; with no finite values it returns (+Inf, -Inf).
func minMax(vs []float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vs {
		if !isFinite(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// finitePoints drops samples whose value cannot be plotted. xs is returned as is when
// every value is finite.
func finitePoints(xs []time.Time, ys []float64) ([]time.Time, []float64) {
	n := 0
	for _, v := range ys {
		if isFinite(v) {
			n++
		}
	}
	if n == len(ys) {
		return xs, ys
	}
	outX, outY := make([]time.Time, 0, n), make([]float64, 0, n)
	for i, v := range ys {
		if isFinite(v) {
			outX = append(outX, xs[i])
			outY = append(outY, v)
		}
	}
	return outX, outY
}

const (
	axisFontSize  = 10
	axisTickLen   = 5
	axisTextGap   = 3
	axisNameGap   = 6
	axisLineWidth = 1
)

var axisLineColor = drawing.Color{R: 0x33, G: 0x33, B: 0x33, A: 0xff}

// axisX returns the pixel column of an axis for the given plot box.
func axisX(a metricAxis, canvasBox chart.Box) int {
	if a.Side == sideLeft {
		return canvasBox.Left - a.Offset
	}
	return canvasBox.Right + a.Offset
}

// axesElement draws every y axis: spine, ticks, tick labels and the rotated name.
// Tick labels and the name use the axis color, which is the color of its line.
func axesElement(layouts []axisLayout) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		for _, l := range layouts {
			drawAxis(r, canvasBox, defaults, l)
		}
	}
}

func drawAxis(r chart.Renderer, canvasBox chart.Box, defaults chart.Style, l axisLayout) {
	x := axisX(l.metricAxis, canvasBox)
	dir := 1
	if l.Side == sideLeft {
		dir = -1
	}

	r.SetStrokeColor(axisLineColor)
	r.SetStrokeWidth(axisLineWidth)
	r.MoveTo(x, canvasBox.Top)
	r.LineTo(x, canvasBox.Bottom)
	r.Stroke()

	rng := &chart.ContinuousRange{Min: l.Range.Min, Max: l.Range.Max, Domain: canvasBox.Height()}
	textStyle := chart.Style{Font: defaults.Font, FontSize: axisFontSize, FontColor: l.Color}
	maxW := 0
	for _, tk := range l.Ticks {
		if tk.Value < rng.Min || tk.Value > rng.Max {
			continue
		}
		y := canvasBox.Bottom - rng.Translate(tk.Value)
		r.SetStrokeColor(axisLineColor)
		r.SetStrokeWidth(axisLineWidth)
		r.MoveTo(x, y)
		r.LineTo(x+dir*axisTickLen, y)
		r.Stroke()

		tb := chart.Draw.MeasureText(r, tk.Label, textStyle)
		if tb.Width() > maxW {
			maxW = tb.Width()
		}
		tx := x + dir*(axisTickLen+axisTextGap)
		if dir < 0 {
			tx -= tb.Width()
		}
		chart.Draw.Text(r, tk.Label, tx, y+tb.Height()/2, textStyle)
	}

	// Rotated 90 degrees the name reads top to bottom with glyph tops facing right,
	// so it starts at nx and extends right by the text height.
	nb := chart.Draw.MeasureText(r, l.Name, textStyle)
	nameStyle := textStyle
	nameStyle.TextRotationDegrees = 90
	reach := axisTickLen + axisTextGap + maxW + axisNameGap
	nx := x + reach
	if dir < 0 {
		nx = x - reach - nb.Height()
	}
	ny := canvasBox.Top + (canvasBox.Height()-nb.Width())/2
	chart.Draw.Text(r, l.Name, nx, ny, nameStyle)
	r.ResetStyle()
}

// offsetElement prints the concise formatter's context (e.g. the date for hourly
// ticks) under the right end of the x axis.
func offsetElement(text string, chartHeight int) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		if text == "" {
			return
		}
		st := chart.Style{Font: defaults.Font, FontSize: axisFontSize, FontColor: axisLineColor}
		tb := chart.Draw.MeasureText(r, text, st)
		chart.Draw.Text(r, text, canvasBox.Right-tb.Width(), chartHeight-6, st)
	}
}
