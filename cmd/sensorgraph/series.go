package main

import (
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// metricSeries is one metric's line. go-chart only knows two y ranges, so each
// series translates its values against its own axis range instead of the chart's.
type metricSeries struct {
	Name    string
	Style   chart.Style
	XValues []time.Time
	YValues []float64
	Axis    chart.ContinuousRange
}

var (
	_ chart.Series         = metricSeries{}
	_ chart.ValuesProvider = metricSeries{}
)

func (ms metricSeries) GetName() string           { return ms.Name }
func (ms metricSeries) GetStyle() chart.Style     { return ms.Style }
func (ms metricSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (ms metricSeries) Len() int                  { return len(ms.XValues) }

func (ms metricSeries) GetValues(index int) (float64, float64) {
	return chart.TimeToFloat64(ms.XValues[index]), ms.YValues[index]
}

func (ms metricSeries) Validate() error {
	if len(ms.XValues) != len(ms.YValues) {
		return fmt.Errorf("series %q: %d x values but %d y values", ms.Name, len(ms.XValues), len(ms.YValues))
	}
	return nil
}

func (ms metricSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, _ chart.Range, defaults chart.Style) {
	style := ms.Style.InheritFrom(defaults)
	if ms.Len() == 1 {
		// a lone sample has no segment to stroke; mark it with a dot in the line color
		style.DotColor = style.StrokeColor
		style.DotWidth = 4
	}
	yr := &chart.ContinuousRange{Min: ms.Axis.Min, Max: ms.Axis.Max, Domain: canvasBox.Height()}
	chart.Draw.LineSeries(r, canvasBox, xrange, yr, style, ms)
}

var gridColor = drawing.Color{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}

// gridSeries draws the primary axis grid underneath the data lines. It is the
// first series so it renders before them; it carries no values.
type gridSeries struct {
	Primary chart.ContinuousRange
	YTicks  []float64
	XTicks  []float64
}

var _ chart.Series = gridSeries{}

func (gs gridSeries) GetName() string           { return "" }
func (gs gridSeries) GetStyle() chart.Style     { return chart.Style{} }
func (gs gridSeries) GetYAxis() chart.YAxisType { return chart.YAxisPrimary }
func (gs gridSeries) Validate() error           { return nil }

func (gs gridSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, _ chart.Range, _ chart.Style) {
	r.SetStrokeColor(gridColor)
	r.SetStrokeWidth(1)
	yr := &chart.ContinuousRange{Min: gs.Primary.Min, Max: gs.Primary.Max, Domain: canvasBox.Height()}
	for _, v := range gs.YTicks {
		if v < yr.Min || v > yr.Max {
			continue
		}
		y := canvasBox.Bottom - yr.Translate(v)
		r.MoveTo(canvasBox.Left, y)
		r.LineTo(canvasBox.Right, y)
		r.Stroke()
	}
	for _, v := range gs.XTicks {
		if v < xrange.GetMin() || v > xrange.GetMax() {
			continue
		}
		x := canvasBox.Left + xrange.Translate(v)
		r.MoveTo(x, canvasBox.Top)
		r.LineTo(x, canvasBox.Bottom)
		r.Stroke()
	}
	r.ResetStyle()
}
