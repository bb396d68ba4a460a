package main

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	png "image/png"
	"strings"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/rowan-sl/hayselnut/cmd/sensorgraph/uihelpers"
	"github.com/rowan-sl/hayselnut/src/logging"
	"github.com/rowan-sl/hayselnut/src/readings"
)

// chartOptions are the presentation knobs of a chart; the data comes separately.
type chartOptions struct {
	Width           int
	Height          int
	Title           string
	TickZone        *time.Location
	TemperatureUnit string
}

const seriesLineWidth = 2

// noReadingsHint is drawn over the chart when the input had no rows.
const noReadingsHint = "No readings in file"

// buildChart assembles the multi-axis chart for rs. The returned layouts describe each
// y axis as drawn, in series order (series i+1 is layouts[i]; series 0 is the grid).
func buildChart(rs []readings.Reading, opts chartOptions) (chart.Chart, []axisLayout, error) {
	axes, err := defaultAxes(opts.TemperatureUnit)
	if err != nil {
		return chart.Chart{}, nil, err
	}
	zone := opts.TickZone
	if zone == nil {
		zone = time.UTC
	}

	times := make([]time.Time, len(rs))
	for i, r := range rs {
		times[i] = r.Time()
	}
	padLeft, padRight := gutter(axes)
	ta := buildTimeAxis(times, zone, uihelpers.MaxTimeTicks(opts.Width-padLeft-padRight))

	layouts := make([]axisLayout, len(axes))
	series := make([]chart.Series, 0, len(axes)+1)
	series = append(series, nil) // grid, filled in once the primary range is known
	for i, a := range axes {
		ys := make([]float64, len(rs))
		for j, r := range rs {
			ys[j] = a.Value(r)
		}
		lo, hi := minMax(ys)
		rng, ticks := buildRangeAndTicks(lo, hi, axisTickCount, axisPadPct)
		layouts[i] = axisLayout{metricAxis: a, Range: *rng, Ticks: ticks}
		xs, ys := finitePoints(times, ys)
		series = append(series, metricSeries{
			Name:    a.Name,
			Style:   chart.Style{StrokeWidth: seriesLineWidth},
			XValues: xs,
			YValues: ys,
			Axis:    *rng,
		})
	}

	primary := layouts[0]
	yTicks := make([]float64, len(primary.Ticks))
	for i, tk := range primary.Ticks {
		yTicks[i] = tk.Value
	}
	xTicks := make([]float64, len(ta.Ticks))
	for i, t := range ta.Ticks {
		xTicks[i] = chart.TimeToFloat64(t)
	}
	series[0] = gridSeries{Primary: primary.Range, YTicks: yTicks, XTicks: xTicks}

	top := 20
	if opts.Title != "" {
		top = 40
	}
	ch := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{Padding: chart.Box{
			Top: top, Left: padLeft, Right: padRight, Bottom: 24,
		}},
		XAxis: ta.Axis,
		// the stock y axis only supplies a non-degenerate range; every metric axis is drawn by axesElement
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: series,
	}
	for i := range layouts {
		layouts[i].Color = seriesColor(ch, i+1)
	}
	ch.Elements = []chart.Renderable{
		axesElement(layouts),
		legendElement(legendEntries(layouts), defaultLegend),
		offsetElement(ta.Offset, opts.Height),
	}
	return ch, layouts, nil
}

// seriesColor resolves the stroke color series i is drawn with: its own style when set,
// else the palette color go-chart assigns to that index.
func seriesColor(ch chart.Chart, i int) drawing.Color {
	if i < len(ch.Series) {
		if c := ch.Series[i].GetStyle().StrokeColor; !c.IsZero() {
			return c
		}
	}
	return ch.GetColorPalette().GetSeriesColor(i)
}

// renderChart rasterizes the current readings at the current size. It never returns nil.
func renderChart(state *uiState) image.Image {
	cw, chh := chartSize(state)
	ch, _, err := buildChart(state.readings, chartOptions{
		Width:           cw,
		Height:          chh,
		Title:           state.cfg.Title,
		TickZone:        state.cfg.TickZone,
		TemperatureUnit: state.cfg.TemperatureUnit,
	})
	if err != nil {
		logging.Errorf("chart setup error: %v; showing blank fallback", err)
		return blank(cw, chh)
	}
	img, err := rasterize(ch)
	if err != nil {
		logging.Errorf("chart render error: %v; showing blank fallback", err)
		return blank(cw, chh)
	}
	if len(state.readings) == 0 {
		return drawHint(img, noReadingsHint)
	}
	return img
}

func rasterize(ch chart.Chart) (image.Image, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// drawHint writes text centered on a translucent band over img.
func drawHint(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: rgba, Src: image.NewUniform(color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}), Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + (b.Dx()-tw)/2
	y := b.Min.Y + b.Dy()/2
	pad := 8
	band := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad)
	draw.Draw(rgba, band, image.NewUniform(color.RGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xe0}), image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}
