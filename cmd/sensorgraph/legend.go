package main

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// legendSpec is the legend look; one value shared by every chart.
type legendSpec struct {
	Background drawing.Color
	Border     drawing.Color
	Text       drawing.Color
	FontSize   float64
	Padding    int
	Swatch     int
}

var defaultLegend = legendSpec{
	Background: drawing.Color{R: 0xff, G: 0xff, B: 0xff, A: 0xe0},
	Border:     drawing.Color{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
	Text:       drawing.Color{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
	FontSize:   9,
	Padding:    6,
	Swatch:     18,
}

type legendEntry struct {
	Label string
	Color drawing.Color
}

func legendEntries(layouts []axisLayout) []legendEntry {
	out := make([]legendEntry, len(layouts))
	for i, l := range layouts {
		out[i] = legendEntry{Label: l.Name, Color: l.Color}
	}
	return out
}

// legendElement draws one combined legend in the top-left corner of the plot. It
// lists the entries even when a series has no points, so an empty chart still says
// what it would show.
func legendElement(entries []legendEntry, ls legendSpec) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		if len(entries) == 0 {
			return
		}
		st := chart.Style{Font: defaults.Font, FontSize: ls.FontSize, FontColor: ls.Text}
		lineH, textW := 0, 0
		for _, e := range entries {
			tb := chart.Draw.MeasureText(r, e.Label, st)
			if tb.Width() > textW {
				textW = tb.Width()
			}
			if tb.Height() > lineH {
				lineH = tb.Height()
			}
		}
		rowH := lineH + ls.Padding/2
		box := chart.Box{
			Left: canvasBox.Left + ls.Padding,
			Top:  canvasBox.Top + ls.Padding,
		}
		box.Right = box.Left + ls.Padding*3 + ls.Swatch + textW
		box.Bottom = box.Top + ls.Padding*2 + rowH*len(entries) - ls.Padding/2

		chart.Draw.Box(r, box, chart.Style{FillColor: ls.Background, StrokeColor: ls.Border, StrokeWidth: 1})

		for i, e := range entries {
			baseline := box.Top + ls.Padding + rowH*i + lineH
			mid := baseline - lineH/2
			x := box.Left + ls.Padding
			r.SetStrokeColor(e.Color)
			r.SetStrokeWidth(2)
			r.MoveTo(x, mid)
			r.LineTo(x+ls.Swatch, mid)
			r.Stroke()
			r.ResetStyle()
			chart.Draw.Text(r, e.Label, x+ls.Swatch+ls.Padding, baseline, st)
		}
	}
}
