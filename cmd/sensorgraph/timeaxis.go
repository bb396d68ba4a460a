package main

import (
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
)

type timeUnit int

const (
	unitSecond timeUnit = iota
	unitMinute
	unitHour
	unitDay
	unitMonth
	unitYear
)

// timeStep is a calendar-aware tick interval, e.g. {unitHour, 6}.
type timeStep struct {
	unit timeUnit
	n    int
}

// timeSteps are the candidate intervals, finest first.
var timeSteps = []timeStep{
	{unitSecond, 1}, {unitSecond, 2}, {unitSecond, 5}, {unitSecond, 10}, {unitSecond, 15}, {unitSecond, 30},
	{unitMinute, 1}, {unitMinute, 2}, {unitMinute, 5}, {unitMinute, 10}, {unitMinute, 15}, {unitMinute, 30},
	{unitHour, 1}, {unitHour, 2}, {unitHour, 3}, {unitHour, 6}, {unitHour, 12},
	{unitDay, 1}, {unitDay, 2}, {unitDay, 7}, {unitDay, 14},
	{unitMonth, 1}, {unitMonth, 2}, {unitMonth, 3}, {unitMonth, 6},
	{unitYear, 1}, {unitYear, 2}, {unitYear, 5}, {unitYear, 10}, {unitYear, 20}, {unitYear, 50}, {unitYear, 100},
}

// approx is the nominal length of the step, used only to pick a step for a span.
func (s timeStep) approx() time.Duration {
	n := time.Duration(s.n)
	switch s.unit {
	case unitSecond:
		return n * time.Second
	case unitMinute:
		return n * time.Minute
	case unitHour:
		return n * time.Hour
	case unitDay:
		return n * 24 * time.Hour
	case unitMonth:
		return n * 30 * 24 * time.Hour
	default:
		return n * 365 * 24 * time.Hour
	}
}

func (s timeStep) add(t time.Time) time.Time {
	switch s.unit {
	case unitDay:
		return t.AddDate(0, 0, s.n)
	case unitMonth:
		return t.AddDate(0, s.n, 0)
	case unitYear:
		return t.AddDate(s.n, 0, 0)
	default:
		return t.Add(s.approx())
	}
}

// floor rounds t down to a multiple of the step in t's own location, so ticks land
// on wall-clock boundaries of the zone the labels are printed in.
func (s timeStep) floor(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi, sec := t.Clock()
	loc := t.Location()
	switch s.unit {
	case unitSecond:
		return time.Date(y, mo, d, h, mi, sec-sec%s.n, 0, loc)
	case unitMinute:
		return time.Date(y, mo, d, h, mi-mi%s.n, 0, 0, loc)
	case unitHour:
		return time.Date(y, mo, d, h-h%s.n, 0, 0, 0, loc)
	case unitDay:
		return time.Date(y, mo, d-(d-1)%s.n, 0, 0, 0, 0, loc)
	case unitMonth:
		m := int(mo) - 1
		return time.Date(y, time.Month(m-m%s.n+1), 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y-y%s.n, time.January, 1, 0, 0, 0, 0, loc)
	}
}

// pickTimeStep selects the finest step that keeps at most maxTicks ticks over span.
func pickTimeStep(span time.Duration, maxTicks int) timeStep {
	if maxTicks < 2 {
		maxTicks = 2
	}
	for _, st := range timeSteps {
		if span/st.approx() < time.Duration(maxTicks) {
			return st
		}
	}
	return timeSteps[len(timeSteps)-1]
}

// makeTimeTicks returns the step boundaries within [minT, maxT], computed in loc.
func makeTimeTicks(minT, maxT time.Time, step timeStep, loc *time.Location) []time.Time {
	var out []time.Time
	t := step.floor(minT.In(loc))
	for i := 0; i < 64 && !t.After(maxT); i++ {
		if !t.Before(minT) {
			out = append(out, t)
		}
		t = step.add(t)
	}
	return out
}

// Concise labels: each level prints only what changes at that granularity; a tick
// that starts the next coarser unit prints that unit instead, and the coarse context
// goes into a single offset string under the axis.
var (
	conciseFormats = [...]string{"2006", "Jan", "02", "15:04", "15:04", "05"}
	conciseZero    = [...]string{"", "2006", "Jan", "Jan-02", "15:04", "15:04"}
	conciseOffset  = [...]string{"", "2006", "2006-Jan", "2006-Jan-02", "2006-Jan-02", "2006-Jan-02 15:04"}
)

func labelLevel(u timeUnit) int {
	switch u {
	case unitYear:
		return 0
	case unitMonth:
		return 1
	case unitDay:
		return 2
	case unitHour:
		return 3
	case unitMinute:
		return 4
	default:
		return 5
	}
}

func startsCoarserUnit(t time.Time, level int) bool {
	switch level {
	case 1:
		return t.Month() == time.January
	case 2:
		return t.Day() == 1
	case 3:
		return t.Hour() == 0
	case 4:
		return t.Minute() == 0
	case 5:
		return t.Second() == 0
	}
	return false
}

// conciseLabels formats ticks (already in the label zone) for the given step.
func conciseLabels(ticks []time.Time, step timeStep) ([]string, string) {
	if len(ticks) == 0 {
		return nil, ""
	}
	level := labelLevel(step.unit)
	labels := make([]string, len(ticks))
	for i, t := range ticks {
		f := conciseFormats[level]
		if startsCoarserUnit(t, level) {
			f = conciseZero[level]
		}
		labels[i] = t.Format(f)
	}
	offset := ""
	if level >= 2 {
		offset = ticks[len(ticks)-1].Format(conciseOffset[level])
	}
	return labels, offset
}

// timeAxis is the x axis configuration plus the offset label it needs drawn.
type timeAxis struct {
	Axis   chart.XAxis
	Ticks  []time.Time
	Offset string
}

// Padding applied when the data has no extent of its own.
const singleReadingPad = 30 * time.Minute

const boundLabelFormat = "15:04:05.000"

// buildTimeAxis lays out the shared x axis for the readings' time span. Ticks and
// labels are computed in labelZone, independent of the zone the readings carry.
func buildTimeAxis(times []time.Time, labelZone *time.Location, maxTicks int) timeAxis {
	var minT, maxT time.Time
	switch {
	case len(times) == 0:
		// nothing to show: one day from the epoch, like an empty date axis elsewhere
		minT = time.Unix(0, 0).UTC()
		maxT = minT.Add(24 * time.Hour)
	default:
		minT, maxT = times[0], times[0]
		for _, t := range times[1:] {
			if t.Before(minT) {
				minT = t
			}
			if t.After(maxT) {
				maxT = t
			}
		}
		if !maxT.After(minT) {
			minT = minT.Add(-singleReadingPad)
			maxT = maxT.Add(singleReadingPad)
		} else {
			pad := maxT.Sub(minT) / 50
			minT = minT.Add(-pad)
			maxT = maxT.Add(pad)
		}
	}
	step := pickTimeStep(maxT.Sub(minT), maxTicks)
	ts := makeTimeTicks(minT, maxT, step, labelZone)
	labels, offset := conciseLabels(ts, step)
	lo, hi := chart.TimeToFloat64(minT), chart.TimeToFloat64(maxT)
	if len(ts) < 2 {
		// sub-second spans fall between whole-second steps; label the ends instead
		return timeAxis{
			Axis: chart.XAxis{
				Name: "Time",
				Ticks: []chart.Tick{
					{Value: lo, Label: minT.In(labelZone).Format(boundLabelFormat)},
					{Value: hi, Label: maxT.In(labelZone).Format(boundLabelFormat)},
				},
				Range: &chart.ContinuousRange{Min: lo, Max: hi},
			},
			Ticks:  []time.Time{minT.In(labelZone), maxT.In(labelZone)},
			Offset: maxT.In(labelZone).Format("2006-Jan-02"),
		}
	}
	// go-chart narrows the x range to the outermost ticks, so unlabeled ticks at the
	// bounds keep the padding.
	ticks := make([]chart.Tick, 0, len(ts)+2)
	ticks = append(ticks, chart.Tick{Value: lo})
	for i, t := range ts {
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(t), Label: labels[i]})
	}
	ticks = append(ticks, chart.Tick{Value: hi})
	return timeAxis{
		Axis: chart.XAxis{
			Name:  "Time",
			Ticks: ticks,
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Ticks:  ts,
		Offset: offset,
	}
}
