package uihelpers

import (
	"math"
	"strconv"
)

// ComputeChartDimensions applies the clamp rules for the chart image.
// Input: the available canvas size. A non-positive height falls back to half the width.
func ComputeChartDimensions(rawW, rawH int) (int, int) {
	w := rawW
	if w < 800 {
		w = 800
	}
	h := rawH
	if h <= 0 {
		h = w / 2
	}
	if h < 320 {
		h = 320
	}
	if h > w {
		h = w
	}
	return w, h
}

// MaxTimeTicks returns how many x-axis labels fit in a plot of the given pixel width.
func MaxTimeTicks(plotWidth int) int {
	n := plotWidth / 110
	if n < 3 {
		n = 3
	}
	if n > 12 {
		n = 12
	}
	return n
}

// pow10Floor returns 10^floor(log10(x)) safeguarding tiny values.
func pow10Floor(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Pow(10, math.Floor(math.Log10(x)))
}

// round6 rounds to 6 decimal places to stabilize test comparisons / labels prep.
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// BuildNumericTicks generates up to n tick marks spanning [min,max] using a 1,2,2.5,5 pattern.
// The first tick is <= min and the last >= max. Label formatting is left to the caller.
func BuildNumericTicks(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := pow10Floor(span / float64(n-1))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if count < 2 {
			count = 2
		}
		diff := math.Abs(count - float64(n))
		if diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []float64
	for i := 0; ; i++ {
		v := start + float64(i)*bestStep
		if v > end+bestStep*0.5 {
			break
		}
		out = append(out, round6(v))
	}
	if len(out) < 2 {
		out = []float64{min, max}
	}
	return out
}

// FormatNumericTick prints a tick value in its shortest exact form. Tick values are
// multiples of a 1/2/2.5/5 step, so this keeps just the digits the step needs.
func FormatNumericTick(v float64) string {
	v = round6(v)
	if v == 0 {
		return "0" // also folds -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
