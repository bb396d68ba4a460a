package uihelpers

import (
	"math"
	"testing"
)

func TestComputeChartDimensions(t *testing.T) {
	cases := []struct {
		inW, inH     int
		wantW, wantH int
	}{
		{100, 100, 800, 320},
		{799, 600, 800, 600},
		{1600, 900, 1600, 900},
		{1000, 0, 1000, 500},
		{900, 2000, 900, 900},
	}
	for _, c := range cases {
		w, h := ComputeChartDimensions(c.inW, c.inH)
		if w != c.wantW || h != c.wantH {
			t.Fatalf("input %dx%d => %dx%d want %dx%d", c.inW, c.inH, w, h, c.wantW, c.wantH)
		}
	}
}

func TestMaxTimeTicks(t *testing.T) {
	if got := MaxTimeTicks(100); got != 3 {
		t.Fatalf("narrow plot => %d want 3", got)
	}
	if got := MaxTimeTicks(880); got != 8 {
		t.Fatalf("880px => %d want 8", got)
	}
	if got := MaxTimeTicks(5000); got != 12 {
		t.Fatalf("wide plot => %d want 12", got)
	}
}

func TestBuildNumericTicksAndFormat(t *testing.T) {
	cases := []struct {
		min, max float64
		n        int
	}{
		{0, 100, 6},
		{0, 1, 5},
		{5, 5.2, 4},
		{-10, 10, 7},
		{1008.3, 1016.9, 6},
		{3.61, 4.12, 6},
	}
	for _, c := range cases {
		vals := BuildNumericTicks(c.min, c.max, c.n)
		if len(vals) < 2 {
			t.Fatalf("expected >=2 ticks for %#v got %v", c, vals)
		}
		if vals[0] > c.min && math.Abs(vals[0]-c.min) > 1e-6 { // allow start below min but not above
			t.Fatalf("first tick %v should not exceed min %v", vals[0], c.min)
		}
		if last := vals[len(vals)-1]; last < c.max && math.Abs(last-c.max) > 1e-6 { // allow end above max but not below
			t.Fatalf("last tick %v should not be below max %v (vals=%v)", last, c.max, vals)
		}
		for i := 1; i < len(vals); i++ {
			if vals[i] <= vals[i-1] {
				t.Fatalf("ticks not increasing: %v", vals)
			}
		}
		for _, v := range vals {
			if FormatNumericTick(v) == "" {
				t.Fatalf("empty label for %v", v)
			}
		}
	}

	if got := FormatNumericTick(1012.5); got != "1012.5" {
		t.Fatalf("format 1012.5 => %q", got)
	}
	if got := FormatNumericTick(1013); got != "1013" {
		t.Fatalf("format 1013 => %q", got)
	}
	if got := FormatNumericTick(3.7000000000000006); got != "3.7" {
		t.Fatalf("float noise not trimmed: %q", got)
	}
	if got := FormatNumericTick(math.Copysign(0, -1)); got != "0" {
		t.Fatalf("negative zero => %q", got)
	}
}

func TestBuildNumericTicksDegenerate(t *testing.T) {
	vals := BuildNumericTicks(10, 10, 6)
	if len(vals) < 2 || vals[0] > 10 || vals[len(vals)-1] < 11 {
		t.Fatalf("flat input should widen to [10,11]: %v", vals)
	}
	if BuildNumericTicks(0, 1, 1) != nil {
		t.Fatal("n<2 should give nil")
	}
	if BuildNumericTicks(math.NaN(), 1, 5) != nil {
		t.Fatal("NaN bounds should give nil")
	}
}
