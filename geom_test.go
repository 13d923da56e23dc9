package main

import (
	"math"
	"testing"
)

func TestWrapCoord(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0},
		{1999, 1999},
		{2000, 0},
		{2100, 100},
		{-1, 1999},
		{-2100, 1900},
	}
	for _, c := range cases {
		if got := WrapCoord(c.in, MapWidth); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("WrapCoord(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestWrapCoordBounds(t *testing.T) {
	for _, v := range []float64{-5000, -0.001, 0, 1234.5, 1999.999, 6000} {
		got := WrapCoord(v, MapWidth)
		if got < 0 || got >= MapWidth {
			t.Errorf("WrapCoord(%v) = %v out of [0,%v)", v, got, MapWidth)
		}
	}
}

func TestWrapDeltaDirectPath(t *testing.T) {
	// Raw delta within half the map dimension is returned unchanged
	if got := WrapDelta(300, 100, MapWidth); got != 200 {
		t.Errorf("expected 200, got %v", got)
	}
	if got := WrapDelta(100, 300, MapWidth); got != -200 {
		t.Errorf("expected -200, got %v", got)
	}
}

func TestWrapDeltaWrapAround(t *testing.T) {
	// Raw delta over half the map takes the shorter wrap-around path:
	// |result| = mapDim - |rawDelta| with the sign pointing that way
	if got := WrapDelta(1900, 100, MapWidth); got != -200 {
		t.Errorf("expected -200, got %v", got)
	}
	if got := WrapDelta(100, 1900, MapWidth); got != 200 {
		t.Errorf("expected 200, got %v", got)
	}
	// Result magnitude never exceeds half the map
	for _, pair := range [][2]float64{{0, 1999}, {1500, 400}, {1000.5, 0}, {999, 1}} {
		got := WrapDelta(pair[0], pair[1], MapWidth)
		if math.Abs(got) > MapWidth/2 {
			t.Errorf("WrapDelta(%v, %v) = %v exceeds half map", pair[0], pair[1], got)
		}
	}
}

func TestWrapDistance(t *testing.T) {
	// Across the seam: 1990 and 10 are 20 apart, not 1980
	if got := WrapDistance(1990, 500, 10, 500, MapWidth, MapHeight); math.Abs(got-20) > 1e-9 {
		t.Errorf("expected 20, got %v", got)
	}
	if got := WrapDistance(100, 100, 100, 160, MapWidth, MapHeight); math.Abs(got-60) > 1e-9 {
		t.Errorf("expected 60, got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	if math.Abs(x-0.6) > 1e-9 || math.Abs(y-0.8) > 1e-9 {
		t.Errorf("expected (0.6, 0.8), got (%v, %v)", x, y)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	// Zero magnitude leaves the vector unchanged instead of dividing by zero
	x, y := Normalize(0, 0)
	if x != 0 || y != 0 {
		t.Errorf("zero vector should stay zero, got (%v, %v)", x, y)
	}
}

func TestRandNormSpread(t *testing.T) {
	// Sanity check: mean near 0, most mass within 3 sigma
	const n = 2000
	sum := 0.0
	outliers := 0
	for i := 0; i < n; i++ {
		v := randNorm(0, 20)
		sum += v
		if math.Abs(v) > 60 {
			outliers++
		}
	}
	mean := sum / n
	if math.Abs(mean) > 3 {
		t.Errorf("mean too far from 0: %v", mean)
	}
	if outliers > n/50 {
		t.Errorf("too many 3-sigma outliers: %d", outliers)
	}
}

func TestRandRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		v := randRange(50, 200)
		if v < 50 || v >= 200 {
			t.Errorf("randRange out of [50,200): %v", v)
		}
	}
}
