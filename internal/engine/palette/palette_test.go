package palette

import (
	"math"
	"testing"
)

const eps = 1e-5

func near(a, b Color) bool {
	return math.Abs(float64(a.R-b.R)) < eps &&
		math.Abs(float64(a.G-b.G)) < eps &&
		math.Abs(float64(a.B-b.B)) < eps
}

func TestHex(t *testing.T) {
	c := Hex(0xFF8000)
	if c.R != 1 || c.G != float32(0x80)/255 || c.B != 0 {
		t.Errorf("Hex(0xFF8000) = %+v", c)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a, b := LightBlue, SkyBlue
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %+v, want %+v", got, a)
	}
	if got := a.Lerp(b, 1); !near(got, b) {
		t.Errorf("Lerp(1) = %+v, want %+v", got, b)
	}
}

func TestPastelBlueExactAtIntegers(t *testing.T) {
	for i, want := range PastelBlues {
		got := PastelBlue(float64(i))
		if got != want {
			t.Errorf("PastelBlue(%d) = %+v, want %+v", i, got, want)
		}
	}
}

func TestPastelBlueConvexCombination(t *testing.T) {
	tests := []struct {
		t       float64
		wantIdx int
		wantMix float64
	}{
		{0, 0, 0},
		{0.5, 0, 0.5},
		{1.25, 1, 0.25},
		{3.75, 3, 0.75},
		{4.5, 4, 0.5},
		{7.25, 2, 0.25},
	}

	for _, tt := range tests {
		idx, mix := PastelBlues.Segment(tt.t)
		if idx != tt.wantIdx || math.Abs(mix-tt.wantMix) > 1e-9 {
			t.Errorf("Segment(%v) = (%d, %v), want (%d, %v)", tt.t, idx, mix, tt.wantIdx, tt.wantMix)
		}
		next := PastelBlues[(idx+1)%len(PastelBlues)]
		want := PastelBlues[idx].Lerp(next, float32(tt.wantMix))
		if got := PastelBlue(tt.t); !near(got, want) {
			t.Errorf("PastelBlue(%v) = %+v, want %+v", tt.t, got, want)
		}
	}
}

func TestPastelBlueWrapsToFirst(t *testing.T) {
	// Entry 4 blends back into entry 0.
	got := PastelBlue(4.999999)
	if !near(got, LightBlue) {
		t.Errorf("PastelBlue(4.999999) = %+v, want close to %+v", got, LightBlue)
	}
}

func TestPastelBluePeriodic(t *testing.T) {
	for _, tm := range []float64{0, 0.3, 1.7, 2.05, 3.5, 4.95, 12.4} {
		a := PastelBlue(tm)
		b := PastelBlue(tm + 5)
		if !near(a, b) {
			t.Errorf("PastelBlue(%v) = %+v, PastelBlue(%v) = %+v", tm, a, tm+5, b)
		}
	}
}

func TestEmptyPalette(t *testing.T) {
	var p Palette
	if got := p.At(3); got != (Color{}) {
		t.Errorf("empty palette At = %+v, want zero color", got)
	}
}
