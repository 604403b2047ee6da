package compressor

import (
	"math"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		opts  Options
		wantW float64
		wantH float64
	}{
		{"no options", 200, 100, Options{}, 200, 100},
		{"scale", 200, 100, Options{Scale: Float(0.5)}, 100, 50},
		{"width overrides scale on its axis", 200, 200, Options{Width: Float(100), Scale: Float(0.5)}, 100, 100},
		{"height overrides scale on its axis", 200, 100, Options{Height: Float(10), Scale: Float(2)}, 400, 10},
		{"both explicit ignore scale", 200, 100, Options{Width: Float(30), Height: Float(40), Scale: Float(9)}, 30, 40},
		{"width alone keeps natural height", 200, 100, Options{Width: Float(50)}, 50, 100},
		{"fractional", 3, 3, Options{Scale: Float(0.5)}, 1.5, 1.5},
		{"zero passes through", 200, 100, Options{Width: Float(0)}, 0, 100},
		{"negative passes through", 200, 100, Options{Scale: Float(-1)}, -200, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH := Resolve(tt.w, tt.h, tt.opts)
			if gotW != tt.wantW || gotH != tt.wantH {
				t.Errorf("Resolve(%d, %d) = (%g, %g), want (%g, %g)", tt.w, tt.h, gotW, gotH, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResolveNonFinite(t *testing.T) {
	w, h := Resolve(10, 10, Options{Scale: Float(math.Inf(1)), Height: Float(math.NaN())})
	if !math.IsInf(w, 1) {
		t.Errorf("width: got %g, want +Inf", w)
	}
	if !math.IsNaN(h) {
		t.Errorf("height: got %g, want NaN", h)
	}
}

func TestOptionsMerge(t *testing.T) {
	base := Options{Width: Float(245), Height: Float(156), Quality: Float(0.8), FileType: "image/webp"}
	got := Options{Height: Float(10), FileType: "image/png"}.Merge(base)

	if got.Width == nil || *got.Width != 245 {
		t.Errorf("width: got %v", got.Width)
	}
	if *got.Height != 10 {
		t.Errorf("height: got %g", *got.Height)
	}
	if got.Scale != nil {
		t.Errorf("scale: got %g, want absent", *got.Scale)
	}
	if *got.Quality != 0.8 {
		t.Errorf("quality: got %g", *got.Quality)
	}
	if got.FileType != "image/png" {
		t.Errorf("file type: got %q", got.FileType)
	}
}
