package appshot

import (
	"image/color"
	"testing"
)

func TestGradientEndpoints(t *testing.T) {
	top := color.RGBA{R: 0x0F, G: 0x15, B: 0x20, A: 0xFF}
	bottom := color.RGBA{R: 0x1A, G: 0x2A, B: 0x44, A: 0xFF}

	img := Gradient(20, 100, top, bottom)

	if got := img.RGBAAt(0, 0); got != top {
		t.Errorf("first row = %v, want %v", got, top)
	}
	if got := img.RGBAAt(0, 99); got != bottom {
		t.Errorf("last row = %v, want %v", got, bottom)
	}
}

func TestGradientRowsUniform(t *testing.T) {
	img := Gradient(50, 30, color.RGBA{R: 10, A: 0xFF}, color.RGBA{R: 200, A: 0xFF})

	for y := 0; y < 30; y++ {
		want := img.RGBAAt(0, y)
		for x := 1; x < 50; x++ {
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("row %d not uniform: pixel (%d, %d) = %v, want %v", y, x, y, got, want)
			}
		}
	}
}

func TestGradientMonotonic(t *testing.T) {
	tests := []struct {
		name        string
		top, bottom color.RGBA
	}{
		{"ascending", color.RGBA{R: 0, G: 10, B: 20, A: 0xFF}, color.RGBA{R: 255, G: 200, B: 150, A: 0xFF}},
		{"descending", color.RGBA{R: 240, G: 180, B: 90, A: 0xFF}, color.RGBA{R: 10, G: 20, B: 30, A: 0xFF}},
		{"flat", color.RGBA{R: 77, G: 77, B: 77, A: 0xFF}, color.RGBA{R: 77, G: 77, B: 77, A: 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const height = 64
			img := Gradient(4, height, tt.top, tt.bottom)

			prev := img.RGBAAt(0, 0)
			for y := 1; y < height; y++ {
				cur := img.RGBAAt(0, y)
				if !monotonicStep(prev.R, cur.R, tt.top.R, tt.bottom.R) ||
					!monotonicStep(prev.G, cur.G, tt.top.G, tt.bottom.G) ||
					!monotonicStep(prev.B, cur.B, tt.top.B, tt.bottom.B) {
					t.Fatalf("row %d = %v not monotonic after %v (top %v, bottom %v)", y, cur, prev, tt.top, tt.bottom)
				}
				prev = cur
			}
		})
	}
}

// monotonicStep reports whether cur moves from prev in the direction of the
// top-to-bottom channel transition.
func monotonicStep(prev, cur, top, bottom uint8) bool {
	if top <= bottom {
		return cur >= prev
	}
	return cur <= prev
}

func TestGradientSingleRow(t *testing.T) {
	top := color.RGBA{R: 1, G: 2, B: 3, A: 0xFF}
	img := Gradient(8, 1, top, color.RGBA{R: 200, G: 200, B: 200, A: 0xFF})

	for x := 0; x < 8; x++ {
		if got := img.RGBAAt(x, 0); got != top {
			t.Fatalf("pixel (%d, 0) = %v, want %v", x, got, top)
		}
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		a, b uint8
		t    float64
		want uint8
	}{
		{"start", 10, 20, 0, 10},
		{"end", 10, 20, 1, 20},
		{"middle truncates", 0, 255, 0.5, 127},
		{"descending", 200, 100, 0.25, 175},
		{"equal", 42, 42, 0.7, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lerp(tt.a, tt.b, tt.t); got != tt.want {
				t.Errorf("lerp(%d, %d, %v) = %d, want %d", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}
