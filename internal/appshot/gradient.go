package appshot

import (
	"image"
	"image/color"
)

// Gradient returns a width x height image filled with a vertical linear
// gradient from top to bottom. Every pixel in row y has the color
// lerp(top, bottom, y/(height-1)), interpolated per channel; there is no
// horizontal variation and no dithering.
//
// For height == 1 the interpolation factor is defined as 0, so the single
// row equals top.
func Gradient(width, height int, top, bottom color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		row := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 0xFF,
		}
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, row)
		}
	}

	return img
}

// lerp interpolates between two channel values, truncating toward zero.
func lerp(a, b uint8, t float64) uint8 {
	return uint8(int(float64(a) + (float64(b)-float64(a))*t))
}
