package appshot

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
)

// frameRect is the device-frame rectangle in canvas coordinates.
type frameRect struct {
	left, top, right, bottom int
}

// innerWidth returns the content width inside the frame border.
func (f frameRect) innerWidth() int {
	return (f.right - f.left) - 2*frameBorderWidth
}

// innerHeight returns the content height inside the frame border.
func (f frameRect) innerHeight() int {
	return (f.bottom - f.top) - 2*frameBorderWidth
}

// frameGeometry computes the device-frame rectangle below the subtitle.
// Text tall enough to leave no room for the frame is reported as
// ErrFrameOverflow instead of producing a degenerate image.
func frameGeometry(subtitleBottom int) (frameRect, error) {
	f := frameRect{
		left:   deviceSidePad,
		top:    subtitleBottom + deviceTopPad,
		right:  CanvasWidth - deviceSidePad,
		bottom: CanvasHeight - deviceBottomPad,
	}
	if f.innerWidth() <= 0 || f.innerHeight() <= 0 {
		return frameRect{}, ErrFrameOverflow
	}
	return f, nil
}

// aspectFit returns the dimensions of srcW x srcH scaled by
// min(maxW/srcW, maxH/srcH). The limiting dimension is pinned exactly to
// its bound so the result always touches at least one edge; the other
// dimension truncates. Integer arithmetic keeps the result exact. The
// factor is applied as-is, upscaling when the source is smaller.
func aspectFit(srcW, srcH, maxW, maxH int) (int, int) {
	// maxW/srcW <= maxH/srcH, cross-multiplied to avoid float rounding.
	if maxW*srcH <= maxH*srcW {
		return maxW, srcH * maxW / srcW
	}
	return srcW * maxH / srcH, maxH
}

// pasteScreenshot loads the screenshot, scales it to fit the frame's inner
// content area, rounds its corners, and composites it centered in the frame.
func pasteScreenshot(dc *gg.Context, path string, frame frameRect) error {
	src, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("appshot: open screenshot %s: %w", path, err)
	}

	innerW := frame.innerWidth()
	innerH := frame.innerHeight()

	bounds := src.Bounds()
	w, h := aspectFit(bounds.Dx(), bounds.Dy(), innerW, innerH)

	scaled := imaging.Resize(src, w, h, imaging.Lanczos)

	// Clip the corners to match the frame's rounding.
	radius := frameCornerRadius - frameBorderWidth
	if radius < 0 {
		radius = 0
	}
	applyCornerMask(scaled, radius)

	x := frame.left + frameBorderWidth + (innerW-w)/2
	y := frame.top + frameBorderWidth + (innerH-h)/2
	dc.DrawImage(gg.ImageBufFromImage(scaled), float64(x), float64(y))

	return nil
}

// applyCornerMask multiplies a filled rounded-rectangle alpha mask into img,
// clipping its corners. The mask is rasterized with the same engine that
// draws the frame border so the curves line up.
func applyCornerMask(img *image.NRGBA, radius int) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	mc := gg.NewContext(w, h)
	defer func() { _ = mc.Close() }()
	mc.DrawRoundedRectangle(0, 0, float64(w), float64(h), float64(radius))
	mask := mc.AsMask()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(x, y)
			a := uint16(img.Pix[i+3]) * uint16(mask.At(x, y))
			img.Pix[i+3] = uint8(a / 0xFF)
		}
	}
}
