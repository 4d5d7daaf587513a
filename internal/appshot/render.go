package appshot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Canvas dimensions of the rendered marketing image, in pixels.
// These match the App Store screenshot size for 6.9" displays.
const (
	CanvasWidth  = 1320
	CanvasHeight = 2868
)

// Gradient colors, top to bottom.
var (
	gradientTop    = color.RGBA{R: 0x0F, G: 0x15, B: 0x20, A: 0xFF}
	gradientBottom = color.RGBA{R: 0x1A, G: 0x2A, B: 0x44, A: 0xFF}
)

// Text colors.
var (
	headlineColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	subtitleColor = color.RGBA{R: 0x7A, G: 0x9C, B: 0xC6, A: 0xFF}
)

// Device frame.
var frameBorderColor = color.RGBA{R: 0x3D, G: 0x87, B: 0xC7, A: 0xFF}

const (
	frameBorderWidth  = 3
	frameCornerRadius = 40
)

// Layout.
const (
	headlineY       = 200 // fixed top of the headline
	subtitleGap     = 40  // gap between headline bottom and subtitle top
	deviceTopPad    = 120 // padding between subtitle and device frame
	deviceSidePad   = 80  // horizontal padding for the device frame
	deviceBottomPad = 80  // padding at the bottom of the canvas
)

// Font sizes in points.
const (
	headlineSize = 60
	subtitleSize = 32
)

// Options holds the inputs for a single render pass. All fields are required.
type Options struct {
	// InputPath is the raw screenshot to composite. Any format decodable by
	// the imaging library is accepted (PNG, JPEG, GIF, TIFF, BMP).
	InputPath string

	// OutputPath is where the PNG is written. Missing parent directories are
	// created; an existing file is silently replaced.
	OutputPath string

	// Headline is drawn centered near the top of the canvas.
	Headline string

	// Subtitle is drawn centered below the headline.
	Subtitle string
}

// Render composes the marketing image and writes it to opts.OutputPath.
//
// The pass is strictly linear: gradient canvas, fonts, headline, subtitle,
// frame geometry, screenshot paste, frame border, PNG write. Any failing
// step aborts the render with a wrapped error; font resolution is the one
// non-fatal step and degrades to the embedded fallback font.
func Render(opts Options) error {
	dc := gg.NewContextForImage(Gradient(CanvasWidth, CanvasHeight, gradientTop, gradientBottom))
	defer func() { _ = dc.Close() }()

	headlineFace, headlineSource, err := ResolveFont(headlineFamilies, headlineSize)
	if err != nil {
		return err
	}
	defer func() { _ = headlineSource.Close() }()

	subtitleFace, subtitleSource, err := ResolveFont(subtitleFamilies, subtitleSize)
	if err != nil {
		return err
	}
	defer func() { _ = subtitleSource.Close() }()

	headlineBottom := drawCentered(dc, opts.Headline, headlineFace, headlineColor, headlineY)
	subtitleBottom := drawCentered(dc, opts.Subtitle, subtitleFace, subtitleColor, headlineBottom+subtitleGap)

	frame, err := frameGeometry(subtitleBottom)
	if err != nil {
		return err
	}

	if err := pasteScreenshot(dc, opts.InputPath, frame); err != nil {
		return err
	}

	drawFrameBorder(dc, frame)

	return writePNG(dc, opts.OutputPath)
}

// drawCentered draws s horizontally centered with its top edge at top and
// returns the y coordinate of its bottom edge. Both roles measure with the
// same line-height semantics so vertical stacking stays consistent.
func drawCentered(dc *gg.Context, s string, face text.Face, col color.Color, top int) int {
	w, h := text.Measure(s, face)
	x := centeredX(w)

	// DrawString takes a baseline origin; anchor the top edge instead.
	ascent := face.Metrics().Ascent

	dc.SetFont(face)
	dc.SetColor(col)
	dc.DrawString(s, float64(x), float64(top)+ascent)

	return top + int(h)
}

// centeredX returns the left edge that centers a run of the given width on
// the canvas, using integer division. A run wider than the canvas yields a
// negative edge and simply overflows; wrapping is out of scope.
func centeredX(textWidth float64) int {
	return (CanvasWidth - int(textWidth)) / 2
}

// drawFrameBorder strokes the rounded device-frame outline. Called after the
// screenshot paste so the border renders on top.
func drawFrameBorder(dc *gg.Context, frame frameRect) {
	dc.SetColor(frameBorderColor)
	dc.SetLineWidth(frameBorderWidth)
	dc.DrawRoundedRectangle(
		float64(frame.left),
		float64(frame.top),
		float64(frame.right-frame.left),
		float64(frame.bottom-frame.top),
		frameCornerRadius,
	)
	if err := dc.Stroke(); err != nil {
		Logger().Warn("frame border stroke failed", "error", err)
	}
}

// writePNG creates the output's parent directories and writes the canvas.
// An existing file at the path is replaced without confirmation.
func writePNG(dc *gg.Context, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("appshot: create output directory: %w", err)
		}
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("appshot: write %s: %w", path, err)
	}
	return nil
}
