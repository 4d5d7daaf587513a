package appshot

import "errors"

// Sentinel errors for the rendering pipeline.
var (
	// ErrFrameOverflow is returned when the headline and subtitle are tall
	// enough that the device frame would have no inner content area.
	ErrFrameOverflow = errors.New("appshot: headline and subtitle leave no room for the device frame")
)
