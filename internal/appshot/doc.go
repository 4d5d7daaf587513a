// Package appshot composites a raw application screenshot into an App Store
// marketing image: a 1320x2868 canvas with a vertical gradient background,
// centered headline and subtitle text, and a device-frame outline containing
// the scaled, corner-rounded screenshot.
//
// The package performs all work in a single forward pass per invocation.
// Nothing is cached or shared between renders, and the only side effect is
// the PNG written to the output path.
//
//	err := appshot.Render(appshot.Options{
//	    InputPath:  "screenshots/01-spending-overview.png",
//	    OutputPath: "marketing/01-spending-overview.png",
//	    Headline:   "Your daily spending mirror",
//	    Subtitle:   "See where your money quietly drifts",
//	})
package appshot
