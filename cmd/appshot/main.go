// Command appshot renders an App Store marketing screenshot (1320x2868 px).
//
// It composites a raw screenshot into a device-frame mockup with a gradient
// background, headline, and subtitle text:
//
//	appshot \
//	    -input  screenshots/01-spending-overview.png \
//	    -output marketing/01-spending-overview.png \
//	    -headline "Your daily spending mirror" \
//	    -subtitle "See where your money quietly drifts"
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/solejay/Drift/internal/appshot"
)

func main() {
	var (
		input    = flag.String("input", "", "path to the raw screenshot (required)")
		output   = flag.String("output", "", "path for the rendered marketing PNG (required)")
		headline = flag.String("headline", "", "headline text drawn above the device frame (required)")
		subtitle = flag.String("subtitle", "", "subtitle text drawn below the headline (required)")
	)
	flag.Parse()

	if *input == "" || *output == "" || *headline == "" || *subtitle == "" {
		fmt.Fprintln(os.Stderr, "appshot: -input, -output, -headline and -subtitle are all required")
		flag.Usage()
		os.Exit(2)
	}

	appshot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	err := appshot.Render(appshot.Options{
		InputPath:  *input,
		OutputPath: *output,
		Headline:   *headline,
		Subtitle:   *subtitle,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "appshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved: %s\n", *output)
}
