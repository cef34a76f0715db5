package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	durationFlag := flag.String("duration", "now", "Forecast window: now, today, tomorrow or week")
	outputFlag := flag.String("output", "compact", "Output mode: compact, detailed or complete")
	flagNoColor := flag.Bool("no-color", false, "Disable color output")
	flag.Parse()

	if *flagNoColor {
		color.NoColor = true // disables colorized output globally
	}

	location, err := locationFromArgs(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usage: vaer [flags] LOCATION\n")
		flag.PrintDefaults()
		os.Exit(2)
	}

	duration, err := ParseForecastDuration(*durationFlag)
	if err != nil {
		fail("Error: %v", err)
	}

	mode, err := ParseOutputMode(*outputFlag)
	if err != nil {
		fail("Error: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		fail("Error: %v", err)
	}

	client := newAPIClient(cfg)
	ctx := context.Background()

	matches, err := client.FetchGeocoding(ctx, location)
	if err != nil {
		fail("Error: %v", err)
	}
	if len(matches) == 0 {
		fail("Error: no matches found for %q", location)
	}

	// First candidate wins, mirroring how the geocoding service ranks by
	// importance.
	place := matches[0]
	lat, lon, err := place.Coordinates()
	if err != nil {
		fail("Error: %v", err)
	}

	forecast, err := client.FetchForecast(ctx, lat, lon)
	if err != nil {
		fail("Error: %v", err)
	}

	output, err := Render(forecast, RenderRequest{
		Duration: duration,
		Location: place.DisplayName,
		Mode:     mode,
	})
	if err != nil {
		fail("Error: %v", err)
	}

	fmt.Print(output)
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
