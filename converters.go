package main

import "strconv"

var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// DegreesToCompass converts a meteorological wind direction in degrees to a
// 16-point compass label. Out-of-range inputs are normalized onto [0, 360).
func DegreesToCompass(degrees float64) string {
	for degrees < 0 {
		degrees += 360
	}
	// Each sector spans 22.5°; offset by half a sector so e.g. 350° maps to N
	index := int((degrees+11.25)/22.5) % 16
	return compassPoints[index]
}

// formatFloat renders a measurement the way the upstream tool did: shortest
// decimal representation, no trailing zeros (12.0 -> "12", 12.5 -> "12.5")
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
