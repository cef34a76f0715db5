package main

import (
	"fmt"
	"time"
)

// ForecastDuration selects the time window a forecast is rendered for.
type ForecastDuration int

const (
	DurationNow ForecastDuration = iota
	DurationToday
	DurationTomorrow
	DurationWeek
)

// ParseForecastDuration parses a -duration flag value
func ParseForecastDuration(s string) (ForecastDuration, error) {
	switch s {
	case "now":
		return DurationNow, nil
	case "today":
		return DurationToday, nil
	case "tomorrow":
		return DurationTomorrow, nil
	case "week":
		return DurationWeek, nil
	}
	return 0, fmt.Errorf("invalid duration %q: must be now, today, tomorrow or week", s)
}

func (d ForecastDuration) String() string {
	switch d {
	case DurationNow:
		return "now"
	case DurationToday:
		return "today"
	case DurationTomorrow:
		return "tomorrow"
	case DurationWeek:
		return "week"
	}
	return fmt.Sprintf("ForecastDuration(%d)", int(d))
}

// OutputMode selects the verbosity of the rendered forecast.
type OutputMode int

const (
	ModeCompact OutputMode = iota
	ModeDetailed
	ModeComplete
)

// ParseOutputMode parses an -output flag value
func ParseOutputMode(s string) (OutputMode, error) {
	switch s {
	case "compact":
		return ModeCompact, nil
	case "detailed":
		return ModeDetailed, nil
	case "complete":
		return ModeComplete, nil
	}
	return 0, fmt.Errorf("invalid output mode %q: must be compact, detailed or complete", s)
}

func (m OutputMode) String() string {
	switch m {
	case ModeCompact:
		return "compact"
	case ModeDetailed:
		return "detailed"
	case ModeComplete:
		return "complete"
	}
	return fmt.Sprintf("OutputMode(%d)", int(m))
}

// RenderRequest is the per-invocation tuple handed to the rendering engine.
// It is not mutated during a render call.
type RenderRequest struct {
	Duration ForecastDuration
	Location string // display name used in the output header
	Mode     OutputMode
}

// Forecast is a decoded locationforecast response.
type Forecast struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// Geometry holds the point the forecast was issued for
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Properties carries the forecast metadata and the timeseries itself.
type Properties struct {
	Meta       Meta         `json:"meta"`
	Timeseries []Timeseries `json:"timeseries"`
}

// Meta describes when the forecast was issued and which units apply.
// The rendering engine does not consume it.
type Meta struct {
	UpdatedAt time.Time `json:"updated_at"`
	Units     Units     `json:"units"`
}

// Units maps each detail field to its unit string as reported upstream
type Units struct {
	AirPressureAtSeaLevel string `json:"air_pressure_at_sea_level,omitempty"`
	AirTemperature        string `json:"air_temperature,omitempty"`
	CloudAreaFraction     string `json:"cloud_area_fraction,omitempty"`
	PrecipitationAmount   string `json:"precipitation_amount,omitempty"`
	RelativeHumidity      string `json:"relative_humidity,omitempty"`
	WindFromDirection     string `json:"wind_from_direction,omitempty"`
	WindSpeed             string `json:"wind_speed,omitempty"`
}

// Timeseries is a single timestamped forecast sample. Timestamps are UTC.
type Timeseries struct {
	Time time.Time      `json:"time"`
	Data TimeseriesData `json:"data"`
}

// TimeseriesData holds the instantaneous conditions plus the optional
// short-range outlooks. Instant is always present; the three outlooks are
// nil when the forecast horizon does not support that granularity
// (far-future entries typically carry only Next12Hours, or none at all).
type TimeseriesData struct {
	Instant     Instant         `json:"instant"`
	Next1Hours  *ForecastPeriod `json:"next_1_hours,omitempty"`
	Next6Hours  *ForecastPeriod `json:"next_6_hours,omitempty"`
	Next12Hours *ForecastPeriod `json:"next_12_hours,omitempty"`
}

// Instant wraps the point-in-time conditions of one sample.
type Instant struct {
	Details WeatherDetails `json:"details"`
}

// ForecastPeriod is a next-N-hours outlook: a symbol code plus optional
// measurement details.
type ForecastPeriod struct {
	Summary Summary         `json:"summary"`
	Details *WeatherDetails `json:"details,omitempty"`
}

// Summary carries the symbolic weather-condition code for a period.
type Summary struct {
	SymbolCode string `json:"symbol_code"`
}

// WeatherDetails holds forecast measurements. Every field is independently
// optional upstream, so each is a pointer to distinguish absent from zero.
type WeatherDetails struct {
	AirPressureAtSeaLevel *float64 `json:"air_pressure_at_sea_level,omitempty"`
	AirTemperature        *float64 `json:"air_temperature,omitempty"`
	CloudAreaFraction     *float64 `json:"cloud_area_fraction,omitempty"`
	PrecipitationAmount   *float64 `json:"precipitation_amount,omitempty"`
	RelativeHumidity      *float64 `json:"relative_humidity,omitempty"`
	WindFromDirection     *float64 `json:"wind_from_direction,omitempty"`
	WindSpeed             *float64 `json:"wind_speed,omitempty"`
}
