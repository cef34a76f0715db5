package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

// ErrMissingData is returned when a selected entry lacks a field the active
// duration requires. Rendering is all-or-nothing: the first missing field
// aborts the whole call and no partial output is returned.
var ErrMissingData = errors.New("missing data")

// Color definitions using fatih/color
var (
	locationColor = color.New(color.FgCyan)
	dateColor     = color.New(color.FgGreen)
	timeColor     = color.New(color.FgGreen)
	tempColor     = color.New(color.FgYellow)
	labelColor    = color.New(color.FgBlue)
)

// renderFunc produces the output text for one output mode.
type renderFunc func(f *Forecast, req RenderRequest, now time.Time) (string, error)

// renderers dispatches on output mode. Adding a mode means adding an entry
// here; the existing renderers stay untouched.
var renderers = map[OutputMode]renderFunc{
	ModeCompact:  renderCompact,
	ModeDetailed: renderDetailed,
	ModeComplete: renderComplete,
}

// Render produces the forecast text for one request. The reference time is
// captured once up front, so a single call stays internally consistent even
// when it runs across a wall-clock boundary. The engine performs no I/O;
// printing the result is the caller's job.
func Render(f *Forecast, req RenderRequest) (string, error) {
	return renderAt(f, req, time.Now().UTC())
}

func renderAt(f *Forecast, req RenderRequest, now time.Time) (string, error) {
	render, ok := renderers[req.Mode]
	if !ok {
		return "", fmt.Errorf("unknown output mode %q", req.Mode)
	}
	return render(f, req, now)
}

func renderCompact(f *Forecast, req RenderRequest, now time.Time) (string, error) {
	return renderWindow(f, req, now, nil, false)
}

func renderDetailed(f *Forecast, req RenderRequest, now time.Time) (string, error) {
	return renderWindow(f, req, now, detailedExtras, false)
}

func renderComplete(f *Forecast, req RenderRequest, now time.Time) (string, error) {
	return renderWindow(f, req, now, completeExtras, true)
}

// entryDecorator builds the optional tail appended to a forecast line.
// Decorators are best-effort: absent fields are skipped, never an error.
type entryDecorator func(e *Timeseries) string

// renderWindow walks the duration windows shared by all output modes.
// outlooks additionally emits the 6/12-hour outlook lines in now mode.
func renderWindow(f *Forecast, req RenderRequest, now time.Time, extras entryDecorator, outlooks bool) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Weather for %s ", locationColor.Sprint(req.Location))

	switch req.Duration {
	case DurationNow:
		fmt.Fprintf(&sb, "at %s\n", dateColor.Sprint(now.Format("15:04")))
		entry, ok := nearestEntry(f.Properties.Timeseries, now)
		if !ok {
			return "", ErrMissingData
		}
		line, err := conditionLine(entry.Data.Next1Hours, entry.Data.Instant.Details, "°C")
		if err != nil {
			return "", err
		}
		sb.WriteString(line)
		if extras != nil {
			sb.WriteString(extras(entry))
		}
		sb.WriteString("\n")
		if outlooks {
			for _, l := range outlookLines(entry) {
				sb.WriteString(l + "\n")
			}
		}

	case DurationToday, DurationTomorrow:
		// The header shows the request date even for tomorrow; existing
		// consumers of the output rely on this.
		fmt.Fprintf(&sb, "on %s\n", dateColor.Sprint(now.Format("Monday, 02 January")))
		offset := 0
		if req.Duration == DurationTomorrow {
			offset = 1
		}
		for _, entry := range selectEntries(f.Properties.Timeseries, now, offset, offset) {
			line, err := conditionLine(entry.Data.Next1Hours, entry.Data.Instant.Details, "°C")
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&sb, "%s: %s", timeColor.Sprint(entry.Time.Format("15:04")), line)
			if extras != nil {
				sb.WriteString(extras(entry))
			}
			sb.WriteString("\n")
		}

	case DurationWeek:
		sb.WriteString("this week\n")
		for _, entry := range selectEntries(f.Properties.Timeseries, now, 0, 7) {
			// Week granularity reads the 12-hour outlook; the temperature
			// keeps the bare "C" suffix for output compatibility.
			line, err := conditionLine(entry.Data.Next12Hours, entry.Data.Instant.Details, "C")
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&sb, "%s %s: %s",
				dateColor.Sprint(entry.Time.Format("Monday")),
				timeColor.Sprint(entry.Time.Format("15:04")),
				line)
			if extras != nil {
				sb.WriteString(extras(entry))
			}
			sb.WriteString("\n")
		}

	default:
		return "", fmt.Errorf("unknown duration %q", req.Duration)
	}

	return sb.String(), nil
}

// conditionLine renders the description + temperature pair every mode is
// built from. Both the outlook period and the instant temperature are
// required; either missing fails the render.
func conditionLine(period *ForecastPeriod, details WeatherDetails, degree string) (string, error) {
	if period == nil || details.AirTemperature == nil {
		return "", ErrMissingData
	}
	temp := tempColor.Sprint(formatFloat(*details.AirTemperature) + degree)
	return DescribeSymbol(period.Summary.SymbolCode) + " " + temp, nil
}

func detailedExtras(e *Timeseries) string {
	return joinExtras(windAndHumidity(e.Data.Instant.Details))
}

func completeExtras(e *Timeseries) string {
	d := e.Data.Instant.Details
	parts := windAndHumidity(d)
	if d.AirPressureAtSeaLevel != nil {
		parts = append(parts, "pressure "+formatFloat(*d.AirPressureAtSeaLevel)+" hPa")
	}
	if d.CloudAreaFraction != nil {
		parts = append(parts, "clouds "+formatFloat(*d.CloudAreaFraction)+"%")
	}
	if n1 := e.Data.Next1Hours; n1 != nil && n1.Details != nil && n1.Details.PrecipitationAmount != nil {
		parts = append(parts, "precipitation "+formatFloat(*n1.Details.PrecipitationAmount)+" mm")
	}
	return joinExtras(parts)
}

func windAndHumidity(d WeatherDetails) []string {
	var parts []string
	if d.WindSpeed != nil {
		wind := "wind " + formatFloat(*d.WindSpeed) + " m/s"
		if d.WindFromDirection != nil {
			wind += " " + DegreesToCompass(*d.WindFromDirection)
		}
		parts = append(parts, wind)
	}
	if d.RelativeHumidity != nil {
		parts = append(parts, "humidity "+formatFloat(*d.RelativeHumidity)+"%")
	}
	return parts
}

func joinExtras(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}

// outlookLines lists the longer-range outlooks attached to an entry.
func outlookLines(e *Timeseries) []string {
	var lines []string
	if e.Data.Next6Hours != nil {
		lines = append(lines, labelColor.Sprint("Next 6 hours:")+" "+DescribeSymbol(e.Data.Next6Hours.Summary.SymbolCode))
	}
	if e.Data.Next12Hours != nil {
		lines = append(lines, labelColor.Sprint("Next 12 hours:")+" "+DescribeSymbol(e.Data.Next12Hours.Summary.SymbolCode))
	}
	return lines
}
