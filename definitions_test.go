package main

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlsen/vaer/testdata"
)

func TestForecastDecoding(t *testing.T) {
	t.Parallel()
	var f Forecast
	require.NoError(t, json.Unmarshal(testdata.Forecast(t), &f))

	assert.Equal(t, "Feature", f.Type)
	assert.Equal(t, time.Date(2024, time.January, 15, 8, 37, 51, 0, time.UTC), f.Properties.Meta.UpdatedAt)
	assert.Equal(t, "celsius", f.Properties.Meta.Units.AirTemperature)
	require.Len(t, f.Properties.Timeseries, 4)

	first := f.Properties.Timeseries[0]
	require.NotNil(t, first.Data.Instant.Details.AirTemperature)
	assert.Equal(t, -5.2, *first.Data.Instant.Details.AirTemperature)
	require.NotNil(t, first.Data.Next1Hours)
	assert.Equal(t, "clearsky_day", first.Data.Next1Hours.Summary.SymbolCode)
	require.NotNil(t, first.Data.Next1Hours.Details)
	require.NotNil(t, first.Data.Next1Hours.Details.PrecipitationAmount)
	assert.Zero(t, *first.Data.Next1Hours.Details.PrecipitationAmount)

	// Mid-range horizon drops the 1-hour outlook
	mid := f.Properties.Timeseries[2]
	assert.Nil(t, mid.Data.Next1Hours)
	require.NotNil(t, mid.Data.Next6Hours)
	require.NotNil(t, mid.Data.Next12Hours)

	// Far-future entries carry instant details only
	far := f.Properties.Timeseries[3]
	assert.Nil(t, far.Data.Next1Hours)
	assert.Nil(t, far.Data.Next6Hours)
	assert.Nil(t, far.Data.Next12Hours)
	assert.Nil(t, far.Data.Instant.Details.WindSpeed)
	require.NotNil(t, far.Data.Instant.Details.AirTemperature)
}

func TestParseForecastDuration(t *testing.T) {
	t.Parallel()
	for s, want := range map[string]ForecastDuration{
		"now":      DurationNow,
		"today":    DurationToday,
		"tomorrow": DurationTomorrow,
		"week":     DurationWeek,
	} {
		got, err := ParseForecastDuration(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, s, got.String())
	}

	for _, s := range []string{"", "Now", "month", "7d"} {
		_, err := ParseForecastDuration(s)
		assert.Error(t, err, s)
	}
}

func TestParseOutputMode(t *testing.T) {
	t.Parallel()
	for s, want := range map[string]OutputMode{
		"compact":  ModeCompact,
		"detailed": ModeDetailed,
		"complete": ModeComplete,
	} {
		got, err := ParseOutputMode(s)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, s, got.String())
	}

	_, err := ParseOutputMode("verbose")
	assert.Error(t, err)
}
