package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestEntry(t *testing.T) {
	t.Parallel()
	entries := []Timeseries{
		{Time: testNow.Add(-300 * time.Second)},
		{Time: testNow.Add(50 * time.Second)},
		{Time: testNow.Add(3650 * time.Second)},
	}

	got, ok := nearestEntry(entries, testNow)
	require.True(t, ok)
	assert.Equal(t, entries[1].Time, got.Time)
}

func TestNearestEntry_tiePrefersSeriesOrder(t *testing.T) {
	t.Parallel()
	entries := []Timeseries{
		{Time: testNow.Add(-time.Hour)},
		{Time: testNow.Add(time.Hour)},
	}

	got, ok := nearestEntry(entries, testNow)
	require.True(t, ok)
	assert.Equal(t, entries[0].Time, got.Time)
}

func TestNearestEntry_empty(t *testing.T) {
	t.Parallel()
	_, ok := nearestEntry(nil, testNow)
	assert.False(t, ok)
}

func TestCalendarDaysBetween(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		now  time.Time
		t    time.Time
		want int
	}{
		{"same day", testNow, testNow.Add(6 * time.Hour), 0},
		{"next day", testNow, testNow.Add(13 * time.Hour), 1},
		{"previous day", testNow, testNow.Add(-13 * time.Hour), -1},
		{
			"month boundary",
			time.Date(2024, time.January, 31, 23, 0, 0, 0, time.UTC),
			time.Date(2024, time.February, 1, 1, 0, 0, 0, time.UTC),
			1,
		},
		{
			"year boundary",
			time.Date(2023, time.December, 31, 12, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC),
			1,
		},
		{"week out", testNow, testNow.AddDate(0, 0, 7), 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, calendarDaysBetween(tc.now, tc.t))
		})
	}
}

func TestSelectEntries_weekWindow(t *testing.T) {
	t.Parallel()
	entries := []Timeseries{
		{Time: testNow},
		{Time: testNow.AddDate(0, 0, 3)},
		{Time: testNow.AddDate(0, 0, 7)},
		{Time: testNow.AddDate(0, 0, 8)},
	}

	selected := selectEntries(entries, testNow, 0, 7)
	require.Len(t, selected, 3)
	assert.Equal(t, entries[2].Time, selected[2].Time)
}

func TestLocationFromArgs(t *testing.T) {
	t.Parallel()
	loc, err := locationFromArgs([]string{"new", "york"})
	require.NoError(t, err)
	assert.Equal(t, "new york", loc)

	_, err = locationFromArgs(nil)
	assert.Error(t, err)

	_, err = locationFromArgs([]string{"  "})
	assert.Error(t, err)
}
