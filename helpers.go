package main

import (
	"fmt"
	"strings"
	"time"
)

// locationFromArgs joins the remaining command-line args into the free-text
// location query
func locationFromArgs(args []string) (string, error) {
	location := strings.TrimSpace(strings.Join(args, " "))
	if location == "" {
		return "", fmt.Errorf("no location provided")
	}
	return location, nil
}

// nearestEntry returns the timeseries entry whose timestamp has the smallest
// absolute distance from now. Single linear scan; on a tie the earlier entry
// in series order wins. ok is false for an empty series.
func nearestEntry(entries []Timeseries, now time.Time) (*Timeseries, bool) {
	if len(entries) == 0 {
		return nil, false
	}

	best := &entries[0]
	bestDelta := absDuration(entries[0].Time.Sub(now))
	for i := 1; i < len(entries); i++ {
		delta := absDuration(entries[i].Time.Sub(now))
		if delta < bestDelta {
			best = &entries[i]
			bestDelta = delta
		}
	}
	return best, true
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// calendarDaysBetween returns how many calendar days t lies ahead of now,
// comparing date-truncated UTC instants. Negative for past days. Unlike a
// raw day-of-month comparison this stays correct across month and year
// boundaries.
func calendarDaysBetween(now, t time.Time) int {
	nowDate := truncateToDay(now)
	tDate := truncateToDay(t)
	return int(tDate.Sub(nowDate).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// selectEntries returns the entries whose calendar-day offset from now lies
// in [minDays, maxDays], preserving series order.
func selectEntries(entries []Timeseries, now time.Time, minDays, maxDays int) []*Timeseries {
	var selected []*Timeseries
	for i := range entries {
		offset := calendarDaysBetween(now, entries[i].Time)
		if offset >= minDays && offset <= maxDays {
			selected = append(selected, &entries[i])
		}
	}
	return selected
}
