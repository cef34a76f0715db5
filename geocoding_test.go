package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeResultCoordinates(t *testing.T) {
	t.Parallel()
	r := GeocodeResult{Lat: "59.9127", Lon: "10.7461", DisplayName: "Oslo, Norway"}
	lat, lon, err := r.Coordinates()
	require.NoError(t, err)
	assert.InDelta(t, 59.9127, lat, 1e-9)
	assert.InDelta(t, 10.7461, lon, 1e-9)
}

func TestGeocodeResultCoordinates_malformed(t *testing.T) {
	t.Parallel()
	_, _, err := GeocodeResult{Lat: "north", Lon: "10.7"}.Coordinates()
	assert.ErrorContains(t, err, "invalid latitude")

	_, _, err = GeocodeResult{Lat: "59.9", Lon: ""}.Coordinates()
	assert.ErrorContains(t, err, "invalid longitude")
}
