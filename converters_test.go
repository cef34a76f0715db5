package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegreesToCompass(t *testing.T) {
	t.Parallel()
	cases := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{90, "E"},
		{180, "S"},
		{210.4, "SSW"},
		{225, "SW"},
		{270, "W"},
		{350, "N"},
		{360, "N"},
		{-90, "W"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DegreesToCompass(tc.degrees), "%v degrees", tc.degrees)
	}
}

func TestFormatFloat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "12", formatFloat(12.0))
	assert.Equal(t, "12.5", formatFloat(12.5))
	assert.Equal(t, "-0.4", formatFloat(-0.4))
	assert.Equal(t, "0", formatFloat(0))
}
