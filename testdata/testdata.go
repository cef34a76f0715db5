package testdata

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:embed forecast.json
var data embed.FS

// Forecast returns a captured locationforecast "compact" response covering
// short-range entries (1/6/12-hour outlooks), a mid-range entry (6/12-hour
// only) and a far-future entry with instant details only.
func Forecast(t *testing.T) []byte {
	t.Helper()
	b, err := data.ReadFile("forecast.json")
	require.NoError(t, err)
	return b
}
