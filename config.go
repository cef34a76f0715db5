package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default endpoints and client identity. The User-Agent is mandatory for the
// forecast service, which rejects anonymous clients.
const (
	defaultGeocodingURL = "https://geocode.maps.co/search"
	defaultForecastURL  = "https://api.met.no/weatherapi/locationforecast/2.0/compact"
	defaultUserAgent    = "vaer/0.1.0 github.com/mkarlsen/vaer"
)

// Config holds the network-facing settings. Everything is overridable from
// the environment (or a .env file) so the tool can be pointed at a mock
// upstream without rebuilding.
type Config struct {
	UserAgent    string
	GeocodingURL string
	ForecastURL  string
	HTTPTimeout  time.Duration

	// RequestsPerSecond throttles calls to the upstream services.
	RequestsPerSecond float64
}

// LoadConfig reads configuration from the environment with working defaults.
// A missing .env file is not an error.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		UserAgent:    getenvDefault("VAER_USER_AGENT", defaultUserAgent),
		GeocodingURL: getenvDefault("VAER_GEOCODING_URL", defaultGeocodingURL),
		ForecastURL:  getenvDefault("VAER_FORECAST_URL", defaultForecastURL),
	}

	timeoutStr := getenvDefault("VAER_HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid VAER_HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	rpsStr := getenvDefault("VAER_REQUESTS_PER_SECOND", "2")
	rps, err := strconv.ParseFloat(rpsStr, 64)
	if err != nil || rps <= 0 {
		return Config{}, fmt.Errorf("invalid VAER_REQUESTS_PER_SECOND: %q", rpsStr)
	}
	cfg.RequestsPerSecond = rps

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
