package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/time/rate"
)

// apiClient wraps the HTTP calls to the geocoding and forecast services.
// Both services ask well-behaved clients to identify themselves and to
// throttle, so every request carries the configured User-Agent and waits on
// a shared rate limiter.
type apiClient struct {
	http    *http.Client
	limiter *rate.Limiter
	cfg     Config
}

func newAPIClient(cfg Config) *apiClient {
	return &apiClient{
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		cfg:     cfg,
	}
}

// get performs a throttled GET with the client User-Agent and returns the
// response body
func (c *apiClient) get(ctx context.Context, rawURL string, query url.Values) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	req.URL.RawQuery = query.Encode()
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", req.URL.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	return body, nil
}

// FetchGeocoding resolves a free-text location query to candidate matches.
// An empty result set is not an error here; the caller decides what zero
// candidates means.
func (c *apiClient) FetchGeocoding(ctx context.Context, query string) ([]GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", query)

	body, err := c.get(ctx, c.cfg.GeocodingURL, params)
	if err != nil {
		return nil, fmt.Errorf("geocoding lookup failed: %w", err)
	}

	var results []GeocodeResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("error parsing geocoding response: %w", err)
	}

	return results, nil
}

// FetchForecast retrieves the point forecast for a coordinate pair. A
// response without timeseries entries is rejected: the rendering engine
// requires a non-empty series.
func (c *apiClient) FetchForecast(ctx context.Context, lat, lon float64) (*Forecast, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	body, err := c.get(ctx, c.cfg.ForecastURL, params)
	if err != nil {
		return nil, fmt.Errorf("forecast lookup failed: %w", err)
	}

	var forecast Forecast
	if err := json.Unmarshal(body, &forecast); err != nil {
		return nil, fmt.Errorf("error parsing forecast response: %w", err)
	}

	if len(forecast.Properties.Timeseries) == 0 {
		return nil, fmt.Errorf("forecast contains no timeseries data")
	}

	return &forecast, nil
}
