package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-dashboard/internal/forecast"
)

const (
	DefaultOpenMeteoURL = "https://api.open-meteo.com/v1/forecast"

	// RequestTimeout bounds every forecast call. It is not configurable.
	RequestTimeout = 10 * time.Second
)

type WeatherClient interface {
	FetchWeather(ctx context.Context, coord forecast.Coordinate) (forecast.WeatherResponse, error)
	GetHTTPClient() *http.Client
}

// FetchError is returned for any failed forecast call: transport errors,
// timeouts, non-2xx statuses and undecodable bodies. StatusCode is zero when
// no response was received.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("forecast request failed with status %d: %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("forecast request failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type openMeteoClient struct {
	baseURL string
	client  *http.Client
}

func NewOpenMeteoClient(baseURL string) WeatherClient {
	if baseURL == "" {
		baseURL = DefaultOpenMeteoURL
	}
	return &openMeteoClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: RequestTimeout,
		},
	}
}

// ForecastQuery returns the query parameters sent for a coordinate.
func ForecastQuery(coord forecast.Coordinate) url.Values {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	q.Set("current_weather", "true")
	q.Set("hourly", strings.Join(forecast.HourlyFields, ","))
	q.Set("timezone", "auto")
	return q
}

// FetchWeather issues a single GET for the coordinate. There are no retries.
func (c *openMeteoClient) FetchWeather(ctx context.Context, coord forecast.Coordinate) (forecast.WeatherResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &FetchError{Err: fmt.Errorf("invalid base URL: %w", err)}
	}
	q := u.Query()
	for key, values := range ForecastQuery(coord) {
		q[key] = values
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	log.Debug().
		Str("coordinate", coord.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("forecast response received")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{StatusCode: resp.StatusCode, Err: providerError(resp)}
	}

	var body forecast.WeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &FetchError{StatusCode: resp.StatusCode, Err: fmt.Errorf("malformed JSON: %w", err)}
	}

	return body, nil
}

func (c *openMeteoClient) GetHTTPClient() *http.Client {
	return c.client
}

// providerError extracts Open-Meteo's {"error": true, "reason": "..."} body when present.
func providerError(resp *http.Response) error {
	var payload struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Reason != "" {
		return fmt.Errorf("%s: %s", resp.Status, payload.Reason)
	}
	return fmt.Errorf("%s", resp.Status)
}
