package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-dashboard/internal/db/weatherlookup"
	"ulascansenturk/weather-dashboard/internal/forecast"
	"ulascansenturk/weather-dashboard/internal/providers"
)

// Report is the outcome of one request cycle. Current conditions and the
// hourly table are derived independently: HourlyErr does not hide Current.
type Report struct {
	RequestID  string
	Coordinate forecast.Coordinate
	Response   forecast.WeatherResponse
	Current    forecast.CurrentWeather
	HasCurrent bool
	Hourly     forecast.HourlyTable
	HourlyErr  error
}

type WeatherService interface {
	GetWeather(ctx context.Context, coord forecast.Coordinate) (Report, error)
	RecentLookups(limit int) ([]weatherlookup.WeatherLookup, error)
}

type weatherService struct {
	client  providers.WeatherClient
	lookups weatherlookup.Repository
}

// NewWeatherService wires the forecast client. lookups may be nil, which
// disables the lookup log.
func NewWeatherService(client providers.WeatherClient, lookups weatherlookup.Repository) WeatherService {
	return &weatherService{
		client:  client,
		lookups: lookups,
	}
}

func (s *weatherService) GetWeather(ctx context.Context, coord forecast.Coordinate) (Report, error) {
	if err := coord.Validate(); err != nil {
		return Report{}, err
	}

	requestID := uuid.NewString()
	logger := log.With().Str("request_id", requestID).Str("coordinate", coord.String()).Logger()
	start := time.Now()

	resp, err := s.client.FetchWeather(ctx, coord)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch forecast")
		s.record(&weatherlookup.WeatherLookup{
			RequestID:  requestID,
			Latitude:   coord.Latitude,
			Longitude:  coord.Longitude,
			Error:      err.Error(),
			DurationMs: time.Since(start).Milliseconds(),
		})
		return Report{}, err
	}

	report := Report{
		RequestID:  requestID,
		Coordinate: coord,
		Response:   resp,
	}
	report.Current, report.HasCurrent = resp.Current()
	report.Hourly, report.HourlyErr = forecast.NormalizeHourly(resp)

	if !report.HasCurrent {
		logger.Warn().Msg("forecast response has no current weather")
	}

	lookup := &weatherlookup.WeatherLookup{
		RequestID:  requestID,
		Latitude:   coord.Latitude,
		Longitude:  coord.Longitude,
		HasCurrent: report.HasCurrent,
		HourlyRows: report.Hourly.Len(),
		DurationMs: time.Since(start).Milliseconds(),
	}
	if report.HourlyErr != nil {
		logger.Error().Err(report.HourlyErr).Msg("failed to normalize hourly forecast")
		lookup.Error = report.HourlyErr.Error()
	}
	s.record(lookup)

	return report, nil
}

func (s *weatherService) RecentLookups(limit int) ([]weatherlookup.WeatherLookup, error) {
	if s.lookups == nil {
		return []weatherlookup.WeatherLookup{}, nil
	}
	return s.lookups.GetRecentLookups(limit)
}

func (s *weatherService) record(lookup *weatherlookup.WeatherLookup) {
	if s.lookups == nil {
		return
	}
	if err := s.lookups.LogLookup(lookup); err != nil {
		log.Error().Err(err).Str("request_id", lookup.RequestID).Msg("failed to log weather lookup")
	}
}

// IsFetchError reports whether err came from the forecast provider call.
func IsFetchError(err error) bool {
	var fetchErr *providers.FetchError
	return errors.As(err, &fetchErr)
}
