package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"ulascansenturk/weather-dashboard/internal/db/weatherlookup"
	"ulascansenturk/weather-dashboard/internal/forecast"
	"ulascansenturk/weather-dashboard/internal/mocks"
	"ulascansenturk/weather-dashboard/internal/providers"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-dashboard/internal/service"
)

type WeatherServiceTestSuite struct {
	suite.Suite
	mockClient *mocks.MockWeatherClient
	mockRepo   *mocks.MockRepository
	service    service.WeatherService
	ctx        context.Context
	coord      forecast.Coordinate
}

func (s *WeatherServiceTestSuite) SetupTest() {
	s.mockClient = mocks.NewMockWeatherClient(s.T())
	s.mockRepo = mocks.NewMockRepository(s.T())
	s.service = service.NewWeatherService(s.mockClient, s.mockRepo)
	s.ctx = context.Background()
	s.coord = forecast.Coordinate{Latitude: 36.5, Longitude: 127.8}
}

func fullResponse() forecast.WeatherResponse {
	return forecast.WeatherResponse{
		"current_weather": map[string]any{"temperature": 5.0, "windspeed": 9.0},
		"hourly": map[string]any{
			"time":           []any{"2024-01-01T00:00", "2024-01-01T01:00"},
			"temperature_2m": []any{4.0, 4.5},
		},
	}
}

func (s *WeatherServiceTestSuite) TestGetWeatherSuccess() {
	resp := fullResponse()
	s.mockClient.On("FetchWeather", mock.Anything, s.coord).Return(resp, nil).Once()
	s.mockRepo.On("LogLookup", mock.MatchedBy(func(l *weatherlookup.WeatherLookup) bool {
		return l.HasCurrent && l.HourlyRows == 2 && l.Error == "" && l.RequestID != "" &&
			l.Latitude == 36.5 && l.Longitude == 127.8
	})).Return(nil).Once()

	report, err := s.service.GetWeather(s.ctx, s.coord)

	s.Require().NoError(err)
	s.NotEmpty(report.RequestID)
	s.Equal(s.coord, report.Coordinate)
	s.Equal(resp, report.Response)
	s.True(report.HasCurrent)
	s.Equal(5.0, *report.Current.Temperature)
	s.Equal(2, report.Hourly.Len())
	s.NoError(report.HourlyErr)
}

func (s *WeatherServiceTestSuite) TestFetchErrorPropagatesUnmodified() {
	fetchErr := &providers.FetchError{StatusCode: http.StatusBadGateway, Err: errors.New("502 Bad Gateway")}
	s.mockClient.On("FetchWeather", mock.Anything, s.coord).Return(forecast.WeatherResponse(nil), fetchErr).Once()
	s.mockRepo.On("LogLookup", mock.MatchedBy(func(l *weatherlookup.WeatherLookup) bool {
		return l.Error != "" && !l.HasCurrent && l.HourlyRows == 0
	})).Return(nil).Once()

	report, err := s.service.GetWeather(s.ctx, s.coord)

	s.Require().Error(err)
	s.Same(fetchErr, err)
	s.True(service.IsFetchError(err))
	s.Equal(service.Report{}, report)
	s.mockClient.AssertNumberOfCalls(s.T(), "FetchWeather", 1)
}

func (s *WeatherServiceTestSuite) TestMissingCurrentDoesNotBlockHourly() {
	resp := fullResponse()
	delete(resp, "current_weather")
	s.mockClient.On("FetchWeather", mock.Anything, s.coord).Return(resp, nil)
	s.mockRepo.On("LogLookup", mock.Anything).Return(nil)

	report, err := s.service.GetWeather(s.ctx, s.coord)

	s.Require().NoError(err)
	s.False(report.HasCurrent)
	s.Equal(2, report.Hourly.Len())
}

func (s *WeatherServiceTestSuite) TestHourlyParseErrorKeepsCurrent() {
	resp := fullResponse()
	resp["hourly"] = map[string]any{"time": []any{"yesterday"}, "temperature_2m": []any{1.0}}
	s.mockClient.On("FetchWeather", mock.Anything, s.coord).Return(resp, nil)
	s.mockRepo.On("LogLookup", mock.MatchedBy(func(l *weatherlookup.WeatherLookup) bool {
		return l.HasCurrent && l.Error != ""
	})).Return(nil)

	report, err := s.service.GetWeather(s.ctx, s.coord)

	s.Require().NoError(err)
	s.True(report.HasCurrent)
	var parseErr *forecast.ParseError
	s.True(errors.As(report.HourlyErr, &parseErr))
	s.True(report.Hourly.Empty())
}

func (s *WeatherServiceTestSuite) TestLookupLogFailureIsIgnored() {
	s.mockClient.On("FetchWeather", mock.Anything, s.coord).Return(fullResponse(), nil)
	s.mockRepo.On("LogLookup", mock.Anything).Return(errors.New("database error"))

	_, err := s.service.GetWeather(s.ctx, s.coord)

	s.NoError(err)
}

func (s *WeatherServiceTestSuite) TestInvalidCoordinateRejected() {
	_, err := s.service.GetWeather(s.ctx, forecast.Coordinate{Latitude: 120, Longitude: 0})

	s.Error(err)
	s.Contains(err.Error(), "invalid coordinate")
	s.False(service.IsFetchError(err))
	s.mockClient.AssertNotCalled(s.T(), "FetchWeather")
}

func (s *WeatherServiceTestSuite) TestWithoutRepository() {
	svc := service.NewWeatherService(s.mockClient, nil)
	s.mockClient.On("FetchWeather", mock.Anything, s.coord).Return(fullResponse(), nil)

	_, err := svc.GetWeather(s.ctx, s.coord)
	s.NoError(err)

	lookups, err := svc.RecentLookups(10)
	s.NoError(err)
	s.Empty(lookups)
}

func (s *WeatherServiceTestSuite) TestRecentLookups() {
	expected := []weatherlookup.WeatherLookup{{ID: 2, RequestID: "b"}, {ID: 1, RequestID: "a"}}
	s.mockRepo.On("GetRecentLookups", 2).Return(expected, nil)

	lookups, err := s.service.RecentLookups(2)

	s.NoError(err)
	s.Equal(expected, lookups)
}

func TestWeatherServiceSuite(t *testing.T) {
	suite.Run(t, new(WeatherServiceTestSuite))
}
