package mocks

import (
	context "context"

	weatherlookup "ulascansenturk/weather-dashboard/internal/db/weatherlookup"
	forecast "ulascansenturk/weather-dashboard/internal/forecast"

	mock "github.com/stretchr/testify/mock"

	service "ulascansenturk/weather-dashboard/internal/service"
)

// MockWeatherService is an autogenerated mock type for the WeatherService type
type MockWeatherService struct {
	mock.Mock
}

// GetWeather provides a mock function with given fields: ctx, coord
func (_m *MockWeatherService) GetWeather(ctx context.Context, coord forecast.Coordinate) (service.Report, error) {
	ret := _m.Called(ctx, coord)

	if len(ret) == 0 {
		panic("no return value specified for GetWeather")
	}

	var r0 service.Report
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, forecast.Coordinate) (service.Report, error)); ok {
		return rf(ctx, coord)
	}
	if rf, ok := ret.Get(0).(func(context.Context, forecast.Coordinate) service.Report); ok {
		r0 = rf(ctx, coord)
	} else {
		r0 = ret.Get(0).(service.Report)
	}

	if rf, ok := ret.Get(1).(func(context.Context, forecast.Coordinate) error); ok {
		r1 = rf(ctx, coord)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RecentLookups provides a mock function with given fields: limit
func (_m *MockWeatherService) RecentLookups(limit int) ([]weatherlookup.WeatherLookup, error) {
	ret := _m.Called(limit)

	if len(ret) == 0 {
		panic("no return value specified for RecentLookups")
	}

	var r0 []weatherlookup.WeatherLookup
	var r1 error
	if rf, ok := ret.Get(0).(func(int) ([]weatherlookup.WeatherLookup, error)); ok {
		return rf(limit)
	}
	if rf, ok := ret.Get(0).(func(int) []weatherlookup.WeatherLookup); ok {
		r0 = rf(limit)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]weatherlookup.WeatherLookup)
		}
	}

	if rf, ok := ret.Get(1).(func(int) error); ok {
		r1 = rf(limit)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockWeatherService creates a new instance of MockWeatherService. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockWeatherService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWeatherService {
	mock := &MockWeatherService{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
