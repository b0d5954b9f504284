package mocks

import (
	context "context"
	http "net/http"

	forecast "ulascansenturk/weather-dashboard/internal/forecast"

	mock "github.com/stretchr/testify/mock"
)

// MockWeatherClient is an autogenerated mock type for the WeatherClient type
type MockWeatherClient struct {
	mock.Mock
}

// FetchWeather provides a mock function with given fields: ctx, coord
func (_m *MockWeatherClient) FetchWeather(ctx context.Context, coord forecast.Coordinate) (forecast.WeatherResponse, error) {
	ret := _m.Called(ctx, coord)

	if len(ret) == 0 {
		panic("no return value specified for FetchWeather")
	}

	var r0 forecast.WeatherResponse
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, forecast.Coordinate) (forecast.WeatherResponse, error)); ok {
		return rf(ctx, coord)
	}
	if rf, ok := ret.Get(0).(func(context.Context, forecast.Coordinate) forecast.WeatherResponse); ok {
		r0 = rf(ctx, coord)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(forecast.WeatherResponse)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, forecast.Coordinate) error); ok {
		r1 = rf(ctx, coord)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetHTTPClient provides a mock function with given fields:
func (_m *MockWeatherClient) GetHTTPClient() *http.Client {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for GetHTTPClient")
	}

	var r0 *http.Client
	if rf, ok := ret.Get(0).(func() *http.Client); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*http.Client)
		}
	}

	return r0
}

// NewMockWeatherClient creates a new instance of MockWeatherClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockWeatherClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWeatherClient {
	mock := &MockWeatherClient{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
