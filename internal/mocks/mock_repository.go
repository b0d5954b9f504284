package mocks

import (
	weatherlookup "ulascansenturk/weather-dashboard/internal/db/weatherlookup"

	mock "github.com/stretchr/testify/mock"
)

// MockRepository is an autogenerated mock type for the Repository type
type MockRepository struct {
	mock.Mock
}

// GetRecentLookups provides a mock function with given fields: limit
func (_m *MockRepository) GetRecentLookups(limit int) ([]weatherlookup.WeatherLookup, error) {
	ret := _m.Called(limit)

	if len(ret) == 0 {
		panic("no return value specified for GetRecentLookups")
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

// LogLookup provides a mock function with given fields: lookup
func (_m *MockRepository) LogLookup(lookup *weatherlookup.WeatherLookup) error {
	ret := _m.Called(lookup)

	if len(ret) == 0 {
		panic("no return value specified for LogLookup")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(*weatherlookup.WeatherLookup) error); ok {
		r0 = rf(lookup)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockRepository creates a new instance of MockRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepository {
	mock := &MockRepository{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
