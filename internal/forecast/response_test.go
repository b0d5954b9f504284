package forecast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ulascansenturk/weather-dashboard/internal/forecast"
)

func TestCurrentPrefersCurrentWeather(t *testing.T) {
	resp := forecast.WeatherResponse{
		"current_weather": map[string]any{
			"time":          "2024-01-01T10:00",
			"temperature":   3.4,
			"windspeed":     11.2,
			"winddirection": 250.0,
			"weathercode":   61.0,
			"is_day":        1.0,
		},
		"current": map[string]any{"temperature_2m": 99.0},
	}

	cw, ok := resp.Current()

	require.True(t, ok)
	require.NotNil(t, cw.Temperature)
	assert.Equal(t, 3.4, *cw.Temperature)
	assert.Equal(t, 11.2, *cw.WindSpeed)
	assert.Equal(t, 250.0, *cw.WindDirection)
	assert.Equal(t, 61, *cw.WeatherCode)
	assert.True(t, *cw.IsDay)
	assert.Equal(t, "2024-01-01T10:00", cw.Time)
}

func TestCurrentFallsBackToCurrentBlock(t *testing.T) {
	resp := forecast.WeatherResponse{
		"current_weather": map[string]any{},
		"current": map[string]any{
			"temperature_2m": 21.0,
			"wind_speed_10m": 5.5,
			"weather_code":   2.0,
		},
	}

	cw, ok := resp.Current()

	require.True(t, ok)
	assert.Equal(t, 21.0, *cw.Temperature)
	assert.Equal(t, 5.5, *cw.WindSpeed)
	assert.Nil(t, cw.WindDirection)
	assert.Equal(t, 2, *cw.WeatherCode)
}

func TestCurrentAbsent(t *testing.T) {
	for name, resp := range map[string]forecast.WeatherResponse{
		"empty":      {},
		"null":       {"current_weather": nil},
		"empty maps": {"current_weather": map[string]any{}, "current": map[string]any{}},
		"wrong type": {"current": "sunny"},
	} {
		_, ok := resp.Current()
		assert.False(t, ok, name)
	}
}

func TestCurrentMissingFieldsStayNil(t *testing.T) {
	resp := forecast.WeatherResponse{"current_weather": map[string]any{"temperature": 1.0}}

	cw, ok := resp.Current()

	require.True(t, ok)
	assert.Nil(t, cw.WindSpeed)
	assert.Nil(t, cw.WeatherCode)
	assert.Nil(t, cw.IsDay)
}

func TestNewCoordinate(t *testing.T) {
	c, err := forecast.NewCoordinate(37.5665, 126.978)
	require.NoError(t, err)
	assert.Equal(t, "37.5665,126.9780", c.String())

	for _, tc := range []struct{ lat, lon float64 }{
		{90.1, 0},
		{-91, 0},
		{0, 180.5},
		{0, -181},
	} {
		_, err := forecast.NewCoordinate(tc.lat, tc.lon)
		assert.Error(t, err, "%v,%v", tc.lat, tc.lon)
		assert.Contains(t, err.Error(), "invalid coordinate")
	}

	_, err = forecast.NewCoordinate(-90, 180)
	assert.NoError(t, err)
}

func TestDescribeWeatherCode(t *testing.T) {
	assert.Equal(t, "Clear sky", forecast.DescribeWeatherCode(0))
	assert.Equal(t, "Rain", forecast.DescribeWeatherCode(63))
	assert.Equal(t, "Thunderstorm", forecast.DescribeWeatherCode(95))
	assert.Equal(t, "Unknown", forecast.DescribeWeatherCode(42))
}
