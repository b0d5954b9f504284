package forecast

// WeatherResponse is the decoded forecast payload. Every key is optional.
type WeatherResponse map[string]any

// CurrentWeather holds the provider's current conditions. Nil fields were not reported.
type CurrentWeather struct {
	Time          string   `json:"time,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	WindSpeed     *float64 `json:"wind_speed,omitempty"`
	WindDirection *float64 `json:"wind_direction,omitempty"`
	WeatherCode   *int     `json:"weather_code,omitempty"`
	IsDay         *bool    `json:"is_day,omitempty"`
}

// Current returns the current conditions and whether the response carried any.
// A non-empty "current_weather" block wins over "current".
func (r WeatherResponse) Current() (CurrentWeather, bool) {
	block := r.object("current_weather")
	if len(block) == 0 {
		block = r.object("current")
	}
	if len(block) == 0 {
		return CurrentWeather{}, false
	}

	cw := CurrentWeather{
		Temperature:   firstNumber(block, "temperature", "temperature_2m"),
		WindSpeed:     firstNumber(block, "windspeed", "wind_speed_10m"),
		WindDirection: firstNumber(block, "winddirection", "wind_direction_10m"),
	}
	if t, ok := block["time"].(string); ok {
		cw.Time = t
	}
	if code := firstNumber(block, "weathercode", "weather_code"); code != nil {
		c := int(*code)
		cw.WeatherCode = &c
	}
	if day := firstNumber(block, "is_day"); day != nil {
		d := *day != 0
		cw.IsDay = &d
	}

	return cw, true
}

// Timezone returns the provider-resolved timezone name, if any.
func (r WeatherResponse) Timezone() string {
	tz, _ := r["timezone"].(string)
	return tz
}

func (r WeatherResponse) object(key string) map[string]any {
	m, _ := r[key].(map[string]any)
	return m
}

func firstNumber(m map[string]any, keys ...string) *float64 {
	for _, k := range keys {
		if v, ok := m[k].(float64); ok {
			return &v
		}
	}
	return nil
}
