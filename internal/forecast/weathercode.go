package forecast

// DescribeWeatherCode returns a short description of a WMO weather
// interpretation code as used by Open-Meteo.
func DescribeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "Clear sky"
	case code >= 1 && code <= 2:
		return "Partly cloudy"
	case code == 3:
		return "Overcast"
	case code == 45 || code == 48:
		return "Fog"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case code >= 61 && code <= 67:
		return "Rain"
	case code >= 71 && code <= 77:
		return "Snow"
	case code >= 80 && code <= 82:
		return "Rain showers"
	case code == 85 || code == 86:
		return "Snow showers"
	case code >= 95:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}
