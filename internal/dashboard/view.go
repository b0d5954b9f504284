package dashboard

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"ulascansenturk/weather-dashboard/internal/forecast"
	"ulascansenturk/weather-dashboard/internal/service"
)

const timeLabelLayout = "2006-01-02 15:04"

// Limits are presentation policy for how many hourly rows are shown.
type Limits struct {
	ChartRows int
	TableRows int
}

var DefaultLimits = Limits{ChartRows: 48, TableRows: 72}

var chartTabs = []struct {
	label string
	tab   string
}{
	{forecast.LabelTemperature, "Temperature"},
	{forecast.LabelHumidity, "Humidity"},
	{forecast.LabelPrecipitation, "Precipitation"},
	{forecast.LabelWindSpeed, "Wind speed"},
}

type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type CurrentView struct {
	Temperature   Metric `json:"temperature"`
	WindSpeed     Metric `json:"wind_speed"`
	WindDirection Metric `json:"wind_direction"`
	WeatherCode   *int   `json:"weather_code,omitempty"`
	Description   string `json:"description,omitempty"`
	Time          string `json:"time,omitempty"`
}

// Series is one chart. Values holds nil where the provider had no reading.
type Series struct {
	Tab    string     `json:"tab"`
	Label  string     `json:"label"`
	Times  []string   `json:"times"`
	Values []*float64 `json:"values"`
}

type TableView struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// View is everything the dashboard renders for one request.
type View struct {
	RequestID      string               `json:"request_id,omitempty"`
	Coordinate     *forecast.Coordinate `json:"coordinate,omitempty"`
	Timezone       string               `json:"timezone,omitempty"`
	Notice         string               `json:"notice,omitempty"`
	Error          string               `json:"error,omitempty"`
	Current        *CurrentView         `json:"current,omitempty"`
	CurrentWarning string               `json:"current_warning,omitempty"`
	Series         []Series             `json:"series,omitempty"`
	Table          *TableView           `json:"table,omitempty"`
	HourlyNotice   string               `json:"hourly_notice,omitempty"`
	HourlyError    string               `json:"hourly_error,omitempty"`
}

// Build runs one request cycle for the state's last click. A fetch failure
// is reported in View.Error and returned so callers can pick a status code.
func Build(ctx context.Context, svc service.WeatherService, state State, limits Limits) (View, error) {
	if state.LastClicked == nil {
		return View{Notice: "Click the map to select a location first."}, nil
	}

	coord := *state.LastClicked
	report, err := svc.GetWeather(ctx, coord)
	if err != nil {
		return View{
			Coordinate: &coord,
			Error:      fmt.Sprintf("Open-Meteo request failed: %v", err),
		}, err
	}

	return FromReport(report, limits), nil
}

// FromReport converts a report into a view, truncating the hourly data to limits.
func FromReport(report service.Report, limits Limits) View {
	coord := report.Coordinate
	view := View{
		RequestID:  report.RequestID,
		Coordinate: &coord,
		Timezone:   report.Response.Timezone(),
	}

	if report.HasCurrent {
		view.Current = currentView(report.Current)
	} else {
		view.CurrentWarning = "Current weather (current_weather) is not available."
	}

	switch {
	case report.HourlyErr != nil:
		view.HourlyError = fmt.Sprintf("Hourly forecast could not be read: %v", report.HourlyErr)
	case report.Hourly.Empty():
		view.HourlyNotice = "No hourly forecast data."
	default:
		view.Series = chartSeries(report.Hourly.Head(limits.ChartRows))
		view.Table = tableView(report.Hourly.Head(limits.TableRows))
	}

	return view
}

func currentView(cw forecast.CurrentWeather) *CurrentView {
	cv := &CurrentView{
		Temperature:   Metric{Label: "Temperature (°C)", Value: "-"},
		WindSpeed:     Metric{Label: "Wind speed (km/h)", Value: "-"},
		WindDirection: Metric{Label: "Wind direction (°)", Value: "-"},
		WeatherCode:   cw.WeatherCode,
		Time:          cw.Time,
	}
	if cw.Temperature != nil {
		cv.Temperature.Value = formatNumber(*cw.Temperature) + " °C"
	}
	if cw.WindSpeed != nil {
		cv.WindSpeed.Value = formatNumber(*cw.WindSpeed)
	}
	if cw.WindDirection != nil {
		cv.WindDirection.Value = formatNumber(*cw.WindDirection)
	}
	if cw.WeatherCode != nil {
		cv.Description = forecast.DescribeWeatherCode(*cw.WeatherCode)
	}
	return cv
}

func chartSeries(table forecast.HourlyTable) []Series {
	times := rowLabels(table)

	var series []Series
	for _, ct := range chartTabs {
		col, ok := table.Column(ct.label)
		if !ok {
			continue
		}
		values := make([]*float64, len(col.Values))
		for i, f := range col.Floats() {
			if math.IsNaN(f) {
				continue
			}
			v := f
			values[i] = &v
		}
		series = append(series, Series{Tab: ct.tab, Label: ct.label, Times: times, Values: values})
	}
	return series
}

func tableView(table forecast.HourlyTable) *TableView {
	tv := &TableView{Headers: append([]string{"Time"}, table.ColumnNames()...)}

	times := rowLabels(table)
	tv.Rows = make([][]string, table.Len())
	for i := range tv.Rows {
		row := make([]string, 0, len(tv.Headers))
		row = append(row, times[i])
		for _, col := range table.Columns {
			row = append(row, formatCell(col.Values[i]))
		}
		tv.Rows[i] = row
	}
	return tv
}

func rowLabels(table forecast.HourlyTable) []string {
	labels := make([]string, table.Len())
	for i := range labels {
		if table.Indexed() {
			labels[i] = table.Index[i].Format(timeLabelLayout)
		} else {
			labels[i] = strconv.Itoa(i)
		}
	}
	return labels
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return formatNumber(x)
	default:
		return fmt.Sprint(x)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
