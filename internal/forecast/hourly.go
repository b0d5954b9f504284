package forecast

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// Hourly variables requested from the provider and their display labels.
const (
	FieldTime          = "time"
	FieldTemperature   = "temperature_2m"
	FieldHumidity      = "relative_humidity_2m"
	FieldPrecipitation = "precipitation"
	FieldWindSpeed     = "wind_speed_10m"

	LabelTemperature   = "Temperature (°C)"
	LabelHumidity      = "Humidity (%)"
	LabelPrecipitation = "Precipitation (mm)"
	LabelWindSpeed     = "Wind speed (km/h)"
)

// HourlyFields lists the hourly variables in display order.
var HourlyFields = []string{FieldTemperature, FieldHumidity, FieldPrecipitation, FieldWindSpeed}

var displayLabels = map[string]string{
	FieldTemperature:   LabelTemperature,
	FieldHumidity:      LabelHumidity,
	FieldPrecipitation: LabelPrecipitation,
	FieldWindSpeed:     LabelWindSpeed,
}

var timeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

var errLengthMismatch = errors.New("array length does not match other hourly fields")

// DisplayLabel maps a provider field to its display label. Unknown names,
// including labels themselves, are returned unchanged.
func DisplayLabel(field string) string {
	if label, ok := displayLabels[field]; ok {
		return label
	}
	return field
}

// Column is one hourly variable. Values are the provider's JSON scalars;
// nil marks a missing reading.
type Column struct {
	Name   string `json:"name"`
	Values []any  `json:"values"`
}

// Floats returns the column as float64, with NaN for nil or non-numeric cells.
func (c Column) Floats() []float64 {
	out := make([]float64, len(c.Values))
	for i, v := range c.Values {
		if f, ok := v.(float64); ok {
			out[i] = f
			continue
		}
		out[i] = math.NaN()
	}
	return out
}

// HourlyTable is the hourly forecast in provider row order. Index is nil
// when the provider sent no time array.
type HourlyTable struct {
	Index   []time.Time `json:"index,omitempty"`
	Columns []Column    `json:"columns"`
}

func (t HourlyTable) Len() int {
	if t.Index != nil {
		return len(t.Index)
	}
	if len(t.Columns) > 0 {
		return len(t.Columns[0].Values)
	}
	return 0
}

// Empty reports whether the table has no rows or no data columns.
func (t HourlyTable) Empty() bool {
	return t.Len() == 0 || len(t.Columns) == 0
}

func (t HourlyTable) Indexed() bool {
	return t.Index != nil
}

func (t HourlyTable) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

func (t HourlyTable) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Head returns a table limited to the first n rows. The backing arrays are shared.
func (t HourlyTable) Head(n int) HourlyTable {
	if n < 0 {
		n = 0
	}
	if n >= t.Len() {
		return t
	}

	out := HourlyTable{Columns: make([]Column, len(t.Columns))}
	if t.Index != nil {
		out.Index = t.Index[:n]
	}
	for i, c := range t.Columns {
		out.Columns[i] = Column{Name: c.Name, Values: c.Values[:n]}
	}
	return out
}

// NormalizeHourly turns the response's "hourly" block into a table with
// display labels. A missing or empty block yields an empty table. Any
// malformed timestamp, non-array field or length mismatch fails the whole table.
func NormalizeHourly(r WeatherResponse) (HourlyTable, error) {
	raw, ok := r["hourly"]
	if !ok || raw == nil {
		return HourlyTable{}, nil
	}

	hourly, ok := raw.(map[string]any)
	if !ok {
		return HourlyTable{}, &ParseError{Field: "hourly", Index: -1, Value: raw, Err: fmt.Errorf("expected object, got %T", raw)}
	}
	if len(hourly) == 0 {
		return HourlyTable{}, nil
	}

	arrays, err := hourlyArrays(hourly)
	if err != nil {
		return HourlyTable{}, err
	}

	var table HourlyTable

	if times, ok := arrays[FieldTime]; ok {
		loc := r.location()
		table.Index = make([]time.Time, len(times))
		for i, v := range times {
			ts, err := parseTimestamp(v, loc)
			if err != nil {
				return HourlyTable{}, &ParseError{Field: FieldTime, Index: i, Value: v, Err: err}
			}
			table.Index[i] = ts
		}
	}

	for _, field := range columnOrder(arrays) {
		values := make([]any, len(arrays[field]))
		copy(values, arrays[field])
		table.Columns = append(table.Columns, Column{Name: DisplayLabel(field), Values: values})
	}

	return table, nil
}

func hourlyArrays(hourly map[string]any) (map[string][]any, error) {
	keys := make([]string, 0, len(hourly))
	for k := range hourly {
		if k != FieldTime {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := hourly[FieldTime]; ok {
		keys = append([]string{FieldTime}, keys...)
	}

	arrays := make(map[string][]any, len(keys))
	rows := -1
	for _, k := range keys {
		values, ok := hourly[k].([]any)
		if !ok {
			return nil, &ParseError{Field: k, Index: -1, Value: hourly[k], Err: fmt.Errorf("expected array, got %T", hourly[k])}
		}
		if rows >= 0 && len(values) != rows {
			return nil, &ParseError{Field: k, Index: -1, Value: len(values), Err: fmt.Errorf("%w: got %d, want %d", errLengthMismatch, len(values), rows)}
		}
		rows = len(values)
		arrays[k] = values
	}
	return arrays, nil
}

// columnOrder puts the known variables first in display order, then any
// other fields sorted by name.
func columnOrder(arrays map[string][]any) []string {
	var order []string
	for _, f := range HourlyFields {
		if _, ok := arrays[f]; ok {
			order = append(order, f)
		}
	}

	var extra []string
	for k := range arrays {
		if k == FieldTime {
			continue
		}
		if _, known := displayLabels[k]; known {
			continue
		}
		extra = append(extra, k)
	}
	sort.Strings(extra)

	return append(order, extra...)
}

func parseTimestamp(v any, loc *time.Location) (time.Time, error) {
	switch ts := v.(type) {
	case string:
		for _, layout := range timeLayouts {
			if t, err := time.ParseInLocation(layout, ts, loc); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognised timestamp %q", ts)
	case float64:
		sec, frac := math.Modf(ts)
		return time.Unix(int64(sec), int64(frac*1e9)).In(loc), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", v)
	}
}

// location returns the fixed zone described by utc_offset_seconds, or UTC.
func (r WeatherResponse) location() *time.Location {
	offset, ok := r["utc_offset_seconds"].(float64)
	if !ok {
		return time.UTC
	}
	name, _ := r["timezone_abbreviation"].(string)
	if name == "" {
		name = r.Timezone()
	}
	return time.FixedZone(name, int(offset))
}
