package weatherlookup

import (
	"time"
)

// WeatherLookup records one dashboard request. It holds no forecast values.
type WeatherLookup struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	RequestID  string    `json:"request_id" gorm:"column:request_id;size:36;uniqueIndex:idx_request_id"`
	Latitude   float64   `json:"latitude" gorm:"column:latitude"`
	Longitude  float64   `json:"longitude" gorm:"column:longitude"`
	HasCurrent bool      `json:"has_current" gorm:"column:has_current"`
	HourlyRows int       `json:"hourly_rows" gorm:"column:hourly_rows"`
	Error      string    `json:"error,omitempty" gorm:"column:error"`
	DurationMs int64     `json:"duration_ms" gorm:"column:duration_ms"`
	CreatedAt  time.Time `json:"created_at" gorm:"index:idx_created_at"`
}

func (WeatherLookup) TableName() string {
	return "weather_lookups"
}
