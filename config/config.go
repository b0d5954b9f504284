package config

import (
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"time"
)

const (
	DriverNone     = ""
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// MinHTTPTimeout is the smallest handler budget that still covers a full
	// forecast call, which is always allowed 10 seconds.
	MinHTTPTimeout = 10
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBDriver   string
	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string
	SQLitePath string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	OpenMeteoBaseURL string

	ChartRows    int
	TableRows    int
	MapCenterLat float64
	MapCenterLon float64
	MapZoom      int
}

func LoadConfig() (*Config, error) {
	return loadConfig(".")
}

func loadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-dashboard")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_TIMEOUT", 15)
	v.SetDefault("OPEN_METEO_BASE_URL", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("DATABASE_DRIVER", DriverNone)
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("SQLITE_PATH", "weather-dashboard.db")
	v.SetDefault("CHART_ROWS", 48)
	v.SetDefault("TABLE_ROWS", 72)
	v.SetDefault("MAP_CENTER_LAT", 36.5)
	v.SetDefault("MAP_CENTER_LON", 127.8)
	v.SetDefault("MAP_ZOOM", 4)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:      v.GetString("SERVICE_NAME"),
		ServerAddress:    v.GetString("SERVER_ADDRESS"),
		DBDriver:         v.GetString("DATABASE_DRIVER"),
		DBName:           v.GetString("DATABASE_NAME"),
		DBPassword:       v.GetString("DATABASE_PASSWORD"),
		DBUser:           v.GetString("DATABASE_USER"),
		DBPort:           v.GetString("DATABASE_PORT"),
		DBHost:           v.GetString("DATABASE_HOST"),
		SQLitePath:       v.GetString("SQLITE_PATH"),
		Env:              v.GetString("ENV"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		HTTPTimeout:      v.GetInt32("HTTP_TIMEOUT"),
		OpenMeteoBaseURL: v.GetString("OPEN_METEO_BASE_URL"),
		ChartRows:        v.GetInt("CHART_ROWS"),
		TableRows:        v.GetInt("TABLE_ROWS"),
		MapCenterLat:     v.GetFloat64("MAP_CENTER_LAT"),
		MapCenterLon:     v.GetFloat64("MAP_CENTER_LON"),
		MapZoom:          v.GetInt("MAP_ZOOM"),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case DriverNone, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DBDriver)
	}

	if c.HTTPTimeout < MinHTTPTimeout {
		return fmt.Errorf("HTTP_TIMEOUT must be at least %d seconds, got %d", MinHTTPTimeout, c.HTTPTimeout)
	}

	if c.ChartRows <= 0 || c.TableRows <= 0 {
		return fmt.Errorf("CHART_ROWS and TABLE_ROWS must be positive, got %d and %d", c.ChartRows, c.TableRows)
	}

	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

// LookupLogEnabled reports whether lookups are persisted.
func (c *Config) LookupLogEnabled() bool {
	return c.DBDriver != DriverNone
}
