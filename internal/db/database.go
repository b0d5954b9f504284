package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"ulascansenturk/weather-dashboard/config"
	"ulascansenturk/weather-dashboard/internal/db/weatherlookup"
)

// Open connects to the configured lookup log database and migrates its schema.
func Open(conf *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch conf.DBDriver {
	case config.DriverPostgres:
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			conf.DBHost, conf.DBPort, conf.DBUser, conf.DBPassword, conf.DBName,
		)
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(conf.SQLitePath)
	default:
		return nil, fmt.Errorf("lookup log disabled: unsupported driver %q", conf.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&weatherlookup.WeatherLookup{}); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if conf.DBDriver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	}

	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(3 * time.Minute)

	return db, nil
}
