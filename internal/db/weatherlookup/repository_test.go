package weatherlookup_test

import (
	"database/sql"
	"errors"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"testing"
	"time"
	"ulascansenturk/weather-dashboard/internal/db/weatherlookup"
)

type LookupRepositorySuite struct {
	suite.Suite
	DB   *gorm.DB
	mock sqlmock.Sqlmock
	repo weatherlookup.Repository
}

func (s *LookupRepositorySuite) SetupSuite() {
	var err error

	var db *sql.DB
	db, s.mock, err = sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	s.Require().NoError(err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	s.DB, err = gorm.Open(dialector, &gorm.Config{})
	s.Require().NoError(err)

	s.repo = weatherlookup.NewRepository(s.DB)
}

func (s *LookupRepositorySuite) TearDownTest() {
	s.Require().NoError(s.mock.ExpectationsWereMet())
}

func (s *LookupRepositorySuite) TestLogLookup() {
	s.Run("Successfully logs a lookup", func() {
		lookup := &weatherlookup.WeatherLookup{
			RequestID:  "6f1c2f0e-8a53-4c55-9f7a-0d1f2a3b4c5d",
			Latitude:   37.5665,
			Longitude:  126.978,
			HasCurrent: true,
			HourlyRows: 168,
			DurationMs: 120,
		}

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "weather_lookups"`).
			WithArgs(
				lookup.RequestID,
				lookup.Latitude,
				lookup.Longitude,
				lookup.HasCurrent,
				lookup.HourlyRows,
				"",
				lookup.DurationMs,
				sqlmock.AnyArg(),
			).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		s.mock.ExpectCommit()

		err := s.repo.LogLookup(lookup)

		s.Require().NoError(err)
		s.Require().Equal(uint(1), lookup.ID)
		s.Require().False(lookup.CreatedAt.IsZero())
	})

	s.Run("Returns error when database operation fails", func() {
		lookup := &weatherlookup.WeatherLookup{
			RequestID: "0b8d4c1e-2f3a-4b5c-8d9e-0f1a2b3c4d5e",
			Latitude:  -33.8688,
			Longitude: 151.2093,
			Error:     "forecast request failed with status 502",
		}
		dbError := errors.New("database error")

		s.mock.ExpectBegin()
		s.mock.ExpectQuery(`INSERT INTO "weather_lookups"`).
			WithArgs(
				lookup.RequestID,
				lookup.Latitude,
				lookup.Longitude,
				false,
				0,
				lookup.Error,
				int64(0),
				sqlmock.AnyArg(),
			).
			WillReturnError(dbError)
		s.mock.ExpectRollback()

		err := s.repo.LogLookup(lookup)

		s.Require().Error(err)
		s.Require().Equal("database error", err.Error())
	})
}

func (s *LookupRepositorySuite) TestGetRecentLookups() {
	queryRegex := `SELECT \* FROM "weather_lookups" ORDER BY created_at DESC LIMIT \$1`

	s.Run("Returns lookups newest first", func() {
		now := time.Now()

		rows := sqlmock.NewRows([]string{
			"id", "request_id", "latitude", "longitude", "has_current",
			"hourly_rows", "error", "duration_ms", "created_at",
		}).
			AddRow(2, "b", 51.5072, -0.1276, true, 168, "", 80, now).
			AddRow(1, "a", 35.6762, 139.6503, false, 0, "timeout", 10000, now.Add(-time.Minute))

		s.mock.ExpectQuery(queryRegex).
			WithArgs(10).
			WillReturnRows(rows)

		result, err := s.repo.GetRecentLookups(10)

		s.Require().NoError(err)
		s.Require().Len(result, 2)
		s.Require().Equal("b", result[0].RequestID)
		s.Require().Equal(168, result[0].HourlyRows)
		s.Require().Equal("timeout", result[1].Error)
	})

	s.Run("Clamps the limit", func() {
		s.mock.ExpectQuery(queryRegex).
			WithArgs(weatherlookup.MaxRecentLookups).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		result, err := s.repo.GetRecentLookups(1000)

		s.Require().NoError(err)
		s.Require().Empty(result)
	})

	s.Run("Returns error when database query fails", func() {
		dbError := errors.New("connection error")

		s.mock.ExpectQuery(queryRegex).
			WithArgs(5).
			WillReturnError(dbError)

		result, err := s.repo.GetRecentLookups(5)

		s.Require().Error(err)
		s.Require().Equal("connection error", err.Error())
		s.Require().Nil(result)
	})
}

func TestLookupRepositorySuite(t *testing.T) {
	suite.Run(t, new(LookupRepositorySuite))
}
