package weatherlookup

import (
	"time"

	"gorm.io/gorm"
)

const MaxRecentLookups = 100

type Repository interface {
	LogLookup(lookup *WeatherLookup) error
	GetRecentLookups(limit int) ([]WeatherLookup, error)
}

type LookupSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &LookupSQLRepository{db: db}
}

func (r *LookupSQLRepository) LogLookup(lookup *WeatherLookup) error {
	if lookup.CreatedAt.IsZero() {
		lookup.CreatedAt = time.Now()
	}
	return r.db.Create(lookup).Error
}

// GetRecentLookups returns up to limit lookups, newest first. limit is clamped to [1, MaxRecentLookups].
func (r *LookupSQLRepository) GetRecentLookups(limit int) ([]WeatherLookup, error) {
	if limit <= 0 {
		limit = 1
	}
	if limit > MaxRecentLookups {
		limit = MaxRecentLookups
	}

	var lookups []WeatherLookup
	err := r.db.Order("created_at DESC").Limit(limit).Find(&lookups).Error
	if err != nil {
		return nil, err
	}
	return lookups, nil
}
