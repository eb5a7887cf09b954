package repository

import (
	"context"
	"errors"

	"github.com/danrneal/fyyur/internal/models"
	"gorm.io/gorm"
)

type AreaRepository interface {
	FindOrCreate(ctx context.Context, tx *gorm.DB, city, state string) (*models.Area, error)
	FindAllWithVenues(ctx context.Context) ([]models.Area, error)
}

type areaRepository struct {
	db *gorm.DB
}

func NewAreaRepository(db *gorm.DB) AreaRepository {
	return &areaRepository{db: db}
}

// FindOrCreate resolves a (city, state) pair to its Area row, inserting one
// if none exists. A lost insert race against a concurrent request is resolved
// by re-fetching on the unique constraint, so the caller can never tell
// whether the returned row is new.
func (r *areaRepository) FindOrCreate(ctx context.Context, tx *gorm.DB, city, state string) (*models.Area, error) {
	var area models.Area
	err := tx.WithContext(ctx).Where("city = ? AND state = ?", city, state).First(&area).Error
	if err == nil {
		return &area, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	area = models.Area{City: city, State: state}
	err = tx.WithContext(ctx).Create(&area).Error
	if err == nil {
		return &area, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	// Someone else inserted the same pair first.
	if err := tx.WithContext(ctx).Where("city = ? AND state = ?", city, state).First(&area).Error; err != nil {
		return nil, err
	}
	return &area, nil
}

func (r *areaRepository) FindAllWithVenues(ctx context.Context) ([]models.Area, error) {
	var areas []models.Area
	err := r.db.WithContext(ctx).
		Preload("Venues").
		Order("state ASC, city ASC").
		Find(&areas).Error
	if err != nil {
		return nil, err
	}
	return areas, nil
}
