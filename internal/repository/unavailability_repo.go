package repository

import (
	"context"

	"github.com/danrneal/fyyur/internal/models"
	"gorm.io/gorm"
)

type UnavailabilityRepository interface {
	Create(ctx context.Context, tx *gorm.DB, unavailability *models.Unavailability) error
	FindByArtistID(ctx context.Context, tx *gorm.DB, artistID uint) ([]models.Unavailability, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error)
	DeleteByArtistID(ctx context.Context, tx *gorm.DB, artistID uint) error
}

type unavailabilityRepository struct {
	db *gorm.DB
}

func NewUnavailabilityRepository(db *gorm.DB) UnavailabilityRepository {
	return &unavailabilityRepository{db: db}
}

func (r *unavailabilityRepository) Create(ctx context.Context, tx *gorm.DB, unavailability *models.Unavailability) error {
	return tx.WithContext(ctx).Create(unavailability).Error
}

func (r *unavailabilityRepository) FindByArtistID(ctx context.Context, tx *gorm.DB, artistID uint) ([]models.Unavailability, error) {
	var windows []models.Unavailability
	err := tx.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (r *unavailabilityRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	result := tx.WithContext(ctx).Delete(&models.Unavailability{}, id)
	return result.RowsAffected, result.Error
}

func (r *unavailabilityRepository) DeleteByArtistID(ctx context.Context, tx *gorm.DB, artistID uint) error {
	return tx.WithContext(ctx).Where("artist_id = ?", artistID).Delete(&models.Unavailability{}).Error
}
