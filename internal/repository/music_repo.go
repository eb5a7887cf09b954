package repository

import (
	"context"

	"github.com/danrneal/fyyur/internal/models"
	"gorm.io/gorm"
)

type MusicRepository interface {
	Create(ctx context.Context, tx *gorm.DB, music *models.Music) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error)
	DeleteByArtistID(ctx context.Context, tx *gorm.DB, artistID uint) error
}

type musicRepository struct {
	db *gorm.DB
}

func NewMusicRepository(db *gorm.DB) MusicRepository {
	return &musicRepository{db: db}
}

func (r *musicRepository) Create(ctx context.Context, tx *gorm.DB, music *models.Music) error {
	return tx.WithContext(ctx).Create(music).Error
}

func (r *musicRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	result := tx.WithContext(ctx).Delete(&models.Music{}, id)
	return result.RowsAffected, result.Error
}

func (r *musicRepository) DeleteByArtistID(ctx context.Context, tx *gorm.DB, artistID uint) error {
	return tx.WithContext(ctx).Where("artist_id = ?", artistID).Delete(&models.Music{}).Error
}
