package repository

import (
	"context"
	"strings"

	"github.com/danrneal/fyyur/internal/models"
	"gorm.io/gorm"
)

type ArtistRepository interface {
	Create(ctx context.Context, tx *gorm.DB, artist *models.Artist) error
	Save(ctx context.Context, tx *gorm.DB, artist *models.Artist) error
	ReplaceGenres(ctx context.Context, tx *gorm.DB, artist *models.Artist, genres []models.Genre) error
	ClearGenres(ctx context.Context, tx *gorm.DB, artist *models.Artist) error
	FindByID(ctx context.Context, id uint) (*models.Artist, error)
	FindByIDInTx(ctx context.Context, tx *gorm.DB, id uint) (*models.Artist, error)
	FindAll(ctx context.Context) ([]models.Artist, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error)
	Search(ctx context.Context, term string) ([]models.Artist, error)
	FindRecent(ctx context.Context, limit int) ([]models.Artist, error)
	GetDB() *gorm.DB
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *artistRepository) Create(ctx context.Context, tx *gorm.DB, artist *models.Artist) error {
	return tx.WithContext(ctx).Create(artist).Error
}

func (r *artistRepository) Save(ctx context.Context, tx *gorm.DB, artist *models.Artist) error {
	return tx.WithContext(ctx).Save(artist).Error
}

func (r *artistRepository) ReplaceGenres(ctx context.Context, tx *gorm.DB, artist *models.Artist, genres []models.Genre) error {
	return tx.WithContext(ctx).Model(artist).Association("Genres").Replace(genres)
}

func (r *artistRepository) ClearGenres(ctx context.Context, tx *gorm.DB, artist *models.Artist) error {
	return tx.WithContext(ctx).Model(artist).Association("Genres").Clear()
}

func (r *artistRepository) FindByIDInTx(ctx context.Context, tx *gorm.DB, id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := tx.WithContext(ctx).First(&artist, id).Error; err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	var artist models.Artist
	err := r.db.WithContext(ctx).
		Preload("Area").
		Preload("Genres").
		Preload("Shows").
		Preload("Shows.Venue").
		Preload("Shows.Artist").
		Preload("Unavailabilities").
		Preload("Music").
		First(&artist, id).Error
	if err != nil {
		return nil, err
	}
	return &artist, nil
}

func (r *artistRepository) FindAll(ctx context.Context) ([]models.Artist, error) {
	var artists []models.Artist
	err := r.db.WithContext(ctx).
		Preload("Area").
		Order("name ASC").
		Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	result := tx.WithContext(ctx).Delete(&models.Artist{}, id)
	return result.RowsAffected, result.Error
}

// Search matches the term case-insensitively against the artist name and
// against its area's city and state.
func (r *artistRepository) Search(ctx context.Context, term string) ([]models.Artist, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var artists []models.Artist
	err := r.db.WithContext(ctx).
		Joins("JOIN areas ON areas.id = artists.area_id").
		Where(
			"LOWER(artists.name) LIKE ? OR LOWER(areas.city) LIKE ? OR LOWER(areas.state) LIKE ?",
			pattern, pattern, pattern,
		).
		Preload("Area").
		Preload("Genres").
		Order("artists.name ASC").
		Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *artistRepository) FindRecent(ctx context.Context, limit int) ([]models.Artist, error) {
	var artists []models.Artist
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}
