package repository

import (
	"context"
	"strings"

	"github.com/danrneal/fyyur/internal/models"
	"gorm.io/gorm"
)

type VenueRepository interface {
	Create(ctx context.Context, tx *gorm.DB, venue *models.Venue) error
	Save(ctx context.Context, tx *gorm.DB, venue *models.Venue) error
	ReplaceGenres(ctx context.Context, tx *gorm.DB, venue *models.Venue, genres []models.Genre) error
	ClearGenres(ctx context.Context, tx *gorm.DB, venue *models.Venue) error
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	FindByIDInTx(ctx context.Context, tx *gorm.DB, id uint) (*models.Venue, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error)
	Search(ctx context.Context, term string) ([]models.Venue, error)
	FindRecent(ctx context.Context, limit int) ([]models.Venue, error)
	GetDB() *gorm.DB
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *venueRepository) Create(ctx context.Context, tx *gorm.DB, venue *models.Venue) error {
	return tx.WithContext(ctx).Create(venue).Error
}

func (r *venueRepository) Save(ctx context.Context, tx *gorm.DB, venue *models.Venue) error {
	return tx.WithContext(ctx).Save(venue).Error
}

func (r *venueRepository) ReplaceGenres(ctx context.Context, tx *gorm.DB, venue *models.Venue, genres []models.Genre) error {
	return tx.WithContext(ctx).Model(venue).Association("Genres").Replace(genres)
}

func (r *venueRepository) ClearGenres(ctx context.Context, tx *gorm.DB, venue *models.Venue) error {
	return tx.WithContext(ctx).Model(venue).Association("Genres").Clear()
}

func (r *venueRepository) FindByIDInTx(ctx context.Context, tx *gorm.DB, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := tx.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	err := r.db.WithContext(ctx).
		Preload("Area").
		Preload("Genres").
		Preload("Shows").
		Preload("Shows.Venue").
		Preload("Shows.Artist").
		First(&venue, id).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) (int64, error) {
	result := tx.WithContext(ctx).Delete(&models.Venue{}, id)
	return result.RowsAffected, result.Error
}

// Search matches the term case-insensitively against the venue name and
// against its area's city and state.
func (r *venueRepository) Search(ctx context.Context, term string) ([]models.Venue, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Joins("JOIN areas ON areas.id = venues.area_id").
		Where(
			"LOWER(venues.name) LIKE ? OR LOWER(areas.city) LIKE ? OR LOWER(areas.state) LIKE ?",
			pattern, pattern, pattern,
		).
		Preload("Area").
		Preload("Genres").
		Order("venues.name ASC").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}

func (r *venueRepository) FindRecent(ctx context.Context, limit int) ([]models.Venue, error) {
	var venues []models.Venue
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}
