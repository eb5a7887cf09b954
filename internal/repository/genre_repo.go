package repository

import (
	"context"
	"errors"

	"github.com/danrneal/fyyur/internal/models"
	"gorm.io/gorm"
)

type GenreRepository interface {
	FindOrCreateByNames(ctx context.Context, tx *gorm.DB, names []string) ([]models.Genre, error)
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

// FindOrCreateByNames resolves a list of genre names to persisted Genre rows,
// creating any that do not exist yet. Duplicate names in the input collapse
// to a single row each.
func (r *genreRepository) FindOrCreateByNames(ctx context.Context, tx *gorm.DB, names []string) ([]models.Genre, error) {
	genres := make([]models.Genre, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		genre, err := r.findOrCreate(ctx, tx, name)
		if err != nil {
			return nil, err
		}
		genres = append(genres, *genre)
	}
	return genres, nil
}

func (r *genreRepository) findOrCreate(ctx context.Context, tx *gorm.DB, name string) (*models.Genre, error) {
	var genre models.Genre
	err := tx.WithContext(ctx).Where("name = ?", name).First(&genre).Error
	if err == nil {
		return &genre, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	genre = models.Genre{Name: name}
	err = tx.WithContext(ctx).Create(&genre).Error
	if err == nil {
		return &genre, nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, err
	}

	if err := tx.WithContext(ctx).Where("name = ?", name).First(&genre).Error; err != nil {
		return nil, err
	}
	return &genre, nil
}
