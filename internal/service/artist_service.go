package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/danrneal/fyyur/internal/forms"
	"github.com/danrneal/fyyur/internal/models"
	"github.com/danrneal/fyyur/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrArtistNotFound         = errors.New("artist not found")
	ErrMusicNotFound          = errors.New("music not found")
	ErrUnavailabilityNotFound = errors.New("unavailability not found")
)

// ArtistDetail is an artist with its shows split into past and upcoming
// relative to the wall clock at read time.
type ArtistDetail struct {
	models.Artist
	PastShows          []ShowSummary `json:"past_shows"`
	UpcomingShows      []ShowSummary `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}

type ArtistService interface {
	CreateArtist(ctx context.Context, form *forms.ArtistForm) (*models.Artist, error)
	UpdateArtist(ctx context.Context, id uint, form *forms.ArtistForm) (*models.Artist, error)
	DeleteArtist(ctx context.Context, id uint) (*models.Artist, error)
	GetArtist(ctx context.Context, id uint, now time.Time) (*ArtistDetail, error)
	ListArtists(ctx context.Context) ([]models.Artist, error)
	SearchArtists(ctx context.Context, term string) ([]models.Artist, error)
	CreateMusic(ctx context.Context, artistID uint, form *forms.MusicForm) (*models.Music, error)
	DeleteMusic(ctx context.Context, id uint) error
	CreateUnavailability(ctx context.Context, artistID uint, form *forms.UnavailabilityForm) (*models.Unavailability, error)
	DeleteUnavailability(ctx context.Context, id uint) error
}

type artistService struct {
	artistRepo         repository.ArtistRepository
	areaRepo           repository.AreaRepository
	genreRepo          repository.GenreRepository
	showRepo           repository.ShowRepository
	musicRepo          repository.MusicRepository
	unavailabilityRepo repository.UnavailabilityRepository
}

func NewArtistService(
	artistRepo repository.ArtistRepository,
	areaRepo repository.AreaRepository,
	genreRepo repository.GenreRepository,
	showRepo repository.ShowRepository,
	musicRepo repository.MusicRepository,
	unavailabilityRepo repository.UnavailabilityRepository,
) ArtistService {
	return &artistService{
		artistRepo:         artistRepo,
		areaRepo:           areaRepo,
		genreRepo:          genreRepo,
		showRepo:           showRepo,
		musicRepo:          musicRepo,
		unavailabilityRepo: unavailabilityRepo,
	}
}

func (s *artistService) CreateArtist(ctx context.Context, form *forms.ArtistForm) (*models.Artist, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	var artist *models.Artist
	err := s.artistRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		area, err := s.areaRepo.FindOrCreate(ctx, tx, form.City, form.State)
		if err != nil {
			return fmt.Errorf("resolving area: %w", err)
		}

		genres, err := s.genreRepo.FindOrCreateByNames(ctx, tx, form.Genres)
		if err != nil {
			return fmt.Errorf("resolving genres: %w", err)
		}

		artist = &models.Artist{
			Name:               form.Name,
			AreaID:             area.ID,
			Genres:             genres,
			Phone:              form.Phone,
			Website:            form.Website,
			FacebookLink:       form.FacebookLink,
			SeekingVenue:       form.SeekingVenue,
			SeekingDescription: form.SeekingDescription,
			ImageLink:          form.ImageLink,
		}
		return s.artistRepo.Create(ctx, tx, artist)
	})
	if err != nil {
		return nil, err
	}
	return artist, nil
}

// UpdateArtist replaces every mutable field of the artist, including its
// genre set, from the submitted form.
func (s *artistService) UpdateArtist(ctx context.Context, id uint, form *forms.ArtistForm) (*models.Artist, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	var artist *models.Artist
	err := s.artistRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.artistRepo.FindByIDInTx(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}
			return err
		}

		area, err := s.areaRepo.FindOrCreate(ctx, tx, form.City, form.State)
		if err != nil {
			return fmt.Errorf("resolving area: %w", err)
		}

		genres, err := s.genreRepo.FindOrCreateByNames(ctx, tx, form.Genres)
		if err != nil {
			return fmt.Errorf("resolving genres: %w", err)
		}

		existing.Name = form.Name
		existing.AreaID = area.ID
		existing.Phone = form.Phone
		existing.Website = form.Website
		existing.FacebookLink = form.FacebookLink
		existing.SeekingVenue = form.SeekingVenue
		existing.SeekingDescription = form.SeekingDescription
		existing.ImageLink = form.ImageLink

		if err := s.artistRepo.Save(ctx, tx, existing); err != nil {
			return err
		}
		if err := s.artistRepo.ReplaceGenres(ctx, tx, existing, genres); err != nil {
			return err
		}

		artist = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return artist, nil
}

// DeleteArtist removes the artist together with its shows, music, and
// unavailability windows in one transaction. Areas and genres are shared and
// survive the delete.
func (s *artistService) DeleteArtist(ctx context.Context, id uint) (*models.Artist, error) {
	var artist *models.Artist
	err := s.artistRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.artistRepo.FindByIDInTx(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}
			return err
		}

		if err := s.showRepo.DeleteByArtistID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.musicRepo.DeleteByArtistID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.unavailabilityRepo.DeleteByArtistID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.artistRepo.ClearGenres(ctx, tx, existing); err != nil {
			return err
		}

		rows, err := s.artistRepo.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrArtistNotFound
		}

		artist = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *artistService) GetArtist(ctx context.Context, id uint, now time.Time) (*ArtistDetail, error) {
	artist, err := s.artistRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}

	past, upcoming := SplitShows(artist.Shows, now)
	detail := &ArtistDetail{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return detail, nil
}

func (s *artistService) ListArtists(ctx context.Context) ([]models.Artist, error) {
	return s.artistRepo.FindAll(ctx)
}

func (s *artistService) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	return s.artistRepo.Search(ctx, term)
}

func (s *artistService) CreateMusic(ctx context.Context, artistID uint, form *forms.MusicForm) (*models.Music, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	var music *models.Music
	err := s.artistRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.artistRepo.FindByIDInTx(ctx, tx, artistID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}
			return err
		}

		music = &models.Music{
			ArtistID: artistID,
			Type:     form.Type,
			Title:    form.Title,
		}
		return s.musicRepo.Create(ctx, tx, music)
	})
	if err != nil {
		return nil, err
	}
	return music, nil
}

func (s *artistService) DeleteMusic(ctx context.Context, id uint) error {
	return s.artistRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.musicRepo.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrMusicNotFound
		}
		return nil
	})
}

func (s *artistService) CreateUnavailability(ctx context.Context, artistID uint, form *forms.UnavailabilityForm) (*models.Unavailability, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	var unavailability *models.Unavailability
	err := s.artistRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.artistRepo.FindByIDInTx(ctx, tx, artistID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}
			return err
		}

		unavailability = &models.Unavailability{
			ArtistID:  artistID,
			StartTime: form.StartTime,
			EndTime:   form.EndTime,
		}
		return s.unavailabilityRepo.Create(ctx, tx, unavailability)
	})
	if err != nil {
		return nil, err
	}
	return unavailability, nil
}

func (s *artistService) DeleteUnavailability(ctx context.Context, id uint) error {
	return s.artistRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.unavailabilityRepo.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrUnavailabilityNotFound
		}
		return nil
	})
}
