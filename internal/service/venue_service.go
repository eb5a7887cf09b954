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

var ErrVenueNotFound = errors.New("venue not found")

// VenueDetail is a venue with its shows split into past and upcoming
// relative to the wall clock at read time.
type VenueDetail struct {
	models.Venue
	PastShows          []ShowSummary `json:"past_shows"`
	UpcomingShows      []ShowSummary `json:"upcoming_shows"`
	PastShowsCount     int           `json:"past_shows_count"`
	UpcomingShowsCount int           `json:"upcoming_shows_count"`
}

// AreaVenues groups the venues located in one city, state.
type AreaVenues struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []models.Venue `json:"venues"`
}

type VenueService interface {
	CreateVenue(ctx context.Context, form *forms.VenueForm) (*models.Venue, error)
	UpdateVenue(ctx context.Context, id uint, form *forms.VenueForm) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id uint) (*models.Venue, error)
	GetVenue(ctx context.Context, id uint, now time.Time) (*VenueDetail, error)
	ListVenuesByArea(ctx context.Context) ([]AreaVenues, error)
	SearchVenues(ctx context.Context, term string) ([]models.Venue, error)
}

type venueService struct {
	venueRepo repository.VenueRepository
	areaRepo  repository.AreaRepository
	genreRepo repository.GenreRepository
	showRepo  repository.ShowRepository
}

func NewVenueService(
	venueRepo repository.VenueRepository,
	areaRepo repository.AreaRepository,
	genreRepo repository.GenreRepository,
	showRepo repository.ShowRepository,
) VenueService {
	return &venueService{
		venueRepo: venueRepo,
		areaRepo:  areaRepo,
		genreRepo: genreRepo,
		showRepo:  showRepo,
	}
}

func (s *venueService) CreateVenue(ctx context.Context, form *forms.VenueForm) (*models.Venue, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	var venue *models.Venue
	err := s.venueRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		area, err := s.areaRepo.FindOrCreate(ctx, tx, form.City, form.State)
		if err != nil {
			return fmt.Errorf("resolving area: %w", err)
		}

		genres, err := s.genreRepo.FindOrCreateByNames(ctx, tx, form.Genres)
		if err != nil {
			return fmt.Errorf("resolving genres: %w", err)
		}

		venue = &models.Venue{
			Name:               form.Name,
			Address:            form.Address,
			AreaID:             area.ID,
			Genres:             genres,
			Phone:              form.Phone,
			Website:            form.Website,
			FacebookLink:       form.FacebookLink,
			SeekingTalent:      form.SeekingTalent,
			SeekingDescription: form.SeekingDescription,
			ImageLink:          form.ImageLink,
		}
		return s.venueRepo.Create(ctx, tx, venue)
	})
	if err != nil {
		return nil, err
	}
	return venue, nil
}

// UpdateVenue replaces every mutable field of the venue, including its genre
// set, from the submitted form.
func (s *venueService) UpdateVenue(ctx context.Context, id uint, form *forms.VenueForm) (*models.Venue, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	var venue *models.Venue
	err := s.venueRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.venueRepo.FindByIDInTx(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
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
		existing.Address = form.Address
		existing.AreaID = area.ID
		existing.Phone = form.Phone
		existing.Website = form.Website
		existing.FacebookLink = form.FacebookLink
		existing.SeekingTalent = form.SeekingTalent
		existing.SeekingDescription = form.SeekingDescription
		existing.ImageLink = form.ImageLink

		if err := s.venueRepo.Save(ctx, tx, existing); err != nil {
			return err
		}
		if err := s.venueRepo.ReplaceGenres(ctx, tx, existing, genres); err != nil {
			return err
		}

		venue = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return venue, nil
}

// DeleteVenue removes the venue and all of its shows in one transaction. The
// venue's area and genres are shared and survive the delete.
func (s *venueService) DeleteVenue(ctx context.Context, id uint) (*models.Venue, error) {
	var venue *models.Venue
	err := s.venueRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.venueRepo.FindByIDInTx(ctx, tx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return err
		}

		if err := s.showRepo.DeleteByVenueID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.venueRepo.ClearGenres(ctx, tx, existing); err != nil {
			return err
		}

		rows, err := s.venueRepo.Delete(ctx, tx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrVenueNotFound
		}

		venue = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *venueService) GetVenue(ctx context.Context, id uint, now time.Time) (*VenueDetail, error) {
	venue, err := s.venueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	past, upcoming := SplitShows(venue.Shows, now)
	detail := &VenueDetail{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}
	return detail, nil
}

func (s *venueService) ListVenuesByArea(ctx context.Context) ([]AreaVenues, error) {
	areas, err := s.areaRepo.FindAllWithVenues(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make([]AreaVenues, 0, len(areas))
	for _, area := range areas {
		if len(area.Venues) == 0 {
			continue
		}
		grouped = append(grouped, AreaVenues{
			City:   area.City,
			State:  area.State,
			Venues: area.Venues,
		})
	}
	return grouped, nil
}

func (s *venueService) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	return s.venueRepo.Search(ctx, term)
}
