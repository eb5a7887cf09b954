package service

import (
	"context"
	"errors"
	"time"

	"github.com/danrneal/fyyur/internal/forms"
	"github.com/danrneal/fyyur/internal/models"
	"github.com/danrneal/fyyur/internal/repository"
	"gorm.io/gorm"
)

var ErrSchedulingConflict = errors.New("artist is unavailable at the requested time")

// ShowSummary is a show joined with the names and images of its venue and
// artist, ready for display.
type ShowSummary struct {
	ID              uint      `json:"id"`
	VenueID         uint      `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistID        uint      `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

type ShowService interface {
	CreateShow(ctx context.Context, form *forms.ShowForm) (*models.Show, error)
	ListShows(ctx context.Context) ([]ShowSummary, error)
}

type showService struct {
	showRepo           repository.ShowRepository
	venueRepo          repository.VenueRepository
	artistRepo         repository.ArtistRepository
	unavailabilityRepo repository.UnavailabilityRepository
}

func NewShowService(
	showRepo repository.ShowRepository,
	venueRepo repository.VenueRepository,
	artistRepo repository.ArtistRepository,
	unavailabilityRepo repository.UnavailabilityRepository,
) ShowService {
	return &showService{
		showRepo:           showRepo,
		venueRepo:          venueRepo,
		artistRepo:         artistRepo,
		unavailabilityRepo: unavailabilityRepo,
	}
}

// IsUnavailableAt reports whether start falls strictly inside any of the
// given windows. Boundary instants are bookable: a show may start at the
// exact moment a window opens or closes.
func IsUnavailableAt(windows []models.Unavailability, start time.Time) bool {
	for _, window := range windows {
		if window.StartTime.Before(start) && start.Before(window.EndTime) {
			return true
		}
	}
	return false
}

// SplitShows partitions shows into past and upcoming relative to now. Shows
// starting at exactly now count as upcoming.
func SplitShows(shows []models.Show, now time.Time) (past, upcoming []ShowSummary) {
	past = []ShowSummary{}
	upcoming = []ShowSummary{}
	for _, show := range shows {
		summary := summarize(show)
		if show.StartTime.Before(now) {
			past = append(past, summary)
		} else {
			upcoming = append(upcoming, summary)
		}
	}
	return past, upcoming
}

func summarize(show models.Show) ShowSummary {
	return ShowSummary{
		ID:              show.ID,
		VenueID:         show.VenueID,
		VenueName:       show.Venue.Name,
		VenueImageLink:  show.Venue.ImageLink,
		ArtistID:        show.ArtistID,
		ArtistName:      show.Artist.Name,
		ArtistImageLink: show.Artist.ImageLink,
		StartTime:       show.StartTime,
	}
}

func (s *showService) CreateShow(ctx context.Context, form *forms.ShowForm) (*models.Show, error) {
	if verr := form.Validate(); verr != nil {
		return nil, verr
	}

	var show *models.Show
	err := s.showRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.venueRepo.FindByIDInTx(ctx, tx, form.VenueID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrVenueNotFound
			}
			return err
		}
		if _, err := s.artistRepo.FindByIDInTx(ctx, tx, form.ArtistID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrArtistNotFound
			}
			return err
		}

		windows, err := s.unavailabilityRepo.FindByArtistID(ctx, tx, form.ArtistID)
		if err != nil {
			return err
		}
		if IsUnavailableAt(windows, form.StartTime) {
			return ErrSchedulingConflict
		}

		show = &models.Show{
			VenueID:   form.VenueID,
			ArtistID:  form.ArtistID,
			StartTime: form.StartTime,
		}
		return s.showRepo.Create(ctx, tx, show)
	})
	if err != nil {
		return nil, err
	}
	return show, nil
}

func (s *showService) ListShows(ctx context.Context) ([]ShowSummary, error) {
	shows, err := s.showRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ShowSummary, 0, len(shows))
	for _, show := range shows {
		summaries = append(summaries, summarize(show))
	}
	return summaries, nil
}
