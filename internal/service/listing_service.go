package service

import (
	"context"
	"time"

	"github.com/danrneal/fyyur/internal/models"
	"github.com/danrneal/fyyur/internal/repository"
)

// RecentListingsCap is the maximum number of entries on the recently-listed
// feed.
const RecentListingsCap = 9

// Listing kinds.
const (
	KindVenue  = "Venue"
	KindArtist = "Artist"
)

// Listing is one entry of the recently-listed feed, tagged with the kind of
// entity it came from.
type Listing struct {
	Kind      string    `json:"kind"`
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	ImageLink string    `json:"image_link"`
	CreatedAt time.Time `json:"created_at"`
}

type ListingService interface {
	RecentListings(ctx context.Context) ([]Listing, error)
}

type listingService struct {
	venueRepo  repository.VenueRepository
	artistRepo repository.ArtistRepository
}

func NewListingService(venueRepo repository.VenueRepository, artistRepo repository.ArtistRepository) ListingService {
	return &listingService{venueRepo: venueRepo, artistRepo: artistRepo}
}

// RecentListings returns the most recently created venues and artists as one
// feed ordered by creation time, newest first, capped at RecentListingsCap.
// Each side is queried pre-sorted and pre-limited to the cap, then the two
// are merged without re-sorting.
func (s *listingService) RecentListings(ctx context.Context) ([]Listing, error) {
	venues, err := s.venueRepo.FindRecent(ctx, RecentListingsCap)
	if err != nil {
		return nil, err
	}
	artists, err := s.artistRepo.FindRecent(ctx, RecentListingsCap)
	if err != nil {
		return nil, err
	}
	return mergeRecent(venues, artists, RecentListingsCap), nil
}

// mergeRecent interleaves two sequences already sorted by CreatedAt
// descending, newest first, up to cap entries. A tie goes to the venue.
func mergeRecent(venues []models.Venue, artists []models.Artist, limit int) []Listing {
	listings := make([]Listing, 0, limit)
	i, j := 0, 0
	for len(listings) < limit {
		switch {
		case i < len(venues) && j < len(artists):
			if !venues[i].CreatedAt.Before(artists[j].CreatedAt) {
				listings = append(listings, venueListing(venues[i]))
				i++
			} else {
				listings = append(listings, artistListing(artists[j]))
				j++
			}
		case i < len(venues):
			listings = append(listings, venueListing(venues[i]))
			i++
		case j < len(artists):
			listings = append(listings, artistListing(artists[j]))
			j++
		default:
			return listings
		}
	}
	return listings
}

func venueListing(venue models.Venue) Listing {
	return Listing{
		Kind:      KindVenue,
		ID:        venue.ID,
		Name:      venue.Name,
		ImageLink: venue.ImageLink,
		CreatedAt: venue.CreatedAt,
	}
}

func artistListing(artist models.Artist) Listing {
	return Listing{
		Kind:      KindArtist,
		ID:        artist.ID,
		Name:      artist.Name,
		ImageLink: artist.ImageLink,
		CreatedAt: artist.CreatedAt,
	}
}
