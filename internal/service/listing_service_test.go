package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/danrneal/fyyur/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeRecentFullFeed(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// venues at even hours, artists at odd hours, newest first on each side
	var venues []models.Venue
	var artists []models.Artist
	for i := 0; i < 9; i++ {
		venues = append(venues, models.Venue{
			ID:        uint(i + 1),
			Name:      fmt.Sprintf("Venue %d", i),
			CreatedAt: base.Add(-time.Duration(2*i) * time.Hour),
		})
		artists = append(artists, models.Artist{
			ID:        uint(i + 1),
			Name:      fmt.Sprintf("Artist %d", i),
			CreatedAt: base.Add(-time.Duration(2*i+1) * time.Hour),
		})
	}

	listings := mergeRecent(venues, artists, RecentListingsCap)
	require.Len(t, listings, 9)

	for i := 1; i < len(listings); i++ {
		assert.False(t, listings[i-1].CreatedAt.Before(listings[i].CreatedAt),
			"feed must be non-increasing by creation time")
	}

	// interleaved input alternates kinds
	assert.Equal(t, KindVenue, listings[0].Kind)
	assert.Equal(t, KindArtist, listings[1].Kind)
}

func TestMergeRecentShortInputs(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	venues := []models.Venue{
		{ID: 1, CreatedAt: base},
		{ID: 2, CreatedAt: base.Add(-2 * time.Hour)},
		{ID: 3, CreatedAt: base.Add(-4 * time.Hour)},
	}
	artists := []models.Artist{
		{ID: 1, CreatedAt: base.Add(-1 * time.Hour)},
		{ID: 2, CreatedAt: base.Add(-3 * time.Hour)},
	}

	listings := mergeRecent(venues, artists, RecentListingsCap)
	require.Len(t, listings, 5)
	kinds := []string{}
	for _, listing := range listings {
		kinds = append(kinds, listing.Kind)
	}
	assert.Equal(t, []string{KindVenue, KindArtist, KindVenue, KindArtist, KindVenue}, kinds)
}

func TestMergeRecentTieGoesToVenue(t *testing.T) {
	at := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	venues := []models.Venue{{ID: 1, CreatedAt: at}}
	artists := []models.Artist{{ID: 2, CreatedAt: at}}

	listings := mergeRecent(venues, artists, RecentListingsCap)
	require.Len(t, listings, 2)
	assert.Equal(t, KindVenue, listings[0].Kind)
	assert.Equal(t, KindArtist, listings[1].Kind)
}

func TestMergeRecentEmpty(t *testing.T) {
	assert.Empty(t, mergeRecent(nil, nil, RecentListingsCap))
}

func TestRecentListings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	area := env.createArea(t, "San Francisco", "CA")
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// 6 venues and 6 artists; only the newest 9 overall should surface
	for i := 0; i < 6; i++ {
		env.createVenue(t, fmt.Sprintf("Venue %d", i), area.ID, base.Add(-time.Duration(2*i)*time.Hour))
		env.createArtist(t, fmt.Sprintf("Artist %d", i), area.ID, base.Add(-time.Duration(2*i+1)*time.Hour))
	}

	listings, err := env.listings.RecentListings(ctx)
	require.NoError(t, err)
	require.Len(t, listings, RecentListingsCap)

	assert.Equal(t, "Venue 0", listings[0].Name)
	assert.Equal(t, KindVenue, listings[0].Kind)
	assert.Equal(t, "Artist 0", listings[1].Name)
	for i := 1; i < len(listings); i++ {
		assert.False(t, listings[i-1].CreatedAt.Before(listings[i].CreatedAt))
	}
}

func TestRecentListingsFewerThanCap(t *testing.T) {
	env := newTestEnv(t)

	area := env.createArea(t, "San Francisco", "CA")
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		env.createVenue(t, fmt.Sprintf("Venue %d", i), area.ID, base.Add(-time.Duration(i)*time.Hour))
	}
	env.createArtist(t, "Artist 0", area.ID, base.Add(-30*time.Minute))
	env.createArtist(t, "Artist 1", area.ID, base.Add(-90*time.Minute))

	listings, err := env.listings.RecentListings(context.Background())
	require.NoError(t, err)
	assert.Len(t, listings, 5)
}
