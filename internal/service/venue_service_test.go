package service

import (
	"context"
	"testing"
	"time"

	"github.com/danrneal/fyyur/internal/forms"
	"github.com/danrneal/fyyur/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVenueForm(name string) *forms.VenueForm {
	return &forms.VenueForm{
		Name:    name,
		Genres:  []string{"Jazz", "Blues"},
		Address: "1100 Congress Ave",
		City:    "Austin",
		State:   "TX",
	}
}

func TestCreateVenueCreatesAreaOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	venueA, err := env.venues.CreateVenue(ctx, newVenueForm("Hall A"))
	require.NoError(t, err)
	assert.NotZero(t, venueA.ID)
	assert.EqualValues(t, 1, env.countRows(t, &models.Area{}))
	assert.EqualValues(t, 1, env.countRows(t, &models.Venue{}))

	form := newVenueForm("Hall B")
	form.Address = "200 Guadalupe St"
	venueB, err := env.venues.CreateVenue(ctx, form)
	require.NoError(t, err)

	// same city/state resolves to the existing area
	assert.EqualValues(t, 1, env.countRows(t, &models.Area{}))
	assert.Equal(t, venueA.AreaID, venueB.AreaID)
}

func TestCreateVenueDeduplicatesGenres(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	form := newVenueForm("Hall A")
	form.Genres = []string{"Jazz", "Jazz", "Blues"}
	venue, err := env.venues.CreateVenue(ctx, form)
	require.NoError(t, err)
	assert.Len(t, venue.Genres, 2)
	assert.EqualValues(t, 2, env.countRows(t, &models.Genre{}))

	// a second venue naming the same genres creates no new rows
	second := newVenueForm("Hall B")
	second.Address = "200 Guadalupe St"
	_, err = env.venues.CreateVenue(ctx, second)
	require.NoError(t, err)
	assert.EqualValues(t, 2, env.countRows(t, &models.Genre{}))
}

func TestCreateVenueValidationLeavesNoRows(t *testing.T) {
	env := newTestEnv(t)

	form := newVenueForm("")
	_, err := env.venues.CreateVenue(context.Background(), form)

	var verr *forms.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.First().Field)

	// nothing from the rejected submission may persist, including the
	// area and genres it would have resolved
	assert.EqualValues(t, 0, env.countRows(t, &models.Venue{}))
	assert.EqualValues(t, 0, env.countRows(t, &models.Area{}))
	assert.EqualValues(t, 0, env.countRows(t, &models.Genre{}))
}

func TestUpdateVenueReplacesFieldsAndGenres(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	venue, err := env.venues.CreateVenue(ctx, newVenueForm("Hall A"))
	require.NoError(t, err)

	form := newVenueForm("Hall A Renamed")
	form.City = "Houston"
	form.Genres = []string{"Country"}
	form.Phone = "512-555-0199"
	updated, err := env.venues.UpdateVenue(ctx, venue.ID, form)
	require.NoError(t, err)

	assert.Equal(t, "Hall A Renamed", updated.Name)
	assert.Equal(t, "512-555-0199", updated.Phone)
	assert.NotEqual(t, venue.AreaID, updated.AreaID)

	detail, err := env.venues.GetVenue(ctx, venue.ID, time.Now())
	require.NoError(t, err)
	require.Len(t, detail.Genres, 1)
	assert.Equal(t, "Country", detail.Genres[0].Name)

	// the venue moved areas but the old area row survives
	assert.EqualValues(t, 2, env.countRows(t, &models.Area{}))
}

func TestUpdateVenueNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.venues.UpdateVenue(context.Background(), 42, newVenueForm("Hall A"))
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestDeleteVenueCascadesShows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	venue, err := env.venues.CreateVenue(ctx, newVenueForm("Hall A"))
	require.NoError(t, err)
	area := env.createArea(t, "Houston", "TX")
	other := env.createVenue(t, "Hall B", area.ID, time.Now())
	artist := env.createArtist(t, "Guns N Petals", area.ID, time.Now())

	for _, v := range []uint{venue.ID, other.ID} {
		_, err = env.shows.CreateShow(ctx, &forms.ShowForm{
			VenueID:   v,
			ArtistID:  artist.ID,
			StartTime: time.Date(2024, 7, 1, 20, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
	}

	deleted, err := env.venues.DeleteVenue(ctx, venue.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hall A", deleted.Name)

	// only the deleted venue's show goes with it
	assert.EqualValues(t, 1, env.countRows(t, &models.Show{}))
	assert.EqualValues(t, 1, env.countRows(t, &models.Venue{}))

	// shared rows survive
	assert.EqualValues(t, 2, env.countRows(t, &models.Area{}))
	assert.EqualValues(t, 2, env.countRows(t, &models.Genre{}))

	_, err = env.venues.DeleteVenue(ctx, venue.ID)
	assert.ErrorIs(t, err, ErrVenueNotFound)
}

func TestGetVenueSplitsShows(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	venue, err := env.venues.CreateVenue(ctx, newVenueForm("Hall A"))
	require.NoError(t, err)
	area := env.createArea(t, "Houston", "TX")
	artist := env.createArtist(t, "Guns N Petals", area.ID, time.Now())

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, start := range []time.Time{now.Add(-48 * time.Hour), now.Add(48 * time.Hour)} {
		_, err = env.shows.CreateShow(ctx, &forms.ShowForm{
			VenueID:   venue.ID,
			ArtistID:  artist.ID,
			StartTime: start,
		})
		require.NoError(t, err)
	}

	detail, err := env.venues.GetVenue(ctx, venue.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 1, detail.UpcomingShowsCount)
	require.Len(t, detail.PastShows, 1)
	assert.Equal(t, "Guns N Petals", detail.PastShows[0].ArtistName)
}

func TestListVenuesByArea(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	austin := env.createArea(t, "Austin", "TX")
	sf := env.createArea(t, "San Francisco", "CA")
	env.createArea(t, "Nashville", "TN") // no venues, omitted from groups
	env.createVenue(t, "Hall A", austin.ID, time.Now())
	env.createVenue(t, "Hall B", austin.ID, time.Now())
	env.createVenue(t, "The Fillmore", sf.ID, time.Now())

	groups, err := env.venues.ListVenuesByArea(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// ordered by state then city
	assert.Equal(t, "San Francisco", groups[0].City)
	assert.Len(t, groups[0].Venues, 1)
	assert.Equal(t, "Austin", groups[1].City)
	assert.Len(t, groups[1].Venues, 2)
}

func TestSearchVenues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	austin := env.createArea(t, "Austin", "TX")
	sf := env.createArea(t, "San Francisco", "CA")
	env.createVenue(t, "The Broken Spoke", austin.ID, time.Now())
	env.createVenue(t, "The Fillmore", sf.ID, time.Now())

	// case-insensitive name match
	venues, err := env.venues.SearchVenues(ctx, "fill")
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "The Fillmore", venues[0].Name)

	// area city match
	venues, err = env.venues.SearchVenues(ctx, "austin")
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "The Broken Spoke", venues[0].Name)

	// area state match
	venues, err = env.venues.SearchVenues(ctx, "ca")
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "The Fillmore", venues[0].Name)

	venues, err = env.venues.SearchVenues(ctx, "zzz")
	require.NoError(t, err)
	assert.Empty(t, venues)
}
