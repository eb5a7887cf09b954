package service

import (
	"testing"
	"time"

	"github.com/danrneal/fyyur/config"
	"github.com/danrneal/fyyur/internal/models"
	"github.com/danrneal/fyyur/internal/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// a second pooled connection would see a different empty in-memory db
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

type testEnv struct {
	db       *gorm.DB
	venues   VenueService
	artists  ArtistService
	shows    ShowService
	listings ListingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)

	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	areaRepo := repository.NewAreaRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	showRepo := repository.NewShowRepository(db)
	musicRepo := repository.NewMusicRepository(db)
	unavailabilityRepo := repository.NewUnavailabilityRepository(db)

	return &testEnv{
		db:       db,
		venues:   NewVenueService(venueRepo, areaRepo, genreRepo, showRepo),
		artists:  NewArtistService(artistRepo, areaRepo, genreRepo, showRepo, musicRepo, unavailabilityRepo),
		shows:    NewShowService(showRepo, venueRepo, artistRepo, unavailabilityRepo),
		listings: NewListingService(venueRepo, artistRepo),
	}
}

func (e *testEnv) createArea(t *testing.T, city, state string) models.Area {
	t.Helper()
	area := models.Area{City: city, State: state}
	require.NoError(t, e.db.Create(&area).Error)
	return area
}

func (e *testEnv) createVenue(t *testing.T, name string, areaID uint, createdAt time.Time) models.Venue {
	t.Helper()
	venue := models.Venue{
		Name:      name,
		Address:   "1 Main Street",
		AreaID:    areaID,
		CreatedAt: createdAt,
	}
	require.NoError(t, e.db.Create(&venue).Error)
	return venue
}

func (e *testEnv) createArtist(t *testing.T, name string, areaID uint, createdAt time.Time) models.Artist {
	t.Helper()
	artist := models.Artist{
		Name:      name,
		AreaID:    areaID,
		CreatedAt: createdAt,
	}
	require.NoError(t, e.db.Create(&artist).Error)
	return artist
}

func (e *testEnv) countRows(t *testing.T, model any) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(model).Count(&count).Error)
	return count
}
