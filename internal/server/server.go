package server

import (
	"fmt"
	"os"

	"github.com/danrneal/fyyur/config"
	"github.com/danrneal/fyyur/internal/handlers"
	"github.com/danrneal/fyyur/internal/middleware"
	"github.com/danrneal/fyyur/internal/repository"
	"github.com/danrneal/fyyur/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()
	r.Use(middleware.RequestID())

	setupRoutes(r, db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB) {
	venueRepo := repository.NewVenueRepository(db)
	artistRepo := repository.NewArtistRepository(db)
	areaRepo := repository.NewAreaRepository(db)
	genreRepo := repository.NewGenreRepository(db)
	showRepo := repository.NewShowRepository(db)
	musicRepo := repository.NewMusicRepository(db)
	unavailabilityRepo := repository.NewUnavailabilityRepository(db)

	venueService := service.NewVenueService(venueRepo, areaRepo, genreRepo, showRepo)
	artistService := service.NewArtistService(artistRepo, areaRepo, genreRepo, showRepo, musicRepo, unavailabilityRepo)
	showService := service.NewShowService(showRepo, venueRepo, artistRepo, unavailabilityRepo)
	listingService := service.NewListingService(venueRepo, artistRepo)

	homeHandler := handlers.NewHomeHandler(listingService)
	venueHandler := handlers.NewVenueHandler(venueService)
	artistHandler := handlers.NewArtistHandler(artistService)
	showHandler := handlers.NewShowHandler(showService)

	r.GET("/", homeHandler.Home)

	venues := r.Group("/venues")
	{
		venues.GET("", venueHandler.ListVenues)
		venues.GET("/:id", venueHandler.GetVenue)
		venues.POST("", venueHandler.CreateVenue)
		venues.POST("/search", venueHandler.SearchVenues)
		venues.PUT("/:id", venueHandler.UpdateVenue)
		venues.DELETE("/:id", venueHandler.DeleteVenue)
	}

	artists := r.Group("/artists")
	{
		artists.GET("", artistHandler.ListArtists)
		artists.GET("/:id", artistHandler.GetArtist)
		artists.POST("", artistHandler.CreateArtist)
		artists.POST("/search", artistHandler.SearchArtists)
		artists.PUT("/:id", artistHandler.UpdateArtist)
		artists.DELETE("/:id", artistHandler.DeleteArtist)
		artists.POST("/:id/music", artistHandler.CreateMusic)
		artists.POST("/:id/unavailability", artistHandler.CreateUnavailability)
	}

	r.DELETE("/music/:id", artistHandler.DeleteMusic)
	r.DELETE("/unavailability/:id", artistHandler.DeleteUnavailability)

	shows := r.Group("/shows")
	{
		shows.GET("", showHandler.ListShows)
		shows.POST("", showHandler.CreateShow)
	}
}
