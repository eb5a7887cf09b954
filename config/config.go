package config

import (
	"fmt"
	"os"

	"github.com/danrneal/fyyur/internal/forms"
	"github.com/danrneal/fyyur/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

func LoadConfig() (*Config, error) {
	return &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
	}, nil
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	seedGenres(db)

	return db, nil
}

// Migrate brings the schema up to date for every entity in the directory.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Area{},
		&models.Genre{},
		&models.Venue{},
		&models.Artist{},
		&models.Show{},
		&models.Music{},
		&models.Unavailability{},
	)
}

func seedGenres(db *gorm.DB) {
	for _, name := range forms.GenreChoices {
		var existingGenre models.Genre
		result := db.Where("name = ?", name).First(&existingGenre)
		if result.Error != nil {
			db.Create(&models.Genre{Name: name})
		}
	}
}
