package models

import (
	"time"
)

type Show struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	VenueID   uint      `gorm:"not null;uniqueIndex:idx_shows_venue_artist_start" json:"venue_id"`
	Venue     Venue     `json:"-"`
	ArtistID  uint      `gorm:"not null;uniqueIndex:idx_shows_venue_artist_start" json:"artist_id"`
	Artist    Artist    `json:"-"`
	StartTime time.Time `gorm:"not null;uniqueIndex:idx_shows_venue_artist_start" json:"start_time"`
}
