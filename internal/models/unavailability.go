package models

import (
	"time"
)

// Unavailability is an interval during which an artist may not be booked.
// The interval is half-open by convention: a show starting exactly at
// StartTime or EndTime does not conflict.
type Unavailability struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArtistID  uint      `gorm:"not null;uniqueIndex:idx_unavailability_artist_start_end" json:"artist_id"`
	StartTime time.Time `gorm:"not null;uniqueIndex:idx_unavailability_artist_start_end;check:start_time < end_time" json:"start_time"`
	EndTime   time.Time `gorm:"not null;uniqueIndex:idx_unavailability_artist_start_end" json:"end_time"`
}

func (Unavailability) TableName() string {
	return "unavailability"
}
