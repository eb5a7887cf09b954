package models

import (
	"time"
)

type Artist struct {
	ID                 uint             `gorm:"primaryKey" json:"id"`
	Name               string           `gorm:"not null;uniqueIndex:idx_artists_name_area" json:"name"`
	AreaID             uint             `gorm:"not null;uniqueIndex:idx_artists_name_area" json:"area_id"`
	Area               Area             `json:"area"`
	Genres             []Genre          `gorm:"many2many:artist_genres;" json:"genres"`
	Phone              string           `gorm:"size:120" json:"phone"`
	Website            string           `gorm:"size:120" json:"website"`
	FacebookLink       string           `gorm:"size:120" json:"facebook_link"`
	SeekingVenue       bool             `gorm:"not null;default:false" json:"seeking_venue"`
	SeekingDescription string           `gorm:"size:500" json:"seeking_description"`
	ImageLink          string           `gorm:"size:500" json:"image_link"`
	CreatedAt          time.Time        `gorm:"not null" json:"created_at"`
	Shows              []Show           `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Unavailabilities   []Unavailability `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Music              []Music          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
