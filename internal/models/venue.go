package models

import (
	"time"
)

type Venue struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Name               string    `gorm:"not null;uniqueIndex:idx_venues_name_address_area" json:"name"`
	Address            string    `gorm:"size:120;not null;uniqueIndex:idx_venues_name_address_area" json:"address"`
	AreaID             uint      `gorm:"not null;uniqueIndex:idx_venues_name_address_area" json:"area_id"`
	Area               Area      `json:"area"`
	Genres             []Genre   `gorm:"many2many:venue_genres;" json:"genres"`
	Phone              string    `gorm:"size:120" json:"phone"`
	Website            string    `gorm:"size:120" json:"website"`
	FacebookLink       string    `gorm:"size:120" json:"facebook_link"`
	SeekingTalent      bool      `gorm:"not null;default:false" json:"seeking_talent"`
	SeekingDescription string    `gorm:"size:500" json:"seeking_description"`
	ImageLink          string    `gorm:"size:500" json:"image_link"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
	Shows              []Show    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
