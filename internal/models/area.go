package models

// Area is a normalized (city, state) pair shared by venues and artists.
type Area struct {
	ID      uint     `gorm:"primaryKey" json:"id"`
	City    string   `gorm:"size:120;not null;uniqueIndex:idx_areas_city_state" json:"city"`
	State   string   `gorm:"size:120;not null;uniqueIndex:idx_areas_city_state" json:"state"`
	Venues  []Venue  `json:"-"`
	Artists []Artist `json:"-"`
}
