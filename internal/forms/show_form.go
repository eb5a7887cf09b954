package forms

import (
	"time"
)

// ShowForm is the submission payload for booking a show.
type ShowForm struct {
	VenueID   uint      `json:"venue_id"`
	ArtistID  uint      `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

func (f *ShowForm) Validate() *ValidationError {
	var c errorCollector
	if f.VenueID == 0 {
		c.add("venue_id", "This field is required.")
	}
	if f.ArtistID == 0 {
		c.add("artist_id", "This field is required.")
	}
	if f.StartTime.IsZero() {
		c.add("start_time", "This field is required.")
	}
	return c.result()
}
