package forms

import (
	"time"
)

// UnavailabilityForm is the submission payload for declaring an interval
// during which an artist cannot be booked.
type UnavailabilityForm struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

func (f *UnavailabilityForm) Validate() *ValidationError {
	var c errorCollector
	if f.StartTime.IsZero() {
		c.add("start_time", "This field is required.")
	}
	if f.EndTime.IsZero() {
		c.add("end_time", "This field is required.")
	}
	if !f.StartTime.IsZero() && !f.EndTime.IsZero() && !f.StartTime.Before(f.EndTime) {
		c.add("end_time", "End time must be after start time.")
	}
	return c.result()
}
