package forms

// ArtistForm is the submission payload for creating or editing an artist.
type ArtistForm struct {
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
}

// Validate checks every field and returns nil when the submission is valid.
func (f *ArtistForm) Validate() *ValidationError {
	var c errorCollector
	c.checkRequired("name", f.Name)
	c.checkGenres("genres", f.Genres)
	c.checkRequired("city", f.City)
	c.checkState("state", f.State)
	c.checkPhone("phone", f.Phone)
	c.checkURL("website", f.Website)
	c.checkURL("facebook_link", f.FacebookLink)
	c.checkURL("image_link", f.ImageLink)
	return c.result()
}
