package forms

// VenueForm is the submission payload for creating or editing a venue.
type VenueForm struct {
	Name               string   `json:"name"`
	Genres             []string `json:"genres"`
	Address            string   `json:"address"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Website            string   `json:"website"`
	FacebookLink       string   `json:"facebook_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
	ImageLink          string   `json:"image_link"`
}

// Validate checks every field and returns nil when the submission is valid.
func (f *VenueForm) Validate() *ValidationError {
	var c errorCollector
	c.checkRequired("name", f.Name)
	c.checkGenres("genres", f.Genres)
	c.checkRequired("address", f.Address)
	c.checkRequired("city", f.City)
	c.checkState("state", f.State)
	c.checkPhone("phone", f.Phone)
	c.checkURL("website", f.Website)
	c.checkURL("facebook_link", f.FacebookLink)
	c.checkURL("image_link", f.ImageLink)
	return c.result()
}
