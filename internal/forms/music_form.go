package forms

import (
	"github.com/danrneal/fyyur/internal/models"
)

// MusicForm is the submission payload for adding a release to an artist.
type MusicForm struct {
	Type  string `json:"type"`
	Title string `json:"title"`
}

func (f *MusicForm) Validate() *ValidationError {
	var c errorCollector
	if f.Type != models.MusicTypeAlbum && f.Type != models.MusicTypeSong {
		c.add("type", "Release type must be either 'Album' or 'Song'.")
	}
	c.checkRequired("title", f.Title)
	return c.result()
}
