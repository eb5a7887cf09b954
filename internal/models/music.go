package models

// Music release types.
const (
	MusicTypeAlbum = "Album"
	MusicTypeSong  = "Song"
)

type Music struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ArtistID uint   `gorm:"not null;uniqueIndex:idx_music_artist_type_title" json:"artist_id"`
	Type     string `gorm:"size:120;not null;uniqueIndex:idx_music_artist_type_title" json:"type"`
	Title    string `gorm:"size:120;not null;uniqueIndex:idx_music_artist_type_title" json:"title"`
}

func (Music) TableName() string {
	return "music"
}
