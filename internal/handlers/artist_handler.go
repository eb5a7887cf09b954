package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/danrneal/fyyur/internal/forms"
	"github.com/danrneal/fyyur/internal/helpers"
	"github.com/danrneal/fyyur/internal/service"
	"github.com/gin-gonic/gin"
)

type ArtistHandler struct {
	artists service.ArtistService
}

func NewArtistHandler(artists service.ArtistService) *ArtistHandler {
	return &ArtistHandler{artists: artists}
}

func (h *ArtistHandler) CreateArtist(c *gin.Context) {
	var form forms.ArtistForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	artist, err := h.artists.CreateArtist(c.Request.Context(), &form)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   fmt.Sprintf("Artist %s was successfully listed!", artist.Name),
		"artist_id": artist.ID,
	})
}

func (h *ArtistHandler) GetArtist(c *gin.Context) {
	id, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	artist, err := h.artists.GetArtist(c.Request.Context(), id, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, artist)
}

func (h *ArtistHandler) ListArtists(c *gin.Context) {
	artists, err := h.artists.ListArtists(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"artists": artists})
}

func (h *ArtistHandler) SearchArtists(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	artists, err := h.artists.SearchArtists(c.Request.Context(), req.SearchTerm)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(artists),
		"data":  artists,
	})
}

func (h *ArtistHandler) UpdateArtist(c *gin.Context) {
	id, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	var form forms.ArtistForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	artist, err := h.artists.UpdateArtist(c.Request.Context(), id, &form)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Artist %s was successfully updated!", artist.Name),
		"artist":  artist,
	})
}

func (h *ArtistHandler) DeleteArtist(c *gin.Context) {
	id, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	artist, err := h.artists.DeleteArtist(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Artist %s was successfully deleted!", artist.Name),
	})
}

func (h *ArtistHandler) CreateMusic(c *gin.Context) {
	artistID, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	var form forms.MusicForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	music, err := h.artists.CreateMusic(c.Request.Context(), artistID, &form)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  fmt.Sprintf("%s %s was successfully added!", music.Type, music.Title),
		"music_id": music.ID,
	})
}

func (h *ArtistHandler) DeleteMusic(c *gin.Context) {
	id, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid music id.")
		return
	}

	if err := h.artists.DeleteMusic(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Music was successfully deleted!",
	})
}

func (h *ArtistHandler) CreateUnavailability(c *gin.Context) {
	artistID, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid artist id.")
		return
	}

	var form forms.UnavailabilityForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	unavailability, err := h.artists.CreateUnavailability(c.Request.Context(), artistID, &form)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":           "Unavailability was successfully added!",
		"unavailability_id": unavailability.ID,
	})
}

func (h *ArtistHandler) DeleteUnavailability(c *gin.Context) {
	id, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid unavailability id.")
		return
	}

	if err := h.artists.DeleteUnavailability(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Unavailability was successfully deleted!",
	})
}
