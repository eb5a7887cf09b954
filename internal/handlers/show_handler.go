package handlers

import (
	"net/http"

	"github.com/danrneal/fyyur/internal/forms"
	"github.com/danrneal/fyyur/internal/helpers"
	"github.com/danrneal/fyyur/internal/service"
	"github.com/gin-gonic/gin"
)

type ShowHandler struct {
	shows service.ShowService
}

func NewShowHandler(shows service.ShowService) *ShowHandler {
	return &ShowHandler{shows: shows}
}

func (h *ShowHandler) CreateShow(c *gin.Context) {
	var form forms.ShowForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	show, err := h.shows.CreateShow(c.Request.Context(), &form)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Show was successfully listed!",
		"show_id": show.ID,
	})
}

func (h *ShowHandler) ListShows(c *gin.Context) {
	shows, err := h.shows.ListShows(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"shows": shows})
}
