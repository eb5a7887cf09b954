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

type VenueHandler struct {
	venues service.VenueService
}

func NewVenueHandler(venues service.VenueService) *VenueHandler {
	return &VenueHandler{venues: venues}
}

func (h *VenueHandler) CreateVenue(c *gin.Context) {
	var form forms.VenueForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	venue, err := h.venues.CreateVenue(c.Request.Context(), &form)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  fmt.Sprintf("Venue %s was successfully listed!", venue.Name),
		"venue_id": venue.ID,
	})
}

func (h *VenueHandler) GetVenue(c *gin.Context) {
	id, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	venue, err := h.venues.GetVenue(c.Request.Context(), id, time.Now())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) ListVenues(c *gin.Context) {
	areas, err := h.venues.ListVenuesByArea(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

type SearchRequest struct {
	SearchTerm string `json:"search_term"`
}

func (h *VenueHandler) SearchVenues(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	venues, err := h.venues.SearchVenues(c.Request.Context(), req.SearchTerm)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(venues),
		"data":  venues,
	})
}

func (h *VenueHandler) UpdateVenue(c *gin.Context) {
	id, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	var form forms.VenueForm
	if err := c.ShouldBindJSON(&form); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	venue, err := h.venues.UpdateVenue(c.Request.Context(), id, &form)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Venue %s was successfully updated!", venue.Name),
		"venue":   venue,
	})
}

func (h *VenueHandler) DeleteVenue(c *gin.Context) {
	id, err := helpers.StringToID(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid venue id.")
		return
	}

	venue, err := h.venues.DeleteVenue(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Venue %s was successfully deleted!", venue.Name),
	})
}
