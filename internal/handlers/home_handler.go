package handlers

import (
	"net/http"

	"github.com/danrneal/fyyur/internal/service"
	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	listings service.ListingService
}

func NewHomeHandler(listings service.ListingService) *HomeHandler {
	return &HomeHandler{listings: listings}
}

// Home serves the landing page feed of recently listed venues and artists.
func (h *HomeHandler) Home(c *gin.Context) {
	listings, err := h.listings.RecentListings(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recent_listings": listings})
}
