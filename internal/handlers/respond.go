package handlers

import (
	"errors"
	"net/http"

	"github.com/danrneal/fyyur/internal/forms"
	"github.com/danrneal/fyyur/internal/helpers"
	"github.com/danrneal/fyyur/internal/service"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service-layer error to an HTTP response.
// Validation failures surface the first failing field's message.
func respondServiceError(c *gin.Context, err error) {
	var verr *forms.ValidationError
	switch {
	case errors.As(err, &verr):
		helpers.RespondWithError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, service.ErrSchedulingConflict):
		helpers.RespondWithError(c, http.StatusConflict, "Artist is unavailable at the requested time.")
	case errors.Is(err, service.ErrVenueNotFound),
		errors.Is(err, service.ErrArtistNotFound),
		errors.Is(err, service.ErrMusicNotFound),
		errors.Is(err, service.ErrUnavailabilityNotFound):
		helpers.RespondWithError(c, http.StatusNotFound, err.Error())
	default:
		helpers.RespondWithError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
