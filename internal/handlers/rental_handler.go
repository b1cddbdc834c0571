package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/adriaticride/api/internal/models"
	"github.com/adriaticride/api/internal/services"
	"github.com/gin-gonic/gin"
)

// statusForError maps the rental flow's error kinds to HTTP codes. Every
// failure here is recoverable: the caller keeps the form contents and may
// retry.
func statusForError(err error) int {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrVehicleNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrAvailabilityConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrQuoteRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrAvailabilityCheckFailed):
		return http.StatusServiceUnavailable
	case errors.Is(err, services.ErrSubmissionFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func CreateRental(rs *services.RentalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CarRentalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := rs.RequestRental(c.Request.Context(), req, time.Now())
		if err != nil {
			c.JSON(statusForError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Booking request received"))
	}
}
