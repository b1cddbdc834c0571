package handlers

import (
	"net/http"
	"time"

	"github.com/adriaticride/api/internal/helpers"
	"github.com/adriaticride/api/internal/models"
	"github.com/adriaticride/api/internal/services"
	"github.com/gin-gonic/gin"
)

func CreateReservation(s *services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ReservationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := s.CreateReservation(c.Request.Context(), req, time.Now())
		if err != nil {
			c.JSON(statusForError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Reservation received"))
	}
}

func ListReservations(s *services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reservations, err := s.ListReservations(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(reservations, len(reservations)))
	}
}

func ExportReservations(s *services.ReservationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		reservations, err := s.ListReservations(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, models.ErrorResponse(err.Error()))
			return
		}

		data, err := helpers.ReservationsCSV(reservations)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.Header("Content-Disposition", `attachment; filename="reservations.csv"`)
		c.Data(http.StatusOK, "text/csv", []byte(data))
	}
}
