package handlers

import (
	"net/http"
	"time"

	"github.com/adriaticride/api/internal/models"
	"github.com/adriaticride/api/internal/services"
	"github.com/gin-gonic/gin"
)

type vehicleView struct {
	models.Vehicle
	BaseDailyRate  float64  `json:"base_daily_rate"`
	PricingDisplay []string `json:"pricing_display"`
}

func ListVehicles() gin.HandlerFunc {
	return func(c *gin.Context) {
		views := make([]vehicleView, 0, len(models.Fleet))
		for i := range models.Fleet {
			v := &models.Fleet[i]
			views = append(views, vehicleView{
				Vehicle:        *v,
				BaseDailyRate:  v.BaseDailyRate(),
				PricingDisplay: v.PricingDisplay(),
			})
		}
		c.JSON(http.StatusOK, models.ListResponse(views, len(views)))
	}
}

func GetVehicle() gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicle, ok := models.VehicleByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse("vehicle not found"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(vehicleView{
			Vehicle:        *vehicle,
			BaseDailyRate:  vehicle.BaseDailyRate(),
			PricingDisplay: vehicle.PricingDisplay(),
		}, ""))
	}
}

// CheckVehicleAvailability answers the pre-submission availability question
// and quotes the tiered price for the range in one round trip.
func CheckVehicleAvailability(rs *services.RentalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicleID := c.Param("id")
		startDate := c.Query("start")
		endDate := c.Query("end")
		now := time.Now()

		if err := services.ValidateRentalDates(startDate, endDate, now); err != nil {
			c.JSON(statusForError(err), models.ErrorResponse(err.Error()))
			return
		}

		check, err := rs.CheckAvailability(c.Request.Context(), vehicleID, startDate, endDate, c.Query("exclude"))
		if err != nil {
			c.JSON(statusForError(err), models.ErrorResponse(err.Error()))
			return
		}

		quote, err := rs.QuoteRental(vehicleID, startDate, endDate, now)
		if err != nil {
			c.JSON(statusForError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"availability": check,
			"quote":        quote,
		}, ""))
	}
}

// VehicleCalendar feeds the availability calendar with booked ranges.
func VehicleCalendar(rs *services.RentalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rentals, err := rs.VehicleCalendar(c.Request.Context(), c.Param("id"), c.Query("start"), c.Query("end"))
		if err != nil {
			c.JSON(statusForError(err), models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(rentals, len(rentals)))
	}
}
