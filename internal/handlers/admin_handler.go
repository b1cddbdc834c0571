package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/adriaticride/api/internal/helpers"
	"github.com/adriaticride/api/internal/models"
	"github.com/adriaticride/api/internal/services"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AdminLogin exchanges the dashboard password for a session token. The token
// travels as a Bearer header or the admin_session cookie.
func AdminLogin(s *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("password is required"))
			return
		}

		token, err := s.Login(req.Password, time.Now())
		if err != nil {
			if errors.Is(err, services.ErrBadCredentials) {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse("invalid password"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.SetCookie("admin_session", token, int(helpers.SessionTTL.Seconds()), "/", "", false, true)
		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"token": token}, "Logged in"))
	}
}

func AdminListRentals(s *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rentals, fromCache, err := s.ListRentals(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, models.ErrorResponse(err.Error()))
			return
		}

		resp := models.ListResponse(rentals, len(rentals))
		if fromCache {
			resp.Message = "serving cached snapshot; live store unreachable"
		}
		c.JSON(http.StatusOK, resp)
	}
}

// AdminCreateRental is the manual entry form: operator-chosen status and,
// for quote-required durations, an operator-quoted price.
func AdminCreateRental(rs *services.RentalService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ManualRentalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := rs.ManualRental(c.Request.Context(), req, time.Now())
		if err != nil {
			c.JSON(statusForError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Rental created"))
	}
}

type statusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

func AdminUpdateRentalStatus(s *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req statusUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("status is required"))
			return
		}

		if err := s.UpdateRentalStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
			c.JSON(statusForError(err), models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Status updated"))
	}
}

func ExportRentals(s *services.AdminService) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := s.ExportRentalsCSV(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadGateway, models.ErrorResponse(err.Error()))
			return
		}

		c.Header("Content-Disposition", `attachment; filename="car_rentals.csv"`)
		c.Data(http.StatusOK, "text/csv", []byte(data))
	}
}
