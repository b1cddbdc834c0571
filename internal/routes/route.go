package routes

import (
	"github.com/adriaticride/api/internal/container"
	"github.com/adriaticride/api/internal/handlers"
	"github.com/adriaticride/api/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(c *container.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{c.Config.AllowedOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(c.Logger))
	r.Use(middleware.ErrorHandler(c.Logger))
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(200, gin.H{
				"status":  "OK",
				"service": "adriaticride-api",
			})
		})

		// public fleet and booking routes
		v1.GET("/vehicles", handlers.ListVehicles())
		v1.GET("/vehicles/:id", handlers.GetVehicle())
		v1.GET("/vehicles/:id/availability", handlers.CheckVehicleAvailability(c.RentalService))
		v1.GET("/vehicles/:id/rentals", handlers.VehicleCalendar(c.RentalService))
		v1.POST("/rentals", handlers.CreateRental(c.RentalService))
		v1.POST("/reservations", handlers.CreateReservation(c.ReservationService))

		v1.POST("/admin/login", handlers.AdminLogin(c.AdminService))
	}

	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuth(c.Config.SessionSecret, c.Logger))
	{
		admin.GET("/rentals", handlers.AdminListRentals(c.AdminService))
		admin.POST("/rentals", handlers.AdminCreateRental(c.RentalService))
		admin.PATCH("/rentals/:id/status", handlers.AdminUpdateRentalStatus(c.AdminService))
		admin.GET("/rentals/export", handlers.ExportRentals(c.AdminService))
		admin.GET("/reservations", handlers.ListReservations(c.ReservationService))
		admin.GET("/reservations/export", handlers.ExportReservations(c.ReservationService))
	}

	return r
}
