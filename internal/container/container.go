package container

import (
	"log/slog"

	"github.com/adriaticride/api/internal/config"
	"github.com/adriaticride/api/internal/models"
	"github.com/adriaticride/api/internal/services"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger             *slog.Logger
	Config             *config.Config
	SupabaseClient     *supabase.Client
	MongoDBClient      *mongo.Client
	RentalService      *services.RentalService
	ReservationService *services.ReservationService
	AdminService       *services.AdminService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cfg *config.Config,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
) *Container {
	supa := models.SupabaseNewRepo(supabaseClient)

	var cache models.DashboardCache
	if mongoDBClient != nil {
		cache = models.MongodbNewRepo(mongoDBClient)
	}

	rentalService := services.NewRentalService(supa, logger)
	reservationService := services.NewReservationService(supa)
	adminService := services.NewAdminService(supa, cache, cfg.AdminPassword, cfg.SessionSecret, logger)

	return &Container{
		Logger:             logger,
		Config:             cfg,
		SupabaseClient:     supabaseClient,
		MongoDBClient:      mongoDBClient,
		RentalService:      rentalService,
		ReservationService: reservationService,
		AdminService:       adminService,
	}
}
