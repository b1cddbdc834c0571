package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/adriaticride/api/internal/helpers"
	"github.com/adriaticride/api/internal/models"
)

var ErrBadCredentials = errors.New("invalid password")

// AdminService backs the password-gated dashboard. Sessions are server-issued
// tokens verified on every admin request; the password itself never leaves
// the login endpoint.
type AdminService struct {
	rentals       models.RentalsRepo
	cache         models.DashboardCache
	adminPassword string
	sessionSecret string
	logger        *slog.Logger
}

func NewAdminService(rentals models.RentalsRepo, cache models.DashboardCache, adminPassword, sessionSecret string, logger *slog.Logger) *AdminService {
	return &AdminService{
		rentals:       rentals,
		cache:         cache,
		adminPassword: adminPassword,
		sessionSecret: sessionSecret,
		logger:        logger,
	}
}

// Login exchanges the dashboard password for a session token.
func (s *AdminService) Login(password string, now time.Time) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) != 1 {
		return "", ErrBadCredentials
	}
	return helpers.IssueAdminToken(s.sessionSecret, now)
}

// ListRentals fetches the rental list fresh from the store and refreshes the
// display cache. When the store is unreachable the cached snapshot is served
// instead, display only; availability decisions never read it.
func (s *AdminService) ListRentals(ctx context.Context) ([]models.CarRental, bool, error) {
	rentals, err := s.rentals.ListRentals(ctx)
	if err == nil {
		if s.cache != nil {
			if cacheErr := s.cache.SaveRentalSnapshot(ctx, rentals); cacheErr != nil && s.logger != nil {
				s.logger.Warn("rental snapshot cache update failed", "error", cacheErr)
			}
		}
		return rentals, false, nil
	}

	if s.cache != nil {
		snapshot, cacheErr := s.cache.RentalSnapshot(ctx)
		if cacheErr == nil && snapshot != nil {
			if s.logger != nil {
				s.logger.Warn("serving cached rental snapshot", "cached_at", snapshot.CachedAt, "error", err)
			}
			return snapshot.Rentals, true, nil
		}
	}

	return nil, false, fmt.Errorf("failed to list rentals: %v", err)
}

// UpdateRentalStatus sets any administrator-chosen status. No transition
// graph is enforced; rentals are cancelled, never deleted.
func (s *AdminService) UpdateRentalStatus(ctx context.Context, id, status string) error {
	if !models.ValidRentalStatus(status) {
		return &ValidationError{Message: fmt.Sprintf("unknown rental status %q", status)}
	}
	return s.rentals.UpdateRentalStatus(ctx, id, status)
}

// ExportRentalsCSV formats the current rental list for download.
func (s *AdminService) ExportRentalsCSV(ctx context.Context) (string, error) {
	rentals, _, err := s.ListRentals(ctx)
	if err != nil {
		return "", err
	}
	return helpers.RentalsCSV(rentals)
}
