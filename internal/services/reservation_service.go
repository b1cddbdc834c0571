package services

import (
	"context"
	"fmt"
	"time"

	"github.com/adriaticride/api/internal/helpers"
	"github.com/adriaticride/api/internal/models"
	"github.com/google/uuid"
)

type ReservationService struct {
	reservations models.ReservationsRepo
}

func NewReservationService(reservations models.ReservationsRepo) *ReservationService {
	return &ReservationService{
		reservations: reservations,
	}
}

// CreateReservation validates and persists a transfer reservation. Transfers
// carry no vehicle pricing and no availability check; the pattern is
// validate-then-insert.
func (s *ReservationService) CreateReservation(ctx context.Context, req models.ReservationRequest, now time.Time) (*models.Reservation, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid reservation data: %v", err)}
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	if helpers.IsPastDate(date, now) {
		return nil, &ValidationError{Message: "transfer date cannot be in the past"}
	}

	reservation := &models.Reservation{
		ID:          uuid.New(),
		Pickup:      req.Pickup,
		Destination: req.Destination,
		Date:        req.Date,
		Time:        req.Time,
		Passengers:  req.Passengers,
		Name:        req.Name,
		Phone:       helpers.FormatPhoneNumber(req.Phone),
		Email:       req.Email,
		CreatedAt:   now.UTC(),
	}

	created, err := s.reservations.InsertReservation(ctx, reservation)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	return created, nil
}

func (s *ReservationService) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return s.reservations.ListReservations(ctx)
}
