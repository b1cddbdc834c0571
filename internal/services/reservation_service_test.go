package services

import (
	"context"
	"errors"
	"testing"

	"github.com/adriaticride/api/internal/models"
)

type fakeReservationsRepo struct {
	insertErr error
	inserted  []models.Reservation
}

func (f *fakeReservationsRepo) InsertReservation(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, *reservation)
	return reservation, nil
}

func (f *fakeReservationsRepo) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	return f.inserted, nil
}

func transferRequest() models.ReservationRequest {
	return models.ReservationRequest{
		Pickup:      "Tivat Airport",
		Destination: "Kotor",
		Date:        "2025-07-03",
		Time:        "14:30",
		Passengers:  4,
		Name:        "Ana Marković",
		Phone:       "+382 67 555 123",
		Email:       "ana@example.com",
	}
}

func TestCreateReservation(t *testing.T) {
	repo := &fakeReservationsRepo{}
	s := NewReservationService(repo)

	created, err := s.CreateReservation(context.Background(), transferRequest(), testNow)
	if err != nil {
		t.Fatalf("CreateReservation failed: %v", err)
	}
	if created.Phone != "67 555 123" {
		t.Errorf("phone = %q, want country code stripped", created.Phone)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("inserted %d reservations, want 1", len(repo.inserted))
	}
}

func TestCreateReservationPastDate(t *testing.T) {
	s := NewReservationService(&fakeReservationsRepo{})

	req := transferRequest()
	req.Date = "2025-05-20"

	_, err := s.CreateReservation(context.Background(), req, testNow)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("error = %v, want *ValidationError for a past date", err)
	}
}

func TestCreateReservationMissingFields(t *testing.T) {
	repo := &fakeReservationsRepo{}
	s := NewReservationService(repo)

	req := transferRequest()
	req.Passengers = 0

	_, err := s.CreateReservation(context.Background(), req, testNow)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("error = %v, want *ValidationError for zero passengers", err)
	}
	if len(repo.inserted) != 0 {
		t.Error("invalid reservation reached the store")
	}
}

func TestCreateReservationInsertFailure(t *testing.T) {
	s := NewReservationService(&fakeReservationsRepo{insertErr: errors.New("service unavailable")})

	_, err := s.CreateReservation(context.Background(), transferRequest(), testNow)
	if !errors.Is(err, ErrSubmissionFailed) {
		t.Fatalf("error = %v, want ErrSubmissionFailed", err)
	}
}
