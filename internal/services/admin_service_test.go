package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/adriaticride/api/internal/helpers"
	"github.com/adriaticride/api/internal/models"
)

type fakeDashboardCache struct {
	snapshot *models.RentalSnapshot
	saveErr  error
	saved    int
}

func (f *fakeDashboardCache) SaveRentalSnapshot(ctx context.Context, rentals []models.CarRental) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved++
	f.snapshot = &models.RentalSnapshot{Rentals: rentals}
	return nil
}

func (f *fakeDashboardCache) RentalSnapshot(ctx context.Context) (*models.RentalSnapshot, error) {
	return f.snapshot, nil
}

func TestAdminLogin(t *testing.T) {
	s := NewAdminService(&fakeRentalsRepo{}, nil, "correct horse", "secret", nil)

	token, err := s.Login("correct horse", testNow)
	if err != nil {
		t.Fatalf("Login failed with the right password: %v", err)
	}
	if _, err := helpers.ValidateAdminToken(token, "secret"); err != nil {
		t.Errorf("issued token did not validate: %v", err)
	}

	if _, err := s.Login("battery staple", testNow); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("error = %v, want ErrBadCredentials", err)
	}
	if _, err := s.Login("", testNow); !errors.Is(err, ErrBadCredentials) {
		t.Errorf("empty password: error = %v, want ErrBadCredentials", err)
	}
}

func TestListRentalsRefreshesCache(t *testing.T) {
	repo := &fakeRentalsRepo{
		rentals: []models.CarRental{confirmedRental("passat-b8", "2025-07-01", "2025-07-05")},
	}
	cache := &fakeDashboardCache{}
	s := NewAdminService(repo, cache, "pw", "secret", nil)

	rentals, fromCache, err := s.ListRentals(context.Background())
	if err != nil {
		t.Fatalf("ListRentals failed: %v", err)
	}
	if fromCache {
		t.Error("live fetch reported as cached")
	}
	if len(rentals) != 1 {
		t.Errorf("got %d rentals, want 1", len(rentals))
	}
	if cache.saved != 1 {
		t.Errorf("snapshot saved %d times, want 1", cache.saved)
	}
}

func TestListRentalsFallsBackToSnapshot(t *testing.T) {
	repo := &fakeRentalsRepo{listErr: errors.New("store unreachable")}
	cache := &fakeDashboardCache{
		snapshot: &models.RentalSnapshot{
			Rentals: []models.CarRental{confirmedRental("citroen-c4", "2025-07-10", "2025-07-12")},
		},
	}
	s := NewAdminService(repo, cache, "pw", "secret", nil)

	rentals, fromCache, err := s.ListRentals(context.Background())
	if err != nil {
		t.Fatalf("ListRentals failed despite a snapshot: %v", err)
	}
	if !fromCache {
		t.Error("snapshot serve not flagged as cached")
	}
	if len(rentals) != 1 {
		t.Errorf("got %d cached rentals, want 1", len(rentals))
	}
}

func TestListRentalsNoCacheNoStore(t *testing.T) {
	repo := &fakeRentalsRepo{listErr: errors.New("store unreachable")}
	s := NewAdminService(repo, nil, "pw", "secret", nil)

	if _, _, err := s.ListRentals(context.Background()); err == nil {
		t.Fatal("expected an error with no store and no cache")
	}
}

func TestUpdateRentalStatus(t *testing.T) {
	existing := confirmedRental("passat-b8", "2025-07-01", "2025-07-05")
	repo := &fakeRentalsRepo{rentals: []models.CarRental{existing}}
	s := NewAdminService(repo, nil, "pw", "secret", nil)

	if err := s.UpdateRentalStatus(context.Background(), existing.ID.String(), models.StatusCancelled); err != nil {
		t.Fatalf("UpdateRentalStatus failed: %v", err)
	}
	if repo.rentals[0].Status != models.StatusCancelled {
		t.Errorf("status = %q, want cancelled", repo.rentals[0].Status)
	}

	err := s.UpdateRentalStatus(context.Background(), existing.ID.String(), "archived")
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("error = %v, want *ValidationError for an unknown status", err)
	}
}

func TestExportRentalsCSV(t *testing.T) {
	repo := &fakeRentalsRepo{
		rentals: []models.CarRental{confirmedRental("passat-b8", "2025-07-01", "2025-07-05")},
	}
	s := NewAdminService(repo, nil, "pw", "secret", nil)

	out, err := s.ExportRentalsCSV(context.Background())
	if err != nil {
		t.Fatalf("ExportRentalsCSV failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Errorf("csv has %d lines, want header plus one row", len(lines))
	}
}
