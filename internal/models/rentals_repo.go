package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

// RentalsRepo is the persistence surface the rental flow depends on. The
// hosted store owns all booking state; authoritative availability decisions
// always run against a fresh query, never a cached view.
type RentalsRepo interface {
	FindOverlapping(ctx context.Context, vehicleID, startDate, endDate, excludeID string) ([]CarRental, error)
	InsertRental(ctx context.Context, rental *CarRental) (*CarRental, error)
	ListRentals(ctx context.Context) ([]CarRental, error)
	ListVehicleRentals(ctx context.Context, vehicleID, startDate, endDate string) ([]CarRental, error)
	UpdateRentalStatus(ctx context.Context, id, status string) error
}

// FindOverlapping fetches rentals for the vehicle whose stored range overlaps
// [startDate, endDate] under inclusive-endpoint semantics and whose status is
// pending or confirmed. excludeID, when set, omits a rental from its own
// conflict check while its dates are being edited.
func (su *SupabaseRepo) FindOverlapping(ctx context.Context, vehicleID, startDate, endDate, excludeID string) ([]CarRental, error) {
	query := su.supabaseClient.From(CarRentalsTable).
		Select("id,vehicle_id,rental_start_date,rental_end_date,customer_name,status", "exact", false).
		Eq("vehicle_id", vehicleID).
		In("status", ActiveStatuses).
		Lte("rental_start_date", endDate).
		Gte("rental_end_date", startDate)

	if excludeID != "" {
		query = query.Neq("id", excludeID)
	}

	raw, count, err := query.Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query overlapping rentals: %v", err)
	}

	if count == 0 {
		return []CarRental{}, nil
	}

	var rentals []CarRental
	if err := json.Unmarshal(raw, &rentals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal overlapping rentals: %v", err)
	}

	return rentals, nil
}

func (su *SupabaseRepo) InsertRental(ctx context.Context, rental *CarRental) (*CarRental, error) {
	rentalData := map[string]interface{}{
		"id":                rental.ID,
		"vehicle_id":        rental.VehicleID,
		"rental_start_date": rental.RentalStartDate,
		"rental_end_date":   rental.RentalEndDate,
		"customer_name":     rental.CustomerName,
		"customer_email":    rental.CustomerEmail,
		"customer_phone":    rental.CustomerPhone,
		"total_price":       rental.TotalPrice,
		"status":            rental.Status,
		"created_at":        rental.CreatedAt,
	}

	raw, count, err := su.supabaseClient.
		From(CarRentalsTable).
		Insert(rentalData, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to insert rental: %v", err)
	}

	var created []CarRental
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created rental: %v", err)
	}

	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no rental row returned after insert")
	}

	return &created[0], nil
}

// ListRentals returns every rental, newest first, for the admin dashboard.
func (su *SupabaseRepo) ListRentals(ctx context.Context) ([]CarRental, error) {
	raw, count, err := su.supabaseClient.From(CarRentalsTable).
		Select("*", "exact", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list rentals: %v", err)
	}

	if count == 0 {
		return []CarRental{}, nil
	}

	var rentals []CarRental
	if err := json.Unmarshal(raw, &rentals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rentals: %v", err)
	}

	return rentals, nil
}

// ListVehicleRentals returns a vehicle's rentals falling inside the window,
// ordered by start date, for the availability calendar.
func (su *SupabaseRepo) ListVehicleRentals(ctx context.Context, vehicleID, startDate, endDate string) ([]CarRental, error) {
	raw, count, err := su.supabaseClient.From(CarRentalsTable).
		Select("id,vehicle_id,rental_start_date,rental_end_date,status", "exact", false).
		Eq("vehicle_id", vehicleID).
		Gte("rental_start_date", startDate).
		Lte("rental_end_date", endDate).
		Order("rental_start_date", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicle rentals: %v", err)
	}

	if count == 0 {
		return []CarRental{}, nil
	}

	var rentals []CarRental
	if err := json.Unmarshal(raw, &rentals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vehicle rentals: %v", err)
	}

	return rentals, nil
}

func (su *SupabaseRepo) UpdateRentalStatus(ctx context.Context, id, status string) error {
	_, count, err := su.supabaseClient.From(CarRentalsTable).
		Update(map[string]interface{}{"status": status}, "", "exact").
		Eq("id", id).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to update rental status: %v", err)
	}

	if count == 0 {
		return fmt.Errorf("no rental found with id %s", id)
	}

	return nil
}
