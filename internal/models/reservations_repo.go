package models

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/supabase-community/postgrest-go"
)

// ReservationsRepo persists transfer reservations.
type ReservationsRepo interface {
	InsertReservation(ctx context.Context, reservation *Reservation) (*Reservation, error)
	ListReservations(ctx context.Context) ([]Reservation, error)
}

func (su *SupabaseRepo) InsertReservation(ctx context.Context, reservation *Reservation) (*Reservation, error) {
	reservationData := map[string]interface{}{
		"id":          reservation.ID,
		"pickup":      reservation.Pickup,
		"destination": reservation.Destination,
		"date":        reservation.Date,
		"time":        reservation.Time,
		"passengers":  reservation.Passengers,
		"name":        reservation.Name,
		"phone":       reservation.Phone,
		"email":       reservation.Email,
		"created_at":  reservation.CreatedAt,
	}

	raw, count, err := su.supabaseClient.
		From(ReservationsTable).
		Insert(reservationData, false, "", "", "exact").
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to insert reservation: %v", err)
	}

	var created []Reservation
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("failed to unmarshal created reservation: %v", err)
	}

	if count == 0 || len(created) == 0 {
		return nil, fmt.Errorf("no reservation row returned after insert")
	}

	return &created[0], nil
}

func (su *SupabaseRepo) ListReservations(ctx context.Context) ([]Reservation, error) {
	raw, count, err := su.supabaseClient.From(ReservationsTable).
		Select("*", "exact", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %v", err)
	}

	if count == 0 {
		return []Reservation{}, nil
	}

	var reservations []Reservation
	if err := json.Unmarshal(raw, &reservations); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reservations: %v", err)
	}

	return reservations, nil
}
