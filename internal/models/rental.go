package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ActiveStatuses are the booking states that block availability. Cancelled
// and completed rentals never conflict with a proposed range.
var ActiveStatuses = []string{StatusPending, StatusConfirmed}

// RentalStatuses is every status an administrator may set. No transition
// graph is enforced; rentals are never deleted, only cancelled.
var RentalStatuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusActive,
	StatusCompleted,
	StatusCancelled,
}

func ValidRentalStatus(status string) bool {
	for _, s := range RentalStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// CarRental mirrors a row of the car_rentals table. Rental dates are
// calendar dates in YYYY-MM-DD form with inclusive range semantics: a rental
// occupies every day from start through end.
type CarRental struct {
	ID              uuid.UUID `db:"id" json:"id"`
	VehicleID       string    `db:"vehicle_id" json:"vehicle_id"`
	RentalStartDate string    `db:"rental_start_date" json:"rental_start_date"`
	RentalEndDate   string    `db:"rental_end_date" json:"rental_end_date"`
	CustomerName    string    `db:"customer_name" json:"customer_name"`
	CustomerEmail   string    `db:"customer_email" json:"customer_email"`
	CustomerPhone   string    `db:"customer_phone" json:"customer_phone"`
	TotalPrice      float64   `db:"total_price" json:"total_price"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// BlocksAvailability reports whether this rental belongs to the active set
// for availability purposes. A rental in status "active" (picked up) occupies
// its range historically but only pending and confirmed block new bookings,
// matching the stored-query filter.
func (r *CarRental) BlocksAvailability() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// OverlapsRange reports whether the rental's stored range shares at least one
// calendar day with [start, end], both intervals closed. ISO dates compare
// lexicographically, so plain string comparison is exact here. A shared
// boundary day counts as a conflict: same-day handover is disallowed.
func (r *CarRental) OverlapsRange(start, end string) bool {
	return r.RentalStartDate <= end && r.RentalEndDate >= start
}

// CarRentalRequest is the public booking payload.
type CarRentalRequest struct {
	VehicleID     string `json:"vehicle_id" validate:"required"`
	StartDate     string `json:"rental_start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string `json:"rental_end_date" validate:"required,datetime=2006-01-02"`
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone" validate:"required"`
}

// ManualRentalRequest is the operator entry form on the admin dashboard. The
// operator picks the status and may quote a price by hand, which is the
// routing target for zero-rate (quote-required) durations.
type ManualRentalRequest struct {
	VehicleID     string  `json:"vehicle_id" validate:"required"`
	StartDate     string  `json:"rental_start_date" validate:"required,datetime=2006-01-02"`
	EndDate       string  `json:"rental_end_date" validate:"required,datetime=2006-01-02"`
	CustomerName  string  `json:"customer_name" validate:"required"`
	CustomerEmail string  `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string  `json:"customer_phone" validate:"required"`
	Status        string  `json:"status" validate:"required"`
	TotalPrice    float64 `json:"total_price" validate:"gte=0"`
}

// AvailabilityCheck is the result of an overlap query for a proposed range.
type AvailabilityCheck struct {
	Available bool        `json:"available"`
	Conflicts []CarRental `json:"conflicts,omitempty"`
}
