package models

import (
	"time"

	"github.com/google/uuid"
)

// Reservation mirrors a row of the reservations table (airport and
// point-to-point transfers). Transfers have no vehicle pricing; they follow
// the same validate-then-insert pattern as rentals without the availability
// check.
type Reservation struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Pickup      string    `db:"pickup" json:"pickup"`
	Destination string    `db:"destination" json:"destination"`
	Date        string    `db:"date" json:"date"`
	Time        string    `db:"time" json:"time"`
	Passengers  int       `db:"passengers" json:"passengers"`
	Name        string    `db:"name" json:"name"`
	Phone       string    `db:"phone" json:"phone"`
	Email       string    `db:"email" json:"email"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// ReservationRequest is the public transfer booking payload.
type ReservationRequest struct {
	Pickup      string `json:"pickup" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required"`
	Passengers  int    `json:"passengers" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
}
