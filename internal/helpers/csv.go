package helpers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/adriaticride/api/internal/models"
)

// RentalsCSV renders already-fetched rental rows for the dashboard export
// button. Pure formatting; no queries happen here.
func RentalsCSV(rentals []models.CarRental) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"id", "vehicle_id", "rental_start_date", "rental_end_date",
		"customer_name", "customer_email", "customer_phone",
		"total_price", "status", "created_at",
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write csv header: %v", err)
	}

	for _, r := range rentals {
		row := []string{
			r.ID.String(),
			r.VehicleID,
			r.RentalStartDate,
			r.RentalEndDate,
			r.CustomerName,
			r.CustomerEmail,
			r.CustomerPhone,
			fmt.Sprintf("%.2f", r.TotalPrice),
			r.Status,
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %v", err)
	}
	return buf.String(), nil
}

// ReservationsCSV renders transfer reservation rows for export.
func ReservationsCSV(reservations []models.Reservation) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"id", "pickup", "destination", "date", "time",
		"passengers", "name", "phone", "email", "created_at",
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write csv header: %v", err)
	}

	for _, r := range reservations {
		row := []string{
			r.ID.String(),
			r.Pickup,
			r.Destination,
			r.Date,
			r.Time,
			fmt.Sprintf("%d", r.Passengers),
			r.Name,
			r.Phone,
			r.Email,
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row: %v", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %v", err)
	}
	return buf.String(), nil
}
