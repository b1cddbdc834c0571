package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/adriaticride/api/internal/helpers"
	"github.com/adriaticride/api/internal/models"
	"github.com/google/uuid"
)

var (
	ErrVehicleNotFound         = errors.New("vehicle not found")
	ErrAvailabilityConflict    = errors.New("vehicle is not available for the selected dates")
	ErrAvailabilityCheckFailed = errors.New("could not verify availability")
	ErrQuoteRequired           = errors.New("this rental duration requires a custom quote, please contact us")
	ErrSubmissionFailed        = errors.New("failed to save the booking")
)

// ValidationError carries a user-facing message for bad input. It is always
// recoverable and never triggers a network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SubmissionState names the phases of a booking submission. The sequence is
// linear; a submission in flight runs to success or failure with no backward
// transitions.
type SubmissionState string

const (
	StateValidating           SubmissionState = "validating"
	StateCheckingAvailability SubmissionState = "checking_availability"
	StateComputingPrice       SubmissionState = "computing_price"
	StateSubmitting           SubmissionState = "submitting"
	StateSuccess              SubmissionState = "success"
	StateFailed               SubmissionState = "failed"
)

type RentalService struct {
	rentals models.RentalsRepo
	logger  *slog.Logger
}

func NewRentalService(rentals models.RentalsRepo, logger *slog.Logger) *RentalService {
	return &RentalService{
		rentals: rentals,
		logger:  logger,
	}
}

// ValidateRentalDates applies the booking date rules in order; the first
// failure wins. Today is the caller's midnight-normalized current day. A pass
// says nothing about availability, which can change between user interaction
// and submission.
func ValidateRentalDates(startDate, endDate string, now time.Time) error {
	if startDate == "" || endDate == "" {
		return &ValidationError{Message: "both start and end dates are required"}
	}

	start, err := helpers.ParseDate(startDate)
	if err != nil {
		return &ValidationError{Message: err.Error()}
	}
	end, err := helpers.ParseDate(endDate)
	if err != nil {
		return &ValidationError{Message: err.Error()}
	}

	if helpers.IsPastDate(start, now) {
		return &ValidationError{Message: "start date cannot be in the past"}
	}
	if helpers.IsPastDate(end, now) {
		return &ValidationError{Message: "end date cannot be in the past"}
	}
	if !end.After(start) {
		return &ValidationError{Message: "end date must be after start date"}
	}

	return nil
}

// CheckAvailability queries active rentals for the vehicle that overlap the
// proposed range. A failed query is reported as ErrAvailabilityCheckFailed,
// never as an available slot; callers must treat an inability to check as
// blocking.
func (rs *RentalService) CheckAvailability(ctx context.Context, vehicleID, startDate, endDate, excludeID string) (*models.AvailabilityCheck, error) {
	conflicts, err := rs.rentals.FindOverlapping(ctx, vehicleID, startDate, endDate, excludeID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityCheckFailed, err)
	}

	return &models.AvailabilityCheck{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// RentalQuote is the priced summary of a proposed rental.
type RentalQuote struct {
	Days          int     `json:"days"`
	DailyRate     float64 `json:"daily_rate"`
	TotalPrice    float64 `json:"total_price"`
	QuoteRequired bool    `json:"quote_required"`
}

// QuoteRental resolves the tiered price for a validated date range.
func (rs *RentalService) QuoteRental(vehicleID, startDate, endDate string, now time.Time) (*RentalQuote, error) {
	vehicle, ok := models.VehicleByID(vehicleID)
	if !ok {
		return nil, ErrVehicleNotFound
	}
	if err := ValidateRentalDates(startDate, endDate, now); err != nil {
		return nil, err
	}

	start, _ := helpers.ParseDate(startDate)
	end, _ := helpers.ParseDate(endDate)
	days := helpers.DaysBetween(start, end)
	rate := vehicle.DailyRate(days)

	return &RentalQuote{
		Days:          days,
		DailyRate:     rate,
		TotalPrice:    vehicle.TotalPrice(days),
		QuoteRequired: rate == 0,
	}, nil
}

// RequestRental runs the full submission flow: validate, check availability,
// resolve the tiered price, re-check availability immediately before the
// insert, then persist with status pending. The re-check narrows the window
// between the first check and the insert; concurrent submissions are only
// guarded by this double check since the store exposes no transaction here.
func (rs *RentalService) RequestRental(ctx context.Context, req models.CarRentalRequest, now time.Time) (*models.CarRental, error) {
	rs.logState(req.VehicleID, StateValidating)
	if err := models.Validate.Struct(req); err != nil {
		return nil, rs.fail(req.VehicleID, &ValidationError{Message: fmt.Sprintf("invalid booking data: %v", err)})
	}
	vehicle, ok := models.VehicleByID(req.VehicleID)
	if !ok {
		return nil, rs.fail(req.VehicleID, ErrVehicleNotFound)
	}
	if err := ValidateRentalDates(req.StartDate, req.EndDate, now); err != nil {
		return nil, rs.fail(req.VehicleID, err)
	}

	rs.logState(req.VehicleID, StateCheckingAvailability)
	check, err := rs.CheckAvailability(ctx, req.VehicleID, req.StartDate, req.EndDate, "")
	if err != nil {
		return nil, rs.fail(req.VehicleID, err)
	}
	if !check.Available {
		return nil, rs.fail(req.VehicleID, fmt.Errorf("%w: %d conflicting booking(s)", ErrAvailabilityConflict, len(check.Conflicts)))
	}

	rs.logState(req.VehicleID, StateComputingPrice)
	start, _ := helpers.ParseDate(req.StartDate)
	end, _ := helpers.ParseDate(req.EndDate)
	days := helpers.DaysBetween(start, end)
	if vehicle.QuoteRequired(days) {
		return nil, rs.fail(req.VehicleID, ErrQuoteRequired)
	}
	total := vehicle.TotalPrice(days)

	// Final availability check right before the insert. The first check and
	// the insert are not atomic against concurrent submissions.
	recheck, err := rs.CheckAvailability(ctx, req.VehicleID, req.StartDate, req.EndDate, "")
	if err != nil {
		return nil, rs.fail(req.VehicleID, err)
	}
	if !recheck.Available {
		return nil, rs.fail(req.VehicleID, fmt.Errorf("%w: %d conflicting booking(s)", ErrAvailabilityConflict, len(recheck.Conflicts)))
	}

	rs.logState(req.VehicleID, StateSubmitting)
	rental := &models.CarRental{
		ID:              uuid.New(),
		VehicleID:       req.VehicleID,
		RentalStartDate: req.StartDate,
		RentalEndDate:   req.EndDate,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   helpers.FormatPhoneNumber(req.CustomerPhone),
		TotalPrice:      total,
		Status:          models.StatusPending,
		CreatedAt:       now.UTC(),
	}

	created, err := rs.rentals.InsertRental(ctx, rental)
	if err != nil {
		return nil, rs.fail(req.VehicleID, fmt.Errorf("%w: %v", ErrSubmissionFailed, err))
	}

	rs.logState(req.VehicleID, StateSuccess)
	return created, nil
}

// ManualRental is the operator entry path on the dashboard. The operator
// chooses the status and may quote the price by hand, which is how zero-rate
// durations get booked. Dates and availability are still checked.
func (rs *RentalService) ManualRental(ctx context.Context, req models.ManualRentalRequest, now time.Time) (*models.CarRental, error) {
	if err := models.Validate.Struct(req); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid booking data: %v", err)}
	}
	if !models.ValidRentalStatus(req.Status) {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown rental status %q", req.Status)}
	}
	vehicle, ok := models.VehicleByID(req.VehicleID)
	if !ok {
		return nil, ErrVehicleNotFound
	}
	if err := ValidateRentalDates(req.StartDate, req.EndDate, now); err != nil {
		return nil, err
	}

	check, err := rs.CheckAvailability(ctx, req.VehicleID, req.StartDate, req.EndDate, "")
	if err != nil {
		return nil, err
	}
	if !check.Available {
		return nil, fmt.Errorf("%w: %d conflicting booking(s)", ErrAvailabilityConflict, len(check.Conflicts))
	}

	total := req.TotalPrice
	if total == 0 {
		start, _ := helpers.ParseDate(req.StartDate)
		end, _ := helpers.ParseDate(req.EndDate)
		total = vehicle.TotalPrice(helpers.DaysBetween(start, end))
	}

	rental := &models.CarRental{
		ID:              uuid.New(),
		VehicleID:       req.VehicleID,
		RentalStartDate: req.StartDate,
		RentalEndDate:   req.EndDate,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   helpers.FormatPhoneNumber(req.CustomerPhone),
		TotalPrice:      total,
		Status:          req.Status,
		CreatedAt:       now.UTC(),
	}

	created, err := rs.rentals.InsertRental(ctx, rental)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}

	return created, nil
}

// VehicleCalendar returns a vehicle's rentals inside a window for the
// availability calendar. Only dates and statuses are exposed.
func (rs *RentalService) VehicleCalendar(ctx context.Context, vehicleID, startDate, endDate string) ([]models.CarRental, error) {
	if _, ok := models.VehicleByID(vehicleID); !ok {
		return nil, ErrVehicleNotFound
	}
	if _, err := helpers.ParseDate(startDate); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	if _, err := helpers.ParseDate(endDate); err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	rentals, err := rs.rentals.ListVehicleRentals(ctx, vehicleID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityCheckFailed, err)
	}
	return rentals, nil
}

func (rs *RentalService) logState(vehicleID string, state SubmissionState) {
	if rs.logger != nil {
		rs.logger.Debug("rental submission", "vehicle_id", vehicleID, "state", state)
	}
}

func (rs *RentalService) fail(vehicleID string, err error) error {
	if rs.logger != nil {
		rs.logger.Debug("rental submission", "vehicle_id", vehicleID, "state", StateFailed, "error", err)
	}
	return err
}
