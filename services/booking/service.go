package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "storely/database/repository/booking"
	"storely/models"
	"storely/utils"
)

// validateDateRange checks that both dates parse and start < end.
func validateDateRange(start, end string) error {
	s, err := time.Parse(models.DateLayout, start)
	if err != nil {
		return NewValidationError(fmt.Sprintf("invalid start date %q", start))
	}
	e, err := time.Parse(models.DateLayout, end)
	if err != nil {
		return NewValidationError(fmt.Sprintf("invalid end date %q", end))
	}
	if !s.Before(e) {
		return NewValidationError("start date must be strictly before end date")
	}
	return nil
}

// CreateBooking validates input, checks availability, and persists a new
// pending booking. The availability check re-runs atomically with the
// insert inside the repository transaction, so two racing creations for
// overlapping ranges cannot both succeed.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, renterID string, req models.CreateBookingRequest) (*models.BookingDetail, error) {
	logger := utils.GetLogger()

	if renterID == "" {
		return nil, NewValidationError("missing renter id")
	}
	if req.UnitID == "" {
		return nil, NewValidationError("missing unit id")
	}
	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	if req.TotalPrice <= 0 {
		return nil, NewValidationError("total price must be positive")
	}

	unit, err := s.UnitRepo.GetByID(req.UnitID)
	if err != nil {
		logger.Error("CreateBooking: unit lookup failed", zap.String("unitID", req.UnitID), zap.Error(err))
		return nil, NewInternalError("failed to load storage unit")
	}
	if unit == nil {
		return nil, NewNotFoundError(fmt.Sprintf("storage unit %s not found", req.UnitID))
	}

	// Fast-path check so obvious conflicts fail before the write transaction.
	available, err := s.IsAvailable(req.UnitID, req.StartDate, req.EndDate)
	if err != nil {
		logger.Error("CreateBooking: availability check failed", zap.String("unitID", req.UnitID), zap.Error(err))
		return nil, NewInternalError("availability check failed")
	}
	if !available {
		return nil, NewAvailabilityConflictError(
			fmt.Sprintf("unit %s is already booked between %s and %s", req.UnitID, req.StartDate, req.EndDate))
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		RenterID:   renterID,
		UnitID:     req.UnitID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TotalPrice: req.TotalPrice,
		Status:     models.BookingStatusPending,
	}

	if err := s.Repo.CreateIfAvailable(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrOverlap) {
			return nil, NewAvailabilityConflictError(
				fmt.Sprintf("unit %s is already booked between %s and %s", req.UnitID, req.StartDate, req.EndDate))
		}
		logger.Error("CreateBooking: insert failed", zap.String("unitID", req.UnitID), zap.Error(err))
		return nil, NewInternalError("failed to persist booking")
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("unitID", booking.UnitID),
		zap.String("renterID", renterID))

	return s.toDetail(booking), nil
}

// ConfirmBooking attaches the payment reference and moves the booking from
// pending to confirmed. The caller is the payment workflow, after invoice
// issuance succeeded.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, bookingID, paymentID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	if paymentID == "" {
		return nil, NewInvalidTransitionError("confirmation requires a payment id")
	}

	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}

	booking.PaymentID = paymentID
	if err := Transition(booking, models.BookingStatusConfirmed); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(booking); err != nil {
		logger.Error("ConfirmBooking: update failed", zap.String("bookingID", bookingID), zap.Error(err))
		return nil, NewInternalError("failed to persist booking confirmation")
	}

	logger.Info("booking confirmed", zap.String("bookingID", bookingID), zap.String("paymentID", paymentID))
	return booking, nil
}

// CancelBooking moves a booking to cancelled. Repeating the call fails with
// the distinct alreadyCancelled code rather than invalidStateTransition.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	logger := utils.GetLogger()

	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == models.BookingStatusCancelled {
		return nil, NewAlreadyCancelledError(fmt.Sprintf("booking %s is already cancelled", bookingID))
	}

	if err := Transition(booking, models.BookingStatusCancelled); err != nil {
		return nil, err
	}

	if err := s.Repo.Update(booking); err != nil {
		logger.Error("CancelBooking: update failed", zap.String("bookingID", bookingID), zap.Error(err))
		return nil, NewInternalError("failed to persist booking cancellation")
	}

	logger.Info("booking cancelled", zap.String("bookingID", bookingID))
	return booking, nil
}

// UpdateBooking re-schedules a booking. Cancelled bookings cannot be edited,
// and the new range must not overlap any other non-cancelled booking for the
// unit; the conflict check runs atomically with the commit.
func (s *DefaultBookingService) UpdateBooking(ctx context.Context, bookingID string, req models.UpdateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if err := validateDateRange(req.StartDate, req.EndDate); err != nil {
		return nil, err
	}
	if req.TotalPrice <= 0 {
		return nil, NewValidationError("total price must be positive")
	}

	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == models.BookingStatusCancelled {
		return nil, NewInvalidTransitionError(
			fmt.Sprintf("booking %s is cancelled and cannot be rescheduled", bookingID))
	}

	booking.StartDate = req.StartDate
	booking.EndDate = req.EndDate
	booking.TotalPrice = req.TotalPrice

	if err := s.Repo.UpdateDatesIfAvailable(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrOverlap) {
			return nil, NewAvailabilityConflictError(
				fmt.Sprintf("unit %s is already booked between %s and %s", booking.UnitID, req.StartDate, req.EndDate))
		}
		logger.Error("UpdateBooking: update failed", zap.String("bookingID", bookingID), zap.Error(err))
		return nil, NewInternalError("failed to persist booking update")
	}

	logger.Info("booking rescheduled",
		zap.String("bookingID", bookingID),
		zap.String("start", req.StartDate),
		zap.String("end", req.EndDate))
	return booking, nil
}

// loadBooking fetches a booking or returns the domain not-found error.
func (s *DefaultBookingService) loadBooking(bookingID string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, NewValidationError("missing booking id")
	}
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		utils.GetLogger().Error("booking lookup failed", zap.String("bookingID", bookingID), zap.Error(err))
		return nil, NewInternalError("failed to load booking")
	}
	if booking == nil {
		return nil, NewNotFoundError(fmt.Sprintf("booking %s not found", bookingID))
	}
	return booking, nil
}

// toDetail denormalizes renter and unit display data onto the booking.
// Lookups are best-effort; a missing join leaves the field empty.
func (s *DefaultBookingService) toDetail(booking *models.Booking) *models.BookingDetail {
	detail := &models.BookingDetail{Booking: *booking}

	if renter, err := s.UserRepo.GetByID(booking.RenterID); err == nil && renter != nil {
		detail.RenterName = renter.Name
	}
	if unit, err := s.UnitRepo.GetByID(booking.UnitID); err == nil && unit != nil {
		detail.UnitTitle = unit.Title
		detail.UnitAddress = unit.Address
	}
	return detail
}
