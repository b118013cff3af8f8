package booking

import (
	"fmt"
	"time"

	"storely/models"
)

// Legal status transitions. Cancelled is absorbing; a confirmed booking can
// only be cancelled.
var legalTransitions = map[string][]string{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCancelled},
	models.BookingStatusCancelled: {},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition applies a status change to the booking after validating it.
// Confirming requires a payment reference to already be attached.
func Transition(b *models.Booking, to string) error {
	if b.Status == models.BookingStatusCancelled {
		return NewInvalidTransitionError(
			fmt.Sprintf("booking %s is cancelled and cannot change state", b.ID))
	}
	if !CanTransition(b.Status, to) {
		return NewInvalidTransitionError(
			fmt.Sprintf("cannot move booking %s from %s to %s", b.ID, b.Status, to))
	}
	if to == models.BookingStatusConfirmed && b.PaymentID == "" {
		return NewInvalidTransitionError(
			fmt.Sprintf("booking %s has no payment record; confirmation requires issued payment", b.ID))
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	return nil
}
