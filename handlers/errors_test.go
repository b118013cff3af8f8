package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"storely/services/booking"
	"storely/services/payment"
)

func TestBookingErrStatus(t *testing.T) {
	type testCase struct {
		name string
		err  error
		want int
	}

	tests := []testCase{
		{name: "Validation", err: booking.NewValidationError("bad input"), want: http.StatusBadRequest},
		{name: "NotFound", err: booking.NewNotFoundError("no such booking"), want: http.StatusNotFound},
		{name: "Conflict", err: booking.NewAvailabilityConflictError("taken"), want: http.StatusConflict},
		{name: "InvalidTransition", err: booking.NewInvalidTransitionError("cannot confirm"), want: http.StatusConflict},
		{name: "AlreadyCancelled", err: booking.NewAlreadyCancelledError("done already"), want: http.StatusConflict},
		{name: "Internal", err: booking.NewInternalError("db down"), want: http.StatusInternalServerError},
		{name: "Uncoded", err: errors.New("surprise"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bookingErrStatus(tt.err))
		})
	}
}

func TestPaymentErrStatus(t *testing.T) {
	type testCase struct {
		name string
		err  error
		want int
	}

	tests := []testCase{
		{name: "NotFound", err: payment.NewNotFoundError("no such payment"), want: http.StatusNotFound},
		{name: "MissingRelatedData", err: payment.NewMissingRelatedDataError("no host"), want: http.StatusBadRequest},
		{name: "ExternalAccountMissing", err: payment.NewExternalAccountMissingError("no customer"), want: http.StatusBadRequest},
		{name: "NoInvoiceAssociated", err: payment.NewNoInvoiceAssociatedError("draft only"), want: http.StatusBadRequest},
		{name: "UpstreamFailure", err: payment.NewUpstreamFailureError("processor down"), want: http.StatusBadGateway},
		{name: "Internal", err: payment.NewInternalError("db down"), want: http.StatusInternalServerError},
		{name: "Uncoded", err: errors.New("surprise"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paymentErrStatus(tt.err))
		})
	}
}
