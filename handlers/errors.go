package handlers

import (
	"net/http"

	"storely/services/booking"
	"storely/services/payment"
)

// bookingErrStatus maps booking domain error codes to HTTP statuses.
func bookingErrStatus(err error) int {
	switch booking.CodeOf(err) {
	case booking.CodeValidation:
		return http.StatusBadRequest
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeAvailabilityConflict,
		booking.CodeInvalidTransition,
		booking.CodeAlreadyCancelled:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// paymentErrStatus maps payment workflow error codes to HTTP statuses.
func paymentErrStatus(err error) int {
	switch payment.CodeOf(err) {
	case payment.CodeNotFound:
		return http.StatusNotFound
	case payment.CodeMissingRelatedData,
		payment.CodeExternalAccountMissing,
		payment.CodeNoInvoiceAssociated:
		return http.StatusBadRequest
	case payment.CodeUpstreamFailure:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
