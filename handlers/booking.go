package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storely/models"
	"storely/services/booking"
	"storely/utils"
)

// BookingHandler exposes the booking orchestrator over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, logger: logger}
}

// CreateBooking creates a pending booking for the authenticated renter.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	renterID := c.GetString("userID")
	detail, err := h.Service.CreateBooking(c.Request.Context(), renterID, req)
	if err != nil {
		utils.JSONError(c, bookingErrStatus(err), "failed to create booking", err.Error())
		return
	}

	c.JSON(http.StatusCreated, detail)
}

// GetBooking returns one booking with denormalized display data.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	detail, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, bookingErrStatus(err), "failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListBookings lists bookings, narrowed by query parameters: status,
// renterId, unitId, from/to (date range), or view
// (active|upcoming|current|expired|soon with days).
func (h *BookingHandler) ListBookings(c *gin.Context) {
	var (
		bookings []models.Booking
		err      error
	)

	switch {
	case c.Query("view") != "":
		bookings, err = h.listView(c)
	case c.Query("status") != "":
		bookings, err = h.Service.GetByStatus(c.Query("status"))
	case c.Query("renterId") != "":
		bookings, err = h.Service.GetByRenter(c.Query("renterId"))
	case c.Query("unitId") != "":
		bookings, err = h.Service.GetByUnit(c.Query("unitId"))
	case c.Query("from") != "" || c.Query("to") != "":
		bookings, err = h.Service.GetForDateRange(c.Query("from"), c.Query("to"))
	default:
		bookings, err = h.Service.GetAll()
	}

	if err != nil {
		utils.JSONError(c, bookingErrStatus(err), "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) listView(c *gin.Context) ([]models.Booking, error) {
	switch view := c.Query("view"); view {
	case "active":
		return h.Service.ActiveBookings()
	case "upcoming":
		return h.Service.UpcomingBookings()
	case "current":
		return h.Service.CurrentBookings()
	case "expired":
		return h.Service.ExpiredBookings()
	case "soon":
		days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
		if err != nil {
			return nil, booking.NewValidationError("days must be an integer")
		}
		return h.Service.StartingWithin(days)
	default:
		return nil, booking.NewValidationError("unknown view " + view)
	}
}

// UpdateBooking re-schedules a booking.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.UpdateBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.JSONError(c, bookingErrStatus(err), "failed to update booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ConfirmBooking confirms a pending booking against an issued payment.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	var input struct {
		PaymentID string `json:"paymentId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	confirmed, err := h.Service.ConfirmBooking(c.Request.Context(), c.Param("id"), input.PaymentID)
	if err != nil {
		utils.JSONError(c, bookingErrStatus(err), "failed to confirm booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, confirmed)
}

// CancelBooking cancels a booking.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	cancelled, err := h.Service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, bookingErrStatus(err), "failed to cancel booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, cancelled)
}
