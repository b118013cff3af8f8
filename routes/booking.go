package routes

import (
	"github.com/gin-gonic/gin"

	"storely/middleware"
)

// RegisterBookingRoutes registers booking and payment endpoints. All of them
// require an authenticated identity.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	bookings := r.Group("/api/bookings")
	bookings.Use(middleware.JWTAuthMiddleware())
	{
		bookings.POST("", hb.Booking.CreateBooking)
		bookings.GET("", hb.Booking.ListBookings)
		bookings.GET("/:id", hb.Booking.GetBooking)
		bookings.PUT("/:id", hb.Booking.UpdateBooking)
		bookings.POST("/:id/confirm", hb.Booking.ConfirmBooking)
		bookings.POST("/:id/cancel", hb.Booking.CancelBooking)
		bookings.POST("/:id/invoice", hb.Payment.IssueInvoice)
	}

	payments := r.Group("/api/payments")
	payments.Use(middleware.JWTAuthMiddleware())
	{
		payments.GET("/:id", hb.Payment.GetPayment)
		payments.GET("/:id/url", hb.Payment.GetInvoiceURL)
	}
}
