package booking

import (
	"context"

	bookingRepo "storely/database/repository/booking"
	unitRepo "storely/database/repository/unit"
	userRepo "storely/database/repository/user"
	"storely/models"
)

// BookingService owns the booking lifecycle: creation behind the
// availability check, status transitions, re-scheduling, and reads.
type BookingService interface {
	CreateBooking(ctx context.Context, renterID string, req models.CreateBookingRequest) (*models.BookingDetail, error)
	GetByID(id string) (*models.BookingDetail, error)
	GetAll() ([]models.Booking, error)
	GetByRenter(renterID string) ([]models.Booking, error)
	GetByUnit(unitID string) ([]models.Booking, error)
	GetByStatus(status string) ([]models.Booking, error)
	GetForDateRange(start, end string) ([]models.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID, paymentID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, bookingID string, req models.UpdateBookingRequest) (*models.Booking, error)

	// Derived views over the booking set, evaluated against the current date.
	ActiveBookings() ([]models.Booking, error)
	UpcomingBookings() ([]models.Booking, error)
	CurrentBookings() ([]models.Booking, error)
	ExpiredBookings() ([]models.Booking, error)
	StartingWithin(days int) ([]models.Booking, error)

	IsAvailable(unitID, start, end string) (bool, error)
	FindOverlapping(unitID, start, end, excludeBookingID string) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	UnitRepo unitRepo.UnitRepository
	UserRepo userRepo.UserRepository
}
