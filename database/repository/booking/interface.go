package bookingRepo

import (
	"context"
	"errors"

	"storely/models"
)

// ErrOverlap is returned by the transactional write paths when the requested
// date range overlaps an existing non-cancelled booking for the same unit.
var ErrOverlap = errors.New("date range overlaps an existing booking")

// BookingRepository defines methods for booking data access. Lookup methods
// return (nil, nil) when no document matches.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings.
	GetAll() ([]models.Booking, error)
	// GetByRenter retrieves all bookings made by a renter.
	GetByRenter(renterID string) ([]models.Booking, error)
	// GetByUnit retrieves all bookings for a storage unit.
	GetByUnit(unitID string) ([]models.Booking, error)
	// GetByStatus retrieves all bookings in the given status.
	GetByStatus(status string) ([]models.Booking, error)
	// GetForDateRange retrieves bookings whose range overlaps [start, end).
	GetForDateRange(start, end string) ([]models.Booking, error)
	// FindOverlapping returns non-cancelled bookings for the unit overlapping
	// [start, end), excluding excludeID when non-empty.
	FindOverlapping(unitID, start, end, excludeID string) ([]models.Booking, error)
	// Update replaces an existing booking record.
	Update(booking *models.Booking) error
	// CreateIfAvailable inserts the booking only if no overlapping
	// non-cancelled booking exists for the same unit. The overlap check and
	// the insert run in a single transaction; ErrOverlap on conflict.
	CreateIfAvailable(ctx context.Context, booking *models.Booking) error
	// UpdateDatesIfAvailable commits a new date range only if it does not
	// overlap any other non-cancelled booking for the unit. ErrOverlap on
	// conflict.
	UpdateDatesIfAvailable(ctx context.Context, booking *models.Booking) error
}
