package booking

import (
	"time"

	"storely/models"
)

// GetByID retrieves a booking with denormalized display data.
func (s *DefaultBookingService) GetByID(id string) (*models.BookingDetail, error) {
	booking, err := s.loadBooking(id)
	if err != nil {
		return nil, err
	}
	return s.toDetail(booking), nil
}

// GetAll retrieves all bookings.
func (s *DefaultBookingService) GetAll() ([]models.Booking, error) {
	return s.Repo.GetAll()
}

// GetByRenter retrieves all bookings made by a renter.
func (s *DefaultBookingService) GetByRenter(renterID string) ([]models.Booking, error) {
	if renterID == "" {
		return nil, NewValidationError("missing renter id")
	}
	return s.Repo.GetByRenter(renterID)
}

// GetByUnit retrieves all bookings for a storage unit.
func (s *DefaultBookingService) GetByUnit(unitID string) ([]models.Booking, error) {
	if unitID == "" {
		return nil, NewValidationError("missing unit id")
	}
	return s.Repo.GetByUnit(unitID)
}

// GetByStatus retrieves all bookings in the given status.
func (s *DefaultBookingService) GetByStatus(status string) ([]models.Booking, error) {
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled:
		return s.Repo.GetByStatus(status)
	}
	return nil, NewValidationError("unknown booking status " + status)
}

// GetForDateRange retrieves bookings whose range overlaps [start, end).
func (s *DefaultBookingService) GetForDateRange(start, end string) ([]models.Booking, error) {
	if err := validateDateRange(start, end); err != nil {
		return nil, err
	}
	return s.Repo.GetForDateRange(start, end)
}

// today returns the current wall-clock date in booking date format.
func today() string {
	return time.Now().Format(models.DateLayout)
}

// filterActive keeps non-cancelled bookings.
func filterActive(bookings []models.Booking) []models.Booking {
	var active []models.Booking
	for _, b := range bookings {
		if b.Status != models.BookingStatusCancelled {
			active = append(active, b)
		}
	}
	return active
}

// ActiveBookings returns all non-cancelled bookings.
func (s *DefaultBookingService) ActiveBookings() ([]models.Booking, error) {
	all, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	return filterActive(all), nil
}

// UpcomingBookings returns active bookings whose start date is in the future.
func (s *DefaultBookingService) UpcomingBookings() ([]models.Booking, error) {
	active, err := s.ActiveBookings()
	if err != nil {
		return nil, err
	}
	now := today()
	var upcoming []models.Booking
	for _, b := range active {
		if b.StartDate > now {
			upcoming = append(upcoming, b)
		}
	}
	return upcoming, nil
}

// CurrentBookings returns active bookings covering today.
func (s *DefaultBookingService) CurrentBookings() ([]models.Booking, error) {
	active, err := s.ActiveBookings()
	if err != nil {
		return nil, err
	}
	now := today()
	var current []models.Booking
	for _, b := range active {
		if b.StartDate <= now && now <= b.EndDate {
			current = append(current, b)
		}
	}
	return current, nil
}

// ExpiredBookings returns bookings of any status whose end date has passed.
func (s *DefaultBookingService) ExpiredBookings() ([]models.Booking, error) {
	all, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}
	now := today()
	var expired []models.Booking
	for _, b := range all {
		if b.EndDate < now {
			expired = append(expired, b)
		}
	}
	return expired, nil
}

// StartingWithin returns active bookings starting in the next N days,
// today included.
func (s *DefaultBookingService) StartingWithin(days int) ([]models.Booking, error) {
	if days < 0 {
		return nil, NewValidationError("days must not be negative")
	}
	active, err := s.ActiveBookings()
	if err != nil {
		return nil, err
	}
	now := today()
	cutoff := time.Now().AddDate(0, 0, days).Format(models.DateLayout)
	var soon []models.Booking
	for _, b := range active {
		if b.StartDate >= now && b.StartDate <= cutoff {
			soon = append(soon, b)
		}
	}
	return soon, nil
}
