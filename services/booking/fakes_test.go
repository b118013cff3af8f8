package booking_test

import (
	"context"
	"sync"

	bookingRepo "storely/database/repository/booking"
	"storely/models"
	"storely/services/booking"
)

// fakeBookingRepo is an in-memory BookingRepository. The mutex makes the
// transactional write paths atomic, mirroring the real store's check-then-write
// transaction.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *fakeBookingRepo) seed(b *models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = *b
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := b
	return &copied, nil
}

func (r *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByRenter(renterID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.RenterID == renterID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByUnit(unitID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UnitID == unitID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByStatus(status string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetForDateRange(start, end string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if booking.RangesOverlap(b.StartDate, b.EndDate, start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindOverlapping(unitID, start, end, excludeID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.overlapping(unitID, start, end, excludeID), nil
}

// overlapping must be called with the mutex held.
func (r *fakeBookingRepo) overlapping(unitID, start, end, excludeID string) []models.Booking {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UnitID != unitID || b.Status == models.BookingStatusCancelled {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if booking.RangesOverlap(b.StartDate, b.EndDate, start, end) {
			out = append(out, b)
		}
	}
	return out
}

func (r *fakeBookingRepo) Update(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) CreateIfAvailable(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.overlapping(b.UnitID, b.StartDate, b.EndDate, "")) > 0 {
		return bookingRepo.ErrOverlap
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) UpdateDatesIfAvailable(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.overlapping(b.UnitID, b.StartDate, b.EndDate, b.ID)) > 0 {
		return bookingRepo.ErrOverlap
	}
	r.bookings[b.ID] = *b
	return nil
}

type fakeUnitRepo struct {
	mu    sync.Mutex
	units map[string]models.StorageUnit
}

func newFakeUnitRepo(units ...*models.StorageUnit) *fakeUnitRepo {
	r := &fakeUnitRepo{units: make(map[string]models.StorageUnit)}
	for _, u := range units {
		r.units[u.ID] = *u
	}
	return r
}

func (r *fakeUnitRepo) GetByID(id string) (*models.StorageUnit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.units[id]
	if !ok {
		return nil, nil
	}
	copied := u
	return &copied, nil
}

func (r *fakeUnitRepo) GetAll() ([]models.StorageUnit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.StorageUnit
	for _, u := range r.units {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUnitRepo) GetByHost(hostID string) ([]models.StorageUnit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.StorageUnit
	for _, u := range r.units {
		if u.HostID == hostID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUnitRepo) Create(u *models.StorageUnit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.units[u.ID] = *u
	return nil
}

func (r *fakeUnitRepo) Update(u *models.StorageUnit) error {
	return r.Create(u)
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]models.User)}
	for _, u := range users {
		r.users[u.ID] = *u
	}
	return r
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	return r.Create(u)
}
