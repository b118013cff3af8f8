package payment_test

import (
	"context"
	"errors"
	"sync"

	"storely/models"
	"storely/services/payment"
)

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]models.Payment
	updates  int
}

func newFakePaymentRepo(payments ...*models.Payment) *fakePaymentRepo {
	r := &fakePaymentRepo{payments: make(map[string]models.Payment)}
	for _, p := range payments {
		r.payments[p.ID] = *p
	}
	return r
}

func (r *fakePaymentRepo) GetByID(id string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	copied := p
	return &copied, nil
}

func (r *fakePaymentRepo) GetByBookingID(bookingID string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.BookingID == bookingID {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) GetByInvoiceID(invoiceID string) (*models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payments {
		if p.StripeInvoiceID == invoiceID {
			copied := p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) ListByStatuses(statuses []string) ([]models.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Payment
	for _, p := range r.payments {
		for _, s := range statuses {
			if p.Status == s {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) Create(p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[p.ID] = *p
	return nil
}

func (r *fakePaymentRepo) Update(p *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[p.ID] = *p
	r.updates++
	return nil
}

// stored returns the persisted record for assertions.
func (r *fakePaymentRepo) stored(id string) *models.Payment {
	p, _ := r.GetByID(id)
	return p
}

// fakeBookingStore implements the booking repository surface the payment
// workflow touches: load by id and update the backlink.
type fakeBookingStore struct {
	mu       sync.Mutex
	bookings map[string]models.Booking
}

func newFakeBookingStore(bookings ...*models.Booking) *fakeBookingStore {
	r := &fakeBookingStore{bookings: make(map[string]models.Booking)}
	for _, b := range bookings {
		r.bookings[b.ID] = *b
	}
	return r
}

func (r *fakeBookingStore) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	copied := b
	return &copied, nil
}

func (r *fakeBookingStore) Update(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingStore) GetAll() ([]models.Booking, error)                   { return nil, nil }
func (r *fakeBookingStore) GetByRenter(string) ([]models.Booking, error)        { return nil, nil }
func (r *fakeBookingStore) GetByUnit(string) ([]models.Booking, error)          { return nil, nil }
func (r *fakeBookingStore) GetByStatus(string) ([]models.Booking, error)        { return nil, nil }
func (r *fakeBookingStore) GetForDateRange(_, _ string) ([]models.Booking, error) { return nil, nil }
func (r *fakeBookingStore) FindOverlapping(_, _, _, _ string) ([]models.Booking, error) {
	return nil, nil
}
func (r *fakeBookingStore) CreateIfAvailable(context.Context, *models.Booking) error { return nil }
func (r *fakeBookingStore) UpdateDatesIfAvailable(context.Context, *models.Booking) error {
	return nil
}

type fakeUserRepo struct {
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
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) Create(u *models.User) error             { r.users[u.ID] = *u; return nil }
func (r *fakeUserRepo) Update(u *models.User) error             { r.users[u.ID] = *u; return nil }

type fakeUnitRepo struct {
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
	u, ok := r.units[id]
	if !ok {
		return nil, nil
	}
	copied := u
	return &copied, nil
}

func (r *fakeUnitRepo) GetAll() ([]models.StorageUnit, error)             { return nil, nil }
func (r *fakeUnitRepo) GetByHost(string) ([]models.StorageUnit, error)    { return nil, nil }
func (r *fakeUnitRepo) Create(u *models.StorageUnit) error                { r.units[u.ID] = *u; return nil }
func (r *fakeUnitRepo) Update(u *models.StorageUnit) error                { r.units[u.ID] = *u; return nil }

// fakeGateway scripts processor responses and records the call order.
type fakeGateway struct {
	mu    sync.Mutex
	calls []string

	createFn   func(draft payment.DraftInvoice) (string, error)
	finalizeFn func(invoiceID string) (*payment.InvoiceInfo, error)
	getFn      func(invoiceID string) (*payment.InvoiceInfo, error)

	lastDraft payment.DraftInvoice
}

func (g *fakeGateway) record(call string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, call)
}

func (g *fakeGateway) CreateDraftInvoice(_ context.Context, draft payment.DraftInvoice) (string, error) {
	g.record("create")
	g.lastDraft = draft
	if g.createFn == nil {
		return "", errors.New("unexpected CreateDraftInvoice call")
	}
	return g.createFn(draft)
}

func (g *fakeGateway) FinalizeInvoice(_ context.Context, invoiceID string) (*payment.InvoiceInfo, error) {
	g.record("finalize")
	if g.finalizeFn == nil {
		return nil, errors.New("unexpected FinalizeInvoice call")
	}
	return g.finalizeFn(invoiceID)
}

func (g *fakeGateway) GetInvoice(_ context.Context, invoiceID string) (*payment.InvoiceInfo, error) {
	g.record("get")
	if g.getFn == nil {
		return nil, errors.New("unexpected GetInvoice call")
	}
	return g.getFn(invoiceID)
}

// fakeConfirmer records booking confirmations triggered by the workflow.
type fakeConfirmer struct {
	mu         sync.Mutex
	bookingIDs []string
	paymentIDs []string
	err        error
}

func (c *fakeConfirmer) ConfirmBooking(_ context.Context, bookingID, paymentID string) (*models.Booking, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bookingIDs = append(c.bookingIDs, bookingID)
	c.paymentIDs = append(c.paymentIDs, paymentID)
	if c.err != nil {
		return nil, c.err
	}
	return &models.Booking{ID: bookingID, Status: models.BookingStatusConfirmed, PaymentID: paymentID}, nil
}
