package paymentRepo

import "storely/models"

// PaymentRepository defines methods for payment data access. Lookup methods
// return (nil, nil) when no document matches.
type PaymentRepository interface {
	// GetByID retrieves a payment by its unique ID.
	GetByID(id string) (*models.Payment, error)
	// GetByBookingID retrieves the payment backing a booking.
	GetByBookingID(bookingID string) (*models.Payment, error)
	// GetByInvoiceID retrieves a payment by its external invoice identifier.
	GetByInvoiceID(invoiceID string) (*models.Payment, error)
	// ListByStatuses retrieves payments in any of the given statuses.
	ListByStatuses(statuses []string) ([]models.Payment, error)
	// Create inserts a new payment record.
	Create(payment *models.Payment) error
	// Update replaces an existing payment record.
	Update(payment *models.Payment) error
}
