package payment

import (
	"context"

	bookingRepo "storely/database/repository/booking"
	paymentRepo "storely/database/repository/payment"
	unitRepo "storely/database/repository/unit"
	userRepo "storely/database/repository/user"
	"storely/models"
)

// LineItem describes one line on a draft invoice.
type LineItem struct {
	Amount      int64 // minor units
	Currency    string
	Description string
}

// DraftInvoice carries everything the external processor needs to open a
// draft invoice for a booking.
type DraftInvoice struct {
	CustomerID     string // renter's billing customer at the processor
	DestinationID  string // host's payee account at the processor
	ApplicationFee int64  // marketplace cut, minor units
	LineItems      []LineItem
	Metadata       map[string]string // must carry booking id and payment id
}

// InvoiceInfo is the processor's view of an invoice.
type InvoiceInfo struct {
	ID        string
	Status    string // processor status: draft | open | paid | void | uncollectible
	HostedURL string
}

// InvoiceGateway is the narrow interface to the external payment
// collaborator. Every call is an I/O suspension point and must respect ctx.
type InvoiceGateway interface {
	CreateDraftInvoice(ctx context.Context, draft DraftInvoice) (string, error)
	FinalizeInvoice(ctx context.Context, invoiceID string) (*InvoiceInfo, error)
	GetInvoice(ctx context.Context, invoiceID string) (*InvoiceInfo, error)
}

// BookingConfirmer is the slice of the booking orchestrator the payment
// workflow needs: flip a pending booking to confirmed once issuance succeeds.
type BookingConfirmer interface {
	ConfirmBooking(ctx context.Context, bookingID, paymentID string) (*models.Booking, error)
}

// PaymentService drives the invoice workflow and reconciles payment status
// from webhook events and background polling.
type PaymentService interface {
	CreateAndIssueInvoice(ctx context.Context, bookingID string) (*models.Payment, error)
	UpdateStatusFromWebhook(ctx context.Context, invoiceID, processorStatus string) error
	GetInvoiceURL(ctx context.Context, paymentID string) (string, error)
	GetByID(paymentID string) (*models.Payment, error)
	ReconcilePending(ctx context.Context) error
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Repo        paymentRepo.PaymentRepository
	BookingRepo bookingRepo.BookingRepository
	UserRepo    userRepo.UserRepository
	UnitRepo    unitRepo.UnitRepository
	Gateway     InvoiceGateway
	Confirmer   BookingConfirmer
	FeePercent  float64 // marketplace cut, e.g. 3 for 3%
}
