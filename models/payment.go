package models

import "time"

// Payment statuses, mirroring the processor's invoice lifecycle.
const (
	PaymentStatusDraft         = "draft"
	PaymentStatusOpen          = "open"
	PaymentStatusPaid          = "paid"
	PaymentStatusVoid          = "void"
	PaymentStatusUncollectible = "uncollectible"
)

// Payment is the monetary record backing exactly one booking. External
// identifiers are populated progressively as the invoice workflow advances.
type Payment struct {
	ID                string    `bson:"id" json:"id"`
	BookingID         string    `bson:"booking_id" json:"bookingId"` // Unique; one payment per booking
	RenterID          string    `bson:"renter_id" json:"renterId"`
	HostID            string    `bson:"host_id" json:"hostId"`
	StripeInvoiceID   string    `bson:"stripe_invoice_id,omitempty" json:"stripeInvoiceId,omitempty"`
	StripeCustomerID  string    `bson:"stripe_customer_id,omitempty" json:"stripeCustomerId,omitempty"`
	StripeAccountID   string    `bson:"stripe_account_id,omitempty" json:"stripeAccountId,omitempty"`
	Amount            int64     `bson:"amount" json:"amount"` // Amount charged, in minor units
	Currency          string    `bson:"currency" json:"currency"`
	PlatformFee       int64     `bson:"platform_fee" json:"platformFee"`             // Marketplace cut, in minor units
	AmountTransferred float64   `bson:"amount_transferred" json:"amountTransferred"` // Paid out to the host, major units
	Status            string    `bson:"status" json:"status"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsTerminal reports whether the payment can no longer advance.
func (p *Payment) IsTerminal() bool {
	switch p.Status {
	case PaymentStatusPaid, PaymentStatusVoid, PaymentStatusUncollectible:
		return true
	}
	return false
}
