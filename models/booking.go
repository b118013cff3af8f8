package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// DateLayout is the calendar-date format used across booking records.
const DateLayout = "2006-01-02"

// Booking represents one reservation of a storage unit by a renter
// for a half-open date range [start_date, end_date).
type Booking struct {
	ID         string    `bson:"id" json:"id"`                  // Unique booking identifier (UUID)
	RenterID   string    `bson:"renter_id" json:"renterId"`     // User who made the booking
	UnitID     string    `bson:"unit_id" json:"unitId"`         // Storage unit being booked
	StartDate  string    `bson:"start_date" json:"startDate"`   // "YYYY-MM-DD", inclusive
	EndDate    string    `bson:"end_date" json:"endDate"`       // "YYYY-MM-DD", exclusive
	TotalPrice float64   `bson:"total_price" json:"totalPrice"` // Total rental price
	Status     string    `bson:"status" json:"status"`          // pending | confirmed | cancelled
	PaymentID  string    `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsTerminal reports whether the booking has reached its absorbing state.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCancelled
}
