package models

import "time"

// User roles.
const (
	RoleRenter = "renter"
	RoleHost   = "host"
)

// RenterProfile carries renter-side billing references.
type RenterProfile struct {
	StripeCustomerID string `bson:"stripe_customer_id,omitempty" json:"stripeCustomerId,omitempty"`
}

// HostProfile carries host-side payout references.
type HostProfile struct {
	StripeAccountID string `bson:"stripe_account_id,omitempty" json:"stripeAccountId,omitempty"`
	PayoutsEnabled  bool   `bson:"payouts_enabled" json:"payoutsEnabled"`
}

// User is a single account record with a role discriminator. Role-specific
// data lives in the optional profile sub-records rather than in subtypes.
type User struct {
	ID        string         `bson:"id" json:"id"`
	Name      string         `bson:"name" json:"name"`
	Email     string         `bson:"email" json:"email"`
	Role      string         `bson:"role" json:"role"` // renter | host
	Renter    *RenterProfile `bson:"renter,omitempty" json:"renter,omitempty"`
	Host      *HostProfile   `bson:"host,omitempty" json:"host,omitempty"`
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updated_at" json:"updatedAt"`
}
