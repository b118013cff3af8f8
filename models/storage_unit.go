package models

import "time"

// StorageUnit is a rentable storage listing owned by a host.
type StorageUnit struct {
	ID          string    `bson:"id" json:"id"`
	HostID      string    `bson:"host_id" json:"hostId"`
	Title       string    `bson:"title" json:"title"`
	Address     string    `bson:"address" json:"address"`
	SizeSqm     float64   `bson:"size_sqm" json:"sizeSqm"`
	PricePerDay float64   `bson:"price_per_day" json:"pricePerDay"`
	Currency    string    `bson:"currency" json:"currency"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
