package models

// BookingDetail is a booking joined with display data about the renter and
// the storage unit, returned by read-through endpoints.
type BookingDetail struct {
	Booking
	RenterName  string `json:"renterName,omitempty"`
	UnitTitle   string `json:"unitTitle,omitempty"`
	UnitAddress string `json:"unitAddress,omitempty"`
}

// CreateBookingRequest is the inbound payload for creating a booking.
// The renter id comes from the authenticated identity, not the body.
type CreateBookingRequest struct {
	UnitID     string  `json:"unitId"`
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	TotalPrice float64 `json:"totalPrice"`
}

// UpdateBookingRequest is the inbound payload for re-scheduling a booking.
type UpdateBookingRequest struct {
	StartDate  string  `json:"startDate"`
	EndDate    string  `json:"endDate"`
	TotalPrice float64 `json:"totalPrice"`
}
