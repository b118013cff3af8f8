package bookingRepo

import (
	"storely/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetByRenter retrieves all bookings made by a renter.
func (r *MongoBookingRepo) GetByRenter(renterID string) ([]models.Booking, error) {
	return r.find(bson.M{"renter_id": renterID})
}

// GetByUnit retrieves all bookings for a storage unit.
func (r *MongoBookingRepo) GetByUnit(unitID string) ([]models.Booking, error) {
	return r.find(bson.M{"unit_id": unitID})
}

// GetByStatus retrieves all bookings in the given status.
func (r *MongoBookingRepo) GetByStatus(status string) ([]models.Booking, error) {
	return r.find(bson.M{"status": status})
}

// GetForDateRange retrieves bookings whose date range overlaps [start, end).
// ISO date strings compare lexicographically, so range operators apply directly.
func (r *MongoBookingRepo) GetForDateRange(start, end string) ([]models.Booking, error) {
	return r.find(bson.M{
		"start_date": bson.M{"$lt": end},
		"end_date":   bson.M{"$gt": start},
	})
}

// overlapFilter matches non-cancelled bookings for the unit whose half-open
// range [start_date, end_date) overlaps [start, end).
func overlapFilter(unitID, start, end, excludeID string) bson.M {
	filter := bson.M{
		"unit_id":    unitID,
		"status":     bson.M{"$ne": models.BookingStatusCancelled},
		"start_date": bson.M{"$lt": end},
		"end_date":   bson.M{"$gt": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}
	return filter
}

// FindOverlapping returns non-cancelled bookings for the unit overlapping
// [start, end), excluding excludeID when non-empty.
func (r *MongoBookingRepo) FindOverlapping(unitID, start, end, excludeID string) ([]models.Booking, error) {
	return r.find(overlapFilter(unitID, start, end, excludeID))
}
