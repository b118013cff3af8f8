package booking

import "storely/models"

// RangesOverlap applies the half-open interval test: [s, e) overlaps
// [s2, e2) iff s < e2 && e > s2. Ranges that touch at a boundary do not
// overlap. ISO date strings compare lexicographically so plain string
// comparison is correct here.
func RangesOverlap(s, e, s2, e2 string) bool {
	return s < e2 && e > s2
}

// IsAvailable reports whether the unit has no non-cancelled booking
// overlapping [start, end). Callers validate start < end upstream.
//
// This is a read-side answer only; the authoritative check re-runs inside
// the repository transaction at write time.
func (s *DefaultBookingService) IsAvailable(unitID, start, end string) (bool, error) {
	overlapping, err := s.Repo.FindOverlapping(unitID, start, end, "")
	if err != nil {
		return false, err
	}
	return len(overlapping) == 0, nil
}

// FindOverlapping returns the non-cancelled bookings for the unit that
// overlap [start, end), excluding excludeBookingID when non-empty. Used by
// update flows so a booking does not conflict with itself.
func (s *DefaultBookingService) FindOverlapping(unitID, start, end, excludeBookingID string) ([]models.Booking, error) {
	return s.Repo.FindOverlapping(unitID, start, end, excludeBookingID)
}
