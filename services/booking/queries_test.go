package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storely/models"
	"storely/services/booking"
)

// date returns today shifted by the given number of days, in booking format.
func date(daysFromNow int) string {
	return time.Now().AddDate(0, 0, daysFromNow).Format(models.DateLayout)
}

func seedViews(repo *fakeBookingRepo) {
	repo.seed(&models.Booking{
		ID: "past", UnitID: "unit-1",
		StartDate: date(-20), EndDate: date(-10),
		Status: models.BookingStatusConfirmed, PaymentID: "pay-past",
	})
	repo.seed(&models.Booking{
		ID: "current", UnitID: "unit-1",
		StartDate: date(-2), EndDate: date(3),
		Status: models.BookingStatusConfirmed, PaymentID: "pay-current",
	})
	repo.seed(&models.Booking{
		ID: "soon", UnitID: "unit-1",
		StartDate: date(2), EndDate: date(5),
		Status: models.BookingStatusPending,
	})
	repo.seed(&models.Booking{
		ID: "far", UnitID: "unit-1",
		StartDate: date(30), EndDate: date(40),
		Status: models.BookingStatusPending,
	})
	repo.seed(&models.Booking{
		ID: "dropped", UnitID: "unit-1",
		StartDate: date(2), EndDate: date(5),
		Status: models.BookingStatusCancelled,
	})
}

func ids(bookings []models.Booking) []string {
	var out []string
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}

func TestDerivedViews(t *testing.T) {
	svc, repo := newTestService()
	seedViews(repo)

	t.Run("Active", func(t *testing.T) {
		got, err := svc.ActiveBookings()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"past", "current", "soon", "far"}, ids(got))
	})

	t.Run("Upcoming", func(t *testing.T) {
		got, err := svc.UpcomingBookings()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"soon", "far"}, ids(got))
	})

	t.Run("Current", func(t *testing.T) {
		got, err := svc.CurrentBookings()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"current"}, ids(got))
	})

	t.Run("Expired", func(t *testing.T) {
		got, err := svc.ExpiredBookings()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"past"}, ids(got))
	})

	t.Run("StartingWithinWindow", func(t *testing.T) {
		got, err := svc.StartingWithin(7)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"soon"}, ids(got))
	})

	t.Run("StartingWithinZeroDays", func(t *testing.T) {
		got, err := svc.StartingWithin(0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("StartingWithinNegative", func(t *testing.T) {
		_, err := svc.StartingWithin(-1)
		require.Error(t, err)
		assert.Equal(t, booking.CodeValidation, booking.CodeOf(err))
	})
}

func TestGetForDateRange(t *testing.T) {
	svc, repo := newTestService()
	repo.seed(&models.Booking{
		ID: "b1", UnitID: "unit-1",
		StartDate: "2026-03-01", EndDate: "2026-03-10",
		Status: models.BookingStatusPending,
	})

	got, err := svc.GetForDateRange("2026-03-09", "2026-03-11")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// Half-open: a query starting exactly at the end date misses.
	got, err = svc.GetForDateRange("2026-03-10", "2026-03-11")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = svc.GetForDateRange("2026-03-11", "2026-03-10")
	require.Error(t, err)
	assert.Equal(t, booking.CodeValidation, booking.CodeOf(err))
}
