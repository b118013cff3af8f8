package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storely/models"
	"storely/services/booking"
)

func TestRangesOverlap(t *testing.T) {
	type testCase struct {
		name string
		s, e string
		s2   string
		e2   string
		want bool
	}

	tests := []testCase{
		{
			name: "IdenticalRanges",
			s:    "2026-03-01", e: "2026-03-10",
			s2: "2026-03-01", e2: "2026-03-10",
			want: true,
		},
		{
			name: "PartialOverlap",
			s:    "2026-03-05", e: "2026-03-15",
			s2: "2026-03-01", e2: "2026-03-10",
			want: true,
		},
		{
			name: "Containment",
			s:    "2026-03-03", e: "2026-03-05",
			s2: "2026-03-01", e2: "2026-03-10",
			want: true,
		},
		{
			name: "TouchingAtEnd",
			s:    "2026-03-10", e: "2026-03-20",
			s2: "2026-03-01", e2: "2026-03-10",
			want: false,
		},
		{
			name: "TouchingAtStart",
			s:    "2026-02-20", e: "2026-03-01",
			s2: "2026-03-01", e2: "2026-03-10",
			want: false,
		},
		{
			name: "Disjoint",
			s:    "2026-04-01", e: "2026-04-10",
			s2: "2026-03-01", e2: "2026-03-10",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := booking.RangesOverlap(tt.s, tt.e, tt.s2, tt.e2)
			assert.Equal(t, tt.want, got)

			// Overlap is symmetric.
			assert.Equal(t, tt.want, booking.RangesOverlap(tt.s2, tt.e2, tt.s, tt.e))
		})
	}
}

func TestIsAvailable(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.seed(&models.Booking{
		ID:        "b1",
		UnitID:    "unit-1",
		StartDate: "2026-03-01",
		EndDate:   "2026-03-10",
		Status:    models.BookingStatusConfirmed,
	})
	repo.seed(&models.Booking{
		ID:        "b2",
		UnitID:    "unit-1",
		StartDate: "2026-03-10",
		EndDate:   "2026-03-20",
		Status:    models.BookingStatusCancelled,
	})

	svc := &booking.DefaultBookingService{
		Repo:     repo,
		UnitRepo: newFakeUnitRepo(),
		UserRepo: newFakeUserRepo(),
	}

	type testCase struct {
		name   string
		unitID string
		start  string
		end    string
		want   bool
	}

	tests := []testCase{
		{
			name:   "ConflictsWithConfirmed",
			unitID: "unit-1",
			start:  "2026-03-05", end: "2026-03-12",
			want: false,
		},
		{
			name:   "CancelledDoesNotBlock",
			unitID: "unit-1",
			start:  "2026-03-12", end: "2026-03-18",
			want: true,
		},
		{
			name:   "TouchingBoundaryIsFree",
			unitID: "unit-1",
			start:  "2026-02-20", end: "2026-03-01",
			want: true,
		},
		{
			name:   "OtherUnitIsFree",
			unitID: "unit-2",
			start:  "2026-03-05", end: "2026-03-12",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.IsAvailable(tt.unitID, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindOverlapping_ExcludesBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.seed(&models.Booking{
		ID:        "b1",
		UnitID:    "unit-1",
		StartDate: "2026-03-01",
		EndDate:   "2026-03-10",
		Status:    models.BookingStatusPending,
	})

	svc := &booking.DefaultBookingService{
		Repo:     repo,
		UnitRepo: newFakeUnitRepo(),
		UserRepo: newFakeUserRepo(),
	}

	// A booking never conflicts with itself when excluded.
	overlapping, err := svc.FindOverlapping("unit-1", "2026-03-01", "2026-03-10", "b1")
	require.NoError(t, err)
	assert.Empty(t, overlapping)

	overlapping, err = svc.FindOverlapping("unit-1", "2026-03-01", "2026-03-10", "")
	require.NoError(t, err)
	require.Len(t, overlapping, 1)
	assert.Equal(t, "b1", overlapping[0].ID)
}
