package availability

import (
	"testing"

	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/stretchr/testify/assert"
)

func existingBookings() []domain.Booking {
	return []domain.Booking{
		{ID: "b1", Date: "2026-10-20", ResourceID: 1, StartTime: "10:00", Status: domain.BookingStatusConfirmed},
		{ID: "b2", Date: "2026-10-20", ResourceID: 2, StartTime: "10:00", Status: domain.BookingStatusPending},
		{ID: "b3", Date: "2026-10-20", ResourceID: 3, StartTime: "10:00", Status: domain.BookingStatusCancelled},
	}
}

func TestIsSlotTaken_ExactMatch(t *testing.T) {
	existing := existingBookings()

	assert.True(t, IsSlotTaken(existing, "2026-10-20", 1, "10:00"))
	assert.True(t, IsSlotTaken(existing, "2026-10-20", 2, "10:00"))
}

func TestIsSlotTaken_CancelledFreesSlot(t *testing.T) {
	assert.False(t, IsSlotTaken(existingBookings(), "2026-10-20", 3, "10:00"))
}

func TestIsSlotTaken_AnyFieldMismatch(t *testing.T) {
	existing := existingBookings()

	assert.False(t, IsSlotTaken(existing, "2026-10-21", 1, "10:00"))
	assert.False(t, IsSlotTaken(existing, "2026-10-20", 4, "10:00"))
	assert.False(t, IsSlotTaken(existing, "2026-10-20", 1, "11:00"))
}

func TestIsSlotTaken_Empty(t *testing.T) {
	assert.False(t, IsSlotTaken(nil, "2026-10-20", 1, "10:00"))
}

func TestGrid(t *testing.T) {
	got := Grid(existingBookings(), "2026-10-20", 3, []string{"10:00", "11:00"})

	assert.Equal(t, []domain.SlotAvailability{
		{StartTime: "10:00", FreeResources: []int{3}},
		{StartTime: "11:00", FreeResources: []int{1, 2, 3}},
	}, got)
}

func TestGrid_FullyBooked(t *testing.T) {
	existing := []domain.Booking{
		{Date: "2026-10-20", ResourceID: 1, StartTime: "18:00", Status: domain.BookingStatusConfirmed},
	}

	got := Grid(existing, "2026-10-20", 1, []string{"18:00"})

	assert.Equal(t, []int{}, got[0].FreeResources)
}
