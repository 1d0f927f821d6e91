// Package availability decides which slots existing bookings leave free.
package availability

import "github.com/stpnv0/ClubCourt/internal/domain"

// IsSlotTaken reports whether a non-cancelled booking holds exactly this
// date, resource and start time.
func IsSlotTaken(existing []domain.Booking, date string, resourceID int, start string) bool {
	for i := range existing {
		b := &existing[i]
		if b.Date == date && b.ResourceID == resourceID && b.StartTime == start && b.IsActive() {
			return true
		}
	}
	return false
}

// Grid lists, for every slot start, the resources 1..resourceCount that are still free.
func Grid(existing []domain.Booking, date string, resourceCount int, slots []string) []domain.SlotAvailability {
	res := make([]domain.SlotAvailability, 0, len(slots))
	for _, start := range slots {
		free := make([]int, 0, resourceCount)
		for rid := 1; rid <= resourceCount; rid++ {
			if !IsSlotTaken(existing, date, rid, start) {
				free = append(free, rid)
			}
		}
		res = append(res, domain.SlotAvailability{StartTime: start, FreeResources: free})
	}
	return res
}
