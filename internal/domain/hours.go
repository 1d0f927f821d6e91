package domain

import "time"

const DefaultSlotDuration = 60

type OperatingHoursRule struct {
	ID                  string    `json:"id"`
	VenueID             string    `json:"venue_id"`
	FacilityID          string    `json:"facility_id"`
	DayOfWeek           int       `json:"day_of_week"`
	OpenTime            string    `json:"open_time"`
	CloseTime           string    `json:"close_time"`
	SlotDurationMinutes int       `json:"slot_duration_minutes"`
	IsClosed            bool      `json:"is_closed"`
	IsHoliday           bool      `json:"is_holiday"`
	CreatedAt           time.Time `json:"created_at"`
}

// Eligible — правило участвует в выборе расписания.
func (r *OperatingHoursRule) Eligible(day int) bool {
	return r.DayOfWeek == day && !r.IsClosed && !r.IsHoliday
}

type CreateHoursRuleInput struct {
	VenueID             string
	FacilityID          string
	DayOfWeek           int
	OpenTime            string
	CloseTime           string
	SlotDurationMinutes int
	IsClosed            bool
	IsHoliday           bool
}
