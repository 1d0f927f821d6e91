package dto

type CreateFacilityRequest struct {
	Slug                  string   `json:"slug"                   binding:"required"`
	Label                 string   `json:"label"                  binding:"required"`
	VenueID               string   `json:"venue_id"`
	ResourceCount         int      `json:"resource_count"         binding:"required,gt=0"`
	BasePrice             int64    `json:"base_price"             binding:"gte=0"`
	MinPlayers            int      `json:"min_players"            binding:"gte=0"`
	RequiresCertification bool     `json:"requires_certification"`
	AllowedTiers          []string `json:"allowed_tiers"`
}

type CreateAddOnRequest struct {
	Label string `json:"label" binding:"required"`
	Price int64  `json:"price" binding:"gte=0"`
	Icon  string `json:"icon"`
}

type CreateHoursRuleRequest struct {
	VenueID             string `json:"venue_id"`
	FacilityID          string `json:"facility_id"`
	DayOfWeek           *int   `json:"day_of_week"           binding:"required,min=0,max=6"`
	OpenTime            string `json:"open_time"             binding:"required"`
	CloseTime           string `json:"close_time"            binding:"required"`
	SlotDurationMinutes int    `json:"slot_duration_minutes" binding:"gte=0"`
	IsClosed            bool   `json:"is_closed"`
	IsHoliday           bool   `json:"is_holiday"`
}

type QuoteRequest struct {
	MemberID        string         `json:"member_id"        binding:"omitempty,uuid"`
	Tier            string         `json:"tier"`
	ResourceID      int            `json:"resource_id"`
	Date            string         `json:"date"             binding:"required"`
	StartTime       string         `json:"start_time"       binding:"required"`
	DurationMinutes int            `json:"duration_minutes" binding:"required"`
	AddOns          map[string]int `json:"add_ons"`
	CoachBooked     bool           `json:"coach_booked"`
}

type BookRequest struct {
	Facility        string         `json:"facility"         binding:"required"`
	MemberID        string         `json:"member_id"        binding:"required,uuid"`
	VenueID         string         `json:"venue_id"`
	ResourceID      int            `json:"resource_id"      binding:"required,gt=0"`
	Date            string         `json:"date"             binding:"required"`
	StartTime       string         `json:"start_time"       binding:"required"`
	DurationMinutes int            `json:"duration_minutes" binding:"required"`
	Players         int            `json:"players"          binding:"required,gt=0"`
	AddOns          map[string]int `json:"add_ons"`
	CoachBooked     bool           `json:"coach_booked"`
}

type PaymentRequest struct {
	Reference string `json:"reference" binding:"required"`
}

type VerifyPaymentRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

type CreateMemberRequest struct {
	Username        string `json:"username"         binding:"required"`
	Tier            string `json:"tier"`
	SafetyCertified bool   `json:"safety_certified"`
	TelegramChatID  *int64 `json:"telegram_chat_id"`
}
