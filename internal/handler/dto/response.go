package dto

import (
	"time"

	"github.com/stpnv0/ClubCourt/internal/domain"
)

type FacilityResponse struct {
	ID                    string   `json:"id"`
	Slug                  string   `json:"slug"`
	Label                 string   `json:"label"`
	VenueID               string   `json:"venue_id,omitempty"`
	ResourceCount         int      `json:"resource_count"`
	BasePrice             int64    `json:"base_price"`
	MinPlayers            int      `json:"min_players"`
	RequiresCertification bool     `json:"requires_certification"`
	AllowedTiers          []string `json:"allowed_tiers"`
	CreatedAt             string   `json:"created_at"`
}

type AddOnResponse struct {
	ID         string `json:"id"`
	FacilityID string `json:"facility_id"`
	Label      string `json:"label"`
	Price      int64  `json:"price"`
	Icon       string `json:"icon,omitempty"`
}

type HoursRuleResponse struct {
	ID                  string `json:"id"`
	VenueID             string `json:"venue_id,omitempty"`
	FacilityID          string `json:"facility_id,omitempty"`
	DayOfWeek           int    `json:"day_of_week"`
	OpenTime            string `json:"open_time"`
	CloseTime           string `json:"close_time"`
	SlotDurationMinutes int    `json:"slot_duration_minutes"`
	IsClosed            bool   `json:"is_closed"`
	IsHoliday           bool   `json:"is_holiday"`
}

type SlotsResponse struct {
	Facility string                    `json:"facility"`
	Date     string                    `json:"date"`
	Slots    []domain.SlotAvailability `json:"slots"`
}

type QuoteResponse struct {
	BasePrice     int64   `json:"base_price"`
	Discount      int64   `json:"discount"`
	DiscountLabel *string `json:"discount_label"`
	AddOnTotal    int64   `json:"add_on_total"`
	TotalPrice    int64   `json:"total_price"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
}

type BookingResponse struct {
	ID               string         `json:"id"`
	FacilityID       string         `json:"facility_id"`
	MemberID         string         `json:"member_id"`
	ResourceID       int            `json:"resource_id"`
	Date             string         `json:"date"`
	StartTime        string         `json:"start_time"`
	EndTime          string         `json:"end_time"`
	DurationMinutes  int            `json:"duration_minutes"`
	Players          int            `json:"players"`
	CoachBooked      bool           `json:"coach_booked"`
	AddOns           map[string]int `json:"add_ons,omitempty"`
	Price            QuoteResponse  `json:"price"`
	Status           string         `json:"status"`
	PaymentStatus    string         `json:"payment_status"`
	PaymentReference string         `json:"payment_reference,omitempty"`
	CreatedAt        string         `json:"created_at"`
}

type MemberResponse struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Tier            string `json:"tier"`
	SafetyCertified bool   `json:"safety_certified"`
	TelegramChatID  *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt       string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToFacilityResponse(f *domain.Facility) FacilityResponse {
	tiers := make([]string, 0, len(f.AllowedTiers))
	for _, t := range f.AllowedTiers {
		tiers = append(tiers, string(t))
	}

	return FacilityResponse{
		ID:                    f.ID,
		Slug:                  f.Slug,
		Label:                 f.Label,
		VenueID:               f.VenueID,
		ResourceCount:         f.ResourceCount,
		BasePrice:             f.BasePrice,
		MinPlayers:            f.MinPlayers,
		RequiresCertification: f.RequiresCertification,
		AllowedTiers:          tiers,
		CreatedAt:             f.CreatedAt.Format(time.RFC3339),
	}
}

func ToAddOnResponse(a *domain.AddOn) AddOnResponse {
	return AddOnResponse{
		ID:         a.ID,
		FacilityID: a.FacilityID,
		Label:      a.Label,
		Price:      a.Price,
		Icon:       a.Icon,
	}
}

func ToHoursRuleResponse(r *domain.OperatingHoursRule) HoursRuleResponse {
	return HoursRuleResponse{
		ID:                  r.ID,
		VenueID:             r.VenueID,
		FacilityID:          r.FacilityID,
		DayOfWeek:           r.DayOfWeek,
		OpenTime:            r.OpenTime,
		CloseTime:           r.CloseTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
		IsClosed:            r.IsClosed,
		IsHoliday:           r.IsHoliday,
	}
}

func ToQuoteResponse(s domain.BookingSummary) QuoteResponse {
	return QuoteResponse{
		BasePrice:     s.BasePrice,
		Discount:      s.Discount,
		DiscountLabel: s.DiscountLabel,
		AddOnTotal:    s.AddOnTotal,
		TotalPrice:    s.TotalPrice,
		Date:          s.Date,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		FacilityID:      b.FacilityID,
		MemberID:        b.MemberID,
		ResourceID:      b.ResourceID,
		Date:            b.Date,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		DurationMinutes: b.DurationMinutes,
		Players:         b.Players,
		CoachBooked:     b.CoachBooked,
		AddOns:          b.AddOns,
		Price: QuoteResponse{
			BasePrice:     b.BasePrice,
			Discount:      b.Discount,
			DiscountLabel: b.DiscountLabel,
			AddOnTotal:    b.AddOnTotal,
			TotalPrice:    b.TotalPrice,
			Date:          b.Date,
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
		},
		Status:           string(b.Status),
		PaymentStatus:    string(b.PaymentStatus),
		PaymentReference: b.PaymentReference,
		CreatedAt:        b.CreatedAt.Format(time.RFC3339),
	}
}

func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:              m.ID,
		Username:        m.Username,
		Tier:            string(m.Tier),
		SafetyCertified: m.SafetyCertified,
		TelegramChatID:  m.TelegramChatID,
		CreatedAt:       m.CreatedAt.Format(time.RFC3339),
	}
}
