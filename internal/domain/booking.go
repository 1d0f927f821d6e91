package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPendingPayment      PaymentStatus = "PENDING_PAYMENT"
	PaymentStatusPendingVerification PaymentStatus = "PENDING_VERIFICATION"
	PaymentStatusVerified            PaymentStatus = "VERIFIED"
	PaymentStatusRejected            PaymentStatus = "REJECTED"
)

// UnpaidStatuses — оплата ещё не подтверждена клиентом, такие брони снимает планировщик.
var UnpaidStatuses = []PaymentStatus{PaymentStatusPendingPayment, PaymentStatusRejected}

var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentStatusPendingPayment:      {PaymentStatusPendingVerification},
	PaymentStatusRejected:            {PaymentStatusPendingVerification},
	PaymentStatusPendingVerification: {PaymentStatusVerified, PaymentStatusRejected},
}

// CanTransition reports whether the payment lifecycle allows moving from s to next.
func (s PaymentStatus) CanTransition(next PaymentStatus) bool {
	for _, st := range paymentTransitions[s] {
		if st == next {
			return true
		}
	}
	return false
}

type Booking struct {
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
	AddOns           map[string]int `json:"add_ons"`
	BasePrice        int64          `json:"base_price"`
	Discount         int64          `json:"discount"`
	DiscountLabel    *string        `json:"discount_label"`
	AddOnTotal       int64          `json:"add_on_total"`
	TotalPrice       int64          `json:"total_price"`
	Status           BookingStatus  `json:"status"`
	PaymentStatus    PaymentStatus  `json:"payment_status"`
	PaymentReference string         `json:"payment_reference"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// IsActive — бронь занимает слот.
func (b *Booking) IsActive() bool {
	return b.Status != BookingStatusCancelled
}

// BookingRequest is the priced part of a booking.
type BookingRequest struct {
	ResourceID      int
	Date            string
	StartTime       string
	DurationMinutes int
	Tier            Tier
	AddOns          map[string]int
	CoachBooked     bool
}

type BookingSummary struct {
	BasePrice     int64   `json:"base_price"`
	Discount      int64   `json:"discount"`
	DiscountLabel *string `json:"discount_label"`
	AddOnTotal    int64   `json:"add_on_total"`
	TotalPrice    int64   `json:"total_price"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
}

type QuoteInput struct {
	FacilitySlug    string
	MemberID        string
	Tier            Tier
	ResourceID      int
	Date            string
	StartTime       string
	DurationMinutes int
	AddOns          map[string]int
	CoachBooked     bool
}

type CreateBookingInput struct {
	FacilitySlug    string
	MemberID        string
	ResourceID      int
	Date            string
	StartTime       string
	DurationMinutes int
	Players         int
	AddOns          map[string]int
	CoachBooked     bool
	VenueID         string
}

type BookingFilter struct {
	FacilityID string
	Date       string
}

// PaymentUpdate is applied only while the stored payment status still equals From.
type PaymentUpdate struct {
	From          PaymentStatus
	To            PaymentStatus
	Reference     string
	BookingStatus BookingStatus
}
