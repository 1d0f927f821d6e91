package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ClubCourt/internal/availability"
	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/stpnv0/ClubCourt/internal/pricing"
	"github.com/stpnv0/ClubCourt/internal/schedule"
	"github.com/stpnv0/ClubCourt/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	outcomeCreated   = "created"
	outcomeSlotTaken = "slot_taken"
	outcomeExpired   = "expired"
	outcomeConfirmed = "confirmed"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	memberRepo  ports.MemberRepo
	catalog     ports.CatalogReader
	notifier    ports.BookingNotifier
	metrics     ports.BookingMetrics
	engine      *pricing.Engine
	resolver    *schedule.Resolver
	paymentTTL  time.Duration
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	memberRepo ports.MemberRepo,
	catalog ports.CatalogReader,
	notifier ports.BookingNotifier,
	metrics ports.BookingMetrics,
	engine *pricing.Engine,
	resolver *schedule.Resolver,
	paymentTTL time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		memberRepo:  memberRepo,
		catalog:     catalog,
		notifier:    notifier,
		metrics:     metrics,
		engine:      engine,
		resolver:    resolver,
		paymentTTL:  paymentTTL,
		logger:      logger,
	}
}

// Quote prices a prospective booking without persisting anything.
func (s *BookingService) Quote(ctx context.Context, input domain.QuoteInput) (domain.BookingSummary, error) {
	tier := input.Tier
	if input.MemberID != "" {
		member, err := s.memberRepo.GetByID(ctx, input.MemberID)
		if err != nil {
			return domain.BookingSummary{}, fmt.Errorf("check member: %w", err)
		}
		tier = member.Tier
	}
	if tier == "" {
		tier = domain.TierGuest
	}
	if !tier.Valid() {
		return domain.BookingSummary{}, fmt.Errorf("%w: unknown tier %q", domain.ErrValidation, tier)
	}

	facility, err := s.catalog.GetFacility(ctx, input.FacilitySlug)
	if err != nil {
		return domain.BookingSummary{}, fmt.Errorf("check facility: %w", err)
	}

	addOns, err := s.catalog.AddOns(ctx, facility.ID)
	if err != nil {
		return domain.BookingSummary{}, fmt.Errorf("load add-ons: %w", err)
	}

	summary, err := s.engine.ComputeSummary(domain.BookingRequest{
		ResourceID:      input.ResourceID,
		Date:            input.Date,
		StartTime:       input.StartTime,
		DurationMinutes: input.DurationMinutes,
		Tier:            tier,
		AddOns:          input.AddOns,
		CoachBooked:     input.CoachBooked,
	}, facility, addOns)
	if err != nil {
		return domain.BookingSummary{}, fmt.Errorf("compute summary: %w", err)
	}

	s.metrics.ObserveQuote(facility.Slug, summary.TotalPrice)
	return summary, nil
}

// Book re-validates access, operating hours, availability and price on the
// server before persisting a PENDING booking.
func (s *BookingService) Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	member, err := s.memberRepo.GetByID(ctx, input.MemberID)
	if err != nil {
		return nil, fmt.Errorf("check member: %w", err)
	}

	facility, err := s.catalog.GetFacility(ctx, input.FacilitySlug)
	if err != nil {
		return nil, fmt.Errorf("check facility: %w", err)
	}

	if err = checkAccess(member, facility, input); err != nil {
		return nil, err
	}

	day, err := dayOfWeek(input.Date)
	if err != nil {
		return nil, err
	}
	rules, err := s.catalog.HoursRules(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("load operating hours: %w", err)
	}
	venueID := input.VenueID
	if venueID == "" {
		venueID = facility.VenueID
	}
	if !slices.Contains(s.resolver.TimeSlots(rules, day, facility.ID, venueID), input.StartTime) {
		return nil, fmt.Errorf("%w: %s is not a bookable slot on %s", domain.ErrValidation, input.StartTime, input.Date)
	}

	addOns, err := s.catalog.AddOns(ctx, facility.ID)
	if err != nil {
		return nil, fmt.Errorf("load add-ons: %w", err)
	}

	addOnQty := make(map[string]int, len(input.AddOns))
	for id, q := range input.AddOns {
		addOnQty[id] = pricing.ClampQuantity(q)
	}

	summary, err := s.engine.ComputeSummary(domain.BookingRequest{
		ResourceID:      input.ResourceID,
		Date:            input.Date,
		StartTime:       input.StartTime,
		DurationMinutes: input.DurationMinutes,
		Tier:            member.Tier,
		AddOns:          addOnQty,
		CoachBooked:     input.CoachBooked,
	}, facility, addOns)
	if err != nil {
		return nil, fmt.Errorf("compute summary: %w", err)
	}

	existing, err := s.bookingRepo.List(ctx, domain.BookingFilter{FacilityID: facility.ID, Date: input.Date})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if availability.IsSlotTaken(existing, input.Date, input.ResourceID, input.StartTime) {
		s.metrics.IncBookings(facility.Slug, outcomeSlotTaken)
		return nil, domain.ErrSlotTaken
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:              uuid.New().String(),
		FacilityID:      facility.ID,
		MemberID:        member.ID,
		ResourceID:      input.ResourceID,
		Date:            input.Date,
		StartTime:       summary.StartTime,
		EndTime:         summary.EndTime,
		DurationMinutes: input.DurationMinutes,
		Players:         input.Players,
		CoachBooked:     input.CoachBooked,
		AddOns:          addOnQty,
		BasePrice:       summary.BasePrice,
		Discount:        summary.Discount,
		DiscountLabel:   summary.DiscountLabel,
		AddOnTotal:      summary.AddOnTotal,
		TotalPrice:      summary.TotalPrice,
		Status:          domain.BookingStatusPending,
		PaymentStatus:   domain.PaymentStatusPendingPayment,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			s.metrics.IncBookings(facility.Slug, outcomeSlotTaken)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.metrics.IncBookings(facility.Slug, outcomeCreated)
	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("facility", facility.Slug),
		logger.String("member_id", member.ID),
		logger.String("date", booking.Date),
		logger.String("start_time", booking.StartTime),
		logger.Int64("total_price", booking.TotalPrice),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), member, facility, booking)

	return booking, nil
}

func checkAccess(member *domain.Member, facility *domain.Facility, input domain.CreateBookingInput) error {
	if !facility.Allows(member.Tier) {
		return domain.ErrTierRestricted
	}
	if facility.RequiresCertification && !member.SafetyCertified {
		return domain.ErrCertificationRequired
	}
	if input.Players < facility.MinPlayers {
		return fmt.Errorf("%w: at least %d players required", domain.ErrValidation, facility.MinPlayers)
	}
	if input.ResourceID < 1 || input.ResourceID > facility.ResourceCount {
		return fmt.Errorf("%w: resource_id must be within 1..%d", domain.ErrValidation, facility.ResourceCount)
	}
	return nil
}

// SubmitPayment records the member's payment reference and hands the
// booking over for verification.
func (s *BookingService) SubmitPayment(ctx context.Context, id, reference string) (*domain.Booking, error) {
	if reference == "" {
		return nil, fmt.Errorf("%w: payment reference is required", domain.ErrValidation)
	}

	b, err := s.activeBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := domain.PaymentUpdate{
		From:      b.PaymentStatus,
		To:        domain.PaymentStatusPendingVerification,
		Reference: reference,
	}
	if err = s.applyPayment(ctx, b, upd); err != nil {
		return nil, err
	}

	s.logger.Info("payment submitted",
		logger.String("booking_id", b.ID),
		logger.String("reference", reference),
	)

	return b, nil
}

// VerifyPayment is the admin decision on a submitted payment. Approval
// confirms the booking; rejection leaves it pending until it expires or
// the member resubmits.
func (s *BookingService) VerifyPayment(ctx context.Context, id string, approve bool) (*domain.Booking, error) {
	b, err := s.activeBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	upd := domain.PaymentUpdate{From: b.PaymentStatus, To: domain.PaymentStatusRejected}
	if approve {
		upd.To = domain.PaymentStatusVerified
		upd.BookingStatus = domain.BookingStatusConfirmed
	}
	if err = s.applyPayment(ctx, b, upd); err != nil {
		return nil, err
	}

	s.logger.Info("payment verified",
		logger.String("booking_id", b.ID),
		logger.String("payment_status", string(b.PaymentStatus)),
	)

	if approve {
		facility, fErr := s.catalog.FacilityByID(ctx, b.FacilityID)
		if fErr == nil {
			s.metrics.IncBookings(facility.Slug, outcomeConfirmed)
		}
		s.notify(ctx, b, s.notifier.NotifyBookingConfirmed)
	}

	return b, nil
}

func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.activeBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = s.bookingRepo.Cancel(ctx, id); err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	b.Status = domain.BookingStatusCancelled

	s.logger.Info("booking cancelled", logger.String("booking_id", b.ID))
	s.notify(ctx, b, s.notifier.NotifyBookingCancelled)

	return b, nil
}

// CancelExpired drops PENDING bookings whose payment never arrived within the TTL.
func (s *BookingService) CancelExpired(ctx context.Context) ([]*domain.Booking, error) {
	cancelled, err := s.bookingRepo.CancelExpired(ctx, s.paymentTTL)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if len(cancelled) > 0 {
		s.logger.Info("expired bookings cancelled",
			logger.Int("count", len(cancelled)),
		)

		go s.notifyExpired(context.WithoutCancel(ctx), cancelled)
	}

	return cancelled, nil
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	// Кривую дату отсекаем до запроса, иначе Postgres падает на ::date
	if filter.Date != "" {
		if _, err := dayOfWeek(filter.Date); err != nil {
			return nil, err
		}
	}
	return s.bookingRepo.List(ctx, filter)
}

func (s *BookingService) ListByMember(ctx context.Context, memberID string) ([]domain.Booking, error) {
	return s.bookingRepo.ListByMember(ctx, memberID)
}

func (s *BookingService) activeBooking(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !b.IsActive() {
		return nil, domain.ErrBookingNotActive
	}
	return b, nil
}

func (s *BookingService) applyPayment(ctx context.Context, b *domain.Booking, upd domain.PaymentUpdate) error {
	if !b.PaymentStatus.CanTransition(upd.To) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrPaymentTransition, b.PaymentStatus, upd.To)
	}

	if err := s.bookingRepo.UpdatePayment(ctx, b.ID, upd); err != nil {
		return fmt.Errorf("update payment: %w", err)
	}

	b.PaymentStatus = upd.To
	if upd.Reference != "" {
		b.PaymentReference = upd.Reference
	}
	if upd.BookingStatus != "" {
		b.Status = upd.BookingStatus
	}
	b.UpdatedAt = time.Now().UTC()

	return nil
}

type notifyFunc func(ctx context.Context, member *domain.Member, facility *domain.Facility, booking *domain.Booking)

func (s *BookingService) notify(ctx context.Context, b *domain.Booking, send notifyFunc) {
	member, err := s.memberRepo.GetByID(ctx, b.MemberID)
	if err != nil {
		s.logger.Error("failed to get member for notification",
			logger.String("member_id", b.MemberID),
			logger.String("error", err.Error()),
		)
		return
	}

	facility, err := s.catalog.FacilityByID(ctx, b.FacilityID)
	if err != nil {
		s.logger.Error("failed to get facility for notification",
			logger.String("facility_id", b.FacilityID),
			logger.String("error", err.Error()),
		)
		return
	}

	go send(context.WithoutCancel(ctx), member, facility, b)
}

func (s *BookingService) notifyExpired(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		member, err := s.memberRepo.GetByID(ctx, b.MemberID)
		if err != nil {
			s.logger.Error("failed to get member for cancel notification",
				logger.String("member_id", b.MemberID),
			)
			continue
		}

		facility, err := s.catalog.FacilityByID(ctx, b.FacilityID)
		if err != nil {
			s.logger.Error("failed to get facility for cancel notification",
				logger.String("facility_id", b.FacilityID),
			)
			continue
		}

		s.metrics.IncBookings(facility.Slug, outcomeExpired)
		s.notifier.NotifyBookingCancelled(ctx, member, facility, b)
	}
}
