package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/ClubCourt/internal/availability"
	"github.com/stpnv0/ClubCourt/internal/clock"
	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/stpnv0/ClubCourt/internal/schedule"
	"github.com/stpnv0/ClubCourt/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const dateLayout = "2006-01-02"

type CatalogService struct {
	facilityRepo ports.FacilityRepo
	addOnRepo    ports.AddOnRepo
	hoursRepo    ports.HoursRepo
	bookingRepo  ports.BookingRepo
	cache        ports.Cache
	resolver     *schedule.Resolver
	logger       logger.Logger
}

func NewCatalogService(
	facilityRepo ports.FacilityRepo,
	addOnRepo ports.AddOnRepo,
	hoursRepo ports.HoursRepo,
	bookingRepo ports.BookingRepo,
	cache ports.Cache,
	resolver *schedule.Resolver,
	logger logger.Logger,
) *CatalogService {
	return &CatalogService{
		facilityRepo: facilityRepo,
		addOnRepo:    addOnRepo,
		hoursRepo:    hoursRepo,
		bookingRepo:  bookingRepo,
		cache:        cache,
		resolver:     resolver,
		logger:       logger,
	}
}

// Facilities

func (s *CatalogService) CreateFacility(ctx context.Context, input domain.CreateFacilityInput) (*domain.Facility, error) {
	if input.Slug == "" || input.Label == "" {
		return nil, fmt.Errorf("%w: slug and label are required", domain.ErrValidation)
	}
	if input.ResourceCount < 1 {
		return nil, fmt.Errorf("%w: resource_count must be positive", domain.ErrValidation)
	}
	if input.BasePrice < 0 {
		return nil, fmt.Errorf("%w: base_price must not be negative", domain.ErrValidation)
	}
	for _, t := range input.AllowedTiers {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: unknown tier %q", domain.ErrValidation, t)
		}
	}

	minPlayers := input.MinPlayers
	if minPlayers < 1 {
		minPlayers = 1
	}

	now := time.Now().UTC()
	f := &domain.Facility{
		ID:                    uuid.New().String(),
		Slug:                  input.Slug,
		Label:                 input.Label,
		VenueID:               input.VenueID,
		ResourceCount:         input.ResourceCount,
		BasePrice:             input.BasePrice,
		MinPlayers:            minPlayers,
		RequiresCertification: input.RequiresCertification,
		AllowedTiers:          input.AllowedTiers,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.facilityRepo.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create facility: %w", err)
	}

	s.invalidate(ctx, facilitiesKey)
	return f, nil
}

func (s *CatalogService) ListFacilities(ctx context.Context) ([]*domain.Facility, error) {
	var cached []*domain.Facility
	if s.fromCache(ctx, facilitiesKey, &cached) {
		return cached, nil
	}

	list, err := s.facilityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}

	s.toCache(ctx, facilitiesKey, list)
	return list, nil
}

func (s *CatalogService) GetFacility(ctx context.Context, slug string) (*domain.Facility, error) {
	var cached domain.Facility
	if s.fromCache(ctx, facilityKey(slug), &cached) {
		return &cached, nil
	}

	f, err := s.facilityRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	s.toCache(ctx, facilityKey(slug), f)
	return f, nil
}

func (s *CatalogService) FacilityByID(ctx context.Context, id string) (*domain.Facility, error) {
	return s.facilityRepo.GetByID(ctx, id)
}

// Add-ons

func (s *CatalogService) CreateAddOn(ctx context.Context, input domain.CreateAddOnInput) (*domain.AddOn, error) {
	if input.Label == "" {
		return nil, fmt.Errorf("%w: label is required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}

	f, err := s.GetFacility(ctx, input.FacilitySlug)
	if err != nil {
		return nil, fmt.Errorf("check facility: %w", err)
	}

	a := &domain.AddOn{
		ID:         uuid.New().String(),
		FacilityID: f.ID,
		Label:      input.Label,
		Price:      input.Price,
		Icon:       input.Icon,
		CreatedAt:  time.Now().UTC(),
	}
	if err = s.addOnRepo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create add-on: %w", err)
	}

	s.invalidate(ctx, addOnsKey(f.ID))
	return a, nil
}

func (s *CatalogService) AddOns(ctx context.Context, facilityID string) ([]domain.AddOn, error) {
	var cached []domain.AddOn
	if s.fromCache(ctx, addOnsKey(facilityID), &cached) {
		return cached, nil
	}

	list, err := s.addOnRepo.ListByFacility(ctx, facilityID)
	if err != nil {
		return nil, fmt.Errorf("list add-ons: %w", err)
	}

	s.toCache(ctx, addOnsKey(facilityID), list)
	return list, nil
}

func (s *CatalogService) ListAddOns(ctx context.Context, slug string) ([]domain.AddOn, error) {
	f, err := s.GetFacility(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.AddOns(ctx, f.ID)
}

// Operating hours

func (s *CatalogService) CreateHoursRule(ctx context.Context, input domain.CreateHoursRuleInput) (*domain.OperatingHoursRule, error) {
	if input.DayOfWeek < 0 || input.DayOfWeek > 6 {
		return nil, fmt.Errorf("%w: day_of_week must be within 0..6", domain.ErrValidation)
	}
	open, err := clock.Parse(input.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: open_time: %w", domain.ErrValidation, err)
	}
	closing, err := clock.Parse(input.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: close_time: %w", domain.ErrValidation, err)
	}
	if !input.IsClosed && !input.IsHoliday && open >= closing {
		return nil, fmt.Errorf("%w: open_time must be before close_time", domain.ErrValidation)
	}

	step := input.SlotDurationMinutes
	if step == 0 {
		step = domain.DefaultSlotDuration
	}
	if step < 0 {
		return nil, fmt.Errorf("%w: slot_duration_minutes must be positive", domain.ErrValidation)
	}

	rule := &domain.OperatingHoursRule{
		ID:                  uuid.New().String(),
		VenueID:             input.VenueID,
		FacilityID:          input.FacilityID,
		DayOfWeek:           input.DayOfWeek,
		OpenTime:            clock.Format(open),
		CloseTime:           clock.Format(closing),
		SlotDurationMinutes: step,
		IsClosed:            input.IsClosed,
		IsHoliday:           input.IsHoliday,
		CreatedAt:           time.Now().UTC(),
	}
	if err = s.hoursRepo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("create operating hours: %w", err)
	}

	s.invalidate(ctx, hoursKey(rule.DayOfWeek))
	return rule, nil
}

func (s *CatalogService) ListHoursRules(ctx context.Context) ([]domain.OperatingHoursRule, error) {
	return s.hoursRepo.List(ctx)
}

func (s *CatalogService) HoursRules(ctx context.Context, day int) ([]domain.OperatingHoursRule, error) {
	var cached []domain.OperatingHoursRule
	if s.fromCache(ctx, hoursKey(day), &cached) {
		return cached, nil
	}

	rules, err := s.hoursRepo.ListByDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list operating hours: %w", err)
	}

	s.toCache(ctx, hoursKey(day), rules)
	return rules, nil
}

// Slots resolves the day's slot starts for a facility and the resources
// still free at each of them.
func (s *CatalogService) Slots(ctx context.Context, slug, date, venueID string) ([]domain.SlotAvailability, error) {
	day, err := dayOfWeek(date)
	if err != nil {
		return nil, err
	}

	f, err := s.GetFacility(ctx, slug)
	if err != nil {
		return nil, err
	}

	rules, err := s.HoursRules(ctx, day)
	if err != nil {
		return nil, err
	}
	if venueID == "" {
		venueID = f.VenueID
	}
	slots := s.resolver.TimeSlots(rules, day, f.ID, venueID)

	existing, err := s.bookingRepo.List(ctx, domain.BookingFilter{FacilityID: f.ID, Date: date})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return availability.Grid(existing, date, f.ResourceCount, slots), nil
}

// Кэш не должен ломать чтение: ошибки только логируем.
func (s *CatalogService) fromCache(ctx context.Context, key string, dst any) bool {
	ok, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		s.logger.Warn("catalog cache read failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
		return false
	}
	return ok
}

func (s *CatalogService) toCache(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn("catalog cache write failed",
			logger.String("key", key),
			logger.String("error", err.Error()),
		)
	}
}

func (s *CatalogService) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.Warn("catalog cache invalidation failed",
			logger.String("error", err.Error()),
		)
	}
}

const facilitiesKey = "facilities"

func facilityKey(slug string) string { return "facility:" + slug }
func addOnsKey(id string) string     { return "addons:" + id }
func hoursKey(day int) string        { return fmt.Sprintf("hours:%d", day) }

func dayOfWeek(date string) (int, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrValidation)
	}
	return int(d.Weekday()), nil
}
