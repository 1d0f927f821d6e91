package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/ClubCourt/internal/cache"
	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/stpnv0/ClubCourt/internal/schedule"
	"github.com/stpnv0/ClubCourt/internal/service/ports"
	"github.com/stpnv0/ClubCourt/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogMocks struct {
	facilities *mocks.MockFacilityRepo
	addOns     *mocks.MockAddOnRepo
	hours      *mocks.MockHoursRepo
	bookings   *mocks.MockBookingRepo
}

func newCatalogService(t *testing.T, c ports.Cache) (*CatalogService, catalogMocks) {
	t.Helper()
	m := catalogMocks{
		facilities: mocks.NewMockFacilityRepo(t),
		addOns:     mocks.NewMockAddOnRepo(t),
		hours:      mocks.NewMockHoursRepo(t),
		bookings:   mocks.NewMockBookingRepo(t),
	}
	svc := NewCatalogService(m.facilities, m.addOns, m.hours, m.bookings, c, schedule.NewResolver(testSlots), newTestLogger(t))
	return svc, m
}

func TestCatalogService_CreateFacility_Success(t *testing.T) {
	c := mocks.NewMockCache(t)
	svc, m := newCatalogService(t, c)

	m.facilities.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	c.EXPECT().Delete(mock.Anything, "facilities").Return(nil)

	f, err := svc.CreateFacility(context.Background(), domain.CreateFacilityInput{
		Slug:          "padel",
		Label:         "Padel",
		ResourceCount: 3,
		BasePrice:     6000,
		AllowedTiers:  []domain.Tier{domain.TierGold},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, f.ID)
	assert.Equal(t, 1, f.MinPlayers)
	assert.Equal(t, 3, f.ResourceCount)
}

func TestCatalogService_CreateFacility_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateFacilityInput
	}{
		{"no slug", domain.CreateFacilityInput{Label: "Padel", ResourceCount: 1}},
		{"no resources", domain.CreateFacilityInput{Slug: "padel", Label: "Padel"}},
		{"negative price", domain.CreateFacilityInput{Slug: "padel", Label: "Padel", ResourceCount: 1, BasePrice: -1}},
		{"unknown tier", domain.CreateFacilityInput{Slug: "padel", Label: "Padel", ResourceCount: 1, AllowedTiers: []domain.Tier{"PLATINUM"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newCatalogService(t, cache.Noop{})

			_, err := svc.CreateFacility(context.Background(), tt.input)

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCatalogService_CreateFacility_SlugTaken(t *testing.T) {
	svc, m := newCatalogService(t, cache.Noop{})

	m.facilities.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSlugTaken)

	_, err := svc.CreateFacility(context.Background(), domain.CreateFacilityInput{Slug: "padel", Label: "Padel", ResourceCount: 1})

	assert.ErrorIs(t, err, domain.ErrSlugTaken)
}

func TestCatalogService_GetFacility_CacheHit(t *testing.T) {
	c := mocks.NewMockCache(t)
	svc, _ := newCatalogService(t, c)

	c.EXPECT().Get(mock.Anything, "facility:padel", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, dst any) (bool, error) {
			*dst.(*domain.Facility) = *padelFacility()
			return true, nil
		})

	f, err := svc.GetFacility(context.Background(), "padel")

	require.NoError(t, err)
	assert.Equal(t, "f1", f.ID)
}

func TestCatalogService_GetFacility_CacheMiss(t *testing.T) {
	c := mocks.NewMockCache(t)
	svc, m := newCatalogService(t, c)

	facility := padelFacility()
	c.EXPECT().Get(mock.Anything, "facility:padel", mock.Anything).Return(false, nil)
	m.facilities.EXPECT().GetBySlug(mock.Anything, "padel").Return(facility, nil)
	c.EXPECT().Set(mock.Anything, "facility:padel", facility).Return(nil)

	f, err := svc.GetFacility(context.Background(), "padel")

	require.NoError(t, err)
	assert.Equal(t, facility, f)
}

func TestCatalogService_GetFacility_CacheDown(t *testing.T) {
	c := mocks.NewMockCache(t)
	svc, m := newCatalogService(t, c)

	c.EXPECT().Get(mock.Anything, "facility:padel", mock.Anything).Return(false, errors.New("connection refused"))
	m.facilities.EXPECT().GetBySlug(mock.Anything, "padel").Return(padelFacility(), nil)
	c.EXPECT().Set(mock.Anything, "facility:padel", mock.Anything).Return(errors.New("connection refused"))

	f, err := svc.GetFacility(context.Background(), "padel")

	require.NoError(t, err)
	assert.Equal(t, "padel", f.Slug)
}

func TestCatalogService_GetFacility_NotFound(t *testing.T) {
	svc, m := newCatalogService(t, cache.Noop{})

	m.facilities.EXPECT().GetBySlug(mock.Anything, "nope").Return(nil, domain.ErrFacilityNotFound)

	_, err := svc.GetFacility(context.Background(), "nope")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_CreateAddOn_Success(t *testing.T) {
	c := mocks.NewMockCache(t)
	svc, m := newCatalogService(t, c)

	c.EXPECT().Get(mock.Anything, "facility:padel", mock.Anything).Return(false, nil)
	m.facilities.EXPECT().GetBySlug(mock.Anything, "padel").Return(padelFacility(), nil)
	c.EXPECT().Set(mock.Anything, "facility:padel", mock.Anything).Return(nil)
	m.addOns.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	c.EXPECT().Delete(mock.Anything, "addons:f1").Return(nil)

	a, err := svc.CreateAddOn(context.Background(), domain.CreateAddOnInput{
		FacilitySlug: "padel",
		Label:        "Rackets",
		Price:        500,
	})

	require.NoError(t, err)
	assert.Equal(t, "f1", a.FacilityID)
	assert.NotEmpty(t, a.ID)
}

func TestCatalogService_CreateAddOn_NegativePrice(t *testing.T) {
	svc, _ := newCatalogService(t, cache.Noop{})

	_, err := svc.CreateAddOn(context.Background(), domain.CreateAddOnInput{FacilitySlug: "padel", Label: "Balls", Price: -5})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_CreateHoursRule(t *testing.T) {
	tests := []struct {
		name    string
		input   domain.CreateHoursRuleInput
		wantErr bool
	}{
		{"ok", domain.CreateHoursRuleInput{DayOfWeek: 1, OpenTime: "8:00", CloseTime: "22:00"}, false},
		{"closed day ignores window", domain.CreateHoursRuleInput{DayOfWeek: 0, OpenTime: "00:00", CloseTime: "00:00", IsClosed: true}, false},
		{"bad day", domain.CreateHoursRuleInput{DayOfWeek: 7, OpenTime: "08:00", CloseTime: "22:00"}, true},
		{"bad time", domain.CreateHoursRuleInput{DayOfWeek: 1, OpenTime: "8am", CloseTime: "22:00"}, true},
		{"inverted window", domain.CreateHoursRuleInput{DayOfWeek: 1, OpenTime: "22:00", CloseTime: "08:00"}, true},
		{"negative step", domain.CreateHoursRuleInput{DayOfWeek: 1, OpenTime: "08:00", CloseTime: "22:00", SlotDurationMinutes: -30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newCatalogService(t, cache.Noop{})
			if !tt.wantErr {
				m.hours.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
			}

			rule, err := svc.CreateHoursRule(context.Background(), tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.DefaultSlotDuration, rule.SlotDurationMinutes)
		})
	}
}

func TestCatalogService_CreateHoursRule_NormalisesTimes(t *testing.T) {
	svc, m := newCatalogService(t, cache.Noop{})

	m.hours.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	rule, err := svc.CreateHoursRule(context.Background(), domain.CreateHoursRuleInput{
		DayOfWeek: 2, OpenTime: "7:30", CloseTime: "9:00", SlotDurationMinutes: 45,
	})

	require.NoError(t, err)
	assert.Equal(t, "07:30", rule.OpenTime)
	assert.Equal(t, "09:00", rule.CloseTime)
	assert.Equal(t, 45, rule.SlotDurationMinutes)
}

func TestCatalogService_Slots(t *testing.T) {
	svc, m := newCatalogService(t, cache.Noop{})

	rules := []domain.OperatingHoursRule{
		{VenueID: "v1", DayOfWeek: testDay, OpenTime: "09:00", CloseTime: "12:00", SlotDurationMinutes: 60},
	}
	existing := []domain.Booking{
		{Date: testDate, ResourceID: 1, StartTime: "10:00", Status: domain.BookingStatusPending},
		{Date: testDate, ResourceID: 2, StartTime: "11:00", Status: domain.BookingStatusCancelled},
	}

	m.facilities.EXPECT().GetBySlug(mock.Anything, "padel").Return(padelFacility(), nil)
	m.hours.EXPECT().ListByDay(mock.Anything, testDay).Return(rules, nil)
	m.bookings.EXPECT().List(mock.Anything, domain.BookingFilter{FacilityID: "f1", Date: testDate}).Return(existing, nil)

	slots, err := svc.Slots(context.Background(), "padel", testDate, "")

	require.NoError(t, err)
	assert.Equal(t, []domain.SlotAvailability{
		{StartTime: "09:00", FreeResources: []int{1, 2}},
		{StartTime: "10:00", FreeResources: []int{2}},
		{StartTime: "11:00", FreeResources: []int{1, 2}},
	}, slots)
}

func TestCatalogService_Slots_FallsBackToDefaults(t *testing.T) {
	svc, m := newCatalogService(t, cache.Noop{})

	closed := []domain.OperatingHoursRule{
		{FacilityID: "f1", DayOfWeek: testDay, OpenTime: "09:00", CloseTime: "12:00", IsHoliday: true},
	}

	m.facilities.EXPECT().GetBySlug(mock.Anything, "padel").Return(padelFacility(), nil)
	m.hours.EXPECT().ListByDay(mock.Anything, testDay).Return(closed, nil)
	m.bookings.EXPECT().List(mock.Anything, mock.Anything).Return(nil, nil)

	slots, err := svc.Slots(context.Background(), "padel", testDate, "v2")

	require.NoError(t, err)
	require.Len(t, slots, len(testSlots))
	assert.Equal(t, testSlots[0], slots[0].StartTime)
}

func TestCatalogService_Slots_BadDate(t *testing.T) {
	svc, _ := newCatalogService(t, cache.Noop{})

	_, err := svc.Slots(context.Background(), "padel", "tomorrow", "")

	assert.ErrorIs(t, err, domain.ErrValidation)
}
