package pricing

import (
	"fmt"
	"math"
	"testing"

	"github.com/stpnv0/ClubCourt/internal/clock"
	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig())
	require.NoError(t, err)
	return e
}

func padel() *domain.Facility {
	return &domain.Facility{ID: "f-padel", Slug: "padel", Label: "Padel", ResourceCount: 4, BasePrice: 6000}
}

func TestEngine_ComputeSummary_GoldOffPeak(t *testing.T) {
	e := newTestEngine(t)

	sum, err := e.ComputeSummary(domain.BookingRequest{
		Date:            "2026-10-20",
		StartTime:       "11:00",
		DurationMinutes: 90,
		Tier:            domain.TierGold,
	}, padel(), nil)

	require.NoError(t, err)
	assert.Equal(t, int64(9000), sum.BasePrice)
	assert.Equal(t, int64(1800), sum.Discount)
	assert.Equal(t, int64(0), sum.AddOnTotal)
	assert.Equal(t, int64(7200), sum.TotalPrice)
	require.NotNil(t, sum.DiscountLabel)
	assert.Equal(t, "Gold Member Discount (Off-Peak)", *sum.DiscountLabel)
	assert.Equal(t, "2026-10-20", sum.Date)
	assert.Equal(t, "11:00", sum.StartTime)
	assert.Equal(t, "12:30", sum.EndTime)
}

func TestEngine_ComputeSummary_FoundingPeak(t *testing.T) {
	e := newTestEngine(t)

	sum, err := e.ComputeSummary(domain.BookingRequest{
		StartTime:       "19:00",
		DurationMinutes: 90,
		Tier:            domain.TierFounding,
	}, padel(), nil)

	require.NoError(t, err)
	assert.Equal(t, int64(0), sum.Discount)
	assert.Nil(t, sum.DiscountLabel)
	assert.Equal(t, int64(9000), sum.TotalPrice)
}

func TestEngine_ComputeSummary_TierRatesOffPeak(t *testing.T) {
	e := newTestEngine(t)
	rates := map[domain.Tier]float64{
		domain.TierFounding: 0.25,
		domain.TierGold:     0.20,
		domain.TierSilver:   0.10,
		domain.TierGuest:    0,
	}
	facility := &domain.Facility{ID: "f1", BasePrice: 4750}

	for _, start := range []string{"10:00", "12:15", "16:59"} {
		for _, d := range []int{60, 90, 120} {
			for tier, rate := range rates {
				t.Run(fmt.Sprintf("%s/%d/%s", start, d, tier), func(t *testing.T) {
					sum, err := e.ComputeSummary(domain.BookingRequest{
						StartTime: start, DurationMinutes: d, Tier: tier,
					}, facility, nil)
					require.NoError(t, err)

					wantBase := int64(math.Round(4750.0 / 60 * float64(d)))
					assert.Equal(t, wantBase, sum.BasePrice)
					assert.Equal(t, int64(math.Round(float64(wantBase)*rate)), sum.Discount)
					assert.Equal(t, sum.BasePrice-sum.Discount+sum.AddOnTotal, sum.TotalPrice)
					assert.GreaterOrEqual(t, sum.TotalPrice, int64(0))
				})
			}
		}
	}
}

func TestEngine_ComputeSummary_NoDiscountOutsideOffPeak(t *testing.T) {
	e := newTestEngine(t)

	for _, start := range []string{"00:00", "06:30", "09:59", "17:00", "18:45", "21:00"} {
		for _, tier := range domain.Tiers {
			sum, err := e.ComputeSummary(domain.BookingRequest{
				StartTime: start, DurationMinutes: 60, Tier: tier,
			}, padel(), nil)
			require.NoError(t, err)
			assert.Equal(t, int64(0), sum.Discount, "start=%s tier=%s", start, tier)
			assert.Nil(t, sum.DiscountLabel)
		}
	}
}

func TestEngine_ComputeSummary_CoachFee(t *testing.T) {
	e := newTestEngine(t)

	for _, start := range []string{"08:00", "11:00", "19:00"} {
		for _, tier := range domain.Tiers {
			without, err := e.ComputeSummary(domain.BookingRequest{
				StartTime: start, DurationMinutes: 60, Tier: tier,
			}, padel(), nil)
			require.NoError(t, err)

			with, err := e.ComputeSummary(domain.BookingRequest{
				StartTime: start, DurationMinutes: 60, Tier: tier, CoachBooked: true,
			}, padel(), nil)
			require.NoError(t, err)

			assert.Equal(t, without.AddOnTotal+4000, with.AddOnTotal)
			assert.Equal(t, without.TotalPrice+4000, with.TotalPrice)
		}
	}
}

func TestEngine_ComputeSummary_AddOns(t *testing.T) {
	e := newTestEngine(t)
	catalog := []domain.AddOn{
		{ID: "balls", FacilityID: "f-padel", Price: 500},
		{ID: "racket", FacilityID: "f-padel", Price: 1000},
		{ID: "towel", FacilityID: "f-other", Price: 200},
	}

	sum, err := e.ComputeSummary(domain.BookingRequest{
		StartTime:       "19:00",
		DurationMinutes: 60,
		Tier:            domain.TierGuest,
		AddOns:          map[string]int{"balls": 2, "racket": 0},
	}, padel(), catalog)

	require.NoError(t, err)
	// количество 0 поднимается до 1
	assert.Equal(t, int64(2*500+1*1000), sum.AddOnTotal)
	assert.Equal(t, int64(6000+2000), sum.TotalPrice)
}

func TestEngine_ComputeSummary_AddOnQuantityClamped(t *testing.T) {
	e := newTestEngine(t)
	catalog := []domain.AddOn{{ID: "balls", FacilityID: "f-padel", Price: 500}}

	sum, err := e.ComputeSummary(domain.BookingRequest{
		StartTime: "19:00", DurationMinutes: 60,
		AddOns: map[string]int{"balls": 25},
	}, padel(), catalog)
	require.NoError(t, err)
	assert.Equal(t, int64(10*500), sum.AddOnTotal)

	sum, err = e.ComputeSummary(domain.BookingRequest{
		StartTime: "19:00", DurationMinutes: 60,
		AddOns: map[string]int{"balls": -3},
	}, padel(), catalog)
	require.NoError(t, err)
	assert.Equal(t, int64(500), sum.AddOnTotal)
}

func TestEngine_ComputeSummary_UnknownAddOn(t *testing.T) {
	e := newTestEngine(t)
	catalog := []domain.AddOn{{ID: "towel", FacilityID: "f-other", Price: 200}}

	_, err := e.ComputeSummary(domain.BookingRequest{
		StartTime: "19:00", DurationMinutes: 60,
		AddOns: map[string]int{"towel": 1},
	}, padel(), catalog)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEngine_ComputeSummary_InvalidInput(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name     string
		req      domain.BookingRequest
		facility *domain.Facility
	}{
		{"nil facility", domain.BookingRequest{StartTime: "11:00", DurationMinutes: 60}, nil},
		{"bad start", domain.BookingRequest{StartTime: "11h", DurationMinutes: 60}, padel()},
		{"empty start", domain.BookingRequest{DurationMinutes: 60}, padel()},
		{"signed minutes", domain.BookingRequest{StartTime: "10:+5", DurationMinutes: 60}, padel()},
		{"signed hours", domain.BookingRequest{StartTime: "+9:00", DurationMinutes: 60}, padel()},
		{"negative hours", domain.BookingRequest{StartTime: "-0:30", DurationMinutes: 60}, padel()},
		{"padded start", domain.BookingRequest{StartTime: " 11:00 ", DurationMinutes: 60}, padel()},
		{"unsupported duration", domain.BookingRequest{StartTime: "11:00", DurationMinutes: 45}, padel()},
		{"crosses midnight", domain.BookingRequest{StartTime: "23:00", DurationMinutes: 120}, padel()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.ComputeSummary(tt.req, tt.facility, nil)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestEngine_ComputeSummary_Deterministic(t *testing.T) {
	e := newTestEngine(t)
	catalog := []domain.AddOn{
		{ID: "a", FacilityID: "f-padel", Price: 150},
		{ID: "b", FacilityID: "f-padel", Price: 275},
		{ID: "c", FacilityID: "f-padel", Price: 990},
	}
	req := domain.BookingRequest{
		Date: "2026-11-01", StartTime: "14:30", DurationMinutes: 120,
		Tier: domain.TierSilver, CoachBooked: true,
		AddOns: map[string]int{"a": 3, "b": 1, "c": 7},
	}

	first, err := e.ComputeSummary(req, padel(), catalog)
	require.NoError(t, err)
	for range 20 {
		again, err := e.ComputeSummary(req, padel(), catalog)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEngine_IsOffPeak_Boundaries(t *testing.T) {
	e := newTestEngine(t)

	for m := 0; m < clock.MinutesPerDay; m += 15 {
		got, err := e.IsOffPeak(clock.Format(m))
		require.NoError(t, err)
		assert.Equal(t, m >= 600 && m < 1020, got, clock.Format(m))
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OffPeakEnd = "09:00"
	_, err := NewEngine(cfg)
	assert.ErrorIs(t, err, domain.ErrValidation)

	cfg = DefaultConfig()
	cfg.TierRates[domain.TierGold] = 1.5
	_, err = NewEngine(cfg)
	assert.ErrorIs(t, err, domain.ErrValidation)

	cfg = DefaultConfig()
	cfg.OffPeakStart = "ten"
	_, err = NewEngine(cfg)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 1, ClampQuantity(0))
	assert.Equal(t, 1, ClampQuantity(-5))
	assert.Equal(t, 4, ClampQuantity(4))
	assert.Equal(t, 10, ClampQuantity(11))
}
