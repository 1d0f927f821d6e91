// Package pricing computes booking price summaries from reference data.
package pricing

import (
	"fmt"
	"math"
	"slices"

	"github.com/stpnv0/ClubCourt/internal/clock"
	"github.com/stpnv0/ClubCourt/internal/domain"
)

const (
	MinQuantity = 1
	MaxQuantity = 10
)

type Config struct {
	OffPeakStart string
	OffPeakEnd   string
	CoachFee     int64
	TierRates    map[domain.Tier]float64
	Durations    []int
}

func DefaultConfig() Config {
	return Config{
		OffPeakStart: "10:00",
		OffPeakEnd:   "17:00",
		CoachFee:     4000,
		TierRates: map[domain.Tier]float64{
			domain.TierFounding: 0.25,
			domain.TierGold:     0.20,
			domain.TierSilver:   0.10,
		},
		Durations: []int{60, 90, 120},
	}
}

type Engine struct {
	offPeakStart int
	offPeakEnd   int
	coachFee     int64
	rates        map[domain.Tier]float64
	durations    []int
}

func NewEngine(cfg Config) (*Engine, error) {
	start, err := clock.Parse(cfg.OffPeakStart)
	if err != nil {
		return nil, fmt.Errorf("off-peak start: %w", err)
	}
	end, err := clock.Parse(cfg.OffPeakEnd)
	if err != nil {
		return nil, fmt.Errorf("off-peak end: %w", err)
	}
	if end <= start {
		return nil, fmt.Errorf("%w: off-peak window %s-%s is empty", domain.ErrValidation, cfg.OffPeakStart, cfg.OffPeakEnd)
	}
	if cfg.CoachFee < 0 {
		return nil, fmt.Errorf("%w: coach fee must not be negative", domain.ErrValidation)
	}

	rates := make(map[domain.Tier]float64, len(cfg.TierRates))
	for tier, rate := range cfg.TierRates {
		if rate < 0 || rate > 1 {
			return nil, fmt.Errorf("%w: discount rate for %s must be within [0,1]", domain.ErrValidation, tier)
		}
		rates[tier] = rate
	}

	return &Engine{
		offPeakStart: start,
		offPeakEnd:   end,
		coachFee:     cfg.CoachFee,
		rates:        rates,
		durations:    slices.Clone(cfg.Durations),
	}, nil
}

// ComputeSummary prices a booking request. It has no side effects.
func (e *Engine) ComputeSummary(
	req domain.BookingRequest,
	facility *domain.Facility,
	addOns []domain.AddOn,
) (domain.BookingSummary, error) {
	if facility == nil {
		return domain.BookingSummary{}, fmt.Errorf("%w: facility is required", domain.ErrInvalidInput)
	}
	if facility.BasePrice < 0 {
		return domain.BookingSummary{}, fmt.Errorf("%w: negative base price for %s", domain.ErrInvalidInput, facility.Slug)
	}
	if !e.durationAllowed(req.DurationMinutes) {
		return domain.BookingSummary{}, fmt.Errorf("%w: unsupported duration %d", domain.ErrInvalidInput, req.DurationMinutes)
	}

	offPeak, err := e.IsOffPeak(req.StartTime)
	if err != nil {
		return domain.BookingSummary{}, err
	}
	endTime, err := clock.Add(req.StartTime, req.DurationMinutes)
	if err != nil {
		return domain.BookingSummary{}, err
	}

	perMinute := float64(facility.BasePrice) / 60
	base := int64(math.Round(perMinute * float64(req.DurationMinutes)))

	var discount int64
	var label *string
	if offPeak {
		if rate := e.rates[req.Tier]; rate > 0 {
			discount = int64(math.Round(float64(base) * rate))
			l := discountLabel(req.Tier)
			label = &l
		}
	}

	addOnTotal, err := addOnsTotal(req.AddOns, facility.ID, addOns)
	if err != nil {
		return domain.BookingSummary{}, err
	}
	if req.CoachBooked {
		addOnTotal += e.coachFee
	}

	return domain.BookingSummary{
		BasePrice:     base,
		Discount:      discount,
		DiscountLabel: label,
		AddOnTotal:    addOnTotal,
		TotalPrice:    base - discount + addOnTotal,
		Date:          req.Date,
		StartTime:     req.StartTime,
		EndTime:       endTime,
	}, nil
}

// IsOffPeak reports whether start falls into [offPeakStart, offPeakEnd).
func (e *Engine) IsOffPeak(start string) (bool, error) {
	m, err := clock.Parse(start)
	if err != nil {
		return false, err
	}
	return m >= e.offPeakStart && m < e.offPeakEnd, nil
}

func (e *Engine) durationAllowed(d int) bool {
	if d <= 0 {
		return false
	}
	if len(e.durations) == 0 {
		return true
	}
	return slices.Contains(e.durations, d)
}

// ClampQuantity bounds an add-on quantity to [MinQuantity, MaxQuantity].
func ClampQuantity(q int) int {
	return min(max(q, MinQuantity), MaxQuantity)
}

func addOnsTotal(selected map[string]int, facilityID string, catalog []domain.AddOn) (int64, error) {
	if len(selected) == 0 {
		return 0, nil
	}

	byID := make(map[string]domain.AddOn, len(catalog))
	for _, a := range catalog {
		if a.FacilityID == facilityID {
			byID[a.ID] = a
		}
	}

	var total int64
	for id, qty := range selected {
		a, ok := byID[id]
		if !ok {
			return 0, fmt.Errorf("%w: unknown add-on %q", domain.ErrInvalidInput, id)
		}
		if a.Price < 0 {
			return 0, fmt.Errorf("%w: negative price for add-on %q", domain.ErrInvalidInput, id)
		}
		total += a.Price * int64(ClampQuantity(qty))
	}

	return total, nil
}

func discountLabel(t domain.Tier) string {
	return fmt.Sprintf("%s Member Discount (Off-Peak)", t.Title())
}
