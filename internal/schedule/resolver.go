// Package schedule turns operating-hours rules into bookable slot starts.
package schedule

import (
	"iter"
	"slices"

	"github.com/stpnv0/ClubCourt/internal/clock"
	"github.com/stpnv0/ClubCourt/internal/domain"
)

type Resolver struct {
	defaults []string
}

func NewResolver(defaults []string) *Resolver {
	return &Resolver{defaults: slices.Clone(defaults)}
}

func (r *Resolver) TimeSlots(rules []domain.OperatingHoursRule, day int, facilityID, venueID string) []string {
	return ResolveTimeSlots(rules, day, facilityID, venueID, r.defaults)
}

// ResolveTimeSlots picks the effective rule for the day and expands it.
// Без подходящего правила (или если оно не даёт ни одного слота) возвращаются defaults.
func ResolveTimeSlots(
	rules []domain.OperatingHoursRule,
	day int,
	facilityID, venueID string,
	defaults []string,
) []string {
	rule, ok := Effective(rules, day, facilityID, venueID)
	if !ok {
		return slices.Clone(defaults)
	}

	slots := slices.Collect(Slots(rule))
	if len(slots) == 0 {
		return slices.Clone(defaults)
	}
	return slots
}

// Effective selects by precedence: facility rule, then venue rule without a
// facility, then a fully generic rule. Closed and holiday rules never match.
func Effective(rules []domain.OperatingHoursRule, day int, facilityID, venueID string) (domain.OperatingHoursRule, bool) {
	var eligible []domain.OperatingHoursRule
	for _, r := range rules {
		if r.Eligible(day) {
			eligible = append(eligible, r)
		}
	}

	matchers := []func(domain.OperatingHoursRule) bool{
		func(r domain.OperatingHoursRule) bool {
			return facilityID != "" && r.FacilityID == facilityID
		},
		func(r domain.OperatingHoursRule) bool {
			return venueID != "" && r.VenueID == venueID && r.FacilityID == ""
		},
		func(r domain.OperatingHoursRule) bool {
			return r.FacilityID == "" && r.VenueID == ""
		},
	}

	for _, match := range matchers {
		if i := slices.IndexFunc(eligible, match); i >= 0 {
			return eligible[i], true
		}
	}

	return domain.OperatingHoursRule{}, false
}

// Slots walks from open to close in SlotDurationMinutes steps; close is
// exclusive. Unparsable times yield an empty sequence. Each range call
// starts over.
func Slots(rule domain.OperatingHoursRule) iter.Seq[string] {
	return func(yield func(string) bool) {
		open, err := clock.Parse(rule.OpenTime)
		if err != nil {
			return
		}
		closing, err := clock.Parse(rule.CloseTime)
		if err != nil {
			return
		}
		step := rule.SlotDurationMinutes
		if step <= 0 {
			step = domain.DefaultSlotDuration
		}

		for cur := open; cur < closing; cur += step {
			if !yield(clock.Format(cur)) {
				return
			}
		}
	}
}
