// Package clock works with same-day "HH:MM" wall-clock strings.
package clock

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stpnv0/ClubCourt/internal/domain"
)

const MinutesPerDay = 24 * 60

// Parse returns minutes since midnight for an "HH:MM" string.
func Parse(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 || !digits(hh) || !digits(mm) {
		return 0, fmt.Errorf("%w: malformed time %q", domain.ErrInvalidInput, s)
	}

	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("%w: malformed time %q", domain.ErrInvalidInput, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("%w: malformed time %q", domain.ErrInvalidInput, s)
	}

	return h*60 + m, nil
}

// Format renders minutes since midnight as zero-padded "HH:MM".
func Format(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Add shifts start by the given minutes. Ending exactly at midnight is
// rendered as "24:00"; anything later crosses into the next day and fails.
func Add(start string, minutes int) (string, error) {
	m, err := Parse(start)
	if err != nil {
		return "", err
	}
	end := m + minutes
	if minutes < 0 || end > MinutesPerDay {
		return "", fmt.Errorf("%w: %s + %d min crosses midnight", domain.ErrInvalidInput, start, minutes)
	}
	return Format(end), nil
}

// digits — только ASCII-цифры: Atoi сам по себе пропускает знак.
func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
