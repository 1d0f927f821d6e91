package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

var (
	ErrFacilityNotFound = fmt.Errorf("facility %w", ErrNotFound)
	ErrMemberNotFound   = fmt.Errorf("member %w", ErrNotFound)
	ErrBookingNotFound  = fmt.Errorf("booking %w", ErrNotFound)
)

var (
	ErrSlotTaken         = errors.New("slot is already taken")
	ErrBookingNotActive  = errors.New("booking is already cancelled")
	ErrPaymentTransition = errors.New("payment status transition not allowed")
	ErrSlugTaken         = errors.New("facility slug is already taken")
	ErrUsernameTaken     = errors.New("username is already taken")
)

var (
	ErrTierRestricted        = errors.New("facility is not available for this membership tier")
	ErrCertificationRequired = errors.New("facility requires a safety certification")
)

var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidInput = errors.New("invalid input")
)
