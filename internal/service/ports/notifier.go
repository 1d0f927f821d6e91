package ports

import (
	"context"

	"github.com/stpnv0/ClubCourt/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, member *domain.Member, facility *domain.Facility, booking *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, member *domain.Member, facility *domain.Facility, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, member *domain.Member, facility *domain.Facility, booking *domain.Booking)
}
