package ports

import (
	"context"
	"time"

	"github.com/stpnv0/ClubCourt/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.Booking, error)
	UpdatePayment(ctx context.Context, id string, upd domain.PaymentUpdate) error
	Cancel(ctx context.Context, id string) error
	CancelExpired(ctx context.Context, paymentTTL time.Duration) ([]*domain.Booking, error)
}

type BookingMetrics interface {
	ObserveQuote(facility string, total int64)
	IncBookings(facility, outcome string)
}
