package notification

import (
	"context"
	"testing"

	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.00", formatAmount(0))
	assert.Equal(t, "40.00", formatAmount(4000))
	assert.Equal(t, "98.05", formatAmount(9805))
}

func TestBookingDetails(t *testing.T) {
	label := "Silver Member Discount (Off-Peak)"
	b := &domain.Booking{
		ResourceID:    2,
		Date:          "2026-10-16",
		StartTime:     "10:00",
		EndTime:       "11:30",
		Discount:      900,
		DiscountLabel: &label,
	}

	text := bookingDetails(&domain.Facility{Label: "Padel"}, b)

	assert.Contains(t, text, "Padel #2")
	assert.Contains(t, text, "2026-10-16, 10:00-11:30")
	assert.Contains(t, text, label+": -9.00")
}

func TestTelegramNotifier_Disabled(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(1)
	member := &domain.Member{ID: "m1", TelegramChatID: &chatID}
	facility := &domain.Facility{Label: "Padel"}
	b := &domain.Booking{ID: "b1"}

	assert.NotPanics(t, func() {
		n.NotifyBookingCreated(context.Background(), member, facility, b)
		n.NotifyBookingConfirmed(context.Background(), member, facility, b)
		n.NotifyBookingCancelled(context.Background(), member, facility, b)
	})
}
