package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/stpnv0/ClubCourt/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_SweepsOnStart(t *testing.T) {
	canceller := mocks.NewMockBookingCanceller(t)
	log := newTestLogger(t)

	s := New(canceller, time.Hour, log)

	cancelled := []*domain.Booking{
		{ID: "b1", FacilityID: "f1", MemberID: "m1", Date: "2026-10-16", StartTime: "10:00", ResourceID: 1},
	}
	canceller.EXPECT().CancelExpired(mock.Anything).Return(cancelled, nil).Once()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.Len(t, canceller.Calls, 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	canceller := mocks.NewMockBookingCanceller(t)
	log := newTestLogger(t)

	s := New(canceller, 50*time.Millisecond, log)

	canceller.EXPECT().CancelExpired(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(canceller.Calls), 2)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	canceller := mocks.NewMockBookingCanceller(t)
	log := newTestLogger(t)

	s := New(canceller, time.Second, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}

	assert.Empty(t, canceller.Calls)
}

func TestScheduler_MultipleTicks(t *testing.T) {
	canceller := mocks.NewMockBookingCanceller(t)
	log := newTestLogger(t)

	s := New(canceller, 30*time.Millisecond, log)

	canceller.EXPECT().CancelExpired(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(canceller.Calls), 3)
}
