package report

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/xuri/excelize/v2"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type stubBookings struct {
	bookings []domain.Booking
	filter   domain.BookingFilter
	err      error
}

func (s *stubBookings) List(_ context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	s.filter = filter
	return s.bookings, s.err
}

type stubFacilities []*domain.Facility

func (s stubFacilities) ListFacilities(context.Context) ([]*domain.Facility, error) {
	return s, nil
}

func TestExporter_ExportBookings(t *testing.T) {
	label := "Gold Member Discount (Off-Peak)"
	bookings := &stubBookings{bookings: []domain.Booking{
		{
			ID: "b1", FacilityID: "f1", MemberID: "m1", ResourceID: 2,
			Date: "2026-10-16", StartTime: "10:00", EndTime: "11:00", DurationMinutes: 60,
			BasePrice: 5000, Discount: 1000, DiscountLabel: &label, TotalPrice: 4000,
			Status: domain.BookingStatusConfirmed, PaymentStatus: domain.PaymentStatusVerified,
		},
		{
			ID: "b2", FacilityID: "f1", MemberID: "m2", ResourceID: 1,
			Date: "2026-10-16", StartTime: "18:00", EndTime: "19:30", DurationMinutes: 90,
			BasePrice: 7500, TotalPrice: 7500,
			Status: domain.BookingStatusPending, PaymentStatus: domain.PaymentStatusPendingPayment,
		},
	}}
	facilities := stubFacilities{{ID: "f1", Label: "Padel Court"}}

	e := NewExporter(bookings, facilities, newTestLogger(t))

	data, err := e.ExportBookings(context.Background(), "2026-10-16")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-16", bookings.filter.Date)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "booking_id", rows[0][0])
	assert.Equal(t, "b1", rows[1][0])
	assert.Equal(t, "Padel Court", rows[1][1])
	assert.Equal(t, label, rows[1][12])
	assert.Equal(t, "4000", rows[1][14])
	assert.Equal(t, "PENDING", rows[2][15])
}

func TestExporter_ExportBookings_Empty(t *testing.T) {
	e := NewExporter(&stubBookings{}, stubFacilities{}, newTestLogger(t))

	data, err := e.ExportBookings(context.Background(), "2026-10-16")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(f.GetActiveSheetIndex()))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExporter_ExportBookings_ListError(t *testing.T) {
	dbErr := errors.New("db error")
	e := NewExporter(&stubBookings{err: dbErr}, stubFacilities{}, newTestLogger(t))

	_, err := e.ExportBookings(context.Background(), "2026-10-16")
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}

func TestExporter_ExportBookings_MalformedDate(t *testing.T) {
	e := NewExporter(&stubBookings{err: domain.ErrValidation}, stubFacilities{}, newTestLogger(t))

	_, err := e.ExportBookings(context.Background(), "16.10.2026")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
