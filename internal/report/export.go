package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/xuri/excelize/v2"
)

// ContentType of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type bookingLister interface {
	List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
}

type facilityLister interface {
	ListFacilities(ctx context.Context) ([]*domain.Facility, error)
}

type Exporter struct {
	bookings   bookingLister
	facilities facilityLister
	logger     logger.Logger
}

func NewExporter(bookings bookingLister, facilities facilityLister, logger logger.Logger) *Exporter {
	return &Exporter{
		bookings:   bookings,
		facilities: facilities,
		logger:     logger,
	}
}

var header = []interface{}{
	"booking_id",
	"facility",
	"member_id",
	"resource",
	"date",
	"start_time",
	"end_time",
	"duration_min",
	"players",
	"coach",
	"base_price",
	"discount",
	"discount_label",
	"add_on_total",
	"total_price",
	"status",
	"payment_status",
	"payment_reference",
}

// ExportBookings builds an xlsx sheet with one row per booking of the day,
// cancelled ones included.
func (e *Exporter) ExportBookings(ctx context.Context, date string) ([]byte, error) {
	bookings, err := e.bookings.List(ctx, domain.BookingFilter{Date: date})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	facilities, err := e.facilities.ListFacilities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	names := make(map[string]string, len(facilities))
	for _, f := range facilities {
		names[f.ID] = f.Label
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	if err = f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	row := 2
	for _, b := range bookings {
		label := ""
		if b.DiscountLabel != nil {
			label = *b.DiscountLabel
		}

		excelRow := []interface{}{
			b.ID,
			names[b.FacilityID],
			b.MemberID,
			b.ResourceID,
			b.Date,
			b.StartTime,
			b.EndTime,
			b.DurationMinutes,
			b.Players,
			b.CoachBooked,
			b.BasePrice,
			b.Discount,
			label,
			b.AddOnTotal,
			b.TotalPrice,
			string(b.Status),
			string(b.PaymentStatus),
			b.PaymentReference,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err = f.Write(buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	e.logger.Info("bookings exported",
		logger.String("date", date),
		logger.Int("rows", len(bookings)),
	)

	return buf.Bytes(), nil
}
