package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const bookingColumns = `id, facility_id, member_id, resource_id, to_char(booking_date, 'YYYY-MM-DD'),
		  start_time, end_time, duration_minutes, players, coach_booked, add_ons,
		  base_price, discount, discount_label, add_on_total, total_price,
		  status, payment_status, payment_reference, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	addOns, err := json.Marshal(b.AddOns)
	if err != nil {
		return fmt.Errorf("marshal add-ons: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем площадку, чтобы параллельные брони на неё шли по очереди
	var resourceCount int
	lockQuery := `SELECT resource_count FROM facilities WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, b.FacilityID).Scan(&resourceCount); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrFacilityNotFound
		}
		return fmt.Errorf("lock facility: %w", err)
	}
	if b.ResourceID < 1 || b.ResourceID > resourceCount {
		return fmt.Errorf("%w: resource %d does not exist", domain.ErrValidation, b.ResourceID)
	}

	var taken bool
	takenQuery := `SELECT EXISTS (
				SELECT 1 FROM bookings
				WHERE facility_id = $1 AND booking_date = $2 AND resource_id = $3
				  AND start_time = $4 AND status <> $5)`
	if err = tx.QueryRowContext(
		ctx, takenQuery, b.FacilityID, b.Date, b.ResourceID, b.StartTime, domain.BookingStatusCancelled,
	).Scan(&taken); err != nil {
		return fmt.Errorf("check slot: %w", err)
	}
	if taken {
		return domain.ErrSlotTaken
	}

	query := `INSERT INTO bookings (id, facility_id, member_id, resource_id, booking_date,
				start_time, end_time, duration_minutes, players, coach_booked, add_ons,
				base_price, discount, discount_label, add_on_total, total_price,
				status, payment_status, payment_reference, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err = tx.ExecContext(
		ctx, query,
		b.ID, b.FacilityID, b.MemberID, b.ResourceID, b.Date,
		b.StartTime, b.EndTime, b.DurationMinutes, b.Players, b.CoachBooked, addOns,
		b.BasePrice, b.Discount, b.DiscountLabel, b.AddOnTotal, b.TotalPrice,
		b.Status, b.PaymentStatus, b.PaymentReference, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrSlotTaken
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE ($1 = '' OR facility_id::text = $1)
			    AND ($2 = '' OR booking_date = NULLIF($2, '')::date)
			  ORDER BY booking_date, start_time, resource_id`

	return r.list(ctx, query, filter.FacilityID, filter.Date)
}

func (r *BookingRepository) ListByMember(ctx context.Context, memberID string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE member_id = $1
			  ORDER BY created_at DESC`

	return r.list(ctx, query, memberID)
}

func (r *BookingRepository) UpdatePayment(ctx context.Context, id string, upd domain.PaymentUpdate) error {
	query := `UPDATE bookings
			  SET payment_status = $3,
			      payment_reference = CASE WHEN $4 = '' THEN payment_reference ELSE $4 END,
			      status = CASE WHEN $5 = '' THEN status ELSE $5 END,
			      updated_at = now()
			  WHERE id = $1 AND payment_status = $2 AND status <> $6`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		id, upd.From, upd.To, upd.Reference, upd.BookingStatus, domain.BookingStatusCancelled,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("payment rows affected: %w", err)
	}
	if rows == 0 {
		// Статус успел поменяться между чтением и записью
		return domain.ErrPaymentTransition
	}

	return nil
}

func (r *BookingRepository) Cancel(ctx context.Context, id string) error {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status <> $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.BookingStatusCancelled)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBookingNotActive
	}

	return nil
}

func (r *BookingRepository) CancelExpired(ctx context.Context, paymentTTL time.Duration) ([]*domain.Booking, error) {
	query := `
        UPDATE bookings
        SET status = $1, updated_at = now()
        WHERE status = $2
          AND payment_status = ANY($3)
          AND created_at + make_interval(secs => $4) < now()
        RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusCancelled, domain.BookingStatusPending,
		pq.Array(domain.UnpaidStatuses), paymentTTL.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) list(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, *b)
	}

	return res, rows.Err()
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var b domain.Booking
	var addOns []byte
	var label sql.NullString
	if err := s.Scan(
		&b.ID, &b.FacilityID, &b.MemberID, &b.ResourceID, &b.Date,
		&b.StartTime, &b.EndTime, &b.DurationMinutes, &b.Players, &b.CoachBooked, &addOns,
		&b.BasePrice, &b.Discount, &label, &b.AddOnTotal, &b.TotalPrice,
		&b.Status, &b.PaymentStatus, &b.PaymentReference, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(addOns) > 0 {
		if err := json.Unmarshal(addOns, &b.AddOns); err != nil {
			return nil, fmt.Errorf("unmarshal add-ons: %w", err)
		}
	}
	if label.Valid {
		b.DiscountLabel = &label.String
	}

	return &b, nil
}
