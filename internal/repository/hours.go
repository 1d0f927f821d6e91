package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type HoursRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewHoursRepo(db *dbpg.DB) *HoursRepository {
	return &HoursRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *HoursRepository) Create(ctx context.Context, h *domain.OperatingHoursRule) error {
	query := `INSERT INTO operating_hours (id, venue_id, facility_id, day_of_week, open_time, close_time,
			  		slot_duration_minutes, is_closed, is_holiday, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		h.ID, h.VenueID, h.FacilityID, h.DayOfWeek, h.OpenTime, h.CloseTime,
		h.SlotDurationMinutes, h.IsClosed, h.IsHoliday, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert operating hours: %w", err)
	}

	return nil
}

func (r *HoursRepository) List(ctx context.Context) ([]domain.OperatingHoursRule, error) {
	query := `SELECT id, venue_id, facility_id, day_of_week, open_time, close_time,
			  		slot_duration_minutes, is_closed, is_holiday, created_at
			  FROM operating_hours
			  ORDER BY day_of_week, created_at`

	return r.list(ctx, query)
}

// ListByDay keeps insertion order so the first matching rule wins consistently.
func (r *HoursRepository) ListByDay(ctx context.Context, day int) ([]domain.OperatingHoursRule, error) {
	query := `SELECT id, venue_id, facility_id, day_of_week, open_time, close_time,
			  		slot_duration_minutes, is_closed, is_holiday, created_at
			  FROM operating_hours
			  WHERE day_of_week = $1
			  ORDER BY created_at`

	return r.list(ctx, query, day)
}

func (r *HoursRepository) list(ctx context.Context, query string, args ...any) ([]domain.OperatingHoursRule, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list operating hours: %w", err)
	}
	defer rows.Close()

	var res []domain.OperatingHoursRule
	for rows.Next() {
		var h domain.OperatingHoursRule
		if err = rows.Scan(
			&h.ID, &h.VenueID, &h.FacilityID, &h.DayOfWeek, &h.OpenTime, &h.CloseTime,
			&h.SlotDurationMinutes, &h.IsClosed, &h.IsHoliday, &h.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan operating hours: %w", err)
		}
		res = append(res, h)
	}

	return res, rows.Err()
}
