package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type FacilityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFacilityRepo(db *dbpg.DB) *FacilityRepository {
	return &FacilityRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

const facilityColumns = `id, slug, label, venue_id, resource_count, base_price, min_players,
		  requires_certification, allowed_tiers, created_at, updated_at`

func (r *FacilityRepository) Create(ctx context.Context, f *domain.Facility) error {
	query := `INSERT INTO facilities (` + facilityColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		f.ID, f.Slug, f.Label, f.VenueID, f.ResourceCount, f.BasePrice, f.MinPlayers,
		f.RequiresCertification, pq.Array(tiersToStrings(f.AllowedTiers)), f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("insert facility: %w", err)
	}

	return nil
}

func (r *FacilityRepository) GetBySlug(ctx context.Context, slug string) (*domain.Facility, error) {
	return r.getOne(ctx, `SELECT `+facilityColumns+` FROM facilities WHERE slug=$1`, slug)
}

func (r *FacilityRepository) GetByID(ctx context.Context, id string) (*domain.Facility, error) {
	return r.getOne(ctx, `SELECT `+facilityColumns+` FROM facilities WHERE id=$1`, id)
}

func (r *FacilityRepository) List(ctx context.Context) ([]*domain.Facility, error) {
	query := `SELECT ` + facilityColumns + ` FROM facilities ORDER BY label`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	defer rows.Close()

	var res []*domain.Facility
	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("scan facility: %w", err)
		}
		res = append(res, f)
	}

	return res, rows.Err()
}

func (r *FacilityRepository) getOne(ctx context.Context, query string, arg any) (*domain.Facility, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get facility: %w", err)
	}

	f, err := scanFacility(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFacilityNotFound
		}
		return nil, fmt.Errorf("scan facility: %w", err)
	}

	return f, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFacility(s scanner) (*domain.Facility, error) {
	var f domain.Facility
	var tiers []string
	if err := s.Scan(
		&f.ID, &f.Slug, &f.Label, &f.VenueID, &f.ResourceCount, &f.BasePrice, &f.MinPlayers,
		&f.RequiresCertification, pq.Array(&tiers), &f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		return nil, err
	}
	f.AllowedTiers = make([]domain.Tier, 0, len(tiers))
	for _, t := range tiers {
		f.AllowedTiers = append(f.AllowedTiers, domain.Tier(t))
	}

	return &f, nil
}

func tiersToStrings(tiers []domain.Tier) []string {
	res := make([]string, 0, len(tiers))
	for _, t := range tiers {
		res = append(res, string(t))
	}
	return res
}
