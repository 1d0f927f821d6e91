package repository

import (
	"context"
	"fmt"

	"github.com/stpnv0/ClubCourt/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type AddOnRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAddOnRepo(db *dbpg.DB) *AddOnRepository {
	return &AddOnRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *AddOnRepository) Create(ctx context.Context, a *domain.AddOn) error {
	query := `INSERT INTO add_ons (id, facility_id, label, price, icon, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, a.ID, a.FacilityID, a.Label, a.Price, a.Icon, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert add-on: %w", err)
	}

	return nil
}

func (r *AddOnRepository) ListByFacility(ctx context.Context, facilityID string) ([]domain.AddOn, error) {
	query := `SELECT id, facility_id, label, price, icon, created_at
			  FROM add_ons
			  WHERE facility_id = $1
			  ORDER BY label`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, facilityID)
	if err != nil {
		return nil, fmt.Errorf("list add-ons: %w", err)
	}
	defer rows.Close()

	var res []domain.AddOn
	for rows.Next() {
		var a domain.AddOn
		if err = rows.Scan(&a.ID, &a.FacilityID, &a.Label, &a.Price, &a.Icon, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan add-on: %w", err)
		}
		res = append(res, a)
	}

	return res, rows.Err()
}
