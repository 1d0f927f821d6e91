package ports

import (
	"context"

	"github.com/stpnv0/ClubCourt/internal/domain"
)

type FacilityRepo interface {
	Create(ctx context.Context, f *domain.Facility) error
	GetBySlug(ctx context.Context, slug string) (*domain.Facility, error)
	GetByID(ctx context.Context, id string) (*domain.Facility, error)
	List(ctx context.Context) ([]*domain.Facility, error)
}

type AddOnRepo interface {
	Create(ctx context.Context, a *domain.AddOn) error
	ListByFacility(ctx context.Context, facilityID string) ([]domain.AddOn, error)
}

type HoursRepo interface {
	Create(ctx context.Context, r *domain.OperatingHoursRule) error
	List(ctx context.Context) ([]domain.OperatingHoursRule, error)
	ListByDay(ctx context.Context, day int) ([]domain.OperatingHoursRule, error)
}

// CatalogReader — справочные данные для бронирования (через кэш).
type CatalogReader interface {
	GetFacility(ctx context.Context, slug string) (*domain.Facility, error)
	FacilityByID(ctx context.Context, id string) (*domain.Facility, error)
	AddOns(ctx context.Context, facilityID string) ([]domain.AddOn, error)
	HoursRules(ctx context.Context, day int) ([]domain.OperatingHoursRule, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}
