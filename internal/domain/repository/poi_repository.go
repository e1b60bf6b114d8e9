package repository

import (
	"context"

	"scout/internal/domain/entity"
	"scout/internal/errors"

	"github.com/google/uuid"
)

// ErrPOINotFound is returned when no POI matches the lookup.
var ErrPOINotFound = errors.New("poi not found")

// POIRepository is the persistence port for curated points of interest.
type POIRepository interface {
	Create(ctx context.Context, poi *entity.POI) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.POI, error)
	FindAll(ctx context.Context) ([]*entity.POI, error)
	FindByType(ctx context.Context, poiType entity.POIType) ([]*entity.POI, error)
	// FindInRadius returns POIs within radiusKm of center, nearest first.
	// A nil poiType matches every type.
	FindInRadius(ctx context.Context, center entity.Coordinate, radiusKm float64, poiType *entity.POIType) ([]*entity.POI, error)
	Update(ctx context.Context, poi *entity.POI) error
	Delete(ctx context.Context, id uuid.UUID) error
}
