// Package repository defines the persistence ports of the domain.
package repository

import (
	"context"

	"scout/internal/domain/entity"
	"scout/internal/errors"

	"github.com/google/uuid"
)

// ErrPropertyNotFound is returned when no property matches the lookup.
var ErrPropertyNotFound = errors.New("property not found")

// PropertyRepository is the persistence port for real-estate listings.
type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	FindAll(ctx context.Context) ([]*entity.Property, error)
	FindByType(ctx context.Context, propertyType entity.PropertyType) ([]*entity.Property, error)
	// FindInRadius returns properties within radiusKm of center, nearest first.
	FindInRadius(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]*entity.Property, error)
	Update(ctx context.Context, property *entity.Property) error
	Delete(ctx context.Context, id uuid.UUID) error
}
