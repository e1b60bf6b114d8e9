// Package usecase defines the application-level interfaces consumed by the
// delivery layer.
package usecase

import (
	"context"

	"scout/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePropertyInput represents the input for creating a new property listing
type CreatePropertyInput struct {
	Title       string               `json:"title" validate:"required"`
	Type        entity.PropertyType  `json:"type" validate:"required"`
	Price       float64              `json:"price" validate:"gte=0"`
	Description string               `json:"description"`
	Sqft        float64              `json:"sqft" validate:"gte=0"`
	Bedrooms    int                  `json:"bedrooms" validate:"gte=0"`
	Bathrooms   float64              `json:"bathrooms" validate:"gte=0"`
	Lat         float64              `json:"lat" validate:"gte=-90,lte=90"`
	Lng         float64              `json:"lng" validate:"gte=-180,lte=180"`
	Images      []string             `json:"images"`
	Address     entity.PostalAddress `json:"address"`
	Status      entity.PropertyStatus `json:"status"`
	YearBuilt   int                  `json:"year_built"`
	Features    []string             `json:"features"`
}

// UpdatePropertyInput represents the input for updating an existing property
type UpdatePropertyInput struct {
	Title       *string               `json:"title,omitempty"`
	Type        *entity.PropertyType  `json:"type,omitempty"`
	Price       *float64              `json:"price,omitempty" validate:"omitempty,gte=0"`
	Description *string               `json:"description,omitempty"`
	Sqft        *float64              `json:"sqft,omitempty" validate:"omitempty,gte=0"`
	Bedrooms    *int                  `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms   *float64              `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	Lat         *float64              `json:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lng         *float64              `json:"lng,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Images      []string              `json:"images,omitempty"`
	Address     *entity.PostalAddress `json:"address,omitempty"`
	Status      *entity.PropertyStatus `json:"status,omitempty"`
	YearBuilt   *int                  `json:"year_built,omitempty"`
	Features    []string              `json:"features,omitempty"`
}

// PropertyUsecase defines the interface for property listing use cases
type PropertyUsecase interface {
	CreateProperty(ctx context.Context, input *CreatePropertyInput) (*entity.Property, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	ListProperties(ctx context.Context) ([]*entity.Property, error)
	ListPropertiesByType(ctx context.Context, propertyType entity.PropertyType) ([]*entity.Property, error)
	ListPropertiesInRadius(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]*entity.Property, error)
	UpdateProperty(ctx context.Context, id uuid.UUID, input *UpdatePropertyInput) (*entity.Property, error)
	DeleteProperty(ctx context.Context, id uuid.UUID) error
}
