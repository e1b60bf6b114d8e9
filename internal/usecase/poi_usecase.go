package usecase

import (
	"context"

	"scout/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePOIInput represents the input for creating a new curated POI
type CreatePOIInput struct {
	Name        string               `json:"name" validate:"required"`
	Type        entity.POIType       `json:"type" validate:"required"`
	Lat         float64              `json:"lat" validate:"gte=-90,lte=90"`
	Lng         float64              `json:"lng" validate:"gte=-180,lte=180"`
	Address     entity.PostalAddress `json:"address"`
	Description string               `json:"description"`
	ContactInfo entity.ContactInfo   `json:"contact_info"`
	Amenities   []string             `json:"amenities"`
}

// UpdatePOIInput represents the input for updating an existing POI
type UpdatePOIInput struct {
	Name        *string               `json:"name,omitempty"`
	Type        *entity.POIType       `json:"type,omitempty"`
	Lat         *float64              `json:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lng         *float64              `json:"lng,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Address     *entity.PostalAddress `json:"address,omitempty"`
	Description *string               `json:"description,omitempty"`
	ContactInfo *entity.ContactInfo   `json:"contact_info,omitempty"`
	Amenities   []string              `json:"amenities,omitempty"`
}

// POIUsecase defines the interface for curated point-of-interest use cases
type POIUsecase interface {
	CreatePOI(ctx context.Context, input *CreatePOIInput) (*entity.POI, error)
	GetPOI(ctx context.Context, id uuid.UUID) (*entity.POI, error)
	ListPOIs(ctx context.Context) ([]*entity.POI, error)
	ListPOIsByType(ctx context.Context, poiType entity.POIType) ([]*entity.POI, error)
	// ListPOIsInRadius returns POIs within radiusKm of center; a nil poiType
	// matches every type.
	ListPOIsInRadius(ctx context.Context, center entity.Coordinate, radiusKm float64, poiType *entity.POIType) ([]*entity.POI, error)
	UpdatePOI(ctx context.Context, id uuid.UUID, input *UpdatePOIInput) (*entity.POI, error)
	DeletePOI(ctx context.Context, id uuid.UUID) error
}
