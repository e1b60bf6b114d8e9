// Package impl contains the concrete use-case implementations.
package impl

import (
	"context"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	"scout/internal/errors"
	"scout/internal/usecase"

	"github.com/google/uuid"
)

type propertyService struct {
	propertyRepo repository.PropertyRepository
}

// NewPropertyService creates a new property service instance
func NewPropertyService(propertyRepo repository.PropertyRepository) usecase.PropertyUsecase {
	return &propertyService{
		propertyRepo: propertyRepo,
	}
}

// CreateProperty validates the input and persists a new listing
func (s *propertyService) CreateProperty(ctx context.Context, input *usecase.CreatePropertyInput) (*entity.Property, error) {
	if !input.Type.Valid() {
		return nil, domainerrors.ErrInvalidPropertyType
	}

	coordinates := entity.Coordinate{Lat: input.Lat, Lng: input.Lng}
	if !coordinates.Valid() {
		return nil, domainerrors.ErrCoordinateOutOfRange
	}

	status := input.Status
	if status == "" {
		status = entity.StatusAvailable
	}
	if !status.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown property status: " + string(status))
	}

	property := &entity.Property{
		Title:       input.Title,
		Type:        input.Type,
		Price:       input.Price,
		Description: input.Description,
		Sqft:        input.Sqft,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Coordinates: coordinates,
		Images:      input.Images,
		Address:     input.Address,
		Status:      status,
		YearBuilt:   input.YearBuilt,
		Features:    input.Features,
	}

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, errors.Wrap(err, "failed to create property")
	}

	return property, nil
}

// GetProperty retrieves one listing by ID
func (s *propertyService) GetProperty(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	return property, nil
}

// ListProperties retrieves all listings
func (s *propertyService) ListProperties(ctx context.Context) ([]*entity.Property, error) {
	properties, err := s.propertyRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	return properties, nil
}

// ListPropertiesByType retrieves all listings of one type
func (s *propertyService) ListPropertiesByType(ctx context.Context, propertyType entity.PropertyType) ([]*entity.Property, error) {
	if !propertyType.Valid() {
		return nil, domainerrors.ErrInvalidPropertyType
	}

	properties, err := s.propertyRepo.FindByType(ctx, propertyType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties by type")
	}

	return properties, nil
}

// ListPropertiesInRadius retrieves listings within radiusKm of center
func (s *propertyService) ListPropertiesInRadius(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]*entity.Property, error) {
	if !center.Valid() {
		return nil, domainerrors.ErrCoordinateOutOfRange
	}
	if radiusKm <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be positive")
	}

	properties, err := s.propertyRepo.FindInRadius(ctx, center, radiusKm)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list properties in radius")
	}

	return properties, nil
}

// UpdateProperty applies a partial update to an existing listing
func (s *propertyService) UpdateProperty(ctx context.Context, id uuid.UUID, input *usecase.UpdatePropertyInput) (*entity.Property, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	if err := s.applyPropertyUpdates(property, input); err != nil {
		return nil, err
	}

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to update property")
	}

	return property, nil
}

// applyPropertyUpdates applies the update input to a property
func (s *propertyService) applyPropertyUpdates(property *entity.Property, input *usecase.UpdatePropertyInput) error {
	if input.Type != nil {
		if !input.Type.Valid() {
			return domainerrors.ErrInvalidPropertyType
		}
		property.Type = *input.Type
	}
	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Price != nil {
		property.Price = *input.Price
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Sqft != nil {
		property.Sqft = *input.Sqft
	}
	if input.Bedrooms != nil {
		property.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		property.Bathrooms = *input.Bathrooms
	}
	if input.Lat != nil {
		property.Coordinates.Lat = *input.Lat
	}
	if input.Lng != nil {
		property.Coordinates.Lng = *input.Lng
	}
	if !property.Coordinates.Valid() {
		return domainerrors.ErrCoordinateOutOfRange
	}
	if input.Images != nil {
		property.Images = input.Images
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return domainerrors.ErrValidationFailed.WithDetails("unknown property status: " + string(*input.Status))
		}
		property.Status = *input.Status
	}
	if input.YearBuilt != nil {
		property.YearBuilt = *input.YearBuilt
	}
	if input.Features != nil {
		property.Features = input.Features
	}

	return nil
}

// DeleteProperty removes a listing by ID
func (s *propertyService) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	if err := s.propertyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return domainerrors.ErrPropertyNotFound
		}

		return errors.Wrap(err, "failed to delete property")
	}

	return nil
}
