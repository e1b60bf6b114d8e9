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

type poiService struct {
	poiRepo repository.POIRepository
}

// NewPOIService creates a new POI service instance
func NewPOIService(poiRepo repository.POIRepository) usecase.POIUsecase {
	return &poiService{
		poiRepo: poiRepo,
	}
}

// CreatePOI validates the input and persists a new curated POI
func (s *poiService) CreatePOI(ctx context.Context, input *usecase.CreatePOIInput) (*entity.POI, error) {
	if !input.Type.Valid() {
		return nil, domainerrors.ErrInvalidPOIType
	}

	coordinates := entity.Coordinate{Lat: input.Lat, Lng: input.Lng}
	if !coordinates.Valid() {
		return nil, domainerrors.ErrCoordinateOutOfRange
	}

	poi := &entity.POI{
		Name:        input.Name,
		Type:        input.Type,
		Coordinates: coordinates,
		Address:     input.Address,
		Description: input.Description,
		ContactInfo: input.ContactInfo,
		Amenities:   input.Amenities,
	}

	if err := s.poiRepo.Create(ctx, poi); err != nil {
		return nil, errors.Wrap(err, "failed to create poi")
	}

	return poi, nil
}

// GetPOI retrieves one POI by ID
func (s *poiService) GetPOI(ctx context.Context, id uuid.UUID) (*entity.POI, error) {
	poi, err := s.poiRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPOINotFound) {
			return nil, domainerrors.ErrPOINotFound
		}

		return nil, errors.Wrap(err, "failed to find poi")
	}

	return poi, nil
}

// ListPOIs retrieves all POIs
func (s *poiService) ListPOIs(ctx context.Context) ([]*entity.POI, error) {
	pois, err := s.poiRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pois")
	}

	return pois, nil
}

// ListPOIsByType retrieves all POIs of one type
func (s *poiService) ListPOIsByType(ctx context.Context, poiType entity.POIType) ([]*entity.POI, error) {
	if !poiType.Valid() {
		return nil, domainerrors.ErrInvalidPOIType
	}

	pois, err := s.poiRepo.FindByType(ctx, poiType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pois by type")
	}

	return pois, nil
}

// ListPOIsInRadius retrieves POIs within radiusKm of center
func (s *poiService) ListPOIsInRadius(ctx context.Context, center entity.Coordinate, radiusKm float64, poiType *entity.POIType) ([]*entity.POI, error) {
	if !center.Valid() {
		return nil, domainerrors.ErrCoordinateOutOfRange
	}
	if radiusKm <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("radius must be positive")
	}
	if poiType != nil && !poiType.Valid() {
		return nil, domainerrors.ErrInvalidPOIType
	}

	pois, err := s.poiRepo.FindInRadius(ctx, center, radiusKm, poiType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pois in radius")
	}

	return pois, nil
}

// UpdatePOI applies a partial update to an existing POI
func (s *poiService) UpdatePOI(ctx context.Context, id uuid.UUID, input *usecase.UpdatePOIInput) (*entity.POI, error) {
	poi, err := s.poiRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPOINotFound) {
			return nil, domainerrors.ErrPOINotFound
		}

		return nil, errors.Wrap(err, "failed to find poi")
	}

	if err := s.applyPOIUpdates(poi, input); err != nil {
		return nil, err
	}

	if err := s.poiRepo.Update(ctx, poi); err != nil {
		if errors.Is(err, repository.ErrPOINotFound) {
			return nil, domainerrors.ErrPOINotFound
		}

		return nil, errors.Wrap(err, "failed to update poi")
	}

	return poi, nil
}

// applyPOIUpdates applies the update input to a POI
func (s *poiService) applyPOIUpdates(poi *entity.POI, input *usecase.UpdatePOIInput) error {
	if input.Type != nil {
		if !input.Type.Valid() {
			return domainerrors.ErrInvalidPOIType
		}
		poi.Type = *input.Type
	}
	if input.Name != nil {
		poi.Name = *input.Name
	}
	if input.Lat != nil {
		poi.Coordinates.Lat = *input.Lat
	}
	if input.Lng != nil {
		poi.Coordinates.Lng = *input.Lng
	}
	if !poi.Coordinates.Valid() {
		return domainerrors.ErrCoordinateOutOfRange
	}
	if input.Address != nil {
		poi.Address = *input.Address
	}
	if input.Description != nil {
		poi.Description = *input.Description
	}
	if input.ContactInfo != nil {
		poi.ContactInfo = *input.ContactInfo
	}
	if input.Amenities != nil {
		poi.Amenities = input.Amenities
	}

	return nil
}

// DeletePOI removes a POI by ID
func (s *poiService) DeletePOI(ctx context.Context, id uuid.UUID) error {
	if err := s.poiRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPOINotFound) {
			return domainerrors.ErrPOINotFound
		}

		return errors.Wrap(err, "failed to delete poi")
	}

	return nil
}
