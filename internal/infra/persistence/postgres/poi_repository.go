package postgres

import (
	"context"

	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	"scout/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// poiRepository implements the repository.POIRepository interface.
type poiRepository struct {
	db *gorm.DB
}

// NewPOIRepository is the constructor for poiRepository.
func NewPOIRepository(db *gorm.DB) repository.POIRepository {
	return &poiRepository{
		db: db,
	}
}

// Create persists a new curated POI.
func (repo *poiRepository) Create(ctx context.Context, poi *entity.POI) error {
	poiM := fromPOIDomain(poi)

	if err := repo.db.WithContext(ctx).Create(poiM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateRecord.WithDetails(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create poi")
	}

	// Update the entity with generated values
	poi.ID = poiM.ID
	poi.CreatedAt = poiM.CreatedAt
	poi.UpdatedAt = poiM.UpdatedAt

	return nil
}

// FindByID retrieves a POI by its unique ID.
func (repo *poiRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.POI, error) {
	var poiM model.POIModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&poiM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPOINotFound
		}

		return nil, errors.Wrap(err, "failed to find poi by ID")
	}

	return toPOIDomain(&poiM), nil
}

// FindAll retrieves every stored POI, newest first.
func (repo *poiRepository) FindAll(ctx context.Context) ([]*entity.POI, error) {
	var poiModels []*model.POIModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&poiModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pois")
	}

	return toPOIDomainSlice(poiModels), nil
}

// FindByType retrieves all POIs of the given kind.
func (repo *poiRepository) FindByType(ctx context.Context, poiType entity.POIType) ([]*entity.POI, error) {
	var poiModels []*model.POIModel

	if err := repo.db.WithContext(ctx).
		Where("type = ?", string(poiType)).
		Order("created_at DESC").
		Find(&poiModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pois by type")
	}

	return toPOIDomainSlice(poiModels), nil
}

// FindInRadius retrieves POIs within radiusKm of center, nearest first.
// A nil poiType matches every type.
func (repo *poiRepository) FindInRadius(ctx context.Context, center entity.Coordinate, radiusKm float64, poiType *entity.POIType) ([]*entity.POI, error) {
	var poiModels []*model.POIModel

	query := repo.db.WithContext(ctx).
		Where(haversineKmExpr+" <= ?", center.Lat, center.Lng, center.Lat, radiusKm)
	if poiType != nil {
		query = query.Where("type = ?", string(*poiType))
	}

	if err := query.
		Order(gorm.Expr(haversineKmExpr, center.Lat, center.Lng, center.Lat)).
		Find(&poiModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pois in radius")
	}

	return toPOIDomainSlice(poiModels), nil
}

// Update saves an existing POI record.
func (repo *poiRepository) Update(ctx context.Context, poi *entity.POI) error {
	poiM := fromPOIDomain(poi)

	result := updateAllColumns(repo.db.WithContext(ctx), &model.POIModel{}, poiM.ID, poiM)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) || isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails(result.Error.Error())
		}
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateRecord.WithDetails(result.Error.Error())
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update poi")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPOINotFound
	}

	return nil
}

// Delete removes a POI by its ID.
func (repo *poiRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.POIModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete poi")
	}

	// If no rows were affected, the POI was not found.
	if result.RowsAffected == 0 {
		return repository.ErrPOINotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPOIDomain converts a GORM POIModel to a domain POI entity.
func toPOIDomain(data *model.POIModel) *entity.POI {
	if data == nil {
		return nil
	}

	return &entity.POI{
		ID:          data.ID,
		Name:        data.Name,
		Type:        entity.POIType(data.Type),
		Coordinates: entity.Coordinate{Lat: data.Lat, Lng: data.Lng},
		Address: entity.PostalAddress{
			Street:  data.Street,
			City:    data.City,
			State:   data.State,
			Zip:     data.Zip,
			Country: data.Country,
		},
		Description: data.Description,
		ContactInfo: entity.ContactInfo{
			Phone:   data.Phone,
			Website: data.Website,
			Email:   data.Email,
		},
		Amenities: data.Amenities,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toPOIDomainSlice(models []*model.POIModel) []*entity.POI {
	pois := make([]*entity.POI, 0, len(models))
	for _, poiM := range models {
		pois = append(pois, toPOIDomain(poiM))
	}

	return pois
}

// fromPOIDomain converts a domain POI entity to a GORM POIModel.
func fromPOIDomain(data *entity.POI) *model.POIModel {
	if data == nil {
		return nil
	}

	return &model.POIModel{
		ID:          data.ID,
		Name:        data.Name,
		Type:        string(data.Type),
		Lat:         data.Coordinates.Lat,
		Lng:         data.Coordinates.Lng,
		Street:      data.Address.Street,
		City:        data.Address.City,
		State:       data.Address.State,
		Zip:         data.Address.Zip,
		Country:     data.Address.Country,
		Description: data.Description,
		Phone:       data.ContactInfo.Phone,
		Website:     data.ContactInfo.Website,
		Email:       data.ContactInfo.Email,
		Amenities:   data.Amenities,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
