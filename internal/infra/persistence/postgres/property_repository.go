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

// haversineKmExpr computes the great-circle distance in kilometers between a
// row's lat/lng columns and the bound (lat, lng, lat) arguments. least()
// guards acos against floating-point drift just past 1.0.
const haversineKmExpr = "(6371 * acos(least(1.0, " +
	"cos(radians(?)) * cos(radians(lat)) * cos(radians(lng) - radians(?)) + " +
	"sin(radians(?)) * sin(radians(lat)))))"

// propertyRepository implements the repository.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// Create persists a new property listing.
func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateRecord.WithDetails(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	// Update the entity with generated values
	property.ID = propertyM.ID
	property.CreatedAt = propertyM.CreatedAt
	property.UpdatedAt = propertyM.UpdatedAt

	return nil
}

// FindByID retrieves a property by its unique ID.
func (repo *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var propertyM model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&propertyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by ID")
	}

	return toPropertyDomain(&propertyM), nil
}

// FindAll retrieves every stored property, newest first.
func (repo *propertyRepository) FindAll(ctx context.Context) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find properties")
	}

	return toPropertyDomainSlice(propertyModels), nil
}

// FindByType retrieves all properties of the given listing type.
func (repo *propertyRepository) FindByType(ctx context.Context, propertyType entity.PropertyType) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Where("type = ?", string(propertyType)).
		Order("created_at DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find properties by type")
	}

	return toPropertyDomainSlice(propertyModels), nil
}

// FindInRadius retrieves all properties within radiusKm of center, nearest first.
func (repo *propertyRepository) FindInRadius(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Where(haversineKmExpr+" <= ?", center.Lat, center.Lng, center.Lat, radiusKm).
		Order(gorm.Expr(haversineKmExpr, center.Lat, center.Lng, center.Lat)).
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find properties in radius")
	}

	return toPropertyDomainSlice(propertyModels), nil
}

// Update saves an existing property record.
func (repo *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	result := updateAllColumns(repo.db.WithContext(ctx), &model.PropertyModel{}, propertyM.ID, propertyM)

	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) || isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails(result.Error.Error())
		}
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateRecord.WithDetails(result.Error.Error())
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update property")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// Delete removes a property by its ID.
func (repo *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PropertyModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete property")
	}

	// If no rows were affected, the property was not found.
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPropertyDomain converts a GORM PropertyModel to a domain Property entity.
func toPropertyDomain(data *model.PropertyModel) *entity.Property {
	if data == nil {
		return nil
	}

	return &entity.Property{
		ID:          data.ID,
		Title:       data.Title,
		Type:        entity.PropertyType(data.Type),
		Price:       data.Price,
		Description: data.Description,
		Sqft:        data.Sqft,
		Bedrooms:    data.Bedrooms,
		Bathrooms:   data.Bathrooms,
		Coordinates: entity.Coordinate{Lat: data.Lat, Lng: data.Lng},
		Images:      data.Images,
		Address: entity.PostalAddress{
			Street:  data.Street,
			City:    data.City,
			State:   data.State,
			Zip:     data.Zip,
			Country: data.Country,
		},
		Status:    entity.PropertyStatus(data.Status),
		YearBuilt: data.YearBuilt,
		Features:  data.Features,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toPropertyDomainSlice(models []*model.PropertyModel) []*entity.Property {
	properties := make([]*entity.Property, 0, len(models))
	for _, propertyM := range models {
		properties = append(properties, toPropertyDomain(propertyM))
	}

	return properties
}

// fromPropertyDomain converts a domain Property entity to a GORM PropertyModel.
func fromPropertyDomain(data *entity.Property) *model.PropertyModel {
	if data == nil {
		return nil
	}

	return &model.PropertyModel{
		ID:          data.ID,
		Title:       data.Title,
		Type:        string(data.Type),
		Price:       data.Price,
		Description: data.Description,
		Sqft:        data.Sqft,
		Bedrooms:    data.Bedrooms,
		Bathrooms:   data.Bathrooms,
		Lat:         data.Coordinates.Lat,
		Lng:         data.Coordinates.Lng,
		Images:      data.Images,
		Street:      data.Address.Street,
		City:        data.Address.City,
		State:       data.Address.State,
		Zip:         data.Address.Zip,
		Country:     data.Address.Country,
		Status:      string(data.Status),
		YearBuilt:   data.YearBuilt,
		Features:    data.Features,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
