package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"scout/internal/delivery/http/response"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PropertyHandlerParams holds dependencies for PropertyHandler, injected by Fx.
type PropertyHandlerParams struct {
	fx.In

	PropertyUC usecase.PropertyUsecase
	Logger     *slog.Logger
}

// PropertyHandler holds dependencies for property-related handlers
type PropertyHandler struct {
	propertyUC usecase.PropertyUsecase
	logger     *slog.Logger
}

// NewPropertyHandler is the constructor for PropertyHandler
func NewPropertyHandler(params PropertyHandlerParams) *PropertyHandler {
	return &PropertyHandler{
		propertyUC: params.PropertyUC,
		logger:     params.Logger,
	}
}

// Create handles creating a new property listing
func (h *PropertyHandler) Create(c echo.Context) error {
	var req usecase.CreatePropertyInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	property, err := h.propertyUC.CreateProperty(c.Request().Context(), &req)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusCreated, property, "Property created successfully")
}

// Get handles retrieving one property by ID
func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	property, err := h.propertyUC.GetProperty(c.Request().Context(), id)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, property, "Property retrieved successfully")
}

// List handles retrieving properties, optionally filtered by type or by a
// radius query (lat, lng and radius_km together).
func (h *PropertyHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if c.QueryParam("lat") != "" || c.QueryParam("lng") != "" || c.QueryParam("radius_km") != "" {
		center, radiusKm, err := parseRadiusQuery(c)
		if err != nil {
			return err
		}

		properties, err := h.propertyUC.ListPropertiesInRadius(ctx, center, radiusKm)
		if err != nil {
			return handleAppError(err)
		}

		return response.List(c, http.StatusOK, properties, len(properties), "Properties retrieved successfully")
	}

	if propertyType := c.QueryParam("type"); propertyType != "" {
		properties, err := h.propertyUC.ListPropertiesByType(ctx, entity.PropertyType(propertyType))
		if err != nil {
			return handleAppError(err)
		}

		return response.List(c, http.StatusOK, properties, len(properties), "Properties retrieved successfully")
	}

	properties, err := h.propertyUC.ListProperties(ctx)
	if err != nil {
		return handleAppError(err)
	}

	return response.List(c, http.StatusOK, properties, len(properties), "Properties retrieved successfully")
}

// ListByTypePath handles the path form of the type filter,
// e.g. GET /api/properties/type/rent.
func (h *PropertyHandler) ListByTypePath(c echo.Context) error {
	properties, err := h.propertyUC.ListPropertiesByType(c.Request().Context(), entity.PropertyType(c.Param("type")))
	if err != nil {
		return handleAppError(err)
	}

	return response.List(c, http.StatusOK, properties, len(properties), "Properties retrieved successfully")
}

// ListInRadiusPath handles the path form of the radius filter,
// e.g. GET /api/properties/radius/46.948/7.447/5.
func (h *PropertyHandler) ListInRadiusPath(c echo.Context) error {
	center, radiusKm, err := parseRadiusPath(c)
	if err != nil {
		return err
	}

	properties, err := h.propertyUC.ListPropertiesInRadius(c.Request().Context(), center, radiusKm)
	if err != nil {
		return handleAppError(err)
	}

	return response.List(c, http.StatusOK, properties, len(properties), "Properties retrieved successfully")
}

// Update handles partially updating a property
func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	var req usecase.UpdatePropertyInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid property input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	property, err := h.propertyUC.UpdateProperty(c.Request().Context(), id, &req)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, property, "Property updated successfully")
}

// Delete handles removing a property
func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	if err := h.propertyUC.DeleteProperty(c.Request().Context(), id); err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Property deleted successfully"}, "Property deleted successfully")
}

// parseRadiusQuery reads lat, lng and radius_km query parameters.
func parseRadiusQuery(c echo.Context) (entity.Coordinate, float64, error) {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	radiusKm, radiusErr := strconv.ParseFloat(c.QueryParam("radius_km"), 64)
	if latErr != nil || lngErr != nil || radiusErr != nil {
		return entity.Coordinate{}, 0, response.BadRequest(c, "INVALID_QUERY", "lat, lng and radius_km must all be valid numbers")
	}

	return entity.Coordinate{Lat: lat, Lng: lng}, radiusKm, nil
}

// parseRadiusPath reads lat, lng and radius path parameters.
func parseRadiusPath(c echo.Context) (entity.Coordinate, float64, error) {
	lat, latErr := strconv.ParseFloat(c.Param("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Param("lng"), 64)
	radiusKm, radiusErr := strconv.ParseFloat(c.Param("radius"), 64)
	if latErr != nil || lngErr != nil || radiusErr != nil {
		return entity.Coordinate{}, 0, response.BadRequest(c, "INVALID_QUERY", "lat, lng and radius must all be valid numbers")
	}

	return entity.Coordinate{Lat: lat, Lng: lng}, radiusKm, nil
}

// handleAppError lets AppErrors reach the error middleware with their HTTP
// mapping intact and annotates everything else with a stack.
func handleAppError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return errors.WithStack(err)
}
