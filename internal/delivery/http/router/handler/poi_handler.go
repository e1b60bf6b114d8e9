package handler

import (
	"log/slog"
	"net/http"

	"scout/internal/delivery/http/response"
	"scout/internal/domain/entity"
	"scout/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// POIHandlerParams holds dependencies for POIHandler, injected by Fx.
type POIHandlerParams struct {
	fx.In

	POIUC  usecase.POIUsecase
	Logger *slog.Logger
}

// POIHandler holds dependencies for POI-related handlers
type POIHandler struct {
	poiUC  usecase.POIUsecase
	logger *slog.Logger
}

// NewPOIHandler is the constructor for POIHandler
func NewPOIHandler(params POIHandlerParams) *POIHandler {
	return &POIHandler{
		poiUC:  params.POIUC,
		logger: params.Logger,
	}
}

// Create handles creating a new curated POI
func (h *POIHandler) Create(c echo.Context) error {
	var req usecase.CreatePOIInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid POI input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	poi, err := h.poiUC.CreatePOI(c.Request().Context(), &req)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusCreated, poi, "POI created successfully")
}

// Get handles retrieving one POI by ID
func (h *POIHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid POI ID")
	}

	poi, err := h.poiUC.GetPOI(c.Request().Context(), id)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, poi, "POI retrieved successfully")
}

// List handles retrieving POIs, optionally filtered by type or by a radius
// query; the radius form accepts an additional type filter.
func (h *POIHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if c.QueryParam("lat") != "" || c.QueryParam("lng") != "" || c.QueryParam("radius_km") != "" {
		center, radiusKm, err := parseRadiusQuery(c)
		if err != nil {
			return err
		}

		var typeFilter *entity.POIType
		if poiType := c.QueryParam("type"); poiType != "" {
			t := entity.POIType(poiType)
			typeFilter = &t
		}

		pois, err := h.poiUC.ListPOIsInRadius(ctx, center, radiusKm, typeFilter)
		if err != nil {
			return handleAppError(err)
		}

		return response.List(c, http.StatusOK, pois, len(pois), "POIs retrieved successfully")
	}

	if poiType := c.QueryParam("type"); poiType != "" {
		pois, err := h.poiUC.ListPOIsByType(ctx, entity.POIType(poiType))
		if err != nil {
			return handleAppError(err)
		}

		return response.List(c, http.StatusOK, pois, len(pois), "POIs retrieved successfully")
	}

	pois, err := h.poiUC.ListPOIs(ctx)
	if err != nil {
		return handleAppError(err)
	}

	return response.List(c, http.StatusOK, pois, len(pois), "POIs retrieved successfully")
}

// ListByTypePath handles the path form of the type filter,
// e.g. GET /api/poi/type/groceries.
func (h *POIHandler) ListByTypePath(c echo.Context) error {
	pois, err := h.poiUC.ListPOIsByType(c.Request().Context(), entity.POIType(c.Param("type")))
	if err != nil {
		return handleAppError(err)
	}

	return response.List(c, http.StatusOK, pois, len(pois), "POIs retrieved successfully")
}

// ListInRadiusPath handles the path form of the radius filter, with or
// without the trailing type segment,
// e.g. GET /api/poi/radius/46.948/7.447/5/type/transport.
func (h *POIHandler) ListInRadiusPath(c echo.Context) error {
	center, radiusKm, err := parseRadiusPath(c)
	if err != nil {
		return err
	}

	var typeFilter *entity.POIType
	if poiType := c.Param("type"); poiType != "" {
		t := entity.POIType(poiType)
		typeFilter = &t
	}

	pois, err := h.poiUC.ListPOIsInRadius(c.Request().Context(), center, radiusKm, typeFilter)
	if err != nil {
		return handleAppError(err)
	}

	return response.List(c, http.StatusOK, pois, len(pois), "POIs retrieved successfully")
}

// Update handles partially updating a POI
func (h *POIHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid POI ID")
	}

	var req usecase.UpdatePOIInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid POI input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	poi, err := h.poiUC.UpdatePOI(c.Request().Context(), id, &req)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, poi, "POI updated successfully")
}

// Delete handles removing a POI
func (h *POIHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid POI ID")
	}

	if err := h.poiUC.DeletePOI(c.Request().Context(), id); err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "POI deleted successfully"}, "POI deleted successfully")
}
