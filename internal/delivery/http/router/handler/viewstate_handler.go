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

// ViewStateHandlerParams holds dependencies for ViewStateHandler, injected by Fx.
type ViewStateHandlerParams struct {
	fx.In

	MapSessionUC usecase.MapSessionUsecase
	Logger       *slog.Logger
}

// ViewStateHandler holds dependencies for map view-state handlers
type ViewStateHandler struct {
	mapSessionUC usecase.MapSessionUsecase
	logger       *slog.Logger
}

// NewViewStateHandler is the constructor for ViewStateHandler
func NewViewStateHandler(params ViewStateHandlerParams) *ViewStateHandler {
	return &ViewStateHandler{
		mapSessionUC: params.MapSessionUC,
		logger:       params.Logger,
	}
}

// NamedZoomRequest represents the request body for setting a named zoom
type NamedZoomRequest struct {
	Level entity.NamedZoom `json:"level" validate:"required"`
}

// Get returns the current view state
func (h *ViewStateHandler) Get(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.mapSessionUC.View(), "View state retrieved successfully")
}

// Set moves the camera to a coordinate and numeric zoom
func (h *ViewStateHandler) Set(c echo.Context) error {
	var req usecase.SetViewInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid view input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view := h.mapSessionUC.SetView(c.Request().Context(), &req)

	return response.Success(c, http.StatusOK, view, "View state updated successfully")
}

// SetNamedZoom sets the zoom by named ladder level
func (h *ViewStateHandler) SetNamedZoom(c echo.Context) error {
	var req NamedZoomRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid zoom input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	view, err := h.mapSessionUC.SetNamedZoom(c.Request().Context(), req.Level)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, view, "Zoom level updated successfully")
}

// SelectProperty centers the view on a stored property and selects it
func (h *ViewStateHandler) SelectProperty(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid property ID")
	}

	view, err := h.mapSessionUC.SelectProperty(c.Request().Context(), id)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, view, "Property selected successfully")
}

// ClearSelection drops the current selection
func (h *ViewStateHandler) ClearSelection(c echo.Context) error {
	view := h.mapSessionUC.ClearSelection(c.Request().Context())

	return response.Success(c, http.StatusOK, view, "Selection cleared successfully")
}
