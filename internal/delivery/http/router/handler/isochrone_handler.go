package handler

import (
	"log/slog"
	"net/http"

	"scout/internal/delivery/http/response"
	"scout/internal/domain/entity"
	"scout/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IsochroneHandlerParams holds dependencies for IsochroneHandler, injected by Fx.
type IsochroneHandlerParams struct {
	fx.In

	IsochroneUC usecase.IsochroneUsecase
	Logger      *slog.Logger
}

// IsochroneHandler holds dependencies for isochrone handlers
type IsochroneHandler struct {
	isochroneUC usecase.IsochroneUsecase
	logger      *slog.Logger
}

// NewIsochroneHandler is the constructor for IsochroneHandler
func NewIsochroneHandler(params IsochroneHandlerParams) *IsochroneHandler {
	return &IsochroneHandler{
		isochroneUC: params.IsochroneUC,
		logger:      params.Logger,
	}
}

// IsochroneRequest represents the request body for a single isochrone
type IsochroneRequest struct {
	Lat          float64            `json:"lat" validate:"gte=-90,lte=90"`
	Lng          float64            `json:"lng" validate:"gte=-180,lte=180"`
	Profile      entity.Profile     `json:"profile" validate:"required"`
	ContourUnit  entity.ContourUnit `json:"contour_unit" validate:"required"`
	ContourValue int                `json:"contour_value" validate:"required,gt=0"`
}

// BatchIsochroneRequest represents the request body for a batched isochrone
// round over many places.
type BatchIsochroneRequest struct {
	Places       []entity.Place     `json:"places" validate:"required,min=1"`
	Profile      entity.Profile     `json:"profile" validate:"required"`
	ContourUnit  entity.ContourUnit `json:"contour_unit" validate:"required"`
	ContourValue int                `json:"contour_value" validate:"required,gt=0"`
}

// FetchOne handles computing the isochrone for one coordinate
func (h *IsochroneHandler) FetchOne(c echo.Context) error {
	var req IsochroneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid isochrone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	isochrone, err := h.isochroneUC.FetchOne(
		c.Request().Context(),
		entity.Coordinate{Lat: req.Lat, Lng: req.Lng},
		entity.IsochroneParams{
			Profile:      req.Profile,
			ContourUnit:  req.ContourUnit,
			ContourValue: req.ContourValue,
		},
	)
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, isochrone, "Isochrone computed successfully")
}

// FetchBatch handles computing isochrones for many places. Batches are paced
// internally; progress is logged per batch and the full set returned once
// complete.
func (h *IsochroneHandler) FetchBatch(c echo.Context) error {
	var req BatchIsochroneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid isochrone input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	isochrones, err := h.isochroneUC.FetchForPlaces(
		ctx,
		req.Places,
		entity.IsochroneParams{
			Profile:      req.Profile,
			ContourUnit:  req.ContourUnit,
			ContourValue: req.ContourValue,
		},
		func(snapshot []entity.Isochrone) {
			h.logger.DebugContext(ctx, "isochrone batch completed",
				slog.Int("computed", len(snapshot)),
				slog.Int("requested", len(req.Places)),
			)
		},
	)
	if err != nil {
		return handleAppError(err)
	}

	return response.List(c, http.StatusOK, isochrones, len(isochrones), "Isochrones computed successfully")
}
