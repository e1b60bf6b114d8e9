package handler

import (
	"log/slog"
	"net/http"

	"scout/internal/delivery/http/response"
	"scout/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DiscoveryHandlerParams holds dependencies for DiscoveryHandler, injected by Fx.
type DiscoveryHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	Logger      *slog.Logger
}

// DiscoveryHandler holds dependencies for nearby-places discovery handlers
type DiscoveryHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewDiscoveryHandler is the constructor for DiscoveryHandler
func NewDiscoveryHandler(params DiscoveryHandlerParams) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUC: params.DiscoveryUC,
		logger:      params.Logger,
	}
}

// Discover handles one nearby-places discovery round
func (h *DiscoveryHandler) Discover(c echo.Context) error {
	var req usecase.DiscoverInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discovery input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	collection, err := h.discoveryUC.Discover(c.Request().Context(), &req)
	if err != nil {
		return handleAppError(err)
	}

	return response.List(c, http.StatusOK, collection, collection.Count(), "Places discovered successfully")
}

// Latest returns the snapshot of the most recent completed discovery round.
func (h *DiscoveryHandler) Latest(c echo.Context) error {
	collection := h.discoveryUC.Latest()

	return response.List(c, http.StatusOK, collection, collection.Count(), "Latest discovery snapshot retrieved successfully")
}
