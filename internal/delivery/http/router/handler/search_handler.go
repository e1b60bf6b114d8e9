package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"scout/internal/delivery/http/response"
	"scout/internal/domain/entity"
	"scout/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler holds dependencies for search handlers
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// Search handles free-text location search. Short queries come back as an
// empty hit list, not an error.
func (h *SearchHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")

	hits, err := h.searchUC.Search(c.Request().Context(), query)
	if err != nil {
		return handleAppError(err)
	}

	return response.List(c, http.StatusOK, hits, len(hits), "Search completed successfully")
}

// reverseResult is the payload for a reverse-geocoding lookup.
type reverseResult struct {
	Label string `json:"label"`
}

// Reverse handles resolving a coordinate to a location label. An unavailable
// provider or a coordinate with no match both come back as an empty label.
func (h *SearchHandler) Reverse(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		return response.BadRequest(c, "INVALID_QUERY", "lat and lng must be valid numbers")
	}

	label, err := h.searchUC.Reverse(c.Request().Context(), entity.Coordinate{Lat: lat, Lng: lng})
	if err != nil {
		return handleAppError(err)
	}

	return response.Success(c, http.StatusOK, reverseResult{Label: label}, "Reverse geocoding completed successfully")
}
