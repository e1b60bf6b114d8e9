package usecase

import (
	"context"

	"scout/internal/domain/entity"

	"github.com/google/uuid"
)

// SetViewInput represents the input for moving the map camera
type SetViewInput struct {
	Lat  float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng  float64 `json:"lng" validate:"gte=-180,lte=180"`
	Zoom float64 `json:"zoom" validate:"gte=1,lte=20"`
}

// MapSessionUsecase defines the interface for the shared map view state
type MapSessionUsecase interface {
	// View returns a snapshot of the current view state.
	View() entity.ViewState
	// SetView moves the camera to a coordinate and numeric zoom; the named
	// zoom is recomputed as the nearest ladder level.
	SetView(ctx context.Context, input *SetViewInput) entity.ViewState
	// SetNamedZoom sets the zoom by named level, keeping the center.
	SetNamedZoom(ctx context.Context, level entity.NamedZoom) (entity.ViewState, error)
	// SelectProperty centers the map on a stored property at street zoom and
	// marks it selected.
	SelectProperty(ctx context.Context, id uuid.UUID) (entity.ViewState, error)
	// ClearSelection drops the current selection without moving the camera.
	ClearSelection(ctx context.Context) entity.ViewState
}
