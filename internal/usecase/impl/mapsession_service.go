package impl

import (
	"context"
	"sync"

	"scout/config"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/repository"
	"scout/internal/domain/service"
	"scout/internal/errors"
	"scout/internal/usecase"

	"github.com/google/uuid"
)

type mapSessionService struct {
	propertyRepo repository.PropertyRepository
	renderer     service.ViewRenderer

	mu   sync.Mutex
	view entity.ViewState
}

// NewMapSessionService creates a new map session service instance
func NewMapSessionService(propertyRepo repository.PropertyRepository, renderer service.ViewRenderer, cfg *config.Config) usecase.MapSessionUsecase {
	namedZoom := entity.NamedZoom(cfg.Map.DefaultZoomLevel)
	if !namedZoom.Valid() {
		namedZoom = entity.ZoomCountry
	}

	return &mapSessionService{
		propertyRepo: propertyRepo,
		renderer:     renderer,
		view: entity.ViewState{
			Center:      entity.Coordinate{Lat: cfg.Map.DefaultLat, Lng: cfg.Map.DefaultLng},
			NumericZoom: namedZoom.Zoom(),
			NamedZoom:   namedZoom,
		},
	}
}

// View returns a snapshot of the current view state.
func (s *mapSessionService) View() entity.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.view
}

// SetView moves the camera. The numeric zoom is clamped to the legal range
// and the named zoom recomputed as its nearest ladder level, so setting a
// canonical numeric value round-trips to the same named level.
func (s *mapSessionService) SetView(_ context.Context, input *usecase.SetViewInput) entity.ViewState {
	numericZoom := entity.ClampZoom(input.Zoom)

	s.mu.Lock()
	s.view.Center = entity.Coordinate{Lat: input.Lat, Lng: input.Lng}
	s.view.NumericZoom = numericZoom
	s.view.NamedZoom = entity.NearestNamedZoom(numericZoom)
	view := s.view
	s.mu.Unlock()

	s.renderer.RenderView(view)

	return view
}

// SetNamedZoom sets the zoom by named level, keeping the center.
func (s *mapSessionService) SetNamedZoom(_ context.Context, level entity.NamedZoom) (entity.ViewState, error) {
	if !level.Valid() {
		return entity.ViewState{}, domainerrors.ErrInvalidZoomLevel.WithDetails(string(level))
	}

	s.mu.Lock()
	s.view.NamedZoom = level
	s.view.NumericZoom = level.Zoom()
	view := s.view
	s.mu.Unlock()

	s.renderer.RenderView(view)

	return view, nil
}

// SelectProperty centers the map on a stored property at street zoom and
// marks it selected.
func (s *mapSessionService) SelectProperty(ctx context.Context, id uuid.UUID) (entity.ViewState, error) {
	property, err := s.propertyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return entity.ViewState{}, domainerrors.ErrPropertyNotFound
		}

		return entity.ViewState{}, errors.Wrap(err, "failed to find property")
	}

	selectedID := property.ID

	s.mu.Lock()
	s.view.Center = property.Coordinates
	s.view.NamedZoom = entity.ZoomStreet
	s.view.NumericZoom = entity.ZoomStreet.Zoom()
	s.view.SelectedID = &selectedID
	view := s.view
	s.mu.Unlock()

	s.renderer.RenderView(view)

	return view, nil
}

// ClearSelection drops the current selection without moving the camera.
func (s *mapSessionService) ClearSelection(_ context.Context) entity.ViewState {
	s.mu.Lock()
	s.view.SelectedID = nil
	view := s.view
	s.mu.Unlock()

	s.renderer.RenderView(view)

	return view
}
