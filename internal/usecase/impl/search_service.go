package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"scout/config"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/service"
	"scout/internal/usecase"
)

type searchService struct {
	geocoder service.Geocoder
	config   *config.Config
	logger   *slog.Logger

	mu         sync.Mutex
	generation uint64
}

// NewSearchService creates a new search service instance
func NewSearchService(geocoder service.Geocoder, cfg *config.Config, logger *slog.Logger) usecase.SearchUsecase {
	return &searchService{
		geocoder: geocoder,
		config:   cfg,
		logger:   logger,
	}
}

// Search resolves a free-text query to ranked hits. Rapid successive calls
// are debounced: each call waits out the configured window and only proceeds
// to the provider if no newer call arrived in the meantime, so a keystroke
// burst costs exactly one provider request.
func (s *searchService) Search(ctx context.Context, query string) ([]usecase.SearchHit, error) {
	geocodingCfg := s.config.Providers.Geocoding

	query = strings.TrimSpace(query)
	if len([]rune(query)) < geocodingCfg.MinQueryLength {
		return []usecase.SearchHit{}, nil
	}

	s.mu.Lock()
	s.generation++
	myGeneration := s.generation
	s.mu.Unlock()

	timer := time.NewTimer(geocodingCfg.DebounceWindow)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	s.mu.Lock()
	superseded := s.generation != myGeneration
	s.mu.Unlock()
	if superseded {
		s.logger.DebugContext(ctx, "search superseded by newer query",
			slog.String("query", query),
		)

		return []usecase.SearchHit{}, nil
	}

	// A provider outage degrades search to no suggestions; it never fails
	// the request.
	results, err := s.geocoder.Search(ctx, query, geocodingCfg.ResultLimit)
	if err != nil {
		s.logger.WarnContext(ctx, "geocoding search failed",
			slog.String("query", query),
			slog.Any("error", err),
		)

		return []usecase.SearchHit{}, nil
	}

	hits := make([]usecase.SearchHit, 0, len(results))
	for _, result := range results {
		hits = append(hits, usecase.SearchHit{
			Label:         result.Label,
			Location:      result.Location,
			PlaceType:     result.PlaceType,
			SuggestedZoom: suggestedZoom(result.PlaceType),
		})
	}

	return hits, nil
}

// Reverse resolves a coordinate to a human-readable label, e.g. for a map
// click or a dragged marker. Provider failures degrade to an empty label.
func (s *searchService) Reverse(ctx context.Context, coord entity.Coordinate) (string, error) {
	if !coord.Valid() {
		return "", domainerrors.ErrCoordinateOutOfRange.WithDetails(
			fmt.Sprintf("lat=%f lng=%f", coord.Lat, coord.Lng),
		)
	}

	label, err := s.geocoder.Reverse(ctx, coord)
	if err != nil {
		s.logger.WarnContext(ctx, "reverse geocoding failed",
			slog.Float64("lat", coord.Lat),
			slog.Float64("lng", coord.Lng),
			slog.Any("error", err),
		)

		return "", nil
	}

	return label, nil
}

// suggestedZoom maps a geocoding place type to the named zoom the map should
// move to when the hit is chosen. Precise hits zoom in close, coarse ones
// stay wide.
func suggestedZoom(placeType string) entity.NamedZoom {
	switch placeType {
	case "address", "poi":
		return entity.ZoomStreet
	case "neighborhood", "locality":
		return entity.ZoomNeighborhood
	case "region":
		return entity.ZoomState
	case "country":
		return entity.ZoomCountry
	default:
		return entity.ZoomDistrict
	}
}
