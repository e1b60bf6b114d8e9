package impl

import (
	"context"
	"log/slog"
	"sync"

	"scout/config"
	"scout/internal/domain/entity"
	domainerrors "scout/internal/domain/errors"
	"scout/internal/domain/service"
	"scout/internal/usecase"

	"golang.org/x/time/rate"
)

type isochroneService struct {
	provider service.IsochroneProvider
	config   *config.Config
	logger   *slog.Logger

	// limiter paces batches so a large place set never bursts the provider.
	limiter *rate.Limiter
}

// NewIsochroneService creates a new isochrone service instance
func NewIsochroneService(provider service.IsochroneProvider, cfg *config.Config, logger *slog.Logger) usecase.IsochroneUsecase {
	isochroneCfg := cfg.Providers.Isochrone

	return &isochroneService{
		provider: provider,
		config:   cfg,
		logger:   logger,
		limiter:  rate.NewLimiter(rate.Every(isochroneCfg.BatchInterval), 1),
	}
}

// FetchOne computes the isochrone for a single coordinate. Unlike the batched
// path, a provider failure here propagates to the caller.
func (s *isochroneService) FetchOne(ctx context.Context, center entity.Coordinate, params entity.IsochroneParams) (*entity.Isochrone, error) {
	if !center.Valid() {
		return nil, domainerrors.ErrCoordinateOutOfRange
	}
	if err := params.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidIsochroneParams.WithDetails(err.Error())
	}

	geometry, err := s.provider.Isochrone(ctx, center, params)
	if err != nil {
		return nil, domainerrors.ErrIsochroneFetchFailed.WithDetails(err.Error())
	}

	return &entity.Isochrone{
		Params:    params,
		Geometry:  geometry,
		FillColor: entity.IsochroneFillColor(params),
	}, nil
}

// FetchForPlaces computes isochrones for many places in paced batches of the
// configured size. Each completed batch hands the cumulative result to
// publish, so consumers can render overlays as they arrive. A failing place
// is logged and skipped; only context cancellation aborts the round.
func (s *isochroneService) FetchForPlaces(ctx context.Context, places []entity.Place, params entity.IsochroneParams, publish func([]entity.Isochrone)) ([]entity.Isochrone, error) {
	if err := params.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidIsochroneParams.WithDetails(err.Error())
	}

	batchSize := s.config.Providers.Isochrone.BatchSize
	fillColor := entity.IsochroneFillColor(params)

	results := make([]entity.Isochrone, 0, len(places))
	for start := 0; start < len(places); start += batchSize {
		if err := s.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		end := min(start+batchSize, len(places))
		batch := places[start:end]

		batchResults := make([]*entity.Isochrone, len(batch))
		var wg sync.WaitGroup
		for i, place := range batch {
			wg.Add(1)
			go func() {
				defer wg.Done()

				geometry, err := s.provider.Isochrone(ctx, place.Location, params)
				if err != nil {
					s.logger.WarnContext(ctx, "isochrone fetch failed for place",
						slog.String("placeId", place.PlaceID),
						slog.Any("error", err),
					)

					return
				}

				batchResults[i] = &entity.Isochrone{
					Params:    params,
					PlaceID:   place.PlaceID,
					Category:  place.Category,
					Geometry:  geometry,
					FillColor: fillColor,
				}
			}()
		}
		wg.Wait()

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for _, isochrone := range batchResults {
			if isochrone != nil {
				results = append(results, *isochrone)
			}
		}

		if publish != nil {
			snapshot := make([]entity.Isochrone, len(results))
			copy(snapshot, results)
			publish(snapshot)
		}
	}

	return results, nil
}
