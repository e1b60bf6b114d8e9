package usecase

import (
	"context"

	"scout/internal/domain/entity"
)

// IsochroneUsecase defines the interface for reachability-polygon use cases
type IsochroneUsecase interface {
	// FetchOne computes the isochrone for a single coordinate. Provider
	// failures propagate to the caller.
	FetchOne(ctx context.Context, center entity.Coordinate, params entity.IsochroneParams) (*entity.Isochrone, error)
	// FetchForPlaces computes isochrones for many places in paced batches.
	// After each batch the cumulative result so far is handed to publish (when
	// non-nil), so consumers can render incrementally. A failed place is
	// skipped; the round only fails when the context is canceled.
	FetchForPlaces(ctx context.Context, places []entity.Place, params entity.IsochroneParams, publish func([]entity.Isochrone)) ([]entity.Isochrone, error)
}
