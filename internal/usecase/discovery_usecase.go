package usecase

import (
	"context"

	"scout/internal/domain/entity"
)

// DiscoverInput represents the input for one nearby-places discovery round
type DiscoverInput struct {
	Center entity.Coordinate `json:"center"`
	// RadiusMeter falls back to the configured default when zero.
	RadiusMeter int `json:"radius_meter" validate:"gte=0"`
	// Categories selects which groups to fetch; empty means all of them.
	Categories []entity.PlaceCategory `json:"categories"`
}

// DiscoveryUsecase defines the interface for nearby-places discovery
type DiscoveryUsecase interface {
	// Discover fetches every requested category in parallel and returns the
	// merged collection. A failed category contributes an empty slice rather
	// than failing the round. The result also becomes the latest snapshot
	// unless a newer round finished first.
	Discover(ctx context.Context, input *DiscoverInput) (entity.PlaceCollection, error)
	// Latest returns the snapshot of the most recent completed round.
	Latest() entity.PlaceCollection
}
