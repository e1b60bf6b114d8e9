package service

import (
	"context"

	"scout/internal/domain/entity"
)

// PlaceSearcher is the port to the commercial places-nearby-search API.
// Results come back without a category; the caller tags them.
type PlaceSearcher interface {
	// NearbyType searches by the provider's place type (e.g. "hospital").
	NearbyType(ctx context.Context, center entity.Coordinate, radiusMeter int, placeType string) ([]entity.Place, error)
	// NearbyKeyword searches by free-text keyword (e.g. a retail chain name).
	NearbyKeyword(ctx context.Context, center entity.Coordinate, radiusMeter int, keyword string) ([]entity.Place, error)
}

// TransitSource is the port to the open-data transit endpoint, used as the
// primary source for bus stops before falling back to the commercial API.
type TransitSource interface {
	StopsNear(ctx context.Context, center entity.Coordinate, radiusMeter int) ([]entity.Place, error)
}
