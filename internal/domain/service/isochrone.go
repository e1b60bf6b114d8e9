package service

import (
	"context"

	"scout/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// IsochroneProvider is the port to the routing provider's isochrone endpoint.
type IsochroneProvider interface {
	// Isochrone returns the reachability polygon(s) for one coordinate.
	// Provider errors propagate to the caller untouched.
	Isochrone(ctx context.Context, center entity.Coordinate, params entity.IsochroneParams) (*geojson.FeatureCollection, error)
}
