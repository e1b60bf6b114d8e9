// Package service defines the outbound ports to external providers.
package service

import (
	"context"

	"scout/internal/domain/entity"
)

// SearchResult is one geocoding match for a free-text query.
type SearchResult struct {
	Label     string            `json:"label"`
	Location  entity.Coordinate `json:"location"`
	PlaceType string            `json:"place_type"`
}

// Geocoder turns free-text queries into coordinates and back.
type Geocoder interface {
	// Search resolves a free-text query to ranked candidates.
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
	// Reverse resolves a coordinate to a human-readable label.
	// An empty label with nil error means the provider had no match.
	Reverse(ctx context.Context, coord entity.Coordinate) (string, error)
}
