package usecase

import (
	"context"

	"scout/internal/domain/entity"
)

// SearchHit is one geocoding candidate, enriched with the named zoom the map
// should move to when the hit is chosen.
type SearchHit struct {
	Label         string            `json:"label"`
	Location      entity.Coordinate `json:"location"`
	PlaceType     string            `json:"place_type"`
	SuggestedZoom entity.NamedZoom  `json:"suggested_zoom"`
}

// SearchUsecase defines the interface for free-text location search
type SearchUsecase interface {
	// Search resolves a query to ranked hits. Queries shorter than the
	// configured minimum return no hits and no error. Calls superseded by a
	// newer query within the debounce window also return no hits: only the
	// latest caller reaches the provider. Provider failures degrade to no
	// hits with a logged warning rather than an error.
	Search(ctx context.Context, query string) ([]SearchHit, error)

	// Reverse resolves a coordinate to a human-readable label. An empty
	// label means the provider had no match or was unavailable.
	Reverse(ctx context.Context, coord entity.Coordinate) (string, error)
}
