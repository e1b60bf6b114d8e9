package entity

import (
	"math"

	"github.com/google/uuid"
)

// NamedZoom is a human-readable alias for a numeric map zoom value.
type NamedZoom string

const (
	ZoomWorld        NamedZoom = "world"
	ZoomContinent    NamedZoom = "continent"
	ZoomCountry      NamedZoom = "country"
	ZoomState        NamedZoom = "state"
	ZoomCity         NamedZoom = "city"
	ZoomDistrict     NamedZoom = "district"
	ZoomNeighborhood NamedZoom = "neighborhood"
	ZoomStreet       NamedZoom = "street"
	ZoomBuilding     NamedZoom = "building"
	ZoomMax          NamedZoom = "max"
)

// zoomLadder maps each named level to its canonical numeric zoom.
// Kept in sync with the map renderer's zoom range [1,20].
var zoomLadder = []struct {
	level NamedZoom
	zoom  float64
}{
	{ZoomWorld, 1},
	{ZoomContinent, 4},
	{ZoomCountry, 6},
	{ZoomState, 8},
	{ZoomCity, 10},
	{ZoomDistrict, 12},
	{ZoomNeighborhood, 14},
	{ZoomStreet, 16},
	{ZoomBuilding, 18},
	{ZoomMax, 20},
}

// Valid reports whether the named zoom level is known.
func (z NamedZoom) Valid() bool {
	for _, entry := range zoomLadder {
		if entry.level == z {
			return true
		}
	}

	return false
}

// Zoom returns the canonical numeric zoom for the named level.
// Unknown levels fall back to the city zoom.
func (z NamedZoom) Zoom() float64 {
	for _, entry := range zoomLadder {
		if entry.level == z {
			return entry.zoom
		}
	}

	return ZoomCity.Zoom()
}

// NearestNamedZoom projects a numeric zoom onto the named level whose
// canonical value minimizes the absolute difference. The projection is
// idempotent: feeding a canonical value back in returns the same level.
func NearestNamedZoom(numericZoom float64) NamedZoom {
	nearest := zoomLadder[0]
	for _, entry := range zoomLadder[1:] {
		if math.Abs(entry.zoom-numericZoom) < math.Abs(nearest.zoom-numericZoom) {
			nearest = entry
		}
	}

	return nearest.level
}

// ClampZoom bounds a numeric zoom to the renderer's legal range.
func ClampZoom(numericZoom float64) float64 {
	return math.Min(20, math.Max(1, numericZoom))
}

// ViewState is the current camera state of a map session. The named and
// numeric zoom are mutually derived: whichever was set last is authoritative
// and the other is recomputed as its nearest match.
type ViewState struct {
	Center      Coordinate `json:"center"`
	NumericZoom float64    `json:"numeric_zoom"`
	NamedZoom   NamedZoom  `json:"named_zoom"`
	// SelectedID is the currently selected entity, if any.
	SelectedID *uuid.UUID `json:"selected_id,omitempty"`
}
