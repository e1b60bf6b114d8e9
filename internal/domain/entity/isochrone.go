package entity

import (
	"fmt"
	"math"

	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Profile is the travel mode used to compute reachability.
type Profile string

const (
	ProfileWalking Profile = "walking"
	ProfileCycling Profile = "cycling"
	ProfileDriving Profile = "driving"
)

// Valid reports whether the profile is a known travel mode.
func (p Profile) Valid() bool {
	switch p {
	case ProfileWalking, ProfileCycling, ProfileDriving:
		return true
	}

	return false
}

// ContourUnit is the unit of an isochrone's reachability threshold.
type ContourUnit string

const (
	ContourMinutes ContourUnit = "minutes"
	ContourMeters  ContourUnit = "meters"
)

// Valid reports whether the contour unit is known.
func (u ContourUnit) Valid() bool {
	return u == ContourMinutes || u == ContourMeters
}

// IsochroneParams is the value object describing one reachability request.
// The contour value is passed to the provider untransformed.
type IsochroneParams struct {
	Profile      Profile     `json:"profile"`
	ContourUnit  ContourUnit `json:"contour_unit"`
	ContourValue int         `json:"contour_value"`
}

// Validate checks the params against the legal profiles, units and value range.
func (p IsochroneParams) Validate() error {
	if !p.Profile.Valid() {
		return errors.Errorf("unknown routing profile: %s", p.Profile)
	}
	if !p.ContourUnit.Valid() {
		return errors.Errorf("unknown contour unit: %s", p.ContourUnit)
	}
	if p.ContourValue <= 0 {
		return errors.Errorf("contour value must be positive, got %d", p.ContourValue)
	}

	return nil
}

// Isochrone is a reachability polygon returned verbatim from the routing
// provider, tagged with its request params and, when computed per place,
// the owning place.
type Isochrone struct {
	Params    IsochroneParams            `json:"params"`
	PlaceID   string                     `json:"place_id,omitempty"`
	Category  PlaceCategory              `json:"category,omitempty"`
	Geometry  *geojson.FeatureCollection `json:"geometry"`
	FillColor string                     `json:"fill_color"`
}

// profile base colors for the overlay fill ramp.
var profileColors = map[Profile][3]int{
	ProfileWalking: {86, 197, 150},
	ProfileCycling: {250, 141, 0},
	ProfileDriving: {66, 133, 244},
}

// IsochroneFillColor derives the overlay fill color from profile and contour.
// Higher contour values render more transparent; meter contours are scaled to
// kilometers before entering the ramp.
func IsochroneFillColor(params IsochroneParams) string {
	color, ok := profileColors[params.Profile]
	if !ok {
		color = [3]int{100, 100, 100}
	}

	value := float64(params.ContourValue)
	if params.ContourUnit == ContourMeters {
		value /= 1000
	}
	opacity := 0.5 - math.Min(value, 60)/100

	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", color[0], color[1], color[2], opacity)
}
