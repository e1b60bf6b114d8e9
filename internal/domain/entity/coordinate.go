// Package entity contains the core business objects of the project.
package entity

import "github.com/paulmach/orb"

// Coordinate is an immutable geographic position in WGS84.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate lies within the legal
// latitude [-90,90] and longitude [-180,180] ranges.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Point converts the coordinate to an orb.Point (lng,lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// CoordinateFromPoint converts an orb.Point (lng,lat order) to a Coordinate.
func CoordinateFromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p.Lat(), Lng: p.Lon()}
}
