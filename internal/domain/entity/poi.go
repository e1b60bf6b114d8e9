package entity

import (
	"time"

	"github.com/google/uuid"
)

// POIType is the stored point-of-interest kind.
type POIType string

const (
	POIGroceries POIType = "groceries"
	POIMalls     POIType = "malls"
	POITransport POIType = "transport"
	POIHospitals POIType = "hospitals"
)

// Valid reports whether the POI type is known.
func (t POIType) Valid() bool {
	switch t {
	case POIGroceries, POIMalls, POITransport, POIHospitals:
		return true
	}

	return false
}

// ContactInfo holds optional contact details for a stored POI.
type ContactInfo struct {
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
	Email   string `json:"email,omitempty"`
}

// POI is a curated, server-stored point of interest, as opposed to Place,
// which is fetched live from a provider and never persisted.
type POI struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Type        POIType       `json:"type"`
	Coordinates Coordinate    `json:"coordinates"`
	Address     PostalAddress `json:"address"`
	Description string        `json:"description,omitempty"`
	ContactInfo ContactInfo   `json:"contact_info"`
	Amenities   []string      `json:"amenities,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
