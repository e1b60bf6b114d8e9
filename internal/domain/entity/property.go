package entity

import (
	"time"

	"github.com/google/uuid"
)

// PropertyType is the listing kind of a property.
type PropertyType string

const (
	PropertySale            PropertyType = "sale"
	PropertyRent            PropertyType = "rent"
	PropertyNewConstruction PropertyType = "new_construction"
)

// Valid reports whether the property type is known.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertySale, PropertyRent, PropertyNewConstruction:
		return true
	}

	return false
}

// PropertyStatus is the sales status of a listing.
type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "available"
	StatusPending   PropertyStatus = "pending"
	StatusSold      PropertyStatus = "sold"
)

// Valid reports whether the status is known.
func (s PropertyStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusPending, StatusSold:
		return true
	}

	return false
}

// PostalAddress is the street address attached to a stored record.
type PostalAddress struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// Property is a stored real-estate listing.
type Property struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Type        PropertyType   `json:"type"`
	Price       float64        `json:"price"`
	Description string         `json:"description,omitempty"`
	Sqft        float64        `json:"sqft"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   float64        `json:"bathrooms"`
	Coordinates Coordinate     `json:"coordinates"`
	Images      []string       `json:"images,omitempty"`
	Address     PostalAddress  `json:"address"`
	Status      PropertyStatus `json:"status"`
	YearBuilt   int            `json:"year_built,omitempty"`
	Features    []string       `json:"features,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
