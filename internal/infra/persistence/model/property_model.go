// Package model holds the GORM-specific persistence structs.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyModel is the GORM-specific struct for the 'properties' table.
type PropertyModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Type        string    `gorm:"type:varchar(32);not null;index:idx_properties_on_type"`
	Price       float64   `gorm:"not null"`
	Description string    `gorm:"type:text"`
	Sqft        float64   `gorm:"not null"`
	Bedrooms    int       `gorm:"not null"`
	Bathrooms   float64   `gorm:"not null"`
	Lat         float64   `gorm:"type:decimal(10,8);not null;index:idx_properties_on_coords"`
	Lng         float64   `gorm:"type:decimal(11,8);not null;index:idx_properties_on_coords"`
	Images      []string  `gorm:"serializer:json"`
	Street      string    `gorm:"type:varchar(255)"`
	City        string    `gorm:"type:varchar(100)"`
	State       string    `gorm:"type:varchar(100)"`
	Zip         string    `gorm:"type:varchar(20)"`
	Country     string    `gorm:"type:varchar(100)"`
	Status      string    `gorm:"type:varchar(32);not null;default:'available'"`
	YearBuilt   int
	Features    []string `gorm:"serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the table name
func (PropertyModel) TableName() string {
	return "properties"
}
