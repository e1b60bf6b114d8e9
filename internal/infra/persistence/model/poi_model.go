package model

import (
	"time"

	"github.com/google/uuid"
)

// POIModel is the GORM-specific struct for the 'pois' table.
type POIModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Type        string    `gorm:"type:varchar(32);not null;index:idx_pois_on_type"`
	Lat         float64   `gorm:"type:decimal(10,8);not null;index:idx_pois_on_coords"`
	Lng         float64   `gorm:"type:decimal(11,8);not null;index:idx_pois_on_coords"`
	Street      string    `gorm:"type:varchar(255)"`
	City        string    `gorm:"type:varchar(100)"`
	State       string    `gorm:"type:varchar(100)"`
	Zip         string    `gorm:"type:varchar(20)"`
	Country     string    `gorm:"type:varchar(100)"`
	Description string    `gorm:"type:text"`
	Phone       string    `gorm:"type:varchar(50)"`
	Website     string    `gorm:"type:varchar(255)"`
	Email       string    `gorm:"type:varchar(255)"`
	Amenities   []string  `gorm:"serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the table name
func (POIModel) TableName() string {
	return "pois"
}
