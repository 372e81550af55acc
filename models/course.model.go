package models

import (
	"time"

	"gorm.io/datatypes"
)

// Course represents a catalog course. Prices are stored per currency,
// not derived from each other. Rating and EnrollmentCount are
// denormalized and refreshed by the stats aggregation job.
type Course struct {
	ID              uint           `json:"id" gorm:"primaryKey"`
	Title           string         `json:"title" gorm:"not null"`
	Description     string         `json:"description" gorm:"type:text;not null"`
	Brief           string         `json:"brief" gorm:"type:text;not null"`
	Category        string         `json:"category" gorm:"not null;index"`
	Duration        string         `json:"duration" gorm:"not null"` // duration label, e.g. "6 weeks"
	Price           string         `json:"price" gorm:"type:decimal(10,2);not null"`
	PriceEtb        string         `json:"price_etb" gorm:"type:decimal(10,2);not null"`
	ImageUrl        string         `json:"image_url" gorm:"default:''"`
	Rating          float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`
	EnrollmentCount int            `json:"enrollment_count" gorm:"default:0"`
	IsFeatured      bool           `json:"is_featured" gorm:"default:false"`
	Modules         datatypes.JSON `json:"modules"` // ordered [{title, duration, ...}]
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
