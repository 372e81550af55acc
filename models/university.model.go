package models

import "time"

// University is a partner listing. Rows are seeded externally; no
// create or update endpoint exists.
type University struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text;default:''"`
	ImageUrl    string    `json:"image_url" gorm:"default:''"`
	Website     string    `json:"website" gorm:"default:''"`
	Country     string    `json:"country" gorm:"default:''"`
	PartneredAt time.Time `json:"partnered_at"`
}
