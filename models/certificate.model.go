package models

import "time"

// Certificate is an issued proof of completion. The ID is a generated
// UUID string; CertificateUrl points at the rendered artifact.
type Certificate struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	UserID         string    `json:"user_id" gorm:"not null;index"`
	CourseID       uint      `json:"course_id" gorm:"not null;index"`
	CertificateUrl string    `json:"certificate_url"`
	IssuedAt       time.Time `json:"issued_at"`

	Course Course `json:"course" gorm:"foreignKey:CourseID"`
}
