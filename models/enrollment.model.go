package models

import (
	"time"

	"gorm.io/datatypes"
)

// Enrollment tracks a user's progress through a course. The composite
// unique index guarantees at most one enrollment per (user, course)
// even when concurrent enroll requests race past the existence check.
type Enrollment struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	UserID           string         `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID         uint           `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"`
	Progress         float64        `json:"progress" gorm:"type:decimal(5,2);default:0"` // 0-100
	CompletedModules datatypes.JSON `json:"completed_modules"`                           // module indices
	EnrolledAt       time.Time      `json:"enrolled_at"`
	CompletedAt      *time.Time     `json:"completed_at"`

	Course Course `json:"course" gorm:"foreignKey:CourseID"`
}
