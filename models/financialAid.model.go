package models

import "time"

// FinancialAid is a request for a price reduction. Review and
// approval happen outside this system; status stays pending in-scope.
type FinancialAid struct {
	ID         uint       `json:"id" gorm:"primaryKey"`
	UserID     string     `json:"user_id" gorm:"not null;index"`
	CourseID   uint       `json:"course_id" gorm:"not null;index"`
	Reason     string     `json:"reason" gorm:"type:text;not null"`
	Income     string     `json:"income" gorm:"default:''"`         // income bracket label
	Status     string     `json:"status" gorm:"default:'pending'"` // pending, approved, rejected
	AppliedAt  time.Time  `json:"applied_at"`
	ReviewedAt *time.Time `json:"reviewed_at"`
}
