package models

import "time"

// Newsletter holds one row per subscribed email. Duplicate subscribe
// attempts are a no-op on the unique constraint.
type Newsletter struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"unique;not null"`
	SubscribedAt time.Time `json:"subscribed_at"`
}
