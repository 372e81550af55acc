package models

import "time"

// User is keyed by the external identity provider's subject.
// Rows are upserted on every login and never hard-deleted.
type User struct {
	ID                    string    `json:"id" gorm:"primaryKey"`
	Email                 *string   `json:"email" gorm:"unique"`
	FirstName             string    `json:"first_name" gorm:"default:''"`
	LastName              string    `json:"last_name" gorm:"default:''"`
	ProfileImageUrl       string    `json:"profile_image_url" gorm:"default:''"`
	Language              string    `json:"language" gorm:"default:'en'"`
	BillingCustomerId     string    `json:"billing_customer_id" gorm:"default:''"`
	BillingSubscriptionId string    `json:"billing_subscription_id" gorm:"default:''"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
