package models

import "time"

// Payment is a caller-asserted checkout record. It is not reconciled
// against the processor's confirmation; GatewayPaymentId is filled in
// when a confirmation hook updates the status.
type Payment struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	UserID           string    `json:"user_id" gorm:"not null;index"`
	CourseID         uint      `json:"course_id" gorm:"not null;index"`
	Amount           string    `json:"amount" gorm:"type:decimal(10,2);not null"`
	Currency         string    `json:"currency" gorm:"not null"`
	Method           string    `json:"method" gorm:"not null"` // card, bank_transfer, mobile_money
	Status           string    `json:"status" gorm:"default:'pending'"`
	GatewayPaymentId string    `json:"gateway_payment_id" gorm:"default:''"`
	CreatedAt        time.Time `json:"created_at"`
}
