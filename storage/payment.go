package storage

import (
	"talenta/models"
	"time"
)

func (s *GormStore) CreatePayment(payment *models.Payment) error {
	if payment.Status == "" {
		payment.Status = "pending"
	}
	payment.CreatedAt = time.Now()
	return s.db.Create(payment).Error
}

// UpdatePaymentStatus is the hook for a future processor confirmation
// step; nothing in the request path calls it yet.
func (s *GormStore) UpdatePaymentStatus(id uint, status, gatewayPaymentId string) error {
	updates := map[string]interface{}{"status": status}
	if gatewayPaymentId != "" {
		updates["gateway_payment_id"] = gatewayPaymentId
	}
	return s.db.Model(&models.Payment{}).Where("id = ?", id).Updates(updates).Error
}
