package storage

import (
	"talenta/models"
	"time"
)

func (s *GormStore) CreateFinancialAid(aid *models.FinancialAid) error {
	aid.Status = "pending"
	aid.AppliedAt = time.Now()
	aid.ReviewedAt = nil
	return s.db.Create(aid).Error
}

func (s *GormStore) GetUserFinancialAid(userId string) ([]models.FinancialAid, error) {
	var applications []models.FinancialAid
	if err := s.db.Where("user_id = ?", userId).
		Order("applied_at desc").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}
