package storage

import (
	"talenta/models"
	"time"

	"gorm.io/gorm/clause"
)

// SubscribeNewsletter is idempotent: a second subscribe with the same
// email is a no-op and returns the existing row.
func (s *GormStore) SubscribeNewsletter(email string) (*models.Newsletter, error) {
	subscription := models.Newsletter{
		Email:        email,
		SubscribedAt: time.Now(),
	}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&subscription).Error; err != nil {
		return nil, err
	}

	var saved models.Newsletter
	if err := s.db.Where("email = ?", email).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}
