package storage

import (
	"errors"
	"talenta/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (s *GormStore) GetUser(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpsertUser inserts the user on first login and updates the mutable
// profile fields on every later one. A single ON CONFLICT statement
// keeps concurrent first logins from creating duplicates.
func (s *GormStore) UpsertUser(user models.User) (*models.User, error) {
	user.UpdatedAt = time.Now()
	if err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "first_name", "last_name", "profile_image_url", "language", "updated_at",
		}),
	}).Create(&user).Error; err != nil {
		return nil, err
	}

	var saved models.User
	if err := s.db.Where("id = ?", user.ID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (s *GormStore) UpdateUserBillingInfo(userId, customerId, subscriptionId string) (*models.User, error) {
	if err := s.db.Model(&models.User{}).Where("id = ?", userId).Updates(map[string]interface{}{
		"billing_customer_id":     customerId,
		"billing_subscription_id": subscriptionId,
		"updated_at":              time.Now(),
	}).Error; err != nil {
		return nil, err
	}

	var saved models.User
	if err := s.db.Where("id = ?", userId).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}
