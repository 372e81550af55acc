package storage

import (
	"encoding/json"
	"errors"
	"talenta/models"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func (s *GormStore) CreateEnrollment(userId string, courseId uint) (*models.Enrollment, error) {
	enrollment := models.Enrollment{
		UserID:           userId,
		CourseID:         courseId,
		Progress:         0,
		CompletedModules: datatypes.JSON("[]"),
		EnrolledAt:       time.Now(),
	}
	if err := s.db.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (s *GormStore) GetUserEnrollments(userId string) ([]models.Enrollment, error) {
	var enrollments []models.Enrollment
	if err := s.db.Where("user_id = ?", userId).Preload("Course").
		Order("enrolled_at desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (s *GormStore) GetEnrollment(userId string, courseId uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	if err := s.db.Where("user_id = ? AND course_id = ?", userId, courseId).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

// UpdateEnrollmentProgress overwrites progress and the completed set.
// CompletedAt is stamped when progress reaches 100 and cleared again
// if a later update drops below it.
func (s *GormStore) UpdateEnrollmentProgress(userId string, courseId uint, progress float64, completedModules []int) error {
	if completedModules == nil {
		completedModules = []int{}
	}
	raw, err := json.Marshal(completedModules)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"progress":          progress,
		"completed_modules": datatypes.JSON(raw),
		"completed_at":      nil,
	}
	if progress >= 100 {
		updates["completed_at"] = time.Now()
	}

	return s.db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userId, courseId).
		Updates(updates).Error
}
